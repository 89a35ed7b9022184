package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/rukun-warga/backend/internal/application/adapter"
	"github.com/rukun-warga/backend/internal/domain/entity"
	domainerror "github.com/rukun-warga/backend/internal/domain/error"
)

type fakeAdminRepo struct {
	byEmail map[string]*entity.Admin
}

func newFakeAdminRepo() *fakeAdminRepo {
	return &fakeAdminRepo{byEmail: make(map[string]*entity.Admin)}
}

func (f *fakeAdminRepo) Create(ctx context.Context, admin *entity.Admin) error {
	f.byEmail[admin.Email] = admin
	return nil
}

func (f *fakeAdminRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Admin, error) {
	for _, a := range f.byEmail {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, nil
}

func (f *fakeAdminRepo) FindByEmail(ctx context.Context, email string) (*entity.Admin, error) {
	return f.byEmail[email], nil
}

func (f *fakeAdminRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return f.byEmail[email] != nil, nil
}

type fakePasswordService struct{}

func (f *fakePasswordService) HashPassword(password string) (string, error) {
	return "hashed:" + password, nil
}

func (f *fakePasswordService) VerifyPassword(hashedPassword, password string) error {
	if hashedPassword != "hashed:"+password {
		return errors.New("mismatch")
	}
	return nil
}

func (f *fakePasswordService) ValidatePasswordStrength(password string) error {
	if len(password) < 8 {
		return errors.New("too short")
	}
	return nil
}

type fakeTokenService struct{}

func (f *fakeTokenService) GenerateAccessToken(ctx context.Context, adminID uuid.UUID, email string) (string, error) {
	return "token-" + email, nil
}

func (f *fakeTokenService) ValidateAccessToken(ctx context.Context, token string) (*adapter.TokenClaims, error) {
	return nil, errors.New("not implemented in fake")
}

func TestRegisterThenLogin(t *testing.T) {
	repo := newFakeAdminRepo()
	register := NewRegisterAdminUseCase(repo, &fakePasswordService{}, &fakeTokenService{})
	login := NewLoginAdminUseCase(repo, &fakePasswordService{}, &fakeTokenService{})

	out, err := register.Execute(context.Background(), RegisterAdminInput{
		Name:     "Pak RT",
		Email:    "Bendahara@RT05.example",
		Password: "kata-sandi-kuat",
	})
	if err != nil {
		t.Fatalf("register error = %v", err)
	}
	if out.Admin.Email != "bendahara@rt05.example" {
		t.Errorf("email not normalized: %s", out.Admin.Email)
	}
	if out.AccessToken == "" {
		t.Error("no access token issued on registration")
	}

	logged, err := login.Execute(context.Background(), LoginAdminInput{
		Email:    "bendahara@rt05.example",
		Password: "kata-sandi-kuat",
	})
	if err != nil {
		t.Fatalf("login error = %v", err)
	}
	if logged.Admin.ID != out.Admin.ID {
		t.Error("login returned a different admin")
	}
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	repo := newFakeAdminRepo()
	register := NewRegisterAdminUseCase(repo, &fakePasswordService{}, &fakeTokenService{})

	input := RegisterAdminInput{Name: "A", Email: "a@b.example", Password: "kata-sandi-kuat"}
	if _, err := register.Execute(context.Background(), input); err != nil {
		t.Fatalf("first register error = %v", err)
	}

	_, err := register.Execute(context.Background(), input)
	if !errors.Is(err, domainerror.ErrEmailExists) {
		t.Errorf("expected ErrEmailExists, got %v", err)
	}
}

func TestRegisterRejectsWeakPassword(t *testing.T) {
	register := NewRegisterAdminUseCase(newFakeAdminRepo(), &fakePasswordService{}, &fakeTokenService{})

	_, err := register.Execute(context.Background(), RegisterAdminInput{Name: "A", Email: "a@b.example", Password: "short"})
	var authErr *domainerror.AuthError
	if !errors.As(err, &authErr) || authErr.Code != domainerror.ErrCodeWeakPassword {
		t.Errorf("expected weak password error, got %v", err)
	}
}

func TestLoginInvalidCredentials(t *testing.T) {
	repo := newFakeAdminRepo()
	register := NewRegisterAdminUseCase(repo, &fakePasswordService{}, &fakeTokenService{})
	login := NewLoginAdminUseCase(repo, &fakePasswordService{}, &fakeTokenService{})

	if _, err := register.Execute(context.Background(), RegisterAdminInput{Name: "A", Email: "a@b.example", Password: "kata-sandi-kuat"}); err != nil {
		t.Fatalf("register error = %v", err)
	}

	// Wrong password and unknown email are indistinguishable.
	for _, input := range []LoginAdminInput{
		{Email: "a@b.example", Password: "salah"},
		{Email: "nobody@b.example", Password: "kata-sandi-kuat"},
	} {
		_, err := login.Execute(context.Background(), input)
		if !errors.Is(err, domainerror.ErrInvalidCredentials) {
			t.Errorf("login(%s) expected ErrInvalidCredentials, got %v", input.Email, err)
		}
	}
}
