package auth

import (
	"context"
	"strings"

	"github.com/rukun-warga/backend/internal/application/adapter"
	"github.com/rukun-warga/backend/internal/domain/entity"
	domainerror "github.com/rukun-warga/backend/internal/domain/error"
)

// LoginAdminInput represents the input for admin login.
type LoginAdminInput struct {
	Email    string
	Password string
}

// LoginAdminOutput represents the output of admin login.
type LoginAdminOutput struct {
	Admin       *entity.Admin
	AccessToken string
}

// LoginAdminUseCase handles admin login logic.
type LoginAdminUseCase struct {
	adminRepo       adapter.AdminRepository
	passwordService adapter.PasswordService
	tokenService    adapter.TokenService
}

// NewLoginAdminUseCase creates a new LoginAdminUseCase instance.
func NewLoginAdminUseCase(adminRepo adapter.AdminRepository, passwordService adapter.PasswordService, tokenService adapter.TokenService) *LoginAdminUseCase {
	return &LoginAdminUseCase{
		adminRepo:       adminRepo,
		passwordService: passwordService,
		tokenService:    tokenService,
	}
}

// Execute performs the login. Unknown emails and wrong passwords both
// come back as invalid credentials.
func (uc *LoginAdminUseCase) Execute(ctx context.Context, input LoginAdminInput) (*LoginAdminOutput, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	admin, err := uc.adminRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if admin == nil {
		return nil, domainerror.NewAuthError(domainerror.ErrCodeInvalidCredentials, "invalid credentials", domainerror.ErrInvalidCredentials)
	}

	if err := uc.passwordService.VerifyPassword(admin.PasswordHash, input.Password); err != nil {
		return nil, domainerror.NewAuthError(domainerror.ErrCodeInvalidCredentials, "invalid credentials", domainerror.ErrInvalidCredentials)
	}

	token, err := uc.tokenService.GenerateAccessToken(ctx, admin.ID, admin.Email)
	if err != nil {
		return nil, err
	}

	return &LoginAdminOutput{Admin: admin, AccessToken: token}, nil
}
