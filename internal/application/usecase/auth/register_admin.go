// Package auth contains admin authentication use cases.
package auth

import (
	"context"
	"strings"

	"github.com/rukun-warga/backend/internal/application/adapter"
	"github.com/rukun-warga/backend/internal/domain/entity"
	domainerror "github.com/rukun-warga/backend/internal/domain/error"
)

// RegisterAdminInput represents the input for registering an admin.
type RegisterAdminInput struct {
	Name     string
	Email    string
	Password string
}

// RegisterAdminOutput represents the output of registering an admin.
type RegisterAdminOutput struct {
	Admin       *entity.Admin
	AccessToken string
}

// RegisterAdminUseCase handles admin registration logic.
type RegisterAdminUseCase struct {
	adminRepo       adapter.AdminRepository
	passwordService adapter.PasswordService
	tokenService    adapter.TokenService
}

// NewRegisterAdminUseCase creates a new RegisterAdminUseCase instance.
func NewRegisterAdminUseCase(adminRepo adapter.AdminRepository, passwordService adapter.PasswordService, tokenService adapter.TokenService) *RegisterAdminUseCase {
	return &RegisterAdminUseCase{
		adminRepo:       adminRepo,
		passwordService: passwordService,
		tokenService:    tokenService,
	}
}

// Execute performs the registration.
func (uc *RegisterAdminUseCase) Execute(ctx context.Context, input RegisterAdminInput) (*RegisterAdminOutput, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, domainerror.NewAuthError(domainerror.ErrCodeInvalidEmail, "invalid email address", nil)
	}

	if err := uc.passwordService.ValidatePasswordStrength(input.Password); err != nil {
		return nil, domainerror.NewAuthError(domainerror.ErrCodeWeakPassword, "password does not meet requirements", err)
	}

	exists, err := uc.adminRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domainerror.NewAuthError(domainerror.ErrCodeEmailExists, "email already registered", domainerror.ErrEmailExists)
	}

	hash, err := uc.passwordService.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	admin := entity.NewAdmin(strings.TrimSpace(input.Name), email, hash)
	if err := uc.adminRepo.Create(ctx, admin); err != nil {
		return nil, domainerror.NewAuthError(domainerror.ErrCodeAdminSaveFailed, "failed to create admin", err)
	}

	token, err := uc.tokenService.GenerateAccessToken(ctx, admin.ID, admin.Email)
	if err != nil {
		return nil, err
	}

	return &RegisterAdminOutput{Admin: admin, AccessToken: token}, nil
}
