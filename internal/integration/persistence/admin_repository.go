// Package persistence implements repository interfaces using GORM.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rukun-warga/backend/internal/application/adapter"
	"github.com/rukun-warga/backend/internal/domain/entity"
	"github.com/rukun-warga/backend/internal/integration/persistence/model"
)

// adminRepository implements the adapter.AdminRepository interface.
type adminRepository struct {
	db *gorm.DB
}

// NewAdminRepository creates a new admin repository instance.
func NewAdminRepository(db *gorm.DB) adapter.AdminRepository {
	return &adminRepository{
		db: db,
	}
}

// Create creates a new admin in the database.
func (r *adminRepository) Create(ctx context.Context, admin *entity.Admin) error {
	return r.db.WithContext(ctx).Create(model.AdminFromEntity(admin)).Error
}

// FindByID retrieves an admin by its ID.
func (r *adminRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Admin, error) {
	var m model.AdminModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&m)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return m.ToEntity(), nil
}

// FindByEmail retrieves an admin by email.
func (r *adminRepository) FindByEmail(ctx context.Context, email string) (*entity.Admin, error) {
	var m model.AdminModel
	result := r.db.WithContext(ctx).Where("email = ?", email).First(&m)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return m.ToEntity(), nil
}

// ExistsByEmail checks if an admin with the given email exists.
func (r *adminRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&model.AdminModel{}).Where("email = ?", email).Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}
