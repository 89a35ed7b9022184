package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/rukun-warga/backend/internal/domain/entity"
)

// AdminRepository defines the interface for admin persistence operations.
type AdminRepository interface {
	// Create creates a new admin in the database.
	Create(ctx context.Context, admin *entity.Admin) error

	// FindByID retrieves an admin by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Admin, error)

	// FindByEmail retrieves an admin by email.
	FindByEmail(ctx context.Context, email string) (*entity.Admin, error)

	// ExistsByEmail checks if an admin with the given email exists.
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
