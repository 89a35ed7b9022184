// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/rukun-warga/backend/internal/domain/entity"
)

// MemberFilter defines filter options for listing members.
type MemberFilter struct {
	Unit   string
	Role   *entity.MemberRole
	Search string // Case-insensitive name match
}

// MemberPagination defines pagination options for member listings.
type MemberPagination struct {
	Page    int
	PerPage int
}

// MemberRepository defines the interface for member persistence operations.
type MemberRepository interface {
	// Create creates a new member in the database.
	Create(ctx context.Context, member *entity.Member) error

	// FindByID retrieves a member by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Member, error)

	// FindByFilter retrieves members matching the filter, ordered by unit
	// then name, with the paid-dues total of the given period attached.
	// A nil duesPeriodID yields zero totals.
	FindByFilter(ctx context.Context, filter MemberFilter, pagination MemberPagination, duesPeriodID *uuid.UUID) (*entity.MemberListResult, error)

	// FindByCategory retrieves all members of the given category, ordered
	// by unit then name.
	FindByCategory(ctx context.Context, category entity.MemberCategory) ([]*entity.Member, error)

	// FindAll retrieves every member, ordered by unit then name.
	FindAll(ctx context.Context) ([]*entity.Member, error)

	// ExistsByID checks whether a member exists.
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)

	// Update updates an existing member in the database.
	Update(ctx context.Context, member *entity.Member) error

	// Delete removes a member together with its ledger entries and
	// period memberships in one transaction.
	Delete(ctx context.Context, id uuid.UUID) error
}
