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

// periodRepository implements the adapter.PeriodRepository interface.
type periodRepository struct {
	db *gorm.DB
}

// NewPeriodRepository creates a new period repository instance.
func NewPeriodRepository(db *gorm.DB) adapter.PeriodRepository {
	return &periodRepository{
		db: db,
	}
}

// CreateWithSeed creates a period and its seed rows in one transaction.
func (r *periodRepository) CreateWithSeed(ctx context.Context, period *entity.Period, seed *adapter.PeriodSeed) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(model.PeriodFromEntity(period)).Error; err != nil {
			return err
		}
		if seed == nil {
			return nil
		}
		for _, membership := range seed.Memberships {
			if err := tx.Create(model.PeriodMembershipFromEntity(membership)).Error; err != nil {
				return err
			}
		}
		for _, entry := range seed.Entries {
			if err := tx.Create(model.LedgerEntryFromEntity(entry)).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// FindByID retrieves a period by its ID.
func (r *periodRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Period, error) {
	var m model.PeriodModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&m)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return m.ToEntity(), nil
}

// FindByName retrieves a period by its exact name.
func (r *periodRepository) FindByName(ctx context.Context, name string) (*entity.Period, error) {
	var m model.PeriodModel
	result := r.db.WithContext(ctx).Where("name = ?", name).First(&m)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return m.ToEntity(), nil
}

// FindLatest retrieves the most recently started period.
func (r *periodRepository) FindLatest(ctx context.Context) (*entity.Period, error) {
	var m model.PeriodModel
	result := r.db.WithContext(ctx).Order("start_date DESC").First(&m)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return m.ToEntity(), nil
}

// FindAll retrieves all periods ordered by start date descending.
func (r *periodRepository) FindAll(ctx context.Context) ([]*entity.Period, error) {
	var models []model.PeriodModel
	if err := r.db.WithContext(ctx).Order("start_date DESC").Find(&models).Error; err != nil {
		return nil, err
	}
	periods := make([]*entity.Period, len(models))
	for i, m := range models {
		periods[i] = m.ToEntity()
	}
	return periods, nil
}

// Update updates an existing period in the database.
func (r *periodRepository) Update(ctx context.Context, period *entity.Period) error {
	return r.db.WithContext(ctx).Save(model.PeriodFromEntity(period)).Error
}

// Delete removes a period together with its ledger entries and
// memberships in one transaction.
func (r *periodRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("period_id = ?", id).Delete(&model.LedgerEntryModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("period_id = ?", id).Delete(&model.PeriodMembershipModel{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&model.PeriodModel{}).Error
	})
}

// FindMembership retrieves the draw membership of one member in one period.
func (r *periodRepository) FindMembership(ctx context.Context, periodID, memberID uuid.UUID) (*entity.PeriodMembership, error) {
	var m model.PeriodMembershipModel
	result := r.db.WithContext(ctx).
		Where("period_id = ? AND member_id = ?", periodID, memberID).
		First(&m)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return m.ToEntity(), nil
}

// FindMemberships retrieves the memberships of a period with their members.
func (r *periodRepository) FindMemberships(ctx context.Context, periodID uuid.UUID, status *entity.DrawStatus) ([]*entity.MembershipWithMember, error) {
	query := r.db.WithContext(ctx).
		Preload("Member").
		Where("period_id = ?", periodID)
	if status != nil {
		query = query.Where("status = ?", string(*status))
	}

	var models []model.PeriodMembershipModel
	if err := query.Order("created_at").Find(&models).Error; err != nil {
		return nil, err
	}

	memberships := make([]*entity.MembershipWithMember, len(models))
	for i, m := range models {
		item := &entity.MembershipWithMember{Membership: m.ToEntity()}
		if m.Member != nil {
			item.Member = m.Member.ToEntity()
		}
		memberships[i] = item
	}
	return memberships, nil
}

// CreateMemberships inserts draw memberships.
func (r *periodRepository) CreateMemberships(ctx context.Context, memberships []*entity.PeriodMembership) error {
	models := make([]*model.PeriodMembershipModel, len(memberships))
	for i, m := range memberships {
		models[i] = model.PeriodMembershipFromEntity(m)
	}
	return r.db.WithContext(ctx).Create(models).Error
}

// UpdateMembership updates an existing membership row.
func (r *periodRepository) UpdateMembership(ctx context.Context, membership *entity.PeriodMembership) error {
	return r.db.WithContext(ctx).Save(model.PeriodMembershipFromEntity(membership)).Error
}
