package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/rukun-warga/backend/internal/application/adapter"
	"github.com/rukun-warga/backend/internal/domain/entity"
	"github.com/rukun-warga/backend/internal/integration/persistence/model"
)

// memberRepository implements the adapter.MemberRepository interface.
type memberRepository struct {
	db *gorm.DB
}

// NewMemberRepository creates a new member repository instance.
func NewMemberRepository(db *gorm.DB) adapter.MemberRepository {
	return &memberRepository{
		db: db,
	}
}

// Create creates a new member in the database.
func (r *memberRepository) Create(ctx context.Context, member *entity.Member) error {
	return r.db.WithContext(ctx).Create(model.MemberFromEntity(member)).Error
}

// FindByID retrieves a member by its ID.
func (r *memberRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Member, error) {
	var m model.MemberModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&m)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return m.ToEntity(), nil
}

// FindByFilter retrieves members matching the filter with their paid
// dues total for the given period.
func (r *memberRepository) FindByFilter(ctx context.Context, filter adapter.MemberFilter, pagination adapter.MemberPagination, duesPeriodID *uuid.UUID) (*entity.MemberListResult, error) {
	query := r.db.WithContext(ctx).Model(&model.MemberModel{})
	if filter.Unit != "" {
		query = query.Where("unit = ?", filter.Unit)
	}
	if filter.Role != nil {
		query = query.Where("role = ?", string(*filter.Role))
	}
	if filter.Search != "" {
		query = query.Where("LOWER(name) LIKE LOWER(?)", "%"+filter.Search+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	var models []model.MemberModel
	offset := (pagination.Page - 1) * pagination.PerPage
	if err := query.Order("unit, name").Offset(offset).Limit(pagination.PerPage).Find(&models).Error; err != nil {
		return nil, err
	}

	totals, err := r.duesTotals(ctx, models, duesPeriodID)
	if err != nil {
		return nil, err
	}

	members := make([]*entity.MemberWithDues, len(models))
	for i, m := range models {
		members[i] = &entity.MemberWithDues{
			Member:    m.ToEntity(),
			DuesTotal: totals[m.ID],
		}
	}

	lastPage := int((total + int64(pagination.PerPage) - 1) / int64(pagination.PerPage))
	if lastPage < 1 {
		lastPage = 1
	}

	return &entity.MemberListResult{
		Members:  members,
		Total:    total,
		Page:     pagination.Page,
		PerPage:  pagination.PerPage,
		LastPage: lastPage,
	}, nil
}

// duesTotals sums paid dues ledger amounts per member for one period.
func (r *memberRepository) duesTotals(ctx context.Context, members []model.MemberModel, periodID *uuid.UUID) (map[uuid.UUID]decimal.Decimal, error) {
	totals := make(map[uuid.UUID]decimal.Decimal, len(members))
	for _, m := range members {
		totals[m.ID] = decimal.Zero
	}
	if periodID == nil || len(members) == 0 {
		return totals, nil
	}

	ids := make([]uuid.UUID, len(members))
	for i, m := range members {
		ids[i] = m.ID
	}

	type memberTotal struct {
		MemberID uuid.UUID
		Total    decimal.Decimal
	}
	var rows []memberTotal
	err := r.db.WithContext(ctx).
		Model(&model.LedgerEntryModel{}).
		Select("member_id, COALESCE(SUM(amount), 0) AS total").
		Where("fund = ? AND period_id = ? AND status = ? AND member_id IN ?",
			string(entity.LedgerFundDues), *periodID, string(entity.PaymentStatusPaid), ids).
		Group("member_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		totals[row.MemberID] = row.Total
	}
	return totals, nil
}

// FindByCategory retrieves all members of the given category.
func (r *memberRepository) FindByCategory(ctx context.Context, category entity.MemberCategory) ([]*entity.Member, error) {
	var models []model.MemberModel
	err := r.db.WithContext(ctx).
		Where("category = ?", string(category)).
		Order("unit, name").
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	return toMemberEntities(models), nil
}

// FindAll retrieves every member.
func (r *memberRepository) FindAll(ctx context.Context) ([]*entity.Member, error) {
	var models []model.MemberModel
	if err := r.db.WithContext(ctx).Order("unit, name").Find(&models).Error; err != nil {
		return nil, err
	}
	return toMemberEntities(models), nil
}

// ExistsByID checks whether a member exists.
func (r *memberRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&model.MemberModel{}).Where("id = ?", id).Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

// Update updates an existing member in the database.
func (r *memberRepository) Update(ctx context.Context, member *entity.Member) error {
	return r.db.WithContext(ctx).Save(model.MemberFromEntity(member)).Error
}

// Delete removes a member together with its ledger entries and period
// memberships in one transaction.
func (r *memberRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("member_id = ?", id).Delete(&model.LedgerEntryModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("member_id = ?", id).Delete(&model.PeriodMembershipModel{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&model.MemberModel{}).Error
	})
}

func toMemberEntities(models []model.MemberModel) []*entity.Member {
	members := make([]*entity.Member, len(models))
	for i, m := range models {
		members[i] = m.ToEntity()
	}
	return members
}
