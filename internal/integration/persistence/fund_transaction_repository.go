package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/rukun-warga/backend/internal/application/adapter"
	"github.com/rukun-warga/backend/internal/domain/entity"
	"github.com/rukun-warga/backend/internal/integration/persistence/model"
)

// fundTransactionRepository implements the
// adapter.FundTransactionRepository interface.
type fundTransactionRepository struct {
	db *gorm.DB
}

// NewFundTransactionRepository creates a new fund transaction
// repository instance.
func NewFundTransactionRepository(db *gorm.DB) adapter.FundTransactionRepository {
	return &fundTransactionRepository{
		db: db,
	}
}

// Create creates a new fund transaction in the database.
func (r *fundTransactionRepository) Create(ctx context.Context, transaction *entity.FundTransaction) error {
	return r.db.WithContext(ctx).Create(model.FundTransactionFromEntity(transaction)).Error
}

// FindByID retrieves a fund transaction by its ID within a fund.
func (r *fundTransactionRepository) FindByID(ctx context.Context, fund entity.CashFund, id uuid.UUID) (*entity.FundTransaction, error) {
	var m model.FundTransactionModel
	result := r.db.WithContext(ctx).Where("fund = ? AND id = ?", string(fund), id).First(&m)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return m.ToEntity(), nil
}

// FindByFilter retrieves the full filtered set ordered by date
// ascending, then creation time ascending.
func (r *fundTransactionRepository) FindByFilter(ctx context.Context, filter adapter.FundTransactionFilter) ([]*entity.FundTransaction, error) {
	query := r.db.WithContext(ctx).
		Model(&model.FundTransactionModel{}).
		Where("fund = ?", string(filter.Fund))

	if filter.Date != "" {
		query = query.Where("date = ?", filter.Date)
	} else {
		if filter.FromDate != "" {
			query = query.Where("date >= ?", filter.FromDate)
		}
		if filter.ToDate != "" {
			query = query.Where("date <= ?", filter.ToDate)
		}
	}
	if filter.Type != nil {
		query = query.Where("type = ?", string(*filter.Type))
	}
	if filter.Search != "" {
		query = query.Where("LOWER(memo) LIKE LOWER(?)", "%"+filter.Search+"%")
	}
	if filter.AmountMin != nil {
		query = query.Where("amount >= ?", *filter.AmountMin)
	}
	if filter.AmountMax != nil {
		query = query.Where("amount <= ?", *filter.AmountMax)
	}

	var models []model.FundTransactionModel
	if err := query.Order("date, created_at").Find(&models).Error; err != nil {
		return nil, err
	}

	transactions := make([]*entity.FundTransaction, len(models))
	for i, m := range models {
		transactions[i] = m.ToEntity()
	}
	return transactions, nil
}

// GetSummary aggregates inflow and outflow totals for a fund.
func (r *fundTransactionRepository) GetSummary(ctx context.Context, fund entity.CashFund, year *int) (*entity.FundSummary, error) {
	type flowTotal struct {
		Type  string
		Total decimal.Decimal
	}

	query := r.db.WithContext(ctx).
		Model(&model.FundTransactionModel{}).
		Select("type, COALESCE(SUM(amount), 0) AS total").
		Where("fund = ?", string(fund))
	if year != nil {
		// Dates are ISO strings, so a prefix match selects the year.
		query = query.Where("date LIKE ?", fmt.Sprintf("%04d-%%", *year))
	}

	var rows []flowTotal
	if err := query.Group("type").Scan(&rows).Error; err != nil {
		return nil, err
	}

	summary := &entity.FundSummary{
		TotalInflow:  decimal.Zero,
		TotalOutflow: decimal.Zero,
	}
	for _, row := range rows {
		switch entity.FlowType(row.Type) {
		case entity.FlowTypeInflow:
			summary.TotalInflow = row.Total
		case entity.FlowTypeOutflow:
			summary.TotalOutflow = row.Total
		}
	}
	summary.Balance = summary.TotalInflow.Sub(summary.TotalOutflow)
	return summary, nil
}

// GetFundBalance returns the signed sum over the whole fund stream.
func (r *fundTransactionRepository) GetFundBalance(ctx context.Context, fund entity.CashFund) (decimal.Decimal, error) {
	summary, err := r.GetSummary(ctx, fund, nil)
	if err != nil {
		return decimal.Zero, err
	}
	return summary.Balance, nil
}

// Update updates an existing fund transaction in the database.
func (r *fundTransactionRepository) Update(ctx context.Context, transaction *entity.FundTransaction) error {
	return r.db.WithContext(ctx).Save(model.FundTransactionFromEntity(transaction)).Error
}

// Delete removes a fund transaction from the database.
func (r *fundTransactionRepository) Delete(ctx context.Context, fund entity.CashFund, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("fund = ? AND id = ?", string(fund), id).
		Delete(&model.FundTransactionModel{}).Error
}
