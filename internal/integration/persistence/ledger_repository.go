package persistence

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/rukun-warga/backend/internal/application/adapter"
	"github.com/rukun-warga/backend/internal/domain/entity"
	"github.com/rukun-warga/backend/internal/integration/persistence/model"
)

// ledgerRepository implements the adapter.LedgerRepository interface.
type ledgerRepository struct {
	db *gorm.DB
}

// NewLedgerRepository creates a new ledger repository instance.
func NewLedgerRepository(db *gorm.DB) adapter.LedgerRepository {
	return &ledgerRepository{
		db: db,
	}
}

// matrixRowScan receives the joined member x ledger rows. Date, Status
// and Amount come back NULL for members with no matching entries.
type matrixRowScan struct {
	MemberID uuid.UUID
	Name     string
	Unit     string
	Date     *string
	Status   *string
	Amount   *decimal.Decimal
}

// QueryMatrix left-joins members against ledger entries for the given
// fund and lattice. The join keeps members without entries visible;
// the amount bounds sit in the WHERE clause on the joined columns, so
// setting them drops entry-less members from the report.
func (r *ledgerRepository) QueryMatrix(ctx context.Context, filter adapter.MatrixFilter) ([]*entity.MatrixRow, error) {
	joinSQL := "LEFT JOIN ledger_entries ON ledger_entries.member_id = members.id" +
		" AND ledger_entries.fund = ? AND ledger_entries.date IN ?"
	joinArgs := []interface{}{string(filter.Fund), filter.Dates}

	if filter.PeriodID != nil {
		joinSQL += " AND ledger_entries.period_id = ?"
		joinArgs = append(joinArgs, *filter.PeriodID)
	}
	if filter.FromDate != "" {
		joinSQL += " AND ledger_entries.date >= ?"
		joinArgs = append(joinArgs, filter.FromDate)
	}
	if filter.ToDate != "" {
		joinSQL += " AND ledger_entries.date <= ?"
		joinArgs = append(joinArgs, filter.ToDate)
	}

	query := r.db.WithContext(ctx).
		Table("members").
		Select("members.id AS member_id, members.name, members.unit, ledger_entries.date, ledger_entries.status, ledger_entries.amount").
		Joins(joinSQL, joinArgs...)

	if filter.Search != "" {
		query = query.Where("LOWER(members.name) LIKE LOWER(?)", "%"+filter.Search+"%")
	}
	if filter.Unit != "" {
		query = query.Where("members.unit = ?", filter.Unit)
	}
	if filter.AmountMin != nil {
		query = query.Where("ledger_entries.amount >= ?", *filter.AmountMin)
	}
	if filter.AmountMax != nil {
		query = query.Where("ledger_entries.amount <= ?", *filter.AmountMax)
	}

	var scanned []matrixRowScan
	err := query.Order("members.unit, members.name, ledger_entries.date").Scan(&scanned).Error
	if err != nil {
		return nil, err
	}

	rows := make([]*entity.MatrixRow, len(scanned))
	for i, s := range scanned {
		row := &entity.MatrixRow{
			MemberID: s.MemberID,
			Name:     s.Name,
			Unit:     s.Unit,
			Amount:   s.Amount,
		}
		if s.Date != nil {
			row.Date = *s.Date
		}
		if s.Status != nil {
			status := entity.PaymentStatus(*s.Status)
			row.Status = &status
		}
		rows[i] = row
	}
	return rows, nil
}

// UpsertBatch writes all entries in one transaction, keyed
// (fund, member, period, date).
func (r *ledgerRepository) UpsertBatch(ctx context.Context, entries []*entity.LedgerEntry) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, entry := range entries {
			m := model.LedgerEntryFromEntity(entry)
			err := tx.Clauses(clause.OnConflict{
				Columns: []clause.Column{
					{Name: "fund"},
					{Name: "member_id"},
					{Name: "period_id"},
					{Name: "date"},
				},
				DoUpdates: clause.AssignmentColumns([]string{"status", "amount", "admin_id", "updated_at"}),
			}).Create(m).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
}

// DistinctUnits lists the distinct units of all members, sorted.
func (r *ledgerRepository) DistinctUnits(ctx context.Context) ([]string, error) {
	var units []string
	err := r.db.WithContext(ctx).
		Model(&model.MemberModel{}).
		Distinct("unit").
		Order("unit").
		Pluck("unit", &units).Error
	if err != nil {
		return nil, err
	}
	return units, nil
}

// CreateEntries inserts seed entries.
func (r *ledgerRepository) CreateEntries(ctx context.Context, entries []*entity.LedgerEntry) error {
	models := make([]*model.LedgerEntryModel, len(entries))
	for i, e := range entries {
		models[i] = model.LedgerEntryFromEntity(e)
	}
	return r.db.WithContext(ctx).Create(models).Error
}
