package recap

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/rukun-warga/backend/internal/application/adapter"
	"github.com/rukun-warga/backend/internal/domain/entity"
)

var errNotImplemented = errors.New("not implemented in fake")

type fakePeriodRepo struct {
	periods map[uuid.UUID]*entity.Period
	latest  *entity.Period
}

func (f *fakePeriodRepo) CreateWithSeed(ctx context.Context, period *entity.Period, seed *adapter.PeriodSeed) error {
	return errNotImplemented
}

func (f *fakePeriodRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Period, error) {
	return f.periods[id], nil
}

func (f *fakePeriodRepo) FindByName(ctx context.Context, name string) (*entity.Period, error) {
	return nil, errNotImplemented
}

func (f *fakePeriodRepo) FindLatest(ctx context.Context) (*entity.Period, error) {
	return f.latest, nil
}

func (f *fakePeriodRepo) FindAll(ctx context.Context) ([]*entity.Period, error) {
	return nil, errNotImplemented
}

func (f *fakePeriodRepo) Update(ctx context.Context, period *entity.Period) error {
	return errNotImplemented
}

func (f *fakePeriodRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return errNotImplemented
}

func (f *fakePeriodRepo) FindMembership(ctx context.Context, periodID, memberID uuid.UUID) (*entity.PeriodMembership, error) {
	return nil, errNotImplemented
}

func (f *fakePeriodRepo) FindMemberships(ctx context.Context, periodID uuid.UUID, status *entity.DrawStatus) ([]*entity.MembershipWithMember, error) {
	return nil, errNotImplemented
}

func (f *fakePeriodRepo) CreateMemberships(ctx context.Context, memberships []*entity.PeriodMembership) error {
	return errNotImplemented
}

func (f *fakePeriodRepo) UpdateMembership(ctx context.Context, membership *entity.PeriodMembership) error {
	return errNotImplemented
}

type fakeLedgerRepo struct {
	rows       []*entity.MatrixRow
	units      []string
	lastFilter adapter.MatrixFilter

	upserted  []*entity.LedgerEntry
	upsertErr error
}

func (f *fakeLedgerRepo) QueryMatrix(ctx context.Context, filter adapter.MatrixFilter) ([]*entity.MatrixRow, error) {
	f.lastFilter = filter
	return f.rows, nil
}

func (f *fakeLedgerRepo) UpsertBatch(ctx context.Context, entries []*entity.LedgerEntry) error {
	if f.upsertErr != nil {
		return f.upsertErr
	}
	f.upserted = append(f.upserted, entries...)
	return nil
}

func (f *fakeLedgerRepo) DistinctUnits(ctx context.Context) ([]string, error) {
	return f.units, nil
}

func (f *fakeLedgerRepo) CreateEntries(ctx context.Context, entries []*entity.LedgerEntry) error {
	return errNotImplemented
}

type fakeMemberRepo struct {
	existing map[uuid.UUID]bool
}

func (f *fakeMemberRepo) Create(ctx context.Context, member *entity.Member) error {
	return errNotImplemented
}

func (f *fakeMemberRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Member, error) {
	return nil, errNotImplemented
}

func (f *fakeMemberRepo) FindByFilter(ctx context.Context, filter adapter.MemberFilter, pagination adapter.MemberPagination, duesPeriodID *uuid.UUID) (*entity.MemberListResult, error) {
	return nil, errNotImplemented
}

func (f *fakeMemberRepo) FindByCategory(ctx context.Context, category entity.MemberCategory) ([]*entity.Member, error) {
	return nil, errNotImplemented
}

func (f *fakeMemberRepo) FindAll(ctx context.Context) ([]*entity.Member, error) {
	return nil, errNotImplemented
}

func (f *fakeMemberRepo) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	return f.existing[id], nil
}

func (f *fakeMemberRepo) Update(ctx context.Context, member *entity.Member) error {
	return errNotImplemented
}

func (f *fakeMemberRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return errNotImplemented
}
