package spawn

import (
	"context"

	"unitsim/internal/app/ports"
	"unitsim/internal/domain/unit"
)

type stubTxManager struct{}

func (stubTxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type stubStateRepo struct {
	byUnit map[string]ports.UnitRecord
}

func (r *stubStateRepo) GetByUnitID(_ context.Context, unitID string) (ports.UnitRecord, error) {
	record, ok := r.byUnit[unitID]
	if !ok {
		return ports.UnitRecord{}, ports.ErrNotFound
	}
	return record, nil
}

func (r *stubStateRepo) SaveWithVersion(_ context.Context, record ports.UnitRecord, expectedVersion int64) error {
	current, ok := r.byUnit[record.UnitID]
	if !ok {
		if expectedVersion != 0 {
			return ports.ErrConflict
		}
		record.Version = 1
		r.byUnit[record.UnitID] = record
		return nil
	}
	if current.Version != expectedVersion {
		return ports.ErrConflict
	}
	record.Version = expectedVersion + 1
	r.byUnit[record.UnitID] = record
	return nil
}

type stubEventRepo struct {
	events []unit.DomainEvent
}

func (r *stubEventRepo) Append(_ context.Context, _ string, events []unit.DomainEvent) error {
	r.events = append(r.events, events...)
	return nil
}

func (r *stubEventRepo) ListByUnitID(_ context.Context, _ string, limit int) ([]unit.DomainEvent, error) {
	if limit <= 0 || limit > len(r.events) {
		limit = len(r.events)
	}
	out := make([]unit.DomainEvent, limit)
	copy(out, r.events[:limit])
	return out, nil
}
