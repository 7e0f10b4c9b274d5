package memory

import (
	"context"

	"unitsim/internal/app/ports"
)

type UnitStateRepo struct {
	store *Store
}

func NewUnitStateRepo(store *Store) UnitStateRepo {
	return UnitStateRepo{store: store}
}

func (r UnitStateRepo) GetByUnitID(ctx context.Context, unitID string) (ports.UnitRecord, error) {
	if !inTx(ctx) {
		r.store.mu.RLock()
		defer r.store.mu.RUnlock()
	}
	record, ok := r.store.state[unitID]
	if !ok {
		return ports.UnitRecord{}, ports.ErrNotFound
	}
	return record, nil
}

func (r UnitStateRepo) SaveWithVersion(ctx context.Context, record ports.UnitRecord, expectedVersion int64) error {
	if !inTx(ctx) {
		r.store.mu.Lock()
		defer r.store.mu.Unlock()
	}
	current, ok := r.store.state[record.UnitID]
	if !ok {
		if expectedVersion != 0 {
			return ports.ErrConflict
		}
		record.Version = 1
		r.store.state[record.UnitID] = record
		return nil
	}
	if current.Version != expectedVersion {
		return ports.ErrConflict
	}
	record.Version = expectedVersion + 1
	r.store.state[record.UnitID] = record
	return nil
}
