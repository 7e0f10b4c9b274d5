package memory

import (
	"context"

	"unitsim/internal/app/ports"
)

type CommandExecutionRepo struct {
	store *Store
}

func NewCommandExecutionRepo(store *Store) CommandExecutionRepo {
	return CommandExecutionRepo{store: store}
}

func (r CommandExecutionRepo) GetByIdempotencyKey(ctx context.Context, unitID, key string) (*ports.CommandExecutionRecord, error) {
	if !inTx(ctx) {
		r.store.mu.RLock()
		defer r.store.mu.RUnlock()
	}
	record, ok := r.store.execution[execKey(unitID, key)]
	if !ok {
		return nil, ports.ErrNotFound
	}
	copy := record
	return &copy, nil
}

func (r CommandExecutionRepo) SaveExecution(ctx context.Context, execution ports.CommandExecutionRecord) error {
	if !inTx(ctx) {
		r.store.mu.Lock()
		defer r.store.mu.Unlock()
	}
	r.store.execution[execKey(execution.UnitID, execution.IdempotencyKey)] = execution
	return nil
}
