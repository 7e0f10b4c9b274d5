package memory

import (
	"context"

	"unitsim/internal/app/ports"
	"unitsim/internal/domain/unit"
)

type EventRepo struct {
	store *Store
}

func NewEventRepo(store *Store) EventRepo {
	return EventRepo{store: store}
}

func (r EventRepo) Append(ctx context.Context, unitID string, events []unit.DomainEvent) error {
	if !inTx(ctx) {
		r.store.mu.Lock()
		defer r.store.mu.Unlock()
	}
	r.store.events[unitID] = append(r.store.events[unitID], events...)
	return nil
}

func (r EventRepo) ListByUnitID(ctx context.Context, unitID string, limit int) ([]unit.DomainEvent, error) {
	if !inTx(ctx) {
		r.store.mu.RLock()
		defer r.store.mu.RUnlock()
	}
	events := r.store.events[unitID]
	if len(events) == 0 {
		return nil, ports.ErrNotFound
	}
	if limit > 0 && limit < len(events) {
		events = events[len(events)-limit:]
	}
	out := make([]unit.DomainEvent, len(events))
	copy(out, events)
	return out, nil
}
