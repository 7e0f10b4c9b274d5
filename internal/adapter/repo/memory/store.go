package memory

import (
	"sync"

	"unitsim/internal/app/ports"
	"unitsim/internal/domain/unit"
)

type Store struct {
	mu        sync.RWMutex
	state     map[string]ports.UnitRecord
	execution map[string]ports.CommandExecutionRecord
	events    map[string][]unit.DomainEvent
}

func NewStore() *Store {
	return &Store{
		state:     make(map[string]ports.UnitRecord),
		execution: make(map[string]ports.CommandExecutionRecord),
		events:    make(map[string][]unit.DomainEvent),
	}
}

func execKey(unitID, key string) string {
	return unitID + "::" + key
}

func (s *Store) SeedState(record ports.UnitRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state[record.UnitID] = record
}
