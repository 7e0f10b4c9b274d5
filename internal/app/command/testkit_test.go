package command

import (
	"context"
	"testing"

	"unitsim/internal/app/ports"
	"unitsim/internal/domain/geom"
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

type conflictOnSaveStateRepo struct {
	stubStateRepo
}

func (r *conflictOnSaveStateRepo) SaveWithVersion(_ context.Context, _ ports.UnitRecord, _ int64) error {
	return ports.ErrConflict
}

type stubCommandRepo struct {
	byKey map[string]ports.CommandExecutionRecord
}

func (r *stubCommandRepo) GetByIdempotencyKey(_ context.Context, unitID, key string) (*ports.CommandExecutionRecord, error) {
	record, ok := r.byKey[unitID+"|"+key]
	if !ok {
		return nil, ports.ErrNotFound
	}
	copy := record
	return &copy, nil
}

func (r *stubCommandRepo) SaveExecution(_ context.Context, execution ports.CommandExecutionRecord) error {
	if r.byKey == nil {
		r.byKey = map[string]ports.CommandExecutionRecord{}
	}
	r.byKey[execution.UnitID+"|"+execution.IdempotencyKey] = execution
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

type stubMetrics struct {
	successCalls  int
	conflictCalls int
	failureCalls  int
	lastResult    unit.ResultCode
}

func (m *stubMetrics) RecordSuccess(resultCode unit.ResultCode) {
	m.successCalls++
	m.lastResult = resultCode
}

func (m *stubMetrics) RecordConflict() {
	m.conflictCalls++
}

func (m *stubMetrics) RecordFailure() {
	m.failureCalls++
}

type scriptedRandom struct {
	ints   []int
	floats []float64
}

func (s *scriptedRandom) IntN(n int) int {
	if len(s.ints) == 0 {
		return 0
	}
	v := s.ints[0]
	s.ints = s.ints[1:]
	if v >= n {
		v = n - 1
	}
	return v
}

func (s *scriptedRandom) Float64() float64 {
	if len(s.floats) == 0 {
		return 0
	}
	v := s.floats[0]
	s.floats = s.floats[1:]
	return v
}

func newUnitState(t *testing.T, name string, x, y, z int) unit.Snapshot {
	t.Helper()
	u, err := unit.New(unit.Config{
		Position:  geom.Vec3{X: float64(x), Y: float64(y), Z: float64(z)},
		Name:      name,
		Weight:    50,
		Strength:  50,
		Agility:   50,
		Toughness: 50,
	})
	if err != nil {
		t.Fatalf("new unit: %v", err)
	}
	return u.Snapshot()
}

func newUseCase(states map[string]ports.UnitRecord, rng unit.RandomSource) (UseCase, *stubStateRepo, *stubCommandRepo, *stubEventRepo, *stubMetrics) {
	stateRepo := &stubStateRepo{byUnit: states}
	commandRepo := &stubCommandRepo{byKey: map[string]ports.CommandExecutionRecord{}}
	eventRepo := &stubEventRepo{}
	metrics := &stubMetrics{}
	uc := UseCase{
		TxManager:   stubTxManager{},
		StateRepo:   stateRepo,
		CommandRepo: commandRepo,
		EventRepo:   eventRepo,
		Metrics:     metrics,
		Random:      rng,
	}
	return uc, stateRepo, commandRepo, eventRepo, metrics
}
