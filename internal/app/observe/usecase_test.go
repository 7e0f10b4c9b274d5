package observe

import (
	"context"
	"errors"
	"testing"

	"unitsim/internal/app/ports"
	"unitsim/internal/domain/geom"
	"unitsim/internal/domain/unit"
)

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

func (r *stubStateRepo) SaveWithVersion(_ context.Context, record ports.UnitRecord, _ int64) error {
	r.byUnit[record.UnitID] = record
	return nil
}

func newTestState(t *testing.T) unit.Snapshot {
	t.Helper()
	u, err := unit.New(unit.Config{
		Position:  geom.Vec3{X: 10, Y: 11, Z: 12},
		Name:      "Lucifer",
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

func TestExecute_ReturnsStoredState(t *testing.T) {
	state := newTestState(t)
	uc := UseCase{StateRepo: &stubStateRepo{byUnit: map[string]ports.UnitRecord{
		"u-1": {UnitID: "u-1", State: state, Version: 7},
	}}}

	out, err := uc.Execute(context.Background(), Request{UnitID: "u-1"})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}

	if out.UnitID != "u-1" || out.Version != 7 {
		t.Fatalf("unexpected identity: %+v", out)
	}
	if out.State != state {
		t.Fatalf("state mismatch: %+v", out.State)
	}
	if out.Cell != [3]int{10, 11, 12} {
		t.Fatalf("unexpected cell: %+v", out.Cell)
	}
	if out.Sprinting || out.Locked {
		t.Fatalf("idle unit must not report sprinting or locked")
	}
}

func TestExecute_DerivedFlags(t *testing.T) {
	state := newTestState(t)
	state.Activity = unit.ActivityWalking
	state.Sprinting = true
	state.LockRemaining = 0.4
	uc := UseCase{StateRepo: &stubStateRepo{byUnit: map[string]ports.UnitRecord{
		"u-1": {UnitID: "u-1", State: state, Version: 1},
	}}}

	out, err := uc.Execute(context.Background(), Request{UnitID: "u-1"})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !out.Sprinting {
		t.Fatalf("expected sprinting flag")
	}
	if !out.Locked {
		t.Fatalf("expected locked flag")
	}
}

func TestExecute_RejectsEmptyUnitID(t *testing.T) {
	uc := UseCase{StateRepo: &stubStateRepo{byUnit: map[string]ports.UnitRecord{}}}
	if _, err := uc.Execute(context.Background(), Request{}); err != ErrInvalidRequest {
		t.Fatalf("expected ErrInvalidRequest, got %v", err)
	}
}

func TestExecute_UnknownUnit(t *testing.T) {
	uc := UseCase{StateRepo: &stubStateRepo{byUnit: map[string]ports.UnitRecord{}}}
	if _, err := uc.Execute(context.Background(), Request{UnitID: "ghost"}); !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
