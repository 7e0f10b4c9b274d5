package spawn

import (
	"context"
	"errors"
	"strings"
	"time"

	"unitsim/internal/app/ports"
	"unitsim/internal/domain/geom"
	"unitsim/internal/domain/unit"
)

var ErrInvalidRequest = errors.New("invalid spawn request")

type UseCase struct {
	TxManager ports.TxManager
	StateRepo ports.UnitStateRepository
	EventRepo ports.EventRepository
	Boundary  unit.Boundary
	Random    unit.RandomSource
	Idle      unit.IdleBehavior
	Now       func() time.Time
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	req.UnitID = strings.TrimSpace(req.UnitID)
	if req.UnitID == "" {
		return Response{}, ErrInvalidRequest
	}

	created, err := unit.New(unit.Config{
		Position:     geom.Vec3{X: float64(req.X), Y: float64(req.Y), Z: float64(req.Z)},
		Name:         req.Name,
		Weight:       req.Weight,
		Strength:     req.Strength,
		Agility:      req.Agility,
		Toughness:    req.Toughness,
		AutoBehavior: req.AutoBehavior,
		Boundary:     u.Boundary,
		Random:       u.Random,
		Idle:         u.Idle,
	})
	if err != nil {
		return Response{}, err
	}

	nowFn := u.Now
	if nowFn == nil {
		nowFn = time.Now
	}

	state := created.Snapshot()
	err = u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		record := ports.UnitRecord{UnitID: req.UnitID, State: state}
		if err := u.StateRepo.SaveWithVersion(txCtx, record, 0); err != nil {
			return err
		}
		event := unit.DomainEvent{
			Type:       "unit_spawned",
			OccurredAt: nowFn(),
			Payload: map[string]any{
				"unit_id": req.UnitID,
				"name":    state.Name,
				"x":       state.Position.X,
				"y":       state.Position.Y,
				"z":       state.Position.Z,
			},
		}
		return u.EventRepo.Append(txCtx, req.UnitID, []unit.DomainEvent{event})
	})
	if err != nil {
		return Response{}, err
	}

	return Response{UnitID: req.UnitID, State: state}, nil
}
