package observe

import (
	"context"
	"errors"
	"strings"

	"unitsim/internal/app/ports"
	"unitsim/internal/domain/unit"
)

var ErrInvalidRequest = errors.New("invalid observe request")

type UseCase struct {
	StateRepo ports.UnitStateRepository
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	if strings.TrimSpace(req.UnitID) == "" {
		return Response{}, ErrInvalidRequest
	}
	record, err := u.StateRepo.GetByUnitID(ctx, req.UnitID)
	if err != nil {
		return Response{}, err
	}
	s := record.State
	x, y, z := s.Position.Cell()
	return Response{
		UnitID:    record.UnitID,
		State:     s,
		Version:   record.Version,
		Cell:      [3]int{x, y, z},
		Sprinting: s.Sprinting && s.Activity == unit.ActivityWalking,
		Locked:    s.LockRemaining > 0,
	}, nil
}
