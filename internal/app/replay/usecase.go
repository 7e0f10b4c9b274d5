package replay

import (
	"context"
	"errors"
	"strings"

	"unitsim/internal/app/ports"
	"unitsim/internal/domain/unit"
)

var ErrInvalidRequest = errors.New("invalid replay request")

type UseCase struct {
	Events ports.EventRepository
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	if strings.TrimSpace(req.UnitID) == "" {
		return Response{}, ErrInvalidRequest
	}
	events, err := u.Events.ListByUnitID(ctx, req.UnitID, req.Limit)
	if err != nil {
		return Response{}, err
	}
	events = filterByTimeWindow(events, req.OccurredFrom, req.OccurredTo)
	latest := reconstruct(events)
	latest.UnitID = req.UnitID
	return Response{Events: events, LatestState: latest}, nil
}

func filterByTimeWindow(events []unit.DomainEvent, from, to int64) []unit.DomainEvent {
	if from <= 0 && to <= 0 {
		return events
	}
	out := make([]unit.DomainEvent, 0, len(events))
	for _, evt := range events {
		ts := evt.OccurredAt.Unix()
		if from > 0 && ts < from {
			continue
		}
		if to > 0 && ts > to {
			continue
		}
		out = append(out, evt)
	}
	return out
}

func reconstruct(events []unit.DomainEvent) LatestState {
	state := LatestState{}
	for _, evt := range events {
		after, ok := evt.Payload["state_after"].(map[string]any)
		if !ok {
			continue
		}
		state.Activity, _ = after["activity"].(string)
		state.Health = num(after["health"])
		state.Stamina = num(after["stamina"])
		state.X = num(after["x"])
		state.Y = num(after["y"])
		state.Z = num(after["z"])
		state.Incapacitated, _ = after["incapacitated"].(bool)
	}
	return state
}

func num(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int64:
		return float64(n)
	default:
		return 0
	}
}
