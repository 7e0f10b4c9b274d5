package command

import (
	"context"
	"errors"
	"strings"
	"time"

	"unitsim/internal/app/ports"
	"unitsim/internal/domain/unit"
)

var (
	ErrInvalidRequest   = errors.New("invalid command request")
	ErrInvalidParams    = errors.New("invalid command params")
	ErrSprintNotAllowed = errors.New("sprint not allowed in current state")
)

const (
	CommandMoveTo         = "move_to"
	CommandMoveToAdjacent = "move_to_adjacent"
	CommandAttack         = "attack"
	CommandStartWork      = "start_work"
	CommandStartRest      = "start_rest"
	CommandStartSprint    = "start_sprint"
	CommandStopSprint     = "stop_sprint"
	CommandAdvance        = "advance"
)

// maxAdvanceSeconds bounds a single advance request; longer spans are
// expected to arrive as repeated commands.
const maxAdvanceSeconds = 60.0

type UseCase struct {
	TxManager   ports.TxManager
	StateRepo   ports.UnitStateRepository
	CommandRepo ports.CommandExecutionRepository
	EventRepo   ports.EventRepository
	Metrics     ports.CommandMetrics
	Boundary    unit.Boundary
	Random      unit.RandomSource
	Idle        unit.IdleBehavior
	Now         func() time.Time
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	req.UnitID = strings.TrimSpace(req.UnitID)
	req.IdempotencyKey = strings.TrimSpace(req.IdempotencyKey)
	req.Command.Type = strings.TrimSpace(req.Command.Type)
	req.Command.TargetID = strings.TrimSpace(req.Command.TargetID)
	if req.UnitID == "" || req.IdempotencyKey == "" || !isSupportedCommandType(req.Command.Type) {
		return Response{}, ErrInvalidRequest
	}
	if !hasValidCommandParams(req.UnitID, req.Command) {
		return Response{}, ErrInvalidParams
	}

	nowFn := u.Now
	if nowFn == nil {
		nowFn = time.Now
	}

	var out Response
	err := u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		exec, err := u.CommandRepo.GetByIdempotencyKey(txCtx, req.UnitID, req.IdempotencyKey)
		if err == nil && exec != nil {
			out = Response{
				UpdatedState: exec.Result.UpdatedState,
				Events:       exec.Result.Events,
				ResultCode:   exec.Result.ResultCode,
			}
			return nil
		}
		if err != nil && !errors.Is(err, ports.ErrNotFound) {
			return err
		}

		record, err := u.StateRepo.GetByUnitID(txCtx, req.UnitID)
		if err != nil {
			return err
		}
		target, err := unit.Restore(record.State, unit.RestoreConfig{
			Boundary: u.Boundary,
			Random:   u.Random,
			Idle:     u.Idle,
		})
		if err != nil {
			return err
		}
		before := target.Snapshot()

		events := []unit.DomainEvent{}
		if before.Incapacitated {
			out = Response{UpdatedState: before, Events: events, ResultCode: unit.ResultIncapacitated}
			return u.saveExecution(txCtx, req, out, nowFn())
		}

		if req.Command.Type == CommandAttack {
			evts, err := u.applyAttack(txCtx, req, target, nowFn())
			if err != nil {
				return err
			}
			events = append(events, evts...)
		} else if err := applyCommand(target, req.Command); err != nil {
			return err
		}

		after := target.Snapshot()
		code := unit.ResultApplied
		if after == before {
			code = unit.ResultIgnored
		}

		if err := u.StateRepo.SaveWithVersion(txCtx, ports.UnitRecord{
			UnitID:  req.UnitID,
			State:   after,
			Version: record.Version,
		}, record.Version); err != nil {
			return err
		}

		events = append(events, unit.DomainEvent{
			Type:       "command_applied",
			OccurredAt: nowFn(),
			Payload: map[string]any{
				"unit_id":     req.UnitID,
				"command":     req.Command.Type,
				"result_code": string(code),
				"state_after": statePayload(after),
			},
		})

		out = Response{UpdatedState: after, Events: events, ResultCode: code}
		if err := u.saveExecution(txCtx, req, out, nowFn()); err != nil {
			return err
		}
		return u.EventRepo.Append(txCtx, req.UnitID, events)
	})
	if err != nil {
		if u.Metrics != nil {
			if errors.Is(err, ports.ErrConflict) {
				u.Metrics.RecordConflict()
			} else {
				u.Metrics.RecordFailure()
			}
		}
		return Response{}, err
	}
	if u.Metrics != nil {
		u.Metrics.RecordSuccess(out.ResultCode)
	}

	return out, nil
}

func (u UseCase) saveExecution(ctx context.Context, req Request, out Response, appliedAt time.Time) error {
	return u.CommandRepo.SaveExecution(ctx, ports.CommandExecutionRecord{
		UnitID:         req.UnitID,
		IdempotencyKey: req.IdempotencyKey,
		CommandType:    req.Command.Type,
		DT:             req.Command.DT,
		Result: ports.CommandResult{
			UpdatedState: out.UpdatedState,
			Events:       out.Events,
			ResultCode:   out.ResultCode,
		},
		AppliedAt: appliedAt,
	})
}

// applyAttack loads the victim inside the same transaction, runs the
// synchronous exchange and persists the victim's new state.
func (u UseCase) applyAttack(ctx context.Context, req Request, attacker *unit.Unit, now time.Time) ([]unit.DomainEvent, error) {
	victimRecord, err := u.StateRepo.GetByUnitID(ctx, req.Command.TargetID)
	if err != nil {
		return nil, err
	}
	victim, err := unit.Restore(victimRecord.State, unit.RestoreConfig{
		Boundary: u.Boundary,
		Random:   u.Random,
		Idle:     u.Idle,
	})
	if err != nil {
		return nil, err
	}
	victimBefore := victim.Snapshot()

	attacker.Attack(victim)

	victimAfter := victim.Snapshot()
	if victimAfter == victimBefore {
		return nil, nil
	}
	if err := u.StateRepo.SaveWithVersion(ctx, ports.UnitRecord{
		UnitID:  req.Command.TargetID,
		State:   victimAfter,
		Version: victimRecord.Version,
	}, victimRecord.Version); err != nil {
		return nil, err
	}
	return []unit.DomainEvent{{
		Type:       "attack_resolved",
		OccurredAt: now,
		Payload: map[string]any{
			"unit_id":              req.UnitID,
			"target_id":            req.Command.TargetID,
			"target_health":        victimAfter.Health,
			"target_incapacitated": victimAfter.Incapacitated,
		},
	}}, nil
}

func applyCommand(target *unit.Unit, cmd Command) error {
	switch cmd.Type {
	case CommandMoveTo:
		return target.MoveTo(cmd.X, cmd.Y, cmd.Z)
	case CommandMoveToAdjacent:
		return target.MoveToAdjacent(cmd.DX, cmd.DY, cmd.DZ)
	case CommandStartWork:
		target.StartWork()
		return nil
	case CommandStartRest:
		target.StartRest()
		return nil
	case CommandStartSprint:
		if target.Activity() != unit.ActivityWalking || target.Stamina() <= 0 {
			return ErrSprintNotAllowed
		}
		target.StartSprint()
		return nil
	case CommandStopSprint:
		if !target.IsSprinting() {
			return ErrSprintNotAllowed
		}
		target.StopSprint()
		return nil
	case CommandAdvance:
		return advanceBy(target, cmd.DT)
	default:
		return ErrInvalidRequest
	}
}

// advanceBy settles an arbitrary span as a run of fixed-size ticks.
func advanceBy(target *unit.Unit, seconds float64) error {
	remaining := seconds
	for remaining > 1e-9 {
		step := remaining
		if step > unit.MaxTickSeconds {
			step = unit.MaxTickSeconds
		}
		if err := target.Advance(step); err != nil {
			return err
		}
		remaining -= step
	}
	return nil
}

func isSupportedCommandType(t string) bool {
	switch t {
	case CommandMoveTo, CommandMoveToAdjacent, CommandAttack, CommandAdvance:
		return true
	case CommandStartWork, CommandStartRest, CommandStartSprint, CommandStopSprint:
		return true
	default:
		return false
	}
}

func hasValidCommandParams(unitID string, cmd Command) bool {
	switch cmd.Type {
	case CommandAttack:
		return cmd.TargetID != "" && cmd.TargetID != unitID
	case CommandAdvance:
		return cmd.DT > 0 && cmd.DT <= maxAdvanceSeconds
	default:
		return true
	}
}

func statePayload(s unit.Snapshot) map[string]any {
	return map[string]any{
		"activity":      string(s.Activity),
		"health":        s.Health,
		"stamina":       s.Stamina,
		"x":             s.Position.X,
		"y":             s.Position.Y,
		"z":             s.Position.Z,
		"incapacitated": s.Incapacitated,
	}
}
