package gormrepo

import (
	"context"
	"encoding/json"
	"errors"

	"unitsim/internal/adapter/repo/gorm/model"
	"unitsim/internal/app/ports"
	"unitsim/internal/domain/unit"

	"gorm.io/gorm"
)

type CommandExecutionRepo struct {
	db *gorm.DB
}

func NewCommandExecutionRepo(db *gorm.DB) CommandExecutionRepo {
	return CommandExecutionRepo{db: db}
}

func (r CommandExecutionRepo) GetByIdempotencyKey(ctx context.Context, unitID, key string) (*ports.CommandExecutionRecord, error) {
	var m model.CommandExecution
	err := getDBFromCtx(ctx, r.db).
		Where(&model.CommandExecution{UnitID: unitID, IdempotencyKey: key}).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrNotFound
		}
		return nil, err
	}
	return &ports.CommandExecutionRecord{
		UnitID:         m.UnitID,
		IdempotencyKey: m.IdempotencyKey,
		CommandType:    m.CommandType,
		DT:             m.Dt,
		Result:         decodeResult(m),
		AppliedAt:      m.AppliedAt,
	}, nil
}

func (r CommandExecutionRepo) SaveExecution(ctx context.Context, execution ports.CommandExecutionRecord) error {
	stateJSON, _ := json.Marshal(execution.Result.UpdatedState)
	eventsJSON, _ := json.Marshal(execution.Result.Events)
	m := model.CommandExecution{
		UnitID:         execution.UnitID,
		IdempotencyKey: execution.IdempotencyKey,
		CommandType:    execution.CommandType,
		Dt:             execution.DT,
		ResultCode:     string(execution.Result.ResultCode),
		UpdatedState:   stateJSON,
		Events:         eventsJSON,
		AppliedAt:      execution.AppliedAt,
	}
	if err := getDBFromCtx(ctx, r.db).Create(&m).Error; err != nil {
		return err
	}
	return nil
}

func decodeResult(m model.CommandExecution) ports.CommandResult {
	var state unit.Snapshot
	var events []unit.DomainEvent
	_ = json.Unmarshal(m.UpdatedState, &state)
	_ = json.Unmarshal(m.Events, &events)
	return ports.CommandResult{
		UpdatedState: state,
		Events:       events,
		ResultCode:   unit.ResultCode(m.ResultCode),
	}
}
