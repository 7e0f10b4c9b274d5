package ports

import (
	"context"
	"time"

	"unitsim/internal/domain/unit"
)

type UnitRecord struct {
	UnitID  string
	State   unit.Snapshot
	Version int64
}

type CommandResult struct {
	UpdatedState unit.Snapshot
	Events       []unit.DomainEvent
	ResultCode   unit.ResultCode
}

type CommandExecutionRecord struct {
	UnitID         string
	IdempotencyKey string
	CommandType    string
	DT             float64
	Result         CommandResult
	AppliedAt      time.Time
}

type UnitStateRepository interface {
	GetByUnitID(ctx context.Context, unitID string) (UnitRecord, error)
	SaveWithVersion(ctx context.Context, record UnitRecord, expectedVersion int64) error
}

type CommandExecutionRepository interface {
	GetByIdempotencyKey(ctx context.Context, unitID, key string) (*CommandExecutionRecord, error)
	SaveExecution(ctx context.Context, execution CommandExecutionRecord) error
}

type EventRepository interface {
	Append(ctx context.Context, unitID string, events []unit.DomainEvent) error
	ListByUnitID(ctx context.Context, unitID string, limit int) ([]unit.DomainEvent, error)
}
