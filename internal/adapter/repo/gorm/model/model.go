package model

import "time"

// UnitState stores the full behavioral snapshot as JSON next to a few
// flat columns used for lookups and dashboards.
type UnitState struct {
	ID            uint   `gorm:"primaryKey"`
	UnitID        string `gorm:"uniqueIndex;size:64"`
	Name          string `gorm:"size:128"`
	Activity      string `gorm:"size:32"`
	Health        float64
	Incapacitated bool
	State         []byte `gorm:"type:json"`
	Version       int64
	UpdatedAt     time.Time
}

type CommandExecution struct {
	ID             uint   `gorm:"primaryKey"`
	UnitID         string `gorm:"index:idx_command_executions_key,unique;size:64"`
	IdempotencyKey string `gorm:"index:idx_command_executions_key,unique;size:128"`
	CommandType    string `gorm:"size:32"`
	Dt             float64
	ResultCode     string `gorm:"size:32"`
	UpdatedState   []byte `gorm:"type:json"`
	Events         []byte `gorm:"type:json"`
	AppliedAt      time.Time
}

type DomainEvent struct {
	ID         uint   `gorm:"primaryKey"`
	UnitID     string `gorm:"index;size:64"`
	Type       string `gorm:"size:64"`
	OccurredAt time.Time `gorm:"index"`
	Payload    []byte `gorm:"type:json"`
}
