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

type UnitStateRepo struct {
	db *gorm.DB
}

func NewUnitStateRepo(db *gorm.DB) UnitStateRepo {
	return UnitStateRepo{db: db}
}

func (r UnitStateRepo) GetByUnitID(ctx context.Context, unitID string) (ports.UnitRecord, error) {
	var m model.UnitState
	if err := getDBFromCtx(ctx, r.db).Where("unit_id = ?", unitID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.UnitRecord{}, ports.ErrNotFound
		}
		return ports.UnitRecord{}, err
	}
	var state unit.Snapshot
	if err := json.Unmarshal(m.State, &state); err != nil {
		return ports.UnitRecord{}, err
	}
	return ports.UnitRecord{
		UnitID:  m.UnitID,
		State:   state,
		Version: m.Version,
	}, nil
}

func (r UnitStateRepo) SaveWithVersion(ctx context.Context, record ports.UnitRecord, expectedVersion int64) error {
	db := getDBFromCtx(ctx, r.db)
	stateJSON, err := json.Marshal(record.State)
	if err != nil {
		return err
	}
	if expectedVersion == 0 {
		m := model.UnitState{
			UnitID:        record.UnitID,
			Name:          record.State.Name,
			Activity:      string(record.State.Activity),
			Health:        record.State.Health,
			Incapacitated: record.State.Incapacitated,
			State:         stateJSON,
			Version:       1,
		}
		if err := db.Create(&m).Error; err != nil {
			return err
		}
		return nil
	}

	updates := map[string]any{
		"name":          record.State.Name,
		"activity":      string(record.State.Activity),
		"health":        record.State.Health,
		"incapacitated": record.State.Incapacitated,
		"state":         stateJSON,
		"version":       expectedVersion + 1,
	}
	res := db.Model(&model.UnitState{}).
		Where("unit_id = ? AND version = ?", record.UnitID, expectedVersion).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ports.ErrConflict
	}
	return nil
}
