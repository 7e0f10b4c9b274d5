package gormrepo

import (
	"context"
	"fmt"

	"unitsim/internal/adapter/repo/gorm/model"

	"gorm.io/gorm"
)

func AutoMigrate(ctx context.Context, db *gorm.DB) error {
	err := db.WithContext(ctx).AutoMigrate(
		&model.UnitState{},
		&model.CommandExecution{},
		&model.DomainEvent{},
	)
	if err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
