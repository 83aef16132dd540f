package gormrepo

import (
	"fmt"

	"gorm.io/gorm"

	"stratagem/internal/adapter/repo/gorm/model"
)

func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&model.DecisionCycle{}); err != nil {
		return fmt.Errorf("migrate decision cycles: %w", err)
	}
	return nil
}
