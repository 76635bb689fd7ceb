package db

import (
	"gorm.io/gorm"

	"github.com/yungbote/contracts-data-backend/internal/domain/contracts"
)

func AutoMigrateAll(db *gorm.DB) error {
	return db.AutoMigrate(
		&contracts.Contract{},
		&contracts.ContractContent{},
	)
}
