package app

import (
	"gorm.io/gorm"

	"github.com/yungbote/contracts-data-backend/internal/data/uow"
	"github.com/yungbote/contracts-data-backend/internal/pkg/logger"
	"github.com/yungbote/contracts-data-backend/internal/services"
)

type Services struct {
	Validation services.ContractValidationService
	Contract   services.ContractService
}

func wireServices(db *gorm.DB, log *logger.Logger, reposet Repos) Services {
	log.Info("Wiring services...")
	validation := services.NewContractValidationService()
	return Services{
		Validation: validation,
		Contract:   services.NewContractService(log, uow.New(db, log), reposet.Contract, validation),
	}
}
