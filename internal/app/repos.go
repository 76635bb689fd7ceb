package app

import (
	"gorm.io/gorm"

	"github.com/yungbote/contracts-data-backend/internal/data/repos"
	"github.com/yungbote/contracts-data-backend/internal/pkg/logger"
)

type Repos struct {
	Contract repos.ContractRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		Contract: repos.NewContractRepo(db, log),
	}
}
