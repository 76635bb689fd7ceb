package repos

import (
	"gorm.io/gorm"

	"github.com/yungbote/contracts-data-backend/internal/data/repos/contracts"
	"github.com/yungbote/contracts-data-backend/internal/pkg/logger"
)

type ContractRepo = contracts.ContractRepo

func NewContractRepo(db *gorm.DB, baseLog *logger.Logger) ContractRepo {
	return contracts.NewContractRepo(db, baseLog)
}
