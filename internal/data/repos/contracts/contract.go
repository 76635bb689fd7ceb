package contracts

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	types "github.com/yungbote/contracts-data-backend/internal/domain/contracts"
	"github.com/yungbote/contracts-data-backend/internal/pkg/dbctx"
	pkgerrors "github.com/yungbote/contracts-data-backend/internal/pkg/errors"
	"github.com/yungbote/contracts-data-backend/internal/pkg/logger"
)

type ContractRepo interface {
	Get(dbc dbctx.Context, id int) (*types.Contract, error)
	GetByContractNumberAndVersion(dbc dbctx.Context, contractNumber string, version int) (*types.Contract, error)
	GetByContractNumber(dbc dbctx.Context, contractNumber string) ([]*types.Contract, error)
	// Add and Create fail with types.ErrDuplicateContract when the number and version are taken.
	Add(dbc dbctx.Context, contract *types.Contract) error
	// Create adds contract and commits it on its own.
	Create(dbc dbctx.Context, contract *types.Contract) error
	UpdateFields(dbc dbctx.Context, id int, updates map[string]interface{}) error
	AttachContent(dbc dbctx.Context, content *types.ContractContent) error
}

type contractRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewContractRepo(db *gorm.DB, baseLog *logger.Logger) ContractRepo {
	return &contractRepo{
		db:  db,
		log: baseLog.With("repo", "ContractRepo"),
	}
}

// Get returns nil, nil when no contract has the given id.
func (r *contractRepo) Get(dbc dbctx.Context, id int) (*types.Contract, error) {
	if id <= 0 {
		return nil, nil
	}
	return r.first(dbc.DB(r.db).Where("id = ?", id))
}

func (r *contractRepo) GetByContractNumberAndVersion(dbc dbctx.Context, contractNumber string, version int) (*types.Contract, error) {
	contractNumber = strings.TrimSpace(contractNumber)
	if contractNumber == "" {
		return nil, nil
	}
	return r.first(dbc.DB(r.db).Where("contract_number = ? AND contract_version = ?", contractNumber, version))
}

func (r *contractRepo) GetByContractNumber(dbc dbctx.Context, contractNumber string) ([]*types.Contract, error) {
	var out []*types.Contract
	contractNumber = strings.TrimSpace(contractNumber)
	if contractNumber == "" {
		return out, nil
	}
	if err := dbc.DB(r.db).
		Preload("Content").
		Where("contract_number = ?", contractNumber).
		Order("contract_version ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *contractRepo) Add(dbc dbctx.Context, contract *types.Contract) error {
	if contract == nil {
		return nil
	}
	return duplicateContract(dbc.DB(r.db).Create(contract).Error, contract)
}

func (r *contractRepo) Create(dbc dbctx.Context, contract *types.Contract) error {
	if contract == nil {
		return nil
	}
	err := dbc.DB(r.db).Transaction(func(tx *gorm.DB) error {
		return r.Add(dbctx.Context{Ctx: dbc.Ctx, Tx: tx}, contract)
	})
	if err != nil && !errors.Is(err, types.ErrDuplicateContract) {
		r.log.Warn("create contract failed", "error", err, "contract_number", contract.ContractNumber, "version", contract.ContractVersion)
	}
	return err
}

// UpdateFields stamps last_updated_at unless the caller supplies it. updates is not modified.
func (r *contractRepo) UpdateFields(dbc dbctx.Context, id int, updates map[string]interface{}) error {
	if id <= 0 {
		return nil
	}
	stamped := make(map[string]interface{}, len(updates)+1)
	for k, v := range updates {
		stamped[k] = v
	}
	if _, ok := stamped["last_updated_at"]; !ok {
		stamped["last_updated_at"] = time.Now().UTC()
	}
	return dbc.DB(r.db).
		Model(&types.Contract{}).
		Where("id = ?", id).
		Updates(stamped).Error
}

// AttachContent replaces any content already attached to the contract.
func (r *contractRepo) AttachContent(dbc dbctx.Context, content *types.ContractContent) error {
	if content == nil || content.ContractID <= 0 {
		return nil
	}
	transaction := dbc.DB(r.db)
	if err := transaction.Where("contract_id = ?", content.ContractID).Delete(&types.ContractContent{}).Error; err != nil {
		return err
	}
	err := transaction.Create(content).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("content for contract %d was attached concurrently: %w", content.ContractID, pkgerrors.ErrConflict)
	}
	return err
}

func duplicateContract(err error, contract *types.Contract) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("contract number %s version %d: %w", contract.ContractNumber, contract.ContractVersion, types.ErrDuplicateContract)
	}
	return err
}

func (r *contractRepo) first(q *gorm.DB) (*types.Contract, error) {
	var contract types.Contract
	err := q.Preload("Content").First(&contract).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &contract, nil
}
