package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/yungbote/contracts-data-backend/internal/data/repos"
	"github.com/yungbote/contracts-data-backend/internal/data/uow"
	"github.com/yungbote/contracts-data-backend/internal/domain/contracts"
	"github.com/yungbote/contracts-data-backend/internal/pkg/dbctx"
	pkgerrors "github.com/yungbote/contracts-data-backend/internal/pkg/errors"
	"github.com/yungbote/contracts-data-backend/internal/pkg/logger"
	"github.com/yungbote/contracts-data-backend/internal/pkg/pointers"
	"github.com/yungbote/contracts-data-backend/internal/platform/ctxutil"
)

type ContractService interface {
	Get(ctx context.Context, id int) (*contracts.Contract, error)
	GetByContractNumberAndVersion(ctx context.Context, contractNumber string, version int) (*contracts.Contract, error)
	GetByContractNumber(ctx context.Context, contractNumber string) ([]*contracts.Contract, error)
	Create(ctx context.Context, contract *contracts.Contract) (*contracts.Contract, error)

	ConfirmApproval(ctx context.Context, req contracts.ContractRequest) (*contracts.Contract, error)
	ApproveManually(ctx context.Context, req contracts.ContractRequest) (*contracts.Contract, error)
	Withdraw(ctx context.Context, req contracts.ContractRequest, withdrawalType contracts.ContractStatus) (*contracts.Contract, error)
	MarkReplaced(ctx context.Context, req contracts.ContractRequest) (*contracts.Contract, error)
	MarkAwaitingConfirmation(ctx context.Context, req contracts.ContractRequest) (*contracts.Contract, error)
	Publish(ctx context.Context, req contracts.ContractRequest) (*contracts.Contract, error)
	MarkNotificationRead(ctx context.Context, req contracts.ContractRequest, readBy string) (*contracts.Contract, error)
	AttachContent(ctx context.Context, req contracts.ContractRequest, fileName string, data []byte) (*contracts.Contract, error)
}

type contractService struct {
	log       *logger.Logger
	work      uow.UnitOfWork
	repo      repos.ContractRepo
	validator ContractValidationService
	now       func() time.Time
}

func NewContractService(
	baseLog *logger.Logger,
	work uow.UnitOfWork,
	repo repos.ContractRepo,
	validator ContractValidationService,
) ContractService {
	return &contractService{
		log:       baseLog.With("service", "ContractService"),
		work:      work,
		repo:      repo,
		validator: validator,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (s *contractService) Get(ctx context.Context, id int) (*contracts.Contract, error) {
	c, err := s.repo.Get(dbctx.New(ctx), id)
	if err != nil {
		s.log.Warn("Get: load contract failed", "error", err, "contract_id", id)
		return nil, err
	}
	if c == nil {
		return nil, contracts.NewContractNotFoundError(contracts.ContractIdentity{ContractID: pointers.Int(id)})
	}
	return c, nil
}

func (s *contractService) GetByContractNumberAndVersion(ctx context.Context, contractNumber string, version int) (*contracts.Contract, error) {
	c, err := s.repo.GetByContractNumberAndVersion(dbctx.New(ctx), contractNumber, version)
	if err != nil {
		s.log.Warn("GetByContractNumberAndVersion: load contract failed", "error", err, "contract_number", contractNumber, "version", version)
		return nil, err
	}
	if c == nil {
		return nil, contracts.NewContractNotFoundError(contracts.ContractIdentity{
			ContractNumber:  pointers.String(contractNumber),
			ContractVersion: pointers.Int(version),
		})
	}
	return c, nil
}

func (s *contractService) GetByContractNumber(ctx context.Context, contractNumber string) ([]*contracts.Contract, error) {
	if strings.TrimSpace(contractNumber) == "" {
		return nil, fmt.Errorf("missing contract number: %w", pkgerrors.ErrInvalidArgument)
	}
	rows, err := s.repo.GetByContractNumber(dbctx.New(ctx), contractNumber)
	if err != nil {
		s.log.Warn("GetByContractNumber: load contracts failed", "error", err, "contract_number", contractNumber)
		return nil, err
	}
	return rows, nil
}

// Create adds a contract in its own unit of work. A zero status means PublishedToProvider.
func (s *contractService) Create(ctx context.Context, contract *contracts.Contract) (*contracts.Contract, error) {
	if contract == nil {
		return nil, fmt.Errorf("missing contract: %w", pkgerrors.ErrInvalidArgument)
	}
	contract.ContractNumber = strings.TrimSpace(contract.ContractNumber)
	if contract.ContractNumber == "" || contract.ContractVersion <= 0 {
		return nil, fmt.Errorf("contract number and a positive version are required: %w", pkgerrors.ErrInvalidArgument)
	}
	if contract.Status == contracts.StatusDraft {
		contract.Status = contracts.StatusPublishedToProvider
	}
	if !contract.Status.IsValid() {
		return nil, fmt.Errorf("unknown contract status %d: %w", int(contract.Status), pkgerrors.ErrInvalidArgument)
	}

	// The unique (number, version) index decides duplicates, so concurrent creates cannot both win.
	err := s.repo.Create(dbctx.New(ctx), contract)
	if err != nil {
		s.logFailure(ctx, "Create", err, contract.ContractNumber, contract.ContractVersion)
		return nil, err
	}
	s.logger(ctx).Info("contract created", "contract_id", contract.ID, "contract_number", contract.ContractNumber, "version", contract.ContractVersion, "status", contract.Status)
	return contract, nil
}

func (s *contractService) ConfirmApproval(ctx context.Context, req contracts.ContractRequest) (*contracts.Contract, error) {
	return s.changeStatus(ctx, "ConfirmApproval", req, contracts.StatusApproved, false, 0, nil)
}

func (s *contractService) ApproveManually(ctx context.Context, req contracts.ContractRequest) (*contracts.Contract, error) {
	return s.changeStatus(ctx, "ApproveManually", req, contracts.StatusApproved, true, contracts.ExpectContentAttached,
		func(*contracts.Contract) map[string]interface{} {
			return map[string]interface{}{
				"was_manually_approved": true,
				"signed_on":             s.now(),
			}
		})
}

func (s *contractService) Withdraw(ctx context.Context, req contracts.ContractRequest, withdrawalType contracts.ContractStatus) (*contracts.Contract, error) {
	if withdrawalType != contracts.StatusWithdrawnByAgency && withdrawalType != contracts.StatusWithdrawnByProvider {
		return nil, fmt.Errorf("withdrawal type must be %s or %s, got %s: %w",
			contracts.StatusWithdrawnByAgency, contracts.StatusWithdrawnByProvider, withdrawalType, pkgerrors.ErrInvalidArgument)
	}
	return s.changeStatus(ctx, "Withdraw", req, withdrawalType, false, 0, nil)
}

func (s *contractService) MarkReplaced(ctx context.Context, req contracts.ContractRequest) (*contracts.Contract, error) {
	return s.changeStatus(ctx, "MarkReplaced", req, contracts.StatusReplaced, false, 0, nil)
}

func (s *contractService) MarkAwaitingConfirmation(ctx context.Context, req contracts.ContractRequest) (*contracts.Contract, error) {
	return s.changeStatus(ctx, "MarkAwaitingConfirmation", req, contracts.StatusApprovedWaitingConfirmation, false, 0, nil)
}

func (s *contractService) Publish(ctx context.Context, req contracts.ContractRequest) (*contracts.Contract, error) {
	return s.changeStatus(ctx, "Publish", req, contracts.StatusPublishedToProvider, false, 0, nil)
}

func (s *contractService) MarkNotificationRead(ctx context.Context, req contracts.ContractRequest, readBy string) (*contracts.Contract, error) {
	readBy = strings.TrimSpace(readBy)
	if readBy == "" {
		return nil, fmt.Errorf("missing reader: %w", pkgerrors.ErrInvalidArgument)
	}
	return s.update(ctx, "MarkNotificationRead", req, func(dbc dbctx.Context, c *contracts.Contract) (map[string]interface{}, error) {
		if err := s.validator.ValidateExpectation(c, req, contracts.ExpectNotificationUnread); err != nil {
			return nil, err
		}
		return map[string]interface{}{
			"has_notification_been_read": true,
			"notification_read_by":       readBy,
			"notification_read_at":       s.now(),
			"last_updated_by":            readBy,
		}, nil
	})
}

func (s *contractService) AttachContent(ctx context.Context, req contracts.ContractRequest, fileName string, data []byte) (*contracts.Contract, error) {
	fileName = strings.TrimSpace(fileName)
	if fileName == "" || len(data) == 0 {
		return nil, fmt.Errorf("content requires a file name and data: %w", pkgerrors.ErrInvalidArgument)
	}
	return s.update(ctx, "AttachContent", req, func(dbc dbctx.Context, c *contracts.Contract) (map[string]interface{}, error) {
		if err := s.validator.Validate(c, req); err != nil {
			return nil, err
		}
		content := &contracts.ContractContent{
			ContractID: c.ID,
			FileName:   fileName,
			Size:       int64(len(data)),
			Content:    data,
		}
		if err := s.repo.AttachContent(dbc, content); err != nil {
			return nil, err
		}
		return map[string]interface{}{}, nil
	})
}

// changeStatus validates the request, the optional expectation and the transition before persisting newStatus.
func (s *contractService) changeStatus(
	ctx context.Context,
	op string,
	req contracts.ContractRequest,
	newStatus contracts.ContractStatus,
	isManualApproval bool,
	expectation contracts.Expectation,
	extra func(*contracts.Contract) map[string]interface{},
) (*contracts.Contract, error) {
	return s.update(ctx, op, req, func(dbc dbctx.Context, c *contracts.Contract) (map[string]interface{}, error) {
		var err error
		if expectation != 0 {
			err = s.validator.ValidateExpectation(c, req, expectation)
		} else {
			err = s.validator.Validate(c, req)
		}
		if err != nil {
			return nil, err
		}
		if err := s.validator.ValidateStatusChange(c, newStatus, isManualApproval); err != nil {
			return nil, err
		}
		updates := map[string]interface{}{"status": newStatus}
		if extra != nil {
			for k, v := range extra(c) {
				updates[k] = v
			}
		}
		return updates, nil
	})
}

// update loads the contract named by req, lets apply compute the column updates and
// commits them in one unit of work. The reloaded contract is returned.
func (s *contractService) update(
	ctx context.Context,
	op string,
	req contracts.ContractRequest,
	apply func(dbc dbctx.Context, c *contracts.Contract) (map[string]interface{}, error),
) (*contracts.Contract, error) {
	var out *contracts.Contract
	err := s.work.Do(ctx, func(dbc dbctx.Context) error {
		c, err := s.repo.GetByContractNumberAndVersion(dbc, req.ContractNumber, req.ContractVersion)
		if err != nil {
			return err
		}
		updates, err := apply(dbc, c)
		if err != nil {
			return err
		}
		if err := s.repo.UpdateFields(dbc, c.ID, updates); err != nil {
			return err
		}
		out, err = s.repo.Get(dbc, c.ID)
		return err
	})
	if err != nil {
		s.logFailure(ctx, op, err, req.ContractNumber, req.ContractVersion)
		return nil, err
	}
	s.logger(ctx).Info("contract updated", "op", op, "contract_id", out.ID, "contract_number", out.ContractNumber, "version", out.ContractVersion, "status", out.Status)
	return out, nil
}

func (s *contractService) logFailure(ctx context.Context, op string, err error, contractNumber string, version int) {
	log := s.logger(ctx).With("op", op, "contract_number", contractNumber, "version", version)
	var statusErr *contracts.ContractStatusError
	switch {
	case errors.As(err, &statusErr):
		log.Warn("contract status change rejected",
			"current_status", statusErr.CurrentStatus,
			"new_status", statusErr.NewStatus,
			"allowed_statuses", statusErr.AllowedStatuses,
		)
	case errors.Is(err, pkgerrors.ErrNotFound),
		errors.Is(err, pkgerrors.ErrInvalidArgument),
		errors.Is(err, pkgerrors.ErrPreconditionFailed),
		errors.Is(err, pkgerrors.ErrConflict):
		log.Warn("contract request rejected", "error", err)
	default:
		log.Error("contract operation failed", "error", err)
	}
}

func (s *contractService) logger(ctx context.Context) *logger.Logger {
	if td := ctxutil.GetTraceData(ctx); td != nil && td.RequestID != "" {
		return s.log.With("request_id", td.RequestID, "trace_id", td.TraceID)
	}
	return s.log
}
