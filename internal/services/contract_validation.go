package services

import (
	"fmt"

	"github.com/yungbote/contracts-data-backend/internal/domain/contracts"
)

// ContractValidationService checks looked-up contracts against caller requests and
// guards status changes. Every method is pure: no I/O, no state between calls.
type ContractValidationService interface {
	// Validate fails with *contracts.ContractNotFoundError when contract is nil and with
	// *contracts.InvalidContractRequestError when number, version or id disagree with req.
	Validate(contract *contracts.Contract, req contracts.ContractRequest) error
	// ValidateExpectation runs Validate, then fails with *contracts.ContractExpectationFailedError
	// when expectation does not hold for contract.
	ValidateExpectation(contract *contracts.Contract, req contracts.ContractRequest, expectation contracts.Expectation) error
	// ValidateStatusChange fails with *contracts.ContractStatusError unless contract may move to newStatus.
	ValidateStatusChange(contract *contracts.Contract, newStatus contracts.ContractStatus, isManualApproval bool) error
}

type contractValidationService struct{}

func NewContractValidationService() ContractValidationService {
	return contractValidationService{}
}

func (contractValidationService) Validate(contract *contracts.Contract, req contracts.ContractRequest) error {
	if contract == nil {
		return contracts.NewContractNotFoundError(contracts.IdentityOf(req))
	}
	if !req.Matches(contract) {
		return contracts.NewInvalidContractRequestError(contracts.IdentityOf(req))
	}
	return nil
}

func (s contractValidationService) ValidateExpectation(contract *contracts.Contract, req contracts.ContractRequest, expectation contracts.Expectation) error {
	if err := s.Validate(contract, req); err != nil {
		return err
	}
	if !expectation.Holds(contract) {
		return contracts.NewContractExpectationFailedError(contracts.IdentityOf(req), expectation)
	}
	return nil
}

func (contractValidationService) ValidateStatusChange(contract *contracts.Contract, newStatus contracts.ContractStatus, isManualApproval bool) error {
	if contract == nil {
		return contracts.NewContractNotFoundError(contracts.ContractIdentity{})
	}
	current := contract.Status
	allowed, restricted, known := AllowedCurrentStatuses(newStatus, isManualApproval)

	message := "Invalid status change detected."
	if !known {
		message = fmt.Sprintf(
			"Contract is in %s, status changes are allowed only when contract is in one of %s, %s, %s, %s, %s or %s statuses.",
			current,
			contracts.StatusPublishedToProvider,
			contracts.StatusWithdrawnByAgency,
			contracts.StatusWithdrawnByProvider,
			contracts.StatusApproved,
			contracts.StatusApprovedWaitingConfirmation,
			contracts.StatusReplaced,
		)
	}

	if known && !restricted {
		return nil
	}
	for _, s := range allowed {
		if s == current {
			return nil
		}
	}
	return &contracts.ContractStatusError{
		Message:         message,
		CurrentStatus:   current,
		NewStatus:       newStatus,
		AllowedStatuses: allowed,
	}
}

// AllowedCurrentStatuses is the transition table. known is false for targets this
// validator never accepts. restricted is false for targets reachable from any status.
// Only Approved is guarded, and its guard depends on whether approval is manual.
func AllowedCurrentStatuses(newStatus contracts.ContractStatus, isManualApproval bool) (allowed []contracts.ContractStatus, restricted bool, known bool) {
	switch newStatus {
	case contracts.StatusApproved:
		if isManualApproval {
			return []contracts.ContractStatus{contracts.StatusPublishedToProvider}, true, true
		}
		return []contracts.ContractStatus{contracts.StatusApprovedWaitingConfirmation}, true, true
	case contracts.StatusPublishedToProvider,
		contracts.StatusReplaced,
		contracts.StatusWithdrawnByProvider,
		contracts.StatusWithdrawnByAgency,
		contracts.StatusApprovedWaitingConfirmation:
		return nil, false, true
	default:
		return nil, true, false
	}
}
