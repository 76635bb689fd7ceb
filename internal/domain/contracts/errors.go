package contracts

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	pkgerrors "github.com/yungbote/contracts-data-backend/internal/pkg/errors"
	"github.com/yungbote/contracts-data-backend/internal/pkg/pointers"
)

const notPassed = "Not passed"

var (
	ErrContractNotFound          = fmt.Errorf("contract %w", pkgerrors.ErrNotFound)
	ErrContractMismatch          = fmt.Errorf("contract request mismatch: %w", pkgerrors.ErrInvalidArgument)
	ErrContractExpectationFailed = fmt.Errorf("contract expectation failed: %w", pkgerrors.ErrPreconditionFailed)
	ErrInvalidStatusTransition   = errors.New("invalid contract status transition")
	ErrDuplicateContract         = fmt.Errorf("contract already exists: %w", pkgerrors.ErrConflict)
)

// ContractIdentity is the (number, version, id) triple carried by lookup failures.
// Nil members were not supplied by the caller.
type ContractIdentity struct {
	ContractNumber  *string
	ContractVersion *int
	ContractID      *int
}

// IdentityOf builds the identity a request describes. Zero values were not supplied:
// numbers are never blank, versions and ids start at 1.
func IdentityOf(req ContractRequest) ContractIdentity {
	var identity ContractIdentity
	if req.ContractNumber != "" {
		identity.ContractNumber = pointers.Ptr(req.ContractNumber)
	}
	if req.ContractVersion != 0 {
		identity.ContractVersion = pointers.Ptr(req.ContractVersion)
	}
	if req.ID != 0 {
		identity.ContractID = pointers.Ptr(req.ID)
	}
	return identity
}

func (i ContractIdentity) describe() string {
	return fmt.Sprintf("contract number:%s, version: %s and contract id: %s",
		pointers.Deref(i.ContractNumber, notPassed), intOrNotPassed(i.ContractVersion), intOrNotPassed(i.ContractID))
}

func intOrNotPassed(v *int) string {
	if v == nil {
		return notPassed
	}
	return strconv.Itoa(*v)
}

// ContractNotFoundError reports that no contract exists for the requested identity.
type ContractNotFoundError struct {
	ContractIdentity
}

func NewContractNotFoundError(identity ContractIdentity) *ContractNotFoundError {
	return &ContractNotFoundError{ContractIdentity: identity}
}

func (e *ContractNotFoundError) Error() string {
	return "A contract with " + e.describe() + " cannot be found"
}

func (e *ContractNotFoundError) Unwrap() error { return ErrContractNotFound }

// InvalidContractRequestError reports a fetched contract whose identity disagrees with the request.
type InvalidContractRequestError struct {
	ContractIdentity
}

func NewInvalidContractRequestError(identity ContractIdentity) *InvalidContractRequestError {
	return &InvalidContractRequestError{ContractIdentity: identity}
}

func (e *InvalidContractRequestError) Error() string {
	return "The contract with " + e.describe() + " does not match the requested contract"
}

func (e *InvalidContractRequestError) Unwrap() error { return ErrContractMismatch }

// ContractExpectationFailedError reports a caller precondition that does not hold.
type ContractExpectationFailedError struct {
	ContractIdentity
	Expectation Expectation
}

func NewContractExpectationFailedError(identity ContractIdentity, expectation Expectation) *ContractExpectationFailedError {
	return &ContractExpectationFailedError{ContractIdentity: identity, Expectation: expectation}
}

func (e *ContractExpectationFailedError) Error() string {
	return fmt.Sprintf("The contract with %s failed the expectation: %s", e.describe(), e.Expectation.Description())
}

func (e *ContractExpectationFailedError) Unwrap() error { return ErrContractExpectationFailed }

// ContractStatusError reports a rejected status change along with the statuses that would have been accepted.
type ContractStatusError struct {
	Message         string
	CurrentStatus   ContractStatus
	NewStatus       ContractStatus
	AllowedStatuses []ContractStatus
}

func (e *ContractStatusError) Error() string {
	allowed := make([]string, 0, len(e.AllowedStatuses))
	for _, s := range e.AllowedStatuses {
		allowed = append(allowed, s.String())
	}
	return fmt.Sprintf("%s (current: %s, new: %s, allowed: [%s])",
		e.Message, e.CurrentStatus, e.NewStatus, strings.Join(allowed, ", "))
}

func (e *ContractStatusError) Unwrap() error { return ErrInvalidStatusTransition }
