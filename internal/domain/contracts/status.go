package contracts

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// ContractStatus is the lifecycle state of a contract. Values are persisted as integers.
type ContractStatus int

const (
	StatusDraft ContractStatus = iota
	StatusPublishedToProvider
	StatusWithdrawnByAgency
	StatusWithdrawnByProvider
	StatusApproved
	StatusApprovedWaitingConfirmation
	StatusReplaced
	StatusRejected
)

var statusNames = map[ContractStatus]string{
	StatusDraft:                       "Draft",
	StatusPublishedToProvider:         "PublishedToProvider",
	StatusWithdrawnByAgency:           "WithdrawnByAgency",
	StatusWithdrawnByProvider:         "WithdrawnByProvider",
	StatusApproved:                    "Approved",
	StatusApprovedWaitingConfirmation: "ApprovedWaitingConfirmation",
	StatusReplaced:                    "Replaced",
	StatusRejected:                    "Rejected",
}

// AllContractStatuses lists every known status in declaration order.
func AllContractStatuses() []ContractStatus {
	return []ContractStatus{
		StatusDraft,
		StatusPublishedToProvider,
		StatusWithdrawnByAgency,
		StatusWithdrawnByProvider,
		StatusApproved,
		StatusApprovedWaitingConfirmation,
		StatusReplaced,
		StatusRejected,
	}
}

func (s ContractStatus) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("ContractStatus(%d)", int(s))
}

// IsValid reports whether s is a declared status.
func (s ContractStatus) IsValid() bool {
	_, ok := statusNames[s]
	return ok
}

// ParseContractStatus accepts a status name (case-insensitive) or its integer value.
func ParseContractStatus(raw string) (ContractStatus, error) {
	raw = strings.TrimSpace(raw)
	for _, s := range AllContractStatuses() {
		if strings.EqualFold(s.String(), raw) {
			return s, nil
		}
	}
	if n, err := strconv.Atoi(raw); err == nil && ContractStatus(n).IsValid() {
		return ContractStatus(n), nil
	}
	return 0, fmt.Errorf("unknown contract status %q", raw)
}

func (s ContractStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *ContractStatus) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		parsed, perr := ParseContractStatus(name)
		if perr != nil {
			return perr
		}
		*s = parsed
		return nil
	}
	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("contract status must be a name or integer: %w", err)
	}
	if !ContractStatus(n).IsValid() {
		return fmt.Errorf("unknown contract status %d", n)
	}
	*s = ContractStatus(n)
	return nil
}
