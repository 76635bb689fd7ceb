package contracts

// ContractRequest is the caller's description of the contract it expects a lookup to return.
type ContractRequest struct {
	ID              int    `json:"id" binding:"required"`
	ContractNumber  string `json:"contractNumber" binding:"required"`
	ContractVersion int    `json:"contractVersion" binding:"required"`
}

// Matches reports whether all three identifying fields agree with c.
func (r ContractRequest) Matches(c *Contract) bool {
	if c == nil {
		return false
	}
	return r.ContractNumber == c.ContractNumber &&
		r.ContractVersion == c.ContractVersion &&
		r.ID == c.ID
}
