package handlers

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/contracts-data-backend/internal/domain/contracts"
	"github.com/yungbote/contracts-data-backend/internal/http/response"
	"github.com/yungbote/contracts-data-backend/internal/services"
)

type ContractHandler struct {
	svc services.ContractService
}

func NewContractHandler(svc services.ContractService) *ContractHandler {
	return &ContractHandler{svc: svc}
}

type createContractRequest struct {
	ContractNumber           string                    `json:"contractNumber" binding:"required"`
	ContractVersion          int                       `json:"contractVersion" binding:"required,min=1"`
	Ukprn                    int                       `json:"ukprn"`
	Title                    string                    `json:"title"`
	Year                     string                    `json:"year"`
	FundingType              int                       `json:"fundingType"`
	AmendmentType            int                       `json:"amendmentType"`
	ParentContractNumber     string                    `json:"parentContractNumber"`
	ContractAllocationNumber string                    `json:"contractAllocationNumber"`
	StartDate                *time.Time                `json:"startDate"`
	EndDate                  *time.Time                `json:"endDate"`
	CreatedBy                string                    `json:"createdBy"`
	Status                   *contracts.ContractStatus `json:"status"`
}

type withdrawRequest struct {
	contracts.ContractRequest
	WithdrawalType contracts.ContractStatus `json:"withdrawalType" binding:"required"`
}

type notificationReadRequest struct {
	contracts.ContractRequest
	ReadBy string `json:"readBy" binding:"required"`
}

type contentRequest struct {
	contracts.ContractRequest
	FileName string `json:"fileName" binding:"required"`
	Content  []byte `json:"content" binding:"required"`
}

// GET /api/contracts/:id
func (h *ContractHandler) GetContract(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		respondBadRequest(c, fmt.Errorf("invalid contract id %q", c.Param("id")))
		return
	}
	contract, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"contract": contract})
}

// GET /api/contracts?contractNumber=...&version=...
func (h *ContractHandler) ListContracts(c *gin.Context) {
	number := strings.TrimSpace(c.Query("contractNumber"))
	if number == "" {
		respondBadRequest(c, fmt.Errorf("contractNumber query parameter is required"))
		return
	}
	if rawVersion := strings.TrimSpace(c.Query("version")); rawVersion != "" {
		version, err := strconv.Atoi(rawVersion)
		if err != nil {
			respondBadRequest(c, fmt.Errorf("invalid version %q", rawVersion))
			return
		}
		contract, err := h.svc.GetByContractNumberAndVersion(c.Request.Context(), number, version)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		response.RespondOK(c, gin.H{"contract": contract})
		return
	}
	rows, err := h.svc.GetByContractNumber(c.Request.Context(), number)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"contracts": rows})
}

// POST /api/contracts
func (h *ContractHandler) CreateContract(c *gin.Context) {
	var req createContractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}
	contract := &contracts.Contract{
		ContractNumber:           req.ContractNumber,
		ContractVersion:          req.ContractVersion,
		Ukprn:                    req.Ukprn,
		Title:                    req.Title,
		Year:                     req.Year,
		FundingType:              req.FundingType,
		AmendmentType:            req.AmendmentType,
		ParentContractNumber:     req.ParentContractNumber,
		ContractAllocationNumber: req.ContractAllocationNumber,
		StartDate:                req.StartDate,
		EndDate:                  req.EndDate,
		CreatedBy:                req.CreatedBy,
	}
	if req.Status != nil {
		contract.Status = *req.Status
	}
	created, err := h.svc.Create(c.Request.Context(), contract)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondCreated(c, gin.H{"contract": created})
}

// PATCH /api/contracts/confirm-approval
func (h *ContractHandler) ConfirmApproval(c *gin.Context) {
	h.statusChange(c, h.svc.ConfirmApproval)
}

// PATCH /api/contracts/manual-approve
func (h *ContractHandler) ApproveManually(c *gin.Context) {
	h.statusChange(c, h.svc.ApproveManually)
}

// PATCH /api/contracts/replace
func (h *ContractHandler) MarkReplaced(c *gin.Context) {
	h.statusChange(c, h.svc.MarkReplaced)
}

// PATCH /api/contracts/awaiting-confirmation
func (h *ContractHandler) MarkAwaitingConfirmation(c *gin.Context) {
	h.statusChange(c, h.svc.MarkAwaitingConfirmation)
}

// PATCH /api/contracts/publish
func (h *ContractHandler) Publish(c *gin.Context) {
	h.statusChange(c, h.svc.Publish)
}

// PATCH /api/contracts/withdraw
func (h *ContractHandler) Withdraw(c *gin.Context) {
	var req withdrawRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}
	updated, err := h.svc.Withdraw(c.Request.Context(), req.ContractRequest, req.WithdrawalType)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"contract": updated})
}

// PATCH /api/contracts/notification-read
func (h *ContractHandler) MarkNotificationRead(c *gin.Context) {
	var req notificationReadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}
	updated, err := h.svc.MarkNotificationRead(c.Request.Context(), req.ContractRequest, req.ReadBy)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"contract": updated})
}

// PUT /api/contracts/content
func (h *ContractHandler) AttachContent(c *gin.Context) {
	var req contentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}
	updated, err := h.svc.AttachContent(c.Request.Context(), req.ContractRequest, req.FileName, req.Content)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"contract": updated})
}

func (h *ContractHandler) statusChange(c *gin.Context, change func(ctx context.Context, req contracts.ContractRequest) (*contracts.Contract, error)) {
	var req contracts.ContractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}
	updated, err := change(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"contract": updated})
}
