package services

import (
	"context"
	"errors"
	"testing"

	"github.com/yungbote/contracts-data-backend/internal/data/repos"
	"github.com/yungbote/contracts-data-backend/internal/data/repos/testutil"
	"github.com/yungbote/contracts-data-backend/internal/data/uow"
	"github.com/yungbote/contracts-data-backend/internal/domain/contracts"
	pkgerrors "github.com/yungbote/contracts-data-backend/internal/pkg/errors"
	"gorm.io/gorm"
)

func newTestContractService(t *testing.T) (ContractService, *gorm.DB) {
	t.Helper()
	db := testutil.DB(t)
	log := testutil.Logger(t)
	svc := NewContractService(
		log,
		uow.New(db, log),
		repos.NewContractRepo(db, log),
		NewContractValidationService(),
	)
	return svc, db
}

func TestContractServiceCreateAndGet(t *testing.T) {
	svc, _ := newTestContractService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, &contracts.Contract{ContractNumber: " ABC-1 ", ContractVersion: 1, Title: "Funding"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID == 0 || created.ContractNumber != "ABC-1" || created.Status != contracts.StatusPublishedToProvider {
		t.Fatalf("Create: unexpected contract %+v", created)
	}

	byID, err := svc.Get(ctx, created.ID)
	if err != nil || byID.ContractNumber != "ABC-1" {
		t.Fatalf("Get: got=%+v err=%v", byID, err)
	}
	byPair, err := svc.GetByContractNumberAndVersion(ctx, "ABC-1", 1)
	if err != nil || byPair.ID != created.ID {
		t.Fatalf("GetByContractNumberAndVersion: got=%+v err=%v", byPair, err)
	}
	all, err := svc.GetByContractNumber(ctx, "ABC-1")
	if err != nil || len(all) != 1 {
		t.Fatalf("GetByContractNumber: got=%v err=%v", all, err)
	}

	if _, err := svc.Create(ctx, &contracts.Contract{ContractNumber: "ABC-1", ContractVersion: 1}); !errors.Is(err, contracts.ErrDuplicateContract) {
		t.Fatalf("Create duplicate: expected ErrDuplicateContract, got %v", err)
	}
	if _, err := svc.Create(ctx, &contracts.Contract{ContractNumber: "", ContractVersion: 1}); !errors.Is(err, pkgerrors.ErrInvalidArgument) {
		t.Fatalf("Create without number: expected ErrInvalidArgument, got %v", err)
	}
}

func TestContractServiceCreateLosesToConcurrentInsert(t *testing.T) {
	svc, db := newTestContractService(t)
	ctx := context.Background()

	// Another writer inserts the same number and version first.
	testutil.SeedContract(t, ctx, db, "RACE-1", 1, contracts.StatusPublishedToProvider)

	_, err := svc.Create(ctx, &contracts.Contract{ContractNumber: "RACE-1", ContractVersion: 1})
	if !errors.Is(err, contracts.ErrDuplicateContract) {
		t.Fatalf("Create: expected ErrDuplicateContract, got %v", err)
	}
	if !errors.Is(err, pkgerrors.ErrConflict) {
		t.Fatalf("Create: expected ErrConflict, got %v", err)
	}
}

func TestContractServiceGetMissing(t *testing.T) {
	svc, _ := newTestContractService(t)
	ctx := context.Background()

	_, err := svc.Get(ctx, 404)
	var nf *contracts.ContractNotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("Get: expected ContractNotFoundError, got %v", err)
	}
	if nf.ContractNumber != nil || nf.ContractID == nil || *nf.ContractID != 404 {
		t.Fatalf("Get: unexpected identity on error: %+v", nf.ContractIdentity)
	}

	if _, err := svc.GetByContractNumberAndVersion(ctx, "nope", 1); !errors.Is(err, contracts.ErrContractNotFound) {
		t.Fatalf("GetByContractNumberAndVersion: expected not found, got %v", err)
	}
}

func TestContractServiceApprovalPaths(t *testing.T) {
	svc, db := newTestContractService(t)
	ctx := context.Background()

	waiting := testutil.SeedContract(t, ctx, db, "APP", 1, contracts.StatusApprovedWaitingConfirmation)
	approved, err := svc.ConfirmApproval(ctx, testutil.Request(waiting))
	if err != nil {
		t.Fatalf("ConfirmApproval: %v", err)
	}
	if approved.Status != contracts.StatusApproved || approved.WasManuallyApproved {
		t.Fatalf("ConfirmApproval: unexpected contract %+v", approved)
	}

	// Approved cannot be approved again, manually or not.
	if _, err := svc.ConfirmApproval(ctx, testutil.Request(waiting)); !errors.Is(err, contracts.ErrInvalidStatusTransition) {
		t.Fatalf("ConfirmApproval again: expected invalid transition, got %v", err)
	}

	published := testutil.SeedContract(t, ctx, db, "APP", 2, contracts.StatusPublishedToProvider)
	if _, err := svc.ApproveManually(ctx, testutil.Request(published)); !errors.Is(err, contracts.ErrContractExpectationFailed) {
		t.Fatalf("ApproveManually without content: expected expectation failure, got %v", err)
	}
	testutil.SeedContent(t, ctx, db, published.ID, "contract.pdf")
	manual, err := svc.ApproveManually(ctx, testutil.Request(published))
	if err != nil {
		t.Fatalf("ApproveManually: %v", err)
	}
	if manual.Status != contracts.StatusApproved || !manual.WasManuallyApproved || manual.SignedOn == nil {
		t.Fatalf("ApproveManually: unexpected contract %+v", manual)
	}

	other := testutil.SeedContract(t, ctx, db, "APP", 3, contracts.StatusPublishedToProvider)
	if _, err := svc.ConfirmApproval(ctx, testutil.Request(other)); !errors.Is(err, contracts.ErrInvalidStatusTransition) {
		t.Fatalf("ConfirmApproval from published: expected invalid transition, got %v", err)
	}
}

func TestContractServiceRejectsMismatchedRequest(t *testing.T) {
	svc, db := newTestContractService(t)
	ctx := context.Background()

	c := testutil.SeedContract(t, ctx, db, "MIS", 1, contracts.StatusApprovedWaitingConfirmation)
	req := testutil.Request(c)
	req.ID = c.ID + 100

	if _, err := svc.ConfirmApproval(ctx, req); !errors.Is(err, contracts.ErrContractMismatch) {
		t.Fatalf("expected mismatch, got %v", err)
	}
	reloaded, err := svc.Get(ctx, c.ID)
	if err != nil || reloaded.Status != contracts.StatusApprovedWaitingConfirmation {
		t.Fatalf("rejected change must not persist: got=%+v err=%v", reloaded, err)
	}

	missing := contracts.ContractRequest{ID: 1, ContractNumber: "MIS", ContractVersion: 9}
	if _, err := svc.Publish(ctx, missing); !errors.Is(err, contracts.ErrContractNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestContractServicePassThroughTransitions(t *testing.T) {
	svc, db := newTestContractService(t)
	ctx := context.Background()

	c := testutil.SeedContract(t, ctx, db, "PT", 1, contracts.StatusApproved)
	req := testutil.Request(c)

	steps := []struct {
		name string
		run  func() (*contracts.Contract, error)
		want contracts.ContractStatus
	}{
		{"replace", func() (*contracts.Contract, error) { return svc.MarkReplaced(ctx, req) }, contracts.StatusReplaced},
		{"publish", func() (*contracts.Contract, error) { return svc.Publish(ctx, req) }, contracts.StatusPublishedToProvider},
		{"await confirmation", func() (*contracts.Contract, error) { return svc.MarkAwaitingConfirmation(ctx, req) }, contracts.StatusApprovedWaitingConfirmation},
		{"withdraw by agency", func() (*contracts.Contract, error) {
			return svc.Withdraw(ctx, req, contracts.StatusWithdrawnByAgency)
		}, contracts.StatusWithdrawnByAgency},
		{"withdraw by provider", func() (*contracts.Contract, error) {
			return svc.Withdraw(ctx, req, contracts.StatusWithdrawnByProvider)
		}, contracts.StatusWithdrawnByProvider},
	}
	for _, step := range steps {
		got, err := step.run()
		if err != nil {
			t.Fatalf("%s: %v", step.name, err)
		}
		if got.Status != step.want {
			t.Fatalf("%s: status got=%v want=%v", step.name, got.Status, step.want)
		}
	}

	if _, err := svc.Withdraw(ctx, req, contracts.StatusApproved); !errors.Is(err, pkgerrors.ErrInvalidArgument) {
		t.Fatalf("Withdraw with bad type: expected ErrInvalidArgument, got %v", err)
	}
}

func TestContractServiceNotificationAndContent(t *testing.T) {
	svc, db := newTestContractService(t)
	ctx := context.Background()

	c := testutil.SeedContract(t, ctx, db, "NOT", 1, contracts.StatusPublishedToProvider)
	req := testutil.Request(c)

	read, err := svc.MarkNotificationRead(ctx, req, "provider-user")
	if err != nil {
		t.Fatalf("MarkNotificationRead: %v", err)
	}
	if !read.HasNotificationBeenRead || read.NotificationReadBy != "provider-user" || read.NotificationReadAt == nil {
		t.Fatalf("MarkNotificationRead: unexpected contract %+v", read)
	}
	if _, err := svc.MarkNotificationRead(ctx, req, "provider-user"); !errors.Is(err, contracts.ErrContractExpectationFailed) {
		t.Fatalf("MarkNotificationRead twice: expected expectation failure, got %v", err)
	}

	withContent, err := svc.AttachContent(ctx, req, "signed.pdf", []byte("%PDF-1.7"))
	if err != nil {
		t.Fatalf("AttachContent: %v", err)
	}
	if withContent.Content == nil || withContent.Content.FileName != "signed.pdf" || withContent.Content.Size != 8 {
		t.Fatalf("AttachContent: unexpected content %+v", withContent.Content)
	}
	if _, err := svc.AttachContent(ctx, req, "", nil); !errors.Is(err, pkgerrors.ErrInvalidArgument) {
		t.Fatalf("AttachContent empty: expected ErrInvalidArgument, got %v", err)
	}
}
