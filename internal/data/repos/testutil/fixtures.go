package testutil

import (
	"context"
	"testing"

	"gorm.io/gorm"

	types "github.com/yungbote/contracts-data-backend/internal/domain/contracts"
)

func SeedContract(tb testing.TB, ctx context.Context, tx *gorm.DB, number string, version int, status types.ContractStatus) *types.Contract {
	tb.Helper()
	c := &types.Contract{
		ContractNumber:  number,
		ContractVersion: version,
		Status:          status,
		Title:           "Test contract",
		Year:            "2021",
	}
	if err := tx.WithContext(ctx).Create(c).Error; err != nil {
		tb.Fatalf("seed contract: %v", err)
	}
	return c
}

func SeedContent(tb testing.TB, ctx context.Context, tx *gorm.DB, contractID int, fileName string) *types.ContractContent {
	tb.Helper()
	cc := &types.ContractContent{
		ContractID: contractID,
		FileName:   fileName,
		Size:       3,
		Content:    []byte("pdf"),
	}
	if err := tx.WithContext(ctx).Create(cc).Error; err != nil {
		tb.Fatalf("seed contract content: %v", err)
	}
	return cc
}

// Request builds the request that exactly matches c.
func Request(c *types.Contract) types.ContractRequest {
	return types.ContractRequest{ID: c.ID, ContractNumber: c.ContractNumber, ContractVersion: c.ContractVersion}
}
