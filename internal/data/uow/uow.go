package uow

import (
	"context"

	"gorm.io/gorm"

	"github.com/yungbote/contracts-data-backend/internal/pkg/dbctx"
	"github.com/yungbote/contracts-data-backend/internal/pkg/logger"
)

// UnitOfWork groups repo writes into one transaction that commits when the callback succeeds.
type UnitOfWork interface {
	Do(ctx context.Context, fn func(dbc dbctx.Context) error) error
}

type unitOfWork struct {
	db  *gorm.DB
	log *logger.Logger
}

func New(db *gorm.DB, baseLog *logger.Logger) UnitOfWork {
	return &unitOfWork{
		db:  db,
		log: baseLog.With("component", "UnitOfWork"),
	}
}

func (u *unitOfWork) Do(ctx context.Context, fn func(dbc dbctx.Context) error) error {
	err := u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(dbctx.Context{Ctx: ctx, Tx: tx})
	})
	if err != nil {
		u.log.Debug("unit of work rolled back", "error", err)
	}
	return err
}
