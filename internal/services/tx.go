package services

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/yungbote/routinely-backend/internal/pkg/dbctx"
)

// Clock supplies the current instant; services resolve "today" from it.
type Clock func() time.Time

func (c Clock) now() time.Time {
	if c == nil {
		return time.Now()
	}
	return c()
}

// inTx runs fn inside the caller's transaction, or opens one when dbc has none.
func inTx(db *gorm.DB, dbc dbctx.Context, fn func(inner dbctx.Context) error) error {
	ctx := dbc.Ctx
	if ctx == nil {
		ctx = context.Background()
	}
	if dbc.Tx != nil {
		return fn(dbctx.Context{Ctx: ctx, Tx: dbc.Tx})
	}
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(dbctx.Context{Ctx: ctx, Tx: tx})
	})
}
