package crud

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/routinely-backend/internal/pkg/dbctx"
	pkgerrors "github.com/yungbote/routinely-backend/internal/pkg/errors"
	"github.com/yungbote/routinely-backend/internal/platform/logger"
)

// Patch is a partial update: Fields returns only the columns the caller supplied.
type Patch interface {
	Fields() map[string]any
}

const (
	DefaultLimit = 100
	MaxLimit     = 1000
)

// Page is an offset window over an unfiltered listing.
type Page struct {
	Skip  int
	Limit int
}

func (p Page) Normalize() Page {
	if p.Skip < 0 {
		p.Skip = 0
	}
	if p.Limit <= 0 {
		p.Limit = DefaultLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	return p
}

// Base implements the record operations every entity shares. T must be a
// GORM model with an "id" primary key; owned entities also have "user_id".
type Base[T any] struct {
	db     *gorm.DB
	log    *logger.Logger
	entity string
}

func NewBase[T any](db *gorm.DB, log *logger.Logger, entity string) *Base[T] {
	return &Base[T]{db: db, log: log, entity: entity}
}

func (b *Base[T]) Entity() string { return b.entity }

// Tx resolves the handle for dbc: its transaction if any, else the base DB.
func (b *Base[T]) Tx(dbc dbctx.Context) *gorm.DB { return dbc.Resolve(b.db) }

func (b *Base[T]) Create(dbc dbctx.Context, rows []*T) ([]*T, error) {
	if len(rows) == 0 {
		return []*T{}, nil
	}
	if err := b.Tx(dbc).Create(&rows).Error; err != nil {
		return nil, b.Translate(err)
	}
	return rows, nil
}

func (b *Base[T]) GetByID(dbc dbctx.Context, id uuid.UUID) (*T, error) {
	var row T
	if err := b.Tx(dbc).Where("id = ?", id).First(&row).Error; err != nil {
		return nil, b.Translate(err)
	}
	return &row, nil
}

func (b *Base[T]) List(dbc dbctx.Context, page Page) ([]*T, error) {
	page = page.Normalize()
	var rows []*T
	if err := b.Tx(dbc).
		Order("created_at ASC, id ASC").
		Offset(page.Skip).
		Limit(page.Limit).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (b *Base[T]) ListByUser(dbc dbctx.Context, userID uuid.UUID) ([]*T, error) {
	var rows []*T
	if err := b.Tx(dbc).
		Where("user_id = ?", userID).
		Order("created_at ASC, id ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// Update merges the patch into row id and returns the stored result.
func (b *Base[T]) Update(dbc dbctx.Context, id uuid.UUID, patch Patch) (*T, error) {
	if _, err := b.GetByID(dbc, id); err != nil {
		return nil, err
	}
	if fields := patch.Fields(); len(fields) > 0 {
		if err := b.Tx(dbc).
			Model(new(T)).
			Where("id = ?", id).
			Updates(fields).Error; err != nil {
			return nil, b.Translate(err)
		}
	}
	return b.GetByID(dbc, id)
}

// Delete hard-deletes row id; dependents go with it through ON DELETE CASCADE.
func (b *Base[T]) Delete(dbc dbctx.Context, id uuid.UUID) error {
	res := b.Tx(dbc).Where("id = ?", id).Delete(new(T))
	if res.Error != nil {
		return b.Translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return pkgerrors.NotFound(b.entity)
	}
	return nil
}

// Translate maps driver-level failures onto the package error kinds.
func (b *Base[T]) Translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return pkgerrors.NotFound(b.entity)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return pkgerrors.Conflict(b.entity + " already exists")
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return pkgerrors.NotFound("Referenced record")
	default:
		return err
	}
}
