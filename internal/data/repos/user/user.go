package user

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/routinely-backend/internal/data/repos/crud"
	types "github.com/yungbote/routinely-backend/internal/domain"
	userdomain "github.com/yungbote/routinely-backend/internal/domain/user"
	"github.com/yungbote/routinely-backend/internal/pkg/dbctx"
	"github.com/yungbote/routinely-backend/internal/platform/logger"
)

type UserRepo interface {
	Create(dbc dbctx.Context, users []*types.User) ([]*types.User, error)
	GetByID(dbc dbctx.Context, id uuid.UUID) (*types.User, error)
	GetByEmail(dbc dbctx.Context, email string) (*types.User, error)
	List(dbc dbctx.Context, page crud.Page) ([]*types.User, error)
	Update(dbc dbctx.Context, id uuid.UUID, patch crud.Patch) (*types.User, error)
	Delete(dbc dbctx.Context, id uuid.UUID) error
}

type userRepo struct {
	*crud.Base[types.User]
	log *logger.Logger
}

func NewUserRepo(db *gorm.DB, baseLog *logger.Logger) UserRepo {
	repoLog := baseLog.With("repo", "UserRepo")
	return &userRepo{Base: crud.NewBase[types.User](db, repoLog, "User"), log: repoLog}
}

func (ur *userRepo) GetByEmail(dbc dbctx.Context, email string) (*types.User, error) {
	var u types.User
	if err := ur.Tx(dbc).
		Where("email = ?", userdomain.NormalizeEmail(email)).
		First(&u).Error; err != nil {
		return nil, ur.Translate(err)
	}
	return &u, nil
}
