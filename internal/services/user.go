package services

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/routinely-backend/internal/data/repos"
	"github.com/yungbote/routinely-backend/internal/data/repos/crud"
	types "github.com/yungbote/routinely-backend/internal/domain"
	"github.com/yungbote/routinely-backend/internal/pkg/dbctx"
	"github.com/yungbote/routinely-backend/internal/platform/logger"
)

type CreateUserInput struct {
	Email string `json:"email" binding:"required,email"`
}

type UserService interface {
	Create(dbc dbctx.Context, in CreateUserInput) (*types.User, error)
	Get(dbc dbctx.Context, id uuid.UUID) (*types.User, error)
	GetByEmail(dbc dbctx.Context, email string) (*types.User, error)
	List(dbc dbctx.Context, page crud.Page) ([]*types.User, error)
	Update(dbc dbctx.Context, id uuid.UUID, patch types.UserPatch) (*types.User, error)
	// Delete removes the user together with every task, log, interview and goal they own.
	Delete(dbc dbctx.Context, id uuid.UUID) error
}

type userService struct {
	db       *gorm.DB
	log      *logger.Logger
	userRepo repos.UserRepo
}

func NewUserService(db *gorm.DB, log *logger.Logger, userRepo repos.UserRepo) UserService {
	serviceLog := log.With("service", "UserService")
	return &userService{db: db, log: serviceLog, userRepo: userRepo}
}

func (us *userService) Create(dbc dbctx.Context, in CreateUserInput) (*types.User, error) {
	var created *types.User
	err := inTx(us.db, dbc, func(inner dbctx.Context) error {
		rows, err := us.userRepo.Create(inner, []*types.User{{Email: in.Email}})
		if err != nil {
			return err
		}
		created = rows[0]
		return nil
	})
	if err != nil {
		us.log.Warn("create user failed", "email", in.Email, "error", err)
		return nil, err
	}
	us.log.Info("user created", "user_id", created.ID)
	return created, nil
}

func (us *userService) Get(dbc dbctx.Context, id uuid.UUID) (*types.User, error) {
	return us.userRepo.GetByID(dbc, id)
}

func (us *userService) GetByEmail(dbc dbctx.Context, email string) (*types.User, error) {
	return us.userRepo.GetByEmail(dbc, email)
}

func (us *userService) List(dbc dbctx.Context, page crud.Page) ([]*types.User, error) {
	return us.userRepo.List(dbc, page)
}

func (us *userService) Update(dbc dbctx.Context, id uuid.UUID, patch types.UserPatch) (*types.User, error) {
	var updated *types.User
	err := inTx(us.db, dbc, func(inner dbctx.Context) error {
		u, err := us.userRepo.Update(inner, id, patch)
		updated = u
		return err
	})
	return updated, err
}

func (us *userService) Delete(dbc dbctx.Context, id uuid.UUID) error {
	err := inTx(us.db, dbc, func(inner dbctx.Context) error {
		return us.userRepo.Delete(inner, id)
	})
	if err == nil {
		us.log.Info("user deleted", "user_id", id)
	}
	return err
}
