package routine

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/routinely-backend/internal/data/repos/crud"
	types "github.com/yungbote/routinely-backend/internal/domain"
	routinedomain "github.com/yungbote/routinely-backend/internal/domain/routine"
	"github.com/yungbote/routinely-backend/internal/pkg/dbctx"
	"github.com/yungbote/routinely-backend/internal/platform/logger"
)

type RoutineTaskRepo interface {
	Create(dbc dbctx.Context, tasks []*types.RoutineTask) ([]*types.RoutineTask, error)
	GetByID(dbc dbctx.Context, id uuid.UUID) (*types.RoutineTask, error)
	List(dbc dbctx.Context, page crud.Page) ([]*types.RoutineTask, error)
	ListByUser(dbc dbctx.Context, userID uuid.UUID) ([]*types.RoutineTask, error)
	// ListByUserAndDay returns the user's tasks whose active days include day ("Monday".."Sunday").
	ListByUserAndDay(dbc dbctx.Context, userID uuid.UUID, day string) ([]*types.RoutineTask, error)
	Update(dbc dbctx.Context, id uuid.UUID, patch crud.Patch) (*types.RoutineTask, error)
	Delete(dbc dbctx.Context, id uuid.UUID) error
}

type routineTaskRepo struct {
	*crud.Base[types.RoutineTask]
	log *logger.Logger
}

func NewRoutineTaskRepo(db *gorm.DB, baseLog *logger.Logger) RoutineTaskRepo {
	repoLog := baseLog.With("repo", "RoutineTaskRepo")
	return &routineTaskRepo{Base: crud.NewBase[types.RoutineTask](db, repoLog, "Routine task"), log: repoLog}
}

func (r *routineTaskRepo) ListByUserAndDay(dbc dbctx.Context, userID uuid.UUID, day string) ([]*types.RoutineTask, error) {
	if err := routinedomain.ValidateWeekday("day", day); err != nil {
		return nil, err
	}
	t := r.Tx(dbc)

	q := t.Where("user_id = ?", userID)
	switch t.Dialector.Name() {
	case "postgres":
		q = q.Where("active_days::jsonb @> CAST(? AS jsonb)", fmt.Sprintf("[%q]", day))
	case "sqlite":
		q = q.Where("EXISTS (SELECT 1 FROM json_each(routine_tasks.active_days) WHERE json_each.value = ?)", day)
	default:
		return r.filterInMemory(dbc, userID, day)
	}

	var rows []*types.RoutineTask
	if err := q.Order("created_at ASC, id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// filterInMemory serves dialects without JSON containment operators.
func (r *routineTaskRepo) filterInMemory(dbc dbctx.Context, userID uuid.UUID, day string) ([]*types.RoutineTask, error) {
	all, err := r.ListByUser(dbc, userID)
	if err != nil {
		return nil, err
	}
	out := make([]*types.RoutineTask, 0, len(all))
	for _, task := range all {
		if task.ActiveOn(day) {
			out = append(out, task)
		}
	}
	return out, nil
}
