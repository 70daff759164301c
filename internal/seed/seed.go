package seed

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	types "github.com/yungbote/routinely-backend/internal/domain"
	"github.com/yungbote/routinely-backend/internal/domain/interview"
	"github.com/yungbote/routinely-backend/internal/pkg/dbctx"
	pkgerrors "github.com/yungbote/routinely-backend/internal/pkg/errors"
	"github.com/yungbote/routinely-backend/internal/platform/logger"
	"github.com/yungbote/routinely-backend/internal/services"
)

// File is the seed document. Unknown keys are rejected.
type File struct {
	Users []User `yaml:"users"`
}

type User struct {
	Email        string      `yaml:"email"`
	RoutineTasks []Task      `yaml:"routine_tasks"`
	Goals        []Goal      `yaml:"goals"`
	Interviews   []Interview `yaml:"interviews"`
}

type Task struct {
	Name           string   `yaml:"name"`
	Category       string   `yaml:"category"`
	PlannedMinutes int      `yaml:"planned_minutes"`
	ActiveDays     []string `yaml:"active_days"`
}

type Goal struct {
	GoalType         string `yaml:"goal_type"`
	TargetPercentage *int   `yaml:"target_percentage"`
}

type Interview struct {
	CompanyName string  `yaml:"company_name"`
	Role        string  `yaml:"role"`
	Status      string  `yaml:"status"`
	Priority    string  `yaml:"priority"`
	Notes       *string `yaml:"notes"`
}

// Summary counts the rows Apply created.
type Summary struct {
	Users        int
	RoutineTasks int
	Goals        int
	Interviews   int
}

func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	return Parse(bytes.NewReader(data))
}

func Parse(r io.Reader) (*File, error) {
	var f File
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return &f, nil
		}
		return nil, fmt.Errorf("parse seed file: %w", err)
	}
	for i, u := range f.Users {
		if u.Email == "" {
			return nil, fmt.Errorf("users[%d]: email is required", i)
		}
	}
	return &f, nil
}

type Services struct {
	Users      services.UserService
	Tasks      services.RoutineTaskService
	Goals      services.GoalService
	Interviews services.InterviewService
}

// Apply creates every row in f. Users that already exist are reused, so a
// file can be applied to a populated database; their children are still added.
func Apply(dbc dbctx.Context, log *logger.Logger, svc Services, f *File) (Summary, error) {
	var sum Summary
	for _, su := range f.Users {
		u, created, err := ensureUser(dbc, svc.Users, su.Email)
		if err != nil {
			return sum, fmt.Errorf("user %s: %w", su.Email, err)
		}
		if created {
			sum.Users++
		}

		for _, st := range su.RoutineTasks {
			if _, err := svc.Tasks.Create(dbc, services.CreateRoutineTaskInput{
				UserID:         u.ID,
				Name:           st.Name,
				Category:       types.Category(st.Category),
				PlannedMinutes: st.PlannedMinutes,
				ActiveDays:     st.ActiveDays,
			}); err != nil {
				return sum, fmt.Errorf("routine task %q for %s: %w", st.Name, su.Email, err)
			}
			sum.RoutineTasks++
		}

		for _, sg := range su.Goals {
			if _, err := svc.Goals.Create(dbc, services.CreateGoalInput{
				UserID:           u.ID,
				GoalType:         types.GoalType(sg.GoalType),
				TargetPercentage: sg.TargetPercentage,
			}); err != nil {
				return sum, fmt.Errorf("%s goal for %s: %w", sg.GoalType, su.Email, err)
			}
			sum.Goals++
		}

		if svc.Interviews != nil {
			for _, si := range su.Interviews {
				if _, err := svc.Interviews.Create(dbc, services.CreateInterviewInput{
					UserID:      u.ID,
					CompanyName: si.CompanyName,
					Role:        si.Role,
					Status:      interview.Status(si.Status),
					Priority:    interview.Priority(si.Priority),
					Notes:       si.Notes,
				}); err != nil {
					return sum, fmt.Errorf("interview %q for %s: %w", si.CompanyName, su.Email, err)
				}
				sum.Interviews++
			}
		}
	}
	if log != nil {
		log.Info("seed applied",
			"users", sum.Users,
			"routine_tasks", sum.RoutineTasks,
			"goals", sum.Goals,
			"interviews", sum.Interviews,
		)
	}
	return sum, nil
}

func ensureUser(dbc dbctx.Context, users services.UserService, email string) (*types.User, bool, error) {
	u, err := users.Create(dbc, services.CreateUserInput{Email: email})
	if err == nil {
		return u, true, nil
	}
	if !errors.Is(err, pkgerrors.ErrConflict) {
		return nil, false, err
	}
	u, err = users.GetByEmail(dbc, email)
	return u, false, err
}
