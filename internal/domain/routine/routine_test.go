package routine

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/yungbote/routinely-backend/internal/domain/calendar"
	pkgerrors "github.com/yungbote/routinely-backend/internal/pkg/errors"
)

func TestValidateWeekday(t *testing.T) {
	for _, d := range Weekdays {
		if err := ValidateWeekday("day_name", d); err != nil {
			t.Fatalf("%s should be valid: %v", d, err)
		}
	}
	for _, bad := range []string{"Funday", "monday", "MONDAY", "", "Mon"} {
		err := ValidateWeekday("day_name", bad)
		if !errors.Is(err, pkgerrors.ErrInvalidArgument) {
			t.Fatalf("%q should be rejected, got %v", bad, err)
		}
	}
}

func TestWeekdayName(t *testing.T) {
	if got := WeekdayName(time.Wednesday); got != "Wednesday" {
		t.Fatalf("WeekdayName = %s", got)
	}
	if !IsWeekday(WeekdayName(calendar.New(2026, 10, 16).Weekday())) {
		t.Fatalf("calendar weekday should map onto the accepted names")
	}
}

func TestNormalizeDays(t *testing.T) {
	got := NormalizeDays([]string{"Sunday", "Monday", "Sunday", "Wednesday"})
	want := []string{"Monday", "Wednesday", "Sunday"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("NormalizeDays = %v, want %v", got, want)
	}
	if got := NormalizeDays(nil); got == nil || len(got) != 0 {
		t.Fatalf("NormalizeDays(nil) should be an empty non-nil slice, got %#v", got)
	}
}

func TestActiveOn(t *testing.T) {
	task := &RoutineTask{ActiveDays: datatypes.JSONSlice[string]{"Monday", "Friday"}}
	if !task.ActiveOn("Friday") || task.ActiveOn("Tuesday") {
		t.Fatalf("ActiveOn mismatch for %v", task.ActiveDays)
	}
}

func TestPatchFieldsOnlyCarrySuppliedKeys(t *testing.T) {
	done := StatusDone
	fields := DailyLogPatch{Status: &done}.Fields()
	if len(fields) != 1 || fields["status"] != StatusDone {
		t.Fatalf("unexpected fields: %v", fields)
	}

	days := []string{"Friday", "Monday", "Friday"}
	taskFields := RoutineTaskPatch{ActiveDays: &days}.Fields()
	got, ok := taskFields["active_days"].(datatypes.JSONSlice[string])
	if !ok || !reflect.DeepEqual([]string(got), []string{"Monday", "Friday"}) {
		t.Fatalf("active_days not normalized: %#v", taskFields["active_days"])
	}
	if len(RoutineTaskPatch{}.Fields()) != 0 {
		t.Fatalf("empty patch should produce no fields")
	}
}

func TestNewPendingLog(t *testing.T) {
	uid, tid := uuid.New(), uuid.New()
	day := calendar.New(2026, 10, 16)
	l := NewPendingLog(uid, tid, day)
	if l.Status != StatusPending || l.ActualMinutes != 0 || l.Notes != nil || !l.Date.Equal(day) {
		t.Fatalf("unexpected pending log: %+v", l)
	}
	if l.UserID != uid || l.RoutineTaskID != tid {
		t.Fatalf("ids not carried over: %+v", l)
	}
}
