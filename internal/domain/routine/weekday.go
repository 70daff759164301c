package routine

import (
	"fmt"
	"strings"
	"time"

	pkgerrors "github.com/yungbote/routinely-backend/internal/pkg/errors"
)

// Weekdays lists the accepted active-day names in calendar order.
var Weekdays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// IsWeekday reports whether name is one of Weekdays. Matching is case-sensitive.
func IsWeekday(name string) bool {
	for _, d := range Weekdays {
		if d == name {
			return true
		}
	}
	return false
}

// ValidateWeekday returns a validation error naming field when name is not a weekday.
func ValidateWeekday(field, name string) error {
	if IsWeekday(name) {
		return nil
	}
	return pkgerrors.Invalid(field, fmt.Sprintf("invalid day name %q, must be one of: %s", name, strings.Join(Weekdays, ", ")))
}

// WeekdayName is the English name used in active-day sets.
func WeekdayName(d time.Weekday) string { return d.String() }

// NormalizeDays drops duplicates and orders the set Monday first. Callers
// validate membership beforehand.
func NormalizeDays(days []string) []string {
	seen := make(map[string]bool, len(days))
	for _, d := range days {
		seen[d] = true
	}
	out := make([]string, 0, len(seen))
	for _, d := range Weekdays {
		if seen[d] {
			out = append(out, d)
		}
	}
	return out
}
