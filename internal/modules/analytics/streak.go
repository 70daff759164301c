package analytics

import (
	"github.com/yungbote/routinely-backend/internal/domain/calendar"
)

// StreakLookbackDays bounds the streak scan; a longer run reports this value.
const StreakLookbackDays = 365

type Streak struct {
	CurrentStreak     int            `json:"current_streak"`
	LastCompletedDate *calendar.Date `json:"last_completed_date"`
}

// LookbackStart is the oldest date the streak can reach from today.
func LookbackStart(today calendar.Date) calendar.Date {
	return today.AddDays(-(StreakLookbackDays - 1))
}

// ComputeStreak counts consecutive days ending at today that appear in
// doneDates. Order and duplicates in doneDates do not matter.
func ComputeStreak(today calendar.Date, doneDates []calendar.Date) Streak {
	done := make(map[string]struct{}, len(doneDates))
	for _, d := range doneDates {
		done[d.String()] = struct{}{}
	}

	n := 0
	for day := today; n < StreakLookbackDays; day = day.AddDays(-1) {
		if _, ok := done[day.String()]; !ok {
			break
		}
		n++
	}

	out := Streak{CurrentStreak: n}
	if n > 0 {
		last := today
		out.LastCompletedDate = &last
	}
	return out
}
