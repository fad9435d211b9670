package learning

import (
	"sort"
	"time"

	"github.com/example/vbcards/pkg/models"
)

// StreakResult holds the derived consecutive-day streaks.
type StreakResult struct {
	Current int // run of days ending today; 0 if today has no activity
	Longest int // maximal run anywhere in the history
}

// CalculateStreak derives streaks from daily stats. The two values are
// computed in separate passes: longest scans the whole history, current only
// counts backwards from today.
func CalculateStreak(stats []models.DailyStats, today time.Time) StreakResult {
	if len(stats) == 0 {
		return StreakResult{}
	}

	days := make(map[string]struct{}, len(stats))
	for _, s := range stats {
		days[s.Date] = struct{}{}
	}

	dates := make([]string, 0, len(days))
	for d := range days {
		dates = append(dates, d)
	}
	// ISO date keys sort lexicographically in chronological order.
	sort.Sort(sort.Reverse(sort.StringSlice(dates)))

	longest := 1
	run := 1
	for i := 1; i < len(dates); i++ {
		if dates[i] == previousDay(dates[i-1]) {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}

	current := 0
	for day := models.DateKey(today); ; day = previousDay(day) {
		if _, ok := days[day]; !ok {
			break
		}
		current++
	}

	return StreakResult{Current: current, Longest: longest}
}

func previousDay(dateKey string) string {
	t, err := time.Parse(models.DateKeyLayout, dateKey)
	if err != nil {
		return ""
	}
	return models.DateKey(t.AddDate(0, 0, -1))
}
