package progress

import "time"

// Day boundaries are pinned to UTC so streaks and weekly counts do not
// depend on where the process happens to run.
const dateLayout = "2006-01-02"

// Day returns the UTC calendar day of t in YYYY-MM-DD form.
func Day(t time.Time) string {
	return t.UTC().Format(dateLayout)
}

// NextStreak applies the streak transition rules: same day leaves the
// streak unchanged, a read the day after lastReadDate extends it, and
// anything else (including a first-ever read) resets it to 1.
func NextStreak(lastReadDate string, currentStreak int, now time.Time) int {
	today := Day(now)
	if lastReadDate == today {
		return currentStreak
	}
	if lastReadDate == Day(now.AddDate(0, 0, -1)) {
		return currentStreak + 1
	}
	return 1
}

// StartOfWeek returns the most recent Monday 00:00:00 UTC at or before now.
func StartOfWeek(now time.Time) time.Time {
	t := now.UTC()
	daysSinceMonday := (int(t.Weekday()) + 6) % 7
	midnight := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return midnight.AddDate(0, 0, -daysSinceMonday)
}
