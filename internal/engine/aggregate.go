package engine

import (
	"time"

	"github.com/mfortes/ponto/internal/model"
	"github.com/mfortes/ponto/internal/timecalc"
)

// WorkedSeconds computes the seconds worked in one day's record at the
// instant now. Closed intervals pair timeOut[i] with timeIn[i]; an open
// interval additionally counts the time elapsed since the unmatched
// clock-in, so the figure keeps growing while the user is clocked in.
// Out-of-order punches yield negative contributions; no clamping happens
// here.
func WorkedSeconds(rec model.DayRecord, now time.Time) int {
	total := 0
	for i, out := range rec.TimeOut {
		if i >= len(rec.TimeIn) {
			break
		}
		total += timecalc.ToSeconds(out) - timecalc.ToSeconds(rec.TimeIn[i])
	}
	if rec.State() == model.StateOpen {
		last := rec.TimeIn[len(rec.TimeIn)-1]
		total += timecalc.ToSeconds(timecalc.FormatClock(now)) - timecalc.ToSeconds(last)
	}
	return total
}

// windowSeconds sums WorkedSeconds over the records whose date falls
// inside [from, to] inclusive.
func windowSeconds(records []model.DayRecord, from, to time.Time, now time.Time) int {
	total := 0
	for _, r := range records {
		d, err := timecalc.ParseDate(r.Date)
		if err != nil {
			continue
		}
		if timecalc.Within(d, from, to) {
			total += WorkedSeconds(r, now)
		}
	}
	return total
}

// mostRecentDate returns the greatest parsed date among the records. The
// second result is false for an empty (or unparsable) record set.
func mostRecentDate(records []model.DayRecord) (time.Time, bool) {
	var best time.Time
	found := false
	for _, r := range records {
		d, err := timecalc.ParseDate(r.Date)
		if err != nil {
			continue
		}
		if !found || d.After(best) {
			best = d
			found = true
		}
	}
	return best, found
}

// WeeklySeconds sums the records falling in the calendar week around the
// most recent record's date.
func WeeklySeconds(records []model.DayRecord, now time.Time, weekStart time.Weekday) int {
	ref, ok := mostRecentDate(records)
	if !ok {
		return 0
	}
	from, to := timecalc.WeekRange(ref, weekStart)
	return windowSeconds(records, from, to, now)
}

// MonthlySeconds sums the records falling in the calendar month around the
// most recent record's date.
func MonthlySeconds(records []model.DayRecord, now time.Time) int {
	ref, ok := mostRecentDate(records)
	if !ok {
		return 0
	}
	from, to := timecalc.MonthRange(ref)
	return windowSeconds(records, from, to, now)
}

// TodaySeconds returns the seconds worked on the calendar day of now, or
// zero when that day has no record.
func TodaySeconds(records []model.DayRecord, now time.Time) int {
	i := indexByDate(records, timecalc.FormatDate(now))
	if i < 0 {
		return 0
	}
	return WorkedSeconds(records[i], now)
}

// RemainingSeconds is the weekly quota minus the weekly total. Negative
// means over quota; the caller renders it signed.
func RemainingSeconds(workHours string, records []model.DayRecord, now time.Time, weekStart time.Weekday) int {
	quota := timecalc.ToSeconds(workHours + ":00:00")
	return quota - WeeklySeconds(records, now, weekStart)
}

// The formatted aggregate getters below are what the presentation layer
// calls; figures are re-derived on every call, never cached.

func (t *Tracker) WeeklyTotal(now time.Time) string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return timecalc.FormatDuration(WeeklySeconds(t.profile.Records, now, t.weekStart))
}

func (t *Tracker) MonthlyTotal(now time.Time) string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return timecalc.FormatDuration(MonthlySeconds(t.profile.Records, now))
}

func (t *Tracker) TodayTotal(now time.Time) string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return timecalc.FormatDuration(TodaySeconds(t.profile.Records, now))
}

func (t *Tracker) RemainingQuota(now time.Time) string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return timecalc.FormatDuration(RemainingSeconds(t.profile.WorkHours, t.profile.Records, now, t.weekStart))
}
