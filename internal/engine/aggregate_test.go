package engine_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mfortes/ponto/internal/engine"
	"github.com/mfortes/ponto/internal/model"
)

func closedDay(date, in, out string) model.DayRecord {
	return model.DayRecord{Date: date, TimeIn: []string{in}, TimeOut: []string{out}}
}

func TestWeeklyTotalWindowsAroundMostRecentRecord(t *testing.T) {
	tr, _ := newTracker(t)

	// Sunday-start week around 05-03-2024 runs 03.03. to 09.03.
	require.NoError(t, tr.AddRecord(closedDay("04-03-2024", "09:00:00", "17:00:00"))) // 8h, in week
	require.NoError(t, tr.AddRecord(closedDay("05-03-2024", "09:00:00", "13:00:00"))) // 4h, in week
	require.NoError(t, tr.AddRecord(closedDay("20-02-2024", "09:00:00", "17:00:00"))) // outside

	now := at(9, "12:00:00")
	assert.Equal(t, "12:00:00", tr.WeeklyTotal(now))
}

func TestWeeklyTotalEmpty(t *testing.T) {
	tr, _ := newTracker(t)
	assert.Equal(t, "00:00:00", tr.WeeklyTotal(at(9, "12:00:00")))
}

func TestMonthlyTotalWindowsAroundMostRecentRecord(t *testing.T) {
	tr, _ := newTracker(t)

	require.NoError(t, tr.AddRecord(closedDay("01-03-2024", "09:00:00", "17:00:00"))) // 8h, March
	require.NoError(t, tr.AddRecord(closedDay("15-03-2024", "09:00:00", "12:00:00"))) // 3h, March
	require.NoError(t, tr.AddRecord(closedDay("29-02-2024", "09:00:00", "17:00:00"))) // February, excluded

	now := at(31, "12:00:00")
	assert.Equal(t, "11:00:00", tr.MonthlyTotal(now))
}

func TestTodayTotalWithoutRecord(t *testing.T) {
	tr, _ := newTracker(t)
	require.NoError(t, tr.AddRecord(closedDay("04-03-2024", "09:00:00", "17:00:00")))

	// No record for the 5th.
	assert.Equal(t, "00:00:00", tr.TodayTotal(at(5, "12:00:00")))
}

func TestRemainingQuota(t *testing.T) {
	tr, _ := newTracker(t)

	// 8h worked in the quota week of 40h.
	require.NoError(t, tr.AddRecord(closedDay("04-03-2024", "09:00:00", "17:00:00")))
	assert.Equal(t, "32:00:00", tr.RemainingQuota(at(9, "12:00:00")))
}

func TestRemainingQuotaOverQuotaIsSigned(t *testing.T) {
	tr, _ := newTracker(t)

	// 45h worked against a 40h quota: the remainder is negative and is
	// rendered signed, not clamped.
	require.NoError(t, tr.AddRecord(closedDay("04-03-2024", "00:00:00", "23:00:00"))) // 23h
	require.NoError(t, tr.AddRecord(closedDay("05-03-2024", "00:00:00", "22:00:00"))) // 22h

	assert.Equal(t, "45:00:00", tr.WeeklyTotal(at(9, "12:00:00")))
	assert.Equal(t, "-05:00:00", tr.RemainingQuota(at(9, "12:00:00")))
}

func TestAggregatesRederiveAfterMutation(t *testing.T) {
	tr, _ := newTracker(t)
	now := at(9, "12:00:00")

	require.NoError(t, tr.AddRecord(closedDay("04-03-2024", "09:00:00", "17:00:00")))
	assert.Equal(t, "08:00:00", tr.WeeklyTotal(now))

	_, err := tr.DeleteRecord(0)
	require.NoError(t, err)
	assert.Equal(t, "00:00:00", tr.WeeklyTotal(now))
}

func TestWeeklySecondsHonorsWeekStart(t *testing.T) {
	// 03-03-2024 is a Sunday. With a Monday week start it belongs to the
	// previous week of 04-03.
	records := []model.DayRecord{
		closedDay("04-03-2024", "09:00:00", "17:00:00"), // 8h
		closedDay("03-03-2024", "09:00:00", "13:00:00"), // 4h
	}
	now := time.Date(2024, 3, 9, 12, 0, 0, 0, time.Local)

	assert.Equal(t, 12*3600, engine.WeeklySeconds(records, now, time.Sunday))
	assert.Equal(t, 8*3600, engine.WeeklySeconds(records, now, time.Monday))
}
