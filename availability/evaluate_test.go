package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testResource struct {
	schedule  Schedule
	blackouts []Blackout
}

func (r testResource) Schedule() Schedule    { return r.schedule }
func (r testResource) Blackouts() []Blackout { return r.blackouts }

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// 2026-09-07 is a Monday.
var weekdaySchedule = Schedule{
	Days:      []time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday},
	StartTime: "09:00",
	EndTime:   "17:00",
}

func TestEvaluateAdmissible(t *testing.T) {
	res := testResource{schedule: weekdaySchedule}
	req := Request{
		FromDate: date(2026, 9, 7), ToDate: date(2026, 9, 9),
		FromTime: "10:00", ToTime: "16:00",
	}
	d := Evaluate(res, req)
	assert.True(t, d.Admissible)
	assert.Empty(t, d.Reason)
}

func TestEvaluateRejectsOffDay(t *testing.T) {
	res := testResource{schedule: weekdaySchedule}
	// Friday through Sunday: Saturday is not in the weekday set
	req := Request{
		FromDate: date(2026, 9, 11), ToDate: date(2026, 9, 13),
		FromTime: "10:00", ToTime: "16:00",
	}
	d := Evaluate(res, req)
	require.False(t, d.Admissible)
	assert.Equal(t, ReasonDay, d.Reason)
	assert.Contains(t, d.Detail, "Saturday")
}

func TestEvaluateRejectsOutOfWindowPickup(t *testing.T) {
	res := testResource{schedule: weekdaySchedule}
	req := Request{
		FromDate: date(2026, 9, 7), ToDate: date(2026, 9, 7),
		FromTime: "08:00", ToTime: "12:00",
	}
	d := Evaluate(res, req)
	require.False(t, d.Admissible)
	assert.Equal(t, ReasonTime, d.Reason)
}

func TestEvaluateRejectsOutOfWindowDropoff(t *testing.T) {
	res := testResource{schedule: weekdaySchedule}
	req := Request{
		FromDate: date(2026, 9, 7), ToDate: date(2026, 9, 8),
		FromTime: "10:00", ToTime: "18:30",
	}
	d := Evaluate(res, req)
	require.False(t, d.Admissible)
	assert.Equal(t, ReasonTime, d.Reason)
	assert.Contains(t, d.Detail, "drop-off")
}

func TestEvaluateBoundaryTimesInclusive(t *testing.T) {
	res := testResource{schedule: weekdaySchedule}
	req := Request{
		FromDate: date(2026, 9, 7), ToDate: date(2026, 9, 7),
		FromTime: "09:00", ToTime: "17:00",
	}
	assert.True(t, Evaluate(res, req).Admissible)
}

func TestEvaluateBlackoutWins(t *testing.T) {
	// Blackouts are checked before the weekly schedule, so even a request
	// entirely inside the weekly window is rejected.
	res := testResource{
		schedule: weekdaySchedule,
		blackouts: []Blackout{
			{From: date(2026, 9, 8), To: date(2026, 9, 10)},
		},
	}
	req := Request{
		FromDate: date(2026, 9, 7), ToDate: date(2026, 9, 9),
		FromTime: "10:00", ToTime: "16:00",
	}
	d := Evaluate(res, req)
	require.False(t, d.Admissible)
	assert.Equal(t, ReasonBlackout, d.Reason)
	require.NotNil(t, d.Conflict)
	assert.Equal(t, date(2026, 9, 8), d.Conflict.From)
}

func TestEvaluateBlackoutEnclosedByRequest(t *testing.T) {
	res := testResource{
		blackouts: []Blackout{
			{From: date(2026, 9, 8), To: date(2026, 9, 8).Add(12 * time.Hour)},
		},
	}
	req := Request{
		FromDate: date(2026, 9, 7), ToDate: date(2026, 9, 10),
		FromTime: "10:00", ToTime: "10:00",
	}
	d := Evaluate(res, req)
	require.False(t, d.Admissible)
	assert.Equal(t, ReasonBlackout, d.Reason)
}

func TestEvaluateEmptyScheduleIsPermissive(t *testing.T) {
	res := testResource{}
	// Weekend at midnight, way outside any plausible window
	req := Request{
		FromDate: date(2026, 9, 12), ToDate: date(2026, 9, 13),
		FromTime: "00:00", ToTime: "23:59",
	}
	assert.True(t, Evaluate(res, req).Admissible)
}

func TestFilterAvailablePreservesOrder(t *testing.T) {
	open := testResource{}
	closed := testResource{
		blackouts: []Blackout{{From: date(2026, 9, 1), To: date(2026, 9, 30)}},
	}
	pool := []testResource{open, closed, open, closed, open}
	req := Request{
		FromDate: date(2026, 9, 7), ToDate: date(2026, 9, 8),
		FromTime: "10:00", ToTime: "10:00",
	}
	out := FilterAvailable(pool, req)
	require.Len(t, out, 3)
	for _, r := range out {
		assert.Empty(t, r.blackouts)
	}
}

func TestFilterAvailableEmptyPool(t *testing.T) {
	req := Request{
		FromDate: date(2026, 9, 7), ToDate: date(2026, 9, 8),
		FromTime: "10:00", ToTime: "10:00",
	}
	assert.Empty(t, FilterAvailable([]testResource{}, req))
}
