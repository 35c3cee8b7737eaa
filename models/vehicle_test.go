package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sheikhBasit/carRental-sub002/availability"
)

var (
	_ availability.Bookable = (*Vehicle)(nil)
	_ availability.Bookable = (*Driver)(nil)
)

func TestVehicleScheduleFromColumns(t *testing.T) {
	v := &Vehicle{
		AvailableDays: "Monday,Wednesday,Friday",
		StartTime:     "08:00",
		EndTime:       "20:00",
	}
	s := v.Schedule()
	assert.Equal(t, []time.Weekday{time.Monday, time.Wednesday, time.Friday}, s.Days)
	assert.Equal(t, "08:00", s.StartTime)
	assert.Equal(t, "20:00", s.EndTime)
}

func TestVehicleWithoutScheduleIsAlwaysBookable(t *testing.T) {
	v := &Vehicle{}
	req := availability.Request{
		FromDate: time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC),
		ToDate:   time.Date(2026, 9, 13, 0, 0, 0, 0, time.UTC),
		FromTime: "03:00", ToTime: "23:00",
	}
	assert.True(t, availability.Evaluate(v, req).Admissible)
}

func TestVehicleBlackoutsMapToIntervals(t *testing.T) {
	from := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 10, 5, 0, 0, 0, 0, time.UTC)
	v := &Vehicle{
		BlackoutPeriods: []BlackoutPeriod{{From: from, To: to, Remarks: "workshop"}},
	}
	got := v.Blackouts()
	require.Len(t, got, 1)
	assert.Equal(t, from, got[0].From)
	assert.Equal(t, to, got[0].To)
}

func TestDriverRates(t *testing.T) {
	d := &Driver{DailyRate: 1200, HourlyRate: 250}
	assert.Equal(t, availability.DriverRates{Daily: 1200, Hourly: 250}, d.Rates())
}
