package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMinutesOfDay(t *testing.T) {
	assert.Equal(t, 0, MinutesOfDay("00:00"))
	assert.Equal(t, 9*60, MinutesOfDay("09:00"))
	assert.Equal(t, 13*60+45, MinutesOfDay("13:45"))
	assert.Equal(t, 23*60+59, MinutesOfDay("23:59"))
}

func TestTimeInRange(t *testing.T) {
	// Boundaries are inclusive on both ends
	assert.True(t, TimeInRange("09:00", "09:00", "17:00"))
	assert.True(t, TimeInRange("17:00", "09:00", "17:00"))
	assert.True(t, TimeInRange("12:30", "09:00", "17:00"))
	assert.False(t, TimeInRange("08:59", "09:00", "17:00"))
	assert.False(t, TimeInRange("17:01", "09:00", "17:00"))
}

func TestValidTime(t *testing.T) {
	assert.True(t, ValidTime("00:00"))
	assert.True(t, ValidTime("09:30"))
	assert.True(t, ValidTime("23:59"))

	assert.False(t, ValidTime(""))
	assert.False(t, ValidTime("8:00"))
	assert.False(t, ValidTime("24:00"))
	assert.False(t, ValidTime("12:60"))
	assert.False(t, ValidTime("12-30"))
	assert.False(t, ValidTime("ab:cd"))
}

func TestRequestValidate(t *testing.T) {
	assert.NoError(t, Request{FromTime: "09:00", ToTime: "17:00"}.Validate())

	// Empty and malformed boundary times must be caught here; the
	// evaluator assumes well-formed input.
	assert.Error(t, Request{}.Validate())
	assert.Error(t, Request{FromTime: "", ToTime: "17:00"}.Validate())
	assert.Error(t, Request{FromTime: "9:00", ToTime: "17:00"}.Validate())
	assert.Error(t, Request{FromTime: "09:00", ToTime: "5pm"}.Validate())
}

func TestValidateWindow(t *testing.T) {
	assert.NoError(t, ValidateWindow("", "", ""))
	assert.NoError(t, ValidateWindow("Monday,Friday", "09:00", "17:00"))

	assert.Error(t, ValidateWindow("Monday", "8:00", "17:00"))
	assert.Error(t, ValidateWindow("Monday", "", ""))
	assert.Error(t, ValidateWindow("Funday", "09:00", "17:00"))
	assert.Error(t, ValidateWindow("Monday", "17:00", "09:00"))
	assert.Error(t, ValidateWindow("", "09:00", "24:30"))
}

func TestOverlaps(t *testing.T) {
	day := func(d int) time.Time {
		return time.Date(2026, 9, d, 0, 0, 0, 0, time.UTC)
	}

	tests := []struct {
		name                       string
		aFrom, aTo, bFrom, bTo     time.Time
		want                       bool
	}{
		{"start inside", day(5), day(12), day(1), day(7), true},
		{"end inside", day(1), day(5), day(4), day(10), true},
		{"encloses", day(1), day(10), day(4), day(6), true},
		{"enclosed", day(4), day(6), day(1), day(10), true},
		{"before", day(1), day(3), day(5), day(8), false},
		{"after", day(9), day(12), day(5), day(8), false},
		{"touching boundary", day(1), day(5), day(5), day(8), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(tt.aFrom, tt.aTo, tt.bFrom, tt.bTo))
		})
	}
}

func TestParseDaysRoundTrip(t *testing.T) {
	days := ParseDays("Monday,Tuesday,Friday")
	assert.Equal(t, []time.Weekday{time.Monday, time.Tuesday, time.Friday}, days)
	assert.Equal(t, "Monday,Tuesday,Friday", FormatDays(days))
}

func TestParseDaysSkipsUnknownTokens(t *testing.T) {
	assert.Equal(t, []time.Weekday{time.Sunday}, ParseDays("Sunday, Funday, "))
	assert.Nil(t, ParseDays(""))
}

func TestAt(t *testing.T) {
	date := time.Date(2026, 9, 7, 18, 33, 12, 0, time.UTC)
	got := At(date, "09:30")
	assert.Equal(t, time.Date(2026, 9, 7, 9, 30, 0, 0, time.UTC), got)
}

func TestDateOnlyAndSameDate(t *testing.T) {
	a := time.Date(2026, 9, 7, 23, 59, 0, 0, time.UTC)
	b := time.Date(2026, 9, 7, 0, 1, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC), DateOnly(a))
	assert.True(t, SameDate(a, b))
	assert.False(t, SameDate(a, a.AddDate(0, 0, 1)))
}
