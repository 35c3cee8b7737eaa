package availability

import (
	"fmt"
	"strings"
	"time"
)

// Schedule is a recurring weekly availability window: the weekdays a
// resource can be booked on, bounded by a single daily start/end pair in
// 24-hour "HH:MM" local time. An empty Days set means the resource has no
// schedule configured and is treated as always bookable.
//
// Overnight windows (StartTime > EndTime) are not supported.
type Schedule struct {
	Days      []time.Weekday `json:"days"`
	StartTime string         `json:"start_time"`
	EndTime   string         `json:"end_time"`
}

// Blackout is an absolute calendar interval during which a resource cannot
// be booked, regardless of its weekly schedule.
type Blackout struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

// Bookable is anything with a weekly schedule and blackout periods.
// Vehicles and drivers share this shape.
type Bookable interface {
	Schedule() Schedule
	Blackouts() []Blackout
}

// Request is a requested booking interval: calendar dates with the
// time-of-day for each boundary kept separately.
type Request struct {
	FromDate time.Time `json:"from_date"`
	ToDate   time.Time `json:"to_date"`
	FromTime string    `json:"from_time"`
	ToTime   string    `json:"to_time"`
}

// Validate rejects a request whose boundary times are missing or
// malformed, before it may reach the evaluator.
func (r Request) Validate() error {
	if !ValidTime(r.FromTime) {
		return fmt.Errorf("from_time %q is not a valid HH:MM time", r.FromTime)
	}
	if !ValidTime(r.ToTime) {
		return fmt.Errorf("to_time %q is not a valid HH:MM time", r.ToTime)
	}
	return nil
}

// StartInstant combines FromDate and FromTime into a single instant.
func (r Request) StartInstant() time.Time { return At(r.FromDate, r.FromTime) }

// EndInstant combines ToDate and ToTime into a single instant.
func (r Request) EndInstant() time.Time { return At(r.ToDate, r.ToTime) }

// MinutesOfDay converts a 24-hour "HH:MM" string to minutes since
// midnight. The string must be well formed; callers validate input before
// it reaches this package.
func MinutesOfDay(hhmm string) int {
	h := int(hhmm[0]-'0')*10 + int(hhmm[1]-'0')
	m := int(hhmm[3]-'0')*10 + int(hhmm[4]-'0')
	return h*60 + m
}

// ValidTime reports whether hhmm is a well-formed 24-hour "HH:MM" string.
// Everything in this package that takes a time string requires it to pass
// this check; callers validate at the boundary.
func ValidTime(hhmm string) bool {
	if len(hhmm) != 5 || hhmm[2] != ':' {
		return false
	}
	for _, i := range [4]int{0, 1, 3, 4} {
		if hhmm[i] < '0' || hhmm[i] > '9' {
			return false
		}
	}
	h := int(hhmm[0]-'0')*10 + int(hhmm[1]-'0')
	m := int(hhmm[3]-'0')*10 + int(hhmm[4]-'0')
	return h <= 23 && m <= 59
}

// TimeInRange reports whether t falls within [start, end], inclusive on
// both ends. All three are "HH:MM" strings.
func TimeInRange(t, start, end string) bool {
	v := MinutesOfDay(t)
	return MinutesOfDay(start) <= v && v <= MinutesOfDay(end)
}

// At returns the instant on date's calendar day at the given "HH:MM"
// time-of-day, in date's location.
func At(date time.Time, hhmm string) time.Time {
	mins := MinutesOfDay(hhmm)
	return time.Date(date.Year(), date.Month(), date.Day(), mins/60, mins%60, 0, 0, date.Location())
}

// DateOnly strips the time-of-day, returning midnight on the same day.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDate reports whether two instants fall on the same calendar day.
func SameDate(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// FormatDate renders the date as zero-padded "YYYY-MM-DD".
func FormatDate(t time.Time) string { return t.Format("2006-01-02") }

// FormatTime renders the time-of-day as zero-padded "HH:MM".
func FormatTime(t time.Time) string { return t.Format("15:04") }

// Overlaps reports whether the interval [aFrom, aTo] conflicts with
// [bFrom, bTo]: either boundary of a inside b, a enclosing b, or b
// enclosing a.
func Overlaps(aFrom, aTo, bFrom, bTo time.Time) bool {
	startInside := !aFrom.Before(bFrom) && !aFrom.After(bTo)
	endInside := !aTo.Before(bFrom) && !aTo.After(bTo)
	encloses := aFrom.Before(bFrom) && aTo.After(bTo)
	enclosed := bFrom.Before(aFrom) && bTo.After(aTo)
	return startInside || endInside || encloses || enclosed
}

var weekdayNames = map[string]time.Weekday{
	"Sunday":    time.Sunday,
	"Monday":    time.Monday,
	"Tuesday":   time.Tuesday,
	"Wednesday": time.Wednesday,
	"Thursday":  time.Thursday,
	"Friday":    time.Friday,
	"Saturday":  time.Saturday,
}

// ParseDays converts a comma-separated list of weekday names
// ("Monday,Tuesday") into a weekday set. Unknown or empty tokens are
// skipped.
func ParseDays(csv string) []time.Weekday {
	var days []time.Weekday
	for _, token := range strings.Split(csv, ",") {
		if d, ok := weekdayNames[strings.TrimSpace(token)]; ok {
			days = append(days, d)
		}
	}
	return days
}

// ValidateWindow checks a weekly window as stored on a vehicle or driver:
// known weekday names, well-formed times, and no overnight span. All three
// fields empty is a valid always-bookable window.
func ValidateWindow(daysCSV, start, end string) error {
	if daysCSV == "" && start == "" && end == "" {
		return nil
	}
	for _, token := range strings.Split(daysCSV, ",") {
		name := strings.TrimSpace(token)
		if name == "" {
			continue
		}
		if _, ok := weekdayNames[name]; !ok {
			return fmt.Errorf("unknown weekday %q", name)
		}
	}
	if !ValidTime(start) {
		return fmt.Errorf("start_time %q is not a valid HH:MM time", start)
	}
	if !ValidTime(end) {
		return fmt.Errorf("end_time %q is not a valid HH:MM time", end)
	}
	if MinutesOfDay(start) > MinutesOfDay(end) {
		return fmt.Errorf("window start %s is after end %s", start, end)
	}
	return nil
}

// FormatDays is the inverse of ParseDays.
func FormatDays(days []time.Weekday) string {
	names := make([]string, 0, len(days))
	for _, d := range days {
		names = append(names, d.String())
	}
	return strings.Join(names, ",")
}

func (s Schedule) onDay(d time.Weekday) bool {
	for _, day := range s.Days {
		if day == d {
			return true
		}
	}
	return false
}
