package availability

import "fmt"

// Reason identifies which admissibility rule rejected a request.
type Reason string

const (
	ReasonBlackout Reason = "blackout conflict"
	ReasonDay      Reason = "day unavailable"
	ReasonTime     Reason = "time out of range"
)

// Decision is the outcome of checking one resource against one requested
// interval. An inadmissible decision always carries the reason and a
// message the caller can show as-is.
type Decision struct {
	Admissible bool      `json:"admissible"`
	Reason     Reason    `json:"reason,omitempty"`
	Detail     string    `json:"detail,omitempty"`
	Conflict   *Blackout `json:"conflict,omitempty"`
}

func admissible() Decision { return Decision{Admissible: true} }

func rejected(reason Reason, detail string) Decision {
	return Decision{Reason: reason, Detail: detail}
}

// Evaluate decides whether a resource may be booked for the requested
// interval. Blackout periods are checked first against the full
// [start, end] instant span, short-circuiting on the first conflict. If
// none conflict, every calendar day in [FromDate, ToDate] must be one of
// the schedule's weekdays, and the time-of-day at each boundary must fall
// inside the daily window. A resource with no schedule configured is
// always admissible; absence of a schedule never rejects a booking.
func Evaluate(res Bookable, req Request) Decision {
	start, end := req.StartInstant(), req.EndInstant()

	for _, b := range res.Blackouts() {
		if Overlaps(start, end, b.From, b.To) {
			conflict := b
			return Decision{
				Reason: ReasonBlackout,
				Detail: fmt.Sprintf("unavailable from %s to %s", FormatDate(b.From), FormatDate(b.To)),
				Conflict: &conflict,
			}
		}
	}

	sched := res.Schedule()
	if len(sched.Days) == 0 {
		return admissible()
	}

	// Walk day by day at midnight so multi-day ranges iterate correctly
	// regardless of the boundary time components.
	last := DateOnly(req.ToDate)
	for day := DateOnly(req.FromDate); !day.After(last); day = day.AddDate(0, 0, 1) {
		if !sched.onDay(day.Weekday()) {
			return rejected(ReasonDay, fmt.Sprintf("not available on %s", day.Weekday()))
		}
		// A single-day booking hits both boundary checks on the same day.
		if SameDate(day, req.FromDate) && !TimeInRange(req.FromTime, sched.StartTime, sched.EndTime) {
			return rejected(ReasonTime, fmt.Sprintf("pick-up time %s is outside %s-%s", req.FromTime, sched.StartTime, sched.EndTime))
		}
		if SameDate(day, req.ToDate) && !TimeInRange(req.ToTime, sched.StartTime, sched.EndTime) {
			return rejected(ReasonTime, fmt.Sprintf("drop-off time %s is outside %s-%s", req.ToTime, sched.StartTime, sched.EndTime))
		}
	}

	return admissible()
}

// FilterAvailable returns the candidates admissible for the requested
// interval, preserving input order. It is a pure derived view: callers
// recompute it whenever the interval or the pool changes.
func FilterAvailable[T Bookable](pool []T, req Request) []T {
	var out []T
	for _, candidate := range pool {
		if Evaluate(candidate, req).Admissible {
			out = append(out, candidate)
		}
	}
	return out
}
