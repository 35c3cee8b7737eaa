package availability

// DriverRates carries a driver's charge rates in whole currency units.
// A driver booking is billed both per day and per hour; the two components
// are summed, matching the marketplace's pricing policy.
type DriverRates struct {
	Daily  int64 `json:"daily"`
	Hourly int64 `json:"hourly"`
}

// Quote is a deterministic cost breakdown for an admissible request.
// Amounts are whole currency units; partial days and hours are billed as
// whole units.
type Quote struct {
	Days          int   `json:"days"`
	Hours         int   `json:"hours"`
	VehicleAmount int64 `json:"vehicle_amount"`
	DriverAmount  int64 `json:"driver_amount"`
	TotalAmount   int64 `json:"total_amount"`
}

// Price computes the cost of the requested interval: the vehicle is billed
// per calendar day (minimum one day), and the optional driver per day plus
// per hour. Hours on a single-day booking come from the time-of-day span;
// on a multi-day booking they cover the entire instant span. A zero-length
// same-day span is zero hours, not clamped to one.
func Price(req Request, vehicleDailyRent int64, driver *DriverRates) Quote {
	days := BookedDays(req)
	hours := BookedHours(req)

	q := Quote{
		Days:          days,
		Hours:         hours,
		VehicleAmount: int64(days) * vehicleDailyRent,
	}
	if driver != nil {
		q.DriverAmount = driver.Daily*int64(days) + driver.Hourly*int64(hours)
	}
	q.TotalAmount = q.VehicleAmount + q.DriverAmount
	return q
}

// BookedDays is the calendar-day span of the request rounded up, with a
// floor of one: a zero or sub-day span still costs a full day.
func BookedDays(req Request) int {
	from, to := DateOnly(req.FromDate), DateOnly(req.ToDate)
	span := to.Sub(from)
	if span < 0 {
		span = -span
	}
	days := int(span.Hours() / 24)
	if span.Hours() > float64(days*24) {
		days++
	}
	if days < 1 {
		days = 1
	}
	return days
}

// BookedHours is the request's span in whole hours, rounded up.
func BookedHours(req Request) int {
	var minutes int
	if SameDate(req.FromDate, req.ToDate) {
		minutes = MinutesOfDay(req.ToTime) - MinutesOfDay(req.FromTime)
	} else {
		minutes = int(req.EndInstant().Sub(req.StartInstant()).Minutes())
	}
	if minutes < 0 {
		minutes = -minutes
	}
	hours := minutes / 60
	if minutes%60 != 0 {
		hours++
	}
	return hours
}
