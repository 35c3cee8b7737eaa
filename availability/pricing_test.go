package availability

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPriceVehicleOnlySingleDay(t *testing.T) {
	req := Request{
		FromDate: date(2026, 9, 7), ToDate: date(2026, 9, 7),
		FromTime: "10:00", ToTime: "14:00",
	}
	q := Price(req, 3000, nil)
	assert.Equal(t, 1, q.Days)
	assert.Equal(t, int64(3000), q.VehicleAmount)
	assert.Equal(t, int64(0), q.DriverAmount)
	assert.Equal(t, int64(3000), q.TotalAmount)
}

func TestPriceWithDriverSingleDay(t *testing.T) {
	req := Request{
		FromDate: date(2026, 9, 7), ToDate: date(2026, 9, 7),
		FromTime: "10:00", ToTime: "14:00",
	}
	q := Price(req, 3000, &DriverRates{Daily: 2000, Hourly: 150})
	assert.Equal(t, 1, q.Days)
	assert.Equal(t, 4, q.Hours)
	// Driver bills both components: 2000*1 + 150*4
	assert.Equal(t, int64(2600), q.DriverAmount)
	assert.Equal(t, int64(5600), q.TotalAmount)
}

func TestBookedDaysMinimumOne(t *testing.T) {
	req := Request{
		FromDate: date(2026, 9, 7), ToDate: date(2026, 9, 7),
		FromTime: "10:00", ToTime: "10:00",
	}
	assert.Equal(t, 1, BookedDays(req))
}

func TestBookedDaysMultiDay(t *testing.T) {
	req := Request{
		FromDate: date(2026, 9, 7), ToDate: date(2026, 9, 10),
		FromTime: "10:00", ToTime: "16:00",
	}
	assert.Equal(t, 3, BookedDays(req))
}

func TestBookedDaysReversedInterval(t *testing.T) {
	req := Request{
		FromDate: date(2026, 9, 10), ToDate: date(2026, 9, 7),
		FromTime: "10:00", ToTime: "16:00",
	}
	assert.Equal(t, 3, BookedDays(req))
}

func TestBookedHoursRoundsUp(t *testing.T) {
	req := Request{
		FromDate: date(2026, 9, 7), ToDate: date(2026, 9, 7),
		FromTime: "10:00", ToTime: "13:30",
	}
	assert.Equal(t, 4, BookedHours(req))
}

func TestBookedHoursZeroSpanStaysZero(t *testing.T) {
	req := Request{
		FromDate: date(2026, 9, 7), ToDate: date(2026, 9, 7),
		FromTime: "10:00", ToTime: "10:00",
	}
	assert.Equal(t, 0, BookedHours(req))

	// Zero hours still bills the one-day vehicle minimum.
	q := Price(req, 3000, &DriverRates{Daily: 1000, Hourly: 400})
	assert.Equal(t, int64(3000), q.VehicleAmount)
	assert.Equal(t, int64(1000), q.DriverAmount)
}

func TestBookedHoursMultiDaySpansInstants(t *testing.T) {
	// Sep 7 10:00 through Sep 9 11:30 is 49.5 hours, billed as 50.
	req := Request{
		FromDate: date(2026, 9, 7), ToDate: date(2026, 9, 9),
		FromTime: "10:00", ToTime: "11:30",
	}
	assert.Equal(t, 50, BookedHours(req))
}

func TestPriceMonotonicInSpan(t *testing.T) {
	short := Request{
		FromDate: date(2026, 9, 7), ToDate: date(2026, 9, 8),
		FromTime: "10:00", ToTime: "10:00",
	}
	long := Request{
		FromDate: date(2026, 9, 7), ToDate: date(2026, 9, 10),
		FromTime: "10:00", ToTime: "10:00",
	}
	rates := &DriverRates{Daily: 500, Hourly: 100}
	assert.LessOrEqual(t, Price(short, 3000, rates).TotalAmount, Price(long, 3000, rates).TotalAmount)
}

func TestQuoteFieldsConsistent(t *testing.T) {
	req := Request{
		FromDate: date(2026, 9, 7), ToDate: date(2026, 9, 9),
		FromTime: "09:00", ToTime: "17:00",
	}
	q := Price(req, 2500, &DriverRates{Daily: 800, Hourly: 150})
	assert.Equal(t, q.VehicleAmount+q.DriverAmount, q.TotalAmount)
	assert.Equal(t, int64(q.Days)*2500, q.VehicleAmount)
}
