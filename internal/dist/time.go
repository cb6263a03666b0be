package dist

import (
	"math"
	"math/rand/v2"
	"time"
)

// Relative creation volume by weekday. Work items cluster early in the week
// and thin out over the weekend.
var weekdayWeights = map[time.Weekday]float64{
	time.Monday:    1.2,
	time.Tuesday:   1.2,
	time.Wednesday: 1.1,
	time.Thursday:  0.9,
	time.Friday:    0.8,
	time.Saturday:  0.5,
	time.Sunday:    0.3,
}

// Day truncates t to midnight UTC.
func Day(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// SkewedDate returns a date in [start, end] with the day offset drawn as
// span * u^exponent. Exponents below 1 skew late, above 1 skew early, and
// exactly 1 is uniform.
func SkewedDate(rng *rand.Rand, start, end time.Time, exponent float64) time.Time {
	startDay, endDay := Day(start), Day(end)
	span := int(endDay.Sub(startDay).Hours() / 24)
	if span <= 0 {
		return startDay
	}
	offset := int(math.Floor(float64(span+1) * math.Pow(rng.Float64(), exponent)))
	if offset > span {
		offset = span
	}
	return startDay.AddDate(0, 0, offset)
}

// UniformDate returns a date in [start, end] with each day equally likely.
func UniformDate(rng *rand.Rand, start, end time.Time) time.Time {
	return SkewedDate(rng, start, end, 1)
}

// AdjustWeekday nudges a date toward busier weekdays. The date is kept with
// probability weight/maxWeight, otherwise shifted one or two days in either
// direction and clamped to [start, end].
func AdjustWeekday(rng *rand.Rand, date, start, end time.Time) time.Time {
	if rng.Float64() <= weekdayWeights[date.Weekday()]/1.2 {
		return date
	}
	shift := Pick(rng, []int{1, -1, 2, -2})
	shifted := date.AddDate(0, 0, shift)
	startDay, endDay := Day(start), Day(end)
	if shifted.Before(startDay) {
		return startDay
	}
	if shifted.After(endDay) {
		return endDay
	}
	return shifted
}

// BusinessClock places a timestamp on the given date during working hours,
// 09:00 to 17:59 UTC.
func BusinessClock(rng *rand.Rand, date time.Time) time.Time {
	d := Day(date)
	return d.Add(time.Duration(UniformInt(rng, 9, 17))*time.Hour +
		time.Duration(rng.IntN(60))*time.Minute +
		time.Duration(rng.IntN(60))*time.Second)
}

// BusinessTimestamp composes the three steps used for every creation
// timestamp: a skewed date draw, a weekday adjustment, and a business-hour
// clock.
func BusinessTimestamp(rng *rand.Rand, start, end time.Time, exponent float64) time.Time {
	date := SkewedDate(rng, start, end, exponent)
	date = AdjustWeekday(rng, date, start, end)
	return BusinessClock(rng, date)
}

// AvoidWeekend rolls dates landing on a weekend forward to the next Monday.
func AvoidWeekend(date time.Time) time.Time {
	for date.Weekday() == time.Saturday || date.Weekday() == time.Sunday {
		date = date.AddDate(0, 0, 1)
	}
	return date
}

// SnapToFriday moves a date forward to the next Friday, or a full week when
// it already is one. Sprint work clusters on sprint boundaries.
func SnapToFriday(date time.Time) time.Time {
	days := (int(time.Friday) - int(date.Weekday()) + 7) % 7
	if days == 0 {
		days = 7
	}
	return date.AddDate(0, 0, days)
}
