package work

import (
	"time"

	"github.com/worklogix/attendance-backend-go/internal/domain/work"
)

// Calendar classifies dates against an injected holiday table. Holiday
// lists are configuration data maintained per year; the classifier never
// computes them.
type Calendar struct {
	holidays map[int]map[time.Time]struct{}
}

func NewCalendar(holidaysByYear map[int][]time.Time) *Calendar {
	holidays := make(map[int]map[time.Time]struct{}, len(holidaysByYear))
	for year, days := range holidaysByYear {
		set := make(map[time.Time]struct{}, len(days))
		for _, day := range days {
			set[midnight(day)] = struct{}{}
		}
		holidays[year] = set
	}
	return &Calendar{holidays: holidays}
}

// Classify maps a date to its day type. Pure function of the date and the
// holiday table.
func (c *Calendar) Classify(date time.Time) work.DayType {
	if set, ok := c.holidays[date.Year()]; ok {
		if _, holiday := set[midnight(date)]; holiday {
			return work.DayTypeNationalHoliday
		}
	}

	switch date.Weekday() {
	case time.Saturday:
		return work.DayTypeSaturday
	case time.Sunday:
		return work.DayTypeSunday
	}

	return work.DayTypeWorkday
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local)
}
