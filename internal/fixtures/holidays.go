// Package fixtures holds static seed data shipped with the service.
package fixtures

import "time"

// NationalHolidays is the shipped holiday calendar keyed by year. Holidays
// shift yearly (Easter) and are maintained per jurisdiction, so they are
// listed explicitly instead of computed. New years are appended here or
// injected through configuration.
func NationalHolidays() map[int][]time.Time {
	return map[int][]time.Time{
		2024: dates(2024,
			d(1, 1), d(3, 29), d(4, 1), d(5, 1), d(5, 8), d(7, 5), d(7, 6),
			d(9, 28), d(10, 28), d(11, 17), d(12, 24), d(12, 25), d(12, 26)),
		2025: dates(2025,
			d(1, 1), d(4, 18), d(4, 21), d(5, 1), d(5, 8), d(7, 5), d(7, 6),
			d(9, 28), d(10, 28), d(11, 17), d(12, 24), d(12, 25), d(12, 26)),
		2026: dates(2026,
			d(1, 1), d(4, 3), d(4, 6), d(5, 1), d(5, 8), d(7, 5), d(7, 6),
			d(9, 28), d(10, 28), d(11, 17), d(12, 24), d(12, 25), d(12, 26)),
	}
}

type monthDay struct {
	month time.Month
	day   int
}

func d(month time.Month, day int) monthDay {
	return monthDay{month: month, day: day}
}

func dates(year int, days ...monthDay) []time.Time {
	out := make([]time.Time, 0, len(days))
	for _, md := range days {
		out = append(out, time.Date(year, md.month, md.day, 0, 0, 0, 0, time.Local))
	}
	return out
}
