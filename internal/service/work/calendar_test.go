package work

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/worklogix/attendance-backend-go/internal/domain/work"
	"github.com/worklogix/attendance-backend-go/internal/fixtures"
)

func TestCalendarClassify(t *testing.T) {
	cal := NewCalendar(fixtures.NationalHolidays())

	tests := []struct {
		name string
		date time.Time
		want work.DayType
	}{
		{"regular monday", time.Date(2025, 2, 10, 0, 0, 0, 0, time.Local), work.DayTypeWorkday},
		{"saturday", time.Date(2025, 2, 8, 0, 0, 0, 0, time.Local), work.DayTypeSaturday},
		{"sunday", time.Date(2025, 2, 9, 0, 0, 0, 0, time.Local), work.DayTypeSunday},
		{"new year", time.Date(2025, 1, 1, 0, 0, 0, 0, time.Local), work.DayTypeNationalHoliday},
		{"labour day", time.Date(2025, 5, 1, 0, 0, 0, 0, time.Local), work.DayTypeNationalHoliday},
		{"holiday beats weekend", time.Date(2025, 7, 5, 0, 0, 0, 0, time.Local), work.DayTypeNationalHoliday},
		{"unknown year falls back to weekday rules", time.Date(2030, 1, 1, 0, 0, 0, 0, time.Local), work.DayTypeWorkday},
		{"timestamp mid-day still classifies", time.Date(2025, 12, 24, 15, 30, 0, 0, time.Local), work.DayTypeNationalHoliday},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cal.Classify(tt.date))
			// pure function: a second call agrees
			assert.Equal(t, tt.want, cal.Classify(tt.date))
		})
	}
}
