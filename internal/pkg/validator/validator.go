package validator

import (
	"strconv"
	"strings"
	"time"
)

type ValidationError struct {
	Field   string
	Message string
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var msgs []string
	for _, err := range v {
		msgs = append(msgs, err.Field+": "+err.Message)
	}
	return strings.Join(msgs, "; ")
}

func (v ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string)
	for _, err := range v {
		result[err.Field] = err.Message
	}
	return result
}

// IsEmpty checks if a string is empty after trimming whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

// IsValidDate checks if a string is a date in "YYYY-MM-DD" format.
func IsValidDate(dateStr string) (time.Time, bool) {
	date, err := time.Parse("2006-01-02", dateStr)
	return date, err == nil
}

// IsValidMonth checks year/month bounds for a month request.
func IsValidMonth(year, month int) bool {
	return year >= 2000 && year <= 2100 && month >= 1 && month <= 12
}

// ParseHours parses hour text from a manual entry edit. Accepts a decimal
// number ("7.5", "7,5") or a clock value ("7:30"). Malformed input returns
// nil instead of an error so a bad edit never loses the rest of the day.
func ParseHours(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}

	if h, m, ok := strings.Cut(s, ":"); ok {
		hours, err := strconv.Atoi(h)
		if err != nil {
			return nil
		}
		minutes, err := strconv.Atoi(m)
		if err != nil || minutes < 0 || minutes > 59 {
			return nil
		}
		v := float64(hours) + float64(minutes)/60
		if hours < 0 {
			v = float64(hours) - float64(minutes)/60
		}
		return &v
	}

	v, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64)
	if err != nil {
		return nil
	}
	return &v
}
