package work

import (
	"time"

	"github.com/worklogix/attendance-backend-go/internal/domain/work"
)

const (
	// fullShift is the synthesized shift length for a missing departure.
	fullShift = 8*time.Hour + 30*time.Minute

	// lunchMinimum is the shortest lunch break recognized; shorter windows
	// are widened to this length.
	lunchMinimum = 30 * time.Minute

	// lunchThreshold is the minimum shift span that implies a lunch break.
	lunchThreshold = 4*time.Hour + 30*time.Minute

	endOfBusinessHour = 17
	defaultLunchHour  = 11
	summerStartHour   = 6
	winterStartHour   = 6
	winterStartMinute = 30
)

// correctDay applies the normalization rules to a segmented day, in order,
// each at most once. Records marked reconciled come with authoritative
// totals and are passed through untouched. The pipeline is idempotent:
// feeding its output back through applies nothing.
func correctDay(rec *DayRecord) {
	if rec.reconciled {
		return
	}

	fixMissingDeparture(rec)
	clampLateDeparture(rec)
	fixMissingLunchEnd(rec)
	fixShortLunch(rec)
	synthesizeLunch(rec)
	clampEarlyArrival(rec)
}

// Rule 1: an arrival left open at end of day gets a departure one full
// shift after the work start.
func fixMissingDeparture(rec *DayRecord) {
	if rec.WorkStart == nil || rec.WorkEnd != nil || rec.openArrival == nil {
		return
	}

	end := rec.WorkStart.Time.Add(fullShift)
	rec.WorkEnd = &work.WorkHour{Time: end, Corrected: true}
	rec.WorkedMinutes += minutesBetween(*rec.openArrival, end)
	rec.openArrival = nil
}

// Rule 2: departures past end of business are clamped to it and the excess
// removed from worked time.
func clampLateDeparture(rec *DayRecord) {
	if rec.WorkEnd == nil {
		return
	}

	cutoff := atHour(rec.WorkEnd.Time, endOfBusinessHour, 0)
	if !rec.WorkEnd.Time.After(cutoff) {
		return
	}

	rec.WorkedMinutes -= minutesBetween(cutoff, rec.WorkEnd.Time)
	markCorrected(rec.WorkEnd, cutoff)
}

// Rule 3: a lunch badge with no return gets the minimum window.
func fixMissingLunchEnd(rec *DayRecord) {
	if rec.LunchStart == nil || rec.LunchEnd != nil {
		return
	}

	rec.LunchEnd = &work.WorkHour{Time: rec.LunchStart.Time.Add(lunchMinimum), Corrected: true}
	rec.WorkedMinutes -= int64(lunchMinimum / time.Minute)
}

// Rule 4: a lunch shorter than the minimum is widened to exactly the
// minimum, charging the difference against worked time.
func fixShortLunch(rec *DayRecord) {
	if rec.LunchStart == nil || rec.LunchEnd == nil {
		return
	}

	gap := rec.LunchEnd.Time.Sub(rec.LunchStart.Time)
	if gap >= lunchMinimum {
		return
	}

	rec.WorkedMinutes -= int64((lunchMinimum - gap) / time.Minute)
	markCorrected(rec.LunchEnd, rec.LunchStart.Time.Add(lunchMinimum))
}

// Rule 5: a shift long enough to imply a lunch break but with no lunch
// badges at all gets a synthesized window, preferably at the default lunch
// hour, otherwise two hours into the shift truncated to the hour.
func synthesizeLunch(rec *DayRecord) {
	if rec.LunchStart != nil || rec.LunchEnd != nil {
		return
	}
	if rec.WorkStart == nil || rec.WorkEnd == nil {
		return
	}
	if rec.WorkEnd.Time.Sub(rec.WorkStart.Time) < lunchThreshold {
		return
	}

	start := atHour(rec.WorkStart.Time, defaultLunchHour, 0)
	if start.Before(rec.WorkStart.Time) || !start.Add(lunchMinimum).Before(rec.WorkEnd.Time) {
		shifted := rec.WorkStart.Time.Add(2 * time.Hour)
		start = atHour(shifted, shifted.Hour(), 0)
	}

	rec.LunchStart = &work.WorkHour{Time: start, Corrected: true}
	rec.LunchEnd = &work.WorkHour{Time: start.Add(lunchMinimum), Corrected: true}
	rec.WorkedMinutes -= int64(lunchMinimum / time.Minute)
}

// Rule 6: arrivals before start of business are clamped to it. The summer
// months open half an hour earlier.
func clampEarlyArrival(rec *DayRecord) {
	if rec.WorkStart == nil {
		return
	}

	opening := businessOpening(rec.WorkStart.Time)
	if !rec.WorkStart.Time.Before(opening) {
		return
	}

	rec.WorkedMinutes -= minutesBetween(rec.WorkStart.Time, opening)
	markCorrected(rec.WorkStart, opening)
}

func businessOpening(day time.Time) time.Time {
	if day.Month() >= time.June && day.Month() <= time.August {
		return atHour(day, summerStartHour, 0)
	}
	return atHour(day, winterStartHour, winterStartMinute)
}

// markCorrected moves a landmark to a new time, preserving the original
// only if the landmark held a real punch rather than a synthesized value.
func markCorrected(h *work.WorkHour, to time.Time) {
	if !h.Corrected {
		original := h.Time
		h.OriginalTime = &original
	}
	h.Time = to
	h.Corrected = true
}

func atHour(day time.Time, hour, minute int) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, day.Location())
}
