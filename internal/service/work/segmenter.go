package work

import (
	"time"

	"github.com/worklogix/attendance-backend-go/internal/domain/pass"
	"github.com/worklogix/attendance-backend-go/internal/domain/work"
)

// DayRecord is the raw material of one day's computation: the four
// landmarks, the accumulated minutes, and the open-arrival state left over
// by the scan. The correction pipeline mutates it in place.
type DayRecord struct {
	WorkStart  *work.WorkHour
	LunchStart *work.WorkHour
	LunchEnd   *work.WorkHour
	WorkEnd    *work.WorkHour

	WorkedMinutes int64
	TripMinutes   int64
	SickMinutes   int64

	// openArrival is the unclosed arrival event at the end of the scan,
	// used by the missing-departure correction.
	openArrival *time.Time

	// reconciled marks records whose minute totals came from the external
	// feed; the correction pipeline leaves those alone.
	reconciled bool
}

// segmentDay runs a single left-to-right scan over one day's events,
// sorted by time ascending. Precedence rules: first arrival wins the work
// start, last departure after an arrival wins the work end, the first
// lunch badge opens the lunch window and the next arrival closes it.
func segmentDay(events []pass.Pass) DayRecord {
	var rec DayRecord
	var lastIn *pass.Pass

	for i := range events {
		ev := &events[i]

		if ev.Category.IsArrival() && lastIn == nil {
			lastIn = ev
		} else if lastIn != nil && !ev.Category.IsArrival() {
			minutes := minutesBetween(lastIn.Time, ev.Time)
			rec.WorkedMinutes += minutes
			if lastIn.Category == pass.CategoryTripIn {
				rec.TripMinutes += minutes
			}
			lastIn = nil
		}

		if ev.Category.IsArrival() && rec.LunchStart != nil && rec.LunchEnd == nil {
			rec.LunchEnd = &work.WorkHour{Time: ev.Time}
		}

		if ev.Category.IsArrival() && rec.WorkStart == nil {
			rec.WorkStart = &work.WorkHour{Time: ev.Time}
		}

		if ev.Category == pass.CategoryLunch && rec.LunchStart == nil {
			rec.LunchStart = &work.WorkHour{Time: ev.Time}
		}

		if ev.Category == pass.CategoryOut && rec.WorkStart != nil {
			rec.WorkEnd = &work.WorkHour{Time: ev.Time}
		}
	}

	if lastIn != nil {
		t := lastIn.Time
		rec.openArrival = &t
	}

	return rec
}

func minutesBetween(from, to time.Time) int64 {
	return int64(to.Sub(from) / time.Minute)
}
