package work

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/worklogix/attendance-backend-go/internal/domain/pass"
)

func punch(t *testing.T, category pass.Category, clock string) pass.Pass {
	t.Helper()
	ts, err := time.ParseInLocation("2006-01-02 15:04", "2025-02-10 "+clock, time.Local)
	require.NoError(t, err)
	return pass.Pass{Category: category, Time: ts}
}

func summerPunch(t *testing.T, category pass.Category, clock string) pass.Pass {
	t.Helper()
	ts, err := time.ParseInLocation("2006-01-02 15:04", "2025-07-14 "+clock, time.Local)
	require.NoError(t, err)
	return pass.Pass{Category: category, Time: ts}
}

func TestSegmentDayRegularShift(t *testing.T) {
	rec := segmentDay([]pass.Pass{
		punch(t, pass.CategoryIn, "08:00"),
		punch(t, pass.CategoryLunch, "12:00"),
		punch(t, pass.CategoryIn, "12:45"),
		punch(t, pass.CategoryOut, "16:30"),
	})

	require.NotNil(t, rec.WorkStart)
	require.NotNil(t, rec.WorkEnd)
	require.NotNil(t, rec.LunchStart)
	require.NotNil(t, rec.LunchEnd)
	assert.Equal(t, "08:00", rec.WorkStart.Time.Format("15:04"))
	assert.Equal(t, "16:30", rec.WorkEnd.Time.Format("15:04"))
	assert.Equal(t, "12:00", rec.LunchStart.Time.Format("15:04"))
	assert.Equal(t, "12:45", rec.LunchEnd.Time.Format("15:04"))

	// 4h morning + 3h45 afternoon
	assert.Equal(t, int64(465), rec.WorkedMinutes)
	assert.Nil(t, rec.openArrival)
}

func TestSegmentDayFirstArrivalWins(t *testing.T) {
	rec := segmentDay([]pass.Pass{
		punch(t, pass.CategoryIn, "07:30"),
		punch(t, pass.CategoryOut, "09:00"),
		punch(t, pass.CategoryIn, "09:15"),
		punch(t, pass.CategoryOut, "16:00"),
	})

	assert.Equal(t, "07:30", rec.WorkStart.Time.Format("15:04"))
	assert.Equal(t, "16:00", rec.WorkEnd.Time.Format("15:04"))
	assert.Equal(t, int64(90+405), rec.WorkedMinutes)
}

func TestSegmentDayTripArrivalAccruesTripMinutes(t *testing.T) {
	rec := segmentDay([]pass.Pass{
		punch(t, pass.CategoryTripIn, "08:00"),
		punch(t, pass.CategoryOut, "10:00"),
		punch(t, pass.CategoryIn, "10:30"),
		punch(t, pass.CategoryOut, "16:00"),
	})

	assert.Equal(t, int64(120), rec.TripMinutes)
	assert.Equal(t, int64(120+330), rec.WorkedMinutes)
}

func TestSegmentDayOpenArrival(t *testing.T) {
	rec := segmentDay([]pass.Pass{
		punch(t, pass.CategoryIn, "08:00"),
	})

	require.NotNil(t, rec.openArrival)
	assert.Equal(t, "08:00", rec.openArrival.Format("15:04"))
	assert.Zero(t, rec.WorkedMinutes)
}

func TestCorrectDayNoRulesApply(t *testing.T) {
	rec := segmentDay([]pass.Pass{
		punch(t, pass.CategoryIn, "08:00"),
		punch(t, pass.CategoryLunch, "12:00"),
		punch(t, pass.CategoryIn, "12:45"),
		punch(t, pass.CategoryOut, "16:30"),
	})
	correctDay(&rec)

	assert.Equal(t, int64(465), rec.WorkedMinutes)
	assert.InDelta(t, 7.75, floorHours(rec.WorkedMinutes), 1e-9)
	assert.False(t, rec.WorkStart.Corrected)
	assert.False(t, rec.WorkEnd.Corrected)
}

func TestCorrectDayMissingDeparture(t *testing.T) {
	rec := segmentDay([]pass.Pass{
		punch(t, pass.CategoryIn, "08:00"),
	})
	correctDay(&rec)

	require.NotNil(t, rec.WorkEnd)
	assert.Equal(t, "16:30", rec.WorkEnd.Time.Format("15:04"))
	assert.True(t, rec.WorkEnd.Corrected)
	assert.Nil(t, rec.WorkEnd.OriginalTime, "synthesized landmark has no original")
	assert.Nil(t, rec.openArrival)
}

func TestCorrectDayLateDepartureClamp(t *testing.T) {
	rec := segmentDay([]pass.Pass{
		punch(t, pass.CategoryIn, "08:00"),
		punch(t, pass.CategoryLunch, "12:00"),
		punch(t, pass.CategoryIn, "12:30"),
		punch(t, pass.CategoryOut, "18:00"),
	})
	before := rec.WorkedMinutes
	correctDay(&rec)

	assert.Equal(t, "17:00", rec.WorkEnd.Time.Format("15:04"))
	assert.True(t, rec.WorkEnd.Corrected)
	require.NotNil(t, rec.WorkEnd.OriginalTime)
	assert.Equal(t, "18:00", rec.WorkEnd.OriginalTime.Format("15:04"))
	assert.Equal(t, before-60, rec.WorkedMinutes)
}

func TestCorrectDayMissingLunchEnd(t *testing.T) {
	rec := segmentDay([]pass.Pass{
		punch(t, pass.CategoryIn, "08:00"),
		punch(t, pass.CategoryLunch, "12:00"),
		punch(t, pass.CategoryOut, "16:00"),
	})
	correctDay(&rec)

	require.NotNil(t, rec.LunchEnd)
	assert.Equal(t, "12:30", rec.LunchEnd.Time.Format("15:04"))
	assert.True(t, rec.LunchEnd.Corrected)
	// the morning segment closed at the lunch badge; the synthesized lunch
	// end still charges the minimum window
	assert.Equal(t, int64(210), rec.WorkedMinutes)
}

func TestCorrectDayShortLunchWidened(t *testing.T) {
	rec := segmentDay([]pass.Pass{
		punch(t, pass.CategoryIn, "08:00"),
		punch(t, pass.CategoryLunch, "12:00"),
		punch(t, pass.CategoryIn, "12:10"),
		punch(t, pass.CategoryOut, "16:00"),
	})
	correctDay(&rec)

	assert.Equal(t, "12:30", rec.LunchEnd.Time.Format("15:04"))
	require.NotNil(t, rec.LunchEnd.OriginalTime)
	assert.Equal(t, "12:10", rec.LunchEnd.OriginalTime.Format("15:04"))
	// 4h + 3h50 minus the 20 minutes the lunch was widened by
	assert.Equal(t, int64(450), rec.WorkedMinutes)
}

func TestCorrectDayMissingLunchSynthesized(t *testing.T) {
	rec := segmentDay([]pass.Pass{
		punch(t, pass.CategoryIn, "08:00"),
		punch(t, pass.CategoryOut, "16:00"),
	})
	correctDay(&rec)

	require.NotNil(t, rec.LunchStart)
	require.NotNil(t, rec.LunchEnd)
	assert.Equal(t, "11:00", rec.LunchStart.Time.Format("15:04"))
	assert.Equal(t, "11:30", rec.LunchEnd.Time.Format("15:04"))
	assert.True(t, rec.LunchStart.Corrected)
	assert.Nil(t, rec.LunchStart.OriginalTime)
	assert.InDelta(t, 7.5, floorHours(rec.WorkedMinutes), 1e-9)
}

func TestCorrectDayLunchShiftedIntoLateShift(t *testing.T) {
	rec := segmentDay([]pass.Pass{
		punch(t, pass.CategoryIn, "11:30"),
		punch(t, pass.CategoryOut, "17:00"),
	})
	correctDay(&rec)

	require.NotNil(t, rec.LunchStart)
	assert.Equal(t, "13:00", rec.LunchStart.Time.Format("15:04"))
}

func TestCorrectDayShortShiftGetsNoLunch(t *testing.T) {
	rec := segmentDay([]pass.Pass{
		punch(t, pass.CategoryIn, "08:00"),
		punch(t, pass.CategoryOut, "12:00"),
	})
	correctDay(&rec)

	assert.Nil(t, rec.LunchStart)
	assert.Nil(t, rec.LunchEnd)
}

func TestCorrectDayEarlyArrivalClampWinter(t *testing.T) {
	rec := segmentDay([]pass.Pass{
		punch(t, pass.CategoryIn, "05:30"),
		punch(t, pass.CategoryLunch, "11:00"),
		punch(t, pass.CategoryIn, "11:30"),
		punch(t, pass.CategoryOut, "14:00"),
	})
	before := rec.WorkedMinutes
	correctDay(&rec)

	assert.Equal(t, "06:30", rec.WorkStart.Time.Format("15:04"))
	require.NotNil(t, rec.WorkStart.OriginalTime)
	assert.Equal(t, "05:30", rec.WorkStart.OriginalTime.Format("15:04"))
	assert.Equal(t, before-60, rec.WorkedMinutes)
}

func TestCorrectDayEarlyArrivalClampSummer(t *testing.T) {
	rec := segmentDay([]pass.Pass{
		summerPunch(t, pass.CategoryIn, "05:30"),
		summerPunch(t, pass.CategoryLunch, "11:00"),
		summerPunch(t, pass.CategoryIn, "11:30"),
		summerPunch(t, pass.CategoryOut, "14:00"),
	})
	before := rec.WorkedMinutes
	correctDay(&rec)

	assert.Equal(t, "06:00", rec.WorkStart.Time.Format("15:04"))
	assert.Equal(t, before-30, rec.WorkedMinutes)
}

func TestCorrectDayIdempotent(t *testing.T) {
	cases := map[string][]pass.Pass{
		"missing departure": {
			punch(t, pass.CategoryIn, "05:30"),
		},
		"late departure and short lunch": {
			punch(t, pass.CategoryIn, "08:00"),
			punch(t, pass.CategoryLunch, "12:00"),
			punch(t, pass.CategoryIn, "12:10"),
			punch(t, pass.CategoryOut, "18:30"),
		},
		"missing lunch": {
			punch(t, pass.CategoryIn, "07:00"),
			punch(t, pass.CategoryOut, "16:00"),
		},
	}

	for name, events := range cases {
		t.Run(name, func(t *testing.T) {
			rec := segmentDay(events)
			correctDay(&rec)
			once := rec

			correctDay(&rec)
			assert.Equal(t, once, rec)
		})
	}
}

func TestCorrectDaySkipsReconciledRecords(t *testing.T) {
	start := punch(t, pass.CategoryIn, "18:00").Time
	rec := DayRecord{
		WorkStart:     hourFrom(&start),
		WorkedMinutes: 600,
		reconciled:    true,
	}
	correctDay(&rec)

	assert.Equal(t, int64(600), rec.WorkedMinutes)
	assert.Equal(t, "18:00", rec.WorkStart.Time.Format("15:04"))
	assert.False(t, rec.WorkStart.Corrected)
}
