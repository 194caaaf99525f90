package work

import (
	"context"
	"fmt"
	"time"

	"github.com/worklogix/attendance-backend-go/internal/domain/feed"
	"github.com/worklogix/attendance-backend-go/internal/domain/pass"
	"github.com/worklogix/attendance-backend-go/internal/domain/work"
)

// DaySource produces one DayRecord per calendar day of a month, keyed by
// midnight. Days without any attendance data are absent from the map.
type DaySource interface {
	MonthRecords(ctx context.Context, username string, year, month int) (map[time.Time]DayRecord, error)
}

// PassSource builds day records by segmenting raw badge events from the
// local access log.
type PassSource struct {
	passes pass.PassRepository
}

func NewPassSource(passes pass.PassRepository) *PassSource {
	return &PassSource{passes: passes}
}

func (s *PassSource) MonthRecords(ctx context.Context, username string, year, month int) (map[time.Time]DayRecord, error) {
	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.Local)
	to := from.AddDate(0, 1, 0)

	events, err := s.passes.FindByUsernameAndRange(ctx, username, from, to)
	if err != nil {
		return nil, fmt.Errorf("load badge events: %w", err)
	}

	byDay := make(map[time.Time][]pass.Pass)
	for _, ev := range events {
		day := midnight(ev.Time)
		byDay[day] = append(byDay[day], ev)
	}

	records := make(map[time.Time]DayRecord, len(byDay))
	for day, dayEvents := range byDay {
		records[day] = segmentDay(dayEvents)
	}
	return records, nil
}

// FeedSource builds day records from the external attendance system's
// day-level aggregates. The feed already reconciles its totals, so the
// records bypass the correction pipeline.
type FeedSource struct {
	client feed.Client
}

func NewFeedSource(client feed.Client) *FeedSource {
	return &FeedSource{client: client}
}

func (s *FeedSource) MonthRecords(ctx context.Context, username string, year, month int) (map[time.Time]DayRecord, error) {
	days, err := s.client.FetchMonth(ctx, username, year, month)
	if err != nil {
		return nil, fmt.Errorf("fetch attendance feed: %w", err)
	}

	records := make(map[time.Time]DayRecord, len(days))
	for _, day := range days {
		records[midnight(day.Date)] = DayRecord{
			WorkStart:     hourFrom(day.WorkStart),
			LunchStart:    hourFrom(day.LunchStart),
			LunchEnd:      hourFrom(day.LunchEnd),
			WorkEnd:       hourFrom(day.WorkEnd),
			WorkedMinutes: day.OnsiteMinutes,
			TripMinutes:   day.TripMinutes,
			SickMinutes:   day.SickMinutes,
			reconciled:    true,
		}
	}
	return records, nil
}

func hourFrom(t *time.Time) *work.WorkHour {
	if t == nil {
		return nil
	}
	return &work.WorkHour{Time: *t}
}
