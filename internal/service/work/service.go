package work

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/worklogix/attendance-backend-go/internal/domain/user"
	"github.com/worklogix/attendance-backend-go/internal/domain/work"
	"github.com/worklogix/attendance-backend-go/internal/pkg/validator"
)

// hoursInDay is the organization's standard daily hours at full fond.
const hoursInDay = 8

type WorkServiceImpl struct {
	work.WorkRepository
	user.UserRepository
	source   DaySource
	calendar *Calendar

	// now is injectable so the today/past boundary is testable.
	now func() time.Time
}

func NewWorkService(
	works work.WorkRepository,
	users user.UserRepository,
	source DaySource,
	calendar *Calendar,
) *WorkServiceImpl {
	return &WorkServiceImpl{
		WorkRepository: works,
		UserRepository: users,
		source:         source,
		calendar:       calendar,
		now:            time.Now,
	}
}

// GetWorkMonth implements work.WorkService. It computes the full month for
// one user: classify each date, segment and correct the day's attendance,
// reconcile the manual entry, and fold everything into monthly totals.
// Either the whole month computes or the request fails; there is no
// partial result.
func (s *WorkServiceImpl) GetWorkMonth(ctx context.Context, username string, year, month int) (work.WorkMonthResponse, error) {
	info, err := s.UserRepository.FindByUsername(ctx, username)
	if err != nil {
		return work.WorkMonthResponse{}, err
	}
	expected := expectedDailyHours(info.Fond())

	records, err := s.source.MonthRecords(ctx, username, year, month)
	if err != nil {
		return work.WorkMonthResponse{}, err
	}

	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.Local)
	last := first.AddDate(0, 1, -1)

	entries, err := s.WorkRepository.FindByUsernameAndDateRange(ctx, username, first, last)
	if err != nil {
		return work.WorkMonthResponse{}, fmt.Errorf("load work entries: %w", err)
	}
	entryByDay := make(map[time.Time]work.WorkEntry, len(entries))
	for _, entry := range entries {
		entryByDay[midnight(entry.Date)] = entry
	}

	today := midnight(s.now())
	resp := work.WorkMonthResponse{
		Username: username,
		Year:     year,
		Month:    month,
	}
	sums := make(map[work.WorkType]float64)
	balance := decimal.Zero
	onsite := decimal.Zero

	for day := first; !day.After(last); day = day.AddDate(0, 0, 1) {
		dayType := s.calendar.Classify(day)
		rec, hasRec := records[day]
		if hasRec {
			correctDay(&rec)
		}

		dayResp := work.WorkDayResponse{
			Date:    day.Format("2006-01-02"),
			DayType: dayType,
		}

		var worked float64
		if hasRec {
			dayResp.WorkStart = rec.WorkStart
			dayResp.LunchStart = rec.LunchStart
			dayResp.LunchEnd = rec.LunchEnd
			dayResp.WorkEnd = rec.WorkEnd
			worked = floorHours(rec.WorkedMinutes)
			dayResp.WorkedHours = &worked
		}

		entry, hasEntry, err := s.reconcileEntry(ctx, username, day, today, dayType, rec, hasRec, expected, entryByDay)
		if err != nil {
			return work.WorkMonthResponse{}, err
		}
		if hasEntry {
			dayResp.Work = entryResponse(entry)
		}

		if !day.After(today) {
			if day.Equal(today) {
				zero := 0.0
				dayResp.Saldo = &zero
			} else if dayType == work.DayTypeWorkday || hasRec {
				saldo := daySaldo(worked, entry, hasEntry, dayType, expected)
				dayResp.Saldo = &saldo
				balance = balance.Add(decimal.NewFromFloat(saldo))
			}
		}

		switch dayType {
		case work.DayTypeWorkday:
			resp.SumWorkDays++
		case work.DayTypeNationalHoliday:
			resp.SumHolidays++
		}
		onsite = onsite.Add(decimal.NewFromFloat(worked))
		if hasEntry {
			accumulate(sums, entry.WorkType, entry.Hours)
			accumulate(sums, entry.WorkType2, entry.Hours2)
		}

		resp.WorkDays = append(resp.WorkDays, dayResp)
	}

	resp.SumOnSiteHours = onsite.InexactFloat64()
	resp.SumBalance = balance.Round(2).InexactFloat64()
	for _, workType := range work.WorkTypes {
		if total, ok := sums[workType]; ok && total > 0 {
			resp.Sums = append(resp.Sums, work.WorkTypeSum{WorkType: workType, Hours: total})
		}
	}

	return resp, nil
}

// reconcileEntry runs the per-day entry state machine: lazy default on
// workdays, then the one-shot auto-classification of past days whose entry
// still carries no real value.
func (s *WorkServiceImpl) reconcileEntry(
	ctx context.Context,
	username string,
	day, today time.Time,
	dayType work.DayType,
	rec DayRecord,
	hasRec bool,
	expected float64,
	entryByDay map[time.Time]work.WorkEntry,
) (work.WorkEntry, bool, error) {
	entry, hasEntry := entryByDay[day]

	if !hasEntry {
		if dayType != work.DayTypeWorkday {
			return work.WorkEntry{}, false, nil
		}
		hours := expected
		stored, err := s.WorkRepository.CreateIfAbsent(ctx, work.WorkEntry{
			Date:     day,
			Username: username,
			Hours:    &hours,
			WorkType: work.WorkTypeWork,
			DayType:  dayType,
		})
		if err != nil {
			return work.WorkEntry{}, false, fmt.Errorf("create default work entry: %w", err)
		}
		entry = stored
	}

	if day.Before(today) && entry.Unclassified() {
		backfilled := classifyPastDay(entry, rec, hasRec, expected)
		stored, err := s.WorkRepository.Save(ctx, backfilled)
		if err != nil {
			return work.WorkEntry{}, false, fmt.Errorf("backfill work entry: %w", err)
		}
		entry = stored
	}

	return entry, true, nil
}

// SetWork implements work.WorkService. Edits are allowed only by the
// owning user; an edit that clears every field deletes the row.
func (s *WorkServiceImpl) SetWork(ctx context.Context, req work.SetWorkRequest, editor string) (int64, error) {
	if err := req.Validate(); err != nil {
		return 0, err
	}

	var entry work.WorkEntry
	if req.ID != 0 {
		existing, err := s.WorkRepository.FindByID(ctx, req.ID)
		if err != nil {
			return 0, err
		}
		if existing.Username != editor {
			return 0, work.ErrNotEntryOwner
		}
		entry = existing
	} else {
		date, _ := validator.IsValidDate(req.Date)
		entry = work.WorkEntry{
			Date:     date,
			Username: editor,
			DayType:  s.calendar.Classify(date),
		}
	}

	entry.Hours = validator.ParseHours(req.Hours)
	entry.WorkType = normalizeWorkType(req.WorkType)
	entry.Hours2 = validator.ParseHours(req.Hours2)
	entry.WorkType2 = normalizeWorkType(req.WorkType2)
	entry.Description = strings.TrimSpace(req.Description)

	if entry.Empty() {
		if entry.ID != 0 {
			if err := s.WorkRepository.DeleteByID(ctx, entry.ID); err != nil {
				return 0, fmt.Errorf("delete cleared work entry: %w", err)
			}
		}
		return 0, nil
	}

	if entry.ID == 0 {
		stored, err := s.WorkRepository.CreateIfAbsent(ctx, entry)
		if err != nil {
			return 0, fmt.Errorf("create work entry: %w", err)
		}
		entry.ID = stored.ID
	}

	stored, err := s.WorkRepository.Save(ctx, entry)
	if err != nil {
		return 0, fmt.Errorf("save work entry: %w", err)
	}
	return stored.ID, nil
}

// classifyPastDay infers a classification for a past day that was never
// filled in: sick minutes outrank trip minutes for the secondary block,
// and the primary block becomes either worked time or a full holiday.
func classifyPastDay(entry work.WorkEntry, rec DayRecord, hasRec bool, expected float64) work.WorkEntry {
	var inferred float64
	if hasRec && rec.SickMinutes > 0 {
		inferred = roundToHalf(rec.SickMinutes)
		entry.Hours2 = &inferred
		entry.WorkType2 = work.WorkTypeSickness
	} else if hasRec && rec.TripMinutes > 0 {
		inferred = roundToHalf(rec.TripMinutes)
		entry.Hours2 = &inferred
		entry.WorkType2 = work.WorkTypeTrip
	}

	if (!hasRec || rec.WorkedMinutes <= 0) && inferred == 0 {
		hours := expected
		entry.Hours = &hours
		entry.WorkType = work.WorkTypeHoliday
		return entry
	}

	hours := decimal.NewFromFloat(expected).Sub(decimal.NewFromFloat(inferred)).InexactFloat64()
	entry.Hours = &hours
	entry.WorkType = work.WorkTypeWork
	return entry
}

// daySaldo is the signed balance of one closed day. Holiday and paid-leave
// entry hours count as worked-equivalent.
func daySaldo(worked float64, entry work.WorkEntry, hasEntry bool, dayType work.DayType, expected float64) float64 {
	total := decimal.NewFromFloat(worked)
	if hasEntry {
		if entry.Hours != nil && entry.WorkType.CountsTowardBalance() {
			total = total.Add(decimal.NewFromFloat(*entry.Hours))
		}
		if entry.Hours2 != nil && entry.WorkType2.CountsTowardBalance() {
			total = total.Add(decimal.NewFromFloat(*entry.Hours2))
		}
	}
	if dayType == work.DayTypeWorkday {
		total = total.Sub(decimal.NewFromFloat(expected))
	}
	return total.Round(2).InexactFloat64()
}

// accumulate folds one (workType, hours) pair into the monthly sums,
// skipping NONE and non-positive values.
func accumulate(sums map[work.WorkType]float64, workType work.WorkType, hours *float64) {
	if hours == nil || *hours <= 0 {
		return
	}
	if workType == work.WorkTypeNone || workType == "" {
		return
	}
	sums[workType] = decimal.NewFromFloat(sums[workType]).
		Add(decimal.NewFromFloat(*hours)).
		InexactFloat64()
}

func entryResponse(entry work.WorkEntry) *work.WorkEntryResponse {
	return &work.WorkEntryResponse{
		ID:          entry.ID,
		Date:        entry.Date.Format("2006-01-02"),
		Username:    entry.Username,
		Hours:       entry.Hours,
		WorkType:    entry.WorkType,
		Hours2:      entry.Hours2,
		WorkType2:   entry.WorkType2,
		DayType:     entry.DayType,
		Description: entry.Description,
	}
}

// expectedDailyHours scales the standard day by the user's fond.
func expectedDailyHours(fond float64) float64 {
	return decimal.NewFromInt(hoursInDay).
		Mul(decimal.NewFromFloat(fond)).
		InexactFloat64()
}

// floorHours converts minutes to hours, floored to two decimals.
func floorHours(minutes int64) float64 {
	return decimal.NewFromInt(minutes).
		DivRound(decimal.NewFromInt(60), 4).
		RoundFloor(2).
		InexactFloat64()
}

// roundToHalf converts minutes to hours rounded half-up to the nearest
// half hour.
func roundToHalf(minutes int64) float64 {
	return decimal.NewFromInt(minutes).
		Div(decimal.NewFromInt(60)).
		Mul(decimal.NewFromInt(2)).
		Round(0).
		Div(decimal.NewFromInt(2)).
		InexactFloat64()
}

func normalizeWorkType(raw string) work.WorkType {
	if raw == "" {
		return work.WorkTypeNone
	}
	return work.WorkType(raw)
}
