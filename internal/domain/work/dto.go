package work

import (
	"time"

	"github.com/worklogix/attendance-backend-go/internal/pkg/validator"
)

// WorkHour is one of the four daily landmarks. Corrected landmarks keep the
// pre-correction time in OriginalTime; synthesized landmarks have none.
type WorkHour struct {
	Time         time.Time  `json:"time"`
	Corrected    bool       `json:"corrected,omitempty"`
	OriginalTime *time.Time `json:"original_time,omitempty"`
}

// WorkDayResponse is the computed record for one date of the requested
// month. Days without events still appear with null fields.
type WorkDayResponse struct {
	Date        string             `json:"date"`
	DayType     DayType            `json:"day_type"`
	WorkStart   *WorkHour          `json:"work_start,omitempty"`
	LunchStart  *WorkHour          `json:"lunch_start,omitempty"`
	LunchEnd    *WorkHour          `json:"lunch_end,omitempty"`
	WorkEnd     *WorkHour          `json:"work_end,omitempty"`
	WorkedHours *float64           `json:"worked_hours,omitempty"`
	Saldo       *float64           `json:"saldo,omitempty"`
	Work        *WorkEntryResponse `json:"work,omitempty"`
}

// WorkEntryResponse is the transport representation of a manual entry.
type WorkEntryResponse struct {
	ID          int64    `json:"id"`
	Date        string   `json:"date"`
	Username    string   `json:"username"`
	Hours       *float64 `json:"hours,omitempty"`
	WorkType    WorkType `json:"work_type"`
	Hours2      *float64 `json:"hours2,omitempty"`
	WorkType2   WorkType `json:"work_type2"`
	DayType     DayType  `json:"day_type"`
	Description string   `json:"description,omitempty"`
}

// WorkTypeSum is one per-work-type hour total of the monthly aggregation.
type WorkTypeSum struct {
	WorkType WorkType `json:"work_type"`
	Hours    float64  `json:"hours"`
}

// WorkMonthResponse is the full month computation for one user.
type WorkMonthResponse struct {
	Username       string            `json:"username"`
	Year           int               `json:"year"`
	Month          int               `json:"month"`
	WorkDays       []WorkDayResponse `json:"work_days"`
	SumWorkDays    int               `json:"sum_work_days"`
	SumHolidays    int               `json:"sum_holidays"`
	SumOnSiteHours float64           `json:"sum_on_site_hours"`
	SumBalance     float64           `json:"sum_balance"`
	Sums           []WorkTypeSum     `json:"sums"`
}

// SetWorkRequest is an explicit edit of a manual work entry. Hour values
// are free text: decimal ("7.5") or clock ("7:30"); anything else degrades
// to no value rather than failing the edit.
type SetWorkRequest struct {
	ID          int64  `json:"id"`
	Date        string `json:"date"`
	WorkType    string `json:"work_type"`
	Hours       string `json:"hours"`
	WorkType2   string `json:"work_type2"`
	Hours2      string `json:"hours2"`
	Description string `json:"description"`
}

func (r SetWorkRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.ID == 0 {
		if validator.IsEmpty(r.Date) {
			errs = append(errs, validator.ValidationError{Field: "date", Message: "date is required when creating an entry"})
		} else if _, ok := validator.IsValidDate(r.Date); !ok {
			errs = append(errs, validator.ValidationError{Field: "date", Message: "date must be in YYYY-MM-DD format"})
		}
	}
	if r.WorkType != "" && !WorkType(r.WorkType).Valid() {
		errs = append(errs, validator.ValidationError{Field: "work_type", Message: "unknown work type"})
	}
	if r.WorkType2 != "" && !WorkType(r.WorkType2).Valid() {
		errs = append(errs, validator.ValidationError{Field: "work_type2", Message: "unknown work type"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
