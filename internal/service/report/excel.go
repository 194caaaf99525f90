// Package report renders a computed work month into downloadable and
// embeddable representations.
package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"
	"github.com/worklogix/attendance-backend-go/internal/domain/user"
	"github.com/worklogix/attendance-backend-go/internal/domain/work"
)

const hoursInDay = 8

var dayTypeLabels = map[work.DayType]string{
	work.DayTypeWorkday:         "workday",
	work.DayTypeSaturday:        "Saturday",
	work.DayTypeSunday:          "Sunday",
	work.DayTypeNationalHoliday: "national holiday",
}

var workTypeLabels = map[work.WorkType]string{
	work.WorkTypeWork:       "work",
	work.WorkTypeHoliday:    "public holiday",
	work.WorkTypeSickDay:    "sick day",
	work.WorkTypeSickness:   "sickness",
	work.WorkTypeTrip:       "business trip",
	work.WorkTypeHomeOffice: "home office",
	work.WorkTypeTimeOff:    "time off",
	work.WorkTypePaidLeave:  "paid leave",
}

// ExcelMonth builds a one-sheet workbook for a computed month: a header,
// one block of two rows per day, and a summary section with fond,
// holidays, on-site hours and the per-type totals.
func ExcelMonth(month work.WorkMonthResponse, info user.UserInfo) (*excelize.File, error) {
	f := excelize.NewFile()

	yearMonth := fmt.Sprintf("%d.%02d", month.Year, month.Month)
	sheet := yearMonth + " " + month.Username
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, fmt.Errorf("name report sheet: %w", err)
	}

	widths := []float64{16, 20, 10, 14, 10, 10, 10, 14}
	for i, width := range widths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetColWidth(sheet, col, col, width); err != nil {
			return nil, err
		}
	}

	row := 1
	writeRow(f, sheet, row, yearMonth, info.Name, "", "", "", "", "", fmt.Sprintf("no. %d", info.Code))
	row += 2
	writeRow(f, sheet, row, "date", "category", "arrival", "lunch", "departure", "total", "reported", "")
	row++

	for _, d := range month.WorkDays {
		lunch := hourCell(d.LunchStart)
		if d.LunchStart != nil || d.LunchEnd != nil {
			lunch += " - " + hourCell(d.LunchEnd)
		}

		var entryHours, entryType, entryHours2, entryType2 interface{} = "", "", "", ""
		if d.Work != nil {
			entryHours = floatCell(d.Work.Hours)
			entryType = workTypeLabels[d.Work.WorkType]
			entryHours2 = floatCell(d.Work.Hours2)
			entryType2 = workTypeLabels[d.Work.WorkType2]
		}

		writeRow(f, sheet, row,
			d.Date, dayTypeLabels[d.DayType], hourCell(d.WorkStart), lunch,
			hourCell(d.WorkEnd), floatCell(d.WorkedHours), entryHours, entryType)
		row++
		writeRow(f, sheet, row, "", "", "", "", "", "", entryHours2, entryType2)
		row++
	}

	row++
	writeRow(f, sheet, row, "Summary", "")
	row++
	writeRow(f, sheet, row, "Fond", float64(month.SumWorkDays)*info.Fond()*hoursInDay)
	row++
	writeRow(f, sheet, row, "Holidays", float64(month.SumHolidays)*hoursInDay)
	row++
	writeRow(f, sheet, row, "On-site", month.SumOnSiteHours)
	row++
	writeRow(f, sheet, row, "Balance", month.SumBalance)
	row++
	for _, sum := range month.Sums {
		writeRow(f, sheet, row, workTypeLabels[sum.WorkType], sum.Hours)
		row++
	}

	return f, nil
}

func writeRow(f *excelize.File, sheet string, row int, values ...interface{}) {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return
	}
	_ = f.SetSheetRow(sheet, cell, &values)
}

func hourCell(h *work.WorkHour) string {
	if h == nil {
		return ""
	}
	text := h.Time.Format("15:04")
	if h.Corrected {
		text += "*"
	}
	return text
}

func floatCell(v *float64) interface{} {
	if v == nil {
		return ""
	}
	return *v
}
