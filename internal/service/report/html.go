package report

import (
	"fmt"
	"html/template"
	"io"

	"github.com/worklogix/attendance-backend-go/internal/domain/work"
)

var monthTable = template.Must(template.New("month").Funcs(template.FuncMap{
	"hour":     hourCell,
	"hours":    floatCell,
	"dayLabel": func(t work.DayType) string { return dayTypeLabels[t] },
	"typeLabel": func(t work.WorkType) string {
		return workTypeLabels[t]
	},
}).Parse(`<table class="work-month" data-user="{{.Username}}">
<caption>{{printf "%d.%02d" .Year .Month}} {{.Username}}</caption>
<thead>
<tr><th>date</th><th>category</th><th>arrival</th><th>lunch</th><th>departure</th><th>total</th><th>saldo</th><th>reported</th></tr>
</thead>
<tbody>
{{range .WorkDays}}<tr class="{{.DayType}}">
<td>{{.Date}}</td>
<td>{{dayLabel .DayType}}</td>
<td>{{hour .WorkStart}}</td>
<td>{{hour .LunchStart}}{{if .LunchStart}} - {{end}}{{hour .LunchEnd}}</td>
<td>{{hour .WorkEnd}}</td>
<td>{{hours .WorkedHours}}</td>
<td>{{hours .Saldo}}</td>
<td>{{with .Work}}{{hours .Hours}} {{typeLabel .WorkType}}{{if .Hours2}} / {{hours .Hours2}} {{typeLabel .WorkType2}}{{end}}{{end}}</td>
</tr>
{{end}}</tbody>
<tfoot>
<tr><td colspan="5">workdays {{.SumWorkDays}}, holidays {{.SumHolidays}}</td>
<td>{{printf "%.2f" .SumOnSiteHours}}</td>
<td>{{printf "%.2f" .SumBalance}}</td>
<td>{{range .Sums}}{{typeLabel .WorkType}} {{.Hours}} {{end}}</td></tr>
</tfoot>
</table>
`))

// HTMLMonth writes the month as an embeddable table fragment.
func HTMLMonth(w io.Writer, month work.WorkMonthResponse) error {
	if err := monthTable.Execute(w, month); err != nil {
		return fmt.Errorf("render month table: %w", err)
	}
	return nil
}
