package stats

import (
	"io"
	"text/template"
	"time"
)

var orgFuncs = template.FuncMap{
	"now": func() string { return time.Now().Format("2006-01-02 Mon 15:04") },
}

// WriteOrg renders the summary as an org-mode document.
func WriteOrg(w io.Writer, s Summary) error {
	t, err := template.New("summary").Funcs(orgFuncs).Parse(summaryOrgTemplate)
	if err != nil {
		return err
	}
	return t.Execute(w, s)
}

const summaryOrgTemplate = `
* TRADING SUMMARY
:PROPERTIES:
:TOTAL_PL:     {{printf "%.2f" .TotalProfit}}
:AVG_DAILY_PL: {{printf "%.2f" .AverageProfit}}
:WIN_RATE:     {{printf "%.1f" .WinRate}}
:TRADES:       {{.TotalTrades}}
:WINS:         {{.Wins}}
:LOSSES:       {{.Losses}}
:BREAK_EVEN:   {{.BreakEvens}}
:DAYS:         {{.TotalDays}}
:CREATED:      [{{now}}]
:END:

** Performance Summary
- Total P/L:        *{{printf "%.2f" .TotalProfit}}*
- Avg Daily P/L:    *{{printf "%.2f" .AverageProfit}}*
- Win Rate:         *{{printf "%.1f" .WinRate}}%*
- Avg Trades/Day:   *{{printf "%.1f" .AvgTradesPerDay}}*

** Trade Distribution
| Outcome    | Count |
|------------+-------|
| Wins       | {{.Wins}} |
| Losses     | {{.Losses}} |
| Break Even | {{.BreakEvens}} |
| Total      | {{.TotalTrades}} |

** Daily Performance
| Date | Trades | P/L | End Balance |
|------+--------+-----+-------------|
{{- range .Days}}
| {{.Date}} | {{.Trades}} | {{printf "%.2f" .Profit}} | {{printf "%.2f" .EndBalance}} |
{{- end}}
`
