// journal/csv.go
package journal

import (
	"encoding/csv"
	"io"
	"strconv"
	"time"
)

// WriteCSV dumps records to w with a header row, for spreadsheet import.
func WriteCSV(w io.Writer, records []TradeRecord) error {
	cw := csv.NewWriter(w)

	header := []string{
		"trade_id", "trade_date", "outcome", "contracts",
		"profit", "loss", "balance_before", "balance_after", "note", "created",
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, r := range records {
		row := []string{
			r.TradeID,
			r.TradeDate,
			string(r.Outcome),
			strconv.Itoa(r.Contracts),
			f(r.Profit),
			f(r.Loss),
			f(r.BalanceBefore),
			f(r.BalanceAfter),
			r.Note,
			r.Created.Format(time.RFC3339),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func f(x float64) string {
	return strconv.FormatFloat(x, 'f', 2, 64)
}
