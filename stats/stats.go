// Package stats folds the trade log into per-day and overall summaries.
// It is a pure projection: recomputed in full on every read, never persisted.
package stats

import (
	"sort"

	"github.com/rustyeddy/tradeplan/journal"
)

// DaySummary aggregates one trading day.
type DaySummary struct {
	Date       string
	Trades     int
	Profit     float64 // net P/L for the day
	EndBalance float64 // balance after the day's last trade
}

// Summary aggregates the full log.
type Summary struct {
	TotalProfit     float64
	AverageProfit   float64 // per trading day
	WinRate         float64 // percent, break-evens excluded from the denominator
	Wins            int
	Losses          int
	BreakEvens      int
	TotalTrades     int
	TotalDays       int
	AvgTradesPerDay float64

	Days []DaySummary // ascending by date
}

// Summarize folds records into a Summary. Records within a day are assumed to
// be in append order; the last one provides the day's closing balance.
func Summarize(records []journal.TradeRecord) Summary {
	s := Summary{TotalTrades: len(records)}

	byDay := make(map[string]*DaySummary)
	for _, r := range records {
		day, ok := byDay[r.TradeDate]
		if !ok {
			day = &DaySummary{Date: r.TradeDate}
			byDay[r.TradeDate] = day
		}
		day.Trades++
		day.Profit += r.Net()
		day.EndBalance = r.BalanceAfter

		switch r.Outcome {
		case journal.Win:
			s.Wins++
		case journal.Loss:
			s.Losses++
		case journal.BreakEven:
			s.BreakEvens++
		}
	}

	s.Days = make([]DaySummary, 0, len(byDay))
	for _, day := range byDay {
		s.Days = append(s.Days, *day)
		s.TotalProfit += day.Profit
	}
	sort.Slice(s.Days, func(i, j int) bool { return s.Days[i].Date < s.Days[j].Date })

	s.TotalDays = len(s.Days)
	if s.TotalDays > 0 {
		s.AverageProfit = s.TotalProfit / float64(s.TotalDays)
		s.AvgTradesPerDay = float64(s.TotalTrades) / float64(s.TotalDays)
	}

	if decided := s.Wins + s.Losses; decided > 0 {
		s.WinRate = float64(s.Wins) / float64(decided) * 100
	}

	return s
}
