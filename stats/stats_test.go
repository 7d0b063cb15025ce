package stats

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rustyeddy/tradeplan/journal"
)

func rec(date string, outcome journal.Outcome, net, after float64) journal.TradeRecord {
	r := journal.TradeRecord{
		TradeDate:    date,
		Outcome:      outcome,
		Contracts:    1,
		BalanceAfter: after,
	}
	if net > 0 {
		r.Profit = net
	} else {
		r.Loss = -net
	}
	r.BalanceBefore = after - net
	return r
}

func TestSummarizeEmptyLog(t *testing.T) {
	t.Parallel()

	s := Summarize(nil)

	assert.Zero(t, s.TotalDays)
	assert.Zero(t, s.TotalTrades)
	assert.InDelta(t, 0, s.AverageProfit, 1e-9)
	assert.InDelta(t, 0, s.WinRate, 1e-9)
	assert.Empty(t, s.Days)
}

func TestSummarize(t *testing.T) {
	t.Parallel()

	records := []journal.TradeRecord{
		rec("2026-03-02", journal.Win, 30, 530),
		rec("2026-03-02", journal.Loss, -20, 510),
		rec("2026-03-02", journal.BreakEven, 0, 510),
		rec("2026-03-03", journal.Win, 30, 540),
	}

	s := Summarize(records)

	assert.Equal(t, 4, s.TotalTrades)
	assert.Equal(t, 2, s.Wins)
	assert.Equal(t, 1, s.Losses)
	assert.Equal(t, 1, s.BreakEvens)
	assert.Equal(t, 2, s.TotalDays)
	assert.InDelta(t, 40, s.TotalProfit, 1e-9)
	assert.InDelta(t, 20, s.AverageProfit, 1e-9)
	assert.InDelta(t, 2, s.AvgTradesPerDay, 1e-9)

	// 2 wins / (2 wins + 1 loss); break-even excluded.
	assert.InDelta(t, 66.666, s.WinRate, 0.01)

	require.Len(t, s.Days, 2)
	assert.Equal(t, "2026-03-02", s.Days[0].Date)
	assert.Equal(t, 3, s.Days[0].Trades)
	assert.InDelta(t, 10, s.Days[0].Profit, 1e-9)
	assert.InDelta(t, 510, s.Days[0].EndBalance, 1e-9)
	assert.Equal(t, "2026-03-03", s.Days[1].Date)
	assert.InDelta(t, 30, s.Days[1].Profit, 1e-9)
}

func TestSummarizeDaysSortedByDate(t *testing.T) {
	t.Parallel()

	records := []journal.TradeRecord{
		rec("2026-03-05", journal.Win, 30, 560),
		rec("2026-03-02", journal.Loss, -20, 480),
		rec("2026-03-03", journal.Win, 30, 510),
	}

	s := Summarize(records)
	require.Len(t, s.Days, 3)
	assert.Equal(t, "2026-03-02", s.Days[0].Date)
	assert.Equal(t, "2026-03-03", s.Days[1].Date)
	assert.Equal(t, "2026-03-05", s.Days[2].Date)
}

func TestSummarizeIdempotent(t *testing.T) {
	t.Parallel()

	records := []journal.TradeRecord{
		rec("2026-03-02", journal.Win, 30, 530),
		rec("2026-03-03", journal.Loss, -20, 510),
	}

	first := Summarize(records)
	second := Summarize(records)
	assert.Equal(t, first, second)
}

func TestSummarizeAppendAffectsOnlyThatDay(t *testing.T) {
	t.Parallel()

	records := []journal.TradeRecord{
		rec("2026-03-02", journal.Win, 30, 530),
		rec("2026-03-03", journal.Loss, -20, 510),
	}

	before := Summarize(records)
	after := Summarize(append(records, rec("2026-03-03", journal.Win, 30, 540)))

	assert.Equal(t, before.Days[0], after.Days[0])
	assert.Equal(t, before.TotalDays, after.TotalDays)
	assert.InDelta(t, before.Days[1].Profit+30, after.Days[1].Profit, 1e-9)
	assert.InDelta(t, before.TotalProfit+30, after.TotalProfit, 1e-9)
}

func TestSummarizeAllBreakEvens(t *testing.T) {
	t.Parallel()

	records := []journal.TradeRecord{
		rec("2026-03-02", journal.BreakEven, 0, 500),
		rec("2026-03-02", journal.BreakEven, 0, 500),
	}

	s := Summarize(records)
	assert.Equal(t, 2, s.BreakEvens)
	assert.InDelta(t, 0, s.WinRate, 1e-9) // no decided trades, no division by zero
}

func TestWriteOrg(t *testing.T) {
	t.Parallel()

	records := []journal.TradeRecord{
		rec("2026-03-02", journal.Win, 30, 530),
		rec("2026-03-02", journal.Loss, -20, 510),
	}

	var sb strings.Builder
	require.NoError(t, WriteOrg(&sb, Summarize(records)))
	out := sb.String()

	assert.Contains(t, out, "* TRADING SUMMARY")
	assert.Contains(t, out, ":TOTAL_PL:     10.00")
	assert.Contains(t, out, ":WIN_RATE:     50.0")
	assert.Contains(t, out, ":END:")
	assert.Contains(t, out, "| 2026-03-02 | 2 | 10.00 | 510.00 |")
}
