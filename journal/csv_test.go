package journal

import (
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteCSV(t *testing.T) {
	t.Parallel()

	created := time.Date(2026, 3, 2, 9, 31, 12, 0, time.UTC)
	records := []TradeRecord{
		{
			TradeID:       "01A",
			TradeDate:     "2026-03-02",
			Outcome:       Win,
			Contracts:     2,
			Profit:        60,
			BalanceBefore: 500,
			BalanceAfter:  560,
			Created:       created,
		},
		{
			TradeID:       "01B",
			TradeDate:     "2026-03-02",
			Outcome:       Loss,
			Contracts:     2,
			Loss:          40,
			BalanceBefore: 560,
			BalanceAfter:  520,
			Note:          "insufficient risk budget",
			Created:       created,
		},
	}

	var sb strings.Builder
	require.NoError(t, WriteCSV(&sb, records))

	rows, err := csv.NewReader(strings.NewReader(sb.String())).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, []string{
		"trade_id", "trade_date", "outcome", "contracts",
		"profit", "loss", "balance_before", "balance_after", "note", "created",
	}, rows[0])

	assert.Equal(t, []string{
		"01A", "2026-03-02", "win", "2",
		"60.00", "0.00", "500.00", "560.00", "", "2026-03-02T09:31:12Z",
	}, rows[1])

	assert.Equal(t, "loss", rows[2][2])
	assert.Equal(t, "40.00", rows[2][5])
	assert.Equal(t, "insufficient risk budget", rows[2][8])
}

func TestWriteCSVEmptyLog(t *testing.T) {
	t.Parallel()

	var sb strings.Builder
	require.NoError(t, WriteCSV(&sb, nil))

	rows, err := csv.NewReader(strings.NewReader(sb.String())).ReadAll()
	require.NoError(t, err)
	assert.Len(t, rows, 1) // header only
}
