package journal

import (
	"database/sql"
	"fmt"
	"time"
)

const selectCols = `trade_id, trade_date, outcome, contracts, profit, loss, balance_before, balance_after, note, created`

func scanTrade(rows *sql.Rows) (TradeRecord, error) {
	var rec TradeRecord
	var outcome string
	err := rows.Scan(
		&rec.TradeID,
		&rec.TradeDate,
		&outcome,
		&rec.Contracts,
		&rec.Profit,
		&rec.Loss,
		&rec.BalanceBefore,
		&rec.BalanceAfter,
		&rec.Note,
		&rec.Created,
	)
	rec.Outcome = Outcome(outcome)
	return rec, err
}

// TradesForDate returns the day's trades in append order.
func (j *SQLite) TradesForDate(date string) ([]TradeRecord, error) {
	rows, err := j.db.Query(`
		SELECT `+selectCols+`
		FROM trades
		WHERE trade_date = ?
		ORDER BY trade_id ASC`, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []TradeRecord
	for rows.Next() {
		rec, err := scanTrade(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// AllTrades returns the full log ordered by day, then append order.
func (j *SQLite) AllTrades() ([]TradeRecord, error) {
	rows, err := j.db.Query(`
		SELECT ` + selectCols + `
		FROM trades
		ORDER BY trade_date ASC, trade_id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []TradeRecord
	for rows.Next() {
		rec, err := scanTrade(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// LastBalanceBefore returns the closing balance of the last trade recorded
// strictly before date. ok is false when no such trade exists.
func (j *SQLite) LastBalanceBefore(date string) (balance float64, ok bool, err error) {
	row := j.db.QueryRow(`
		SELECT balance_after
		FROM trades
		WHERE trade_date < ?
		ORDER BY trade_date DESC, trade_id DESC
		LIMIT 1`, date)

	err = row.Scan(&balance)
	if err == sql.ErrNoRows {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return balance, true, nil
}

// GetState reads a session_state value. ok is false when the key is absent.
func (j *SQLite) GetState(key string) (value string, ok bool, err error) {
	row := j.db.QueryRow(`SELECT value FROM session_state WHERE key = ?`, key)
	err = row.Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

// SetState upserts a session_state value.
func (j *SQLite) SetState(key, value string) error {
	_, err := j.db.Exec(`
		INSERT INTO session_state (key, value, updated)
		VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated = excluded.updated`,
		key, value, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("set state %q: %w", key, err)
	}
	return nil
}
