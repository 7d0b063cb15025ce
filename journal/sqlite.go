package journal

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

type SQLite struct {
	db *sql.DB
}

func NewSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	// WAL keeps reads cheap while a command is appending.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("enable WAL: %w", err)
	}

	if _, err := db.Exec(Schema); err != nil {
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &SQLite{db: db}, nil
}

func (j *SQLite) Append(r TradeRecord) error {
	_, err := j.db.Exec(`
		INSERT INTO trades
		(trade_id, trade_date, outcome, contracts, profit, loss, balance_before, balance_after, note, created)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.TradeID, r.TradeDate, string(r.Outcome), r.Contracts,
		r.Profit, r.Loss, r.BalanceBefore, r.BalanceAfter, r.Note, r.Created,
	)
	return err
}

// Reset clears the whole trade log and session state.
func (j *SQLite) Reset() error {
	if _, err := j.db.Exec(`DELETE FROM trades`); err != nil {
		return err
	}
	_, err := j.db.Exec(`DELETE FROM session_state`)
	return err
}

func (j *SQLite) Close() error {
	return j.db.Close()
}
