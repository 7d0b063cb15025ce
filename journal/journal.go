// journal/journal.go
package journal

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the calendar-day key used to group trades.
const DateLayout = "2006-01-02"

// Outcome of a recorded trade.
type Outcome string

const (
	Win       Outcome = "win"
	Loss      Outcome = "loss"
	BreakEven Outcome = "breakEven"
)

// ParseOutcome accepts user-facing spellings of an outcome.
func ParseOutcome(s string) (Outcome, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "win", "w":
		return Win, nil
	case "loss", "l":
		return Loss, nil
	case "breakeven", "break-even", "be":
		return BreakEven, nil
	}
	return "", fmt.Errorf("unknown outcome %q (want win, loss or breakeven)", s)
}

// TradeRecord is one entry in the append-only trade log. Records are never
// mutated or deleted individually; reset clears the whole log.
type TradeRecord struct {
	TradeID       string
	TradeDate     string // DateLayout day key
	Outcome       Outcome
	Contracts     int
	Profit        float64 // non-zero only for wins
	Loss          float64 // non-zero only for losses
	BalanceBefore float64
	BalanceAfter  float64
	Note          string
	Created       time.Time
}

// Net returns the signed P/L of the trade.
func (r TradeRecord) Net() float64 {
	return r.Profit - r.Loss
}

// Journal is the trade log store.
type Journal interface {
	Append(TradeRecord) error
	TradesForDate(date string) ([]TradeRecord, error)
	AllTrades() ([]TradeRecord, error)
	Close() error
}
