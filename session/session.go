// Package session derives the state of one trading day from the risk settings
// and the trade log: which slots are filled, whether entry is still permitted,
// and the running balance. State is recomputed from the log on every load;
// nothing here is persisted except the records it appends.
package session

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/rustyeddy/tradeplan/config"
	"github.com/rustyeddy/tradeplan/journal"
	"github.com/rustyeddy/tradeplan/pkg/id"
	"github.com/rustyeddy/tradeplan/risk"
)

var (
	// ErrNoConfig means no risk settings are present.
	ErrNoConfig = errors.New("no risk configuration")

	// ErrInvalidTransition rejects recording into a non-pending slot, an
	// out-of-range index, or a day that has hit its limit.
	ErrInvalidTransition = errors.New("invalid transition")
)

// InsufficientBudgetNote annotates trades recorded while the risk budget
// cannot size a single contract.
const InsufficientBudgetNote = "insufficient risk budget"

// Phase is the session's position in the day lifecycle.
type Phase int

const (
	NoConfig Phase = iota
	AwaitingSlot
	DayLimitReached
)

func (p Phase) String() string {
	switch p {
	case NoConfig:
		return "no-config"
	case AwaitingSlot:
		return "awaiting-slot"
	case DayLimitReached:
		return "day-limit-reached"
	}
	return fmt.Sprintf("phase(%d)", int(p))
}

// Store is the journal surface the session needs. Appends are best-effort:
// a failed append is logged and in-memory state stays authoritative.
type Store interface {
	Append(journal.TradeRecord) error
	TradesForDate(date string) ([]journal.TradeRecord, error)
	LastBalanceBefore(date string) (balance float64, ok bool, err error)
}

// Session is the state of one trading day. Slots holds the day's trades in
// order; nil entries are pending slots awaiting an outcome.
type Session struct {
	cfg   *config.Config
	store Store

	Date              string  // journal.DateLayout day key
	StartBalance      float64 // balance at day open, sizer input
	Balance           float64 // running balance
	Contracts         int     // contracts per trade under the current sizing
	StopLossRemaining float64 // fixed_stop mode only
	Slots             []*journal.TradeRecord
}

// New loads the session for the given date: day-open balance from the log,
// completed trades replayed into slots, contracts sized per policy.
func New(cfg *config.Config, store Store, date time.Time) (*Session, error) {
	if cfg == nil {
		return nil, ErrNoConfig
	}

	day := date.Format(journal.DateLayout)

	start, ok, err := store.LastBalanceBefore(day)
	if err != nil {
		return nil, fmt.Errorf("load day-open balance: %w", err)
	}
	if !ok {
		start = cfg.InitialBalance
	}

	completed, err := store.TradesForDate(day)
	if err != nil {
		return nil, fmt.Errorf("load trades for %s: %w", day, err)
	}

	s := &Session{
		cfg:          cfg,
		store:        store,
		Date:         day,
		StartBalance: start,
		Balance:      start,
	}

	for _, rec := range completed {
		s.Balance += rec.Net()
	}

	if cfg.Mode == config.FixedStop {
		s.StopLossRemaining = cfg.DailyLossBudget
		for _, rec := range completed {
			s.StopLossRemaining -= rec.Loss
		}
	}

	s.resize()
	s.Slots = s.buildSlots(completed)
	return s, nil
}

// Phase reports the session's current lifecycle state.
func (s *Session) Phase() Phase {
	if s.cfg == nil {
		return NoConfig
	}
	if s.Pending() > 0 {
		return AwaitingSlot
	}
	return DayLimitReached
}

// Pending returns the number of open slots.
func (s *Session) Pending() int {
	n := 0
	for _, slot := range s.Slots {
		if slot == nil {
			n++
		}
	}
	return n
}

// NextPending returns the index of the first open slot, or -1.
func (s *Session) NextPending() int {
	for i, slot := range s.Slots {
		if slot == nil {
			return i
		}
	}
	return -1
}

// RecordOutcome fills the pending slot at index with the given outcome,
// applies P/L to the balance and stop-loss budget, appends an immutable
// record to the store, and regrows the slot list per the mode's rule.
func (s *Session) RecordOutcome(index int, outcome journal.Outcome) (journal.TradeRecord, error) {
	if s.cfg == nil {
		return journal.TradeRecord{}, ErrNoConfig
	}
	if s.Phase() == DayLimitReached {
		return journal.TradeRecord{}, fmt.Errorf("day limit reached: %w", ErrInvalidTransition)
	}
	if index < 0 || index >= len(s.Slots) {
		return journal.TradeRecord{}, fmt.Errorf("slot %d out of range: %w", index, ErrInvalidTransition)
	}
	if s.Slots[index] != nil {
		return journal.TradeRecord{}, fmt.Errorf("slot %d already recorded: %w", index, ErrInvalidTransition)
	}

	if s.cfg.ResizePerTrade() {
		s.resize()
	}

	rec := journal.TradeRecord{
		TradeID:       id.New(),
		TradeDate:     s.Date,
		Outcome:       outcome,
		Contracts:     s.Contracts,
		BalanceBefore: s.Balance,
		Created:       time.Now().UTC(),
	}

	switch outcome {
	case journal.Win:
		rec.Profit = float64(s.Contracts) * s.cfg.TargetPoints * s.cfg.PointValue
	case journal.Loss:
		rec.Loss = float64(s.Contracts) * s.cfg.StopLossPoints * s.cfg.PointValue
	case journal.BreakEven:
		// occupies a slot, moves nothing
	default:
		return journal.TradeRecord{}, fmt.Errorf("outcome %q: %w", outcome, ErrInvalidTransition)
	}

	if s.Contracts == 0 && outcome != journal.BreakEven {
		rec.Note = InsufficientBudgetNote
	}

	rec.BalanceAfter = rec.BalanceBefore + rec.Profit - rec.Loss
	s.Balance = rec.BalanceAfter

	if s.cfg.Mode == config.FixedStop && outcome == journal.Loss {
		// May go negative; the sign triggers the day limit, the value is
		// reported as-is.
		s.StopLossRemaining -= rec.Loss
	}

	s.Slots[index] = &rec

	if s.cfg.Mode == config.FixedStop {
		// A break-even never consumes budget, so it always reopens a slot.
		if outcome == journal.BreakEven || s.StopLossRemaining > 0 {
			s.Slots = append(s.Slots, nil)
		}
	}

	// Best-effort durability: in-memory state stays the source of truth for
	// the rest of the session when the append fails.
	if err := s.store.Append(rec); err != nil {
		log.Printf("[session] append trade %s failed, keeping in-memory state: %v", rec.TradeID, err)
	}

	return rec, nil
}

// AdvanceDay rolls the session to a new date: the closing balance becomes the
// day-open balance, contracts are re-sized, the stop-loss budget refills and
// the slot list resets.
func (s *Session) AdvanceDay(date time.Time) {
	s.Date = date.Format(journal.DateLayout)
	s.StartBalance = s.Balance
	if s.cfg.Mode == config.FixedStop {
		s.StopLossRemaining = s.cfg.DailyLossBudget
	}
	s.resize()
	s.Slots = s.buildSlots(nil)
}

// Config returns the session's risk settings.
func (s *Session) Config() *config.Config {
	return s.cfg
}

// Sizing returns the sizer inputs for the session's current policy balance.
func (s *Session) Sizing() risk.Sizing {
	balance := s.StartBalance
	if s.cfg.ResizePerTrade() {
		balance = s.Balance
	}
	return risk.Sizing{
		Balance:     balance,
		RiskPercent: s.cfg.RiskPercent,
		StopPoints:  s.cfg.StopLossPoints,
		PointValue:  s.cfg.PointValue,
	}
}

func (s *Session) resize() {
	s.Contracts = risk.Calculate(s.Sizing()).Contracts
}

// buildSlots derives the slot list from completed trades per the mode rule:
// fixed_trades pads to the fixed length, fixed_stop keeps one slot open while
// budget remains.
func (s *Session) buildSlots(completed []journal.TradeRecord) []*journal.TradeRecord {
	slots := make([]*journal.TradeRecord, 0, len(completed)+1)
	for i := range completed {
		slots = append(slots, &completed[i])
	}

	switch s.cfg.Mode {
	case config.FixedTrades:
		for len(slots) < s.cfg.TradesPerDay {
			slots = append(slots, nil)
		}
	case config.FixedStop:
		if s.StopLossRemaining > 0 {
			slots = append(slots, nil)
		}
	}
	return slots
}
