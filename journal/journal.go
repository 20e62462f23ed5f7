// journal/journal.go

// Package journal implements a day-indexed ledger of recorded trades: a
// JSON file store with an atomic save cycle, per-day read/append/delete,
// profit/loss aggregation and multi-criterion filtering over a day's
// entries, and the registry of account names.
package journal

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Side identifies the direction of a recorded trade.
type Side string

const (
	Buy  Side = "Buy"
	Sell Side = "Sell"
)

// ParseSide parses a user-entered side value.
func ParseSide(s string) (Side, error) {
	switch Side(s) {
	case Buy, Sell:
		return Side(s), nil
	default:
		return "", fmt.Errorf("unknown side %q", s)
	}
}

// DefaultAccount is the fallback name of the protected account.
// Deployments can pick another name through configuration; entries
// recorded before accounts existed read as belonging to it.
const DefaultAccount = "Default"

// DayFormat is the canonical layout of a day key.
const DayFormat = "2006-01-02"

// DayKey returns the canonical YYYY-MM-DD key for a day bucket.
func DayKey(t time.Time) string { return t.Format(DayFormat) }

// ParseDay validates a day key. Only the canonical zero-padded
// YYYY-MM-DD form is accepted, since the string is used as a map key.
func ParseDay(s string) (time.Time, error) {
	t, err := time.Parse(DayFormat, s)
	if err != nil {
		return time.Time{}, err
	}
	if DayKey(t) != s {
		return time.Time{}, fmt.Errorf("day %q is not in YYYY-MM-DD form", s)
	}
	return t, nil
}

// Classified failures of the core operations. Everything else either
// succeeds or degrades to defaults without reaching the caller.
var (
	ErrInvalidEntry     = errors.New("invalid entry")
	ErrEmptyAmount      = errors.New("amount is empty")
	ErrBadAmount        = errors.New("amount is not a number")
	ErrProtectedAccount = errors.New("account is protected")
)

// Entry is one recorded operation within a day bucket. Entries are never
// edited in place; they are appended and deleted by position.
type Entry struct {
	Side    Side   `json:"side"`
	Asset   string `json:"asset"`
	PL      PL     `json:"pl"`
	Obs     string `json:"obs"`
	Account string `json:"account"`
}

// EffectiveAccount resolves the account an entry belongs to. Legacy
// entries without one read as the default account; the stored entry is
// never rewritten.
func (e Entry) EffectiveAccount(defaultAccount string) string {
	if e.Account == "" {
		return defaultAccount
	}
	return e.Account
}

// Validate reports why an entry cannot be recorded. Obs is optional,
// every other field is required.
func (e Entry) Validate() error {
	if _, err := ParseSide(string(e.Side)); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidEntry, err)
	}
	if strings.TrimSpace(e.Asset) == "" {
		return fmt.Errorf("%w: asset is required", ErrInvalidEntry)
	}
	if strings.TrimSpace(e.Account) == "" {
		return fmt.Errorf("%w: account is required", ErrInvalidEntry)
	}
	return nil
}

// Ledger is the root persisted object: day buckets of entries keyed by
// YYYY-MM-DD, plus the ordered account names. An absent day key means an
// empty day.
type Ledger struct {
	Trades   map[string][]Entry `json:"trades"`
	Accounts []string           `json:"accounts"`
}

// NewLedger returns an empty ledger holding only the default account.
func NewLedger(defaultAccount string) *Ledger {
	return &Ledger{
		Trades:   make(map[string][]Entry),
		Accounts: []string{defaultAccount},
	}
}

// normalize runs once after every load: the trades map must exist and
// accounts must never be empty.
func (l *Ledger) normalize(defaultAccount string) {
	if l.Trades == nil {
		l.Trades = make(map[string][]Entry)
	}
	if len(l.Accounts) == 0 {
		l.Accounts = []string{defaultAccount}
	}
}
