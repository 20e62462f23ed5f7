package journal

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// Store owns the persisted ledger file. Every component operates on the
// single in-memory Ledger it loads, and every mutation funnels back
// through Save before control returns to the caller.
type Store struct {
	path           string
	defaultAccount string
	ledger         *Ledger
}

// Open loads the ledger at path. A missing or unreadable file yields
// empty defaults; load never fails.
func Open(path, defaultAccount string) *Store {
	if defaultAccount == "" {
		defaultAccount = DefaultAccount
	}
	s := &Store{path: path, defaultAccount: defaultAccount}
	s.ledger = s.load()
	return s
}

// Ledger returns the live, authoritative ledger instance.
func (s *Store) Ledger() *Ledger { return s.ledger }

// DefaultAccount returns the protected account name this store was
// opened with.
func (s *Store) DefaultAccount() string { return s.defaultAccount }

// Path returns the ledger file path.
func (s *Store) Path() string { return s.path }

func (s *Store) load() *Ledger {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return NewLedger(s.defaultAccount)
	}
	l, err := decodeLedger(data, s.defaultAccount)
	if err != nil {
		return NewLedger(s.defaultAccount)
	}
	return l
}

// decodeLedger is a two-attempt ladder: strict decode of the current
// schema, then strict decode of the legacy shape where the root object is
// the trades map itself. Anything that matches neither is unusable and
// the caller falls back to defaults.
func decodeLedger(data []byte, defaultAccount string) (*Ledger, error) {
	var cur Ledger
	if err := strictUnmarshal(data, &cur); err == nil && cur.Trades != nil {
		cur.normalize(defaultAccount)
		return &cur, nil
	}
	var legacy map[string][]Entry
	if err := strictUnmarshal(data, &legacy); err == nil {
		l := &Ledger{Trades: legacy}
		l.normalize(defaultAccount)
		return l, nil
	}
	return nil, errors.New("unrecognized ledger shape")
}

func strictUnmarshal(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return err
	}
	if dec.More() {
		return errors.New("trailing data after ledger document")
	}
	return nil
}

// Save serializes the full ledger, pretty printed, to a temporary sibling
// file and renames it over the target, so the persisted file is never
// observed half written. Day buckets that ended up empty are dropped from
// the document: an absent key already means an empty day.
func (s *Store) Save() error {
	out := Ledger{
		Trades:   make(map[string][]Entry, len(s.ledger.Trades)),
		Accounts: s.ledger.Accounts,
	}
	for day, entries := range s.ledger.Trades {
		if len(entries) == 0 {
			continue
		}
		out.Trades[day] = entries
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("encode ledger: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace %s: %w", s.path, err)
	}
	return nil
}
