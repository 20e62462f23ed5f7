package journal

import "fmt"

// Repository is the per-day view over the store's ledger. It always
// dereferences through the live Ledger, so no caller ever holds a stale
// copy, and every mutation persists before returning.
type Repository struct {
	store *Store
}

func NewRepository(s *Store) *Repository { return &Repository{store: s} }

// EntriesFor returns the entries recorded for day, touching the day
// bucket in memory on first access. Touched-but-empty buckets are not
// persisted (see Store.Save).
func (r *Repository) EntriesFor(day string) []Entry {
	l := r.store.Ledger()
	if _, ok := l.Trades[day]; !ok {
		l.Trades[day] = []Entry{}
	}
	return l.Trades[day]
}

// ReadOnlyEntriesFor returns the entries for day without side effects,
// so browsing day totals never mutates the ledger.
func (r *Repository) ReadOnlyEntriesFor(day string) []Entry {
	return r.store.Ledger().Trades[day]
}

// Append validates entry, adds it to the end of the day bucket and saves
// the ledger. The new entry's index is the bucket's previous length.
func (r *Repository) Append(day string, e Entry) error {
	if _, err := ParseDay(day); err != nil {
		return fmt.Errorf("%w: bad day %q", ErrInvalidEntry, day)
	}
	if err := e.Validate(); err != nil {
		return err
	}
	l := r.store.Ledger()
	l.Trades[day] = append(l.Trades[day], e)
	return r.store.Save()
}

// DeleteAt removes the entry at index within the full, unfiltered day
// list and saves. Indices coming from a filtered view must be translated
// back through Filter.Apply's index mapping first. An out-of-range index
// is a no-op, so deleting against a stale view is harmless.
func (r *Repository) DeleteAt(day string, index int) error {
	l := r.store.Ledger()
	entries := l.Trades[day]
	if index < 0 || index >= len(entries) {
		return nil
	}
	l.Trades[day] = append(entries[:index], entries[index+1:]...)
	return r.store.Save()
}
