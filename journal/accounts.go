package journal

import (
	"fmt"
	"slices"
	"strings"
)

// Registry manages the set of valid account names in the ledger. The
// store's default account always exists and can never be removed, so the
// set is never empty.
type Registry struct {
	store *Store
}

func NewRegistry(s *Store) *Registry { return &Registry{store: s} }

// Names returns the account names in registration order.
func (r *Registry) Names() []string { return r.store.Ledger().Accounts }

// Add registers the trimmed name and saves. An empty or already-present
// name is a no-op; uniqueness is exact and case sensitive.
func (r *Registry) Add(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil
	}
	l := r.store.Ledger()
	if slices.Contains(l.Accounts, name) {
		return nil
	}
	l.Accounts = append(l.Accounts, name)
	return r.store.Save()
}

// Remove drops name from the registry and saves. Removing the default
// account is a classified failure; a name that is not registered is a
// no-op. Entries already recorded against name keep it and keep
// displaying and filtering by the literal string.
func (r *Registry) Remove(name string) error {
	if name == r.store.DefaultAccount() {
		return fmt.Errorf("%w: %q", ErrProtectedAccount, name)
	}
	l := r.store.Ledger()
	i := slices.Index(l.Accounts, name)
	if i < 0 {
		return nil
	}
	l.Accounts = slices.Delete(l.Accounts, i, i+1)
	return r.store.Save()
}
