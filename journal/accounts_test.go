package journal

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryAdd(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	reg := NewRegistry(st)

	require.NoError(t, reg.Add("  Live  "))
	assert.Equal(t, []string{DefaultAccount, "Live"}, reg.Names())

	again := Open(st.Path(), DefaultAccount)
	assert.Equal(t, []string{DefaultAccount, "Live"}, again.Ledger().Accounts)
}

func TestRegistryAddDuplicateIsNoop(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	reg := NewRegistry(st)

	require.NoError(t, reg.Add("Live"))
	require.NoError(t, reg.Add("Live"))
	require.NoError(t, reg.Add("  Live  "))
	assert.Len(t, reg.Names(), 2)

	// Uniqueness is case sensitive.
	require.NoError(t, reg.Add("live"))
	assert.Len(t, reg.Names(), 3)
}

func TestRegistryAddEmptyIsNoop(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	reg := NewRegistry(st)

	require.NoError(t, reg.Add(""))
	require.NoError(t, reg.Add("   "))
	assert.Equal(t, []string{DefaultAccount}, reg.Names())
}

func TestRegistryRemoveDefaultIsRejected(t *testing.T) {
	t.Parallel()

	st := Open(filepath.Join(t.TempDir(), "tradebook.json"), "Padrão")
	reg := NewRegistry(st)

	err := reg.Remove("Padrão")
	assert.ErrorIs(t, err, ErrProtectedAccount)
	assert.Equal(t, []string{"Padrão"}, reg.Names())
}

func TestRegistryRemovePersists(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	reg := NewRegistry(st)
	require.NoError(t, reg.Add("Live"))
	require.NoError(t, reg.Add("Paper"))

	require.NoError(t, reg.Remove("Live"))
	assert.Equal(t, []string{DefaultAccount, "Paper"}, reg.Names())

	again := Open(st.Path(), DefaultAccount)
	assert.Equal(t, []string{DefaultAccount, "Paper"}, again.Ledger().Accounts)
}

func TestRegistryRemoveAbsentIsNoop(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	reg := NewRegistry(st)

	require.NoError(t, reg.Remove("Ghost"))
	assert.Equal(t, []string{DefaultAccount}, reg.Names())
}

func TestRegistryRemoveLeavesEntriesUntouched(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	reg := NewRegistry(st)
	repo := NewRepository(st)

	require.NoError(t, reg.Add("Live"))
	require.NoError(t, repo.Append("2024-03-15",
		Entry{Side: Buy, Asset: "A", PL: NewPL(10), Account: "Live"}))
	require.NoError(t, reg.Remove("Live"))

	entries := repo.ReadOnlyEntriesFor("2024-03-15")
	require.Len(t, entries, 1)
	assert.Equal(t, "Live", entries[0].Account, "orphaned name stays on the entry")

	// And the orphaned literal still filters.
	kept, _ := Filter{Account: "Live"}.Apply(entries, st.DefaultAccount())
	assert.Len(t, kept, 1)
}
