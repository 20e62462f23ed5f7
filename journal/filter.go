package journal

import "sort"

// All matches every value of a filter dimension.
const All = "all"

// Filter narrows a day's entry list. Dimensions compose with AND; an
// empty value or All leaves that dimension unconstrained. Account
// matching goes through the effective account, so legacy entries without
// one match the default account.
type Filter struct {
	Asset   string
	Side    string
	Account string
}

func wildcard(v string) bool { return v == "" || v == All }

// Active reports whether any dimension constrains the result.
func (f Filter) Active() bool {
	return !wildcard(f.Asset) || !wildcard(f.Side) || !wildcard(f.Account)
}

// Match reports whether a single entry passes the filter.
func (f Filter) Match(e Entry, defaultAccount string) bool {
	if !wildcard(f.Asset) && e.Asset != f.Asset {
		return false
	}
	if !wildcard(f.Side) && string(e.Side) != f.Side {
		return false
	}
	if !wildcard(f.Account) && e.EffectiveAccount(defaultAccount) != f.Account {
		return false
	}
	return true
}

// Apply returns the entries that pass the filter in their original
// relative order, plus a parallel slice of each kept entry's index in
// the unfiltered list. Deletion must go through those original indices;
// deleting by a filtered position corrupts unrelated entries.
func (f Filter) Apply(entries []Entry, defaultAccount string) (kept []Entry, indices []int) {
	for i, e := range entries {
		if f.Match(e, defaultAccount) {
			kept = append(kept, e)
			indices = append(indices, i)
		}
	}
	return kept, indices
}

// Assets returns the sorted distinct asset symbols of the unfiltered
// day. Filter choices always derive from the whole day, so narrowing
// another dimension never shrinks the asset list.
func Assets(entries []Entry) []string {
	seen := make(map[string]bool, len(entries))
	var out []string
	for _, e := range entries {
		if !seen[e.Asset] {
			seen[e.Asset] = true
			out = append(out, e.Asset)
		}
	}
	sort.Strings(out)
	return out
}
