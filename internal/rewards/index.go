package rewards

import (
	"sort"
	"sync"

	"github.com/KirkDiggler/talent-traits/internal/catalog"
	"github.com/KirkDiggler/talent-traits/internal/domain/talents"
)

// Entry previews what reaching a talent rank unlocks
type Entry struct {
	DisplayName string `json:"name"`
	Rank        int    `json:"rank"`
	End         int    `json:"end"`
}

// Delta is what a single import added, keyed by talent
type Delta map[string][]Entry

// State is the persistable form of the index
type State struct {
	Imported bool               `json:"imported"`
	Rewards  map[string][]Entry `json:"rewards"`
}

// Index is the process-wide reward preview table. It is filled once from
// the catalog and is read by talent UI code.
type Index struct {
	mu       sync.RWMutex
	imported bool
	entries  map[string][]Entry
}

// NewIndex creates an empty, not yet imported index
func NewIndex() *Index {
	return &Index{entries: make(map[string][]Entry)}
}

// ImportOnce adds an entry for every previewable rule in the catalog. Only
// the first call does any work; later calls return (nil, false) without
// looking at the catalog.
func (x *Index) ImportOnce(c *catalog.Catalog) (Delta, bool) {
	x.mu.Lock()
	defer x.mu.Unlock()

	if x.imported {
		return nil, false
	}

	if x.entries == nil {
		x.entries = make(map[string][]Entry)
	}

	delta := make(Delta)
	c.Each(func(rule catalog.Rule) {
		if !rule.Previewable() {
			return
		}
		entry := Entry{DisplayName: rule.DisplayName, Rank: rule.StartRank, End: rule.EndRank}
		delta[rule.TalentKey] = append(delta[rule.TalentKey], entry)
		x.entries[rule.TalentKey] = append(x.entries[rule.TalentKey], entry)
	})
	x.imported = true

	return delta, true
}

// Imported reports whether the catalog has been imported
func (x *Index) Imported() bool {
	x.mu.RLock()
	defer x.mu.RUnlock()
	return x.imported
}

// Entries returns every entry for a talent in import order
func (x *Index) Entries(talentKey string) []Entry {
	x.mu.RLock()
	defer x.mu.RUnlock()

	src := x.entries[talents.NormalizeKey(talentKey)]
	out := make([]Entry, len(src))
	copy(out, src)
	return out
}

// Upcoming returns the entries a character at rank has not reached yet,
// nearest first
func (x *Index) Upcoming(talentKey string, rank int) []Entry {
	var out []Entry
	for _, e := range x.Entries(talentKey) {
		if e.Rank > rank {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Rank < out[j].Rank
	})
	return out
}

// Len returns the total number of entries
func (x *Index) Len() int {
	x.mu.RLock()
	defer x.mu.RUnlock()

	n := 0
	for _, list := range x.entries {
		n += len(list)
	}
	return n
}

// State returns a copy of the index for persistence
func (x *Index) State() *State {
	x.mu.RLock()
	defer x.mu.RUnlock()

	return &State{
		Imported: x.imported,
		Rewards:  copyEntries(x.entries),
	}
}

// Restore replaces the index with a previously saved state
func (x *Index) Restore(state *State) {
	x.mu.Lock()
	defer x.mu.Unlock()

	if state == nil {
		x.imported = false
		x.entries = make(map[string][]Entry)
		return
	}
	x.imported = state.Imported
	x.entries = copyEntries(state.Rewards)
}

// Reset empties the index so the next resolution imports again
func (x *Index) Reset() {
	x.Restore(nil)
}

func copyEntries(src map[string][]Entry) map[string][]Entry {
	out := make(map[string][]Entry, len(src))
	for k, list := range src {
		cp := make([]Entry, len(list))
		copy(cp, list)
		out[k] = cp
	}
	return out
}
