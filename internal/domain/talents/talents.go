package talents

import (
	"sort"
	"strings"
	"sync"

	"golang.org/x/text/cases"
)

// NormalizeKey trims whitespace and case folds a talent key so that
// " Armor " and "armor" name the same talent
func NormalizeKey(key string) string {
	// Casers keep state between calls and cannot be shared across goroutines
	return cases.Fold().String(strings.TrimSpace(key))
}

// Rank is a single talent's current rank
type Rank struct {
	Key  string `json:"key"`
	Rank int    `json:"rank"`
}

// Snapshot is a read-only, ordered view of a character's talent ranks
type Snapshot []Rank

// FromMap builds a snapshot ordered by talent key
func FromMap(ranks map[string]int) Snapshot {
	snap := make(Snapshot, 0, len(ranks))
	for k, r := range ranks {
		snap = append(snap, Rank{Key: NormalizeKey(k), Rank: r})
	}
	sort.Slice(snap, func(i, j int) bool {
		return snap[i].Key < snap[j].Key
	})
	return snap
}

// Get returns the rank for key, if present
func (s Snapshot) Get(key string) (int, bool) {
	key = NormalizeKey(key)
	for _, r := range s {
		if NormalizeKey(r.Key) == key {
			return r.Rank, true
		}
	}
	return 0, false
}

// Provider supplies a character's current talent ranks. The talent
// subsystem owns the data; consumers only read it.
type Provider interface {
	TalentSnapshot() Snapshot
}

// Ledger is an in-memory Provider
type Ledger struct {
	mu    sync.RWMutex
	order []string
	ranks map[string]int
}

// NewLedger creates a ledger seeded with the given ranks
func NewLedger(ranks map[string]int) *Ledger {
	l := &Ledger{ranks: make(map[string]int)}
	keys := make([]string, 0, len(ranks))
	for k := range ranks {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		l.SetRank(k, ranks[k])
	}
	return l
}

// SetRank sets the rank for a talent. Negative ranks are clamped to zero.
func (l *Ledger) SetRank(key string, rank int) {
	if rank < 0 {
		rank = 0
	}
	key = NormalizeKey(key)
	if key == "" {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.ranks == nil {
		l.ranks = make(map[string]int)
	}
	if _, exists := l.ranks[key]; !exists {
		l.order = append(l.order, key)
	}
	l.ranks[key] = rank
}

// AddRanks increases a talent's rank by n and returns the new rank
func (l *Ledger) AddRanks(key string, n int) int {
	rank := l.Rank(key) + n
	l.SetRank(key, rank)
	return l.Rank(key)
}

// Rank returns a talent's rank, zero when the talent is unknown
func (l *Ledger) Rank(key string) int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.ranks[NormalizeKey(key)]
}

// TalentSnapshot returns the ranks in the order talents were first set
func (l *Ledger) TalentSnapshot() Snapshot {
	l.mu.RLock()
	defer l.mu.RUnlock()

	snap := make(Snapshot, 0, len(l.order))
	for _, k := range l.order {
		snap = append(snap, Rank{Key: k, Rank: l.ranks[k]})
	}
	return snap
}
