package core

import (
	"log/slog"
	"sort"
	"sync"
)

// Refresher repaints the row of one node so its background matches the store.
type Refresher interface {
	RequestRowRefresh(id NodeID)
}

// RefresherFunc adapts a function to Refresher.
type RefresherFunc func(id NodeID)

// RequestRowRefresh calls f(id).
func (f RefresherFunc) RequestRowRefresh(id NodeID) { f(id) }

// Store holds at most one color per node, keyed by node identity.
// Moving or reordering a node never changes its key, so tags follow the node
// wherever it lives in the tree.
type Store struct {
	mu        sync.RWMutex
	tags      map[NodeID]Color
	refresher Refresher
	logger    *slog.Logger
}

// NewStore creates an empty Store. A nil refresher disables repaint requests.
func NewStore(refresher Refresher, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Store{
		tags:      make(map[NodeID]Color),
		refresher: refresher,
		logger:    logger,
	}
}

// Set tags id with c, replacing any previous color.
func (s *Store) Set(id NodeID, c Color) {
	s.mu.Lock()
	s.tags[id] = c
	s.mu.Unlock()

	s.logger.Debug("color set", "node", id, "color", c.Hex())
	s.refresh(id)
}

// Get returns the color of id, if any.
func (s *Store) Get(id NodeID) (Color, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.tags[id]
	return c, ok
}

// HasColor reports whether id carries a color.
func (s *Store) HasColor(id NodeID) bool {
	_, ok := s.Get(id)
	return ok
}

// Clear removes the color of id. Clearing an uncolored node is a no-op.
func (s *Store) Clear(id NodeID) {
	s.mu.Lock()
	_, ok := s.tags[id]
	delete(s.tags, id)
	s.mu.Unlock()

	if !ok {
		return
	}
	s.logger.Debug("color removed", "node", id)
	s.refresh(id)
}

// Prune drops the tags of every node missing from live and returns them sorted.
// A tag never outlives its node.
func (s *Store) Prune(live map[NodeID]bool) []NodeID {
	s.mu.Lock()
	var pruned []NodeID
	for id := range s.tags {
		if !live[id] {
			delete(s.tags, id)
			pruned = append(pruned, id)
		}
	}
	s.mu.Unlock()

	sortIDs(pruned)
	for _, id := range pruned {
		s.logger.Debug("color pruned", "node", id)
		s.refresh(id)
	}
	return pruned
}

// Tagged returns the sorted identities of all colored nodes.
func (s *Store) Tagged() []NodeID {
	s.mu.RLock()
	ids := make([]NodeID, 0, len(s.tags))
	for id := range s.tags {
		ids = append(ids, id)
	}
	s.mu.RUnlock()

	sortIDs(ids)
	return ids
}

// Snapshot returns a copy of the whole mapping.
func (s *Store) Snapshot() map[NodeID]Color {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[NodeID]Color, len(s.tags))
	for id, c := range s.tags {
		out[id] = c
	}
	return out
}

// Len returns the number of colored nodes.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.tags)
}

// SetRefresher replaces the refresher. Hosts that build their view after the
// store use it to close the loop.
func (s *Store) SetRefresher(r Refresher) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.refresher = r
}

func (s *Store) refresh(id NodeID) {
	s.mu.RLock()
	r := s.refresher
	s.mu.RUnlock()

	if r != nil {
		r.RequestRowRefresh(id)
	}
}

func sortIDs(ids []NodeID) {
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
}
