package core

import (
	"fmt"
	"log/slog"
)

// Record is the saved form of one node's color.
type Record struct {
	NodeID string `json:"node_id" yaml:"node_id"`
	R      uint8  `json:"r" yaml:"r"`
	G      uint8  `json:"g" yaml:"g"`
	B      uint8  `json:"b" yaml:"b"`
}

// Color returns the color held by the record.
func (r Record) Color() Color {
	return Color{R: r.R, G: r.G, B: r.B}
}

// LoadReport summarizes a load.
type LoadReport struct {
	Restored int
	Stale    int
	Pruned   int
}

// Bridge mirrors the store into the project's saved state and back.
// Tags are keyed by identity, so nesting depth and group order play no part.
type Bridge struct {
	store  *Store
	logger *slog.Logger
}

// NewBridge creates a bridge over store.
func NewBridge(store *Store, logger *slog.Logger) *Bridge {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Bridge{store: store, logger: logger}
}

// OnSave emits one record per colored node of all, sorted by identity.
func (b *Bridge) OnSave(all []NodeID) []Record {
	live := make(map[NodeID]bool, len(all))
	for _, id := range all {
		live[id] = true
	}

	records := []Record{}
	for _, id := range b.store.Tagged() {
		if !live[id] {
			continue
		}
		c, ok := b.store.Get(id)
		if !ok {
			continue
		}
		records = append(records, Record{NodeID: string(id), R: c.R, G: c.G, B: c.B})
		b.logger.Debug("saving color", "node", id, "color", c.Hex())
	}

	b.logger.Debug("all colors saved", "count", len(records))
	return records
}

// OnLoad restores the records whose node exists in all and requests a repaint
// of each. Later records win over earlier ones with the same key. Records for
// missing nodes are dropped. The store ends up holding exactly the restored
// tags: anything else it held is pruned.
func (b *Bridge) OnLoad(records []Record, all []NodeID) LoadReport {
	live := make(map[NodeID]bool, len(all))
	for _, id := range all {
		live[id] = true
	}

	var report LoadReport
	latest := make(map[NodeID]Color, len(records))
	var order []NodeID
	for _, r := range records {
		id := NodeID(r.NodeID)
		if !live[id] {
			report.Stale++
			b.logger.Debug("discarding record", "error", fmt.Errorf("%s: %w", id, ErrStaleNode))
			continue
		}
		if _, seen := latest[id]; !seen {
			order = append(order, id)
		}
		latest[id] = r.Color()
	}

	keep := make(map[NodeID]bool, len(latest))
	for id := range latest {
		keep[id] = true
	}
	report.Pruned = len(b.store.Prune(keep))

	for _, id := range order {
		b.store.Set(id, latest[id])
		report.Restored++
		b.logger.Debug("color loaded", "node", id, "color", latest[id].Hex())
	}

	b.logger.Debug("all colors restored", "restored", report.Restored, "stale", report.Stale)
	return report
}
