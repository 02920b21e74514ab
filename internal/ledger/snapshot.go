package ledger

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// SnapshotVersion marks the export format. Imports reject files that do
// not carry a version at all.
const SnapshotVersion = "1.0"

// ErrInvalidSnapshot is returned for import payloads that are not a
// versioned snapshot.
var ErrInvalidSnapshot = errors.New("invalid snapshot format")

// Snapshot is the portable export of the ledger's persisted state.
type Snapshot struct {
	Inventory     map[string]int `json:"inventory"`
	ShoppingList  map[string]int `json:"shoppingList"`
	PinnedRecipes []string       `json:"pinnedRecipes"`
	ExportedAt    time.Time      `json:"exportedAt"`
	Version       string         `json:"version"`
}

// Export captures the ledger as a snapshot stamped with now.
func (l *Ledger) Export(now time.Time) Snapshot {
	return Snapshot{
		Inventory:     l.Inventory.clone(),
		ShoppingList:  l.ShoppingList.clone(),
		PinnedRecipes: append([]string(nil), l.Pinned...),
		ExportedAt:    now.UTC(),
		Version:       SnapshotVersion,
	}
}

// ExportJSON renders the snapshot as indented JSON.
func (l *Ledger) ExportJSON(now time.Time) ([]byte, error) {
	data, err := json.MarshalIndent(l.Export(now), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal snapshot: %w", err)
	}
	return data, nil
}

// Import replaces the inventory, shopping list, and pinned recipes
// wholesale from a snapshot payload. A payload without a version field
// is rejected as ErrInvalidSnapshot. Completed requirements are not part
// of the snapshot and are left untouched.
func (l *Ledger) Import(data []byte) error {
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSnapshot, err)
	}
	if snap.Version == "" {
		return fmt.Errorf("%w: missing version", ErrInvalidSnapshot)
	}

	l.Inventory = make(Quantities)
	for name, v := range snap.Inventory {
		l.Inventory.Set(name, v)
	}
	l.ShoppingList = make(Quantities)
	for name, v := range snap.ShoppingList {
		l.ShoppingList.Set(name, v)
	}
	l.Pinned = append([]string(nil), snap.PinnedRecipes...)
	return nil
}
