// Package ledger tracks personal quantities: what a player holds and
// what they still need to gather. Entries never persist at zero or
// below; a quantity reaching zero removes the entry.
package ledger

import "sort"

// Quantities is an item-name -> count map. The zero value is unusable;
// use make or NewLedger.
type Quantities map[string]int

// Add applies a delta to an entry, deleting it when the result drops to
// zero or below.
func (q Quantities) Add(name string, delta int) {
	v := q[name] + delta
	if v <= 0 {
		delete(q, name)
		return
	}
	q[name] = v
}

// Set overwrites an entry, deleting it when the value is zero or below.
func (q Quantities) Set(name string, v int) {
	if v <= 0 {
		delete(q, name)
		return
	}
	q[name] = v
}

// Remove drops an entry regardless of its quantity.
func (q Quantities) Remove(name string) {
	delete(q, name)
}

// Clear empties the map in place.
func (q Quantities) Clear() {
	for name := range q {
		delete(q, name)
	}
}

// Get returns the stored quantity, zero when absent.
func (q Quantities) Get(name string) int {
	return q[name]
}

// Names returns the entry names sorted, for stable display.
func (q Quantities) Names() []string {
	names := make([]string, 0, len(q))
	for name := range q {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (q Quantities) clone() Quantities {
	out := make(Quantities, len(q))
	for name, v := range q {
		out[name] = v
	}
	return out
}

// Requirement is a needed (name, quantity) pair, fed either from a
// craft plan's base materials or a station's upgrade costs.
type Requirement struct {
	Name string
	Qty  int
}

// ComputeDeficit returns, for each requirement, the shortfall against
// the inventory. Requirements fully covered are excluded; input order
// is preserved for the rest.
func ComputeDeficit(requirements []Requirement, inventory Quantities) []Requirement {
	var out []Requirement
	for _, req := range requirements {
		deficit := req.Qty - inventory.Get(req.Name)
		if deficit <= 0 {
			continue
		}
		out = append(out, Requirement{Name: req.Name, Qty: deficit})
	}
	return out
}

// Ledger is the user-driven state that survives catalog refreshes:
// inventory, shopping list, pinned recipes, and completed requirement
// keys.
type Ledger struct {
	Inventory    Quantities
	ShoppingList Quantities
	Pinned       []string
	Completed    map[string]bool
}

func NewLedger() *Ledger {
	return &Ledger{
		Inventory:    make(Quantities),
		ShoppingList: make(Quantities),
		Completed:    make(map[string]bool),
	}
}

// AddDeficits pushes every uncovered requirement onto the shopping
// list and reports how many entries were added.
func (l *Ledger) AddDeficits(requirements []Requirement) int {
	deficits := ComputeDeficit(requirements, l.Inventory)
	for _, d := range deficits {
		l.ShoppingList.Add(d.Name, d.Qty)
	}
	return len(deficits)
}

// Pin adds a recipe name to the pinned list once.
func (l *Ledger) Pin(name string) {
	if l.IsPinned(name) {
		return
	}
	l.Pinned = append(l.Pinned, name)
}

// Unpin removes a recipe name from the pinned list.
func (l *Ledger) Unpin(name string) {
	out := l.Pinned[:0]
	for _, n := range l.Pinned {
		if n != name {
			out = append(out, n)
		}
	}
	l.Pinned = out
}

func (l *Ledger) IsPinned(name string) bool {
	for _, n := range l.Pinned {
		if n == name {
			return true
		}
	}
	return false
}

// ToggleCompleted flips the done state of one "keep for" requirement,
// keyed "<itemName>:<type>".
func (l *Ledger) ToggleCompleted(itemName, reqType string) {
	key := CompletedKey(itemName, reqType)
	if l.Completed[key] {
		delete(l.Completed, key)
		return
	}
	l.Completed[key] = true
}

func (l *Ledger) IsCompleted(itemName, reqType string) bool {
	return l.Completed[CompletedKey(itemName, reqType)]
}

func CompletedKey(itemName, reqType string) string {
	return itemName + ":" + reqType
}
