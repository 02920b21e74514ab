package recipe

import (
	"errors"
	"fmt"
)

// ErrRecipeCycle is returned when a recipe transitively requires itself.
// The wiki data is assumed acyclic; a cycle is a data-integrity fault
// surfaced as an explicit error instead of unbounded recursion.
var ErrRecipeCycle = errors.New("recipe cycle")

// Node is one entry in a craft plan's pre-order expansion tree.
type Node struct {
	Name     string
	Qty      int
	Depth    int
	IsBase   bool
	Workshop string // set only for craftable nodes
}

// Plan is the resolver's output for exactly one unit of the target
// recipe: the ordered ingredient tree and the aggregated base-material
// totals. Scale for other quantities with Scale.
type Plan struct {
	Name          string
	Workshop      string
	Tree          []Node
	BaseMaterials map[string]int
	Sources       *Sources
}

// Resolve expands the named recipe into a full craft plan. A name that
// is not a store key yields (nil, nil): "no plan" is a result, not an
// error. All quantity arithmetic is exact integer multiplication; tree
// order is pre-order in ingredient declaration order and deterministic
// for fixed input.
func Resolve(name string, store Store) (*Plan, error) {
	target, ok := store[name]
	if !ok {
		return nil, nil
	}
	plan := &Plan{
		Name:          name,
		Workshop:      target.Workshop,
		BaseMaterials: make(map[string]int),
		Sources:       target.Sources,
	}
	if err := expand(plan, store, name, 1, 0, nil); err != nil {
		return nil, err
	}
	return plan, nil
}

func expand(plan *Plan, store Store, name string, qty, depth int, path []string) error {
	r, ok := store[name]
	if !ok {
		plan.Tree = append(plan.Tree, Node{Name: name, Qty: qty, Depth: depth, IsBase: true})
		plan.BaseMaterials[name] += qty
		return nil
	}
	for _, seen := range path {
		if seen == name {
			return fmt.Errorf("%w: %q requires itself", ErrRecipeCycle, name)
		}
	}
	plan.Tree = append(plan.Tree, Node{Name: name, Qty: qty, Depth: depth, Workshop: r.Workshop})
	path = append(path, name)
	for _, ing := range r.Ingredients {
		if err := expand(plan, store, ing.Name, ing.Qty*qty, depth+1, path); err != nil {
			return err
		}
	}
	return nil
}

// Scale returns a copy of the plan for n units of the target. Every
// node quantity and base-material total is multiplied exactly; the
// expansion itself is linear in the requested quantity.
func (p *Plan) Scale(n int) *Plan {
	if p == nil || n == 1 {
		return p
	}
	out := &Plan{
		Name:          p.Name,
		Workshop:      p.Workshop,
		Tree:          make([]Node, len(p.Tree)),
		BaseMaterials: make(map[string]int, len(p.BaseMaterials)),
		Sources:       p.Sources,
	}
	for i, node := range p.Tree {
		node.Qty *= n
		out.Tree[i] = node
	}
	for name, qty := range p.BaseMaterials {
		out.BaseMaterials[name] = qty * n
	}
	return out
}
