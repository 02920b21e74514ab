// Package recipe holds the crafting data scraped from the wiki's
// blueprint table: the recipe store, the recursive craft-plan resolver,
// and the workshop station index derived from it.
package recipe

import "sort"

// Ingredient is one (quantity, name) pair of a recipe. The name may
// itself be a store key (craftable) or a terminal base material.
type Ingredient struct {
	Qty  int
	Name string
}

// Sources describes alternative ways to acquire a blueprint's output.
type Sources struct {
	Loot      bool
	Harvester bool
	Quest     string
	Trials    string
}

// Recipe is one blueprint row. Workshop is the raw requirement text,
// normally "<Station> <Level>".
type Recipe struct {
	Name        string
	Workshop    string
	Ingredients []Ingredient
	Sources     *Sources
}

// Store maps exact, case-preserving blueprint names to recipes.
// Crafting lookups are exact-match, never fuzzy; this is deliberately
// different from catalog identity normalization.
type Store map[string]Recipe

// Names returns the store's keys sorted lexicographically.
func (s Store) Names() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
