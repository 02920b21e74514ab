package app

import (
	"sort"
	"strings"

	"github.com/appengine-ltd/raidkit/internal/catalog"
)

// BrowseOptions selects and orders a view of the catalog.
type BrowseOptions struct {
	Query   string
	Filters []string
	Sort    string
}

// Filter keys that select by item type rather than property.
var typeFilters = map[string]catalog.Tag{
	"loot":     catalog.TagLoot,
	"weapon":   catalog.TagWeapon,
	"shield":   catalog.TagShield,
	"augment":  catalog.TagAugment,
	"healing":  catalog.TagHealing,
	"quickUse": catalog.TagQuickUse,
	"grenade":  catalog.TagGrenade,
	"trap":     catalog.TagTrap,
}

var rarityOrder = map[string]int{
	"legendary": 5,
	"epic":      4,
	"rare":      3,
	"uncommon":  2,
	"common":    1,
}

// Browse returns the filtered, sorted view of the catalog. Type filters
// are OR'd together (an item matching any selected type passes);
// property filters are AND'd.
func (a *App) Browse(opts BrowseOptions) []catalog.Item {
	var activeTypes []catalog.Tag
	var properties []string
	for _, f := range opts.Filters {
		if tag, ok := typeFilters[f]; ok {
			activeTypes = append(activeTypes, tag)
			continue
		}
		properties = append(properties, f)
	}

	items := make([]catalog.Item, 0, len(a.Items))
	term := strings.ToLower(strings.TrimSpace(opts.Query))
	for _, it := range a.Items {
		if len(activeTypes) > 0 && !matchesAnyType(it, activeTypes) {
			continue
		}
		if !matchesProperties(it, properties) {
			continue
		}
		if term != "" && !strings.Contains(catalog.Searchable(it), term) {
			continue
		}
		items = append(items, it)
	}

	sortItems(items, opts.Sort)
	return items
}

// Stats summarizes a browse result against the full catalog.
type Stats struct {
	Shown      int
	Total      int
	TotalValue int
	AvgValue   int
}

// BrowseStats computes the summary line for a filtered view.
func (a *App) BrowseStats(items []catalog.Item) Stats {
	s := Stats{Shown: len(items), Total: len(a.Items)}
	for _, it := range items {
		s.TotalValue += it.SellPrice
	}
	if s.Shown > 0 {
		s.AvgValue = (s.TotalValue + s.Shown/2) / s.Shown
	}
	return s
}

func matchesAnyType(it catalog.Item, tags []catalog.Tag) bool {
	for _, tag := range tags {
		if it.HasType(tag) {
			return true
		}
	}
	return false
}

func matchesProperties(it catalog.Item, properties []string) bool {
	for _, p := range properties {
		switch p {
		case "keepQuests":
			if !it.KeepQuests {
				return false
			}
		case "keepProjects":
			if !it.KeepProjects {
				return false
			}
		case "keepWorkshop":
			if !it.KeepWorkshop {
				return false
			}
		case "recyclable":
			if it.CantRecycle {
				return false
			}
		case "cantRecycle":
			if !it.CantRecycle {
				return false
			}
		}
	}
	return true
}

func sortItems(items []catalog.Item, key string) {
	switch key {
	case "", "name":
		sort.SliceStable(items, func(i, j int) bool { return items[i].Name < items[j].Name })
	case "name-desc":
		sort.SliceStable(items, func(i, j int) bool { return items[i].Name > items[j].Name })
	case "price-high":
		sort.SliceStable(items, func(i, j int) bool { return items[i].SellPrice > items[j].SellPrice })
	case "price-low":
		sort.SliceStable(items, func(i, j int) bool { return items[i].SellPrice < items[j].SellPrice })
	case "rarity":
		sort.SliceStable(items, func(i, j int) bool {
			return rarityOrder[strings.ToLower(items[i].Rarity)] > rarityOrder[strings.ToLower(items[j].Rarity)]
		})
	case "damage":
		sort.SliceStable(items, func(i, j int) bool { return items[i].Equipment.Damage > items[j].Equipment.Damage })
	case "dps":
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].Equipment.RelativeDPS > items[j].Equipment.RelativeDPS
		})
	}
}
