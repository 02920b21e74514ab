package app

import (
	"context"
	"fmt"
	"log"
	"sort"

	"github.com/appengine-ltd/raidkit/internal/catalog"
	"github.com/appengine-ltd/raidkit/internal/ledger"
	"github.com/appengine-ltd/raidkit/internal/recipe"
	"github.com/appengine-ltd/raidkit/internal/wiki"
)

// Refresh rebuilds the catalog, recipe store, and station index from
// the wiki, replacing the previous data wholesale. The loot page is the
// one required input: if it cannot be fetched or parsed, the built-in
// fallback items are installed and the error is returned. Blueprint and
// equipment failures degrade to empty data with a log line.
func (a *App) Refresh(ctx context.Context) error {
	lootHTML, err := a.fetcher.PageHTML(ctx, wiki.PageLoot)
	if err != nil {
		a.installFallback()
		return fmt.Errorf("fetch loot page: %w", err)
	}
	loot, err := wiki.ParseLootPage(lootHTML)
	if err != nil {
		a.installFallback()
		return err
	}

	var rows []recipe.Row
	if bpHTML, err := a.fetcher.PageHTML(ctx, wiki.PageBlueprints); err != nil {
		log.Printf("fetch blueprints page: %v", err)
	} else if rows, err = wiki.ParseBlueprintsPage(bpHTML); err != nil {
		log.Printf("parse blueprints page: %v", err)
	}

	var equipment []catalog.CategoryList
	for _, page := range wiki.EquipmentParsers() {
		html, err := a.fetcher.PageHTML(ctx, page.Page)
		if err != nil {
			log.Printf("fetch %s page: %v", page.Page, err)
			equipment = append(equipment, catalog.CategoryList{Tag: page.Tag})
			continue
		}
		equipment = append(equipment, catalog.CategoryList{Tag: page.Tag, Items: page.Parse(html)})
	}

	store, skipped := recipe.Build(rows)
	if len(skipped) > 0 {
		log.Printf("recipe parse skipped %d ingredient segment(s)", len(skipped))
	}

	a.Items = catalog.Merge(loot, equipment)
	a.Recipes = store
	a.Stations = recipe.GroupStations(store, recipe.DefaultUpgrades)
	return nil
}

func (a *App) installFallback() {
	a.Items = catalog.Merge(wiki.FallbackItems(), nil)
	a.Recipes = recipe.Store{}
	a.Stations = nil
}

// Craft resolves a recipe into a plan for the requested quantity.
// (nil, nil) means the name is not craftable.
func (a *App) Craft(name string, qty int) (*recipe.Plan, error) {
	plan, err := recipe.Resolve(name, a.Recipes)
	if err != nil || plan == nil {
		return nil, err
	}
	if qty > 1 {
		plan = plan.Scale(qty)
	}
	return plan, nil
}

// PlanRequirements flattens a craft plan's base-material totals into
// sorted requirements, the shape the ledger's deficit math consumes.
func PlanRequirements(plan *recipe.Plan) []ledger.Requirement {
	if plan == nil {
		return nil
	}
	names := make([]string, 0, len(plan.BaseMaterials))
	for name := range plan.BaseMaterials {
		names = append(names, name)
	}
	sort.Strings(names)
	reqs := make([]ledger.Requirement, 0, len(names))
	for _, name := range names {
		reqs = append(reqs, ledger.Requirement{Name: name, Qty: plan.BaseMaterials[name]})
	}
	return reqs
}

// UpgradeRequirements converts a station level's upgrade costs into
// ledger requirements.
func UpgradeRequirements(level recipe.Level) []ledger.Requirement {
	reqs := make([]ledger.Requirement, 0, len(level.Upgrades))
	for _, u := range level.Upgrades {
		reqs = append(reqs, ledger.Requirement{Name: u.Name, Qty: u.Qty})
	}
	return reqs
}
