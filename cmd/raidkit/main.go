package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/appengine-ltd/raidkit/internal/app"
	"github.com/appengine-ltd/raidkit/internal/catalog"
	"github.com/appengine-ltd/raidkit/internal/config"
	"github.com/appengine-ltd/raidkit/internal/ledger"
	"github.com/appengine-ltd/raidkit/internal/recipe"
	"github.com/appengine-ltd/raidkit/internal/storage"
	"github.com/appengine-ltd/raidkit/internal/wiki"
)

// version, commit, date are injected at build time (see .goreleaser.yaml).
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const usage = `raidkit - ARC Raiders crafting companion

Usage:
  raidkit [flags] <command> [args]

Commands:
  refresh                     fetch the latest wiki data
  browse [query]              list items (-filter, -sort)
  craft <item> [qty]          resolve a recipe to base materials
  workshop [station]          show station levels and upgrade costs
  inv <item> <qty>            set an inventory quantity
  inv add <item> <delta>      adjust an inventory quantity
  shop <item>                 add an item deficit to the shopping list
  shop craft <recipe>         add a craft plan's base materials
  shop upgrade <station> <n>  add a station level's upgrade costs
  pin <recipe>                pin or unpin a recipe
  export <file>               write an inventory snapshot
  import <file>               load an inventory snapshot
  clear                       wipe all saved data

Flags:
`

func main() {
	var (
		showVersion bool
		filters     string
		sortKey     string
		offline     bool
	)

	flag.BoolVar(&showVersion, "version", false, "print version and exit")
	flag.StringVar(&filters, "filter", "", "comma-separated browse filters (loot, weapon, keepQuests, ...)")
	flag.StringVar(&sortKey, "sort", "", "browse sort key (name, price-high, rarity, damage, dps)")
	flag.BoolVar(&offline, "offline", false, "skip the startup refresh")
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, usage)
		flag.PrintDefaults()
	}
	flag.Parse()

	if showVersion {
		fmt.Printf("raidkit %s (%s) %s\n", version, commit, date)
		return
	}

	if err := run(flag.Args(), filters, sortKey, offline); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string, filters, sortKey string, offline bool) error {
	if len(args) == 0 {
		flag.Usage()
		return errors.New("no command given")
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	store, err := storage.Open(cfg.DBPath())
	if err != nil {
		return fmt.Errorf("open state db: %w", err)
	}
	defer store.Close()

	client := wiki.NewClient(cfg.APIBase, cfg.HTTPTimeout, cfg.CacheTTL)
	a := app.New(client, store)

	ctx := context.Background()
	a.LoadState(ctx)

	cmd, rest := args[0], args[1:]

	needsData := cmd != "clear" && cmd != "refresh"
	if needsData && !offline {
		if err := a.Refresh(ctx); err != nil {
			fmt.Fprintf(os.Stderr, "refresh failed, using fallback data: %v\n", err)
		}
	}

	switch cmd {
	case "refresh":
		if err := a.Refresh(ctx); err != nil {
			return err
		}
		fmt.Printf("loaded %d items, %d recipes, %d stations\n", len(a.Items), len(a.Recipes), len(a.Stations))
		return nil
	case "browse":
		return cmdBrowse(a, rest, filters, sortKey)
	case "craft":
		return cmdCraft(a, rest)
	case "workshop":
		return cmdWorkshop(a, rest)
	case "inv":
		return cmdInv(ctx, a, rest)
	case "shop":
		return cmdShop(ctx, a, rest)
	case "pin":
		return cmdPin(ctx, a, rest)
	case "export":
		return cmdExport(a, rest)
	case "import":
		return cmdImport(ctx, a, rest)
	case "clear":
		return a.ClearAllData(ctx)
	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func cmdBrowse(a *app.App, args []string, filters, sortKey string) error {
	opts := app.BrowseOptions{Sort: sortKey}
	if len(args) > 0 {
		opts.Query = strings.Join(args, " ")
	}
	if filters != "" {
		for _, f := range strings.Split(filters, ",") {
			opts.Filters = append(opts.Filters, strings.TrimSpace(f))
		}
	}

	items := a.Browse(opts)
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	for _, it := range items {
		price := "-"
		if it.SellPrice > 0 {
			price = fmt.Sprintf("$%d", it.SellPrice)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", it.Name, it.Rarity, it.Category, price)
	}
	w.Flush()

	stats := a.BrowseStats(items)
	fmt.Printf("%d of %d items, total $%d, avg $%d\n", stats.Shown, stats.Total, stats.TotalValue, stats.AvgValue)
	return nil
}

func cmdCraft(a *app.App, args []string) error {
	if len(args) == 0 {
		return errors.New("craft: item name required")
	}
	qty := 1
	name := strings.Join(args, " ")
	if len(args) > 1 {
		if n, err := strconv.Atoi(args[len(args)-1]); err == nil && n > 0 {
			qty = n
			name = strings.Join(args[:len(args)-1], " ")
		}
	}

	resolved := resolveRecipeName(a, name)
	plan, err := a.Craft(resolved, qty)
	if err != nil {
		return err
	}
	if plan == nil {
		return fmt.Errorf("no recipe for %q", name)
	}

	fmt.Printf("%s x%d (%s)\n", plan.Name, qty, plan.Workshop)
	for _, node := range plan.Tree {
		marker := ""
		if node.IsBase {
			marker = " *"
		}
		fmt.Printf("%s%dx %s%s\n", strings.Repeat("  ", node.Depth+1), node.Qty, node.Name, marker)
	}
	fmt.Println("base materials:")
	for _, req := range app.PlanRequirements(plan) {
		fmt.Printf("  %dx %s\n", req.Qty, req.Name)
	}
	if plan.Sources != nil {
		fmt.Printf("sources: %s\n", describeSources(plan.Sources))
	}
	return nil
}

func cmdWorkshop(a *app.App, args []string) error {
	want := strings.ToLower(strings.Join(args, " "))
	for _, station := range a.Stations {
		if want != "" && !strings.Contains(strings.ToLower(station.Name), want) {
			continue
		}
		fmt.Println(station.Name)
		for _, level := range station.Levels {
			fmt.Printf("  level %d: %d recipe(s)\n", level.Level, len(level.Recipes))
			for _, u := range level.Upgrades {
				fmt.Printf("    upgrade: %dx %s\n", u.Qty, u.Name)
			}
		}
	}
	return nil
}

func cmdInv(ctx context.Context, a *app.App, args []string) error {
	if len(args) == 0 {
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		for _, name := range a.Ledger.Inventory.Names() {
			fmt.Fprintf(w, "%s\t%d\n", name, a.Ledger.Inventory.Get(name))
		}
		return w.Flush()
	}

	if args[0] == "add" {
		if len(args) < 3 {
			return errors.New("inv add: item and delta required")
		}
		delta, err := strconv.Atoi(args[len(args)-1])
		if err != nil {
			return fmt.Errorf("inv add: bad delta %q", args[len(args)-1])
		}
		name := resolveItemName(a, strings.Join(args[1:len(args)-1], " "))
		a.Ledger.Inventory.Add(name, delta)
		a.SaveState(ctx)
		fmt.Printf("%s = %d\n", name, a.Ledger.Inventory.Get(name))
		return nil
	}

	if len(args) < 2 {
		return errors.New("inv: item and quantity required")
	}
	qty, err := strconv.Atoi(args[len(args)-1])
	if err != nil {
		return fmt.Errorf("inv: bad quantity %q", args[len(args)-1])
	}
	name := resolveItemName(a, strings.Join(args[:len(args)-1], " "))
	a.Ledger.Inventory.Set(name, qty)
	a.SaveState(ctx)
	fmt.Printf("%s = %d\n", name, a.Ledger.Inventory.Get(name))
	return nil
}

func cmdShop(ctx context.Context, a *app.App, args []string) error {
	if len(args) == 0 {
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		for _, name := range a.Ledger.ShoppingList.Names() {
			fmt.Fprintf(w, "%s\t%d\n", name, a.Ledger.ShoppingList.Get(name))
		}
		return w.Flush()
	}

	var reqs []ledger.Requirement
	if args[0] == "upgrade" {
		if len(args) < 3 {
			return errors.New("shop upgrade: station name and level required")
		}
		level, err := strconv.Atoi(args[len(args)-1])
		if err != nil {
			return fmt.Errorf("shop upgrade: bad level %q", args[len(args)-1])
		}
		station := strings.Join(args[1:len(args)-1], " ")
		found := false
		for _, st := range a.Stations {
			if !strings.EqualFold(st.Name, station) {
				continue
			}
			for _, lv := range st.Levels {
				if lv.Level == level {
					reqs = app.UpgradeRequirements(lv)
					found = true
				}
			}
		}
		if !found {
			return fmt.Errorf("no station level %q %d", station, level)
		}
	} else if args[0] == "craft" {
		if len(args) < 2 {
			return errors.New("shop craft: recipe name required")
		}
		name := resolveRecipeName(a, strings.Join(args[1:], " "))
		plan, err := a.Craft(name, 1)
		if err != nil {
			return err
		}
		if plan == nil {
			return fmt.Errorf("no recipe for %q", strings.Join(args[1:], " "))
		}
		reqs = app.PlanRequirements(plan)
	} else {
		name := resolveItemName(a, strings.Join(args, " "))
		reqs = []ledger.Requirement{{Name: name, Qty: 1}}
	}

	added := a.Ledger.AddDeficits(reqs)
	a.SaveState(ctx)
	fmt.Printf("added %d item(s) to the shopping list\n", added)
	return nil
}

func cmdPin(ctx context.Context, a *app.App, args []string) error {
	if len(args) == 0 {
		for _, name := range a.Ledger.Pinned {
			fmt.Println(name)
		}
		return nil
	}
	name := resolveRecipeName(a, strings.Join(args, " "))
	if a.Ledger.IsPinned(name) {
		a.Ledger.Unpin(name)
		fmt.Printf("unpinned %s\n", name)
	} else {
		a.Ledger.Pin(name)
		fmt.Printf("pinned %s\n", name)
	}
	a.SaveState(ctx)
	return nil
}

func cmdExport(a *app.App, args []string) error {
	if len(args) != 1 {
		return errors.New("export: file path required")
	}
	data, err := a.Ledger.ExportJSON(time.Now())
	if err != nil {
		return err
	}
	if err := os.WriteFile(args[0], data, 0o644); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	fmt.Printf("exported to %s\n", args[0])
	return nil
}

func cmdImport(ctx context.Context, a *app.App, args []string) error {
	if len(args) != 1 {
		return errors.New("import: file path required")
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read snapshot: %w", err)
	}
	if err := a.Ledger.Import(data); err != nil {
		return err
	}
	a.SaveState(ctx)
	fmt.Printf("imported %s\n", args[0])
	return nil
}

// resolveItemName forgives typos by falling back to the closest catalog
// name when no exact match exists.
func resolveItemName(a *app.App, name string) string {
	for _, it := range a.Items {
		if catalog.Key(it.Name) == catalog.Key(name) {
			return it.Name
		}
	}
	candidates := make([]string, 0, len(a.Items))
	for _, it := range a.Items {
		candidates = append(candidates, it.Name)
	}
	if best := catalog.Best(name, candidates); best != "" {
		fmt.Fprintf(os.Stderr, "using %q for %q\n", best, name)
		return best
	}
	return name
}

func resolveRecipeName(a *app.App, name string) string {
	if _, ok := a.Recipes[name]; ok {
		return name
	}
	if best := catalog.Best(name, a.Recipes.Names()); best != "" {
		if best != name {
			fmt.Fprintf(os.Stderr, "using %q for %q\n", best, name)
		}
		return best
	}
	return name
}

func describeSources(s *recipe.Sources) string {
	var parts []string
	if s.Loot {
		parts = append(parts, "loot")
	}
	if s.Harvester {
		parts = append(parts, "harvester")
	}
	if s.Quest != "" {
		parts = append(parts, "quest: "+s.Quest)
	}
	if s.Trials != "" {
		parts = append(parts, "trials: "+s.Trials)
	}
	return strings.Join(parts, ", ")
}
