package wiki

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/appengine-ltd/raidkit/internal/catalog"
)

var (
	priceRE        = regexp.MustCompile(`\d[\d,]*`)
	keepWorkshopRE = regexp.MustCompile(`(?i)workshop`)
	keepQuestsRE   = regexp.MustCompile(`(?i)quest`)
	keepProjectsRE = regexp.MustCompile(`(?i)expedition|project`)
	cantRecycleRE  = regexp.MustCompile(`(?i)cannot|can't|not recyclable|n/a`)
)

// ParseLootPage extracts the loot item list from the Loot page HTML.
// The table is located by its header text; its absence is the one fatal
// parse failure, since the loot list seeds the whole catalog.
func ParseLootPage(pageHTML string) ([]catalog.Item, error) {
	tables, err := ParseTables(pageHTML)
	if err != nil {
		return nil, fmt.Errorf("parse loot page: %w", err)
	}
	table, ok := FindTable(tables, "Name", "Sell Price")
	if !ok {
		return nil, fmt.Errorf("loot table not found")
	}

	var items []catalog.Item
	for _, row := range table.DataRows() {
		// Columns: Name, Rarity, Recycles To, Sell Price, Category, Keep for.
		if len(row) < 6 {
			continue
		}
		name := Name(row)
		if name == "" {
			continue
		}

		recycles := At(row, 2).Text
		keepText := At(row, 5).Text
		keepWorkshop := keepWorkshopRE.MatchString(keepText)
		keepQuests := keepQuestsRE.MatchString(keepText)
		keepProjects := keepProjectsRE.MatchString(keepText)

		it := catalog.Item{
			Name:        name,
			Rarity:      At(row, 1).Text,
			RecyclesTo:  recycles,
			SellPrice:   parsePrice(At(row, 3).Text),
			Category:    At(row, 4).Text,
			CantRecycle: cantRecycleRE.MatchString(recycles) || recycles == "-",

			KeepWorkshop: keepWorkshop,
			KeepQuests:   keepQuests,
			KeepProjects: keepProjects,
		}
		if keepWorkshop {
			it.KeepWorkshopFor = keepText
		}
		if keepQuests {
			it.KeepQuestsFor = keepText
		}
		if keepProjects {
			it.KeepProjectsFor = keepText
		}
		items = append(items, it)
	}
	return items, nil
}

func parsePrice(text string) int {
	m := priceRE.FindString(text)
	if m == "" {
		return 0
	}
	n, err := strconv.Atoi(strings.ReplaceAll(m, ",", ""))
	if err != nil {
		return 0
	}
	return n
}
