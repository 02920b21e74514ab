package wiki

import (
	"fmt"
	"strings"

	"github.com/appengine-ltd/raidkit/internal/recipe"
)

// ParseBlueprintsPage extracts raw recipe rows from the Blueprints page
// HTML. A missing blueprints table yields an empty result, not an
// error: crafting simply has no data until the page parses.
func ParseBlueprintsPage(pageHTML string) ([]recipe.Row, error) {
	tables, err := ParseTables(pageHTML)
	if err != nil {
		return nil, fmt.Errorf("parse blueprints page: %w", err)
	}
	table, ok := FindTable(tables, "Blueprint Name", "Crafting Recipe")
	if !ok {
		return nil, nil
	}

	var rows []recipe.Row
	for _, row := range table.DataRows() {
		// Columns: Blueprint Name, Workshop, Crafting Recipe, Loot,
		// Harvester, Quest, Trials.
		if len(row) < 3 {
			continue
		}
		name := Name(row)
		if name == "" {
			continue
		}
		rows = append(rows, recipe.Row{
			Name:           name,
			Workshop:       At(row, 1).Text,
			IngredientText: At(row, 2).Text,
			Sources: &recipe.Sources{
				Loot:      containsYes(At(row, 3).Text),
				Harvester: containsYes(At(row, 4).Text),
				Quest:     At(row, 5).LinkText,
				Trials:    At(row, 6).LinkText,
			},
		})
	}
	return rows, nil
}

func containsYes(text string) bool {
	return strings.Contains(strings.ToLower(text), "yes")
}
