package recipe

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	segmentSplitRE = regexp.MustCompile(`[,\n]+`)
	ingredientRE   = regexp.MustCompile(`(?i)^(\d+)x?\s*(.+)$`)
)

// Row is one raw blueprint row as scraped, before parsing.
type Row struct {
	Name           string
	Workshop       string
	IngredientText string
	Sources        *Sources
}

// ParseIngredients parses free ingredient text of the form
// "5x Metal Parts, 3 Wires". Segments that do not match the
// quantity-prefixed pattern are skipped, not errors: the upstream text
// is uncontrolled. The skipped raw segments are returned for callers
// that want to surface how lossy a parse was.
func ParseIngredients(text string) (ingredients []Ingredient, skipped []string) {
	for _, part := range segmentSplitRE.Split(text, -1) {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		m := ingredientRE.FindStringSubmatch(part)
		if m == nil {
			skipped = append(skipped, part)
			continue
		}
		qty, err := strconv.Atoi(m[1])
		if err != nil || qty <= 0 {
			skipped = append(skipped, part)
			continue
		}
		ingredients = append(ingredients, Ingredient{Qty: qty, Name: strings.TrimSpace(m[2])})
	}
	return ingredients, skipped
}

// Build assembles the recipe store from raw rows. Rows without a name
// are dropped entirely; unparseable ingredient segments are dropped
// per-segment and reported back.
func Build(rows []Row) (Store, []string) {
	store := make(Store, len(rows))
	var skipped []string
	for _, row := range rows {
		name := strings.TrimSpace(row.Name)
		if name == "" {
			continue
		}
		ingredients, bad := ParseIngredients(row.IngredientText)
		skipped = append(skipped, bad...)
		store[name] = Recipe{
			Name:        name,
			Workshop:    strings.TrimSpace(row.Workshop),
			Ingredients: ingredients,
			Sources:     row.Sources,
		}
	}
	return store, skipped
}
