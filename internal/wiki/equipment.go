package wiki

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/appengine-ltd/raidkit/internal/catalog"
)

var yesNoRE = regexp.MustCompile(`(?i)yes|no`)

// EquipmentParsers maps each equipment category to its page name and
// parser, in the catalog's fixed merge order.
func EquipmentParsers() []EquipmentPage {
	return []EquipmentPage{
		{Page: PageWeapons, Tag: catalog.TagWeapon, Parse: ParseWeaponsPage},
		{Page: PageShields, Tag: catalog.TagShield, Parse: ParseShieldsPage},
		{Page: PageAugments, Tag: catalog.TagAugment, Parse: ParseAugmentsPage},
		{Page: PageHealing, Tag: catalog.TagHealing, Parse: ParseHealingPage},
		{Page: PageQuickUse, Tag: catalog.TagQuickUse, Parse: ParseQuickUsePage},
		{Page: PageGrenades, Tag: catalog.TagGrenade, Parse: ParseGrenadesPage},
		{Page: PageTraps, Tag: catalog.TagTrap, Parse: ParseTrapsPage},
	}
}

// EquipmentPage binds one wiki page to the parser that understands its
// table shape.
type EquipmentPage struct {
	Page  string
	Tag   catalog.Tag
	Parse func(pageHTML string) []catalog.Item
}

// ParseWeaponsPage reads the per-category weapon tables. Only tables
// whose header mentions "Weapon" count; the page also carries ammo
// reference tables.
func ParseWeaponsPage(pageHTML string) []catalog.Item {
	tables, err := ParseTables(pageHTML)
	if err != nil {
		return nil
	}
	var items []catalog.Item
	for _, table := range tables {
		if !strings.Contains(table.HeaderText(), "Weapon") {
			continue
		}
		for _, row := range table.DataRows() {
			if len(row) < 7 {
				continue
			}
			name := Name(row)
			if name == "" {
				continue
			}
			items = append(items, catalog.Item{
				Name:        name,
				Category:    "Weapon",
				Rarity:      "Rare", // weapon tables carry no rarity column
				CantRecycle: true,
				Equipment: catalog.Equipment{
					AmmoType:    At(row, 2).Text,
					FiringMode:  At(row, 3).Text,
					Damage:      parseFloat(At(row, 4).Text),
					FiringRate:  parseFloat(At(row, 5).Text),
					RelativeDPS: parseFloat(At(row, 6).Text),
					Range:       parseFloat(At(row, 7).Text),
				},
			})
		}
	}
	return items
}

// ParseShieldsPage reads the single shields table. Rarity follows the
// tier encoded in the name.
func ParseShieldsPage(pageHTML string) []catalog.Item {
	tables, err := ParseTables(pageHTML)
	if err != nil || len(tables) == 0 {
		return nil
	}
	var items []catalog.Item
	for _, row := range tables[0].DataRows() {
		if len(row) < 4 {
			continue
		}
		name := Name(row)
		if name == "" {
			continue
		}
		rarity := "Uncommon"
		if strings.Contains(name, "Heavy") {
			rarity = "Epic"
		} else if strings.Contains(name, "Medium") {
			rarity = "Rare"
		}
		items = append(items, catalog.Item{
			Name:        name,
			Category:    "Shield",
			Rarity:      rarity,
			CantRecycle: true,
			Equipment: catalog.Equipment{
				ShieldCharge:     parseInt(At(row, 2).Text),
				DamageMitigation: At(row, 3).Text,
				MovementPenalty:  At(row, 4).Text,
			},
		})
	}
	return items
}

// ParseAugmentsPage reads the augment tier tables. Rarity follows the
// Mk level in the name.
func ParseAugmentsPage(pageHTML string) []catalog.Item {
	tables, err := ParseTables(pageHTML)
	if err != nil {
		return nil
	}
	var items []catalog.Item
	for _, table := range tables {
		for _, row := range table.DataRows() {
			if len(row) < 6 {
				continue
			}
			name := Name(row)
			if name == "" {
				continue
			}
			rarity := "Common"
			switch {
			case strings.Contains(name, "Mk. 3"):
				rarity = "Epic"
			case strings.Contains(name, "Mk. 2"):
				rarity = "Rare"
			case strings.Contains(name, "Mk. 1"):
				rarity = "Uncommon"
			}
			items = append(items, catalog.Item{
				Name:        name,
				Category:    "Augment",
				Rarity:      rarity,
				CantRecycle: true,
				Equipment: catalog.Equipment{
					WeightLimit:         parseFloat(At(row, 2).Text),
					BackpackSlots:       parseInt(At(row, 3).Text),
					SafePocketSlots:     parseInt(At(row, 4).Text),
					QuickUseSlots:       parseInt(At(row, 5).Text),
					WeaponSlots:         parseInt(At(row, 6).Text),
					ShieldCompatibility: At(row, 7).Text,
					AugmentedSlots:      At(row, 8).Text,
				},
			})
		}
	}
	return items
}

// ParseHealingPage reads the health/shield/stamina tables. Items
// appearing in more than one table keep their first occurrence.
func ParseHealingPage(pageHTML string) []catalog.Item {
	tables, err := ParseTables(pageHTML)
	if err != nil {
		return nil
	}
	seen := map[string]bool{}
	var items []catalog.Item
	for _, table := range tables {
		for _, row := range table.DataRows() {
			if len(row) < 4 {
				continue
			}
			name := Name(row)
			if name == "" || seen[name] {
				continue
			}
			seen[name] = true
			duration := At(row, 3).Text
			rarity := "Uncommon"
			if duration == "-" {
				rarity = "Rare" // instant-effect items are the rarer tier
			}
			items = append(items, catalog.Item{
				Name:        name,
				Category:    "Healing",
				Rarity:      rarity,
				CantRecycle: true,
				Equipment: catalog.Equipment{
					EffectValue: At(row, 2).Text,
					Duration:    duration,
					Description: At(row, 4).Text,
				},
			})
		}
	}
	return items
}

// ParseQuickUsePage reads the quick-use item tables.
func ParseQuickUsePage(pageHTML string) []catalog.Item {
	return parseDescriptionTables(pageHTML, "Quick Use", func(name string) string {
		return "Uncommon"
	})
}

// ParseGrenadesPage reads the grenade tables, sniffing for the optional
// "Must Be Shot" column.
func ParseGrenadesPage(pageHTML string) []catalog.Item {
	tables, err := ParseTables(pageHTML)
	if err != nil {
		return nil
	}
	var items []catalog.Item
	for _, table := range tables {
		for _, row := range table.DataRows() {
			if len(row) < 2 {
				continue
			}
			name := Name(row)
			if name == "" {
				continue
			}
			hasShotColumn := len(row) > 2 && yesNoRE.MatchString(At(row, 2).Text)
			descIdx := 2
			mustBeShot := false
			if hasShotColumn {
				descIdx = 3
				mustBeShot = strings.Contains(strings.ToLower(At(row, 2).Text), "yes")
			}
			rarity := "Uncommon"
			if strings.Contains(name, "Heavy") {
				rarity = "Rare"
			}
			items = append(items, catalog.Item{
				Name:        name,
				Category:    "Grenade",
				Rarity:      rarity,
				CantRecycle: true,
				Equipment: catalog.Equipment{
					MustBeShot:  mustBeShot,
					Description: At(row, descIdx).Text,
				},
			})
		}
	}
	return items
}

// ParseTrapsPage reads the trap tables.
func ParseTrapsPage(pageHTML string) []catalog.Item {
	return parseDescriptionTables(pageHTML, "Trap", func(name string) string {
		if strings.Contains(name, "Mine") {
			return "Rare"
		}
		return "Uncommon"
	})
}

// parseDescriptionTables handles the simple name + description table
// shape shared by quick-use items and traps.
func parseDescriptionTables(pageHTML, category string, rarity func(name string) string) []catalog.Item {
	tables, err := ParseTables(pageHTML)
	if err != nil {
		return nil
	}
	var items []catalog.Item
	for _, table := range tables {
		for _, row := range table.DataRows() {
			if len(row) < 2 {
				continue
			}
			name := Name(row)
			if name == "" {
				continue
			}
			items = append(items, catalog.Item{
				Name:        name,
				Category:    category,
				Rarity:      rarity(name),
				CantRecycle: true,
				Equipment: catalog.Equipment{
					Description: At(row, 2).Text,
				},
			})
		}
	}
	return items
}

func parseFloat(text string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return 0
	}
	return v
}

func parseInt(text string) int {
	v, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0
	}
	return v
}
