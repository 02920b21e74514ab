package wiki

import "github.com/appengine-ltd/raidkit/internal/catalog"

// FallbackItems is a minimal offline item set so the tool still works
// when the wiki is unreachable.
func FallbackItems() []catalog.Item {
	return []catalog.Item{
		{
			Name:        "Syringe",
			Rarity:      "Common",
			RecyclesTo:  "Cannot be Recycled",
			SellPrice:   200,
			Category:    "Medical",
			CantRecycle: true,
		},
		{
			Name:            "Water Pump",
			Rarity:          "Rare",
			RecyclesTo:      "6x Metal Parts",
			SellPrice:       2000,
			Category:        "Recyclable",
			KeepProjects:    true,
			KeepProjectsFor: "5x Project IV",
		},
		{
			Name:            "Battery",
			Rarity:          "Uncommon",
			RecyclesTo:      "2x Metal Parts",
			SellPrice:       250,
			Category:        "Topside Material",
			KeepQuests:      true,
			KeepQuestsFor:   "2x Power Up",
			KeepProjects:    true,
			KeepProjectsFor: "3x Project II",
		},
		{
			Name:            "Cooling Fan",
			Rarity:          "Rare",
			RecyclesTo:      "14x Plastic Parts, 4x Wires",
			SellPrice:       2000,
			Category:        "Recyclable",
			KeepProjects:    true,
			KeepProjectsFor: "1x Project III",
		},
	}
}
