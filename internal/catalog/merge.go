package catalog

// CategoryList is one equipment page's worth of items, tagged with the
// category it was scraped from.
type CategoryList struct {
	Tag   Tag
	Items []Item
}

// Merge combines the loot list with any number of equipment category
// lists into a unified catalog. Loot items come first in their original
// order; items that only exist in equipment lists follow in first-seen
// order. Merging is pure: inputs are not modified.
//
// Base attributes (rarity, category, price, keep flags) are only filled
// where the existing record has none, so a loot row's data survives an
// equipment merge. Equipment attributes overwrite by category recency.
func Merge(loot []Item, equipment []CategoryList) []Item {
	out := make([]Item, 0, len(loot))
	index := make(map[string]int, len(loot))
	for _, it := range loot {
		it.PrimaryType = TagLoot
		it.Types = []Tag{TagLoot}
		index[Key(it.Name)] = len(out)
		out = append(out, it)
	}

	type bag struct {
		tags []Tag
		item Item
	}
	acc := make(map[string]*bag)
	var order []string

	for _, list := range equipment {
		for _, src := range list.Items {
			key := Key(src.Name)
			if key == "" {
				continue
			}
			b, ok := acc[key]
			if !ok {
				b = &bag{}
				acc[key] = b
				order = append(order, key)
			}
			b.tags = append(b.tags, list.Tag)
			overwriteBase(&b.item, src)
			mergeEquipment(&b.item.Equipment, src.Equipment, list.Tag)
		}
	}

	for _, key := range order {
		b := acc[key]
		if i, ok := index[key]; ok {
			fillBase(&out[i], b.item)
			mergeAllEquipment(&out[i].Equipment, b.item.Equipment, b.tags)
			out[i].Types = append([]Tag{TagLoot}, b.tags...)
			continue
		}
		it := b.item
		it.PrimaryType = b.tags[0]
		it.Types = append([]Tag(nil), b.tags...)
		out = append(out, it)
	}
	return out
}

// overwriteBase applies last-source-wins semantics inside the equipment
// accumulator: any base field the source sets replaces what an earlier
// category put there.
func overwriteBase(dst *Item, src Item) {
	if src.Name != "" {
		dst.Name = src.Name
	}
	if src.Rarity != "" {
		dst.Rarity = src.Rarity
	}
	if src.Category != "" {
		dst.Category = src.Category
	}
	if src.SellPrice != 0 {
		dst.SellPrice = src.SellPrice
	}
	if src.RecyclesTo != "" {
		dst.RecyclesTo = src.RecyclesTo
	}
	if src.CantRecycle {
		dst.CantRecycle = true
	}
}

// fillBase extends an existing catalog record with accumulated base
// attributes without dropping anything the record already has.
func fillBase(dst *Item, src Item) {
	if dst.Rarity == "" {
		dst.Rarity = src.Rarity
	}
	if dst.Category == "" {
		dst.Category = src.Category
	}
	if dst.SellPrice == 0 {
		dst.SellPrice = src.SellPrice
	}
	if dst.RecyclesTo == "" {
		dst.RecyclesTo = src.RecyclesTo
	}
}

// mergeEquipment copies only the fields owned by the given category, so
// two categories sharing an item never clobber each other's attributes
// except where they genuinely share a field.
func mergeEquipment(dst *Equipment, src Equipment, tag Tag) {
	switch tag {
	case TagWeapon:
		dst.AmmoType = src.AmmoType
		dst.FiringMode = src.FiringMode
		dst.Damage = src.Damage
		dst.FiringRate = src.FiringRate
		dst.RelativeDPS = src.RelativeDPS
		dst.Range = src.Range
	case TagShield:
		dst.ShieldCharge = src.ShieldCharge
		dst.DamageMitigation = src.DamageMitigation
		dst.MovementPenalty = src.MovementPenalty
	case TagAugment:
		dst.WeightLimit = src.WeightLimit
		dst.BackpackSlots = src.BackpackSlots
		dst.SafePocketSlots = src.SafePocketSlots
		dst.QuickUseSlots = src.QuickUseSlots
		dst.WeaponSlots = src.WeaponSlots
		dst.ShieldCompatibility = src.ShieldCompatibility
		dst.AugmentedSlots = src.AugmentedSlots
	case TagHealing:
		dst.EffectValue = src.EffectValue
		dst.Duration = src.Duration
		dst.Description = src.Description
	case TagQuickUse, TagTrap:
		dst.Description = src.Description
	case TagGrenade:
		dst.MustBeShot = src.MustBeShot
		dst.Description = src.Description
	}
}

func mergeAllEquipment(dst *Equipment, src Equipment, tags []Tag) {
	for _, tag := range tags {
		mergeEquipment(dst, src, tag)
	}
}
