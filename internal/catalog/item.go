// Package catalog holds the unified item catalog: loot and equipment
// records scraped from separate wiki pages, merged into one collection
// keyed by normalized item name.
package catalog

import "strings"

type Tag string

const (
	TagLoot     Tag = "loot"
	TagWeapon   Tag = "weapon"
	TagShield   Tag = "shield"
	TagAugment  Tag = "augment"
	TagHealing  Tag = "healing"
	TagQuickUse Tag = "quickUse"
	TagGrenade  Tag = "grenade"
	TagTrap     Tag = "trap"
)

// MergeOrder is the fixed order equipment categories are folded into the
// catalog. Later categories win on equipment field collisions.
var MergeOrder = []Tag{TagWeapon, TagShield, TagAugment, TagHealing, TagQuickUse, TagGrenade, TagTrap}

// Item is one distinct game object. A single record may carry several
// type tags (a weapon that is also lootable keeps both).
type Item struct {
	Name       string
	Rarity     string
	Category   string
	SellPrice  int // 0 means no listed price
	RecyclesTo string
	CantRecycle bool

	KeepQuests      bool
	KeepProjects    bool
	KeepWorkshop    bool
	KeepQuestsFor   string
	KeepProjectsFor string
	KeepWorkshopFor string

	PrimaryType Tag
	Types       []Tag

	Equipment Equipment
}

// Equipment carries the type-specific attributes merged onto the base
// record. Only the fields belonging to a source's category are touched
// when that source is merged; within a shared field the most recently
// merged category wins.
type Equipment struct {
	// Weapons.
	AmmoType    string
	FiringMode  string
	Damage      float64
	FiringRate  float64
	RelativeDPS float64
	Range       float64

	// Shields.
	ShieldCharge     int
	DamageMitigation string
	MovementPenalty  string

	// Augments.
	WeightLimit         float64
	BackpackSlots       int
	SafePocketSlots     int
	QuickUseSlots       int
	WeaponSlots         int
	ShieldCompatibility string
	AugmentedSlots      string

	// Healing.
	EffectValue string
	Duration    string

	// Grenades.
	MustBeShot bool

	// Healing, quick use, grenades, traps.
	Description string
}

// Key returns the identity key for an item name: lowercase, trimmed.
// Recipe lookups deliberately do NOT use this; blueprint names are
// matched exactly.
func Key(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// HasType reports whether the item carries the given type tag.
func (it Item) HasType(tag Tag) bool {
	for _, t := range it.Types {
		if t == tag {
			return true
		}
	}
	return false
}
