package wiki

import "testing"

func TestParseWeaponsPage(t *testing.T) {
	page := `
<table>
<tr><th>Weapon</th><th>Rarity</th><th>Ammo</th><th>Firing Mode</th><th>Damage</th><th>Rate</th><th>DPS</th><th>Range</th></tr>
<tr><td><a href="/wiki/Anvil">Anvil</a></td><td>-</td><td>Medium</td><td>Auto</td><td>24</td><td>5.5</td><td>132</td><td>40</td></tr>
</table>
<table>
<tr><th>Ammo Type</th><th>Notes</th></tr>
<tr><td>Light</td><td>common</td></tr>
</table>`
	items := ParseWeaponsPage(page)
	if len(items) != 1 {
		t.Fatalf("expected 1 weapon (ammo table ignored), got %d: %+v", len(items), items)
	}
	w := items[0]
	if w.Name != "Anvil" || w.Category != "Weapon" || !w.CantRecycle {
		t.Fatalf("weapon = %+v", w)
	}
	eq := w.Equipment
	if eq.AmmoType != "Medium" || eq.FiringMode != "Auto" || eq.Damage != 24 || eq.FiringRate != 5.5 || eq.RelativeDPS != 132 || eq.Range != 40 {
		t.Fatalf("equipment = %+v", eq)
	}
}

func TestParseShieldsPageRarityByTier(t *testing.T) {
	page := `
<table>
<tr><th>Shield</th><th>Rarity</th><th>Charge</th><th>Mitigation</th><th>Penalty</th></tr>
<tr><td>Light Shield</td><td>-</td><td>50</td><td>20%</td><td>None</td></tr>
<tr><td>Medium Shield</td><td>-</td><td>80</td><td>30%</td><td>Low</td></tr>
<tr><td>Heavy Shield</td><td>-</td><td>120</td><td>40%</td><td>High</td></tr>
</table>`
	items := ParseShieldsPage(page)
	if len(items) != 3 {
		t.Fatalf("expected 3 shields, got %d", len(items))
	}
	wantRarity := []string{"Uncommon", "Rare", "Epic"}
	for i, want := range wantRarity {
		if items[i].Rarity != want {
			t.Fatalf("%s rarity = %q, want %q", items[i].Name, items[i].Rarity, want)
		}
	}
	if items[0].Equipment.ShieldCharge != 50 {
		t.Fatalf("charge = %d", items[0].Equipment.ShieldCharge)
	}
}

func TestParseAugmentsPageRarityByMk(t *testing.T) {
	page := `
<table>
<tr><th>Augment</th><th>Rarity</th><th>Weight</th><th>Backpack</th><th>Safe</th><th>Quick</th><th>Weapon</th><th>Shield</th><th>Augmented</th></tr>
<tr><td>Scout Mk. 2</td><td>-</td><td>32.5</td><td>12</td><td>2</td><td>3</td><td>2</td><td>All</td><td>1</td></tr>
</table>`
	items := ParseAugmentsPage(page)
	if len(items) != 1 {
		t.Fatalf("expected 1 augment, got %d", len(items))
	}
	a := items[0]
	if a.Rarity != "Rare" {
		t.Fatalf("rarity = %q, want Rare for Mk. 2", a.Rarity)
	}
	eq := a.Equipment
	if eq.WeightLimit != 32.5 || eq.BackpackSlots != 12 || eq.SafePocketSlots != 2 || eq.QuickUseSlots != 3 || eq.WeaponSlots != 2 {
		t.Fatalf("equipment = %+v", eq)
	}
	if eq.ShieldCompatibility != "All" || eq.AugmentedSlots != "1" {
		t.Fatalf("equipment = %+v", eq)
	}
}

func TestParseHealingPageDedupsAcrossTables(t *testing.T) {
	page := `
<table>
<tr><th>Item</th><th>Rarity</th><th>Effect</th><th>Duration</th><th>Description</th></tr>
<tr><td>Bandage</td><td>-</td><td>+40 HP</td><td>8s</td><td>Heals over time</td></tr>
</table>
<table>
<tr><th>Item</th><th>Rarity</th><th>Effect</th><th>Duration</th><th>Description</th></tr>
<tr><td>Bandage</td><td>-</td><td>+10 Stamina</td><td>4s</td><td>Also restores stamina</td></tr>
<tr><td>Shot</td><td>-</td><td>+100 HP</td><td>-</td><td>Instant</td></tr>
</table>`
	items := ParseHealingPage(page)
	if len(items) != 2 {
		t.Fatalf("expected 2 healing items after dedup, got %d: %+v", len(items), items)
	}
	if items[0].Equipment.EffectValue != "+40 HP" {
		t.Fatalf("first occurrence must win: %+v", items[0].Equipment)
	}
	if items[1].Rarity != "Rare" {
		t.Fatalf("instant item rarity = %q, want Rare", items[1].Rarity)
	}
}

func TestParseGrenadesPageShotColumnSniffing(t *testing.T) {
	withColumn := `
<table>
<tr><th>Grenade</th><th>Rarity</th><th>Must Be Shot</th><th>Description</th></tr>
<tr><td>Heavy Grenade</td><td>-</td><td>Yes</td><td>Big boom</td></tr>
</table>`
	items := ParseGrenadesPage(withColumn)
	if len(items) != 1 {
		t.Fatalf("expected 1 grenade, got %d", len(items))
	}
	g := items[0]
	if !g.Equipment.MustBeShot || g.Equipment.Description != "Big boom" {
		t.Fatalf("grenade = %+v", g.Equipment)
	}
	if g.Rarity != "Rare" {
		t.Fatalf("heavy grenade rarity = %q", g.Rarity)
	}

	withoutColumn := `
<table>
<tr><th>Grenade</th><th>Rarity</th><th>Description</th></tr>
<tr><td>Smoke Grenade</td><td>-</td><td>Covers retreat</td></tr>
</table>`
	items = ParseGrenadesPage(withoutColumn)
	if len(items) != 1 {
		t.Fatalf("expected 1 grenade, got %d", len(items))
	}
	g = items[0]
	if g.Equipment.MustBeShot || g.Equipment.Description != "Covers retreat" {
		t.Fatalf("grenade = %+v", g.Equipment)
	}
}

func TestParseTrapsPageMineRarity(t *testing.T) {
	page := `
<table>
<tr><th>Trap</th><th>Rarity</th><th>Description</th></tr>
<tr><td>Proximity Mine</td><td>-</td><td>Explodes nearby</td></tr>
<tr><td>Snare Trap</td><td>-</td><td>Slows raiders</td></tr>
</table>`
	items := ParseTrapsPage(page)
	if len(items) != 2 {
		t.Fatalf("expected 2 traps, got %d", len(items))
	}
	if items[0].Rarity != "Rare" || items[1].Rarity != "Uncommon" {
		t.Fatalf("rarities = %q, %q", items[0].Rarity, items[1].Rarity)
	}
}

func TestEquipmentParsersOrder(t *testing.T) {
	pages := EquipmentParsers()
	want := []string{PageWeapons, PageShields, PageAugments, PageHealing, PageQuickUse, PageGrenades, PageTraps}
	if len(pages) != len(want) {
		t.Fatalf("expected %d parsers, got %d", len(want), len(pages))
	}
	for i, p := range pages {
		if p.Page != want[i] {
			t.Fatalf("parser %d = %q, want %q", i, p.Page, want[i])
		}
	}
}
