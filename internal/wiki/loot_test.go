package wiki

import "testing"

const lootPage = `
<table>
<tr><th>Name</th><th>Rarity</th><th>Recycles To</th><th>Sell Price</th><th>Category</th><th>Keep for</th></tr>
<tr>
  <td><a href="/wiki/Battery">Battery</a></td><td>Uncommon</td><td>2x Metal Parts</td>
  <td>$1,250</td><td>Topside Material</td><td>2x Power Up (Quest), 3x Project II</td>
</tr>
<tr>
  <td>Syringe</td><td>Common</td><td>Cannot be Recycled</td>
  <td>200</td><td>Medical</td><td></td>
</tr>
<tr>
  <td>Scrap</td><td>Common</td><td>-</td>
  <td></td><td>Junk</td><td>Workshop upgrades</td>
</tr>
<tr><td>Short Row</td><td>Common</td></tr>
</table>`

func TestParseLootPage(t *testing.T) {
	items, err := ParseLootPage(lootPage)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("expected 3 items, got %d: %+v", len(items), items)
	}

	battery := items[0]
	if battery.Name != "Battery" || battery.Rarity != "Uncommon" {
		t.Fatalf("battery = %+v", battery)
	}
	if battery.SellPrice != 1250 {
		t.Fatalf("sell price = %d, want 1250", battery.SellPrice)
	}
	if !battery.KeepQuests || !battery.KeepProjects || battery.KeepWorkshop {
		t.Fatalf("keep flags = %+v", battery)
	}
	if battery.KeepQuestsFor == "" || battery.KeepProjectsFor == "" {
		t.Fatalf("keep justification text missing: %+v", battery)
	}
	if battery.CantRecycle {
		t.Fatalf("battery recycles to metal parts")
	}

	syringe := items[1]
	if !syringe.CantRecycle {
		t.Fatalf("syringe must be cantRecycle: %+v", syringe)
	}
	if syringe.SellPrice != 200 {
		t.Fatalf("syringe price = %d", syringe.SellPrice)
	}

	scrap := items[2]
	if !scrap.CantRecycle {
		t.Fatalf("dash recycle text must mean cantRecycle: %+v", scrap)
	}
	if !scrap.KeepWorkshop {
		t.Fatalf("scrap keep flags = %+v", scrap)
	}
	if scrap.SellPrice != 0 {
		t.Fatalf("missing price should stay 0, got %d", scrap.SellPrice)
	}
}

func TestParseLootPageMissingTable(t *testing.T) {
	if _, err := ParseLootPage("<p>maintenance</p>"); err == nil {
		t.Fatalf("expected error when loot table is absent")
	}
}
