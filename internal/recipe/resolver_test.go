package recipe

import (
	"errors"
	"reflect"
	"testing"
)

func widgetStore() Store {
	return Store{
		"Widget": {
			Name:     "Widget",
			Workshop: "Workbench 1",
			Ingredients: []Ingredient{
				{2, "Metal Parts"},
				{1, "Gear"},
			},
		},
		"Gear": {
			Name:        "Gear",
			Workshop:    "Workbench 1",
			Ingredients: []Ingredient{{3, "Metal Parts"}},
		},
	}
}

func TestResolveWidgetExample(t *testing.T) {
	plan, err := Resolve("Widget", widgetStore())
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if plan == nil {
		t.Fatalf("expected a plan")
	}
	if plan.Workshop != "Workbench 1" {
		t.Fatalf("workshop = %q", plan.Workshop)
	}
	wantTree := []Node{
		{Name: "Widget", Qty: 1, Depth: 0, Workshop: "Workbench 1"},
		{Name: "Metal Parts", Qty: 2, Depth: 1, IsBase: true},
		{Name: "Gear", Qty: 1, Depth: 1, Workshop: "Workbench 1"},
		{Name: "Metal Parts", Qty: 3, Depth: 2, IsBase: true},
	}
	if !reflect.DeepEqual(plan.Tree, wantTree) {
		t.Fatalf("tree = %+v, want %+v", plan.Tree, wantTree)
	}
	if got := plan.BaseMaterials["Metal Parts"]; got != 5 {
		t.Fatalf("Metal Parts total = %d, want 5", got)
	}
	if len(plan.BaseMaterials) != 1 {
		t.Fatalf("base materials = %+v", plan.BaseMaterials)
	}
}

func TestResolveUnknownRecipeIsNoPlan(t *testing.T) {
	plan, err := Resolve("Nonexistent", widgetStore())
	if err != nil {
		t.Fatalf("lookup miss must not be an error, got %v", err)
	}
	if plan != nil {
		t.Fatalf("expected nil plan, got %+v", plan)
	}
}

func TestResolveDeterministic(t *testing.T) {
	store := widgetStore()
	first, err := Resolve("Widget", store)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	for i := 0; i < 10; i++ {
		again, err := Resolve("Widget", store)
		if err != nil {
			t.Fatalf("resolve: %v", err)
		}
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("resolve not deterministic: %+v vs %+v", first, again)
		}
	}
}

func TestScaleLinearity(t *testing.T) {
	base, err := Resolve("Widget", widgetStore())
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	for _, n := range []int{1, 2, 7, 100} {
		scaled := base.Scale(n)
		for name, qty := range base.BaseMaterials {
			if scaled.BaseMaterials[name] != qty*n {
				t.Fatalf("scale %d: %s = %d, want %d", n, name, scaled.BaseMaterials[name], qty*n)
			}
		}
		if scaled.Tree[0].Qty != n {
			t.Fatalf("scale %d: root qty = %d", n, scaled.Tree[0].Qty)
		}
	}
}

func TestScaleDoesNotMutateOriginal(t *testing.T) {
	base, _ := Resolve("Widget", widgetStore())
	_ = base.Scale(10)
	if base.Tree[0].Qty != 1 || base.BaseMaterials["Metal Parts"] != 5 {
		t.Fatalf("scale mutated the original plan: %+v", base)
	}
}

func TestResolveCycleReturnsTypedError(t *testing.T) {
	store := Store{
		"Ouroboros": {Name: "Ouroboros", Workshop: "Workbench 1", Ingredients: []Ingredient{{1, "Scale"}}},
		"Scale":     {Name: "Scale", Workshop: "Workbench 1", Ingredients: []Ingredient{{1, "Ouroboros"}}},
	}
	plan, err := Resolve("Ouroboros", store)
	if plan != nil {
		t.Fatalf("expected no plan on cycle, got %+v", plan)
	}
	if !errors.Is(err, ErrRecipeCycle) {
		t.Fatalf("expected ErrRecipeCycle, got %v", err)
	}
}

func TestResolveRepeatedIngredientIsNotACycle(t *testing.T) {
	store := Store{
		"Kit":   {Name: "Kit", Ingredients: []Ingredient{{1, "Strap"}, {2, "Strap"}}},
		"Strap": {Name: "Strap", Ingredients: []Ingredient{{4, "Fabric"}}},
	}
	plan, err := Resolve("Kit", store)
	if err != nil {
		t.Fatalf("sibling reuse must not trip cycle detection: %v", err)
	}
	if got := plan.BaseMaterials["Fabric"]; got != 12 {
		t.Fatalf("Fabric total = %d, want 12", got)
	}
}
