package inventory

import (
	"reflect"
	"testing"
)

func testItems() []StockItem {
	return []StockItem{
		{ID: "1", Name: "Banana Plug", Category: CategoryElectronicsHardware, Subcategory: SubConnectors, Quantity: 2, Location: "Bin 1"},
		{ID: "2", Name: "arduino nano", Category: CategoryModules, Subcategory: SubMicrocontrollers, Quantity: 5, Location: "Drawer 3"},
		{ID: "3", Name: "Hall Sensor", Category: CategoryElectronicsHardware, Subcategory: SubSensors, Quantity: 8, Location: "Bin 2"},
		{ID: "4", Name: "M3 Nut", Category: CategoryMechanicalParts, Subcategory: SubFasteners, Quantity: 500, Location: "Bin 9"},
	}
}

func names(items []StockItem) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.Name
	}
	return out
}

func TestFilterSort_Pure(t *testing.T) {
	items := testItems()
	p := FilterParams{NameQuery: "n", Category: FilterAll, Subcategory: FilterAll, SortKey: "name", SortDirection: SortAsc}

	first := FilterSort(items, p)
	second := FilterSort(items, p)

	if !reflect.DeepEqual(first, second) {
		t.Error("identical inputs must yield identical output sequences")
	}
	if !reflect.DeepEqual(items, testItems()) {
		t.Error("input slice must not be modified")
	}
}

func TestFilterSort_NameQueryCaseInsensitive(t *testing.T) {
	got := FilterSort(testItems(), FilterParams{NameQuery: "NANO", Category: FilterAll, Subcategory: FilterAll, SortKey: "name", SortDirection: SortAsc})
	if want := []string{"arduino nano"}; !reflect.DeepEqual(names(got), want) {
		t.Errorf("names = %v, want %v", names(got), want)
	}
}

func TestFilterSort_CategoryFilter(t *testing.T) {
	p := DefaultFilterParams()
	p.Category = string(CategoryElectronicsHardware)

	got := FilterSort(testItems(), p)
	if len(got) != 2 {
		t.Fatalf("got %d items, want 2", len(got))
	}
	for _, item := range got {
		if item.Category != CategoryElectronicsHardware {
			t.Errorf("unexpected category %q", item.Category)
		}
	}
}

func TestFilterSort_SubcategoryInertWithoutCategory(t *testing.T) {
	// The subcategory filter must have no effect while the category
	// filter is "all".
	p := DefaultFilterParams()
	p.Subcategory = string(SubSensors)

	got := FilterSort(testItems(), p)
	if len(got) != len(testItems()) {
		t.Fatalf("subcategory filter applied without a category: got %d items, want %d", len(got), len(testItems()))
	}

	// With a category selected it becomes active.
	p.Category = string(CategoryElectronicsHardware)
	got = FilterSort(testItems(), p)
	if len(got) != 1 || got[0].Subcategory != SubSensors {
		t.Errorf("got %v, want the single Sensors item", names(got))
	}
}

func TestFilterSort_NameLocaleOrder(t *testing.T) {
	items := []StockItem{
		{ID: "1", Name: "Banana Plug"},
		{ID: "2", Name: "arduino nano"},
	}
	p := FilterParams{Category: FilterAll, Subcategory: FilterAll, SortKey: "name", SortDirection: SortAsc}

	got := FilterSort(items, p)
	// Locale order puts "arduino nano" before "Banana Plug"; a plain
	// byte comparison would sort the capital B first.
	if want := []string{"arduino nano", "Banana Plug"}; !reflect.DeepEqual(names(got), want) {
		t.Errorf("names = %v, want %v", names(got), want)
	}
}

func TestFilterSort_QuantityNumeric(t *testing.T) {
	items := []StockItem{
		{ID: "1", Name: "B", Quantity: 2},
		{ID: "2", Name: "A", Quantity: 5},
	}

	asc := FilterSort(items, FilterParams{Category: FilterAll, Subcategory: FilterAll, SortKey: "quantity", SortDirection: SortAsc})
	if asc[0].Quantity != 2 || asc[1].Quantity != 5 {
		t.Errorf("ascending quantities = %d, %d", asc[0].Quantity, asc[1].Quantity)
	}

	dsc := FilterSort(items, FilterParams{Category: FilterAll, Subcategory: FilterAll, SortKey: "quantity", SortDirection: SortDsc})
	if dsc[0].Name != "A" || dsc[1].Name != "B" {
		t.Errorf("descending names = %v, want [A B]", names(dsc))
	}
}

func TestFilterSort_DirectionReverses(t *testing.T) {
	items := testItems()
	asc := FilterSort(items, FilterParams{Category: FilterAll, Subcategory: FilterAll, SortKey: "name", SortDirection: SortAsc})
	dsc := FilterSort(items, FilterParams{Category: FilterAll, Subcategory: FilterAll, SortKey: "name", SortDirection: SortDsc})

	for i := range asc {
		if asc[i].ID != dsc[len(dsc)-1-i].ID {
			t.Fatalf("descending is not the reverse of ascending: %v vs %v", names(asc), names(dsc))
		}
	}
}

func TestFilterSort_UnknownKeyKeepsOrder(t *testing.T) {
	items := testItems()
	got := FilterSort(items, FilterParams{Category: FilterAll, Subcategory: FilterAll, SortKey: "bogus", SortDirection: SortAsc})

	if !reflect.DeepEqual(names(got), names(items)) {
		t.Errorf("unknown sort key must keep source order, got %v", names(got))
	}
}
