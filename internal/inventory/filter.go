package inventory

// filter.go implements the table view: name search, category and
// subcategory filters, and stable sorting. The whole thing is a pure
// function over the in-memory item set; it holds no state between calls.

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// FilterAll disables a category or subcategory filter.
const FilterAll = "all"

// SortDirection orders a sorted view ascending or descending.
type SortDirection string

const (
	SortAsc SortDirection = "asc"
	SortDsc SortDirection = "dsc"
)

// FilterParams are the active table controls. Category and Subcategory
// hold either a taxonomy value or FilterAll.
type FilterParams struct {
	NameQuery     string
	Category      string
	Subcategory   string
	SortKey       string
	SortDirection SortDirection
}

// DefaultFilterParams matches the table's initial state: everything
// visible, sorted by name ascending.
func DefaultFilterParams() FilterParams {
	return FilterParams{
		Category:      FilterAll,
		Subcategory:   FilterAll,
		SortKey:       "name",
		SortDirection: SortAsc,
	}
}

// FilterSort returns the ordered view of items under p. The input slice
// is never modified.
//
// The subcategory filter is deliberately inert while the category filter
// is "all": the UI disables the subcategory selector until a category is
// chosen, and the engine mirrors that coupling.
func FilterSort(items []StockItem, p FilterParams) []StockItem {
	query := strings.ToLower(p.NameQuery)

	filtered := make([]StockItem, 0, len(items))
	for _, item := range items {
		if query != "" && !strings.Contains(strings.ToLower(item.Name), query) {
			continue
		}
		if p.Category != "" && p.Category != FilterAll && string(item.Category) != p.Category {
			continue
		}
		if p.Subcategory != "" && p.Subcategory != FilterAll &&
			p.Category != "" && p.Category != FilterAll &&
			string(item.Subcategory) != p.Subcategory {
			continue
		}
		filtered = append(filtered, item)
	}

	coll := collate.New(language.English)
	sort.SliceStable(filtered, func(i, j int) bool {
		a, b := filtered[i], filtered[j]
		if p.SortDirection == SortDsc {
			a, b = b, a
		}
		return less(coll, a, b, p.SortKey)
	})

	return filtered
}

// less compares two items on key. Unknown keys compare equal, which
// leaves the stable sort's existing order untouched.
func less(coll *collate.Collator, a, b StockItem, key string) bool {
	switch key {
	case "quantity":
		return a.Quantity < b.Quantity
	default:
		av, aok := textField(a, key)
		bv, bok := textField(b, key)
		if !aok || !bok {
			return false
		}
		return coll.CompareString(av, bv) < 0
	}
}

// textField returns the string value of a sortable text field.
func textField(item StockItem, key string) (string, bool) {
	switch key {
	case "id":
		return item.ID, true
	case "name":
		return item.Name, true
	case "category":
		return string(item.Category), true
	case "subcategory":
		return string(item.Subcategory), true
	case "location":
		return item.Location, true
	case "description":
		return item.Description, true
	case "datasheetUrl":
		return item.DatasheetURL, true
	default:
		return "", false
	}
}
