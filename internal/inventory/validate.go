package inventory

// validate.go provides row-level validation for imported spreadsheet data.
//
// Validation happens at two levels:
//  1. Header validation: the required columns must all be present, or the
//     whole file is rejected before any row is looked at.
//  2. Row validation: each rule is checked independently and every
//     violation is collected, so the preview can show all problems for a
//     row at once. The one exception is the subcategory rule, which only
//     runs when the category itself is valid (there is nothing to check
//     membership against otherwise).
//
// The returned candidate always carries the coerced values, valid or not,
// so callers can display exactly what would have been imported.

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// RequiredColumns are the header names an import file must contain.
// description and datasheetUrl are optional.
var RequiredColumns = []string{"name", "category", "subcategory", "quantity", "location"}

// maxQuantity is the first float64 value that no longer fits in an int.
// Quantities at or above it are rejected before the int conversion.
const maxQuantity = float64(math.MaxInt64)

// HeaderIndex maps column names to their position in a data row.
type HeaderIndex map[string]int

// MakeHeaderIndex builds a HeaderIndex from a header row.
// Duplicate headers keep the first occurrence.
func MakeHeaderIndex(headers []string) HeaderIndex {
	idx := make(HeaderIndex, len(headers))
	for i, h := range headers {
		h = strings.TrimSpace(h)
		if _, ok := idx[h]; !ok {
			idx[h] = i
		}
	}
	return idx
}

// MissingColumns returns the required columns absent from headers, in
// RequiredColumns order. Empty result means the header row is acceptable.
func MissingColumns(headers []string) []string {
	idx := MakeHeaderIndex(headers)
	var missing []string
	for _, col := range RequiredColumns {
		if _, ok := idx[col]; !ok {
			missing = append(missing, col)
		}
	}
	return missing
}

// cell returns the trimmed value of the named column, or "" when the
// column is absent or the row is short.
func cell(row []string, idx HeaderIndex, name string) string {
	pos, ok := idx[name]
	if !ok || pos >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[pos])
}

// ValidateRow validates a single spreadsheet row and returns the typed
// candidate plus every validation error found.
func ValidateRow(row []string, idx HeaderIndex) RowResult {
	var errs []string

	category := Category(cell(row, idx, "category"))
	subcategory := Subcategory(cell(row, idx, "subcategory"))

	if !ValidCategory(category) {
		errs = append(errs, fmt.Sprintf("Invalid category: %s", orEmpty(string(category))))
	} else if !ValidSubcategory(category, subcategory) {
		errs = append(errs, fmt.Sprintf("Invalid subcategory '%s' for category '%s'",
			orEmpty(string(subcategory)), category))
	}

	rawQty := cell(row, idx, "quantity")
	qty, err := strconv.ParseFloat(rawQty, 64)
	if err != nil || math.IsNaN(qty) || math.IsInf(qty, 0) || qty < 0 || qty >= maxQuantity {
		errs = append(errs, "Quantity must be a non-negative number.")
	}
	// NaN, infinities and values past the int range have no meaningful
	// integer form; converting them would produce garbage quantities.
	if err != nil || math.IsNaN(qty) || math.IsInf(qty, 0) || qty >= maxQuantity {
		qty = 0
	}

	name := cell(row, idx, "name")
	if name == "" {
		errs = append(errs, "Name is required.")
	}

	location := cell(row, idx, "location")
	if location == "" {
		errs = append(errs, "Location is required.")
	}

	return RowResult{
		Candidate: ItemCandidate{
			Name:         name,
			Category:     category,
			Subcategory:  subcategory,
			Quantity:     int(qty),
			Location:     location,
			Description:  cell(row, idx, "description"),
			DatasheetURL: cell(row, idx, "datasheetUrl"),
		},
		Valid:  len(errs) == 0,
		Errors: errs,
	}
}

// ValidateCandidate checks a candidate coming from the add/edit form.
// Same rules as ValidateRow, minus the string coercion.
func ValidateCandidate(c ItemCandidate) []string {
	var errs []string

	if !ValidCategory(c.Category) {
		errs = append(errs, fmt.Sprintf("Invalid category: %s", orEmpty(string(c.Category))))
	} else if !ValidSubcategory(c.Category, c.Subcategory) {
		errs = append(errs, fmt.Sprintf("Invalid subcategory '%s' for category '%s'",
			orEmpty(string(c.Subcategory)), c.Category))
	}
	if c.Quantity < 0 {
		errs = append(errs, "Quantity must be a non-negative number.")
	}
	if strings.TrimSpace(c.Name) == "" {
		errs = append(errs, "Name is required.")
	}
	if strings.TrimSpace(c.Location) == "" {
		errs = append(errs, "Location is required.")
	}
	return errs
}

// orEmpty substitutes the display placeholder for blank values in
// validation messages.
func orEmpty(s string) string {
	if s == "" {
		return "(empty)"
	}
	return s
}
