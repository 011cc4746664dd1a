// Package inventory provides the business logic for the stockroom
// application: the category taxonomy, row validation for spreadsheet
// imports, the table filter/sort engine, and export history records.
// This package has no HTTP or storage dependencies.
package inventory

import "time"

// StockItem is one inventory row. The ID is assigned by the store on
// insert and is never sent back out in spreadsheet exports.
type StockItem struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	Category     Category    `json:"category"`
	Subcategory  Subcategory `json:"subcategory"`
	Quantity     int         `json:"quantity"`
	Location     string      `json:"location"`
	Description  string      `json:"description,omitempty"`
	DatasheetURL string      `json:"datasheetUrl,omitempty"`
}

// ItemCandidate is a StockItem before the store has assigned an ID.
// Candidates come from the add-item form or from validated import rows.
type ItemCandidate struct {
	Name         string      `json:"name"`
	Category     Category    `json:"category"`
	Subcategory  Subcategory `json:"subcategory"`
	Quantity     int         `json:"quantity"`
	Location     string      `json:"location"`
	Description  string      `json:"description,omitempty"`
	DatasheetURL string      `json:"datasheetUrl,omitempty"`
}

// Item returns the candidate as a StockItem with the given id.
func (c ItemCandidate) Item(id string) StockItem {
	return StockItem{
		ID:           id,
		Name:         c.Name,
		Category:     c.Category,
		Subcategory:  c.Subcategory,
		Quantity:     c.Quantity,
		Location:     c.Location,
		Description:  c.Description,
		DatasheetURL: c.DatasheetURL,
	}
}

// ExportRecord is an immutable audit entry for one export action.
// Data holds the full snapshot of exported items, ids included;
// ItemCount always equals len(Data).
type ExportRecord struct {
	ID        string      `json:"id"`
	Timestamp time.Time   `json:"timestamp"`
	ItemCount int         `json:"itemCount"`
	Data      []StockItem `json:"data"`
}

// RowResult pairs one imported row's candidate with its validation
// outcome. Ephemeral: it lives only for the duration of an import
// session and is never persisted.
type RowResult struct {
	Candidate ItemCandidate `json:"candidate"`
	Valid     bool          `json:"valid"`
	Errors    []string      `json:"errors,omitempty"`
}
