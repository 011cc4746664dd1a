package inventory

// export.go shapes export history records and the exported workbook.
// The record is persisted before any workbook is produced; a failed
// workbook write never removes an already written record (the audit
// trail outlives the download).

import (
	"fmt"
	"time"

	"stockroom/internal/sheet"
)

// ExportSheetName is the sheet exported items are written to.
const ExportSheetName = "Inventory"

// ExportColumns is the fixed export column order. The id column is
// deliberately absent: store identities never leave through a workbook.
var ExportColumns = []string{
	"name", "category", "subcategory", "quantity", "location", "description", "datasheetUrl",
}

// exportWidths are the column width hints for ExportColumns, in
// character units.
var exportWidths = []float64{30, 20, 20, 10, 20, 40, 40}

// NewExportRecord packages the exported item sequence into a history
// record. Data is a copy of items so later edits to the live slice
// cannot reach into the snapshot. The ID is assigned by the store.
func NewExportRecord(items []StockItem, now time.Time) ExportRecord {
	snapshot := make([]StockItem, len(items))
	copy(snapshot, items)
	return ExportRecord{
		Timestamp: now,
		ItemCount: len(snapshot),
		Data:      snapshot,
	}
}

// BuildWorkbook renders items to the "Inventory" workbook and returns
// the encoded .xlsx bytes.
func BuildWorkbook(items []StockItem) ([]byte, error) {
	rows := make([][]interface{}, len(items))
	for i, item := range items {
		rows[i] = []interface{}{
			item.Name,
			string(item.Category),
			string(item.Subcategory),
			item.Quantity,
			item.Location,
			item.Description,
			item.DatasheetURL,
		}
	}
	return sheet.WriteWorkbook(ExportSheetName, ExportColumns, rows, exportWidths)
}

// ExportFileName returns the download name for an export taken at t.
// Re-downloads of a history record use the record's own timestamp, so
// the file is named for the original export, not the download.
func ExportFileName(t time.Time) string {
	return fmt.Sprintf("inventory_export_%s.xlsx", t.UTC().Format("2006-01-02"))
}
