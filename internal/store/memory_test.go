package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"stockroom/internal/inventory"
)

func candidate(name string) inventory.ItemCandidate {
	return inventory.ItemCandidate{
		Name:        name,
		Category:    inventory.CategoryModules,
		Subcategory: inventory.SubPower,
		Quantity:    1,
		Location:    "Drawer 1",
	}
}

func TestMemory_ListItemsNameOrder(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	for _, name := range []string{"Zener Diode", "arduino nano", "Banana Plug"} {
		if _, err := m.CreateItem(ctx, candidate(name)); err != nil {
			t.Fatalf("CreateItem(%q) error = %v", name, err)
		}
	}

	items, err := m.ListItems(ctx)
	if err != nil {
		t.Fatalf("ListItems() error = %v", err)
	}
	// Locale collation, not byte order: lowercase "arduino" sorts first.
	want := []string{"arduino nano", "Banana Plug", "Zener Diode"}
	if len(items) != len(want) {
		t.Fatalf("got %d items, want %d", len(items), len(want))
	}
	for i, name := range want {
		if items[i].Name != name {
			t.Errorf("items[%d].Name = %q, want %q", i, items[i].Name, name)
		}
	}
}

func TestMemory_CreateAssignsIDs(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	a, err := m.CreateItem(ctx, candidate("A"))
	if err != nil {
		t.Fatalf("CreateItem() error = %v", err)
	}
	b, err := m.CreateItem(ctx, candidate("B"))
	if err != nil {
		t.Fatalf("CreateItem() error = %v", err)
	}
	if a.ID == "" || b.ID == "" || a.ID == b.ID {
		t.Errorf("ids = %q, %q; want distinct non-empty ids", a.ID, b.ID)
	}
}

func TestMemory_CreateItemsBatch(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	cs := []inventory.ItemCandidate{candidate("A"), candidate("B"), candidate("C")}
	if err := m.CreateItemsBatch(ctx, cs); err != nil {
		t.Fatalf("CreateItemsBatch() error = %v", err)
	}

	items, err := m.ListItems(ctx)
	if err != nil {
		t.Fatalf("ListItems() error = %v", err)
	}
	if len(items) != 3 {
		t.Errorf("got %d items, want 3", len(items))
	}
}

func TestMemory_UpdateItem(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	created, err := m.CreateItem(ctx, candidate("ESP32"))
	if err != nil {
		t.Fatalf("CreateItem() error = %v", err)
	}

	c := candidate("ESP32-S3")
	c.Quantity = 12
	updated, err := m.UpdateItem(ctx, created.ID, c)
	if err != nil {
		t.Fatalf("UpdateItem() error = %v", err)
	}
	if updated.ID != created.ID {
		t.Errorf("update changed id: %q -> %q", created.ID, updated.ID)
	}
	if updated.Name != "ESP32-S3" || updated.Quantity != 12 {
		t.Errorf("updated = %+v", updated)
	}

	if _, err := m.UpdateItem(ctx, "missing", c); !errors.Is(err, ErrNotFound) {
		t.Errorf("UpdateItem(missing) err = %v, want ErrNotFound", err)
	}
}

func TestMemory_DeleteItem(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	created, err := m.CreateItem(ctx, candidate("Relay"))
	if err != nil {
		t.Fatalf("CreateItem() error = %v", err)
	}

	if err := m.DeleteItem(ctx, created.ID); err != nil {
		t.Fatalf("DeleteItem() error = %v", err)
	}
	if err := m.DeleteItem(ctx, created.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("second delete err = %v, want ErrNotFound", err)
	}

	items, err := m.ListItems(ctx)
	if err != nil {
		t.Fatalf("ListItems() error = %v", err)
	}
	if len(items) != 0 {
		t.Errorf("got %d items after delete, want 0", len(items))
	}
}

func TestMemory_ExportRecordsNewestFirst(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()
	base := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)

	for _, offset := range []time.Duration{0, 48 * time.Hour, 24 * time.Hour} {
		rec := inventory.ExportRecord{Timestamp: base.Add(offset), ItemCount: 0}
		if _, err := m.CreateExportRecord(ctx, rec); err != nil {
			t.Fatalf("CreateExportRecord() error = %v", err)
		}
	}

	recs, err := m.ListExportRecords(ctx)
	if err != nil {
		t.Fatalf("ListExportRecords() error = %v", err)
	}
	if len(recs) != 3 {
		t.Fatalf("got %d records, want 3", len(recs))
	}
	for i := 1; i < len(recs); i++ {
		if recs[i].Timestamp.After(recs[i-1].Timestamp) {
			t.Errorf("records not newest-first: %v before %v", recs[i-1].Timestamp, recs[i].Timestamp)
		}
	}
}

func TestMemory_GetExportRecord(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	rec := inventory.ExportRecord{
		Timestamp: time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC),
		ItemCount: 1,
		Data:      []inventory.StockItem{{ID: "a", Name: "Relay"}},
	}
	stored, err := m.CreateExportRecord(ctx, rec)
	if err != nil {
		t.Fatalf("CreateExportRecord() error = %v", err)
	}
	if stored.ID == "" {
		t.Fatal("store must assign a record id")
	}

	got, err := m.GetExportRecord(ctx, stored.ID)
	if err != nil {
		t.Fatalf("GetExportRecord() error = %v", err)
	}
	if got.ItemCount != 1 || len(got.Data) != 1 || got.Data[0].Name != "Relay" {
		t.Errorf("record = %+v", got)
	}

	if _, err := m.GetExportRecord(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}
