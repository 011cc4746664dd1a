package store

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"stockroom/internal/inventory"
)

// Memory is an in-memory Store used by tests and local development.
// It applies the same ordering contract as Postgres: items by name
// ascending, export records by timestamp descending.
type Memory struct {
	mu      sync.RWMutex
	items   map[string]inventory.StockItem
	exports map[string]inventory.ExportRecord
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		items:   make(map[string]inventory.StockItem),
		exports: make(map[string]inventory.ExportRecord),
	}
}

func (m *Memory) ListItems(_ context.Context) ([]inventory.StockItem, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	items := make([]inventory.StockItem, 0, len(m.items))
	for _, item := range m.items {
		items = append(items, item)
	}
	coll := collate.New(language.English)
	sort.SliceStable(items, func(i, j int) bool {
		return coll.CompareString(items[i].Name, items[j].Name) < 0
	})
	return items, nil
}

func (m *Memory) CreateItem(_ context.Context, c inventory.ItemCandidate) (inventory.StockItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	item := c.Item(uuid.New().String())
	m.items[item.ID] = item
	return item, nil
}

func (m *Memory) CreateItemsBatch(ctx context.Context, cs []inventory.ItemCandidate) error {
	for _, c := range cs {
		if _, err := m.CreateItem(ctx, c); err != nil {
			return err
		}
	}
	return nil
}

func (m *Memory) UpdateItem(_ context.Context, id string, c inventory.ItemCandidate) (inventory.StockItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.items[id]; !ok {
		return inventory.StockItem{}, ErrNotFound
	}
	item := c.Item(id)
	m.items[id] = item
	return item, nil
}

func (m *Memory) DeleteItem(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.items[id]; !ok {
		return ErrNotFound
	}
	delete(m.items, id)
	return nil
}

func (m *Memory) ListExportRecords(_ context.Context) ([]inventory.ExportRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	recs := make([]inventory.ExportRecord, 0, len(m.exports))
	for _, rec := range m.exports {
		recs = append(recs, rec)
	}
	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].Timestamp.After(recs[j].Timestamp)
	})
	return recs, nil
}

func (m *Memory) GetExportRecord(_ context.Context, id string) (inventory.ExportRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	rec, ok := m.exports[id]
	if !ok {
		return inventory.ExportRecord{}, ErrNotFound
	}
	return rec, nil
}

func (m *Memory) CreateExportRecord(_ context.Context, rec inventory.ExportRecord) (inventory.ExportRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	rec.ID = uuid.New().String()
	m.exports[rec.ID] = rec
	return rec, nil
}
