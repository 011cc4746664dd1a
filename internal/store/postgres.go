package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"stockroom/internal/inventory"
)

// DBTX is the subset of pgx operations the store uses.
// Satisfied by both *pgxpool.Pool and pgx.Tx.
type DBTX interface {
	Exec(context.Context, string, ...interface{}) (pgconn.CommandTag, error)
	Query(context.Context, string, ...interface{}) (pgx.Rows, error)
	QueryRow(context.Context, string, ...interface{}) pgx.Row
	SendBatch(context.Context, *pgx.Batch) pgx.BatchResults
}

// Postgres implements Store on top of a pgx connection pool.
type Postgres struct {
	db DBTX
}

// NewPostgres creates a Postgres store.
func NewPostgres(pool *pgxpool.Pool) *Postgres {
	return &Postgres{db: pool}
}

// EnsureSchema creates the stockroom tables if they do not exist yet.
func (p *Postgres) EnsureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS stock_items (
	id            UUID PRIMARY KEY,
	name          TEXT NOT NULL,
	category      TEXT NOT NULL,
	subcategory   TEXT NOT NULL,
	quantity      INTEGER NOT NULL CHECK (quantity >= 0),
	location      TEXT NOT NULL,
	description   TEXT NOT NULL DEFAULT '',
	datasheet_url TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS export_records (
	id         UUID PRIMARY KEY,
	ts         TIMESTAMPTZ NOT NULL,
	item_count INTEGER NOT NULL,
	data       JSONB NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_stock_items_name ON stock_items (name);
CREATE INDEX IF NOT EXISTS idx_export_records_ts ON export_records (ts DESC);
`
	if _, err := p.db.Exec(ctx, ddl); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}

const itemColumns = "id, name, category, subcategory, quantity, location, description, datasheet_url"

// scanItem reads one stock_items row.
func scanItem(row pgx.Row) (inventory.StockItem, error) {
	var item inventory.StockItem
	err := row.Scan(
		&item.ID, &item.Name, &item.Category, &item.Subcategory,
		&item.Quantity, &item.Location, &item.Description, &item.DatasheetURL,
	)
	return item, err
}

// ListItems returns all items sorted by name ascending.
func (p *Postgres) ListItems(ctx context.Context) ([]inventory.StockItem, error) {
	rows, err := p.db.Query(ctx,
		"SELECT "+itemColumns+" FROM stock_items ORDER BY name ASC")
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()

	items := []inventory.StockItem{}
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	return items, nil
}

// CreateItem inserts a candidate and returns the stored item with its
// assigned id.
func (p *Postgres) CreateItem(ctx context.Context, c inventory.ItemCandidate) (inventory.StockItem, error) {
	item := c.Item(uuid.New().String())
	_, err := p.db.Exec(ctx,
		`INSERT INTO stock_items (id, name, category, subcategory, quantity, location, description, datasheet_url)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		item.ID, item.Name, item.Category, item.Subcategory,
		item.Quantity, item.Location, item.Description, item.DatasheetURL,
	)
	if err != nil {
		return inventory.StockItem{}, fmt.Errorf("create item: %w", err)
	}
	return item, nil
}

// CreateItemsBatch inserts all candidates in a single batch round trip.
func (p *Postgres) CreateItemsBatch(ctx context.Context, cs []inventory.ItemCandidate) error {
	batch := &pgx.Batch{}
	for _, c := range cs {
		batch.Queue(
			`INSERT INTO stock_items (id, name, category, subcategory, quantity, location, description, datasheet_url)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			uuid.New().String(), c.Name, c.Category, c.Subcategory,
			c.Quantity, c.Location, c.Description, c.DatasheetURL,
		)
	}
	results := p.db.SendBatch(ctx, batch)
	defer results.Close()
	for range cs {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("batch insert: %w", err)
		}
	}
	return nil
}

// UpdateItem replaces every field but the id and returns the updated row.
func (p *Postgres) UpdateItem(ctx context.Context, id string, c inventory.ItemCandidate) (inventory.StockItem, error) {
	row := p.db.QueryRow(ctx,
		`UPDATE stock_items
		 SET name = $2, category = $3, subcategory = $4, quantity = $5,
		     location = $6, description = $7, datasheet_url = $8
		 WHERE id = $1
		 RETURNING `+itemColumns,
		id, c.Name, c.Category, c.Subcategory,
		c.Quantity, c.Location, c.Description, c.DatasheetURL,
	)
	item, err := scanItem(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return inventory.StockItem{}, ErrNotFound
	}
	if err != nil {
		return inventory.StockItem{}, fmt.Errorf("update item: %w", err)
	}
	return item, nil
}

// DeleteItem removes an item by id.
func (p *Postgres) DeleteItem(ctx context.Context, id string) error {
	tag, err := p.db.Exec(ctx, "DELETE FROM stock_items WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// ListExportRecords returns export history newest first.
func (p *Postgres) ListExportRecords(ctx context.Context) ([]inventory.ExportRecord, error) {
	rows, err := p.db.Query(ctx,
		"SELECT id, ts, item_count, data FROM export_records ORDER BY ts DESC")
	if err != nil {
		return nil, fmt.Errorf("list export records: %w", err)
	}
	defer rows.Close()

	recs := []inventory.ExportRecord{}
	for rows.Next() {
		rec, err := scanExportRecord(rows)
		if err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list export records: %w", err)
	}
	return recs, nil
}

// GetExportRecord fetches one export record by id.
func (p *Postgres) GetExportRecord(ctx context.Context, id string) (inventory.ExportRecord, error) {
	row := p.db.QueryRow(ctx,
		"SELECT id, ts, item_count, data FROM export_records WHERE id = $1", id)
	rec, err := scanExportRecord(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return inventory.ExportRecord{}, ErrNotFound
	}
	return rec, err
}

// CreateExportRecord persists a new history entry and returns it with
// its assigned id.
func (p *Postgres) CreateExportRecord(ctx context.Context, rec inventory.ExportRecord) (inventory.ExportRecord, error) {
	data, err := json.Marshal(rec.Data)
	if err != nil {
		return inventory.ExportRecord{}, fmt.Errorf("encode snapshot: %w", err)
	}
	rec.ID = uuid.New().String()
	_, err = p.db.Exec(ctx,
		"INSERT INTO export_records (id, ts, item_count, data) VALUES ($1, $2, $3, $4)",
		rec.ID, rec.Timestamp, rec.ItemCount, data,
	)
	if err != nil {
		return inventory.ExportRecord{}, fmt.Errorf("create export record: %w", err)
	}
	return rec, nil
}

// scanExportRecord reads one export_records row, decoding the snapshot.
func scanExportRecord(row pgx.Row) (inventory.ExportRecord, error) {
	var rec inventory.ExportRecord
	var data []byte
	if err := row.Scan(&rec.ID, &rec.Timestamp, &rec.ItemCount, &data); err != nil {
		return inventory.ExportRecord{}, err
	}
	if err := json.Unmarshal(data, &rec.Data); err != nil {
		return inventory.ExportRecord{}, fmt.Errorf("decode snapshot: %w", err)
	}
	return rec, nil
}
