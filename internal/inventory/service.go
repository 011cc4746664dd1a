package inventory

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"stockroom/internal/sheet"
)

// Store is the persistence gateway contract the service depends on.
// Implementations assign ids on insert and own the canonical ordering:
// items list by name ascending, export records by timestamp descending.
type Store interface {
	ListItems(ctx context.Context) ([]StockItem, error)
	CreateItem(ctx context.Context, c ItemCandidate) (StockItem, error)
	CreateItemsBatch(ctx context.Context, cs []ItemCandidate) error
	UpdateItem(ctx context.Context, id string, c ItemCandidate) (StockItem, error)
	DeleteItem(ctx context.Context, id string) error

	ListExportRecords(ctx context.Context) ([]ExportRecord, error)
	GetExportRecord(ctx context.Context, id string) (ExportRecord, error)
	CreateExportRecord(ctx context.Context, rec ExportRecord) (ExportRecord, error)
}

// Service orchestrates the inventory: CRUD with candidate validation,
// import sessions, and export history.
type Service struct {
	store Store
	now   func() time.Time

	mu       sync.RWMutex
	sessions map[string]*ImportSession
}

// NewService creates a Service backed by store.
func NewService(store Store) *Service {
	return &Service{
		store:    store,
		now:      time.Now,
		sessions: make(map[string]*ImportSession),
	}
}

// ImportSession holds the validated rows of one uploaded workbook while
// the user reviews them. Rows keep spreadsheet order. Sessions live in
// memory only and disappear on commit, discard, or restart.
type ImportSession struct {
	ID       string      `json:"id"`
	FileName string      `json:"fileName"`
	Rows     []RowResult `json:"rows"`
	Total    int         `json:"total"`
	Valid    int         `json:"valid"`
	Invalid  int         `json:"invalid"`
}

// ValidCandidates returns the candidates of valid rows only, in
// spreadsheet order. Invalid rows are never sent onward.
func (s *ImportSession) ValidCandidates() []ItemCandidate {
	var valid []ItemCandidate
	for _, row := range s.Rows {
		if row.Valid {
			valid = append(valid, row.Candidate)
		}
	}
	return valid
}

// ListItems returns the filtered, sorted view of the current item set.
func (s *Service) ListItems(ctx context.Context, p FilterParams) ([]StockItem, error) {
	items, err := s.store.ListItems(ctx)
	if err != nil {
		return nil, err
	}
	return FilterSort(items, p), nil
}

// CreateItem validates the candidate and inserts it.
func (s *Service) CreateItem(ctx context.Context, c ItemCandidate) (StockItem, error) {
	if errs := ValidateCandidate(c); len(errs) > 0 {
		return StockItem{}, &ValidationError{Violations: errs}
	}
	return s.store.CreateItem(ctx, c)
}

// UpdateItem validates the candidate and replaces every field but the id.
func (s *Service) UpdateItem(ctx context.Context, id string, c ItemCandidate) (StockItem, error) {
	if errs := ValidateCandidate(c); len(errs) > 0 {
		return StockItem{}, &ValidationError{Violations: errs}
	}
	return s.store.UpdateItem(ctx, id, c)
}

// DeleteItem removes an item by id.
func (s *Service) DeleteItem(ctx context.Context, id string) error {
	return s.store.DeleteItem(ctx, id)
}

// StartImport parses an uploaded workbook, validates every row, and
// registers a session for review. The whole file is rejected before any
// row is validated when required columns are missing from the header.
func (s *Service) StartImport(ctx context.Context, fileName string, r io.Reader) (*ImportSession, error) {
	headers, rows, err := sheet.ReadWorkbook(r)
	if err != nil {
		return nil, err
	}

	if missing := MissingColumns(headers); len(missing) > 0 {
		return nil, fmt.Errorf("missing required columns: %s", strings.Join(missing, ", "))
	}

	idx := MakeHeaderIndex(headers)
	results := make([]RowResult, 0, len(rows))
	valid := 0
	for _, row := range rows {
		res := ValidateRow(row, idx)
		if res.Valid {
			valid++
		}
		results = append(results, res)
	}

	session := &ImportSession{
		ID:       uuid.New().String(),
		FileName: fileName,
		Rows:     results,
		Total:    len(results),
		Valid:    valid,
		Invalid:  len(results) - valid,
	}

	s.mu.Lock()
	s.sessions[session.ID] = session
	s.mu.Unlock()

	slog.InfoContext(ctx, "import session created",
		"session_id", session.ID,
		"file", fileName,
		"total", session.Total,
		"valid", session.Valid,
		"invalid", session.Invalid,
	)
	return session, nil
}

// GetImport returns a registered session.
func (s *Service) GetImport(id string) (*ImportSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

// DiscardImport drops a session without importing anything.
func (s *Service) DiscardImport(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[id]; !ok {
		return ErrSessionNotFound
	}
	delete(s.sessions, id)
	return nil
}

// CommitImport inserts the session's valid candidates as a batch and
// returns the refreshed item set (the store, not the session, is
// authoritative for assigned ids and ordering after an import) plus the
// number of items imported. Commits with no valid rows are refused.
func (s *Service) CommitImport(ctx context.Context, id string) ([]StockItem, int, error) {
	session, err := s.GetImport(id)
	if err != nil {
		return nil, 0, err
	}

	candidates := session.ValidCandidates()
	if len(candidates) == 0 {
		return nil, 0, ErrNoValidItems
	}

	if err := s.store.CreateItemsBatch(ctx, candidates); err != nil {
		return nil, 0, err
	}

	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()

	items, err := s.store.ListItems(ctx)
	if err != nil {
		return nil, 0, err
	}

	slog.InfoContext(ctx, "import committed",
		"session_id", id,
		"imported", len(candidates),
	)
	return items, len(candidates), nil
}

// ExportView records and renders an export of the view selected by p.
// The history record is persisted first; only then is the workbook
// produced. A workbook failure leaves the record in place.
func (s *Service) ExportView(ctx context.Context, p FilterParams) (ExportRecord, []byte, string, error) {
	items, err := s.ListItems(ctx, p)
	if err != nil {
		return ExportRecord{}, nil, "", err
	}

	rec, err := s.store.CreateExportRecord(ctx, NewExportRecord(items, s.now()))
	if err != nil {
		return ExportRecord{}, nil, "", err
	}

	file, err := BuildWorkbook(items)
	if err != nil {
		// The audit entry stays; only the download failed.
		slog.ErrorContext(ctx, "workbook generation failed after record write",
			"record_id", rec.ID, "error", err)
		return rec, nil, "", err
	}

	slog.InfoContext(ctx, "export recorded", "record_id", rec.ID, "items", rec.ItemCount)
	return rec, file, ExportFileName(rec.Timestamp), nil
}

// ListExports returns export history, newest first.
func (s *Service) ListExports(ctx context.Context) ([]ExportRecord, error) {
	return s.store.ListExportRecords(ctx)
}

// DownloadExport regenerates the workbook for a past export from its
// stored snapshot. The filename carries the original export date.
func (s *Service) DownloadExport(ctx context.Context, id string) ([]byte, string, error) {
	rec, err := s.store.GetExportRecord(ctx, id)
	if err != nil {
		return nil, "", err
	}
	file, err := BuildWorkbook(rec.Data)
	if err != nil {
		return nil, "", err
	}
	return file, ExportFileName(rec.Timestamp), nil
}
