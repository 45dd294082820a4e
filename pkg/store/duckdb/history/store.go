package history

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/secnet-tools/nsg-report/pkg/models/store"
	"github.com/secnet-tools/nsg-report/pkg/store/duckdb"
)

// Store records export actions. Writes are best-effort from the caller's
// point of view: a failed history insert never fails an export.
type Store interface {
	Add(ctx context.Context, record store.ExportRecord) error
	List(ctx context.Context, limit int) ([]store.ExportRecord, error)
}

type historyStore struct {
	db *sql.DB
}

func NewStore(db *sql.DB) (Store, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &historyStore{db: db}, nil
}

func (h *historyStore) Add(ctx context.Context, record store.ExportRecord) error {
	query := `
		INSERT INTO export_history (subject, format, file_name, size_bytes, generated_at)
		VALUES (?, ?, ?, ?, ?)`

	tx := duckdb.GetTransaction(ctx)
	var err error
	if tx == nil {
		_, err = h.db.ExecContext(ctx, query,
			record.Subject, record.Format, record.FileName, record.SizeBytes, record.GeneratedAt)
	} else {
		_, err = tx.ExecContext(ctx, query,
			record.Subject, record.Format, record.FileName, record.SizeBytes, record.GeneratedAt)
	}
	if err != nil {
		return fmt.Errorf("insert export record: %w", err)
	}
	return nil
}

func (h *historyStore) List(ctx context.Context, limit int) ([]store.ExportRecord, error) {
	if limit <= 0 {
		limit = 50
	}
	query := `
		SELECT subject, format, file_name, size_bytes, generated_at
		FROM export_history
		ORDER BY generated_at DESC
		LIMIT ?`

	rows, err := h.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("query export history: %w", err)
	}
	defer rows.Close()

	records := make([]store.ExportRecord, 0)
	for rows.Next() {
		var (
			r           store.ExportRecord
			generatedAt time.Time
		)
		if err := rows.Scan(&r.Subject, &r.Format, &r.FileName, &r.SizeBytes, &generatedAt); err != nil {
			return nil, err
		}
		r.GeneratedAt = generatedAt
		records = append(records, r)
	}
	return records, rows.Err()
}
