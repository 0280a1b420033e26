package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"campusdocs/internal/model"
	"campusdocs/internal/repository"
)

// DocumentPostgres is a PostgreSQL implementation of repository.DocumentRepository.
// It uses database/sql with parameterized queries and contains no business logic.
type DocumentPostgres struct {
	db *sql.DB
}

// NewDocumentPostgres creates a new DocumentPostgres repository.
func NewDocumentPostgres(db *sql.DB) *DocumentPostgres {
	return &DocumentPostgres{db: db}
}

var _ repository.DocumentRepository = (*DocumentPostgres)(nil)

const documentColumns = `id, kind, recipient_name, event_name, display_date, rank, file_path, fields, created_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDocument(row rowScanner) (*model.RenderedDocument, error) {
	var (
		d      model.RenderedDocument
		kind   string
		rank   sql.NullInt64
		fields []byte
	)
	if err := row.Scan(&d.ID, &kind, &d.RecipientName, &d.EventName, &d.Date, &rank, &d.FilePath, &fields, &d.CreatedAt); err != nil {
		return nil, err
	}
	d.Kind = model.Kind(kind)
	if rank.Valid {
		r := int(rank.Int64)
		d.Rank = &r
	}
	if len(fields) > 0 {
		if err := json.Unmarshal(fields, &d.Fields); err != nil {
			return nil, fmt.Errorf("decode fields of %s: %w", d.ID, err)
		}
	}
	return &d, nil
}

// Create inserts a new record and returns the stored row.
func (r *DocumentPostgres) Create(ctx context.Context, doc *model.RenderedDocument) (*model.RenderedDocument, error) {
	const q = `
		INSERT INTO rendered_documents (id, kind, recipient_name, event_name, display_date, rank, file_path, fields, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + documentColumns

	var rank sql.NullInt64
	if doc.Rank != nil {
		rank = sql.NullInt64{Int64: int64(*doc.Rank), Valid: true}
	}
	fields, err := json.Marshal(doc.Fields)
	if err != nil {
		return nil, fmt.Errorf("encode fields: %w", err)
	}

	row := r.db.QueryRowContext(ctx, q,
		doc.ID,
		string(doc.Kind),
		doc.RecipientName,
		doc.EventName,
		doc.Date,
		rank,
		doc.FilePath,
		fields,
		doc.CreatedAt,
	)
	return scanDocument(row)
}

// FindByID fetches a single record by its ID.
func (r *DocumentPostgres) FindByID(ctx context.Context, id string) (*model.RenderedDocument, error) {
	q := `SELECT ` + documentColumns + ` FROM rendered_documents WHERE id = $1`
	return scanDocument(r.db.QueryRowContext(ctx, q, id))
}

// List returns records using LIMIT/OFFSET pagination and a total count.
// An empty kind filter matches every row.
func (r *DocumentPostgres) List(ctx context.Context, filter repository.DocumentFilter, pq repository.PageQuery) (*repository.PageResult[model.RenderedDocument], error) {
	kind := string(filter.Kind)

	const qCount = `SELECT COUNT(*) FROM rendered_documents WHERE ($1 = '' OR kind = $1)`
	var total int
	if err := r.db.QueryRowContext(ctx, qCount, kind).Scan(&total); err != nil {
		return nil, err
	}

	qList := `SELECT ` + documentColumns + ` FROM rendered_documents
		WHERE ($1 = '' OR kind = $1)
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3`
	rows, err := r.db.QueryContext(ctx, qList, kind, pq.Limit, pq.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.RenderedDocument, 0)
	for rows.Next() {
		d, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &repository.PageResult[model.RenderedDocument]{
		Items: items,
		Total: total,
	}, nil
}

// ListCreatedBefore returns the oldest records created before the cutoff.
func (r *DocumentPostgres) ListCreatedBefore(ctx context.Context, before time.Time, limit int) ([]model.RenderedDocument, error) {
	q := `SELECT ` + documentColumns + ` FROM rendered_documents
		WHERE created_at < $1
		ORDER BY created_at ASC
		LIMIT $2`
	rows, err := r.db.QueryContext(ctx, q, before, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []model.RenderedDocument
	for rows.Next() {
		d, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *d)
	}
	return items, rows.Err()
}

// Delete removes a record by ID. It does not return an error if the row does not exist.
func (r *DocumentPostgres) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM rendered_documents WHERE id = $1`
	_, err := r.db.ExecContext(ctx, q, id)
	return err
}
