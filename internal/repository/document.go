package repository

import (
	"context"
	"time"

	"campusdocs/internal/model"
)

// DocumentRepository defines data access for rendered document records.
// Persistence only; no business rules.
type DocumentRepository interface {
	// Create inserts a new record and returns it as stored.
	Create(ctx context.Context, doc *model.RenderedDocument) (*model.RenderedDocument, error)

	// FindByID returns a record by its ID, or sql.ErrNoRows.
	FindByID(ctx context.Context, id string) (*model.RenderedDocument, error)

	// List returns a page of records, newest first, optionally restricted to one kind.
	List(ctx context.Context, filter DocumentFilter, pq PageQuery) (*PageResult[model.RenderedDocument], error)

	// ListCreatedBefore returns up to limit records older than before, oldest first.
	ListCreatedBefore(ctx context.Context, before time.Time, limit int) ([]model.RenderedDocument, error)

	// Delete removes a record by ID. It returns nil if the row was deleted or did not exist.
	Delete(ctx context.Context, id string) error
}

// DocumentFilter narrows List. A zero Kind matches every kind.
type DocumentFilter struct {
	Kind model.Kind
}

// PageQuery holds limit/offset pagination parameters.
type PageQuery struct {
	Limit  int
	Offset int
}

// PageResult is a generic pagination result wrapper.
type PageResult[T any] struct {
	Items []T
	Total int
}
