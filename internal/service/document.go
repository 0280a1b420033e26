package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"campusdocs/internal/model"
	"campusdocs/internal/repository"
	"campusdocs/internal/storage"
)

// DocumentListResult is the service-level DTO for paginated documents.
type DocumentListResult struct {
	Items []model.RenderedDocument `json:"data"`
	Total int                      `json:"total"`
}

// DocumentService is the catalog of rendered documents.
type DocumentService interface {
	// List returns documents using limit/offset and a total count. An empty kind lists all kinds.
	List(ctx context.Context, kind model.Kind, limit, offset int) (*DocumentListResult, error)

	// Get returns a single document by its ID.
	Get(ctx context.Context, id string) (*model.RenderedDocument, error)

	// Delete removes a document's file and then its record.
	Delete(ctx context.Context, id string) error

	// Purge deletes every document created before cutoff and returns how many were removed.
	Purge(ctx context.Context, cutoff time.Time) (int, error)
}

type documentService struct {
	store storage.Storage
	repo  repository.DocumentRepository
	log   zerolog.Logger
}

// NewDocumentService constructs a new DocumentService.
func NewDocumentService(store storage.Storage, repo repository.DocumentRepository, log zerolog.Logger) DocumentService {
	return &documentService{
		store: store,
		repo:  repo,
		log:   log.With().Str("component", "document_service").Logger(),
	}
}

// List returns paginated documents without exposing repository types.
func (s *documentService) List(ctx context.Context, kind model.Kind, limit, offset int) (*DocumentListResult, error) {
	if kind != "" && !kind.Valid() {
		return nil, &model.ValidationError{Field: "kind", Message: "is unknown"}
	}
	if limit <= 0 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}

	res, err := s.repo.List(ctx, repository.DocumentFilter{Kind: kind}, repository.PageQuery{Limit: limit, Offset: offset})
	if err != nil {
		return nil, err
	}
	return &DocumentListResult{Items: res.Items, Total: res.Total}, nil
}

// Get returns a document by ID.
func (s *documentService) Get(ctx context.Context, id string) (*model.RenderedDocument, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	doc, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return doc, nil
}

// Delete removes a document from storage, then deletes its record.
// A file that is already gone does not block removing the record.
func (s *documentService) Delete(ctx context.Context, id string) error {
	doc, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	return s.remove(ctx, doc)
}

const purgeBatch = 100

func (s *documentService) Purge(ctx context.Context, cutoff time.Time) (int, error) {
	removed := 0
	for {
		docs, err := s.repo.ListCreatedBefore(ctx, cutoff, purgeBatch)
		if err != nil {
			return removed, err
		}
		for i := range docs {
			if err := s.remove(ctx, &docs[i]); err != nil {
				return removed, err
			}
			removed++
		}
		if len(docs) < purgeBatch {
			return removed, nil
		}
	}
}

func (s *documentService) remove(ctx context.Context, doc *model.RenderedDocument) error {
	key := strings.TrimPrefix(doc.FilePath, "/")
	if err := s.store.Delete(ctx, key); err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("delete storage: %w", err)
		}
		s.log.Warn().Str("id", doc.ID).Str("key", key).Msg("document_file_missing")
	}
	return s.repo.Delete(ctx, doc.ID)
}
