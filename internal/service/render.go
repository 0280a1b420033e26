package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"campusdocs/internal/model"
	"campusdocs/internal/render"
	"campusdocs/internal/repository"
	"campusdocs/internal/storage"
)

var tracer = otel.Tracer("campusdocs/internal/service")

// Renderer draws one document. *render.Renderer implements it.
type Renderer interface {
	Render(req model.RenderRequest) (image.Image, error)
}

// ItemResult is the outcome of one batch item. Exactly one of Document and Err is set.
type ItemResult struct {
	Document *model.RenderedDocument
	Err      error
}

// RenderService produces documents: render, write the PNG, then record it.
// A returned document's file is fully written before the call returns.
type RenderService interface {
	Certificate(ctx context.Context, req model.CertificateRequest) (*model.RenderedDocument, error)

	// BulkCertificates validates every item first and returns a *model.ValidationError
	// without rendering anything if one is invalid. Otherwise items are produced
	// concurrently and the results are aligned with reqs.
	BulkCertificates(ctx context.Context, reqs []model.CertificateRequest) ([]ItemResult, error)

	// IDCards produces one card per item. Invalid items fail on their own.
	IDCards(ctx context.Context, reqs []model.IDCardRequest) ([]ItemResult, error)

	Invitation(ctx context.Context, req model.InvitationRequest) (*model.RenderedDocument, error)
}

// RenderOptions tunes a RenderService.
type RenderOptions struct {
	// BatchConcurrency caps parallel items of a batch; 0 means unbounded.
	BatchConcurrency int
	// CleanupOrphans deletes a written file when its record cannot be saved.
	CleanupOrphans bool
	Stamper        *storage.Stamper
	Metrics        *Metrics
	Logger         zerolog.Logger
	Now            func() time.Time
}

type renderService struct {
	renderer Renderer
	store    storage.Storage
	repo     repository.DocumentRepository

	concurrency    int
	cleanupOrphans bool
	stamper        *storage.Stamper
	metrics        *Metrics
	log            zerolog.Logger
	now            func() time.Time
}

// NewRenderService constructs a RenderService.
func NewRenderService(r Renderer, store storage.Storage, repo repository.DocumentRepository, opt RenderOptions) RenderService {
	if opt.Stamper == nil {
		opt.Stamper = storage.NewStamper()
	}
	if opt.Now == nil {
		opt.Now = time.Now
	}
	return &renderService{
		renderer:       r,
		store:          store,
		repo:           repo,
		concurrency:    opt.BatchConcurrency,
		cleanupOrphans: opt.CleanupOrphans,
		stamper:        opt.Stamper,
		metrics:        opt.Metrics,
		log:            opt.Logger.With().Str("component", "render_service").Logger(),
		now:            opt.Now,
	}
}

func (s *renderService) Certificate(ctx context.Context, req model.CertificateRequest) (*model.RenderedDocument, error) {
	rr, err := req.Validate()
	if err != nil {
		return nil, err
	}
	return s.produce(ctx, rr)
}

func (s *renderService) BulkCertificates(ctx context.Context, reqs []model.CertificateRequest) ([]ItemResult, error) {
	if len(reqs) == 0 {
		return nil, &model.ValidationError{Message: "at least one certificate is required"}
	}
	rrs := make([]model.RenderRequest, len(reqs))
	for i := range reqs {
		rr, err := reqs[i].Validate()
		if err != nil {
			var ve *model.ValidationError
			if errors.As(err, &ve) {
				return nil, ve.AtIndex(i)
			}
			return nil, err
		}
		rrs[i] = rr
	}

	results := make([]ItemResult, len(rrs))
	s.fanOut(len(rrs), func(i int) {
		doc, err := s.produce(ctx, rrs[i])
		results[i] = ItemResult{Document: doc, Err: err}
	})
	return results, nil
}

func (s *renderService) IDCards(ctx context.Context, reqs []model.IDCardRequest) ([]ItemResult, error) {
	if len(reqs) == 0 {
		return nil, &model.ValidationError{Message: "at least one ID card is required"}
	}
	now := s.now()
	results := make([]ItemResult, len(reqs))
	s.fanOut(len(reqs), func(i int) {
		rr, err := reqs[i].Validate(now)
		if err != nil {
			var ve *model.ValidationError
			if errors.As(err, &ve) {
				err = ve.AtIndex(i)
			}
			results[i] = ItemResult{Err: err}
			return
		}
		doc, err := s.produce(ctx, rr)
		results[i] = ItemResult{Document: doc, Err: err}
	})
	return results, nil
}

func (s *renderService) Invitation(ctx context.Context, req model.InvitationRequest) (*model.RenderedDocument, error) {
	rr, err := req.Validate()
	if err != nil {
		return nil, err
	}
	return s.produce(ctx, rr)
}

// fanOut runs fn for 0..n-1 and waits for all of them.
func (s *renderService) fanOut(n int, fn func(i int)) {
	var g errgroup.Group
	if s.concurrency > 0 {
		g.SetLimit(s.concurrency)
	}
	for i := 0; i < n; i++ {
		g.Go(func() error {
			fn(i)
			return nil
		})
	}
	_ = g.Wait()
}

// produce renders rr, writes the PNG and records it, in that order.
func (s *renderService) produce(ctx context.Context, rr model.RenderRequest) (doc *model.RenderedDocument, err error) {
	ctx, span := tracer.Start(ctx, "RenderService.produce",
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(attribute.String("document.kind", string(rr.Kind))),
	)
	defer func() {
		s.metrics.count(rr.Kind, err)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	start := time.Now()
	img, err := s.renderer.Render(rr)
	if err != nil {
		var ve *model.ValidationError
		if errors.As(err, &ve) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", ErrRender, err)
	}
	var buf bytes.Buffer
	if err := render.EncodePNG(&buf, img); err != nil {
		return nil, fmt.Errorf("%w: encode png: %w", ErrRender, err)
	}
	s.metrics.observe(rr.Kind, time.Since(start))

	// The stamp is taken after drawing so files are named in completion order.
	key := storage.KeyFor(rr.Kind, s.stamper.Next(), storage.Slug(rr.RecipientName))
	span.SetAttributes(attribute.String("document.key", key))

	if _, err := s.store.Put(ctx, key, bytes.NewReader(buf.Bytes()), storage.PutObjectOptions{
		Size:        int64(buf.Len()),
		ContentType: "image/png",
	}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStore, err)
	}

	stored, err := s.repo.Create(ctx, recordFor(rr, uuid.NewString(), storage.PublicPath(key), s.now().UTC()))
	if err != nil {
		if s.cleanupOrphans {
			if delErr := s.store.Delete(context.WithoutCancel(ctx), key); delErr != nil {
				s.log.Error().Err(delErr).Str("key", key).Msg("orphan_cleanup_failed")
			}
		} else {
			s.log.Warn().Str("key", key).Msg("orphan_file_kept")
		}
		return nil, fmt.Errorf("%w: %w", ErrPersistence, err)
	}

	s.log.Debug().Str("kind", string(rr.Kind)).Str("path", stored.FilePath).Msg("document_rendered")
	return stored, nil
}

func recordFor(rr model.RenderRequest, id, path string, now time.Time) *model.RenderedDocument {
	doc := &model.RenderedDocument{
		ID:            id,
		Kind:          rr.Kind,
		RecipientName: rr.RecipientName,
		EventName:     rr.Title,
		FilePath:      path,
		Fields:        map[string]string{},
		CreatedAt:     now,
	}
	for k, v := range rr.Extra {
		if v != "" {
			doc.Fields[k] = v
		}
	}
	switch rr.Kind {
	case model.KindIDCard:
		doc.Date = rr.Extra[model.ExtraYear]
	default:
		doc.Date = rr.Date.Format("2006-01-02")
	}
	if rr.Kind == model.KindCertificate {
		rank := rr.Rank
		doc.Rank = &rank
	}
	return doc
}
