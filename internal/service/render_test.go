package service

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"regexp"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"campusdocs/internal/model"
	"campusdocs/internal/render"
	"campusdocs/internal/repository"
	repoMocks "campusdocs/internal/repository/mocks"
	"campusdocs/internal/storage"
	storeMocks "campusdocs/internal/storage/mocks"
)

// memRepo records documents in memory.
type memRepo struct {
	mu   sync.Mutex
	docs []model.RenderedDocument
}

func (r *memRepo) Create(_ context.Context, doc *model.RenderedDocument) (*model.RenderedDocument, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.docs = append(r.docs, *doc)
	cp := *doc
	return &cp, nil
}

func (r *memRepo) FindByID(context.Context, string) (*model.RenderedDocument, error) {
	return nil, errors.New("not implemented")
}

func (r *memRepo) List(context.Context, repository.DocumentFilter, repository.PageQuery) (*repository.PageResult[model.RenderedDocument], error) {
	return nil, errors.New("not implemented")
}

func (r *memRepo) ListCreatedBefore(context.Context, time.Time, int) ([]model.RenderedDocument, error) {
	return nil, errors.New("not implemented")
}

func (r *memRepo) Delete(context.Context, string) error { return nil }

// stubRenderer returns a tiny image, or an error for recipients named "boom".
type stubRenderer struct{}

func (stubRenderer) Render(req model.RenderRequest) (image.Image, error) {
	if req.RecipientName == "boom" {
		return nil, errors.New("font exploded")
	}
	return image.NewNRGBA(image.Rect(0, 0, 4, 4)), nil
}

func newDiskService(t *testing.T, r Renderer, opt RenderOptions) (RenderService, string, *memRepo) {
	t.Helper()
	dir := t.TempDir()
	store, err := storage.NewDisk(dir)
	require.NoError(t, err)
	repo := &memRepo{}
	opt.Logger = zerolog.Nop()
	return NewRenderService(r, store, repo, opt), dir, repo
}

func intPtr(v int) *int { return &v }

func countFiles(t *testing.T, root string) int {
	t.Helper()
	n := 0
	err := filepath.WalkDir(root, func(_ string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			n++
		}
		return nil
	})
	require.NoError(t, err)
	return n
}

func TestRenderService_Certificate(t *testing.T) {
	r, err := render.New(render.Options{Logger: zerolog.Nop()})
	require.NoError(t, err)
	svc, dir, repo := newDiskService(t, r, RenderOptions{})

	doc, err := svc.Certificate(context.Background(), model.CertificateRequest{
		RecipientName: "Asha Rao",
		CourseTitle:   "Hackathon 2025",
		Date:          "2025-03-01",
		Rank:          intPtr(1),
	})
	require.NoError(t, err)

	assert.Regexp(t, regexp.MustCompile(`^/certificates/certificate-\d+\.png$`), doc.FilePath)
	assert.Equal(t, model.KindCertificate, doc.Kind)
	assert.Equal(t, "2025-03-01", doc.Date)
	require.NotNil(t, doc.Rank)
	assert.Equal(t, 1, *doc.Rank)
	require.Len(t, repo.docs, 1)

	// The file exists as soon as the call returns.
	raw, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(doc.FilePath)))
	require.NoError(t, err)
	img, err := png.Decode(bytes.NewReader(raw))
	require.NoError(t, err)

	gold := 0
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			cr, cg, cb, _ := img.At(x, y).RGBA()
			if cr>>8 == 0xFF && cg>>8 == 0xD7 && cb>>8 == 0x00 {
				gold++
			}
		}
	}
	assert.Greater(t, gold, 0)
}

func TestRenderService_IdenticalInputDistinctFiles(t *testing.T) {
	svc, dir, _ := newDiskService(t, stubRenderer{}, RenderOptions{})
	req := model.CertificateRequest{RecipientName: "Asha Rao", CourseTitle: "Go 101", Date: "2025-03-01"}

	first, err := svc.Certificate(context.Background(), req)
	require.NoError(t, err)
	second, err := svc.Certificate(context.Background(), req)
	require.NoError(t, err)

	assert.NotEqual(t, first.FilePath, second.FilePath)
	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, 2, countFiles(t, dir))
}

func TestRenderService_Certificate_Failures(t *testing.T) {
	ctx := context.Background()
	valid := model.CertificateRequest{RecipientName: "Asha Rao", CourseTitle: "Go 101", Date: "2025-03-01"}

	tests := []struct {
		name           string
		req            model.CertificateRequest
		renderer       Renderer
		cleanupOrphans bool
		setupMocks     func(mStore *storeMocks.MockStorage, mRepo *repoMocks.MockDocumentRepository)
		wantErr        error
		wantValidation bool
	}{
		{
			name:           "validation error touches nothing",
			req:            model.CertificateRequest{CourseTitle: "Go 101", Date: "2025-03-01"},
			renderer:       stubRenderer{},
			setupMocks:     func(*storeMocks.MockStorage, *repoMocks.MockDocumentRepository) {},
			wantValidation: true,
		},
		{
			name:       "render error",
			req:        model.CertificateRequest{RecipientName: "boom", CourseTitle: "Go 101", Date: "2025-03-01"},
			renderer:   stubRenderer{},
			setupMocks: func(*storeMocks.MockStorage, *repoMocks.MockDocumentRepository) {},
			wantErr:    ErrRender,
		},
		{
			name:     "storage error",
			req:      valid,
			renderer: stubRenderer{},
			setupMocks: func(mStore *storeMocks.MockStorage, mRepo *repoMocks.MockDocumentRepository) {
				mStore.On("Put", mock.Anything, mock.AnythingOfType("string"), mock.Anything, mock.Anything).
					Return(storage.ObjectInfo{}, errors.New("disk full"))
			},
			wantErr: ErrStore,
		},
		{
			name:           "persistence error removes the file",
			req:            valid,
			renderer:       stubRenderer{},
			cleanupOrphans: true,
			setupMocks: func(mStore *storeMocks.MockStorage, mRepo *repoMocks.MockDocumentRepository) {
				mStore.On("Put", mock.Anything, mock.AnythingOfType("string"), mock.Anything, mock.Anything).
					Return(storage.ObjectInfo{}, nil)
				mRepo.On("Create", mock.Anything, mock.Anything).Return(nil, errors.New("db down"))
				mStore.On("Delete", mock.Anything, mock.MatchedBy(func(key string) bool {
					return regexp.MustCompile(`^certificates/certificate-\d+\.png$`).MatchString(key)
				})).Return(nil)
			},
			wantErr: ErrPersistence,
		},
		{
			name:     "persistence error keeps the file",
			req:      valid,
			renderer: stubRenderer{},
			setupMocks: func(mStore *storeMocks.MockStorage, mRepo *repoMocks.MockDocumentRepository) {
				mStore.On("Put", mock.Anything, mock.AnythingOfType("string"), mock.Anything, mock.Anything).
					Return(storage.ObjectInfo{}, nil)
				mRepo.On("Create", mock.Anything, mock.Anything).Return(nil, errors.New("db down"))
			},
			wantErr: ErrPersistence,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mStore := new(storeMocks.MockStorage)
			mRepo := new(repoMocks.MockDocumentRepository)
			tt.setupMocks(mStore, mRepo)

			svc := NewRenderService(tt.renderer, mStore, mRepo, RenderOptions{
				CleanupOrphans: tt.cleanupOrphans,
				Logger:         zerolog.Nop(),
			})
			doc, err := svc.Certificate(ctx, tt.req)

			assert.Nil(t, doc)
			if tt.wantValidation {
				var ve *model.ValidationError
				assert.ErrorAs(t, err, &ve)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			mStore.AssertExpectations(t)
			mRepo.AssertExpectations(t)
		})
	}
}

func TestRenderService_BulkCertificates(t *testing.T) {
	ctx := context.Background()

	t.Run("invalid item rejects the batch before rendering", func(t *testing.T) {
		svc, dir, repo := newDiskService(t, stubRenderer{}, RenderOptions{})

		res, err := svc.BulkCertificates(ctx, []model.CertificateRequest{
			{RecipientName: "Asha Rao", CourseTitle: "Go 101", Date: "2025-03-01"},
			{CourseTitle: "Go 101", Date: "2025-03-01"},
		})

		var ve *model.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, "[1].recipientName", ve.Field)
		assert.Nil(t, res)
		assert.Zero(t, countFiles(t, dir))
		assert.Empty(t, repo.docs)
	})

	t.Run("empty batch", func(t *testing.T) {
		svc, _, _ := newDiskService(t, stubRenderer{}, RenderOptions{})
		_, err := svc.BulkCertificates(ctx, nil)

		var ve *model.ValidationError
		assert.ErrorAs(t, err, &ve)
	})

	t.Run("items succeed and fail independently", func(t *testing.T) {
		reg := prometheus.NewRegistry()
		metrics, err := NewMetrics(reg)
		require.NoError(t, err)
		svc, dir, repo := newDiskService(t, stubRenderer{}, RenderOptions{BatchConcurrency: 2, Metrics: metrics})

		reqs := []model.CertificateRequest{
			{RecipientName: "Asha Rao", CourseTitle: "Go 101", Date: "2025-03-01", Rank: intPtr(1)},
			{RecipientName: "boom", CourseTitle: "Go 101", Date: "2025-03-01"},
			{RecipientName: "Ravi Kumar", CourseTitle: "Go 101", Date: "2025-03-01", Rank: intPtr(3)},
		}
		res, err := svc.BulkCertificates(ctx, reqs)
		require.NoError(t, err)
		require.Len(t, res, 3)

		require.NoError(t, res[0].Err)
		assert.Equal(t, "Asha Rao", res[0].Document.RecipientName)
		assert.ErrorIs(t, res[1].Err, ErrRender)
		assert.Nil(t, res[1].Document)
		require.NoError(t, res[2].Err)
		assert.Equal(t, 3, *res[2].Document.Rank)
		assert.NotEqual(t, res[0].Document.FilePath, res[2].Document.FilePath)

		assert.Equal(t, 2, countFiles(t, dir))
		assert.Len(t, repo.docs, 2)
		assert.Equal(t, float64(2), testutil.ToFloat64(metrics.rendered.WithLabelValues("certificate", "ok")))
		assert.Equal(t, float64(1), testutil.ToFloat64(metrics.rendered.WithLabelValues("certificate", "error")))
	})
}

func TestRenderService_IDCards(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	svc, dir, repo := newDiskService(t, stubRenderer{}, RenderOptions{Now: func() time.Time { return now }})

	res, err := svc.IDCards(ctx, []model.IDCardRequest{
		{Name: "Meera Iyer", Department: "CSE", ContactNo: "9876543210", HeldNo: "H-12"},
		{Department: "ECE", ContactNo: "9876500000"},
		{Name: "Arjun", Department: "MECH", EventName: "Robo Wars", ContactNo: "9123456780", Year: "2026"},
	})
	require.NoError(t, err)
	require.Len(t, res, 3)

	require.NoError(t, res[0].Err)
	assert.Regexp(t, `^/uploads/idCards/\d+-meera-iyer\.png$`, res[0].Document.FilePath)
	assert.Equal(t, "2025", res[0].Document.Date)
	assert.Equal(t, "H-12", res[0].Document.Fields[model.ExtraHeldNo])

	var ve *model.ValidationError
	require.ErrorAs(t, res[1].Err, &ve)
	assert.Equal(t, "[1].Name", ve.Field)

	require.NoError(t, res[2].Err)
	assert.Equal(t, "Robo Wars", res[2].Document.EventName)
	assert.Equal(t, "2026", res[2].Document.Date)

	assert.Equal(t, 2, countFiles(t, dir))
	assert.Len(t, repo.docs, 2)

	_, err = svc.IDCards(ctx, []model.IDCardRequest{})
	assert.ErrorAs(t, err, &ve)
}

func TestRenderService_Invitation(t *testing.T) {
	svc, dir, _ := newDiskService(t, stubRenderer{}, RenderOptions{})

	doc, err := svc.Invitation(context.Background(), model.InvitationRequest{
		JudgeName:      "Dr. Mehta",
		DepartmentName: "Computer Science",
		EventName:      "Tech Fest",
		EventDate:      "2025-04-10",
		EventTime:      "10:00 AM",
	})
	require.NoError(t, err)

	assert.Regexp(t, `^/invitation/\d+_invitation\.png$`, doc.FilePath)
	assert.Equal(t, "10:00 AM", doc.Fields[model.ExtraEventTime])
	assert.Nil(t, doc.Rank)
	assert.FileExists(t, filepath.Join(dir, filepath.FromSlash(doc.FilePath)))

	_, err = svc.Invitation(context.Background(), model.InvitationRequest{JudgeName: "Dr. Mehta"})
	var ve *model.ValidationError
	assert.ErrorAs(t, err, &ve)
}

func TestNewMetrics_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := NewMetrics(reg)
	require.NoError(t, err)

	_, err = NewMetrics(reg)
	assert.Error(t, err)
}
