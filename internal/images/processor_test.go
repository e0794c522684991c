package images

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tharindu-dev/portfolio-backend/internal/apperr"
	"github.com/tharindu-dev/portfolio-backend/internal/auth"
	"github.com/tharindu-dev/portfolio-backend/internal/domain"
	"github.com/tharindu-dev/portfolio-backend/internal/store"
	"github.com/tharindu-dev/portfolio-backend/internal/store/memory"
	"github.com/tharindu-dev/portfolio-backend/internal/validate"
)

var admin = &auth.Identity{UID: "admin-uid", Email: "admin@example.com"}

func newTestService(t *testing.T) (*Service, *MemoryStore) {
	t.Helper()

	stores := memory.New().Stores()
	err := stores.Accounts.Create(context.Background(), &domain.AdminAccount{
		UID:  admin.UID,
		Role: domain.RoleAdmin,
	})
	require.NoError(t, err)

	objects := NewMemoryStore()
	return NewService(objects, stores.Images, auth.NewGate(stores.Accounts)), objects
}

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestProcessGeneratesAllVariants(t *testing.T) {
	svc, objects := newTestService(t)
	ctx := context.Background()

	objects.Put("uploads/staged-pic.png", pngBytes(t, 600, 400), "image/png")

	res, err := svc.Process(ctx, admin, validate.ProcessImageInput{
		TempPath:          "uploads/staged-pic.png",
		DestinationFolder: "blog-posts",
		FileName:          "pic.png",
	})
	require.NoError(t, err)

	assert.Equal(t, "memory://images/blog-posts/original/pic.png", res.OriginalURL)
	assert.Equal(t, "memory://images/blog-posts/optimized/pic.jpg", res.OptimizedURL)
	assert.Equal(t, "memory://images/blog-posts/thumbnails/pic.jpg", res.ThumbnailURL)
	assert.Equal(t, "images/blog-posts/original/pic.png", res.OriginalPath)
	assert.Equal(t, "images/blog-posts/optimized/pic.jpg", res.OptimizedPath)
	assert.Equal(t, "images/blog-posts/thumbnails/pic.jpg", res.ThumbnailPath)

	// Staged source is removed once processing succeeds.
	_, err = objects.Download(ctx, "uploads/staged-pic.png")
	assert.ErrorIs(t, err, store.ErrNotFound)

	// Thumbnail is an exact cover crop.
	thumbData, err := objects.Download(ctx, "images/blog-posts/thumbnails/pic.jpg")
	require.NoError(t, err)
	thumb, _, err := image.Decode(bytes.NewReader(thumbData))
	require.NoError(t, err)
	assert.Equal(t, 300, thumb.Bounds().Dx())
	assert.Equal(t, 300, thumb.Bounds().Dy())
}

func TestProcessFallbacksWhenDisabled(t *testing.T) {
	svc, objects := newTestService(t)
	ctx := context.Background()

	objects.Put("uploads/pic.png", pngBytes(t, 100, 100), "image/png")

	off := false
	res, err := svc.Process(ctx, admin, validate.ProcessImageInput{
		TempPath:          "uploads/pic.png",
		DestinationFolder: "misc",
		FileName:          "pic.png",
		GenerateThumbnail: &off,
		OptimizeImage:     &off,
	})
	require.NoError(t, err)

	assert.Equal(t, res.OriginalURL, res.OptimizedURL)
	assert.Equal(t, res.OriginalPath, res.OptimizedPath)
	assert.Empty(t, res.ThumbnailURL)
	assert.Empty(t, res.ThumbnailPath)

	_, err = objects.Download(ctx, "images/misc/thumbnails/pic.jpg")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestProcessMissingSource(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Process(context.Background(), admin, validate.ProcessImageInput{
		TempPath:          "uploads/nope.png",
		DestinationFolder: "misc",
		FileName:          "nope.png",
	})
	assert.Equal(t, apperr.NotFound, apperr.KindOf(err))
}

func TestProcessRejectsNonImage(t *testing.T) {
	svc, objects := newTestService(t)

	objects.Put("uploads/doc.pdf", []byte("%PDF-1.4 not an image"), "application/pdf")

	_, err := svc.Process(context.Background(), admin, validate.ProcessImageInput{
		TempPath:          "uploads/doc.pdf",
		DestinationFolder: "misc",
		FileName:          "doc.pdf",
	})
	assert.Equal(t, apperr.InvalidArgument, apperr.KindOf(err))
}

func TestProcessRemovesScratchDir(t *testing.T) {
	scratchRoot := t.TempDir()
	t.Setenv("TMPDIR", scratchRoot)

	svc, objects := newTestService(t)
	ctx := context.Background()

	objects.Put("uploads/pic.png", pngBytes(t, 120, 80), "image/png")
	_, err := svc.Process(ctx, admin, validate.ProcessImageInput{
		TempPath:          "uploads/pic.png",
		DestinationFolder: "misc",
		FileName:          "pic.png",
	})
	require.NoError(t, err)

	entries, err := os.ReadDir(scratchRoot)
	require.NoError(t, err)
	assert.Empty(t, entries)

	// Failed runs leave nothing behind either.
	objects.Put("uploads/doc.pdf", []byte("%PDF-1.4 not an image"), "application/pdf")
	_, err = svc.Process(ctx, admin, validate.ProcessImageInput{
		TempPath:          "uploads/doc.pdf",
		DestinationFolder: "misc",
		FileName:          "doc.pdf",
	})
	require.Error(t, err)

	entries, err = os.ReadDir(scratchRoot)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestProcessRequiresAdmin(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Process(context.Background(), nil, validate.ProcessImageInput{
		TempPath: "uploads/x.png", DestinationFolder: "misc", FileName: "x.png",
	})
	assert.Equal(t, apperr.Unauthenticated, apperr.KindOf(err))
}

func TestClassifyFolder(t *testing.T) {
	cases := map[string]string{
		"case-study-hero.png":  "case-studies",
		"blog-cover.jpg":       "blog-posts",
		"My-Profile-Photo.png": "profile",
		"random.png":           "misc",
	}
	for name, want := range cases {
		assert.Equal(t, want, ClassifyFolder(name), name)
	}
}

func TestAutoProcessSkipsNonImages(t *testing.T) {
	svc, _ := newTestService(t)

	res, err := svc.AutoProcess(context.Background(), admin, validate.AutoProcessInput{
		FilePath:    "uploads/report.pdf",
		ContentType: "application/pdf",
		FileName:    "report.pdf",
	})
	require.NoError(t, err)
	assert.True(t, res.Skipped)
	assert.False(t, res.Success)
}

func TestAutoProcessRoutesByFilename(t *testing.T) {
	svc, objects := newTestService(t)
	ctx := context.Background()

	objects.Put("uploads/case-study-hero.png", pngBytes(t, 400, 400), "image/png")

	res, err := svc.AutoProcess(ctx, admin, validate.AutoProcessInput{
		FilePath:    "uploads/case-study-hero.png",
		ContentType: "image/png",
		FileName:    "case-study-hero.png",
	})
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.False(t, res.Skipped)
	assert.Equal(t, "images/case-studies/original/case-study-hero.png", res.OriginalPath)
	assert.Equal(t, "images/case-studies/optimized/case-study-hero.jpg", res.OptimizedPath)
	assert.Equal(t, "images/case-studies/thumbnails/case-study-hero.jpg", res.ThumbnailPath)
}
