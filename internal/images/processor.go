package images

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"log"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	_ "image/gif"
	_ "image/png"

	"golang.org/x/image/draw"

	"github.com/tharindu-dev/portfolio-backend/internal/apperr"
	"github.com/tharindu-dev/portfolio-backend/internal/auth"
	"github.com/tharindu-dev/portfolio-backend/internal/domain"
	"github.com/tharindu-dev/portfolio-backend/internal/store"
	"github.com/tharindu-dev/portfolio-backend/internal/validate"
)

// maxOptimizedWidth caps the optimized variant; originals keep their
// full resolution.
const maxOptimizedWidth = 1600

// Result is the outcome of a pipeline run. The optimized fields fall
// back to the original when optimization is disabled; the thumbnail
// fields stay empty when no thumbnail was generated.
type Result struct {
	OriginalURL   string `json:"originalUrl"`
	OriginalPath  string `json:"originalPath"`
	OptimizedURL  string `json:"optimizedUrl"`
	OptimizedPath string `json:"optimizedPath"`
	ThumbnailURL  string `json:"thumbnailUrl"`
	ThumbnailPath string `json:"thumbnailPath"`
}

type Service struct {
	objects ObjectStore
	records store.Images
	gate    *auth.Gate
}

func NewService(objects ObjectStore, records store.Images, gate *auth.Gate) *Service {
	return &Service{objects: objects, records: records, gate: gate}
}

// Process runs the full pipeline: download the staged upload, store the
// untouched original, optionally re-encode an optimized variant and a
// cover-cropped thumbnail, then remove the staged source.
func (s *Service) Process(ctx context.Context, ident *auth.Identity, in validate.ProcessImageInput) (*Result, error) {
	if err := s.gate.RequireAdmin(ctx, ident); err != nil {
		return nil, err
	}
	in.ApplyDefaults()
	if err := validate.Check(&in); err != nil {
		return nil, err
	}
	return s.run(ctx, ident.UID, in)
}

func (s *Service) run(ctx context.Context, uploadedBy string, in validate.ProcessImageInput) (*Result, error) {
	scratch, err := os.MkdirTemp("", "imgpipe-*")
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "Error processing image", err)
	}
	defer os.RemoveAll(scratch)

	data, err := s.objects.Download(ctx, in.TempPath)
	if errors.Is(err, store.ErrNotFound) {
		return nil, apperr.E(apperr.NotFound, "Source image not found")
	}
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "Error processing image", err)
	}

	src := filepath.Join(scratch, filepath.Base(in.TempPath))
	if err := os.WriteFile(src, data, 0o644); err != nil {
		return nil, apperr.Wrap(apperr.Internal, "Error processing image", err)
	}

	img, format, err := decodeFile(src)
	if err != nil {
		return nil, apperr.Invalid("Unsupported image format", apperr.FieldError{
			Field: "tempPath", Message: "file is not a decodable image",
		})
	}

	base := strings.TrimSuffix(in.FileName, filepath.Ext(in.FileName))
	folder := in.DestinationFolder

	originalPath := path.Join("images", folder, "original", in.FileName)
	originalURL, err := s.objects.Upload(ctx, originalPath, data, contentTypeFor(format))
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "Error storing image", err)
	}

	optimizedURL := originalURL
	optimizedPath := originalPath
	if *in.OptimizeImage {
		encoded, err := encodeOptimized(img, in.Quality)
		if err != nil {
			return nil, apperr.Wrap(apperr.Internal, "Error optimizing image", err)
		}
		optimizedPath = path.Join("images", folder, "optimized", base+".jpg")
		optimizedURL, err = s.objects.Upload(ctx, optimizedPath, encoded, "image/jpeg")
		if err != nil {
			return nil, apperr.Wrap(apperr.Internal, "Error storing image", err)
		}
	}

	thumbnailURL := ""
	thumbnailPath := ""
	if *in.GenerateThumbnail {
		thumb := coverCrop(img, in.ThumbnailWidth, in.ThumbnailHeight)

		var buf bytes.Buffer
		if err := jpeg.Encode(&buf, thumb, &jpeg.Options{Quality: in.Quality}); err != nil {
			return nil, apperr.Wrap(apperr.Internal, "Error generating thumbnail", err)
		}
		thumbnailPath = path.Join("images", folder, "thumbnails", base+".jpg")
		thumbnailURL, err = s.objects.Upload(ctx, thumbnailPath, buf.Bytes(), "image/jpeg")
		if err != nil {
			return nil, apperr.Wrap(apperr.Internal, "Error storing image", err)
		}
	}

	// The staged upload is no longer needed. Losing this delete only
	// leaves garbage for the sweep job, so it does not fail the run.
	if err := s.objects.Delete(ctx, in.TempPath); err != nil && !errors.Is(err, store.ErrNotFound) {
		log.Printf("images: failed to delete staged upload %s: %v", in.TempPath, err)
	}

	if s.records != nil {
		record := &domain.StoredImage{
			OriginalPath:  originalPath,
			OptimizedPath: optimizedPath,
			ThumbnailPath: thumbnailPath,
			ContentType:   contentTypeFor(format),
			Folder:        folder,
			UploadedBy:    uploadedBy,
			CreatedAt:     time.Now().UTC(),
		}
		if _, err := s.records.Record(ctx, record); err != nil {
			log.Printf("images: failed to record metadata for %s: %v", originalPath, err)
		}
	}

	return &Result{
		OriginalURL:   originalURL,
		OriginalPath:  originalPath,
		OptimizedURL:  optimizedURL,
		OptimizedPath: optimizedPath,
		ThumbnailURL:  thumbnailURL,
		ThumbnailPath: thumbnailPath,
	}, nil
}

func decodeFile(name string) (image.Image, string, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, "", err
	}
	defer f.Close()
	return image.Decode(f)
}

// encodeOptimized re-encodes as JPEG at the requested quality, scaling
// down anything wider than maxOptimizedWidth.
func encodeOptimized(img image.Image, quality int) ([]byte, error) {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	if w > maxOptimizedWidth {
		newH := h * maxOptimizedWidth / w
		dst := image.NewRGBA(image.Rect(0, 0, maxOptimizedWidth, newH))
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
		img = dst
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: quality}); err != nil {
		return nil, fmt.Errorf("encode jpeg: %w", err)
	}
	return buf.Bytes(), nil
}

// coverCrop scales the image until it covers w x h, then crops the
// center, so thumbnails are never letterboxed.
func coverCrop(src image.Image, w, h int) image.Image {
	sb := src.Bounds()
	sw, sh := sb.Dx(), sb.Dy()

	scale := float64(w) / float64(sw)
	if s := float64(h) / float64(sh); s > scale {
		scale = s
	}
	tw := int(float64(sw)*scale + 0.5)
	th := int(float64(sh)*scale + 0.5)
	if tw < w {
		tw = w
	}
	if th < h {
		th = h
	}

	scaled := image.NewRGBA(image.Rect(0, 0, tw, th))
	draw.CatmullRom.Scale(scaled, scaled.Bounds(), src, sb, draw.Over, nil)

	out := image.NewRGBA(image.Rect(0, 0, w, h))
	offset := image.Pt((tw-w)/2, (th-h)/2)
	draw.Draw(out, out.Bounds(), scaled, offset, draw.Src)
	return out
}

func contentTypeFor(format string) string {
	switch format {
	case "jpeg":
		return "image/jpeg"
	case "png":
		return "image/png"
	case "gif":
		return "image/gif"
	default:
		return "application/octet-stream"
	}
}
