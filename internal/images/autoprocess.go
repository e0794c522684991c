package images

import (
	"context"
	"strings"

	"github.com/tharindu-dev/portfolio-backend/internal/auth"
	"github.com/tharindu-dev/portfolio-backend/internal/validate"
)

// ClassifyFolder routes an uploaded file into a destination folder by
// filename convention. Unrecognized names land in misc.
func ClassifyFolder(fileName string) string {
	name := strings.ToLower(fileName)
	switch {
	case strings.Contains(name, "case-study"):
		return "case-studies"
	case strings.Contains(name, "blog"):
		return "blog-posts"
	case strings.Contains(name, "profile"):
		return "profile"
	default:
		return "misc"
	}
}

// AutoResult reports an automatic pipeline run by the stored variant
// paths. Non-image files are skipped, not failed, so Success stays
// false and Skipped marks the reason.
type AutoResult struct {
	Success       bool   `json:"success"`
	OriginalPath  string `json:"originalPath"`
	OptimizedPath string `json:"optimizedPath"`
	ThumbnailPath string `json:"thumbnailPath"`
	Skipped       bool   `json:"skipped,omitempty"`
}

// AutoProcess runs the pipeline with default options against a staged
// upload, choosing the destination folder from the filename. Non-image
// files are skipped rather than rejected.
func (s *Service) AutoProcess(ctx context.Context, ident *auth.Identity, in validate.AutoProcessInput) (*AutoResult, error) {
	if err := s.gate.RequireAdmin(ctx, ident); err != nil {
		return nil, err
	}
	if err := validate.Check(&in); err != nil {
		return nil, err
	}

	if !strings.HasPrefix(in.ContentType, "image/") {
		return &AutoResult{Skipped: true}, nil
	}

	proc := validate.ProcessImageInput{
		TempPath:          in.FilePath,
		DestinationFolder: ClassifyFolder(in.FileName),
		FileName:          in.FileName,
	}
	proc.ApplyDefaults()

	res, err := s.run(ctx, ident.UID, proc)
	if err != nil {
		return nil, err
	}
	return &AutoResult{
		Success:       true,
		OriginalPath:  res.OriginalPath,
		OptimizedPath: res.OptimizedPath,
		ThumbnailPath: res.ThumbnailPath,
	}, nil
}
