package images

import (
	"context"
	"log"
	"time"
)

// tempPrefix is where clients stage uploads before Process moves them
// into their final location.
const tempPrefix = "uploads/"

// SweepStaleTemp deletes staged uploads older than maxAge. Process
// normally removes its source; this catches uploads that were staged
// but never processed. Returns the number of objects removed.
func SweepStaleTemp(ctx context.Context, objects ObjectStore, maxAge time.Duration) (int, error) {
	infos, err := objects.List(ctx, tempPrefix)
	if err != nil {
		return 0, err
	}

	removed := 0
	for _, info := range infos {
		if time.Since(info.Created) < maxAge {
			continue
		}
		if err := objects.Delete(ctx, info.Path); err != nil {
			log.Printf("images: sweep could not delete %s: %v", info.Path, err)
			continue
		}
		removed++
	}
	return removed, nil
}
