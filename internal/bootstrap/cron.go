package bootstrap

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/tharindu-dev/portfolio-backend/internal/images"
)

// staleUploadAge is how long a staged upload may sit unprocessed before
// the sweep removes it.
const staleUploadAge = 24 * time.Hour

type Scheduler struct {
	objects images.ObjectStore
	cron    *cron.Cron
}

func NewScheduler(objects images.ObjectStore) *Scheduler {
	return &Scheduler{objects: objects}
}

// Start schedules the nightly sweep of abandoned staged uploads.
func (s *Scheduler) Start() {
	c := cron.New(cron.WithSeconds())

	_, err := c.AddFunc("0 0 0 * * *", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()

		removed, err := images.SweepStaleTemp(ctx, s.objects, staleUploadAge)
		if err != nil {
			log.Printf("stale upload sweep failed: %v", err)
			return
		}
		log.Printf("stale upload sweep removed %d objects", removed)
	})
	if err != nil {
		log.Printf("Failed to create cron job: %v", err)
		return
	}

	log.Println("Cron scheduler started (sweeping stale uploads nightly)")
	c.Start()
	s.cron = c
}

func (s *Scheduler) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
}
