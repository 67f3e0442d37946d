// Package backup writes dated snapshots of the project list so a fat-thumbed
// delete in the admin console is recoverable.
package backup

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/bokyaa/portfolio-backend/internal/projects/store"
)

type Scheduler struct {
	store *store.Store
	dir   string
	cron  *cron.Cron
}

func NewScheduler(st *store.Store, dir string) *Scheduler {
	return &Scheduler{store: st, dir: dir}
}

// Start schedules a nightly snapshot at midnight and returns immediately.
func (s *Scheduler) Start() {
	c := cron.New(cron.WithSeconds())

	_, err := c.AddFunc("0 0 0 * * *", func() {
		if err := s.Run(context.Background()); err != nil {
			log.Printf("[warn] operation=backup error=%v", err)
		}
	})
	if err != nil {
		log.Printf("Failed to create cron job: %v", err)
		return
	}

	log.Println("Backup scheduler started (snapshot nightly at 12:00AM)")
	c.Start()
	s.cron = c
}

// Stop halts the schedule. In-flight snapshots finish on their own.
func (s *Scheduler) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
}

// Run writes one snapshot now.
func (s *Scheduler) Run(ctx context.Context) error {
	records, err := s.store.Load(ctx)
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return err
	}
	name := filepath.Join(s.dir, "projects-"+time.Now().Format("20060102")+".json")
	if err := os.WriteFile(name, data, 0o644); err != nil {
		return err
	}
	log.Printf("[info] operation=backup file=%s records=%d", name, len(records))
	return nil
}
