package maintenance

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// Pruner trims the content version log; *content.Repo satisfies it.
type Pruner interface {
	Prune(ctx context.Context, keep int) (int64, error)
}

type Scheduler struct {
	cron   *cron.Cron
	pruner Pruner
	keep   int
}

func NewScheduler(pruner Pruner, keepVersions int) *Scheduler {
	return &Scheduler{
		cron:   cron.New(),
		pruner: pruner,
		keep:   keepVersions,
	}
}

// Start registers the nightly prune (03:30) and starts the cron loop.
func (s *Scheduler) Start() {
	_, err := s.cron.AddFunc("30 3 * * *", s.runPrune)
	if err != nil {
		log.Printf("Failed to create cron job: %v", err)
		return
	}

	log.Println("Maintenance scheduler started (content prune nightly at 03:30)")
	s.cron.Start()
}

// Stop halts the scheduler and waits for a running job to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

func (s *Scheduler) runPrune() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	removed, err := s.pruner.Prune(ctx, s.keep)
	if err != nil {
		log.Printf("[error] operation=content_prune error=%v", err)
		return
	}
	log.Printf("[info] operation=content_prune removed=%d keep=%d", removed, s.keep)
}
