package services

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// CronService runs scheduled background jobs
type CronService struct {
	cron    *cron.Cron
	sweeper OverdueSweeper
	spec    string
}

// NewCronService creates a cron runner in loc; spec is a standard 5-field schedule
func NewCronService(sweeper OverdueSweeper, spec string, loc *time.Location) *CronService {
	if loc == nil {
		loc = time.Local
	}
	return &CronService{
		cron:    cron.New(cron.WithLocation(loc)),
		sweeper: sweeper,
		spec:    spec,
	}
}

// Start registers the jobs and starts the scheduler
func (s *CronService) Start() error {
	if _, err := s.cron.AddFunc(s.spec, s.RunOverdueSweep); err != nil {
		return err
	}
	s.cron.Start()
	log.Printf("⏰ Cron started [overdue sweep: %s]", s.spec)
	return nil
}

// Stop waits for running jobs and stops the scheduler
func (s *CronService) Stop() {
	<-s.cron.Stop().Done()
	log.Println("🛑 Cron stopped")
}

// RunOverdueSweep marks past-due borrows overdue
func (s *CronService) RunOverdueSweep() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	n, err := s.sweeper.SweepOverdue(ctx)
	if err != nil {
		log.Printf("❌ Overdue sweep failed: %v", err)
		return
	}
	if n > 0 {
		log.Printf("✅ Overdue sweep marked %d borrows", n)
	}
}
