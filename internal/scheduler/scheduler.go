package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/rs/zerolog/log"
	"ulascansenturk/occupancy-service/internal/service"
)

// Scheduler runs the collector on a fixed minute cadence.
type Scheduler struct {
	mu        sync.Mutex
	collector service.Collector
	location  *time.Location
	cron      *gocron.Scheduler
	// cycles tracks the immediate cycle of the current run only
	cycles *sync.WaitGroup
}

// New creates a stopped Scheduler. location decides the wall clock that
// aligned cadences follow.
func New(collector service.Collector, location *time.Location) *Scheduler {
	return &Scheduler{
		collector: collector,
		location:  location,
	}
}

// Start schedules a collection every intervalMinutes and runs one right away.
// Calling Start on a running scheduler does nothing.
func (s *Scheduler) Start(intervalMinutes int) error {
	if intervalMinutes < 1 {
		return fmt.Errorf("scheduler: interval must be at least 1 minute, got %d", intervalMinutes)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cron != nil {
		log.Info().Msg("scheduler already running, ignoring start")
		return nil
	}

	interval := time.Duration(intervalMinutes) * time.Minute
	cron := gocron.NewScheduler(s.location)
	job := func() { s.runCycle(interval) }

	var err error
	if expr, aligned := cronExpression(intervalMinutes); aligned {
		_, err = cron.Cron(expr).Do(job)
	} else {
		_, err = cron.Every(intervalMinutes).Minutes().WaitForSchedule().Do(job)
	}
	if err != nil {
		return fmt.Errorf("scheduler: failed to schedule collection: %w", err)
	}

	cron.StartAsync()
	cycles := &sync.WaitGroup{}
	s.cron = cron
	s.cycles = cycles

	log.Info().Int("interval_minutes", intervalMinutes).Msg("scheduler started")

	cycles.Add(1)
	go func() {
		defer cycles.Done()
		s.runCycle(interval)
	}()

	return nil
}

// Stop cancels future cycles. A cycle already in flight completes.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	cron, cycles := s.cron, s.cycles
	s.cron, s.cycles = nil, nil
	s.mu.Unlock()

	if cron == nil {
		return
	}
	cron.Stop()
	cycles.Wait()
	log.Info().Msg("scheduler stopped")
}

func (s *Scheduler) IsRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cron != nil && s.cron.IsRunning()
}

// ActiveJobs returns the number of registered jobs, 0 when stopped.
func (s *Scheduler) ActiveJobs() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cron == nil {
		return 0
	}
	return s.cron.Len()
}

func (s *Scheduler) runCycle(interval time.Duration) {
	ctx, cancel := context.WithTimeout(context.Background(), interval)
	defer cancel()

	result := s.collector.CollectOnce(ctx)
	if !result.Success {
		log.Warn().Str("cycle_id", result.CycleID).Str("code", result.Code).Msg("collection cycle failed")
		return
	}
	log.Debug().Str("cycle_id", result.CycleID).Msg("collection cycle completed")
}

// cronExpression returns a wall clock aligned expression for intervals that
// divide an hour evenly.
func cronExpression(intervalMinutes int) (string, bool) {
	switch {
	case intervalMinutes == 1:
		return "* * * * *", true
	case intervalMinutes < 60 && 60%intervalMinutes == 0:
		return fmt.Sprintf("*/%d * * * *", intervalMinutes), true
	default:
		return "", false
	}
}
