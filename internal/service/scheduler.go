package service

import (
	"fmt"
	"sync"
	"time"

	"taskroom/internal/domain"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DeliverFunc is invoked exactly once when a reminder fires.
type DeliverFunc func(reminder domain.Reminder)

// Scheduler arms one-shot reminder timers. Jobs live only in process memory;
// a restart loses anything not yet fired.
type Scheduler struct {
	deliver DeliverFunc
	logger  *zap.Logger

	mu     sync.Mutex
	jobs   map[string]*time.Timer
	closed bool
}

// NewScheduler creates a scheduler delivering through the given callback
func NewScheduler(deliver DeliverFunc, logger *zap.Logger) *Scheduler {
	return &Scheduler{
		deliver: deliver,
		logger:  logger,
		jobs:    make(map[string]*time.Timer),
	}
}

// Schedule arms a one-shot timer for fireAt. The instant must be strictly
// in the future. Returns an opaque job handle.
func (s *Scheduler) Schedule(fireAt time.Time, reminder domain.Reminder) (string, error) {
	delay := time.Until(fireAt)
	if delay <= 0 {
		return "", domain.ErrPastTime
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return "", fmt.Errorf("scheduler is shut down")
	}

	id := uuid.NewString()
	s.jobs[id] = time.AfterFunc(delay, func() {
		s.fire(id, reminder)
	})

	s.logger.Info("Reminder scheduled",
		zap.String("job_id", id),
		zap.Int64("todo_id", reminder.TodoID),
		zap.Time("fire_at", fireAt),
	)
	return id, nil
}

// fire delivers the payload at most once: whichever of fire and Cancel
// removes the job entry first wins.
func (s *Scheduler) fire(id string, reminder domain.Reminder) {
	s.mu.Lock()
	_, armed := s.jobs[id]
	delete(s.jobs, id)
	closed := s.closed
	s.mu.Unlock()

	if !armed || closed {
		return
	}

	s.deliver(reminder)
}

// Cancel disarms a pending job. Returns false if it already fired or never
// existed.
func (s *Scheduler) Cancel(id string) bool {
	s.mu.Lock()
	timer, ok := s.jobs[id]
	delete(s.jobs, id)
	s.mu.Unlock()

	if ok {
		timer.Stop()
	}
	return ok
}

// Shutdown stops accepting new jobs and disarms all pending timers. Jobs
// whose deadline has not elapsed are lost.
func (s *Scheduler) Shutdown() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	for id, timer := range s.jobs {
		timer.Stop()
		delete(s.jobs, id)
	}

	s.logger.Info("Scheduler shut down")
}
