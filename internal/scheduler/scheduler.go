package scheduler

import (
	"sync"
	"time"

	"github.com/benbjohnson/clock"
)

// Scheduler runs a task repeatedly at a fixed interval until stopped
type Scheduler struct {
	interval time.Duration
	task     func()
	clock    clock.Clock

	mu      sync.Mutex
	running bool
	stop    chan struct{}
	done    chan struct{}
}

// New creates a scheduler driven by the wall clock
func New(interval time.Duration, task func()) *Scheduler {
	return NewWithClock(clock.New(), interval, task)
}

// NewWithClock creates a scheduler driven by the given clock
func NewWithClock(clk clock.Clock, interval time.Duration, task func()) *Scheduler {
	return &Scheduler{
		interval: interval,
		task:     task,
		clock:    clk,
	}
}

// Start begins periodic execution. The first run happens one interval
// after Start. Calling Start on a running scheduler is a no-op.
func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return
	}
	s.running = true
	s.stop = make(chan struct{})
	s.done = make(chan struct{})

	ticker := s.clock.Ticker(s.interval)
	go s.run(ticker, s.stop, s.done)
}

// Stop halts periodic execution and waits for an in-flight run to finish.
// It is safe to call Stop more than once.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	close(s.stop)
	done := s.done
	s.mu.Unlock()

	<-done
}

// Running reports whether the scheduler is active
func (s *Scheduler) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

func (s *Scheduler) run(ticker *clock.Ticker, stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			s.task()
		}
	}
}
