package driver

import (
	"runtime"
	"sync"
	"time"
)

// memSampler polls runtime.MemStats on a ticker and tracks the highest
// Sys value it has observed, for --track-memory (spec.md §6).
type memSampler struct {
	mu      sync.Mutex
	peak    uint64
	stop    chan struct{}
	stopped sync.WaitGroup
}

func startMemSampler(interval time.Duration) *memSampler {
	s := &memSampler{stop: make(chan struct{})}
	s.stopped.Add(1)

	go func() {
		defer s.stopped.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-s.stop:
				return
			case <-ticker.C:
				s.sample()
			}
		}
	}()

	return s
}

func (s *memSampler) sample() {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	s.mu.Lock()
	if m.Sys > s.peak {
		s.peak = m.Sys
	}
	s.mu.Unlock()
}

// Stop halts sampling and returns the highest Sys value observed.
func (s *memSampler) Stop() uint64 {
	close(s.stop)
	s.stopped.Wait()
	s.sample()

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.peak
}
