// Package schedule debounces per-document revalidation and tags every run
// with a generation so that only the latest request may publish.
package schedule

import (
	"context"
	"sync"
	"time"
)

// DefaultDelay is the debounce window used when none is configured.
const DefaultDelay = 500 * time.Millisecond

// Job is the work a timer runs. ctx is cancelled when the document closes
// or the scheduler stops, never on supersession.
type Job func(ctx context.Context, generation uint64)

type pending struct {
	timer      *time.Timer
	generation uint64
	ctx        context.Context
	cancel     context.CancelFunc
	// serialises publishes of one document; never held together with
	// Scheduler.mu
	publishMu sync.Mutex
}

// Scheduler holds one pending record per document key.
type Scheduler struct {
	mu      sync.Mutex
	base    context.Context
	delay   time.Duration
	seq     uint64
	docs    map[string]*pending
	stopped bool
	wg      sync.WaitGroup
}

// New creates a scheduler whose jobs inherit base.
func New(base context.Context, delay time.Duration) *Scheduler {
	if base == nil {
		base = context.Background()
	}
	if delay <= 0 {
		delay = DefaultDelay
	}
	return &Scheduler{base: base, delay: delay, docs: make(map[string]*pending)}
}

// Delay returns the current debounce window.
func (s *Scheduler) Delay() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.delay
}

// SetDelay changes the debounce window for timers armed from now on.
func (s *Scheduler) SetDelay(d time.Duration) {
	if d <= 0 {
		return
	}
	s.mu.Lock()
	s.delay = d
	s.mu.Unlock()
}

// Schedule arms (or re-arms) the timer for key and returns the generation
// the job will run with. Generations grow across all keys, so a reopened
// document never reuses one.
func (s *Scheduler) Schedule(key string, job Job) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped {
		return 0
	}
	s.seq++
	gen := s.seq
	p := s.docs[key]
	if p == nil {
		ctx, cancel := context.WithCancel(s.base)
		p = &pending{ctx: ctx, cancel: cancel}
		s.docs[key] = p
	}
	if p.timer != nil && p.timer.Stop() {
		s.wg.Done()
	}
	p.generation = gen
	ctx := p.ctx
	s.wg.Add(1)
	p.timer = time.AfterFunc(s.delay, func() {
		defer s.wg.Done()
		if !s.Current(key, gen) {
			return
		}
		job(ctx, gen)
	})
	return gen
}

// Current reports whether gen is still the latest generation for an open
// key.
func (s *Scheduler) Current(key string, gen uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentLocked(key, gen)
}

func (s *Scheduler) currentLocked(key string, gen uint64) bool {
	p := s.docs[key]
	return !s.stopped && p != nil && p.generation == gen
}

// Commit runs publish only if gen is still current, and reports whether it
// ran. Publishes of one key are serialised by a per-key lock; the scheduler
// lock is not held while publish runs, so other keys and Schedule calls
// proceed. publish must not call Close for the same key.
func (s *Scheduler) Commit(key string, gen uint64, publish func()) bool {
	s.mu.Lock()
	if !s.currentLocked(key, gen) {
		s.mu.Unlock()
		return false
	}
	p := s.docs[key]
	s.mu.Unlock()

	p.publishMu.Lock()
	defer p.publishMu.Unlock()
	if !s.Current(key, gen) {
		return false
	}
	publish()
	return true
}

// Close forgets key: the pending timer is stopped, a running job sees its
// context cancelled and cannot commit. Close returns after a publish already
// in progress for key has finished, so nothing of key is published later.
func (s *Scheduler) Close(key string) {
	s.mu.Lock()
	p := s.docs[key]
	s.closeLocked(key)
	s.mu.Unlock()
	if p != nil {
		p.publishMu.Lock()
		p.publishMu.Unlock()
	}
}

func (s *Scheduler) closeLocked(key string) {
	p := s.docs[key]
	if p == nil {
		return
	}
	if p.timer != nil && p.timer.Stop() {
		s.wg.Done()
	}
	p.cancel()
	delete(s.docs, key)
}

// Pending reports how many documents have scheduler state.
func (s *Scheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.docs)
}

// Stop closes every key and waits for running jobs to return.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	for key := range s.docs {
		s.closeLocked(key)
	}
	s.stopped = true
	s.mu.Unlock()
	s.wg.Wait()
}
