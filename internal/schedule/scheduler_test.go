package schedule

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"go.uber.org/goleak"
)

const tick = 10 * time.Millisecond

func TestSchedule_DebounceCoalesces(t *testing.T) {
	defer goleak.VerifyNone(t)
	s := New(context.Background(), tick)
	defer s.Stop()

	var runs atomic.Int32
	ran := make(chan uint64, 8)
	var last uint64
	for i := 0; i < 5; i++ {
		last = s.Schedule("a.riddl", func(_ context.Context, gen uint64) {
			runs.Add(1)
			ran <- gen
		})
	}
	select {
	case gen := <-ran:
		if gen != last {
			t.Fatalf("job ran with generation %d, want %d", gen, last)
		}
	case <-time.After(time.Second):
		t.Fatalf("job never ran")
	}
	time.Sleep(5 * tick)
	if n := runs.Load(); n != 1 {
		t.Fatalf("expected a single run, got %d", n)
	}
}

func TestSchedule_StaleResultIsDiscarded(t *testing.T) {
	defer goleak.VerifyNone(t)
	s := New(context.Background(), tick)
	defer s.Stop()

	release := make(chan struct{})
	var (
		mu        sync.Mutex
		committed []uint64
	)
	commit := func(gen uint64) {
		s.Commit("a.riddl", gen, func() {
			mu.Lock()
			committed = append(committed, gen)
			mu.Unlock()
		})
	}
	started := make(chan struct{})
	first := s.Schedule("a.riddl", func(_ context.Context, gen uint64) {
		close(started)
		<-release
		commit(gen)
	})
	<-started
	done := make(chan struct{})
	second := s.Schedule("a.riddl", func(_ context.Context, gen uint64) {
		commit(gen)
		close(done)
	})
	<-done
	close(release)
	time.Sleep(2 * tick)

	mu.Lock()
	defer mu.Unlock()
	if len(committed) != 1 || committed[0] != second {
		t.Fatalf("committed %v, want only generation %d (first was %d)", committed, second, first)
	}
}

func TestClose_CancelsPendingTimer(t *testing.T) {
	defer goleak.VerifyNone(t)
	s := New(context.Background(), 5*tick)
	defer s.Stop()

	var runs atomic.Int32
	gen := s.Schedule("a.riddl", func(context.Context, uint64) { runs.Add(1) })
	s.Close("a.riddl")
	time.Sleep(10 * tick)
	if runs.Load() != 0 {
		t.Fatalf("closed document must not validate")
	}
	if s.Current("a.riddl", gen) || s.Pending() != 0 {
		t.Fatalf("close must forget the document")
	}
	if s.Commit("a.riddl", gen, func() { t.Fatalf("commit after close") }) {
		t.Fatalf("commit after close must fail")
	}
}

func TestClose_CancelsRunningJob(t *testing.T) {
	defer goleak.VerifyNone(t)
	s := New(context.Background(), tick)
	defer s.Stop()

	started := make(chan struct{})
	finished := make(chan error, 1)
	s.Schedule("a.riddl", func(ctx context.Context, _ uint64) {
		close(started)
		<-ctx.Done()
		finished <- ctx.Err()
	})
	<-started
	s.Close("a.riddl")
	select {
	case err := <-finished:
		if err != context.Canceled {
			t.Fatalf("unexpected ctx error %v", err)
		}
	case <-time.After(time.Second):
		t.Fatalf("running job was not cancelled")
	}
}

func TestSchedule_ReopenGetsNewGeneration(t *testing.T) {
	defer goleak.VerifyNone(t)
	s := New(context.Background(), time.Hour)
	defer s.Stop()

	noop := func(context.Context, uint64) {}
	old := s.Schedule("a.riddl", noop)
	s.Close("a.riddl")
	fresh := s.Schedule("a.riddl", noop)
	if fresh <= old {
		t.Fatalf("generation %d reused after reopen (old %d)", fresh, old)
	}
	if s.Current("a.riddl", old) {
		t.Fatalf("old generation must not be current")
	}
}

func TestSchedule_DocumentsAreIndependent(t *testing.T) {
	defer goleak.VerifyNone(t)
	s := New(context.Background(), time.Hour)
	defer s.Stop()

	noop := func(context.Context, uint64) {}
	a := s.Schedule("a.riddl", noop)
	b := s.Schedule("b.riddl", noop)
	s.Schedule("b.riddl", noop)
	if !s.Current("a.riddl", a) {
		t.Fatalf("rescheduling b must not affect a")
	}
	if s.Current("b.riddl", b) {
		t.Fatalf("b was superseded")
	}
}

func TestStop_RejectsNewWork(t *testing.T) {
	defer goleak.VerifyNone(t)
	s := New(context.Background(), tick)
	s.Stop()
	if gen := s.Schedule("a.riddl", func(context.Context, uint64) { t.Fatalf("ran after stop") }); gen != 0 {
		t.Fatalf("expected zero generation after stop, got %d", gen)
	}
	time.Sleep(3 * tick)
}

func TestSetDelay(t *testing.T) {
	s := New(context.Background(), 0)
	defer s.Stop()
	if s.Delay() != DefaultDelay {
		t.Fatalf("zero delay must fall back to the default")
	}
	s.SetDelay(-time.Second)
	s.SetDelay(time.Second)
	if s.Delay() != time.Second {
		t.Fatalf("unexpected delay %v", s.Delay())
	}
}

func TestCommit_PublishDoesNotBlockScheduler(t *testing.T) {
	defer goleak.VerifyNone(t)
	s := New(context.Background(), time.Hour)
	defer s.Stop()

	gen := s.Schedule("a.riddl", func(context.Context, uint64) {})
	entered := make(chan struct{})
	release := make(chan struct{})
	committed := make(chan bool, 1)
	go func() {
		committed <- s.Commit("a.riddl", gen, func() {
			close(entered)
			<-release
		})
	}()
	<-entered

	scheduled := make(chan struct{})
	go func() {
		s.Schedule("b.riddl", func(context.Context, uint64) {})
		s.Schedule("a.riddl", func(context.Context, uint64) {})
		close(scheduled)
	}()
	select {
	case <-scheduled:
	case <-time.After(time.Second):
		t.Fatalf("Schedule blocked behind a slow publish")
	}

	closed := make(chan struct{})
	go func() {
		s.Close("a.riddl")
		close(closed)
	}()
	select {
	case <-closed:
		t.Fatalf("Close returned while a publish was still running")
	case <-time.After(5 * tick):
	}
	close(release)
	select {
	case <-closed:
	case <-time.After(time.Second):
		t.Fatalf("Close never returned")
	}
	if !<-committed {
		t.Fatalf("the in-flight publish must report success")
	}
}
