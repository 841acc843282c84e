package popup

import (
	"sync"
	"time"
)

// fakeScheduler runs scheduled functions only when the test fires them.
type fakeScheduler struct {
	mu    sync.Mutex
	tasks []*fakeTask
}

type fakeTask struct {
	delay   time.Duration
	f       func()
	stopped bool
	fired   bool
}

func (t *fakeTask) Stop() bool {
	wasActive := !t.stopped && !t.fired
	t.stopped = true
	return wasActive
}

func (s *fakeScheduler) AfterFunc(d time.Duration, f func()) task {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := &fakeTask{delay: d, f: f}
	s.tasks = append(s.tasks, t)
	return t
}

// fireDue runs every task that is neither stopped nor fired yet, as a
// timer reaching its deadline would.
func (s *fakeScheduler) fireDue() int {
	s.mu.Lock()
	due := make([]*fakeTask, 0)
	for _, t := range s.tasks {
		if !t.stopped && !t.fired {
			t.fired = true
			due = append(due, t)
		}
	}
	s.mu.Unlock()

	for _, t := range due {
		t.f()
	}
	return len(due)
}

// fireAll runs every task ever scheduled, including stopped ones, the way a
// timer that already fired while Stop was racing would.
func (s *fakeScheduler) fireAll() {
	s.mu.Lock()
	all := append([]*fakeTask(nil), s.tasks...)
	s.mu.Unlock()

	for _, t := range all {
		t.fired = true
		t.f()
	}
}

func (s *fakeScheduler) live() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for _, t := range s.tasks {
		if !t.stopped && !t.fired {
			n++
		}
	}
	return n
}
