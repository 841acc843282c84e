package popup

import (
	"sync"
	"time"

	"go.uber.org/zap"
	"max.ks1230/khqr-bot/internal/entity/currency"
	"max.ks1230/khqr-bot/internal/logger"
)

// DismissDelay is how long a popup stays on screen after the last activation.
const DismissDelay = 3000 * time.Millisecond

// Surface renders a single popup. Calls are fire-and-forget, implementations
// report their own failures.
type Surface interface {
	Open(mode currency.Mode)
	Close()
}

type task interface {
	Stop() bool
}

type scheduler interface {
	AfterFunc(d time.Duration, f func()) task
}

type systemScheduler struct{}

func (systemScheduler) AfterFunc(d time.Duration, f func()) task {
	return time.AfterFunc(d, f)
}

// Timer shows a popup on its surface and dismisses it DismissDelay after the
// most recent activation.
//
// Activate and the dismissal callback are serialized by mu. Every scheduled
// dismissal remembers the generation it was created for; a callback whose
// generation is no longer current is ignored, so a superseded dismissal never
// closes the surface even if Stop lost the race with the timer goroutine.
type Timer struct {
	mu      sync.Mutex
	surface Surface
	sched   scheduler
	delay   time.Duration

	activeKey  string
	active     bool
	pending    task
	generation uint64
}

func NewTimer(surface Surface) *Timer {
	return newTimer(surface, systemScheduler{}, DismissDelay)
}

func newTimer(surface Surface, sched scheduler, delay time.Duration) *Timer {
	return &Timer{
		surface: surface,
		sched:   sched,
		delay:   delay,
	}
}

// Activate opens the popup for mode unless it is already showing, and
// (re)starts the dismissal countdown.
func (t *Timer) Activate(mode currency.Mode) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.pending != nil {
		t.pending.Stop()
		t.pending = nil
		timerResets.Inc()
	}

	if !t.active || t.activeKey != mode.Key() {
		logger.Debug("open popup", zap.String("currency", mode.Key()))
		t.surface.Open(mode)
		t.activeKey, t.active = mode.Key(), true
		popupsOpened.WithLabelValues(mode.Key()).Inc()
	}

	t.generation++
	gen := t.generation
	t.pending = t.sched.AfterFunc(t.delay, func() {
		t.dismiss(gen)
	})
}

func (t *Timer) dismiss(gen uint64) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if gen != t.generation || t.pending == nil {
		return
	}

	logger.Debug("dismiss popup", zap.String("currency", t.activeKey))
	t.surface.Close()
	t.pending = nil
	t.activeKey, t.active = "", false
	popupsDismissed.Inc()
}

// ActiveKey reports the key of the popup currently shown.
func (t *Timer) ActiveKey() (string, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.activeKey, t.active
}

// Pending reports whether a dismissal is scheduled.
func (t *Timer) Pending() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.pending != nil
}
