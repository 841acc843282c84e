package popup

import (
	"sync"
	"time"

	"go.uber.org/zap"
	"max.ks1230/khqr-bot/internal/entity/currency"
	"max.ks1230/khqr-bot/internal/logger"
)

// SurfaceFactory builds the surface a chat's popups are rendered on.
type SurfaceFactory func(chatID int64) Surface

// Registry owns one Timer per chat, created on first activation.
type Registry struct {
	mu      sync.Mutex
	timers  map[int64]*Timer
	factory SurfaceFactory
	sched   scheduler
	delay   time.Duration
}

func NewRegistry(factory SurfaceFactory) *Registry {
	return newRegistry(factory, systemScheduler{}, DismissDelay)
}

func newRegistry(factory SurfaceFactory, sched scheduler, delay time.Duration) *Registry {
	return &Registry{
		timers:  make(map[int64]*Timer),
		factory: factory,
		sched:   sched,
		delay:   delay,
	}
}

func (r *Registry) Timer(chatID int64) *Timer {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.timers[chatID]
	if !ok {
		logger.Info("new popup timer", zap.Int64("chatID", chatID))
		t = newTimer(r.factory(chatID), r.sched, r.delay)
		r.timers[chatID] = t
	}
	return t
}

func (r *Registry) Activate(chatID int64, mode currency.Mode) {
	r.Timer(chatID).Activate(mode)
}
