package popup

import (
	"sync"
	"testing"
	"time"

	"github.com/gojuno/minimock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"max.ks1230/khqr-bot/internal/entity/currency"
	"max.ks1230/khqr-bot/internal/model/popup/mock"
)

func Test_OnNewTimer_ShouldBeIdle(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	surface := mock.NewSurfaceMock(m)

	timer := newTimer(surface, &fakeScheduler{}, DismissDelay)

	_, active := timer.ActiveKey()
	assert.False(t, active)
	assert.False(t, timer.Pending())
}

func Test_OnActivate_ShouldOpenSurfaceAndScheduleDismissal(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	surface := mock.NewSurfaceMock(m)
	sched := &fakeScheduler{}

	surface.OpenMock.Expect(currency.Riel).Return()

	timer := newTimer(surface, sched, DismissDelay)
	timer.Activate(currency.Riel)

	key, active := timer.ActiveKey()
	assert.True(t, active)
	assert.Equal(t, "a", key)
	assert.True(t, timer.Pending())
	assert.Equal(t, 1, sched.live())
	assert.Equal(t, DismissDelay, sched.tasks[0].delay)
}

func Test_OnRepeatedActivate_ShouldOpenOnceAndKeepSingleDismissal(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	surface := mock.NewSurfaceMock(m)
	sched := &fakeScheduler{}

	surface.OpenMock.Expect(currency.Riel).Return()

	timer := newTimer(surface, sched, DismissDelay)
	timer.Activate(currency.Riel)
	timer.Activate(currency.Riel)
	timer.Activate(currency.Riel)

	assert.Equal(t, uint64(1), surface.OpenAfterCounter())
	assert.Equal(t, 1, sched.live())
	assert.Len(t, sched.tasks, 3)
	assert.True(t, sched.tasks[0].stopped)
	assert.True(t, sched.tasks[1].stopped)
	assert.False(t, sched.tasks[2].stopped)
}

func Test_OnModeSwitch_ShouldOpenEachMode(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	surface := mock.NewSurfaceMock(m)
	sched := &fakeScheduler{}

	opened := make([]currency.Mode, 0)
	surface.OpenMock.Set(func(mode currency.Mode) {
		opened = append(opened, mode)
	})

	timer := newTimer(surface, sched, DismissDelay)
	timer.Activate(currency.Riel)
	timer.Activate(currency.Dollar)

	assert.Equal(t, []currency.Mode{currency.Riel, currency.Dollar}, opened)
	key, active := timer.ActiveKey()
	assert.True(t, active)
	assert.Equal(t, "b", key)
	assert.Equal(t, 1, sched.live())
}

func Test_OnDismissalFired_ShouldCloseSurfaceAndGoIdle(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	surface := mock.NewSurfaceMock(m)
	sched := &fakeScheduler{}

	surface.OpenMock.Return()
	surface.CloseMock.Return()

	timer := newTimer(surface, sched, DismissDelay)
	timer.Activate(currency.Riel)

	assert.Equal(t, 1, sched.fireDue())

	_, active := timer.ActiveKey()
	assert.False(t, active)
	assert.False(t, timer.Pending())
	assert.Equal(t, uint64(1), surface.CloseAfterCounter())
}

func Test_OnSwitchBeforeDelay_ShouldCloseOnlyOnce(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	surface := mock.NewSurfaceMock(m)
	sched := &fakeScheduler{}

	surface.OpenMock.Return()
	surface.CloseMock.Return()

	timer := newTimer(surface, sched, DismissDelay)
	timer.Activate(currency.Riel)
	timer.Activate(currency.Dollar)

	assert.Equal(t, 1, sched.fireDue())
	assert.Equal(t, 0, sched.fireDue())

	assert.Equal(t, uint64(2), surface.OpenAfterCounter())
	assert.Equal(t, uint64(1), surface.CloseAfterCounter())
	_, active := timer.ActiveKey()
	assert.False(t, active)
}

func Test_OnSupersededDismissalRacingStop_ShouldBeIgnored(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	surface := mock.NewSurfaceMock(m)
	sched := &fakeScheduler{}

	surface.OpenMock.Return()
	surface.CloseMock.Return()

	timer := newTimer(surface, sched, DismissDelay)
	timer.Activate(currency.Riel)
	timer.Activate(currency.Riel)

	// both callbacks run, the first one as if Stop came too late
	sched.fireAll()

	assert.Equal(t, uint64(1), surface.CloseAfterCounter())
	assert.False(t, timer.Pending())
}

func Test_OnActivateAfterDismissal_ShouldReopenSameMode(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	surface := mock.NewSurfaceMock(m)
	sched := &fakeScheduler{}

	surface.OpenMock.Return()
	surface.CloseMock.Return()

	timer := newTimer(surface, sched, DismissDelay)
	timer.Activate(currency.Riel)
	sched.fireDue()
	timer.Activate(currency.Riel)

	assert.Equal(t, uint64(2), surface.OpenAfterCounter())
	assert.True(t, timer.Pending())
	key, active := timer.ActiveKey()
	assert.True(t, active)
	assert.Equal(t, "a", key)
}

func Test_OnConcurrentActivateWithSystemScheduler_ShouldCloseOnce(t *testing.T) {
	const delay = 100 * time.Millisecond

	m := minimock.NewController(t)
	defer m.Finish()
	surface := mock.NewSurfaceMock(m)

	surface.OpenMock.Return()
	surface.CloseMock.Return()

	timer := newTimer(surface, systemScheduler{}, delay)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		mode := currency.Riel
		if i%3 == 0 {
			mode = currency.Dollar
		}
		wg.Add(1)
		go func(mode currency.Mode) {
			defer wg.Done()
			timer.Activate(mode)
		}(mode)
	}
	wg.Wait()

	require.True(t, timer.Pending())
	require.Eventually(t, func() bool {
		return !timer.Pending()
	}, 10*delay, delay/10)

	// give any superseded callback time to run
	time.Sleep(2 * delay)

	_, active := timer.ActiveKey()
	assert.False(t, active)
	assert.Equal(t, uint64(1), surface.CloseAfterCounter())
	assert.GreaterOrEqual(t, surface.OpenAfterCounter(), uint64(1))
}
