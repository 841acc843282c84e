package popup

import (
	"testing"

	"github.com/gojuno/minimock/v3"
	"github.com/stretchr/testify/assert"
	"max.ks1230/khqr-bot/internal/entity/currency"
	"max.ks1230/khqr-bot/internal/model/popup/mock"
)

func Test_OnRegistryTimer_ShouldReuseTimerPerChat(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()

	built := make([]int64, 0)
	registry := newRegistry(func(chatID int64) Surface {
		built = append(built, chatID)
		return mock.NewSurfaceMock(m)
	}, &fakeScheduler{}, DismissDelay)

	first := registry.Timer(1)
	assert.Same(t, first, registry.Timer(1))
	assert.NotSame(t, first, registry.Timer(2))
	assert.Equal(t, []int64{1, 2}, built)
}

func Test_OnRegistryActivate_ShouldKeepChatsIndependent(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	sched := &fakeScheduler{}

	first := mock.NewSurfaceMock(m)
	second := mock.NewSurfaceMock(m)
	first.OpenMock.Expect(currency.Riel).Return()
	second.OpenMock.Expect(currency.Dollar).Return()

	surfaces := map[int64]Surface{1: first, 2: second}
	registry := newRegistry(func(chatID int64) Surface {
		return surfaces[chatID]
	}, sched, DismissDelay)

	registry.Activate(1, currency.Riel)
	registry.Activate(2, currency.Dollar)
	registry.Activate(1, currency.Riel)

	assert.Equal(t, uint64(1), first.OpenAfterCounter())
	assert.Equal(t, uint64(1), second.OpenAfterCounter())
	assert.Equal(t, 2, sched.live())

	key, _ := registry.Timer(2).ActiveKey()
	assert.Equal(t, "b", key)
}
