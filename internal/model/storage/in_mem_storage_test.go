package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_OnSubscribe_ShouldListChatsInOrder(t *testing.T) {
	ctx := context.Background()
	s := NewInMemStorage()

	require.NoError(t, s.Subscribe(ctx, 30))
	require.NoError(t, s.Subscribe(ctx, 10))
	require.NoError(t, s.Subscribe(ctx, 20))
	require.NoError(t, s.Subscribe(ctx, 10))
	require.NoError(t, s.Unsubscribe(ctx, 20))

	chats, err := s.SubscribedChats(ctx)
	assert.NoError(t, err)
	assert.Equal(t, []int64{10, 30}, chats)
}

func Test_OnCountPopups_ShouldCountPerChatSince(t *testing.T) {
	ctx := context.Background()
	s := NewInMemStorage()
	since := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, s.RecordPopup(ctx, 1, "a", since.Add(-time.Hour)))
	require.NoError(t, s.RecordPopup(ctx, 1, "a", since))
	require.NoError(t, s.RecordPopup(ctx, 1, "a", since.Add(time.Hour)))
	require.NoError(t, s.RecordPopup(ctx, 1, "b", since.Add(time.Minute)))
	require.NoError(t, s.RecordPopup(ctx, 2, "b", since.Add(time.Minute)))

	counts, err := s.CountPopups(ctx, 1, since)
	assert.NoError(t, err)
	assert.Equal(t, map[string]int64{"a": 2, "b": 1}, counts)
}
