package storage

import (
	"context"
	"sort"
	"sync"
	"time"
)

type popupEvent struct {
	chatID   int64
	currency string
	shownAt  time.Time
}

type InMemStorage struct {
	mu          sync.RWMutex
	subscribers map[int64]bool
	events      []popupEvent
}

func NewInMemStorage() *InMemStorage {
	return &InMemStorage{
		subscribers: make(map[int64]bool),
	}
}

func (s *InMemStorage) Subscribe(_ context.Context, chatID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers[chatID] = true
	return nil
}

func (s *InMemStorage) Unsubscribe(_ context.Context, chatID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.subscribers, chatID)
	return nil
}

func (s *InMemStorage) SubscribedChats(_ context.Context) ([]int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	res := make([]int64, 0, len(s.subscribers))
	for id := range s.subscribers {
		res = append(res, id)
	}
	sort.Slice(res, func(i, j int) bool {
		return res[i] < res[j]
	})
	return res, nil
}

func (s *InMemStorage) RecordPopup(_ context.Context, chatID int64, currency string, shownAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, popupEvent{chatID: chatID, currency: currency, shownAt: shownAt})
	return nil
}

func (s *InMemStorage) CountPopups(_ context.Context, chatID int64, since time.Time) (map[string]int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	res := make(map[string]int64)
	for _, e := range s.events {
		if e.chatID == chatID && !e.shownAt.Before(since) {
			res[e.currency]++
		}
	}
	return res, nil
}
