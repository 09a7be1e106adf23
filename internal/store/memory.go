package store

import (
	"context"
	"sync"
	"time"

	"github.com/xgumball/fwitter3clone/internal/model"
)

// Memory is an in-memory TweetStore. It backs the handler and service
// tests and the seeder's dry-run mode.
type Memory struct {
	mu     sync.Mutex
	nextID int64
	tweets []model.Tweet
}

var _ TweetStore = (*Memory)(nil)

func NewMemory() *Memory {
	return &Memory{nextID: 1}
}

func (s *Memory) Create(ctx context.Context, t model.Tweet) (model.Tweet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t.ID = s.nextID
	s.nextID++
	t.CreatedAt = time.Now().UTC()
	s.tweets = append(s.tweets, t)
	return t, nil
}

func (s *Memory) ListAll(ctx context.Context) ([]model.Tweet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.Tweet, len(s.tweets))
	copy(out, s.tweets)
	return out, nil
}
