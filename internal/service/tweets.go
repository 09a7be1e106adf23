// Package service holds the application layer: the two operations the
// site exposes, list all tweets and create one.
package service

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/xgumball/fwitter3clone/internal/model"
	"github.com/xgumball/fwitter3clone/internal/store"
)

// Publisher receives tweets after they have been persisted.
type Publisher interface {
	PublishTweet(ctx context.Context, t model.Tweet) error
}

// Tweets is the application layer over a TweetStore.
type Tweets struct {
	store      store.TweetStore
	log        *logrus.Logger
	publishers []Publisher
}

func NewTweets(st store.TweetStore, log *logrus.Logger, pubs ...Publisher) *Tweets {
	return &Tweets{store: st, log: log, publishers: pubs}
}

// ListAll returns every tweet in creation order.
func (s *Tweets) ListAll(ctx context.Context) ([]model.Tweet, error) {
	return s.store.ListAll(ctx)
}

// Create persists a tweet with the given fields. No validation is
// applied: empty username or status is accepted and stored as-is.
// Publish failures after a successful insert are logged and dropped.
func (s *Tweets) Create(ctx context.Context, username, status string) (model.Tweet, error) {
	t, err := s.store.Create(ctx, model.Tweet{Username: username, Status: status})
	if err != nil {
		return model.Tweet{}, err
	}

	for _, pub := range s.publishers {
		if err := pub.PublishTweet(ctx, t); err != nil {
			s.log.WithError(err).WithField("tweet_id", t.ID).Warn("publish tweet")
		}
	}

	s.log.WithFields(logrus.Fields{
		"tweet_id": t.ID,
		"username": t.Username,
	}).Info("tweet created")
	return t, nil
}
