// Package store persists tweets. The Postgres implementation is the
// production store; Memory backs tests and dry runs.
package store

import (
	"context"

	"github.com/xgumball/fwitter3clone/internal/model"
)

// TweetStore persists tweets.
type TweetStore interface {
	// Create inserts the tweet and returns it with the store-assigned
	// id and creation time. Empty username or status is stored as-is.
	Create(ctx context.Context, t model.Tweet) (model.Tweet, error)

	// ListAll returns every tweet in creation order (ascending id).
	// An empty store yields an empty slice, not an error.
	ListAll(ctx context.Context) ([]model.Tweet, error)
}
