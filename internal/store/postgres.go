package store

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/xgumball/fwitter3clone/internal/model"
)

// Postgres is the pgx-backed TweetStore.
type Postgres struct {
	DB *pgxpool.Pool
}

var _ TweetStore = (*Postgres)(nil)

func NewPostgres(db *pgxpool.Pool) *Postgres {
	return &Postgres{DB: db}
}

// NewPool opens a connection pool for the given DSN and verifies
// connectivity before returning it.
func NewPool(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}
	cfg.MaxConns = 10

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return pool, nil
}

func (s *Postgres) Create(ctx context.Context, t model.Tweet) (model.Tweet, error) {
	query := `
		INSERT INTO tweets (username, status)
		VALUES ($1, $2)
		RETURNING id, created_at
	`

	if err := s.DB.QueryRow(ctx, query, t.Username, t.Status).Scan(&t.ID, &t.CreatedAt); err != nil {
		return model.Tweet{}, err
	}
	return t, nil
}

func (s *Postgres) ListAll(ctx context.Context) ([]model.Tweet, error) {
	query := `
		SELECT id, username, status, created_at
		FROM tweets
		ORDER BY id
	`

	rows, err := s.DB.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tweets []model.Tweet
	for rows.Next() {
		var t model.Tweet
		if err := rows.Scan(&t.ID, &t.Username, &t.Status, &t.CreatedAt); err != nil {
			return nil, err
		}
		tweets = append(tweets, t)
	}
	return tweets, rows.Err()
}
