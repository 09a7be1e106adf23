// Seed inserts sample tweets through the regular service path. With
// -memory it runs against the in-memory store as a dry run.
package main

import (
	"context"
	"flag"
	"math/rand"

	"github.com/sirupsen/logrus"

	"github.com/xgumball/fwitter3clone/internal/config"
	"github.com/xgumball/fwitter3clone/internal/service"
	"github.com/xgumball/fwitter3clone/internal/store"
)

var usernames = []string{
	"alice", "bob", "charlie", "dhrona", "gopher",
}

var statuses = []string{
	"I love Golang concurrency!",
	"This backend is blazing fast!",
	"Learning distributed systems!",
	"Microservices are powerful!",
	"Channels are awesome!",
}

func main() {
	n := flag.Int("n", 10, "number of tweets to insert")
	memory := flag.Bool("memory", false, "use the in-memory store (dry run)")
	flag.Parse()

	log := logrus.New()
	ctx := context.Background()

	var st store.TweetStore
	if *memory {
		st = store.NewMemory()
	} else {
		cfg, err := config.Load()
		if err != nil {
			log.WithError(err).Fatal("load config")
		}
		if cfg.DatabaseURL == "" {
			log.Fatal("DATABASE_URL is required")
		}

		pool, err := store.NewPool(ctx, cfg.DatabaseURL)
		if err != nil {
			log.WithError(err).Fatal("connect database")
		}
		defer pool.Close()

		if err := store.Migrate(ctx, pool); err != nil {
			log.WithError(err).Fatal("apply migrations")
		}
		st = store.NewPostgres(pool)
	}

	tweets := service.NewTweets(st, log)

	for i := 0; i < *n; i++ {
		t, err := tweets.Create(ctx,
			usernames[rand.Intn(len(usernames))],
			statuses[rand.Intn(len(statuses))],
		)
		if err != nil {
			log.WithError(err).Fatal("insert tweet")
		}
		log.WithFields(logrus.Fields{"id": t.ID, "username": t.Username}).Info("seeded")
	}
}
