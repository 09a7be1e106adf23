package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/xgumball/fwitter3clone/internal/config"
	"github.com/xgumball/fwitter3clone/internal/handler"
	"github.com/xgumball/fwitter3clone/internal/redisclient"
	"github.com/xgumball/fwitter3clone/internal/service"
	"github.com/xgumball/fwitter3clone/internal/store"
	"github.com/xgumball/fwitter3clone/internal/view"
	"github.com/xgumball/fwitter3clone/internal/ws"
)

func main() {
	log := logrus.New()

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("load config")
	}
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(level)
	}
	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL is required")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := store.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.WithError(err).Fatal("connect database")
	}
	defer pool.Close()
	log.Info("connected to database")

	if err := store.Migrate(ctx, pool); err != nil {
		log.WithError(err).Fatal("apply migrations")
	}

	hub := ws.NewHub(log)
	go hub.Run()

	publishers := []service.Publisher{hub}
	if cfg.RedisAddr != "" {
		client, err := redisclient.NewClient(ctx, cfg.RedisAddr)
		if err != nil {
			log.WithError(err).Fatal("connect redis")
		}
		defer client.Close()
		if err := redisclient.CreateConsumerGroup(ctx, client, redisclient.Stream, "feed"); err != nil {
			log.WithError(err).Warn("create consumer group")
		}
		publishers = append(publishers, redisclient.NewStreamPublisher(client))
		log.Info("connected to redis")
	}

	tweets := service.NewTweets(store.NewPostgres(pool), log, publishers...)

	renderer, err := view.NewRenderer()
	if err != nil {
		log.WithError(err).Fatal("parse templates")
	}

	h := handler.NewTweetHandler(tweets, renderer, hub, log)

	srv := &http.Server{
		Addr:    cfg.Addr,
		Handler: h.Router(),
	}

	errCh := make(chan error, 1)
	go func() {
		log.WithField("addr", cfg.Addr).Info("http server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// Fall through to the shutdown path on a server error too, so the
	// deferred pool close still runs.
	select {
	case <-ctx.Done():
	case err := <-errCh:
		log.WithError(err).Error("http server")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Warn("shutdown")
	}
}
