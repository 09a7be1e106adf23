// Package handler wires the HTTP routes to the service and view layers.
package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/xgumball/fwitter3clone/internal/middleware"
	"github.com/xgumball/fwitter3clone/internal/service"
	"github.com/xgumball/fwitter3clone/internal/view"
	"github.com/xgumball/fwitter3clone/internal/ws"
)

const requestTimeout = 2 * time.Second

// TweetHandler bundles the HTTP endpoints.
type TweetHandler struct {
	Tweets   *service.Tweets
	Renderer *view.Renderer
	Hub      *ws.Hub // optional; nil disables /live
	Log      *logrus.Logger
}

func NewTweetHandler(tweets *service.Tweets, renderer *view.Renderer, hub *ws.Hub, log *logrus.Logger) *TweetHandler {
	return &TweetHandler{Tweets: tweets, Renderer: renderer, Hub: hub, Log: log}
}

// Router returns the configured router with middleware applied.
// Anything outside the registered routes gets mux's default 404.
func (h *TweetHandler) Router() *mux.Router {
	r := mux.NewRouter()
	r.Use(middleware.Logging(h.Log))
	r.Use(middleware.Metrics())

	r.HandleFunc("/", h.ListTweets).Methods(http.MethodGet)
	r.HandleFunc("/tweet", h.TweetForm).Methods(http.MethodGet)
	r.HandleFunc("/tweet", h.CreateTweet).Methods(http.MethodPost)
	if h.Hub != nil {
		r.HandleFunc("/live", h.Live).Methods(http.MethodGet)
	}
	r.HandleFunc("/healthz", h.Healthz).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
	return r
}

func (h *TweetHandler) ListTweets(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	tweets, err := h.Tweets.ListAll(ctx)
	if err != nil {
		http.Error(w, "failed to fetch tweets", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.Renderer.List(w, tweets); err != nil {
		h.Log.WithError(err).Error("render list")
	}
}

func (h *TweetHandler) TweetForm(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.Renderer.Form(w); err != nil {
		h.Log.WithError(err).Error("render form")
	}
}

func (h *TweetHandler) CreateTweet(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	// A missing or malformed body is treated as empty field values.
	_ = r.ParseForm()
	username := r.PostFormValue("username")
	status := r.PostFormValue("status")

	if _, err := h.Tweets.Create(ctx, username, status); err != nil {
		http.Error(w, "failed to create tweet", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/", http.StatusFound)
}

func (h *TweetHandler) Live(w http.ResponseWriter, r *http.Request) {
	ws.ServeWS(h.Hub, w, r)
}

func (h *TweetHandler) Healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
