// Package http exposes the relay over HTTP: the websocket endpoint, account
// creation, prometheus metrics and a health probe.
package http

import (
	"chat-relay/contract"
	"chat-relay/domain"
	"chat-relay/errors"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const maxAccountBody = 4 << 10

// NewRouter mounts every endpoint of the relay. ws serves the upgrade on /ws.
func NewRouter(log *slog.Logger, ws http.Handler, gateway contract.IGateway, gatherer prometheus.Gatherer) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(log))
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})
	r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	r.Get("/ws", ws.ServeHTTP)
	r.Post("/api/new_account", newAccount(log, gateway))
	return r
}

// newAccount answers with the id of the created identity as plain text, or
// with the failure reason and the matching status.
func newAccount(log *slog.Logger, gateway contract.IGateway) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var cmd domain.CreateAccountCommand
		if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxAccountBody)).Decode(&cmd); err != nil {
			http.Error(w, errors.Reason(errors.ErrInvalidPayload), http.StatusBadRequest)
			return
		}

		id, err := gateway.CreateAccount(r.Context(), cmd)
		if err != nil {
			status := errors.HTTPStatus(err)
			if status == http.StatusInternalServerError {
				log.Warn("Account creation failed", "username", cmd.Username, "error", err)
			}
			http.Error(w, errors.Reason(err), status)
			return
		}

		log.Info("Account created", "identity_id", id, "username", cmd.Username, "admin", cmd.Admin)
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte(id))
	}
}

func requestLogger(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			log.Debug("HTTP request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"duration", time.Since(start),
				"request_id", middleware.GetReqID(r.Context()))
		})
	}
}
