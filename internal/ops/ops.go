// Package ops serves the worker's operator endpoints: manual sweep triggers
// behind a shared secret.
package ops

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/Domenick1991/eventbooking/internal/service/lifecycle"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/crypto/bcrypt"
)

const HeaderSecret = "X-Ops-Secret"

type Server struct {
	sweeps     lifecycle.SweepUseCase
	secretHash []byte
	locker     lifecycle.Locker
	lockTTL    time.Duration
	log        *slog.Logger
}

type Option func(*Server)

// WithLocker makes manual runs take the same lock as scheduled ones.
func WithLocker(l lifecycle.Locker, ttl time.Duration) Option {
	return func(s *Server) {
		s.locker = l
		s.lockTTL = ttl
	}
}

func NewServer(sweeps lifecycle.SweepUseCase, secretHash string, log *slog.Logger, opts ...Option) *Server {
	s := &Server{sweeps: sweeps, secretHash: []byte(secretHash), log: log}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// HashSecret produces the value expected in ops.secret_hash.
func HashSecret(secret string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/ops/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Group(func(r chi.Router) {
		r.Use(s.requireSecret)
		r.Post("/ops/sweeps/{name}", s.runSweep)
	})
	return r
}

func (s *Server) requireSecret(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		secret := r.Header.Get(HeaderSecret)
		if len(s.secretHash) == 0 || secret == "" ||
			bcrypt.CompareHashAndPassword(s.secretHash, []byte(secret)) != nil {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "invalid ops secret"})
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) sweep(name string) func(context.Context) (lifecycle.Result, error) {
	switch name {
	case "completion":
		return s.sweeps.Complete
	case "reminders":
		return s.sweeps.Remind
	case "event-cleanup":
		return s.sweeps.CleanupEvents
	case "ticket-cleanup":
		return s.sweeps.CleanupTickets
	}
	return nil
}

func (s *Server) runSweep(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	run := s.sweep(name)
	if run == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "unknown sweep " + name})
		return
	}
	ctx := r.Context()
	log := s.log.With(slog.String("sweep", name), slog.String("request_id", middleware.GetReqID(ctx)))

	if s.locker != nil {
		ok, err := s.locker.AcquireSweepLock(ctx, name, s.lockTTL)
		if err != nil {
			log.WarnContext(ctx, "sweep lock unavailable, running unguarded", slog.String("error", err.Error()))
		} else if !ok {
			writeJSON(w, http.StatusConflict, map[string]string{"error": "sweep already running"})
			return
		} else {
			defer func() {
				if err := s.locker.ReleaseSweepLock(context.WithoutCancel(ctx), name); err != nil {
					log.WarnContext(ctx, "release sweep lock", slog.String("error", err.Error()))
				}
			}()
		}
	}

	res, err := run(ctx)
	if err != nil {
		log.ErrorContext(ctx, "manual sweep failed", slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "sweep failed"})
		return
	}
	log.InfoContext(ctx, "manual sweep", slog.Int("changed", res.Changed), slog.Int("failed", res.Failed))
	writeJSON(w, http.StatusOK, res)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
