// Package httpapi exposes the report written by the last run as a small
// read-only API. It holds no state of its own: every request reads through
// the report store, so a new run is visible as soon as its file lands.
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/hamed0406/webcheck/internal/domain"
	"github.com/hamed0406/webcheck/internal/report"
)

type Server struct {
	Logger *zap.Logger
	Store  report.Store
}

func NewServer(l *zap.Logger, st report.Store) *Server {
	return &Server{Logger: l, Store: st}
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(cors.AllowAll().Handler)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Get("/api/report", s.handleReport)
	r.Get("/api/summary", s.handleSummary)

	return r
}

// Serve runs the API on addr until ctx is cancelled, then drains in-flight
// requests before returning.
func (s *Server) Serve(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.Logger.Info("api_listen", zap.String("addr", addr))
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	results, ok := s.loadReport(w)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err := report.WriteJSON(w, results); err != nil {
		s.Logger.Warn("report_encode_error", zap.Error(err))
	}
}

type summary struct {
	Total       int `json:"total"`
	Reachable   int `json:"reachable"`
	Unreachable int `json:"unreachable"`
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	results, ok := s.loadReport(w)
	if !ok {
		return
	}
	sum := summary{Total: len(results)}
	for _, res := range results {
		if res.Success {
			sum.Reachable++
		} else {
			sum.Unreachable++
		}
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(sum)
}

func (s *Server) loadReport(w http.ResponseWriter) ([]domain.CheckResult, bool) {
	results, err := s.Store.Load()
	if err != nil {
		if errors.Is(err, report.ErrNoReport) {
			http.Error(w, "no report yet; run a check first", http.StatusNotFound)
			return nil, false
		}
		s.Logger.Warn("report_load_error", zap.Error(err))
		http.Error(w, "could not load report", http.StatusInternalServerError)
		return nil, false
	}
	return results, true
}
