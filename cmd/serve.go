package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/geowell-tools/wellextract/internal/extract"
	"github.com/geowell-tools/wellextract/internal/model"
	"github.com/geowell-tools/wellextract/internal/store"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the extraction HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		st, err := initStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close() //nolint:errcheck

		port := servePort
		if port == 0 {
			port = cfg.Server.Port
		}

		limiter := rate.NewLimiter(rate.Limit(cfg.Server.RateLimitRPS), cfg.Server.RateBurst)
		srv := &http.Server{
			Addr:    fmt.Sprintf(":%d", port),
			Handler: newRouter(newPipeline(), st, limiter),
		}

		// Graceful shutdown
		go func() {
			<-ctx.Done()
			zap.L().Info("shutting down server")
			srv.Shutdown(ctx) //nolint:errcheck
		}()

		zap.L().Info("starting server", zap.Int("port", port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return eris.Wrap(err, "server listen")
		}

		return nil
	},
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "server port (default from config)")
	rootCmd.AddCommand(serveCmd)
}

// newRouter assembles the API routes. Split out of the command so handler
// tests can exercise the full middleware stack.
func newRouter(p *extract.Pipeline, st store.Store, limiter *rate.Limiter) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))
	r.Use(rateLimit(limiter))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Post("/v1/extract", handleExtract(p, st))
	r.Get("/v1/runs", handleListRuns(st))
	r.Get("/v1/runs/{id}", handleGetRun(st))

	return r
}

// rateLimit rejects requests once the shared token bucket is exhausted.
func rateLimit(limiter *rate.Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				writeError(w, http.StatusTooManyRequests, "rate limit exceeded")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func handleExtract(p *extract.Pipeline, st store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var bundle model.FragmentBundle
		if err := json.NewDecoder(r.Body).Decode(&bundle); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if len(bundle.Trajectory) == 0 && len(bundle.Casing) == 0 && len(bundle.Other) == 0 {
			writeError(w, http.StatusBadRequest, "bundle has no fragments")
			return
		}

		run, err := st.CreateRun(r.Context(), bundle.Well)
		if err != nil {
			zap.L().Error("create run failed", zap.Error(err))
			writeError(w, http.StatusInternalServerError, "store unavailable")
			return
		}

		result, report := p.Run(bundle)
		if err := st.CompleteRun(r.Context(), run.ID, result, report); err != nil {
			zap.L().Error("store run failed", zap.String("run_id", run.ID), zap.Error(err))
			writeError(w, http.StatusInternalServerError, "store unavailable")
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"run_id": run.ID,
			"result": result,
			"report": report,
		})
	}
}

func handleListRuns(st store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter := store.RunFilter{
			Status:   model.RunStatus(r.URL.Query().Get("status")),
			WellName: r.URL.Query().Get("well"),
		}

		runs, err := st.ListRuns(r.Context(), filter)
		if err != nil {
			zap.L().Error("list runs failed", zap.Error(err))
			writeError(w, http.StatusInternalServerError, "store unavailable")
			return
		}
		if runs == nil {
			runs = []model.Run{}
		}
		writeJSON(w, http.StatusOK, runs)
	}
}

func handleGetRun(st store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		run, err := st.GetRun(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			if eris.Is(err, store.ErrNotFound) {
				writeError(w, http.StatusNotFound, "run not found")
				return
			}
			zap.L().Error("get run failed", zap.Error(err))
			writeError(w, http.StatusInternalServerError, "store unavailable")
			return
		}
		writeJSON(w, http.StatusOK, run)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
