package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sangkwonlab/sangkwon-cli/internal/history"
	"github.com/sangkwonlab/sangkwon-cli/internal/model"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP analysis server",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		env, err := initAnalysis(ctx, "serve")
		if err != nil {
			return err
		}
		defer env.Close()

		port := servePort
		if port == 0 {
			port = cfg.Server.Port
		}

		srv := &http.Server{
			Addr:    fmt.Sprintf(":%d", port),
			Handler: newRouter(env),
		}

		go func() {
			<-ctx.Done()
			zap.L().Info("shutting down server")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			_ = srv.Shutdown(shutdownCtx)
		}()

		zap.L().Info("starting server", zap.Int("port", port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return eris.Wrap(err, "server listen")
		}

		return nil
	},
}

func newRouter(env *appEnv) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Get("/cache/stats", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, env.svc.CacheStats())
	})

	r.Route("/v1", func(r chi.Router) {
		r.Post("/analyze/area", opHandler(env.svc.AnalyzeArea))
		r.Post("/analyze/compare", opHandler(env.svc.CompareLocations))
		r.Post("/analyze/competitors", opHandler(env.svc.FindCompetitors))
		r.Post("/analyze/population", opHandler(env.svc.AnalyzePopulation))
		r.Post("/analyze/facilities", opHandler(env.svc.FindNearbyFacilities))
		r.Post("/finance/cost", opHandler(env.svc.CalculateStartupCost))
		r.Post("/finance/breakeven", opHandler(env.svc.AnalyzeBreakeven))
		r.Post("/finance/simulate", opHandler(env.svc.SimulateRevenue))
		r.Post("/finance/rent", opHandler(env.svc.EstimateRent))
		r.Post("/guide/funds", opHandler(env.svc.RecommendPolicyFunds))
		r.Post("/guide/trends", opHandler(env.svc.GetBusinessTrends))
		r.Post("/guide/checklist", opHandler(env.svc.GetStartupChecklist))
	})

	if env.history != nil {
		r.Get("/v1/history", func(w http.ResponseWriter, req *http.Request) {
			entries, err := env.history.List(req.Context(), history.Filter{
				Tool:       req.URL.Query().Get("tool"),
				OnlyFailed: req.URL.Query().Get("failed") == "true",
			})
			if err != nil {
				writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "history unavailable"})
				return
			}
			writeJSON(w, http.StatusOK, entries)
		})
	}

	return r
}

// opHandler adapts an analysis operation to an HTTP endpoint. The
// envelope travels as-is; the HTTP status mirrors its error code.
func opHandler[Req any, T any](op func(context.Context, Req) model.Result[T]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req Req
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest,
				model.Fail[T](model.CodeAnalysisFailed, "요청 본문을 해석할 수 없습니다", ""))
			return
		}

		res := op(r.Context(), req)
		status := http.StatusOK
		if !res.Success {
			status = statusFor(res.Error.Code)
		}
		writeJSON(w, status, res)
	}
}

func statusFor(code string) int {
	switch code {
	case model.CodeLocationNotFound:
		return http.StatusNotFound
	case model.CodeUnknownBusinessType, model.CodeNoValidLocations:
		return http.StatusBadRequest
	case model.CodeAPIKeyMissing:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// requestLogger logs one line per request with the chi request ID.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		zap.L().Info("request",
			zap.String("id", middleware.GetReqID(r.Context())),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Duration("duration", time.Since(start)),
		)
	})
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "server port (default from config)")
	rootCmd.AddCommand(serveCmd)
}
