package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/sangkwonlab/sangkwon-cli/internal/analysis"
	"github.com/sangkwonlab/sangkwon-cli/internal/cache"
	"github.com/sangkwonlab/sangkwon-cli/internal/cost"
	"github.com/sangkwonlab/sangkwon-cli/internal/history"
	"github.com/sangkwonlab/sangkwon-cli/internal/tool"
	"github.com/sangkwonlab/sangkwon-cli/pkg/bizinfo"
	"github.com/sangkwonlab/sangkwon-cli/pkg/kakao"
	"github.com/sangkwonlab/sangkwon-cli/pkg/semas"
)

// appEnv bundles the wired analysis service and its collaborators for
// the command layer.
type appEnv struct {
	svc     *analysis.Service
	handler *tool.Handler
	history *history.Store
}

// initAnalysis validates the config for the mode and wires the clients.
func initAnalysis(ctx context.Context, mode string) (*appEnv, error) {
	if err := cfg.Validate(mode); err != nil {
		return nil, err
	}

	kc := kakao.NewClient(cfg.Kakao.Key,
		kakao.WithBaseURL(cfg.Kakao.BaseURL),
		kakao.WithHTTPClient(&http.Client{Timeout: time.Duration(cfg.Kakao.TimeoutSecs) * time.Second}),
		kakao.WithRateLimit(cfg.Kakao.RateLimit, cfg.Kakao.RateBurst),
	)

	opts := []analysis.Option{
		analysis.WithGrantFeed(bizinfo.NewClient(cfg.Bizinfo.Key,
			bizinfo.WithBaseURL(cfg.Bizinfo.BaseURL),
			bizinfo.WithHTTPClient(&http.Client{Timeout: time.Duration(cfg.Bizinfo.TimeoutSecs) * time.Second}),
		)),
	}

	// The store registry needs its own service key; without one the
	// analyses simply run on place-search data alone.
	if cfg.Semas.Key != "" {
		opts = append(opts, analysis.WithStoreRegistry(semas.NewClient(cfg.Semas.Key,
			semas.WithBaseURL(cfg.Semas.BaseURL),
			semas.WithHTTPClient(&http.Client{Timeout: time.Duration(cfg.Semas.TimeoutSecs) * time.Second}),
		)))
	} else {
		zap.L().Info("semas.key not set, store registry enrichment disabled")
	}

	rates := cost.DefaultRates()
	if cfg.Rates.Path != "" {
		loaded, err := cost.LoadRates(cfg.Rates.Path)
		if err != nil {
			zap.L().Warn("rates override not loaded, using defaults",
				zap.String("path", cfg.Rates.Path), zap.Error(err))
		} else {
			rates = loaded
		}
	}
	opts = append(opts, analysis.WithCalculator(cost.NewCalculator(rates)))
	opts = append(opts, analysis.WithCache(cache.New(cfg.Cache.MaxEntries)))

	env := &appEnv{svc: analysis.NewService(kc, opts...)}

	if cfg.History.Path != "" {
		store, err := history.Open(cfg.History.Path)
		if err != nil {
			zap.L().Warn("history store not opened, runs will not be recorded",
				zap.String("path", cfg.History.Path), zap.Error(err))
		} else if err := store.Migrate(ctx); err != nil {
			zap.L().Warn("history migration failed, runs will not be recorded", zap.Error(err))
			store.Close()
		} else {
			env.history = store
		}
	}

	env.handler = tool.NewHandler(env.svc, env.history)
	return env, nil
}

// Close releases held resources.
func (e *appEnv) Close() {
	if e.history != nil {
		e.history.Close()
	}
}

// printJSON writes an analysis envelope to stdout for CLI consumption.
func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}
