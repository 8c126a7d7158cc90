package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/frontforge/frontforge/internal/api"
	"github.com/frontforge/frontforge/internal/config"
	"github.com/frontforge/frontforge/internal/evaluation"
	"github.com/frontforge/frontforge/internal/grader"
	"github.com/frontforge/frontforge/internal/logger"
	"github.com/frontforge/frontforge/internal/roadmap"
	"github.com/frontforge/frontforge/internal/scoring"
	"github.com/frontforge/frontforge/internal/store"
	"github.com/frontforge/frontforge/internal/submission"
	"github.com/frontforge/frontforge/internal/verdictcache"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServer(cmd)
	},
}

func runServer(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log := logger.New(cfg.Log.Level, cfg.Log.FilePath)
	defer log.Sync() //nolint:errcheck

	dbPath := cfg.DB.Path
	if dbPath == "" {
		dbPath, err = resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
	}

	s, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer s.Close()

	graderCfg, ok := grader.DiscoverConfig()
	if !ok {
		return fmt.Errorf("no grading provider configured: set FRONTFORGE_GRADER_PROVIDER and an API key")
	}

	ctx := context.Background()
	provider, err := grader.NewProvider(ctx, graderCfg, log)
	if err != nil {
		return fmt.Errorf("create grading provider: %w", err)
	}

	var cache verdictcache.Cache
	if cfg.Redis.Address != "" {
		redisCache, err := verdictcache.NewRedis(cfg.Redis.Address, cfg.Redis.Password, cfg.Redis.TTL)
		if err != nil {
			return fmt.Errorf("connect verdict cache: %w", err)
		}
		defer redisCache.Close()
		cache = redisCache
		log.Info("verdict cache using redis", zap.String("address", cfg.Redis.Address))
	} else {
		cache = verdictcache.NewMemory(cfg.Redis.TTL)
	}

	fetcher := evaluation.NewHTTPFetcher(30 * time.Second)
	orchestrator := evaluation.NewOrchestrator(s.TaskRepo(), fetcher, provider, log)
	accountant := scoring.NewAccountant(s.Accounting(), log)
	submitSvc := submission.NewService(orchestrator, accountant, cache, log)
	roadmapSvc := roadmap.NewService(s.RoadmapRepo(), s.ProgressRepo())

	server := api.NewServer(
		s.LearnerRepo(), s.TaskRepo(), s.RoadmapRepo(),
		roadmapSvc, submitSvc, accountant,
		log, cfg.Server.RequestTimeout,
	)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           server.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server listening",
			zap.String("addr", addr),
			zap.String("db", dbPath),
			zap.String("grader_model", provider.ModelID()))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case sig := <-stop:
		log.Info("shutting down", zap.String("signal", sig.String()))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
