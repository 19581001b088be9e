package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/cricketpro/cricket-scoring-service/internal/config"
	"github.com/cricketpro/cricket-scoring-service/internal/handler"
	"github.com/cricketpro/cricket-scoring-service/internal/logger"
	"github.com/cricketpro/cricket-scoring-service/internal/repository/memory"
	"github.com/cricketpro/cricket-scoring-service/internal/service"
	"github.com/cricketpro/cricket-scoring-service/internal/snapshot"
)

func main() {
	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("config loading failed: %v", err)
	}

	appLogger, err := logger.New(&cfg.Logger)
	if err != nil {
		log.Fatalf("logger initialization failed: %v", err)
	}

	// One in-memory store per process, injected everywhere. State does not
	// survive a restart; the backup file plus reconciliation covers that.
	store := memory.NewStore()
	teams := store.Teams()
	players := store.Players()
	matches := store.Matches()

	teamSvc := service.NewTeamService(teams, players, matches, appLogger)
	playerSvc := service.NewPlayerService(players, teams, appLogger)
	matchSvc := service.NewMatchService(matches, teams, players, appLogger)

	files := snapshot.NewFileStore(cfg.Backup.Path)
	mgr := snapshot.NewManager(teamSvc, playerSvc, matchSvc, appLogger)
	reconciler := snapshot.NewReconciler(mgr, files, teamSvc, playerSvc, matchSvc, appLogger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Reconcile before serving so clients never observe the pre-restore state.
	if cfg.Backup.ReconcileOnStart {
		if replaced, report, err := reconciler.Run(ctx); err != nil {
			appLogger.Error().Err(err).Msg("startup reconciliation failed")
		} else if replaced {
			appLogger.Info().Bool("clean", report.Success).Int("errors", len(report.Errors)).Msg("server state restored from backup")
		}
	}

	if cfg.Logger.Env != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())

	corsCfg := cors.DefaultConfig()
	if len(cfg.Server.CORSOrigins) > 0 {
		corsCfg.AllowOrigins = cfg.Server.CORSOrigins
	} else {
		corsCfg.AllowAllOrigins = true
	}
	corsCfg.AllowMethods = []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"}
	r.Use(cors.New(corsCfg))

	handler.Register(r, store, teamSvc, playerSvc, matchSvc, handler.NewDataHandler(mgr, files, reconciler))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler: r,
	}

	go func() {
		appLogger.Info().Str("addr", srv.Addr).Msg("service started")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	appLogger.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeoutSec)*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Error().Err(err).Msg("graceful shutdown failed")
	}
}
