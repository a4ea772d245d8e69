package main

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
	"golang.org/x/sync/errgroup"

	"github.com/tsenadheera/portfolio/config"
	httpapi "github.com/tsenadheera/portfolio/internal/api/http"
	"github.com/tsenadheera/portfolio/internal/bootstrap"
	"github.com/tsenadheera/portfolio/internal/contact/service"
	"github.com/tsenadheera/portfolio/internal/jobs"
	"github.com/tsenadheera/portfolio/internal/logging"
	"github.com/tsenadheera/portfolio/internal/ratelimit"
	"github.com/tsenadheera/portfolio/internal/render"
)

const shutdownTimeout = 10 * time.Second

// sweepSpec schedules the in-memory limiter sweep.
var sweepSpec = jobs.SweepSpec

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		logger, err := logging.New(cfg.App.Environment, cfg.App.LogLevel)
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()
		zap.ReplaceGlobals(logger)

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return serve(ctx, cfg, logger)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func serve(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	bootstrap.SetGinMode(cfg.App.Environment)

	portfolio, err := loadContent(cfg.App.ContentPath)
	if err != nil {
		return err
	}
	renderer, err := render.New(portfolio)
	if err != nil {
		return err
	}

	var (
		store  ratelimit.Store
		pinger httpapi.Pinger
		sweep  *ratelimit.MemoryStore
	)
	if cfg.Redis.Addr != "" {
		client, err := bootstrap.OpenRedis(ctx, bootstrap.RedisOptions{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			return err
		}
		defer client.Close()

		rs := ratelimit.NewRedisStore(client)
		store, pinger = rs, rs
	} else {
		sweep = ratelimit.NewMemoryStore(time.Now)
		store = sweep
	}
	limiter := ratelimit.New(store, cfg.RateLimit.Max, cfg.RateLimit.Window, "portfolio:contact:")

	sink, err := bootstrap.BuildSink(ctx, cfg.Mail)
	if err != nil {
		return err
	}
	contact := service.NewContactService(sink, service.Options{
		To:          cfg.Mail.To,
		From:        cfg.Mail.From,
		SendTimeout: cfg.Mail.Timeout,
	})

	router, err := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName:    cfg.App.ServiceName,
		Version:        cfg.App.Version,
		Production:     cfg.IsProduction(),
		Logger:         logger,
		Renderer:       renderer,
		Contact:        contact,
		Limiter:        limiter,
		StorePinger:    pinger,
		StaticDir:      cfg.Server.StaticDir,
		CORSOrigins:    cfg.Server.CORSOrigins,
		TrustedProxies: cfg.Server.TrustedProxies,
	})
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
	}

	// Jobs are registered before anything is started so a bad schedule
	// cannot leave a listener behind.
	var sched *jobs.Scheduler
	if sweep != nil {
		sched = jobs.NewScheduler(logger)
		if err := sched.AddSweep(sweepSpec, "ratelimit-sweep", sweep); err != nil {
			return err
		}
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down server")

		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(sctx)
	})

	if sched != nil {
		g.Go(func() error { return sched.Run(gctx) })
	}

	emailConfigured := "No"
	if contact.Configured() {
		emailConfigured = "Yes"
	}
	logger.Info("server running",
		zap.String("addr", srv.Addr),
		zap.String("url", "http://localhost:"+cfg.Server.Port),
		zap.String("environment", cfg.App.Environment),
		zap.String("email_configured", emailConfigured),
		zap.String("rate_limit_store", store.Name()),
	)

	return g.Wait()
}
