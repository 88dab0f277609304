package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/spf13/pflag"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"google.golang.org/grpc"

	"github.com/f-coded/omotanwa-aesthetics-glow/cart"
	"github.com/f-coded/omotanwa-aesthetics-glow/catalog"
	"github.com/f-coded/omotanwa-aesthetics-glow/checkout"
	"github.com/f-coded/omotanwa-aesthetics-glow/common"
	"github.com/f-coded/omotanwa-aesthetics-glow/config"
	"github.com/f-coded/omotanwa-aesthetics-glow/grpcapi"
	"github.com/f-coded/omotanwa-aesthetics-glow/httpapi"
	"github.com/f-coded/omotanwa-aesthetics-glow/pricing"
	"github.com/f-coded/omotanwa-aesthetics-glow/session"
	"github.com/f-coded/omotanwa-aesthetics-glow/storefront"
)

const Domain = "storefront"

func main() {
	cfg, err := config.Load(os.Args[1:], os.Getenv)
	if errors.Is(err, pflag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("storefront stopped with errors", zap.Error(err))
	}
}

func newLogger(cfg config.Config) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	if cfg.Dev {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(cfg.LogLevel)
	return zc.Build()
}

func run(ctx context.Context, cfg config.Config, logger *zap.Logger) error {
	cat, err := catalog.Default()
	if err != nil {
		return err
	}

	cartOpts := []cart.Option{cart.WithProjector(common.NewLogProjector(logger))}
	if cfg.PrettyEvents {
		cartOpts = append(cartOpts, cart.WithProjector(common.NewPrettyProjector(os.Stdout)))
	}
	sessions := session.NewRegistry(logger,
		session.WithCartOptions(cartOpts...),
		session.WithPricingOptions(pricing.WithRegion(pricing.RegionUSA)),
	)
	orders := checkout.NewService(checkout.SimulatedProcessor{Delay: cfg.CheckoutDelay}, logger)
	app := storefront.New(cat, sessions, orders, logger)

	logger.Info("storefront starting",
		zap.Int("products", cat.Len()),
		zap.String("grpc_port", cfg.Port),
		zap.String("http_addr", cfg.HTTPAddr),
		zap.Duration("session_idle_timeout", cfg.SessionIdleTimeout),
	)

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs error
	)
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// A failing server takes the others down with it.
	goServe := func(name string, serve func() error) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := serve(); err != nil {
				mu.Lock()
				errs = multierr.Append(errs, fmt.Errorf("%s: %w", name, err))
				mu.Unlock()
				cancel()
			}
		}()
	}

	// Both transports draw checkout tokens from the same per-IP buckets.
	limiter := httpapi.NewIPLimiter(cfg.CheckoutRateRPS, cfg.CheckoutRateBurst)

	goServe("grpc", func() error {
		return common.RunServer(ctx, common.ServerConfig{
			Domain:  Domain,
			Port:    cfg.Port,
			Logger:  logger,
			Options: []grpc.ServerOption{grpc.ChainUnaryInterceptor(grpcapi.CheckoutLimit(limiter))},
		}, grpcapi.NewServer(app).Register())
	})

	if cfg.HTTPAddr != "" {
		goServe("http", func() error {
			return httpapi.ListenAndServe(ctx, cfg.HTTPAddr, httpapi.NewRouter(app, logger, limiter), logger)
		})
	}

	goServe("rate-limit-janitor", func() error {
		runEvery(ctx, time.Minute, func() { limiter.Sweep(cfg.SessionIdleTimeout) })
		return nil
	})

	goServe("session-janitor", func() error {
		sessions.Run(ctx, max(cfg.SessionIdleTimeout/2, time.Second), cfg.SessionIdleTimeout)
		return nil
	})

	wg.Wait()
	return errs
}

func runEvery(ctx context.Context, interval time.Duration, fn func()) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			fn()
		}
	}
}
