package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/ecomarine/ecaroute/internal/cache/pointcache"
	"github.com/ecomarine/ecaroute/internal/compliance"
	"github.com/ecomarine/ecaroute/internal/core/config"
	"github.com/ecomarine/ecaroute/internal/core/observability"
	"github.com/ecomarine/ecaroute/internal/core/router"
	"github.com/ecomarine/ecaroute/internal/core/server"
	"github.com/ecomarine/ecaroute/internal/engine"
	"github.com/ecomarine/ecaroute/internal/graph"
	"github.com/ecomarine/ecaroute/internal/logger"
	"github.com/ecomarine/ecaroute/internal/zones"
)

func main() {
	os.Exit(run())
}

func run() int {
	addrFlag := flag.String("addr", "", "listen address, overrides ADDR")
	shapefileFlag := flag.String("zones", "", "path to a zones shapefile, overrides ZONES_SHAPEFILE")
	flag.Parse()

	cfg := config.FromEnv()
	if *addrFlag != "" {
		cfg.Addr = *addrFlag
	}
	if *shapefileFlag != "" {
		cfg.ZonesShapefile = strings.TrimSpace(*shapefileFlag)
	}

	zl := logger.Build(logger.Config{
		Level:     cfg.LogLevel,
		Console:   strings.ToLower(os.Getenv("LOG_CONSOLE")) == "true",
		Component: "ecarouted",
	}, os.Stdout)
	appLog := logger.NewSlog(&zl)

	observability.ExposeBuildInfo(server.Version)

	if cfg.PricingFile != "" {
		if err := cfg.ApplyPricingFile(cfg.PricingFile); err != nil {
			appLog.Error("pricing file rejected", "path", cfg.PricingFile, "err", err)
			return 1
		}
	}

	// Zone catalogue is immutable after this point; a bad catalogue is a
	// deployment error, not something to limp along with.
	zs := zones.Builtin()
	if cfg.ZonesShapefile != "" {
		loaded, err := zones.FromShapefile(cfg.ZonesShapefile)
		if err != nil {
			appLog.Error("shapefile load failed", "path", cfg.ZonesShapefile, "err", err)
			return 1
		}
		zs = loaded
	}
	cat, err := zones.NewCatalogue(zs)
	if err != nil {
		appLog.Error("zone catalogue invalid", "err", err)
		return 1
	}

	g, err := graph.Build(graph.Network())
	if err != nil {
		appLog.Error("sea-lane network invalid", "err", err)
		return 1
	}
	appLog.Info("data loaded", "zones", cat.Len(), "nodes", g.Len())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var shared pointcache.SharedTier
	if cfg.RedisEnabled {
		tier, err := pointcache.NewRedisTier(ctx, cfg.RedisAddr, cfg.CacheTTL)
		if err != nil {
			appLog.Error("redis unavailable", "addr", cfg.RedisAddr, "err", err)
			return 1
		}
		defer func() { _ = tier.Close() }()
		shared = tier
	}

	var cache *pointcache.Cache
	if cfg.CheckCacheSize > 0 {
		cache, err = pointcache.New(cfg.CheckCacheSize, cfg.CheckCacheH3Res, cat.Fingerprint(), shared, cfg.CacheOpTimeout)
		if err != nil {
			appLog.Error("point cache init failed", "err", err)
			return 1
		}
	}

	prices := compliance.FuelPrices{}
	if cfg.FuelPriceLowUSD > 0 && cfg.FuelPriceHighUSD > 0 {
		prices = compliance.FuelPrices{
			LowSulphurUSDPerTon:  cfg.FuelPriceLowUSD,
			HighSulphurUSDPerTon: cfg.FuelPriceHighUSD,
		}
	}

	eng := engine.New(g, cat, cache, engine.Config{
		SnapCandidates:     cfg.SnapCandidates,
		SampleResolutionNM: cfg.SampleResolutionNM,
		Prices:             prices,
		BurnRateTonsPerNM:  cfg.FuelBurnTonsPerNM,
	})

	h := &router.Handlers{Engine: eng, Log: appLog}

	appLog.Info("starting ecarouted",
		"addr", cfg.Addr,
		"version", server.Version,
		"redis", cfg.RedisEnabled)

	if err := server.Run(ctx, cfg, appLog, h); err != nil {
		appLog.Error("server exited with error", "err", err)
		return 1
	}
	appLog.Info("server stopped")
	return 0
}
