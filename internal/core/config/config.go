package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Addr     string
	LogLevel string

	// zone catalogue source; empty means the compiled-in set
	ZonesShapefile string

	// engine tuning
	SnapCandidates     int
	SampleResolutionNM float64

	// fuel economics
	FuelPriceLowUSD   float64
	FuelPriceHighUSD  float64
	FuelBurnTonsPerNM float64
	PricingFile       string

	// point-check cache
	CheckCacheSize  int
	CheckCacheH3Res int
	RedisEnabled    bool
	RedisAddr       string
	CacheOpTimeout  time.Duration
	CacheTTL        time.Duration
}

func FromEnv() Config {
	return Config{
		Addr:               getenv("ADDR", ":8080"),
		LogLevel:           getenv("LOG_LEVEL", "info"),
		ZonesShapefile:     getenv("ZONES_SHAPEFILE", ""),
		SnapCandidates:     getint("SNAP_CANDIDATES", 3),
		SampleResolutionNM: getfloat("SAMPLE_RESOLUTION_NM", 1.0),
		FuelPriceLowUSD:    getfloat("FUEL_PRICE_LOW_USD", 0),
		FuelPriceHighUSD:   getfloat("FUEL_PRICE_HIGH_USD", 0),
		FuelBurnTonsPerNM:  getfloat("FUEL_BURN_TONS_PER_NM", 0),
		PricingFile:        getenv("PRICING_FILE", ""),
		CheckCacheSize:     getint("CHECK_CACHE_SIZE", 4096),
		CheckCacheH3Res:    getint("CHECK_CACHE_H3_RES", 7),
		RedisEnabled:       getbool("REDIS_ENABLED", false),
		RedisAddr:          getenv("REDIS_ADDR", "localhost:6379"),
		CacheOpTimeout:     getduration("CACHE_OP_TIMEOUT", 250*time.Millisecond),
		CacheTTL:           getduration("CACHE_TTL", 24*time.Hour),
	}
}

// Pricing is the optional YAML pricing file. File values fill in whatever the
// environment left unset; explicit env vars win.
type Pricing struct {
	LowSulphurUSDPerTon  float64 `yaml:"low_sulphur_usd_per_ton"`
	HighSulphurUSDPerTon float64 `yaml:"high_sulphur_usd_per_ton"`
	BurnRateTonsPerNM    float64 `yaml:"burn_rate_tons_per_nm"`
}

// ApplyPricingFile merges the pricing file into the config.
func (c *Config) ApplyPricingFile(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read pricing file: %w", err)
	}
	var p Pricing
	if err := yaml.Unmarshal(raw, &p); err != nil {
		return fmt.Errorf("parse pricing file %s: %w", path, err)
	}
	if c.FuelPriceLowUSD == 0 {
		c.FuelPriceLowUSD = p.LowSulphurUSDPerTon
	}
	if c.FuelPriceHighUSD == 0 {
		c.FuelPriceHighUSD = p.HighSulphurUSDPerTon
	}
	if c.FuelBurnTonsPerNM == 0 {
		c.FuelBurnTonsPerNM = p.BurnRateTonsPerNM
	}
	return nil
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getint(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getfloat(k string, def float64) float64 {
	if v := os.Getenv(k); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func getbool(k string, def bool) bool {
	if v := os.Getenv(k); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func getduration(k string, def time.Duration) time.Duration {
	if v := os.Getenv(k); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
