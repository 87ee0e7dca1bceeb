// Package config centraliza o carregamento de configurações do gateway.
package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"loyalty-gateway/middleware/ratelimit/domain"
)

type Config struct {
	ListenAddr string
	// Production liga o atributo Secure dos cookies.
	Production bool

	Upstream  UpstreamConfig
	Stores    StoresConfig
	RateLimit RateLimitConfig
	Stats     StatsConfig

	MaxInFlight        int
	MaxInFlightTimeout time.Duration
}

type UpstreamConfig struct {
	AuthURL  string
	JinxURL  string
	NasusURL string
	// Empresa é o identificador do tenant no serviço Jinx.
	Empresa string

	Timeout       time.Duration
	ThrottleRPS   float64
	ThrottleBurst int
}

type StoresConfig struct {
	File string
	TTL  time.Duration
}

type RateLimitConfig struct {
	Auth domain.Rule
	OTP  domain.Rule
	API  domain.Rule

	SweepEvery time.Duration

	// KeyByRemoteAddr chaveia os limiters pelo host de RemoteAddr em vez do
	// X-Forwarded-For, para quando o gateway atende sem proxy na frente.
	KeyByRemoteAddr bool
	// TrustForwarded mantém a preferência pelo X-Forwarded-For mesmo
	// chaveando por RemoteAddr.
	TrustForwarded bool
}

type StatsConfig struct {
	Enabled       bool
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	Prefix        string
	TTL           time.Duration
	Bucket        string
	TrackKeys     bool
}

func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		ListenAddr: getEnv("LISTEN_ADDR", ":8080"),
		Production: getEnv("APP_ENV", "development") == "production",
		Upstream: UpstreamConfig{
			AuthURL:       os.Getenv("URL_API_AUTH"),
			JinxURL:       os.Getenv("URL_API_JINX"),
			NasusURL:      os.Getenv("URL_API_NASUS"),
			Empresa:       os.Getenv("EMPRESA"),
			Timeout:       getEnvDuration("UPSTREAM_TIMEOUT", 10*time.Second),
			ThrottleRPS:   getEnvFloat("UPSTREAM_THROTTLE_RPS", 0),
			ThrottleBurst: getEnvInt("UPSTREAM_THROTTLE_BURST", 0),
		},
		Stores: StoresConfig{
			File: getEnv("STORES_FILE", "public/places-details.json"),
			TTL:  getEnvDuration("STORES_CACHE_TTL", time.Hour),
		},
		RateLimit: RateLimitConfig{
			Auth: domain.Rule{
				Max:    getEnvInt("RATE_AUTH_MAX", 10),
				Window: getEnvDuration("RATE_AUTH_WINDOW", 15*time.Minute),
			},
			OTP: domain.Rule{
				Max:    getEnvInt("RATE_OTP_MAX", 5),
				Window: getEnvDuration("RATE_OTP_WINDOW", 5*time.Minute),
			},
			API: domain.Rule{
				Max:    getEnvInt("RATE_API_MAX", 60),
				Window: getEnvDuration("RATE_API_WINDOW", time.Minute),
			},
			SweepEvery:      getEnvDuration("RATE_SWEEP_EVERY", 5*time.Minute),
			KeyByRemoteAddr: getEnvBool("RATE_KEY_BY_REMOTE_ADDR", false),
			TrustForwarded:  getEnvBool("RATE_TRUST_FORWARDED", false),
		},
		Stats: StatsConfig{
			Enabled:       getEnvBool("RATE_STATS_ENABLED", false),
			RedisAddr:     os.Getenv("RATE_STATS_REDIS_ADDR"),
			RedisPassword: os.Getenv("RATE_STATS_REDIS_PASSWORD"),
			RedisDB:       getEnvInt("RATE_STATS_REDIS_DB", 0),
			Prefix:        getEnv("RATE_STATS_PREFIX", "ratelimit:stats"),
			TTL:           getEnvDuration("RATE_STATS_TTL", 24*time.Hour),
			Bucket:        getEnv("RATE_STATS_BUCKET", "minute"),
			TrackKeys:     getEnvBool("RATE_STATS_TRACK_KEYS", false),
		},
		MaxInFlight:        getEnvInt("MAX_INFLIGHT", 100),
		MaxInFlightTimeout: getEnvDuration("MAX_INFLIGHT_TIMEOUT", 0),
	}

	if cfg.Upstream.AuthURL == "" {
		return Config{}, errors.New("URL_API_AUTH is required")
	}
	if cfg.Upstream.JinxURL == "" {
		return Config{}, errors.New("URL_API_JINX is required")
	}
	if cfg.Upstream.NasusURL == "" {
		return Config{}, errors.New("URL_API_NASUS is required")
	}
	if cfg.Upstream.Empresa == "" {
		return Config{}, errors.New("EMPRESA is required")
	}
	if cfg.Stats.Enabled && strings.TrimSpace(cfg.Stats.RedisAddr) == "" {
		return Config{}, errors.New("RATE_STATS_REDIS_ADDR is required when RATE_STATS_ENABLED=true")
	}
	if cfg.RateLimit.Auth.Max <= 0 || cfg.RateLimit.OTP.Max <= 0 || cfg.RateLimit.API.Max <= 0 {
		return Config{}, errors.New("rate limit max values must be > 0")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	return value
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return i
}

func getEnvFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return f
}

func getEnvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
