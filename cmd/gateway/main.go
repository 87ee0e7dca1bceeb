package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"loyalty-gateway/config"
	"loyalty-gateway/gateway"
	"loyalty-gateway/middleware/maxinflight"
	"loyalty-gateway/middleware/ratelimit"
	ratelimitdomain "loyalty-gateway/middleware/ratelimit/domain"
	"loyalty-gateway/middleware/ratelimit/infra"
	"loyalty-gateway/middleware/requestlog"
	"loyalty-gateway/storesdata"
	"loyalty-gateway/upstream"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		errLog := zerolog.New(os.Stderr)
		errLog.Fatal().Err(err).Msg("config error")
	}

	log := newLogger(cfg.Production)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	var statsStore ratelimitdomain.StatsStore
	if cfg.Stats.Enabled {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Stats.RedisAddr,
			Password: cfg.Stats.RedisPassword,
			DB:       cfg.Stats.RedisDB,
		})
		defer func() { _ = rdb.Close() }()

		pingCtx, pingCancel := context.WithTimeout(ctx, 2*time.Second)
		_, err := rdb.Ping(pingCtx).Result()
		pingCancel()
		if err != nil {
			log.Fatal().Err(err).Msg("redis stats ping error")
		}

		statsStore = infra.NewRedisStatsStore(
			rdb,
			infra.WithStatsPrefix(cfg.Stats.Prefix),
			infra.WithStatsTTL(cfg.Stats.TTL),
			infra.WithStatsBucket(cfg.Stats.Bucket),
			infra.WithStatsTrackKeys(cfg.Stats.TrackKeys),
		)
	}

	// sem proxy na frente o X-Forwarded-For é forjável; RemoteAddr vira a chave
	var keyFn ratelimit.KeyFunc
	if cfg.RateLimit.KeyByRemoteAddr {
		keyFn = ratelimit.RemoteAddrKeyFunc(cfg.RateLimit.TrustForwarded)
	}

	limiters := gateway.Limiters{
		Auth: newLimiter(ctx, "auth", cfg.RateLimit.Auth, cfg.RateLimit.SweepEvery, statsStore, keyFn,
			"Demasiados intentos de autenticación. Intente de nuevo en 15 minutos."),
		OTP: newLimiter(ctx, "otp", cfg.RateLimit.OTP, cfg.RateLimit.SweepEvery, statsStore, keyFn,
			"Demasiados intentos de verificación. Intente de nuevo en 5 minutos."),
		API: newLimiter(ctx, "api", cfg.RateLimit.API, cfg.RateLimit.SweepEvery, statsStore, keyFn,
			"Límite de solicitudes alcanzado. Intente de nuevo en un momento."),
	}

	clientOpts := func(name string) []upstream.Option {
		return []upstream.Option{
			upstream.WithTimeout(cfg.Upstream.Timeout),
			upstream.WithThrottle(cfg.Upstream.ThrottleRPS, cfg.Upstream.ThrottleBurst),
			upstream.WithLogger(log.With().Str("upstream", name).Logger()),
		}
	}

	h := &gateway.Handler{
		Auth:       upstream.NewAuthClient(cfg.Upstream.AuthURL, clientOpts("auth")...),
		Jinx:       upstream.NewJinxClient(cfg.Upstream.JinxURL, clientOpts("jinx")...),
		Nasus:      upstream.NewNasusClient(cfg.Upstream.NasusURL, clientOpts("nasus")...),
		Stores:     storesdata.NewCache(cfg.Stores.File, cfg.Stores.TTL),
		Empresa:    cfg.Upstream.Empresa,
		Production: cfg.Production,
		Log:        log,
	}

	handler := h.Routes(limiters)
	handler = maxinflight.Middleware(maxinflight.Options{
		Max:            cfg.MaxInFlight,
		AcquireTimeout: cfg.MaxInFlightTimeout,
	})(handler)
	handler = requestlog.Middleware(log)(handler)

	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       90 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	log.Info().
		Str("addr", cfg.ListenAddr).
		Bool("production", cfg.Production).
		Bool("stats", cfg.Stats.Enabled).
		Int("max_inflight", cfg.MaxInFlight).
		Msg("gateway listening")

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("server error")
	}
}

// newLimiter monta uma instância independente de rate limit (store próprio,
// janitor próprio) já embrulhada como middleware.
func newLimiter(ctx context.Context, name string, rule ratelimitdomain.Rule, sweepEvery time.Duration, stats ratelimitdomain.StatsStore, keyFn ratelimit.KeyFunc, message string) func(http.Handler) http.Handler {
	store := infra.NewStore(rule.Window, infra.WithSweepEvery(sweepEvery))
	store.StartJanitor(ctx)

	return ratelimit.Middleware(ratelimit.Options{
		Name:    name,
		Store:   store,
		Rule:    rule,
		Message: message,
		Stats:   stats,
		KeyFn:   keyFn,
	})
}

func newLogger(production bool) zerolog.Logger {
	if production {
		return zerolog.New(os.Stdout).With().Timestamp().Logger()
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
}
