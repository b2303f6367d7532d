package main

import (
	"context"
	"net/http"

	"github.com/rs/zerolog/log"

	"hotel_portal/internal/adapters/backend"
	server "hotel_portal/internal/adapters/http_server"
	"hotel_portal/internal/adapters/observability"
	redisad "hotel_portal/internal/adapters/redis"
	"hotel_portal/internal/app"
	"hotel_portal/internal/session"
	"hotel_portal/internal/shared"
)

func main() {
	cfg, err := shared.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("config load failed")
	}

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	observability.Serve()

	// session store backed by redis, rehydrated on boot
	kv := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	store := session.NewStore(kv, log.Logger)

	// upstream clients; the store doubles as the bearer token source
	authAPI := backend.NewAuth(cfg.AuthBase, store, cfg.UpstreamTimeout, cfg.UpstreamRPS)
	roomsAPI := backend.NewRooms(cfg.RoomsBase, store, cfg.UpstreamTimeout, cfg.UpstreamRPS)
	payAPI := backend.NewPayments(cfg.PaymentBase, store, cfg.UpstreamTimeout, cfg.UpstreamRPS)

	manager := session.NewManager(authAPI, store, log.Logger)
	if err := manager.Init(context.Background()); err != nil {
		log.Warn().Err(err).Msg("session restore failed, starting logged out")
	}

	policy := cfg.FallbackPolicy()
	catalog := app.NewCatalogService(roomsAPI, policy, log.Logger)
	reservations := app.NewReservationService(roomsAPI, policy, log.Logger)
	checkout := app.NewCheckoutService(roomsAPI, payAPI, log.Logger)

	// http
	srv := server.New()
	reg := observability.InitRegistry()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{
		Auth:         manager,
		Profile:      authAPI,
		Catalog:      catalog,
		Reservations: reservations,
		Checkout:     checkout,
	})

	log.Info().Str("addr", cfg.HTTPAddr).Str("fallback", cfg.FallbackMode).Msg("portal listening")
	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux()}

	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("http server failed")
	}
}
