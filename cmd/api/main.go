package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"offsetpager/internal/config"
	httpx "offsetpager/internal/http"
	middlewarex "offsetpager/internal/http/middleware"
	"offsetpager/internal/logging"
	"offsetpager/internal/pagination"
	"offsetpager/internal/services/data"
	"offsetpager/internal/store/repositories"
)

func main() {
	cfg := config.Load()
	logging.Setup(logging.Config{Level: cfg.Log.Level, Pretty: cfg.Log.Pretty})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Init storage
	people, closeStore := openPeople(ctx, cfg)
	defer closeStore()
	log.Info().Strs("filters", people.Schema().Fields()).Msg("people listing ready")

	pager, err := pagination.New(cfg.Page)
	if err != nil {
		log.Fatal().Err(err).Msg("paginator")
	}

	deps := httpx.RouterDependencies{
		Config:      cfg,
		DataService: data.NewService(pager, people),
	}
	if cfg.Redis.Addr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr})
		defer rdb.Close()
		deps.Limiter = middlewarex.NewRedisCounter(rdb)
	}

	srv := &http.Server{
		Addr:         ":" + cfg.App.Port,
		Handler:      httpx.NewRouter(deps),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info().Str("driver", cfg.DB.Driver).Msgf("offsetpager API listening on :%s", cfg.App.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	cancel()
	ctx2, cancel2 := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel2()
	_ = srv.Shutdown(ctx2)
	log.Info().Msg("server stopped")
}

// openPeople returns the people source for the configured driver and its
// release function.
func openPeople(ctx context.Context, cfg config.Cfg) (repositories.PersonRepository, func()) {
	switch cfg.DB.Driver {
	case config.DriverPostgres:
		return openPostgres(ctx, cfg)
	case config.DriverMySQL:
		return openMySQL(ctx, cfg)
	default:
		return openMemory(cfg), func() {}
	}
}
