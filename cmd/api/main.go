// The dealership gateway authenticates users, serves the car catalog, and
// proxies dealer, review, inventory and chat requests to their downstream
// services.
//
// @title        Dealership Gateway API
// @version      1.0
// @description  Backend gateway for the car dealership platform.
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/bestcars/dealership-gateway/internal/api"
	"github.com/bestcars/dealership-gateway/internal/infrastructure/config"
	mongodb "github.com/bestcars/dealership-gateway/internal/infrastructure/db/mongo"
	"github.com/bestcars/dealership-gateway/internal/infrastructure/db/postgres"
	redisdb "github.com/bestcars/dealership-gateway/internal/infrastructure/db/redis"
	"github.com/bestcars/dealership-gateway/pkg/logger"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx := context.Background()

	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() { _ = mongoClient.Disconnect(ctx) }()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() { _ = rdb.Close() }()

	pg, err := postgres.Connect(ctx, postgres.Config{DSN: cfg.Postgres.DSN()})
	if err != nil {
		log.Fatal().Err(err).Msg("postgres connection failed")
	}
	defer func() { _ = pg.Close() }()

	if err := postgres.NewCatalogRepository(pg).EnsureSchema(ctx); err != nil {
		log.Fatal().Err(err).Msg("catalog schema setup failed")
	}
	if err := mongodb.NewUserRepository(db).EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("user index setup failed")
	}

	e := api.NewRouter(cfg, db, rdb, pg, log)

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil {
			log.Info().Err(err).Msg("http server stopped")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("dealership gateway started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
