package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bandhan/config"
	"bandhan/database"
	"bandhan/handlers"
	"bandhan/middleware"
	"bandhan/routes"
	"bandhan/ws"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	log.Info().Msg("connecting to MongoDB")

	var db *database.Mongo
	for attempt := 1; attempt <= 3; attempt++ {
		db, err = database.Connect(context.Background(), cfg.MongoURI, cfg.MongoDatabase)
		if err == nil {
			break
		}
		log.Warn().Err(err).Int("attempt", attempt).Msg("MongoDB connection failed")
		time.Sleep(2 * time.Second)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("could not connect to MongoDB")
	}
	log.Info().Msg("MongoDB connected")

	idxCtx, idxCancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := db.EnsureIndexes(idxCtx); err != nil {
		log.Fatal().Err(err).Msg("index creation failed")
	}
	idxCancel()

	if cfg.ReleaseMode {
		gin.SetMode(gin.ReleaseMode)
	}

	hub := ws.NewHub()
	tokens := middleware.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)
	limiter := middleware.NewClientLimiter(cfg.RatePerMinute, cfg.RateBurst)
	defer limiter.Stop()

	h := handlers.New(db, tokens, cfg)
	router := routes.Setup(h, hub, limiter, cfg)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("server listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("forced shutdown")
	}
	if err := db.Disconnect(context.Background()); err != nil {
		log.Error().Err(err).Msg("MongoDB disconnect failed")
	}

	log.Info().Msg("server stopped")
}
