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

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/swaggo/swag"
	"go.uber.org/zap"

	_ "github.com/Avazbek22/magnus-bot/docs"
	"github.com/Avazbek22/magnus-bot/internal/bot"
	"github.com/Avazbek22/magnus-bot/internal/cache"
	"github.com/Avazbek22/magnus-bot/internal/chesscom"
	"github.com/Avazbek22/magnus-bot/internal/config"
	"github.com/Avazbek22/magnus-bot/internal/handlers"
	"github.com/Avazbek22/magnus-bot/internal/logic"
	"github.com/Avazbek22/magnus-bot/internal/roster"
	"github.com/Avazbek22/magnus-bot/internal/worker"
)

// @title Magnus Bot API
// @version 1.0
// @description Chess.com club bot: player rating snapshots and the club win/loss leaderboard.
// @BasePath /api/v1
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	var logger *zap.Logger
	if cfg.Env == "production" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	sugar := logger.Sugar()

	// Redis when configured, in-process cache otherwise. The bot keeps
	// working either way, Redis just survives restarts and replicas.
	var store cache.Cache
	if cfg.RedisURL != "" {
		redisCache, err := cache.NewRedis(cfg.RedisURL)
		if err != nil {
			sugar.Warnw("Redis unavailable, falling back to in-process cache", "error", err)
			store = cache.NewMemory()
		} else {
			store = redisCache
		}
	} else {
		store = cache.NewMemory()
	}
	defer store.Close()

	members, err := roster.Load(cfg.RosterPath)
	if err != nil {
		sugar.Fatalw("Failed to load roster", "path", cfg.RosterPath, "error", err)
	}

	client := chesscom.New(chesscom.Config{
		BaseURL:     cfg.ChessAPIBaseURL,
		UserAgent:   cfg.UserAgent,
		HTTPClient:  &http.Client{Timeout: cfg.HTTPTimeout},
		Cache:       store,
		StatsTTL:    cfg.StatsTTL,
		ArchivesTTL: cfg.ArchivesTTL,
		GamesTTL:    cfg.GamesTTL,
		Logger:      logger,
	})

	leaderboard := logic.NewLeaderboardService(logic.LeaderboardConfig{
		Source: client,
		Roster: members,
		Logger: logger,
	})

	if cfg.WarmInterval > 0 {
		warmer := worker.NewWarmer(worker.WarmerConfig{
			Source:   client,
			Roster:   members,
			Interval: cfg.WarmInterval,
			Logger:   logger,
		})
		warmer.Start(context.Background())
		defer warmer.Stop()
	}

	botService := bot.New(bot.Config{
		Stats:       client,
		Leaderboard: leaderboard,
		Logger:      logger,
	})

	h := handlers.New(handlers.Config{
		Bot:         botService,
		Stats:       client,
		Leaderboard: leaderboard,
		Cache:       store,
		Logger:      logger,
	})

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/health", h.Health)
	r.Get("/ready", h.Ready)
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/doc.json", func(w http.ResponseWriter, r *http.Request) {
		doc, err := swag.ReadDoc()
		if err != nil {
			http.Error(w, "swagger doc not available", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(doc))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/webhook", h.HandleWebhook)
		r.Get("/stats/{username}", h.GetPlayerStats)
		r.Get("/leaderboard", h.GetLeaderboard)
	})

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		sugar.Infow("Server starting", "port", cfg.Port, "env", cfg.Env, "clubMembers", len(members))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			sugar.Fatalw("Server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	sugar.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		sugar.Fatalw("Server forced to shutdown", "error", err)
	}

	sugar.Info("Server exited properly")
}
