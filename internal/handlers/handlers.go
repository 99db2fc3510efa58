package handlers

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/Avazbek22/magnus-bot/internal/cache"
	"github.com/Avazbek22/magnus-bot/internal/models"
)

// MaxBodySize limits the size of webhook bodies to 64KB
const MaxBodySize = 65536

// CommandService runs one chat command and returns the reply text.
// An empty reply means the bot stays silent.
type CommandService interface {
	Dispatch(ctx context.Context, command, arg string) string
}

// StatsService fetches the Chess.com rating snapshot for a player.
type StatsService interface {
	PlayerStats(ctx context.Context, username string) (*models.PlayerStats, error)
}

// LeaderboardService builds the ranked club report for a window keyword.
type LeaderboardService interface {
	Build(ctx context.Context, keyword string) (models.LeaderboardReport, error)
}

type Config struct {
	Bot         CommandService
	Stats       StatsService
	Leaderboard LeaderboardService
	Cache       cache.Cache
	Logger      *zap.Logger
}

type Handler struct {
	bot         CommandService
	stats       StatsService
	leaderboard LeaderboardService
	cache       cache.Cache
	logger      *zap.SugaredLogger
	validator   *validator.Validate
}

func New(cfg Config) *Handler {
	return &Handler{
		bot:         cfg.Bot,
		stats:       cfg.Stats,
		leaderboard: cfg.Leaderboard,
		cache:       cfg.Cache,
		logger:      cfg.Logger.Sugar(),
		validator:   validator.New(),
	}
}
