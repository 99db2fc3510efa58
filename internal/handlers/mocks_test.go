package handlers

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/Avazbek22/magnus-bot/internal/cache"
	"github.com/Avazbek22/magnus-bot/internal/models"
)

type MockCommandService struct {
	DispatchFunc func(ctx context.Context, command, arg string) string
}

func (m *MockCommandService) Dispatch(ctx context.Context, command, arg string) string {
	if m.DispatchFunc != nil {
		return m.DispatchFunc(ctx, command, arg)
	}
	return ""
}

type MockStatsService struct {
	PlayerStatsFunc func(ctx context.Context, username string) (*models.PlayerStats, error)
}

func (m *MockStatsService) PlayerStats(ctx context.Context, username string) (*models.PlayerStats, error) {
	if m.PlayerStatsFunc != nil {
		return m.PlayerStatsFunc(ctx, username)
	}
	return &models.PlayerStats{}, nil
}

type MockLeaderboardService struct {
	BuildFunc func(ctx context.Context, keyword string) (models.LeaderboardReport, error)
}

func (m *MockLeaderboardService) Build(ctx context.Context, keyword string) (models.LeaderboardReport, error) {
	if m.BuildFunc != nil {
		return m.BuildFunc(ctx, keyword)
	}
	return models.LeaderboardReport{}, nil
}

type MockCache struct {
	GetFunc  func(ctx context.Context, key string) ([]byte, error)
	SetFunc  func(ctx context.Context, key string, value []byte, ttl time.Duration) error
	PingFunc func(ctx context.Context) error
}

func (m *MockCache) Get(ctx context.Context, key string) ([]byte, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, key)
	}
	return nil, cache.ErrCacheMiss
}

func (m *MockCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if m.SetFunc != nil {
		return m.SetFunc(ctx, key, value, ttl)
	}
	return nil
}

func (m *MockCache) Ping(ctx context.Context) error {
	if m.PingFunc != nil {
		return m.PingFunc(ctx)
	}
	return nil
}

func (m *MockCache) Close() error { return nil }

// newTestHandler fills in nop collaborators for whatever the test leaves unset.
func newTestHandler(cfg Config) *Handler {
	if cfg.Bot == nil {
		cfg.Bot = &MockCommandService{}
	}
	if cfg.Stats == nil {
		cfg.Stats = &MockStatsService{}
	}
	if cfg.Leaderboard == nil {
		cfg.Leaderboard = &MockLeaderboardService{}
	}
	if cfg.Cache == nil {
		cfg.Cache = &MockCache{}
	}
	cfg.Logger = zap.NewNop()
	return New(cfg)
}
