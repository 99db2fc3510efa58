// Package bot implements the two chat commands: /stats looks up one
// player's ratings, /top builds the club leaderboard. Every failure becomes
// a reply string; callers never see an error.
package bot

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"

	"github.com/Avazbek22/magnus-bot/internal/chesscom"
	"github.com/Avazbek22/magnus-bot/internal/models"
)

// Prometheus metrics
var commandsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "magnusbot_commands_total",
	Help: "Total number of chat commands handled, by outcome",
}, []string{"command", "outcome"})

// StatsSource is the slice of the Chess.com client the stats command needs.
type StatsSource interface {
	PlayerStats(ctx context.Context, username string) (*models.PlayerStats, error)
}

// LeaderboardSource builds ranked win/loss reports over the club roster.
type LeaderboardSource interface {
	Build(ctx context.Context, keyword string) (models.LeaderboardReport, error)
}

// Config configures the command service.
type Config struct {
	Stats       StatsSource
	Leaderboard LeaderboardSource
	Logger      *zap.Logger
}

// Service routes inbound commands to handlers and renders replies.
type Service struct {
	stats       StatsSource
	leaderboard LeaderboardSource
	logger      *zap.SugaredLogger
}

// New creates the command service.
func New(cfg Config) *Service {
	return &Service{
		stats:       cfg.Stats,
		leaderboard: cfg.Leaderboard,
		logger:      cfg.Logger.Sugar(),
	}
}

// Dispatch handles one inbound command. An empty reply means nothing should
// be sent back. Panics are recovered into the generic error reply so a
// surprising upstream payload can never take down the dispatcher.
func (s *Service) Dispatch(ctx context.Context, command, arg string) (reply string) {
	cmd := strings.ToLower(strings.TrimSpace(command))

	defer func() {
		if r := recover(); r != nil {
			ref := uuid.NewString()
			s.logger.Errorw("Recovered panic in command handler",
				"command", cmd, "panic", r, "ref", ref)
			commandsTotal.WithLabelValues(cmd, "error").Inc()
			reply = genericErrorReply(ref)
		}
	}()

	switch cmd {
	case "stats":
		return s.HandleStats(ctx, arg)
	case "top":
		return s.HandleTop(ctx, arg)
	default:
		s.logger.Warnw("Ignoring unknown command", "command", cmd)
		commandsTotal.WithLabelValues("unknown", "empty").Inc()
		return ""
	}
}

// HandleStats answers /stats <username>. An empty argument is a silent
// no-op, not an error message.
func (s *Service) HandleStats(ctx context.Context, arg string) string {
	username := strings.ToLower(strings.TrimSpace(arg))
	if username == "" {
		commandsTotal.WithLabelValues("stats", "empty").Inc()
		return ""
	}

	stats, err := s.stats.PlayerStats(ctx, username)
	if err != nil {
		return s.statsFailure(username, err)
	}

	commandsTotal.WithLabelValues("stats", "ok").Inc()
	return renderStats(username, stats)
}

// statsFailure maps a lookup error to a reply. Upstream refusals get a short
// warning; anything else is logged with a reference the user can quote.
func (s *Service) statsFailure(username string, err error) string {
	var statusErr *chesscom.StatusError
	switch {
	case errors.Is(err, chesscom.ErrNotFound):
		commandsTotal.WithLabelValues("stats", "warning").Inc()
		return fmt.Sprintf("Could not find %q on Chess.com. Check the username and try again.", username)
	case errors.As(err, &statusErr):
		commandsTotal.WithLabelValues("stats", "warning").Inc()
		return fmt.Sprintf("Chess.com did not answer for %q. Try again in a minute.", username)
	}

	ref := uuid.NewString()
	s.logger.Errorw("Stats lookup failed", "username", username, "error", err, "ref", ref)
	commandsTotal.WithLabelValues("stats", "error").Inc()
	return genericErrorReply(ref)
}

// HandleTop answers /top [keyword].
func (s *Service) HandleTop(ctx context.Context, arg string) string {
	keyword := strings.ToLower(strings.TrimSpace(arg))
	if keyword == "help" {
		commandsTotal.WithLabelValues("top", "ok").Inc()
		return helpReply
	}

	report, err := s.leaderboard.Build(ctx, keyword)
	if err != nil {
		ref := uuid.NewString()
		s.logger.Errorw("Leaderboard build failed", "keyword", keyword, "error", err, "ref", ref)
		commandsTotal.WithLabelValues("top", "error").Inc()
		return genericErrorReply(ref)
	}

	if len(report.Rows) == 0 {
		commandsTotal.WithLabelValues("top", "ok").Inc()
		return renderEmptyBoard(report)
	}

	commandsTotal.WithLabelValues("top", "ok").Inc()
	return renderLeaderboard(report)
}
