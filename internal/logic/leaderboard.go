package logic

import (
	"context"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Avazbek22/magnus-bot/internal/models"
	"github.com/Avazbek22/magnus-bot/internal/roster"
)

// LeaderboardConfig configures the leaderboard service.
type LeaderboardConfig struct {
	Source GamesSource
	Roster []roster.Entry
	Logger *zap.Logger
	Now    func() time.Time
}

// LeaderboardService builds win/loss leaderboards over the club roster.
type LeaderboardService struct {
	source GamesSource
	roster []roster.Entry
	logger *zap.SugaredLogger
	now    func() time.Time
}

// NewLeaderboardService creates a leaderboard service over the given roster.
func NewLeaderboardService(cfg LeaderboardConfig) *LeaderboardService {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &LeaderboardService{
		source: cfg.Source,
		roster: cfg.Roster,
		logger: cfg.Logger.Sugar(),
		now:    cfg.Now,
	}
}

// Build assembles the leaderboard for the window selected by keyword.
// Members whose data cannot be fetched contribute nothing; an empty board is
// a valid result, not an error.
func (s *LeaderboardService) Build(ctx context.Context, keyword string) (models.LeaderboardReport, error) {
	query := ResolveQuery(keyword, s.now())

	// Seed accumulators in roster order. Duplicate usernames share one
	// record and the first display name wins.
	order := make([]string, 0, len(s.roster))
	scores := make(map[string]*models.PlayerScore, len(s.roster))
	for _, member := range s.roster {
		key := normalize(member.Username)
		if _, seen := scores[key]; seen {
			continue
		}
		scores[key] = &models.PlayerScore{Name: member.Name, Username: key}
		order = append(order, key)
	}

	// One task per member, each writing only its own slot. Tallies are
	// merged after the join so duplicate usernames never race.
	tallies := make([]models.PlayerScore, len(order))
	g, gctx := errgroup.WithContext(ctx)
	for i, key := range order {
		g.Go(func() error {
			t, err := s.countGames(gctx, key, query)
			if err != nil {
				s.logger.Warnw("Skipping club member after fetch failure",
					"username", key, "error", err)
				return nil
			}
			tallies[i] = t
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return models.LeaderboardReport{}, err
	}

	for i, key := range order {
		scores[key].Merge(tallies[i])
	}

	ranked := make([]*models.PlayerScore, 0, len(order))
	for _, key := range order {
		if scores[key].Played() {
			ranked = append(ranked, scores[key])
		}
	}
	// Stable keeps roster order as the tie-break for equal net scores.
	sort.SliceStable(ranked, func(a, b int) bool {
		return ranked[a].Net > ranked[b].Net
	})

	rows := make([]models.LeaderboardRow, 0, len(ranked))
	for i, score := range ranked {
		rows = append(rows, models.LeaderboardRow{
			Rank:     i + 1,
			Name:     score.Name,
			Username: score.Username,
			Wins:     score.Wins,
			Losses:   score.Losses,
			Net:      score.Net,
		})
	}

	return models.LeaderboardReport{
		Frame:     string(query.Frame),
		TimeClass: query.TimeClass,
		Rows:      rows,
	}, nil
}

// countGames tallies one member's wins and losses inside the window. Only
// the most recent monthly archive is consulted: both window frames start
// inside the current month.
func (s *LeaderboardService) countGames(ctx context.Context, username string, q Query) (models.PlayerScore, error) {
	archives, err := s.source.Archives(ctx, username)
	if err != nil {
		return models.PlayerScore{}, err
	}
	latest, ok := archives.Latest()
	if !ok {
		return models.PlayerScore{}, nil
	}

	month, err := s.source.MonthlyGames(ctx, latest)
	if err != nil {
		return models.PlayerScore{}, err
	}

	var score models.PlayerScore
	for _, game := range month.Games {
		if !q.Includes(game) {
			continue
		}
		switch Classify(game, username) {
		case ResultWin:
			score.AddWin()
		case ResultLoss:
			score.AddLoss()
		}
	}
	return score, nil
}

func normalize(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}
