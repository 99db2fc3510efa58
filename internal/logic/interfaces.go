package logic

import (
	"context"

	"github.com/Avazbek22/magnus-bot/internal/models"
)

// GamesSource is the slice of the Chess.com client the leaderboard consumes.
type GamesSource interface {
	Archives(ctx context.Context, username string) (models.Archives, error)
	MonthlyGames(ctx context.Context, archiveURL string) (models.MonthlyGames, error)
}
