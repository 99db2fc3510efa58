package bot

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Avazbek22/magnus-bot/internal/models"
)

const helpReply = `♟ Club bot commands:
/stats <username> - Chess.com ratings for a player
/top - club leaderboard for the current month
/top bugin - today's leaderboard (UTC+5)
/top blitz|bullet|rapid - only games of that speed
/top help - this message`

func genericErrorReply(ref string) string {
	return "Something went wrong on my side. Try again later (ref " + ref + ")."
}

// renderStats builds the five fixed rating lines for one player. Absent
// sections render as N/A, never as a dropped line.
func renderStats(username string, stats *models.PlayerStats) string {
	var b strings.Builder
	fmt.Fprintf(&b, "♟ %s on Chess.com\n", username)
	b.WriteString("⏱ Rapid: " + orNA(stats.RapidRating()) + "\n")
	b.WriteString("⚡ Blitz: " + orNA(stats.BlitzRating()) + "\n")
	b.WriteString("🔫 Bullet: " + orNA(stats.BulletRating()) + "\n")
	b.WriteString("🧠 Tactics: " + orNA(stats.TacticsHighest()) + "\n")
	b.WriteString("🧩 Puzzle Rush: " + orNA(stats.PuzzleRushBest()))
	return b.String()
}

func orNA(value int, ok bool) string {
	if !ok {
		return "N/A"
	}
	return strconv.Itoa(value)
}

// renderLeaderboard builds the ranked reply: title, window description, one
// line per player with a medal or numeric rank and the signed net score.
func renderLeaderboard(report models.LeaderboardReport) string {
	var b strings.Builder
	b.WriteString("🏆 Club Leaderboard\n")
	b.WriteString("Results for " + windowPhrase(report) + "\n")
	for _, row := range report.Rows {
		fmt.Fprintf(&b, "\n%s %s: %+d (W:%d L:%d)",
			medal(row.Rank), row.Name, row.Net, row.Wins, row.Losses)
	}
	return b.String()
}

func renderEmptyBoard(report models.LeaderboardReport) string {
	return "🏆 Club Leaderboard\nNo games found for " + windowPhrase(report) + "."
}

// windowPhrase names the window and, when set, the speed filter. Unknown
// frames read as the month so the description line is never blank.
func windowPhrase(report models.LeaderboardReport) string {
	phrase := "this month"
	if report.Frame == "today" {
		phrase = "today"
	}
	if report.TimeClass != "" {
		phrase += " (" + report.TimeClass + " only)"
	}
	return phrase
}

func medal(rank int) string {
	switch rank {
	case 1:
		return "🥇"
	case 2:
		return "🥈"
	case 3:
		return "🥉"
	}
	return strconv.Itoa(rank) + "."
}
