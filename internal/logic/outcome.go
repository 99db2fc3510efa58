// Package logic holds the scoring rules of the club leaderboard: how one
// game becomes a win or a loss, which games fall inside a reporting window,
// and how per-player tallies are ranked.
package logic

import (
	"strings"

	"github.com/Avazbek22/magnus-bot/internal/models"
)

// Result classifies one game from a single player's point of view.
type Result int

const (
	// ResultNone covers draws, unknown outcome codes and games the player
	// did not sit in.
	ResultNone Result = iota
	ResultWin
	ResultLoss
)

const resultWin = "win"

// concededResults are opponent outcome codes that hand the game to the other
// side even when that side's own code is not "win".
var concededResults = map[string]struct{}{
	"resigned":  {},
	"timeout":   {},
	"abandoned": {},
}

// sides splits a game into the player's and the opponent's side records.
// Username comparison is case-insensitive; ok is false when the player sat
// on neither side.
func sides(g models.Game, username string) (player, opponent models.GameSide, ok bool) {
	switch {
	case strings.EqualFold(g.White.Username, username):
		return g.White, g.Black, true
	case strings.EqualFold(g.Black.Username, username):
		return g.Black, g.White, true
	}
	return models.GameSide{}, models.GameSide{}, false
}

// Classify maps a finished game to ResultWin, ResultLoss or ResultNone for
// the given player. Win conditions are checked before loss conditions, so a
// game can never count as both.
func Classify(g models.Game, username string) Result {
	player, opponent, ok := sides(g, username)
	if !ok {
		return ResultNone
	}

	if player.Result == resultWin {
		return ResultWin
	}
	if _, conceded := concededResults[opponent.Result]; conceded {
		return ResultWin
	}

	if opponent.Result == resultWin {
		return ResultLoss
	}
	if _, conceded := concededResults[player.Result]; conceded {
		return ResultLoss
	}

	return ResultNone
}
