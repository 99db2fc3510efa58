package models

import "time"

// Projections of the Chess.com public API. Only the fields the bot reads are
// modeled; the JSON decoder discards everything else.

// PlayerStats is the response of /player/{username}/stats. Every section is
// optional: Chess.com omits a mode entirely when the player has never played
// it, so all lookups go through the (value, ok) accessors below.
type PlayerStats struct {
	ChessRapid  *GameModeStats   `json:"chess_rapid,omitempty"`
	ChessBlitz  *GameModeStats   `json:"chess_blitz,omitempty"`
	ChessBullet *GameModeStats   `json:"chess_bullet,omitempty"`
	Tactics     *TacticsStats    `json:"tactics,omitempty"`
	PuzzleRush  *PuzzleRushStats `json:"puzzle_rush,omitempty"`
}

// GameModeStats holds one time class (rapid/blitz/bullet) of a player's stats.
type GameModeStats struct {
	Last   *RatingSnapshot `json:"last,omitempty"`
	Best   *RatingSnapshot `json:"best,omitempty"`
	Record *ModeRecord     `json:"record,omitempty"`
}

// RatingSnapshot is a rating at a point in time.
type RatingSnapshot struct {
	Rating int   `json:"rating"`
	Date   int64 `json:"date"`
}

// ModeRecord is the win/loss/draw tally Chess.com keeps per time class.
type ModeRecord struct {
	Win  int `json:"win"`
	Loss int `json:"loss"`
	Draw int `json:"draw"`
}

// TacticsStats holds the puzzle (tactics) rating range.
type TacticsStats struct {
	Highest *RatingSnapshot `json:"highest,omitempty"`
	Lowest  *RatingSnapshot `json:"lowest,omitempty"`
}

// PuzzleRushStats holds puzzle rush scores.
type PuzzleRushStats struct {
	Best  *PuzzleRushScore `json:"best,omitempty"`
	Daily *PuzzleRushScore `json:"daily,omitempty"`
}

// PuzzleRushScore is one puzzle rush run.
type PuzzleRushScore struct {
	TotalAttempts int `json:"total_attempts"`
	Score         int `json:"score"`
}

// RapidRating returns the current rapid rating. ok is false when the player
// has no rapid games on record.
func (s *PlayerStats) RapidRating() (int, bool) { return modeRating(s.ChessRapid) }

// BlitzRating returns the current blitz rating.
func (s *PlayerStats) BlitzRating() (int, bool) { return modeRating(s.ChessBlitz) }

// BulletRating returns the current bullet rating.
func (s *PlayerStats) BulletRating() (int, bool) { return modeRating(s.ChessBullet) }

// TacticsHighest returns the player's best tactics rating.
func (s *PlayerStats) TacticsHighest() (int, bool) {
	if s.Tactics == nil || s.Tactics.Highest == nil {
		return 0, false
	}
	return s.Tactics.Highest.Rating, true
}

// PuzzleRushBest returns the player's best puzzle rush score.
func (s *PlayerStats) PuzzleRushBest() (int, bool) {
	if s.PuzzleRush == nil || s.PuzzleRush.Best == nil {
		return 0, false
	}
	return s.PuzzleRush.Best.Score, true
}

func modeRating(m *GameModeStats) (int, bool) {
	if m == nil || m.Last == nil {
		return 0, false
	}
	return m.Last.Rating, true
}

// Archives is the response of /player/{username}/games/archives. URLs are
// ordered oldest first; the final element is the most recent month.
type Archives struct {
	Archives []string `json:"archives"`
}

// Latest returns the most recent archive URL, or ok=false for players with
// no recorded games.
func (a Archives) Latest() (string, bool) {
	if len(a.Archives) == 0 {
		return "", false
	}
	return a.Archives[len(a.Archives)-1], true
}

// MonthlyGames is the response of one monthly archive URL.
type MonthlyGames struct {
	Games []Game `json:"games"`
}

// Game is one completed game from a monthly archive.
type Game struct {
	URL         string   `json:"url"`
	PGN         string   `json:"pgn,omitempty"`
	TimeControl string   `json:"time_control"`
	TimeClass   string   `json:"time_class"`
	Rated       bool     `json:"rated"`
	EndTime     int64    `json:"end_time"`
	Rules       string   `json:"rules"`
	White       GameSide `json:"white"`
	Black       GameSide `json:"black"`
}

// GameSide is one side (color) of a game: who sat there and how it ended for
// them. Result is a Chess.com outcome string such as "win", "resigned",
// "timeout", "checkmated" or "agreed".
type GameSide struct {
	Username string `json:"username"`
	Rating   int    `json:"rating"`
	Result   string `json:"result"`
}

// EndedAt converts the archive's epoch-second end time to a time.Time.
func (g Game) EndedAt() time.Time {
	return time.Unix(g.EndTime, 0)
}
