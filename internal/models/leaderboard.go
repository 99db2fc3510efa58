package models

// PlayerScore accumulates one club member's results over a reporting window.
type PlayerScore struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Wins     int    `json:"wins"`
	Losses   int    `json:"losses"`
	Net      int    `json:"net"`
}

// AddWin records a win and keeps Net consistent.
func (s *PlayerScore) AddWin() {
	s.Wins++
	s.Net = s.Wins - s.Losses
}

// AddLoss records a loss and keeps Net consistent.
func (s *PlayerScore) AddLoss() {
	s.Losses++
	s.Net = s.Wins - s.Losses
}

// Merge folds another tally for the same player into this one.
func (s *PlayerScore) Merge(o PlayerScore) {
	s.Wins += o.Wins
	s.Losses += o.Losses
	s.Net = s.Wins - s.Losses
}

// Played reports whether the player finished any counted game in the window.
func (s *PlayerScore) Played() bool {
	return s.Wins != 0 || s.Losses != 0
}

// LeaderboardRow is one ranked line of a built leaderboard.
type LeaderboardRow struct {
	Rank     int    `json:"rank"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Wins     int    `json:"wins"`
	Losses   int    `json:"losses"`
	Net      int    `json:"net"`
}

// LeaderboardReport is a finished leaderboard for one window and filter.
type LeaderboardReport struct {
	Frame     string           `json:"frame"`
	TimeClass string           `json:"time_class,omitempty"`
	Rows      []LeaderboardRow `json:"rows"`
}
