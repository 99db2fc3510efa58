package logic

import (
	"strings"
	"time"

	"github.com/Avazbek22/magnus-bot/internal/models"
)

// clubZone is the club's home timezone. Day and month boundaries are always
// computed here, never in server-local time or UTC.
var clubZone = time.FixedZone("UTC+5", 5*60*60)

// Frame names the reporting window of a leaderboard.
type Frame string

const (
	FrameMonth Frame = "month"
	FrameToday Frame = "today"
)

// Query is a resolved leaderboard request: window start, frame label and an
// optional time-class filter.
type Query struct {
	Start     time.Time
	Frame     Frame
	TimeClass string
}

// timeClasses are the speed keywords /top accepts as filters.
var timeClasses = map[string]struct{}{
	"rapid":  {},
	"blitz":  {},
	"bullet": {},
}

// ResolveQuery maps a /top keyword to a window. "bugin" and "today" select
// the current UTC+5 day, a speed keyword keeps the month window and filters
// by time class, and anything else (including no keyword) is the plain
// current-month window.
func ResolveQuery(keyword string, now time.Time) Query {
	k := strings.ToLower(strings.TrimSpace(keyword))
	local := now.In(clubZone)

	if k == "bugin" || k == "today" {
		return Query{
			Start: time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, clubZone),
			Frame: FrameToday,
		}
	}

	q := Query{
		Start: time.Date(local.Year(), local.Month(), 1, 0, 0, 0, 0, clubZone),
		Frame: FrameMonth,
	}
	if _, ok := timeClasses[k]; ok {
		q.TimeClass = k
	}
	return q
}

// Includes reports whether a game belongs to the window: it ended at or
// after the start (there is no upper bound) and matches the time-class
// filter when one is set.
func (q Query) Includes(g models.Game) bool {
	if g.EndedAt().Before(q.Start) {
		return false
	}
	if q.TimeClass != "" && g.TimeClass != q.TimeClass {
		return false
	}
	return true
}
