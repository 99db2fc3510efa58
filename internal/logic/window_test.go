package logic

import (
	"testing"
	"time"

	"github.com/Avazbek22/magnus-bot/internal/models"
)

func TestResolveQuery(t *testing.T) {
	// 2025-08-14 23:30 UTC is already 2025-08-15 04:30 in the club zone.
	now := time.Date(2025, 8, 14, 23, 30, 0, 0, time.UTC)

	tests := []struct {
		name      string
		keyword   string
		wantStart time.Time
		wantFrame Frame
		wantClass string
	}{
		{
			name:      "no keyword is the month window",
			keyword:   "",
			wantStart: time.Date(2025, 8, 1, 0, 0, 0, 0, clubZone),
			wantFrame: FrameMonth,
		},
		{
			name:      "bugin is the club-local day",
			keyword:   "bugin",
			wantStart: time.Date(2025, 8, 15, 0, 0, 0, 0, clubZone),
			wantFrame: FrameToday,
		},
		{
			name:      "today aliases bugin",
			keyword:   "today",
			wantStart: time.Date(2025, 8, 15, 0, 0, 0, 0, clubZone),
			wantFrame: FrameToday,
		},
		{
			name:      "speed keyword keeps the month window",
			keyword:   " Blitz ",
			wantStart: time.Date(2025, 8, 1, 0, 0, 0, 0, clubZone),
			wantFrame: FrameMonth,
			wantClass: "blitz",
		},
		{
			name:      "unknown keyword falls back to the month window",
			keyword:   "yesterday",
			wantStart: time.Date(2025, 8, 1, 0, 0, 0, 0, clubZone),
			wantFrame: FrameMonth,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := ResolveQuery(tt.keyword, now)
			if !q.Start.Equal(tt.wantStart) {
				t.Errorf("Start = %v, want %v", q.Start, tt.wantStart)
			}
			if q.Frame != tt.wantFrame {
				t.Errorf("Frame = %q, want %q", q.Frame, tt.wantFrame)
			}
			if q.TimeClass != tt.wantClass {
				t.Errorf("TimeClass = %q, want %q", q.TimeClass, tt.wantClass)
			}
		})
	}
}

func TestResolveQuery_DayRollsOverBeforeUTC(t *testing.T) {
	// 20:30 UTC on the 31st is 01:30 on September 1st in the club zone, so
	// both frames must already be in September.
	now := time.Date(2025, 8, 31, 20, 30, 0, 0, time.UTC)

	day := ResolveQuery("bugin", now)
	if want := time.Date(2025, 9, 1, 0, 0, 0, 0, clubZone); !day.Start.Equal(want) {
		t.Errorf("bugin Start = %v, want %v", day.Start, want)
	}

	month := ResolveQuery("", now)
	if want := time.Date(2025, 9, 1, 0, 0, 0, 0, clubZone); !month.Start.Equal(want) {
		t.Errorf("month Start = %v, want %v", month.Start, want)
	}
}

func TestQueryIncludes(t *testing.T) {
	start := time.Date(2025, 8, 1, 0, 0, 0, 0, clubZone)
	q := Query{Start: start, Frame: FrameMonth}

	before := models.Game{EndTime: start.Add(-time.Second).Unix(), TimeClass: "rapid"}
	if q.Includes(before) {
		t.Error("Includes = true for a game ended before the window")
	}

	exact := models.Game{EndTime: start.Unix(), TimeClass: "rapid"}
	if !q.Includes(exact) {
		t.Error("Includes = false for a game ended exactly at the window start")
	}

	after := models.Game{EndTime: start.Add(48 * time.Hour).Unix(), TimeClass: "bullet"}
	if !q.Includes(after) {
		t.Error("Includes = false for a game inside the window")
	}
}

func TestQueryIncludes_TimeClassFilter(t *testing.T) {
	start := time.Date(2025, 8, 1, 0, 0, 0, 0, clubZone)
	q := Query{Start: start, Frame: FrameMonth, TimeClass: "blitz"}
	end := start.Add(time.Hour).Unix()

	if !q.Includes(models.Game{EndTime: end, TimeClass: "blitz"}) {
		t.Error("Includes = false for matching time class")
	}
	if q.Includes(models.Game{EndTime: end, TimeClass: "rapid"}) {
		t.Error("Includes = true for non-matching time class")
	}
	if q.Includes(models.Game{EndTime: end, TimeClass: "daily"}) {
		t.Error("Includes = true for daily game under blitz filter")
	}
}
