package chesscom

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"go.uber.org/zap"
)

const statsBody = `{"chess_rapid":{"last":{"rating":1836,"date":1755859200}},"chess_blitz":{"last":{"rating":1544,"date":1755772800}}}`

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client := New(Config{
		BaseURL:   srv.URL,
		UserAgent: "magnus-bot-test/1.0",
		Logger:    zap.NewNop(),
	})
	return client, srv
}

func TestPlayerStats(t *testing.T) {
	var requests atomic.Int64
	var lastUA atomic.Value

	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		lastUA.Store(r.Header.Get("User-Agent"))
		if r.URL.Path != "/player/erik/stats" {
			t.Errorf("Unexpected path %s", r.URL.Path)
			http.NotFound(w, r)
			return
		}
		w.Write([]byte(statsBody))
	}))

	stats, err := client.PlayerStats(context.Background(), "  Erik ")
	if err != nil {
		t.Fatalf("PlayerStats failed: %v", err)
	}
	if r, ok := stats.RapidRating(); !ok || r != 1836 {
		t.Errorf("RapidRating = %d, %v, want 1836, true", r, ok)
	}
	if ua := lastUA.Load(); ua != "magnus-bot-test/1.0" {
		t.Errorf("User-Agent = %v, want magnus-bot-test/1.0", ua)
	}

	// Second lookup must come out of the cache.
	if _, err := client.PlayerStats(context.Background(), "erik"); err != nil {
		t.Fatalf("Cached PlayerStats failed: %v", err)
	}
	if n := requests.Load(); n != 1 {
		t.Errorf("Upstream requests = %d, want 1", n)
	}
}

func TestPlayerStats_NotFound(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))

	_, err := client.PlayerStats(context.Background(), "ghost_user")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("PlayerStats error = %v, want ErrNotFound", err)
	}
}

func TestPlayerStats_UpstreamFailure(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))

	_, err := client.PlayerStats(context.Background(), "erik")
	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("PlayerStats error = %v, want StatusError", err)
	}
	if statusErr.Code != http.StatusTooManyRequests {
		t.Errorf("StatusError.Code = %d, want 429", statusErr.Code)
	}
}

func TestPlayerStats_MalformedBody(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"chess_rapid":`))
	}))

	if _, err := client.PlayerStats(context.Background(), "erik"); err == nil {
		t.Error("Expected decode error, got nil")
	}
}

func TestLatestGames(t *testing.T) {
	mux := http.NewServeMux()
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	mux.HandleFunc("/player/erik/games/archives", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"archives":["` + srv.URL + `/player/erik/games/2025/07","` + srv.URL + `/player/erik/games/2025/08"]}`))
	})
	mux.HandleFunc("/player/erik/games/2025/08", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"games":[{"time_class":"rapid","end_time":1755862345,"white":{"username":"erik","result":"win"},"black":{"username":"danny","result":"resigned"}}]}`))
	})
	mux.HandleFunc("/player/erik/games/2025/07", func(w http.ResponseWriter, r *http.Request) {
		t.Error("Fetched an older archive instead of the latest")
	})

	client := New(Config{BaseURL: srv.URL, Logger: zap.NewNop()})

	month, err := client.LatestGames(context.Background(), "erik")
	if err != nil {
		t.Fatalf("LatestGames failed: %v", err)
	}
	if len(month.Games) != 1 {
		t.Fatalf("Expected 1 game, got %d", len(month.Games))
	}
	if month.Games[0].White.Username != "erik" {
		t.Errorf("White.Username = %q, want erik", month.Games[0].White.Username)
	}
}

func TestLatestGames_NoArchives(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"archives":[]}`))
	}))

	month, err := client.LatestGames(context.Background(), "fresh_account")
	if err != nil {
		t.Fatalf("LatestGames failed: %v", err)
	}
	if len(month.Games) != 0 {
		t.Errorf("Expected no games, got %d", len(month.Games))
	}
}

func TestFetch_ContextCancellation(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte(statsBody))
	}))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	if _, err := client.PlayerStats(ctx, "erik"); err == nil {
		t.Error("Expected context deadline error, got nil")
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Erik", "erik"},
		{"  MagnusCarlsen  ", "magnuscarlsen"},
		{"hikaru", "hikaru"},
		{"UPPER_CASE", "upper_case"},
	}

	for _, tt := range tests {
		if got := Normalize(tt.input); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
