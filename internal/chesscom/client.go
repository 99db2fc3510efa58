// Package chesscom is the read-only client for the Chess.com public API
// (https://api.chess.com/pub). All reads go through a pluggable cache so the
// bot stays polite toward the upstream even when a chat group hammers it.
package chesscom

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"

	"github.com/Avazbek22/magnus-bot/internal/cache"
	"github.com/Avazbek22/magnus-bot/internal/models"
)

// ErrNotFound is returned when the upstream answers 404, i.e. the username
// does not exist on Chess.com.
var ErrNotFound = errors.New("chesscom: player not found")

// StatusError is returned for unexpected upstream status codes (5xx, 429).
type StatusError struct {
	Code int
	URL  string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("chesscom: %s returned status %d", e.URL, e.Code)
}

// Prometheus metrics
var (
	upstreamRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "magnusbot_upstream_requests_total",
		Help: "Total number of requests sent to the Chess.com API",
	}, []string{"endpoint", "status"})

	upstreamDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "magnusbot_upstream_request_duration_seconds",
		Help:    "Duration of Chess.com API requests",
		Buckets: prometheus.DefBuckets,
	}, []string{"endpoint"})

	cacheHits = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "magnusbot_cache_hits_total",
		Help: "Total number of Chess.com responses served from cache",
	}, []string{"endpoint"})

	cacheMisses = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "magnusbot_cache_misses_total",
		Help: "Total number of Chess.com lookups that went to the network",
	}, []string{"endpoint"})
)

// Config configures the API client.
type Config struct {
	BaseURL     string
	UserAgent   string
	HTTPClient  *http.Client
	Cache       cache.Cache
	StatsTTL    time.Duration
	ArchivesTTL time.Duration
	GamesTTL    time.Duration
	Logger      *zap.Logger
}

// Client fetches player data from the Chess.com public API.
type Client struct {
	baseURL     string
	userAgent   string
	httpClient  *http.Client
	cache       cache.Cache
	statsTTL    time.Duration
	archivesTTL time.Duration
	gamesTTL    time.Duration
	logger      *zap.SugaredLogger
}

// New creates a new API client
func New(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.chess.com/pub"
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = "magnus-bot/1.0"
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: 10 * time.Second}
	}
	if cfg.Cache == nil {
		cfg.Cache = cache.NewMemory()
	}
	if cfg.StatsTTL <= 0 {
		cfg.StatsTTL = 5 * time.Minute
	}
	if cfg.ArchivesTTL <= 0 {
		cfg.ArchivesTTL = time.Hour
	}
	if cfg.GamesTTL <= 0 {
		cfg.GamesTTL = 2 * time.Minute
	}

	return &Client{
		baseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		userAgent:   cfg.UserAgent,
		httpClient:  cfg.HTTPClient,
		cache:       cfg.Cache,
		statsTTL:    cfg.StatsTTL,
		archivesTTL: cfg.ArchivesTTL,
		gamesTTL:    cfg.GamesTTL,
		logger:      cfg.Logger.Sugar(),
	}
}

// Normalize maps a username to the canonical form used in API paths and
// comparisons. Chess.com usernames are case-insensitive.
func Normalize(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}

// PlayerStats fetches /player/{username}/stats.
func (c *Client) PlayerStats(ctx context.Context, username string) (*models.PlayerStats, error) {
	u := Normalize(username)
	body, err := c.fetch(ctx, "stats", "chesscom:stats:"+u, c.baseURL+"/player/"+url.PathEscape(u)+"/stats", c.statsTTL)
	if err != nil {
		return nil, err
	}

	var stats models.PlayerStats
	if err := json.Unmarshal(body, &stats); err != nil {
		return nil, fmt.Errorf("decode stats for %s: %w", u, err)
	}
	return &stats, nil
}

// Archives fetches /player/{username}/games/archives, the list of monthly
// archive URLs ordered oldest first.
func (c *Client) Archives(ctx context.Context, username string) (models.Archives, error) {
	u := Normalize(username)
	body, err := c.fetch(ctx, "archives", "chesscom:archives:"+u, c.baseURL+"/player/"+url.PathEscape(u)+"/games/archives", c.archivesTTL)
	if err != nil {
		return models.Archives{}, err
	}

	var archives models.Archives
	if err := json.Unmarshal(body, &archives); err != nil {
		return models.Archives{}, fmt.Errorf("decode archives for %s: %w", u, err)
	}
	return archives, nil
}

// MonthlyGames fetches one monthly archive by its absolute URL.
func (c *Client) MonthlyGames(ctx context.Context, archiveURL string) (models.MonthlyGames, error) {
	body, err := c.fetch(ctx, "games", "chesscom:games:"+archiveURL, archiveURL, c.gamesTTL)
	if err != nil {
		return models.MonthlyGames{}, err
	}

	var month models.MonthlyGames
	if err := json.Unmarshal(body, &month); err != nil {
		return models.MonthlyGames{}, fmt.Errorf("decode games from %s: %w", archiveURL, err)
	}
	return month, nil
}

// LatestGames fetches the most recent monthly archive for a player. Players
// with no archives at all get an empty month, not an error.
func (c *Client) LatestGames(ctx context.Context, username string) (models.MonthlyGames, error) {
	archives, err := c.Archives(ctx, username)
	if err != nil {
		return models.MonthlyGames{}, err
	}

	latest, ok := archives.Latest()
	if !ok {
		return models.MonthlyGames{}, nil
	}
	return c.MonthlyGames(ctx, latest)
}

// fetch returns the raw response body for url, serving from cache when the
// key is fresh. Cache write failures are logged and otherwise ignored.
func (c *Client) fetch(ctx context.Context, endpoint, key, url string, ttl time.Duration) ([]byte, error) {
	cached, err := c.cache.Get(ctx, key)
	if err == nil {
		cacheHits.WithLabelValues(endpoint).Inc()
		return cached, nil
	}
	if !errors.Is(err, cache.ErrCacheMiss) {
		c.logger.Warnw("Cache read failed, falling back to upstream", "key", key, "error", err)
	}
	cacheMisses.WithLabelValues(endpoint).Inc()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request for %s: %w", url, err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	upstreamDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
	if err != nil {
		upstreamRequests.WithLabelValues(endpoint, "error").Inc()
		return nil, fmt.Errorf("request %s: %w", url, err)
	}
	defer resp.Body.Close()

	upstreamRequests.WithLabelValues(endpoint, strconv.Itoa(resp.StatusCode)).Inc()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("%s: %w", url, ErrNotFound)
	case resp.StatusCode != http.StatusOK:
		return nil, &StatusError{Code: resp.StatusCode, URL: url}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response from %s: %w", url, err)
	}

	if err := c.cache.Set(ctx, key, body, ttl); err != nil {
		c.logger.Warnw("Cache write failed", "key", key, "error", err)
	}
	return body, nil
}
