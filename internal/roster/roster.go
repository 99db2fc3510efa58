// Package roster defines the club members the leaderboard is built over.
package roster

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Entry is one club member: the display name used in replies and the
// Chess.com username used for API lookups.
type Entry struct {
	Name     string `json:"name"`
	Username string `json:"username"`
}

// defaultRoster is the compiled-in member list, used when no roster file is
// configured. Order matters: it is the tie-break order for equal net scores.
var defaultRoster = []Entry{
	{Name: "Avazbek", Username: "avazbek22"},
	{Name: "Sardor", Username: "sardor_tj"},
	{Name: "Bekzod", Username: "bekzod_che"},
	{Name: "Jasur", Username: "jasurbek_77"},
	{Name: "Dilshod", Username: "dilshod_m"},
	{Name: "Timur", Username: "timka_blitz"},
	{Name: "Aziz", Username: "azizbek_k"},
	{Name: "Rustam", Username: "rus_knight"},
}

// Default returns a copy of the compiled-in roster.
func Default() []Entry {
	out := make([]Entry, len(defaultRoster))
	copy(out, defaultRoster)
	return out
}

// Load reads the roster from a JSON file, or returns the compiled-in default
// when path is empty. The file holds an array of {"name","username"} objects
// in ranking tie-break order.
func Load(path string) ([]Entry, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read roster file: %w", err)
	}

	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse roster file %s: %w", path, err)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("roster file %s has no entries", path)
	}
	for i, e := range entries {
		name := strings.TrimSpace(e.Name)
		username := strings.TrimSpace(e.Username)
		if name == "" || username == "" {
			return nil, fmt.Errorf("roster file %s: entry %d missing name or username", path, i)
		}
		entries[i] = Entry{Name: name, Username: username}
	}
	return entries, nil
}
