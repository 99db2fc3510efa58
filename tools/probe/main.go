package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/Avazbek22/magnus-bot/internal/chesscom"
	"github.com/Avazbek22/magnus-bot/internal/logic"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: probe <username> [mode]")
		os.Exit(2)
	}
	username := os.Args[1]
	keyword := ""
	if len(os.Args) > 2 {
		keyword = os.Args[2]
	}

	client := chesscom.New(chesscom.Config{Logger: zap.NewNop()})

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	stats, err := client.PlayerStats(ctx, username)
	if err != nil {
		log.Fatalf("Failed to fetch stats: %v", err)
	}

	printRating := func(label string, value int, ok bool) {
		if ok {
			fmt.Printf("  %-12s %d\n", label, value)
		} else {
			fmt.Printf("  %-12s N/A\n", label)
		}
	}

	fmt.Printf("Ratings for %s:\n", username)
	rapid, ok := stats.RapidRating()
	printRating("rapid", rapid, ok)
	blitz, ok := stats.BlitzRating()
	printRating("blitz", blitz, ok)
	bullet, ok := stats.BulletRating()
	printRating("bullet", bullet, ok)
	tactics, ok := stats.TacticsHighest()
	printRating("tactics", tactics, ok)
	rush, ok := stats.PuzzleRushBest()
	printRating("puzzle rush", rush, ok)

	month, err := client.LatestGames(ctx, username)
	if err != nil {
		log.Fatalf("Failed to fetch latest archive: %v", err)
	}

	query := logic.ResolveQuery(keyword, time.Now())
	var wins, losses, neither, included int
	for _, g := range month.Games {
		if !query.Includes(g) {
			continue
		}
		included++
		switch logic.Classify(g, username) {
		case logic.ResultWin:
			wins++
		case logic.ResultLoss:
			losses++
		default:
			neither++
		}
	}

	fmt.Printf("\nLatest archive: %d games, %d in the %s window", len(month.Games), included, query.Frame)
	if query.TimeClass != "" {
		fmt.Printf(" (%s only)", query.TimeClass)
	}
	fmt.Println()
	fmt.Printf("  wins=%d losses=%d neither=%d net=%+d\n", wins, losses, neither, wins-losses)
}
