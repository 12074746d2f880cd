package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/wasm-arcade/internal/storage"
)

var (
	flagScoresLimit int
	flagSessions    bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores <guest>",
	Short: "Show high scores for a guest",
	Long: `Display the top high scores for the specified guest.

Examples:
  arcade scores flappy
  arcade scores flappy --limit 25
  arcade scores flappy --sessions`,
	Args: cobra.ExactArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of entries to show")
	scoresCmd.Flags().BoolVar(&flagSessions, "sessions", false, "Show recent play sessions instead of scores")
}

func runScores(cmd *cobra.Command, args []string) error {
	guestID := args[0]
	if !env.reg.Exists(guestID) {
		return fmt.Errorf("unknown guest %q; run 'arcade list' to see available guests", guestID)
	}

	store, err := storage.Open(env.cfg.Host.DBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagSessions {
		return printSessions(store, guestID)
	}

	scores, err := store.TopScores(guestID, flagScoresLimit)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n", env.reg.Title(guestID))
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'arcade play %s' to set the first high score!\n", guestID)
		return nil
	}

	fmt.Printf("  %-4s  %-16s  %-10s  %s\n", "Rank", "Player", "Score", "Date")
	fmt.Printf("  %-4s  %-16s  %-10s  %s\n", "----", "------", "-----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-16s  %-10d  %s\n", i+1, entry.Player, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetGameStats(guestID)
	if err == nil {
		fmt.Println()
		fmt.Printf("Best: %d  Rounds: %d  Average: %.1f\n", stats.HighScore, stats.GamesCount, stats.AvgScore)
	}
	return nil
}

func printSessions(store *storage.Store, guestID string) error {
	sessions, err := store.RecentSessions(guestID, flagScoresLimit)
	if err != nil {
		return err
	}

	fmt.Printf("Recent Sessions - %s\n", env.reg.Title(guestID))
	fmt.Println()

	if len(sessions) == 0 {
		fmt.Println("No sessions recorded yet.")
		return nil
	}

	fmt.Printf("  %-16s  %-8s  %-10s  %-6s  %s\n", "Player", "Frames", "Duration", "Best", "Date")
	fmt.Printf("  %-16s  %-8s  %-10s  %-6s  %s\n", "------", "------", "--------", "----", "----")
	for _, s := range sessions {
		fmt.Printf("  %-16s  %-8d  %-10s  %-6d  %s\n",
			s.Player, s.Frames, s.Duration.Round(100*time.Millisecond), s.BestScore, s.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}
