package main

import (
	"fmt"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sangkwonlab/sangkwon-cli/internal/history"
)

var (
	historyTool   string
	historyFailed bool
	historyLimit  int
	historyDays   int
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Inspect the local analysis history",
}

// openHistory opens the history store directly, without the analysis
// clients; history commands work offline.
func openHistory(cmd *cobra.Command) (*history.Store, error) {
	if cfg.History.Path == "" {
		return nil, eris.New("history: no history.path configured")
	}
	store, err := history.Open(cfg.History.Path)
	if err != nil {
		return nil, err
	}
	if err := store.Migrate(cmd.Context()); err != nil {
		store.Close()
		return nil, err
	}
	return store, nil
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded analysis runs, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openHistory(cmd)
		if err != nil {
			return err
		}
		defer store.Close()

		entries, err := store.List(cmd.Context(), history.Filter{
			Tool:       historyTool,
			OnlyFailed: historyFailed,
			Limit:      historyLimit,
		})
		if err != nil {
			return err
		}
		return printJSON(entries)
	},
}

var historyShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one recorded run with its full result",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openHistory(cmd)
		if err != nil {
			return err
		}
		defer store.Close()

		entry, err := store.Get(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if entry == nil {
			return eris.Errorf("history: no run with id %s", args[0])
		}
		return printJSON(entry)
	},
}

var historyPruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Delete runs older than the retention window",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openHistory(cmd)
		if err != nil {
			return err
		}
		defer store.Close()

		n, err := store.Prune(cmd.Context(), time.Duration(historyDays)*24*time.Hour)
		if err != nil {
			return err
		}
		fmt.Printf("pruned %d runs\n", n)
		return nil
	},
}

func init() {
	historyListCmd.Flags().StringVar(&historyTool, "tool", "", "filter by tool name")
	historyListCmd.Flags().BoolVar(&historyFailed, "failed", false, "only failed runs")
	historyListCmd.Flags().IntVar(&historyLimit, "limit", 0, "max runs to list (default 50)")
	historyPruneCmd.Flags().IntVar(&historyDays, "older-than", 30, "delete runs older than this many days")

	historyCmd.AddCommand(historyListCmd, historyShowCmd, historyPruneCmd)
	rootCmd.AddCommand(historyCmd)
}
