package main

import (
	"errors"

	"github.com/spf13/cobra"

	"PmergeMe/internal/history"
)

var lastSessions int

var errNoHistory = errors.New("no history file configured (set --history or history.path)")

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List saved benchmark sessions, newest first",
	Args:  cobra.NoArgs,
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&lastSessions, "last", "n", 5, "sessions to show, 0 for all")
}

func runHistory(cmd *cobra.Command, args []string) error {
	if cfg.History.Path == "" {
		return errNoHistory
	}
	p, err := newPrinter(cmd.OutOrStdout())
	if err != nil {
		return err
	}
	store, err := history.Open(cfg.History.Path)
	if err != nil {
		return err
	}
	defer store.Close()

	sessions, err := store.List(lastSessions)
	if err != nil {
		return err
	}
	p.Sessions(sessions)
	return nil
}
