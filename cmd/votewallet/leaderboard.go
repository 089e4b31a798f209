package main

import (
	"context"
	"fmt"

	"github.com/dustin/go-humanize"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/culturefest/vote-wallet/pkg/votewallet"
)

var leaderboardCmd = &cobra.Command{
	Use:   "leaderboard",
	Short: "show contestants ranked by votes",
	Run:   runLeaderboard,
}

func init() {
	rootCmd.AddCommand(leaderboardCmd)
}

func runLeaderboard(cmd *cobra.Command, args []string) {
	runWithService(cmd, func(config *Config, svc votewallet.Service, events votewallet.Notifier) {
		response, err := svc.Leaderboard(context.Background())
		if err != nil {
			log.WithError(err).Fatal("failed to build leaderboard")
		}

		if response.Local {
			fmt.Println("(backend unreachable, showing locally recorded tallies)")
		}

		for rank, entry := range response.Entries {
			fmt.Printf("%2d. %-12s %s votes\n", rank+1, entry.ContestantID,
				humanize.Comma(int64(entry.Votes)))
		}
	})
}
