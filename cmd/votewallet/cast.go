package main

import (
	"context"
	"fmt"
	"strconv"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/culturefest/vote-wallet/pkg/votewallet"
)

var castCmd = &cobra.Command{
	Use:   "cast <contestant-id> [votes]",
	Short: "cast votes on a contestant",
	Args:  cobra.RangeArgs(1, 2),
	Run:   runCast,
}

func init() {
	rootCmd.AddCommand(castCmd)
}

func runCast(cmd *cobra.Command, args []string) {
	votes := 1
	if len(args) == 2 {
		parsed, err := strconv.Atoi(args[1])
		if err != nil {
			log.WithError(err).Fatalf("invalid vote count: %v", args[1])
		}
		votes = parsed
	}

	runWithService(cmd, func(config *Config, svc votewallet.Service, events votewallet.Notifier) {
		response, err := svc.CastVote(context.Background(), &votewallet.CastRequest{
			ContestantID: args[0],
			Votes:        votes,
		})
		if err == votewallet.ErrInsufficientBalance {
			log.Fatalf("insufficient vote balance (%d available), run 'votewallet purchase' first",
				svc.Balance())
		}
		if err != nil {
			log.WithError(err).Fatal("vote failed")
		}

		fmt.Printf("cast %d votes on %s (vote id %s)\n", votes, args[0], response.VoteID)
		fmt.Printf("contestant total: %d, your votes: %d, balance left: %d\n",
			response.Tally, response.UserVotes, response.Balance)
		if response.LocalMode {
			fmt.Println("note: backend unreachable, vote recorded in local mode")
		}
	})
}
