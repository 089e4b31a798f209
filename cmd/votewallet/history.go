package main

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/culturefest/vote-wallet/pkg/votewallet"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "show votes cast by this user",
	Run:   runHistory,
}

var purchasesCmd = &cobra.Command{
	Use:   "purchases",
	Short: "show vote purchases by this user",
	Run:   runPurchases,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(purchasesCmd)
}

func runHistory(cmd *cobra.Command, args []string) {
	runWithService(cmd, func(config *Config, svc votewallet.Service, events votewallet.Notifier) {
		records, err := svc.VotingHistory(context.Background())
		if err != nil {
			log.WithError(err).Fatal("failed to fetch voting history")
		}

		if len(records) == 0 {
			fmt.Println("no votes on record")
			return
		}

		for _, record := range records {
			fmt.Printf("%s  %-12s %3d votes  %s\n", record.CastAt.Format("2006-01-02 15:04"),
				record.ContestantID, record.Votes, record.VoteID)
		}
	})
}

func runPurchases(cmd *cobra.Command, args []string) {
	runWithService(cmd, func(config *Config, svc votewallet.Service, events votewallet.Notifier) {
		records, err := svc.PurchaseHistory(context.Background())
		if err != nil {
			log.WithError(err).Fatal("failed to fetch purchase history")
		}

		if len(records) == 0 {
			fmt.Println("no purchases on record")
			return
		}

		for _, record := range records {
			fmt.Printf("%s  %-8s %3d votes  %8s  %s\n", record.PaidAt.Format("2006-01-02 15:04"),
				record.PackageID, record.Votes,
				formatPrice(config.Currency, record.Amount), record.Reference)
		}
	})
}
