package main

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/culturefest/vote-wallet/pkg/votewallet"
)

var purchaseCmd = &cobra.Command{
	Use:   "purchase <package-id>",
	Short: "buy a vote package",
	Args:  cobra.ExactArgs(1),
	Run:   runPurchase,
}

func init() {
	rootCmd.AddCommand(purchaseCmd)
}

func runPurchase(cmd *cobra.Command, args []string) {
	runWithService(cmd, func(config *Config, svc votewallet.Service, events votewallet.Notifier) {
		unsubscribe := events.Subscribe(func(event votewallet.Event) {
			if event.Kind == votewallet.EventBalanceChanged {
				fmt.Printf("balance is now %d\n", event.Balance)
			}
		})
		defer unsubscribe()

		response, err := svc.Purchase(context.Background(), &votewallet.PurchaseRequest{
			PackageID: args[0],
			Buyer: votewallet.Buyer{
				Name:  config.BuyerName,
				Email: config.BuyerEmail,
			},
		})
		if err != nil {
			log.WithError(err).Fatal("purchase failed")
		}

		switch response.Outcome {
		case votewallet.OutcomeCancelled:
			fmt.Println("payment cancelled, nothing charged")

		default:
			fmt.Printf("purchased %d votes (reference %s)\n", response.Votes, response.Reference)
			if response.LocalMode {
				fmt.Println("note: backend unreachable, votes credited in local mode")
			}
		}
	})
}
