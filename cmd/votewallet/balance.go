package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/culturefest/vote-wallet/pkg/votewallet"
)

var balanceCmd = &cobra.Command{
	Use:   "balance",
	Short: "show the current vote balance",
	Run:   runBalance,
}

func init() {
	rootCmd.AddCommand(balanceCmd)
}

func runBalance(cmd *cobra.Command, args []string) {
	runWithService(cmd, func(config *Config, svc votewallet.Service, events votewallet.Notifier) {
		fmt.Printf("vote balance: %d\n", svc.Balance())
	})
}
