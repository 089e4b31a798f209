package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/culturefest/vote-wallet/pkg/votewallet"
)

var packagesCmd = &cobra.Command{
	Use:   "packages",
	Short: "list the vote packages on sale",
	Run:   runPackages,
}

func init() {
	rootCmd.AddCommand(packagesCmd)
}

func runPackages(cmd *cobra.Command, args []string) {
	config := loadConfigOrPanic(cmd)

	for _, pkg := range votewallet.Packages() {
		marker := " "
		if pkg.Popular {
			marker = "*"
		}

		fmt.Printf("%s %-8s %2d votes  %8s  %s\n", marker, pkg.ID, pkg.Votes,
			formatPrice(config.Currency, pkg.Price), pkg.Description)
	}
}
