package main

import (
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "votewallet <subcommand>",
	Short: "vote wallet for the cultural contest",
	Long: `manages vote credits for the cultural contest: buy vote packages,
cast votes on contestants and inspect balances, histories and the
leaderboard. Works against the contest backend when reachable and falls
back to local-only mode when it is not.`,
	Run: nil,
}

func init() {
	cobra.OnInitialize()
	rootCmd.PersistentFlags().StringP("config-file", "c", "", "Path to the config file (eg ./config.yaml) [Optional]")

	if err := godotenv.Load(); err != nil {
		log.WithError(err).Debug("no .env file loaded")
	}
}
