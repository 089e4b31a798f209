package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/go-redis/redis"
	"github.com/pkg/profile"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/culturefest/vote-wallet/internal/gateway/sandbox"
	restLedger "github.com/culturefest/vote-wallet/internal/ledger/rest"
	"github.com/culturefest/vote-wallet/internal/notifier"
	"github.com/culturefest/vote-wallet/internal/store/memory"
	redisStore "github.com/culturefest/vote-wallet/internal/store/redis"
	stormStore "github.com/culturefest/vote-wallet/internal/store/storm"
	"github.com/culturefest/vote-wallet/internal/wallet"
	"github.com/culturefest/vote-wallet/pkg/votewallet"
)

// runWithService loads configuration, wires a wallet service and hands it
// to the command body, closing everything afterwards.
func runWithService(cmd *cobra.Command,
	body func(config *Config, svc votewallet.Service, events votewallet.Notifier)) {

	config := loadConfigOrPanic(cmd)

	if config.Profiling {
		defer profile.Start().Stop()
	}

	store := makeStoreOrPanic(config)
	events := notifier.New()
	svc := wallet.New(store,
		events,
		sandbox.New(),
		restLedger.New(config.APIBaseURL, store),
		wallet.WithLocalFallback(config.LocalFallback),
		wallet.WithReferencePrefix(config.ReferencePrefix),
		wallet.WithCurrency(config.Currency),
	)

	defer func() {
		if err := svc.Close(); err != nil {
			log.WithError(err).Error("failed to close wallet service")
		}
	}()

	body(config, svc, events)
}

func loadConfigOrPanic(cmd *cobra.Command) *Config {
	config, err := LoadConfig(cmd, "votewallet")
	if err != nil {
		log.WithError(err).Panic("Failed to load configurations")
	}
	return config
}

func makeStoreOrPanic(config *Config) votewallet.Store {
	switch config.Backend {
	case "storm":
		store, err := stormStore.New(config.DataFile)
		if err != nil {
			log.WithError(err).Panicf("failed to open data file: %v", config.DataFile)
		}
		return store

	case "redis":
		client := redis.NewClient(&redis.Options{Addr: config.RedisConnection})
		return redisStore.New(client)

	case "memory":
		return memory.New()

	default:
		log.Panicf("unknown backend: %v", config.Backend)
		return nil
	}
}

func formatPrice(currency string, minorUnits int) string {
	symbol := currency
	if currency == "NGN" {
		symbol = "₦"
	}

	return fmt.Sprintf("%s%s", symbol, humanize.Comma(int64(minorUnits/100)))
}
