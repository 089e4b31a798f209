package main

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Config the application's configuration structure
type Config struct {
	APIBaseURL      string
	Backend         string
	DataFile        string
	RedisConnection string
	Currency        string
	ReferencePrefix string
	LocalFallback   bool
	BuyerName       string
	BuyerEmail      string
	Profiling       bool
}

// LoadConfig loads the config from a file if specified, otherwise from the environment
func LoadConfig(cmd *cobra.Command, envPrefix string) (*Config, error) {
	// Setting defaults for this application
	viper.SetDefault("apiBaseURL", "http://localhost:5000/api")
	viper.SetDefault("backend", "storm")
	viper.SetDefault("dataFile", "votewallet.db")
	viper.SetDefault("redisConnection", "localhost:6379")
	viper.SetDefault("currency", "NGN")
	viper.SetDefault("referencePrefix", "ntac")
	viper.SetDefault("localFallback", true)
	viper.SetDefault("buyerName", "Demo User")
	viper.SetDefault("buyerEmail", "user@example.com")
	viper.SetDefault("profiling", false)

	// Read Config from ENV
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.SetEnvPrefix(envPrefix)
	viper.AutomaticEnv()

	// Read Config from Flags
	err := viper.BindPFlags(cmd.Flags())
	if err != nil {
		return nil, err
	}

	// Read Config from file
	if configFile, err := cmd.Flags().GetString("config-file"); err == nil && configFile != "" {
		viper.SetConfigFile(configFile)

		if err := viper.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	var config Config

	err = viper.Unmarshal(&config)
	if err != nil {
		return nil, err
	}

	return &config, nil
}
