package config

import (
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	"pokerbot-server/internal/util"
)

// Config provides configuration for the poker server
type Config struct {
	loaded   bool
	LogLevel string `yaml:"logLevel" envconfig:"log_level"`
	Game     struct {
		DefaultStake string `yaml:"defaultStake" envconfig:"default_stake"`
		TurnTimeout  int    `yaml:"turnTimeout" envconfig:"turn_timeout"`
	}
	Wallet struct {
		DefaultBalance int `yaml:"defaultBalance" envconfig:"default_balance"`
		DailyBonus     int `yaml:"dailyBonus" envconfig:"daily_bonus"`
	}
}

var config Config

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration. A missing config file is not an error;
// the defaults and environment provide everything.
func Load() error {
	config = Config{}
	config.LogLevel = "info"
	config.Game.DefaultStake = "micro"
	config.Game.TurnTimeout = 120
	config.Wallet.DefaultBalance = 1000
	config.Wallet.DailyBonus = 100

	configFile := util.Getenv("PB_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err == nil {
		defer file.Close()
		if err := yaml.NewDecoder(file).Decode(&config); err != nil {
			return err
		}
	} else if !os.IsNotExist(err) {
		return err
	}

	if err := envconfig.Process("pb", &config); err != nil {
		return err
	}

	config.loaded = true
	return nil
}
