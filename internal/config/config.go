package config

import (
	"log"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

/*
config is loaded once from .env plus the process environment, then watched so a
changed file is picked up without a restart. Reads go through GetConfig which
takes the read lock.
*/
var configSingleton *ConfigSingleton
var muOnce sync.Once

type ConfigSingleton struct {
	Config *Config
	mu     sync.RWMutex
}

type Config struct {
	ServerPort   string `mapstructure:"SERVER_PORT"`
	DbName       string `mapstructure:"POSTGRES_DB"`
	DbHost       string `mapstructure:"POSTGRES_HOST"`
	DbPort       string `mapstructure:"POSTGRES_PORT"`
	DbUser       string `mapstructure:"POSTGRES_USER"`
	DbPas        string `mapstructure:"POSTGRES_PASSWORD"`
	AuthTokenKey string `mapstructure:"AUTH_TOKEN_KEY"`
	MigrationURL string `mapstructure:"MIGRATION_URL"`
	SeedFile     string `mapstructure:"SEED_FILE"`
}

func GetConfig() *Config {
	initConfig()
	configSingleton.mu.RLock()
	defer configSingleton.mu.RUnlock()
	return configSingleton.Config
}

func initConfig() {
	if configSingleton == nil {
		muOnce.Do(func() {
			configSingleton = &ConfigSingleton{}
			if cf, err := loadConfig(); err == nil {
				configSingleton.Config = cf
			} else {
				log.Fatalf("error reading config: %v", err)
			}
			viper.WatchConfig()
			viper.OnConfigChange(func(e fsnotify.Event) {
				if cf, err := loadConfig(); err == nil {
					configSingleton.mu.Lock()
					configSingleton.Config = cf
					configSingleton.mu.Unlock()
				} else {
					log.Printf("failed to reload config file: %v", err)
				}
			})
		})
	}
}

func loadConfig() (*Config, error) {
	cf := &Config{}

	viper.SetConfigFile(".env")
	viper.SetConfigType("env")
	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", "3000")
	viper.SetDefault("MIGRATION_URL", "file://internal/infra/repository/db/migrations")
	viper.SetDefault("SEED_FILE", "docs/seed.yaml")

	// a missing .env is fine, the process environment still applies
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Printf("config file not loaded: %v", err)
		}
	}

	if err := viper.Unmarshal(cf); err != nil {
		return nil, err
	}
	return cf, nil
}
