package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/mkotelnikov/family-calendar/internal/logger"
	internalhttp "github.com/mkotelnikov/family-calendar/internal/server/http"
	sqlstorage "github.com/mkotelnikov/family-calendar/internal/storage/sql"
	"github.com/mkotelnikov/family-calendar/internal/storagebuilder"
	"github.com/spf13/viper"
)

const envConfigPrefix = "$env:"

type Config struct {
	HTTPServer internalhttp.Config
	Logger     logger.Config
	Storage    storagebuilder.Config
	Auth       AuthConfig
}

type AuthConfig struct {
	Enabled   bool
	SecretKey string
	Users     map[string]string
}

func NewConfig(configFile string) (Config, error) {
	viper.SetConfigFile(configFile)
	viper.SetDefault("auth.enabled", true)

	if err := viper.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("failed to read config %q: %w", configFile, err)
	}
	for _, key := range viper.AllKeys() {
		value := viper.GetString(key)
		if !strings.HasPrefix(value, envConfigPrefix) {
			continue
		}
		name := value[len(envConfigPrefix):]
		if err := viper.BindEnv(key, name); err != nil {
			return Config{}, fmt.Errorf("failed to prepare config: %w", err)
		}
		// An unbound $env: placeholder must not leak into the config value.
		if _, ok := os.LookupEnv(name); !ok {
			viper.Set(key, "")
		}
	}

	config := Config{
		HTTPServer: internalhttp.Config{
			Host: stringOr("httpserver.host", "0.0.0.0"),
			Port: intOr("httpserver.port", 5000),
		},
		Logger: logger.Config{Level: stringOr("logger.level", "WARN")},
		Storage: storagebuilder.Config{
			StorageType: stringOr("storage.storagetype", "memory"),
			Database: sqlstorage.Config{
				DSN:      viper.GetString("storage.database.dsn"),
				Host:     stringOr("storage.database.host", "127.0.0.1"),
				Port:     intOr("storage.database.port", 5432),
				Database: viper.GetString("storage.database.database"),
				Username: viper.GetString("storage.database.username"),
				Password: viper.GetString("storage.database.password"),
			},
		},
		Auth: AuthConfig{
			Enabled:   viper.GetBool("auth.enabled"),
			SecretKey: viper.GetString("auth.secretkey"),
			Users:     viper.GetStringMapString("auth.users"),
		},
	}
	return config, nil
}

func stringOr(key, fallback string) string {
	if value := viper.GetString(key); value != "" {
		return value
	}
	return fallback
}

func intOr(key string, fallback int) int {
	if value := viper.GetInt(key); value != 0 {
		return value
	}
	return fallback
}
