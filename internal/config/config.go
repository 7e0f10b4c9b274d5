package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Addr       string
	DBDriver   string
	DBDSN      string
	SQLitePath string
	RandomSeed int64
	LogLevel   string
	IdlePolicy string
}

// Load reads configuration from an optional unitsim.yaml file and from
// UNITSIM_* environment variables. Env vars win over the file.
func Load() (Config, error) {
	v := viper.New()
	v.SetDefault("addr", ":8080")
	v.SetDefault("log_level", "info")
	v.SetDefault("random_seed", 0)
	v.SetDefault("idle_policy", "none")

	v.SetDefault("db.driver", "sqlite")
	v.SetDefault("db.dsn", "")
	v.SetDefault("db.sqlite_path", "unitsim.db")

	v.SetConfigName("unitsim")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/unitsim")

	v.SetEnvPrefix("UNITSIM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := Config{
		Addr:       v.GetString("addr"),
		DBDriver:   strings.ToLower(v.GetString("db.driver")),
		DBDSN:      v.GetString("db.dsn"),
		SQLitePath: v.GetString("db.sqlite_path"),
		RandomSeed: v.GetInt64("random_seed"),
		LogLevel:   v.GetString("log_level"),
		IdlePolicy: strings.ToLower(v.GetString("idle_policy")),
	}
	switch cfg.DBDriver {
	case "postgres", "sqlite", "memory":
	default:
		return Config{}, fmt.Errorf("unsupported db driver %q", cfg.DBDriver)
	}
	switch cfg.IdlePolicy {
	case "none", "random":
	default:
		return Config{}, fmt.Errorf("unsupported idle policy %q", cfg.IdlePolicy)
	}
	if cfg.DBDriver == "postgres" && cfg.DBDSN == "" {
		return Config{}, errors.New("db.dsn is required for the postgres driver")
	}
	return cfg, nil
}
