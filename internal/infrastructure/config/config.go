// Package config loads application configuration from file and environment.
package config

import (
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/viper"

	"prio/internal/shared/config"
)

var (
	cfg  *config.Config
	once sync.Once
)

// Load reads configuration from the given file (optional) and the
// environment. Environment variables use the PRIO_ prefix with underscores
// for nesting, e.g. PRIO_DATABASE_HOST.
func Load(configPath string) (*config.Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetEnvPrefix("PRIO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./configs")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		// A missing file is fine when everything comes from the environment,
		// but an explicit path must exist.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || configPath != "" {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	loaded := &config.Config{}
	if err := v.Unmarshal(loaded); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	cfg = loaded
	return cfg, nil
}

// Get returns the loaded configuration, falling back to defaults when Load
// has not been called.
func Get() *config.Config {
	once.Do(func() {
		if cfg == nil {
			cfg, _ = Load("")
		}
	})
	return cfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.shutdown_timeout", "10s")
	v.SetDefault("server.debug", false)

	v.SetDefault("database.host", "127.0.0.1")
	v.SetDefault("database.port", 3306)
	v.SetDefault("database.user", "prio")
	v.SetDefault("database.password", "")
	v.SetDefault("database.name", "prio")
	v.SetDefault("database.charset", "utf8mb4")
	v.SetDefault("database.max_idle_conns", 10)
	v.SetDefault("database.max_open_conns", 100)
	v.SetDefault("database.conn_max_lifetime", "1h")

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.output_path", "stdout")

	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.access_token_ttl", "15m")
	v.SetDefault("jwt.refresh_token_ttl", "720h")
	v.SetDefault("jwt.issuer", "prio")

	v.SetDefault("auth.enabled", true)

	v.SetDefault("redis.host", "")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("rate_limit.enabled", false)
	v.SetDefault("rate_limit.requests", 120)
	v.SetDefault("rate_limit.window", "1m")

	v.SetDefault("activity.buffer_size", 256)

	v.SetDefault("permission.model_path", "configs/rbac_model.conf")
}
