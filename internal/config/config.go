package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds the runtime settings of the inventory API.
type Config struct {
	ServerAddr       string
	DatabaseURL      string
	RedisAddr        string
	LowStockCacheTTL time.Duration
	DeletePolicy     string
	RateLimitEnabled bool
	RateLimitRPS     float64
	RateLimitBurst   int
}

// Load reads inventory.yaml (working directory, optional) and INVENTORY_*
// environment variables. The defaults run the API with in-memory
// repositories and no redis, so a bare binary is usable out of the box.
func Load() (Config, error) {
	v := viper.New()
	v.SetConfigName("inventory")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.SetEnvPrefix("inventory")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("server.addr", ":8080")
	v.SetDefault("database.url", "")
	v.SetDefault("redis.addr", "")
	v.SetDefault("cache.low_stock_ttl", "30s")
	v.SetDefault("inventory.delete_policy", "retain")
	v.SetDefault("rate_limit.enabled", false)
	v.SetDefault("rate_limit.rps", 20)
	v.SetDefault("rate_limit.burst", 40)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	cfg := Config{
		ServerAddr:       v.GetString("server.addr"),
		DatabaseURL:      v.GetString("database.url"),
		RedisAddr:        v.GetString("redis.addr"),
		LowStockCacheTTL: v.GetDuration("cache.low_stock_ttl"),
		DeletePolicy:     v.GetString("inventory.delete_policy"),
		RateLimitEnabled: v.GetBool("rate_limit.enabled"),
		RateLimitRPS:     v.GetFloat64("rate_limit.rps"),
		RateLimitBurst:   v.GetInt("rate_limit.burst"),
	}

	if cfg.DeletePolicy != "retain" && cfg.DeletePolicy != "block" {
		return Config{}, fmt.Errorf("inventory.delete_policy must be \"retain\" or \"block\", got %q", cfg.DeletePolicy)
	}
	return cfg, nil
}
