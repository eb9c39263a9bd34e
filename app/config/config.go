package config

import (
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config es la configuración del servicio; los umbrales del intérprete
// traen los valores de fábrica y solo se tocan para recalibrar.
type Config struct {
	Server struct {
		Port string `mapstructure:"port"`
	} `mapstructure:"server"`

	Redis struct {
		Enabled bool   `mapstructure:"enabled"`
		URL     string `mapstructure:"url"`
	} `mapstructure:"redis"`

	Cache struct {
		TTLMinutes int `mapstructure:"ttl_minutes"`
		MaxItems   int `mapstructure:"max_items"`
	} `mapstructure:"cache"`

	History struct {
		Size int `mapstructure:"size"`
	} `mapstructure:"history"`

	Catalog struct {
		SeedPath string `mapstructure:"seed_path"`
	} `mapstructure:"catalog"`

	Parser struct {
		ScoreCeiling          float64 `mapstructure:"score_ceiling"`
		ProductThreshold      float64 `mapstructure:"product_threshold"`
		ProductTokenThreshold float64 `mapstructure:"product_token_threshold"`
		TermThreshold         float64 `mapstructure:"term_threshold"`
	} `mapstructure:"parser"`
}

// Load lee el yaml de configuración con overrides por variables de
// entorno (LICOR_SERVER_PORT, LICOR_REDIS_URL, ...). Si el archivo no
// existe se corre con defaults más entorno.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.SetDefault("server.port", "8080")
	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.url", "redis://localhost:6379/0")
	v.SetDefault("cache.ttl_minutes", 60)
	v.SetDefault("cache.max_items", 2048)
	v.SetDefault("history.size", 50)
	v.SetDefault("catalog.seed_path", "config/catalog.yaml")
	v.SetDefault("parser.score_ceiling", 25.0)
	v.SetDefault("parser.product_threshold", 0.35)
	v.SetDefault("parser.product_token_threshold", 0.25)
	v.SetDefault("parser.term_threshold", 0.30)

	v.SetEnvPrefix("LICOR")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if _, err := os.Stat(path); err == nil {
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// CacheTTL devuelve el TTL del cache como duración
func (c *Config) CacheTTL() time.Duration {
	return time.Duration(c.Cache.TTLMinutes) * time.Minute
}
