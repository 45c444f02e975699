package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Kakao   KakaoConfig   `yaml:"kakao" mapstructure:"kakao"`
	Semas   SemasConfig   `yaml:"semas" mapstructure:"semas"`
	Bizinfo BizinfoConfig `yaml:"bizinfo" mapstructure:"bizinfo"`
	Cache   CacheConfig   `yaml:"cache" mapstructure:"cache"`
	Rates   RatesConfig   `yaml:"rates" mapstructure:"rates"`
	History HistoryConfig `yaml:"history" mapstructure:"history"`
	Server  ServerConfig  `yaml:"server" mapstructure:"server"`
	Log     LogConfig     `yaml:"log" mapstructure:"log"`
}

// KakaoConfig holds Kakao Local API settings.
type KakaoConfig struct {
	Key         string  `yaml:"key" mapstructure:"key"`
	BaseURL     string  `yaml:"base_url" mapstructure:"base_url"`
	TimeoutSecs int     `yaml:"timeout_secs" mapstructure:"timeout_secs"`
	RateLimit   float64 `yaml:"rate_limit" mapstructure:"rate_limit"`
	RateBurst   int     `yaml:"rate_burst" mapstructure:"rate_burst"`
}

// SemasConfig holds the small-business administration store registry settings.
type SemasConfig struct {
	Key         string `yaml:"key" mapstructure:"key"`
	BaseURL     string `yaml:"base_url" mapstructure:"base_url"`
	TimeoutSecs int    `yaml:"timeout_secs" mapstructure:"timeout_secs"`
}

// BizinfoConfig holds the government grant listing API settings.
type BizinfoConfig struct {
	Key         string `yaml:"key" mapstructure:"key"`
	BaseURL     string `yaml:"base_url" mapstructure:"base_url"`
	TimeoutSecs int    `yaml:"timeout_secs" mapstructure:"timeout_secs"`
}

// CacheConfig configures the in-memory result cache.
type CacheConfig struct {
	MaxEntries int `yaml:"max_entries" mapstructure:"max_entries"`
}

// RatesConfig points at an optional YAML override for the estimation tables.
type RatesConfig struct {
	Path string `yaml:"path" mapstructure:"path"`
}

// HistoryConfig configures the local invocation log.
type HistoryConfig struct {
	Path string `yaml:"path" mapstructure:"path"`
}

// ServerConfig configures the HTTP server.
type ServerConfig struct {
	Port int `yaml:"port" mapstructure:"port"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("SANGKWON")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("server.port", 8080)
	v.SetDefault("kakao.base_url", "https://dapi.kakao.com")
	v.SetDefault("kakao.timeout_secs", 10)
	v.SetDefault("kakao.rate_limit", 10)
	v.SetDefault("kakao.rate_burst", 10)
	v.SetDefault("semas.base_url", "https://apis.data.go.kr/B553077/api/open/sdsc2")
	v.SetDefault("semas.timeout_secs", 10)
	v.SetDefault("bizinfo.base_url", "https://www.bizinfo.go.kr/uss/rss/bizinfoApi.do")
	v.SetDefault("bizinfo.timeout_secs", 10)
	v.SetDefault("cache.max_entries", 512)

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
