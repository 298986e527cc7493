package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type AppConfig struct {
	API      *APIConfig      `mapstructure:"api"`
	Gin      *GinConfig      `mapstructure:"gin"`
	Postgres *PostgresConfig `mapstructure:"postgres"`
	Redis    *RedisConfig    `mapstructure:"redis"`
}

type APIConfig struct {
	Environment        string        `mapstructure:"environment"`
	Port               string        `mapstructure:"port"`
	BaseURL            string        `mapstructure:"base_url"`
	AllowedCORSDomains []string      `mapstructure:"allowed_cors_domains"`
	JWTSigningKey      string        `mapstructure:"jwt_signing_key"`
	TokenTTL           time.Duration `mapstructure:"token_ttl"`
}

type GinConfig struct {
	Mode string `mapstructure:"mode"`
}

type PostgresConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DB       string `mapstructure:"db"`
	SSLMode  string `mapstructure:"ssl_mode"`
}

// DSN builds a libpq keyword/value connection string.
func (c *PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s TimeZone=UTC",
		c.Host, c.Port, c.User, c.Password, c.DB, c.SSLMode,
	)
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Load reads the YAML file at path. Every key can be overridden by an
// environment variable named after its path, e.g. API_JWT_SIGNING_KEY.
func Load(path string) (*AppConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("v.ReadInConfig -> %w", err)
	}

	conf := &AppConfig{}
	if err := v.Unmarshal(conf); err != nil {
		return nil, fmt.Errorf("v.Unmarshal -> %w", err)
	}

	if err := conf.Validate(); err != nil {
		return nil, fmt.Errorf("conf.Validate -> %w", err)
	}

	v.OnConfigChange(func(e fsnotify.Event) {
		zap.L().Warn("config file changed, restart the server to apply it", zap.String("file", e.Name))
	})
	v.WatchConfig()

	return conf, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("api.environment", "development")
	v.SetDefault("api.port", "8080")
	v.SetDefault("api.base_url", "localhost:8080")
	v.SetDefault("api.allowed_cors_domains", []string{"http://localhost:3000"})
	v.SetDefault("api.jwt_signing_key", "")
	v.SetDefault("api.token_ttl", 24*time.Hour)

	v.SetDefault("gin.mode", "debug")

	v.SetDefault("postgres.host", "localhost")
	v.SetDefault("postgres.port", "5432")
	v.SetDefault("postgres.user", "postgres")
	v.SetDefault("postgres.password", "")
	v.SetDefault("postgres.db", "dancebook")
	v.SetDefault("postgres.ssl_mode", "disable")

	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
}

func (c *AppConfig) Validate() error {
	err := validation.ValidateStruct(
		c.API,
		validation.Field(&c.API.Environment, validation.Required, validation.In("development", "test", "staging", "production")),
		validation.Field(&c.API.Port, validation.Required),
		validation.Field(&c.API.JWTSigningKey, validation.Required, validation.Length(16, 0)),
		validation.Field(&c.API.TokenTTL, validation.Required),
	)
	if err != nil {
		return fmt.Errorf("api -> %w", err)
	}

	err = validation.ValidateStruct(
		c.Gin,
		validation.Field(&c.Gin.Mode, validation.In("debug", "release", "test")),
	)
	if err != nil {
		return fmt.Errorf("gin -> %w", err)
	}

	return nil
}
