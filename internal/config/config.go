package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	DatabaseURL    string
	JWTSecret      string
	HTTPAddress    string
	TokenTTL       time.Duration
	PasswordPepper string
	AllowedOrigins []string
	LogLevel       string
}

func Load() (*Config, error) {
	viper.AutomaticEnv()
	for _, key := range []string{
		"DATABASE_URL", "JWT_SECRET", "HTTP_ADDRESS", "TOKEN_TTL",
		"PASSWORD_PEPPER", "ALLOWED_ORIGINS", "LOG_LEVEL",
	} {
		if err := viper.BindEnv(key); err != nil {
			return nil, err
		}
	}

	viper.SetDefault("HTTP_ADDRESS", ":3000")
	viper.SetDefault("TOKEN_TTL", "168h")
	viper.SetDefault("ALLOWED_ORIGINS", "*")

	cfg := &Config{
		DatabaseURL:    viper.GetString("DATABASE_URL"),
		JWTSecret:      viper.GetString("JWT_SECRET"),
		HTTPAddress:    viper.GetString("HTTP_ADDRESS"),
		PasswordPepper: viper.GetString("PASSWORD_PEPPER"),
		AllowedOrigins: viper.GetStringSlice("ALLOWED_ORIGINS"),
		LogLevel:       viper.GetString("LOG_LEVEL"),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	ttl, err := time.ParseDuration(viper.GetString("TOKEN_TTL"))
	if err != nil {
		return nil, fmt.Errorf("invalid TOKEN_TTL: %w", err)
	}
	cfg.TokenTTL = ttl

	return cfg, nil
}
