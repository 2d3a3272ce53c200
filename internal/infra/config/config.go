package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	DatabaseURL      string
	Port             string
	JWTSecret        string
	JWTRefreshSecret string
	JWTIssuer        string
	AccessTokenTTL   time.Duration
	RefreshTokenTTL  time.Duration
	PasswordPepper   string
	AllowedOrigins   []string
	AllowCredentials bool
	LogLevel         string
}

var envKeys = []string{
	"DATABASE_URL",
	"PORT",
	"JWT_SECRET",
	"JWT_REFRESH_SECRET",
	"JWT_ISSUER",
	"ACCESS_TOKEN_TTL",
	"REFRESH_TOKEN_TTL",
	"PASSWORD_PEPPER",
	"ALLOWED_ORIGINS",
	"ALLOW_CREDENTIALS",
	"LOG_LEVEL",
}

// Load reads an optional config file and the environment. Missing signing
// secrets or database URL abort startup.
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("json")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()
	for _, key := range envKeys {
		if err := viper.BindEnv(key); err != nil {
			return nil, err
		}
	}

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("ACCESS_TOKEN_TTL", "15m")
	viper.SetDefault("REFRESH_TOKEN_TTL", "168h")
	viper.SetDefault("JWT_ISSUER", "taskboard")
	viper.SetDefault("ALLOWED_ORIGINS", "*")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var missing []string
	for _, key := range []string{"DATABASE_URL", "JWT_SECRET", "JWT_REFRESH_SECRET"} {
		if viper.GetString(key) == "" {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required config: %s", strings.Join(missing, ", "))
	}

	return &Config{
		DatabaseURL:      viper.GetString("DATABASE_URL"),
		Port:             viper.GetString("PORT"),
		JWTSecret:        viper.GetString("JWT_SECRET"),
		JWTRefreshSecret: viper.GetString("JWT_REFRESH_SECRET"),
		JWTIssuer:        viper.GetString("JWT_ISSUER"),
		AccessTokenTTL:   viper.GetDuration("ACCESS_TOKEN_TTL"),
		RefreshTokenTTL:  viper.GetDuration("REFRESH_TOKEN_TTL"),
		PasswordPepper:   viper.GetString("PASSWORD_PEPPER"),
		AllowedOrigins:   viper.GetStringSlice("ALLOWED_ORIGINS"),
		AllowCredentials: viper.GetBool("ALLOW_CREDENTIALS"),
		LogLevel:         viper.GetString("LOG_LEVEL"),
	}, nil
}
