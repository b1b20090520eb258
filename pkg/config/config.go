package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	// Server
	Port string `mapstructure:"PORT"`
	Env  string `mapstructure:"ENV"`

	// Redis (optional pick-event feed)
	RedisURL            string `mapstructure:"REDIS_URL"`
	EnablePickEventFeed bool   `mapstructure:"ENABLE_PICK_EVENT_FEED"`

	// CORS
	CorsOrigins []string `mapstructure:"CORS_ORIGINS"`

	// Player pool
	RankingsCSVPath string `mapstructure:"RANKINGS_CSV_PATH"`

	// Draft defaults
	RecommendationSize int     `mapstructure:"RECOMMENDATION_SIZE"`
	WeightADP          float64 `mapstructure:"WEIGHT_ADP"`
	WeightVONA         float64 `mapstructure:"WEIGHT_VONA"`
	WeightNeed         float64 `mapstructure:"WEIGHT_NEED"`
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AddConfigPath("..")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("REDIS_URL", "redis://localhost:6379/0")
	viper.SetDefault("ENABLE_PICK_EVENT_FEED", false)
	viper.SetDefault("CORS_ORIGINS", "http://localhost:5173,http://localhost:3000")
	viper.SetDefault("RANKINGS_CSV_PATH", "FantasyPros_2022_Overall_ADP_Rankings.csv")
	viper.SetDefault("RECOMMENDATION_SIZE", 5)
	viper.SetDefault("WEIGHT_ADP", 0.5)
	viper.SetDefault("WEIGHT_VONA", 0.5)
	viper.SetDefault("WEIGHT_NEED", 0.5)

	// Read from environment
	viper.AutomaticEnv()

	// Read config file if exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// Parse CORS origins from comma-separated string
	if corsStr := viper.GetString("CORS_ORIGINS"); corsStr != "" {
		config.CorsOrigins = strings.Split(corsStr, ",")
	}

	return &config, nil
}

func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
