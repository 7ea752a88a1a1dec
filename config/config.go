package config

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
	"ulascansenturk/occupancy-service/internal/predictor"
)

type Config struct {
	ServiceName   string
	ServerAddress string

	DBName     string
	DBPassword string
	DBUser     string
	DBPort     string
	DBHost     string

	Env         string
	LogLevel    string
	HTTPTimeout int32

	// PollIntervalMinutes is the collection cadence in whole minutes.
	PollIntervalMinutes int
	OccupancyAPIURL     string
	OccupancyTimeout    time.Duration

	WeatherAPIURL    string
	WeatherLatitude  float64
	WeatherLongitude float64
	WeatherTimeout   time.Duration

	PredictorURL       string
	PredictionCacheTTL time.Duration
	// concurrent prediction requests for one date share an upstream call
	MaxQueueSize int
	MaxWaitTime  time.Duration

	Timezone string
}

func LoadConfig() (*Config, error) {
	v := viper.New()

	v.SetDefault("SERVICE_NAME", "occupancy-service")

	v.SetDefault("SERVER_ADDRESS", "0.0.0.0:3000")
	v.SetDefault("DATABASE_PORT", "5432")
	v.SetDefault("HTTP_TIMEOUT", 20)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("POLL_INTERVAL_MINUTES", 1)
	v.SetDefault("OCCUPANCY_API_URL", "https://www.ai-fitness.de/connect/v1/studio/1412625590/utilization")
	v.SetDefault("WEATHER_API_URL", "https://api.open-meteo.com/v1/forecast")
	v.SetDefault("WEATHER_LATITUDE", 50.2612)
	v.SetDefault("WEATHER_LONGITUDE", 10.9628)
	v.SetDefault("WEATHER_TIMEOUT", 10*time.Second)
	v.SetDefault("PREDICTOR_URL", "http://predictor:5000")
	v.SetDefault("PREDICTION_CACHE_TTL", 15*time.Minute)
	v.SetDefault("MAX_QUEUE_SIZE", 10)
	v.SetDefault("MAX_WAIT_TIME", 50*time.Millisecond)
	v.SetDefault("TIMEZONE", "Europe/Berlin")

	v.AutomaticEnv()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Warn().Msg("No .env file found, using environment variables only")
		} else {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	} else {
		log.Info().Str("file", v.ConfigFileUsed()).Msg("Config file loaded")
	}

	config := &Config{
		ServiceName:         v.GetString("SERVICE_NAME"),
		ServerAddress:       v.GetString("SERVER_ADDRESS"),
		DBName:              v.GetString("DATABASE_NAME"),
		DBPassword:          v.GetString("DATABASE_PASSWORD"),
		DBUser:              v.GetString("DATABASE_USER"),
		DBPort:              v.GetString("DATABASE_PORT"),
		DBHost:              v.GetString("DATABASE_HOST"),
		Env:                 v.GetString("ENV"),
		LogLevel:            v.GetString("LOG_LEVEL"),
		HTTPTimeout:         v.GetInt32("HTTP_TIMEOUT"),
		PollIntervalMinutes: v.GetInt("POLL_INTERVAL_MINUTES"),
		OccupancyAPIURL:     v.GetString("OCCUPANCY_API_URL"),
		OccupancyTimeout:    v.GetDuration("OCCUPANCY_TIMEOUT"),
		WeatherAPIURL:       v.GetString("WEATHER_API_URL"),
		WeatherLatitude:     v.GetFloat64("WEATHER_LATITUDE"),
		WeatherLongitude:    v.GetFloat64("WEATHER_LONGITUDE"),
		WeatherTimeout:      v.GetDuration("WEATHER_TIMEOUT"),
		PredictorURL:        v.GetString("PREDICTOR_URL"),
		PredictionCacheTTL:  v.GetDuration("PREDICTION_CACHE_TTL"),
		MaxQueueSize:        v.GetInt("MAX_QUEUE_SIZE"),
		MaxWaitTime:         v.GetDuration("MAX_WAIT_TIME"),
		Timezone:            v.GetString("TIMEZONE"),
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (c *Config) validate() error {
	if c.PollIntervalMinutes < 1 {
		return fmt.Errorf("POLL_INTERVAL_MINUTES must be at least 1, got %d", c.PollIntervalMinutes)
	}
	if c.OccupancyAPIURL == "" {
		return fmt.Errorf("OCCUPANCY_API_URL is required")
	}
	// the occupancy source has no timeout of its own; one interval keeps cycles from piling up
	if c.OccupancyTimeout <= 0 {
		c.OccupancyTimeout = c.PollInterval()
	}
	if c.MaxQueueSize < 1 {
		return fmt.Errorf("MAX_QUEUE_SIZE must be at least 1, got %d", c.MaxQueueSize)
	}
	// a prediction request waits for the batch and then the full gateway call
	if need := c.MaxWaitTime + predictor.CallBudget; c.HTTPTimeoutDuration() <= need {
		return fmt.Errorf("HTTP_TIMEOUT must exceed %s, got %ds", need, c.HTTPTimeout)
	}
	if _, err := time.LoadLocation(c.Timezone); err != nil {
		return fmt.Errorf("invalid TIMEZONE %q: %w", c.Timezone, err)
	}
	return nil
}

func (c *Config) HTTPTimeoutDuration() time.Duration {
	return time.Duration(c.HTTPTimeout) * time.Second
}

func (c *Config) PollInterval() time.Duration {
	return time.Duration(c.PollIntervalMinutes) * time.Minute
}

// Location returns the zone used to derive weekday/hour and calendar dates.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}
