package config

import (
	"connect4/meta"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type Config struct {
	Simulations int
	Goroutines  int
	Seed        uint64 // 0 seeds from the clock
	LogLevel    zerolog.Level
	Games       int
	ResultsDir  string
}

// Load reads the environment, after loading a .env file from the working
// directory if there is one.
func Load() *Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Warn().Err(err).Msg("failed to load .env file")
	}
	return FromEnv()
}

func FromEnv() *Config {
	level, err := zerolog.ParseLevel(GetEnv("C4_LOG_LEVEL", "info"))
	if err != nil {
		log.Warn().Err(err).Msg("invalid log level, using info")
		level = zerolog.InfoLevel
	}

	return &Config{
		Simulations: GetEnvAsInt("C4_SIMULATIONS", meta.SIMULATIONS),
		Goroutines:  GetEnvAsInt("C4_GOROUTINES", meta.GOROUTINES),
		Seed:        GetEnvAsUint64("C4_SEED", 0),
		LogLevel:    level,
		Games:       GetEnvAsInt("C4_GAMES", meta.GAMES),
		ResultsDir:  GetEnv("C4_RESULTS_DIR", meta.RESULTS_DIR),
	}
}

func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Warn().Msgf("invalid integer value for %s: %s, using default: %d", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}

func GetEnvAsUint64(key string, defaultValue uint64) uint64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseUint(valueStr, 10, 64)
	if err != nil {
		log.Warn().Msgf("invalid unsigned value for %s: %s, using default: %d", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}
