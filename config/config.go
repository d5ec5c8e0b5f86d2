package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"weather-dash/logging"
)

// Server defaults
const DEFAULT_LISTEN_ADDRESS = ":8050"
const SHUTDOWN_TIMEOUT_SECONDS = 5

// Dataset defaults
const RESOURCES_PATH_PREFIX = "resources"
const DATASET_RESOURCE = "PhiladelphiaWeatherForInfoVis.csv"

// Cache defaults. An empty redis address selects the in-process cache.
const DEFAULT_REDIS_DB = 0
const DEFAULT_CACHE_TTL = 10 * time.Minute
const DEFAULT_WARM_INTERVAL = 5 * time.Minute

// Config is the process configuration, read once at startup.
type Config struct {
	DatasetPath   string        `validate:"required"`
	ListenAddress string        `validate:"required,hostname_port"`
	RedisAddress  string        `validate:"omitempty,hostname_port"`
	RedisPassword string
	RedisDB       int           `validate:"gte=0,lte=15"`
	CacheTTL      time.Duration `validate:"gte=0"`
	WarmInterval  time.Duration `validate:"gte=0"`
	Debug         bool
}

var validate = validator.New()

// Load reads configuration from a .env file (if any) and the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logging.Debugf("[Config] No .env file loaded: %v", err)
	}

	cfg := &Config{
		DatasetPath:   getenvDefault("DATASET_PATH", GetResourcePath(DATASET_RESOURCE)),
		ListenAddress: getenvDefault("LISTEN_ADDRESS", DEFAULT_LISTEN_ADDRESS),
		RedisAddress:  os.Getenv("REDIS_ADDRESS"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       getenvInt("REDIS_DB", DEFAULT_REDIS_DB),
	}

	var err error
	if cfg.CacheTTL, err = getenvDuration("CACHE_TTL", DEFAULT_CACHE_TTL); err != nil {
		return nil, err
	}
	if cfg.WarmInterval, err = getenvDuration("WARM_INTERVAL", DEFAULT_WARM_INTERVAL); err != nil {
		return nil, err
	}
	if v := os.Getenv("DEBUG"); v != "" {
		cfg.Debug, _ = strconv.ParseBool(v)
	}

	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// BaseDir returns the absolute path of the project root directory
func BaseDir() string {
	// Check if PROJECT_ROOT is set
	if root := os.Getenv("PROJECT_ROOT"); root != "" {
		return root
	}

	// Default to the current working directory
	wd, err := os.Getwd()
	if err != nil {
		panic("Unable to determine working directory: " + err.Error())
	}

	return wd
}

func GetResourcePath(resourceFile string) string {
	return filepath.Join(BaseDir(), RESOURCES_PATH_PREFIX, resourceFile)
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err == nil {
			return n
		}
	}
	return def
}

func getenvDuration(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}
