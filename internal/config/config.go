package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/misterclayt0n/smart-trainer/internal/engine"
	"github.com/misterclayt0n/smart-trainer/internal/models"
)

const (
	appDir         = "smart-trainer"
	configFile     = "config.toml"
	profilesDB     = "profiles.db"
	devDatabaseURL = "file:./local.db"
	envDatabaseURL = "TURSO_DATABASE_URL"
	envDevMode     = "DEV_MODE"
	envThreshold   = "SMART_TRAINER_FAILURE_THRESHOLD"
	envBaseDecay   = "SMART_TRAINER_BASE_DECAY"
	envFatigue     = "SMART_TRAINER_FATIGUE_FACTOR"
	envSensitivity = "SMART_TRAINER_POWER_SENSITIVITY"
	envProfile     = "SMART_TRAINER_PROFILE"
)

var ErrNoConfig = errors.New("config file not found")

type Config struct {
	Engine  engine.Config         `toml:"engine"`
	Athlete models.AthleteProfile `toml:"athlete"`
	DB      DBConfig              `toml:"database"`
}

type DBConfig struct {
	ConnectionString string `toml:"connection_string"` // The entire DB connection string.
	DefaultProfile   string `toml:"default_profile,omitempty"`
}

func DefaultConfig() Config {
	return Config{
		Engine:  engine.DefaultConfig(),
		Athlete: models.DefaultAthleteProfile(),
	}
}

// Returns the directory holding the config, the profile database and the
// active set.
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}

	return filepath.Join(home, ".config", appDir), nil
}

// Returns the path to the config file.
func GetConfigPath() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(dir, configFile), nil
}

// Reads the configuration from the config file. A missing file is not an
// error: defaults are used.
func LoadConfig() (*Config, error) {
	path, err := GetConfigPath()
	if err != nil {
		return nil, err
	}

	// A .env next to the working directory is optional.
	_ = godotenv.Load()

	cfg, err := LoadFrom(path)
	if errors.Is(err, ErrNoConfig) {
		d := DefaultConfig()
		cfg = &d
		err = nil
	}
	if err != nil {
		return nil, err
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}

	if cfg.DB.ConnectionString == "" {
		dir, err := GetConfigDir()
		if err != nil {
			return nil, err
		}
		cfg.DB.ConnectionString = "file:" + filepath.Join(dir, profilesDB)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFrom decodes a config file, filling missing values with defaults.
func LoadFrom(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNoConfig
		}
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	return &cfg, nil
}

func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv(envDatabaseURL); v != "" {
		cfg.DB.ConnectionString = v
	}
	// Check for a DEV_MODE environment variable.
	if os.Getenv(envDevMode) == "true" {
		cfg.DB.ConnectionString = devDatabaseURL
	}
	if v := os.Getenv(envProfile); v != "" {
		cfg.DB.DefaultProfile = v
	}

	overrides := []struct {
		key string
		dst *float64
	}{
		{envThreshold, &cfg.Engine.FailureThreshold},
		{envBaseDecay, &cfg.Engine.BaseDecayPerRep},
		{envFatigue, &cfg.Athlete.FatigueFactor},
		{envSensitivity, &cfg.Athlete.PowerSensitivity},
	}
	for _, o := range overrides {
		if err := overrideFloat(o.key, o.dst); err != nil {
			return fmt.Errorf("%s: %w", o.key, err)
		}
	}

	return nil
}

// overrideFloat leaves dst untouched when key is unset.
func overrideFloat(key string, dst *float64) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}

	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fmt.Errorf("%w: %q is not a number", engine.ErrConfiguration, v)
	}
	*dst = f

	return nil
}

// Validate checks the engine section. Athlete factors outside the calibrated
// range are accepted here and reported when the engine is built.
func (c *Config) Validate() error {
	if err := c.Engine.Validate(); err != nil {
		return fmt.Errorf("config [engine]: %w", err)
	}

	if err := c.Athlete.Validate(); err != nil && !errors.Is(err, models.ErrProfileOutOfRange) {
		return fmt.Errorf("config [athlete]: %w", err)
	}

	return nil
}

// Save writes the configuration to path, creating its directory.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(cfg)
}

// CreateExample writes the default configuration unless a config file
// already exists. It reports whether a file was written.
func CreateExample() (string, bool, error) {
	path, err := GetConfigPath()
	if err != nil {
		return "", false, err
	}

	if _, err := os.Stat(path); err == nil {
		return path, false, nil
	}

	dir := filepath.Dir(path)
	cfg := DefaultConfig()
	cfg.DB.ConnectionString = "file:" + filepath.Join(dir, profilesDB)

	if err := Save(path, &cfg); err != nil {
		return "", false, err
	}

	return path, true, nil
}
