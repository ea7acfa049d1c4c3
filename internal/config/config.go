package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel   string     `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	HTTPPort   string     `yaml:"http-port" env:"HTTP_PORT" env-default:"9090"`
	InputPath  string     `yaml:"input-path" env:"INPUT_PATH" env-default:"./input/day9.txt"`
	Simulation Simulation `yaml:"simulation"`
	Redis      Redis      `yaml:"redis"`
}

type Simulation struct {
	Multiplier    int  `yaml:"multiplier" env:"SIMULATION_MULTIPLIER" env-default:"100"`
	ProgressSteps int  `yaml:"progress-steps" env:"SIMULATION_PROGRESS_STEPS" env-default:"20"`
	ProgressBar   bool `yaml:"progress-bar" env:"SIMULATION_PROGRESS_BAR" env-default:"false"`

	// MaxLastMarble caps games requested over HTTP.
	MaxLastMarble int `yaml:"max-last-marble" env:"SIMULATION_MAX_LAST_MARBLE" env-default:"10000000"`
}

type Redis struct {
	Enabled   bool          `yaml:"enabled" env:"REDIS_ENABLED" env-default:"false"`
	Host      string        `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port      string        `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
	ResultTTL time.Duration `yaml:"result-ttl" env:"REDIS_RESULT_TTL" env-default:"0s"`

	// DB keeps cached results apart from other data on a shared server.
	DB       int           `yaml:"db" env:"REDIS_DB" env-default:"0"`
	Password string        `yaml:"password" env:"REDIS_PASSWORD"`
	Timeout  time.Duration `yaml:"timeout" env:"REDIS_TIMEOUT" env-default:"2s"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

// Load - reads path if it exists, otherwise only the environment.
func Load(path string) (*Config, error) {
	config := &Config{}

	_, err := os.Stat(path)
	switch {
	case err == nil:
		if err = cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	case errors.Is(err, fs.ErrNotExist):
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("failed to read config from environment: %w", err)
		}
	default:
		return nil, fmt.Errorf("failed to stat config %s: %w", path, err)
	}

	return config, nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
