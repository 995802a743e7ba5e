package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	DriverFile   = "file"
	DriverRedis  = "redis"
	DriverSQLite = "sqlite"
)

var ErrUnknownDriver = errors.New("unknown scores driver")

type Config struct {
	LogLevel     string `yaml:"log-level" env:"LOG_LEVEL" env-default:"warn"`
	NoColor      bool   `yaml:"no-color" env:"TICTACTOE_NO_COLOR" env-default:"false"`
	MaxBoardSize int    `yaml:"max-board-size" env:"MAX_BOARD_SIZE" env-default:"0"`
	Scores       Scores `yaml:"scores"`
	Redis        Redis  `yaml:"redis"`
}

type Scores struct {
	Driver     string `yaml:"driver" env:"SCORES_DRIVER" env-default:"file"`
	FilePath   string `yaml:"file-path" env:"SCORES_FILE_PATH" env-default:"scores.json"`
	SQLitePath string `yaml:"sqlite-path" env:"SCORES_SQLITE_PATH" env-default:"scores.db"`
}

type Redis struct {
	Host string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
	Key  string `yaml:"key" env:"REDIS_KEY" env-default:"tictactoe:scores"`
}

// Load - reads the config file when it exists, otherwise only the environment.
func Load(path string) (*Config, error) {
	config := &Config{}

	var err error
	if _, statErr := os.Stat(path); statErr == nil {
		err = cleanenv.ReadConfig(path, config)
	} else {
		err = cleanenv.ReadEnv(config)
	}

	if err != nil {
		return nil, fmt.Errorf("unable to load config: %w", err)
	}

	if err = config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

func (that *Config) Validate() error {
	switch that.Scores.Driver {
	case DriverFile, DriverRedis, DriverSQLite:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownDriver, that.Scores.Driver)
	}

	if that.MaxBoardSize < 0 {
		return fmt.Errorf("max-board-size must not be negative, got %d", that.MaxBoardSize)
	}

	return nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
