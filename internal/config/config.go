package config

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/ilyakaznacheev/cleanenv"
)

var ErrInvalidValue = errors.New("invalid config value")

var (
	logLevels  = []string{"debug", "info", "warn", "error"}
	logFormats = []string{"json", "text"}
	firstTurns = []string{"human", "computer", "random"}
)

type Config struct {
	LogLevel  string  `yaml:"log-level" env:"LOG_LEVEL" env-default:"error"`
	LogFormat string  `yaml:"log-format" env:"LOG_FORMAT" env-default:"json"`
	Console   Console `yaml:"console"`
}

type Console struct {
	NoColor   bool   `yaml:"no-color" env:"CONSOLE_NO_COLOR"`
	FirstTurn string `yaml:"first-turn" env:"CONSOLE_FIRST_TURN" env-default:"human"`
}

// MustLoad - load all configurations in config.yml file, falling back to the environment
// when the file does not exist.
func MustLoad(path string) *Config {
	config := &Config{}

	var err error
	if _, statErr := os.Stat(path); errors.Is(statErr, os.ErrNotExist) {
		err = cleanenv.ReadEnv(config)
	} else {
		err = cleanenv.ReadConfig(path, config)
	}

	if err == nil {
		err = config.Validate()
	}

	if err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

// Validate - checks that every enumerated setting holds a known value.
func (that *Config) Validate() error {
	if !slices.Contains(logLevels, that.LogLevel) {
		return fmt.Errorf("%w: log-level %q", ErrInvalidValue, that.LogLevel)
	}

	if !slices.Contains(logFormats, that.LogFormat) {
		return fmt.Errorf("%w: log-format %q", ErrInvalidValue, that.LogFormat)
	}

	if !slices.Contains(firstTurns, that.Console.FirstTurn) {
		return fmt.Errorf("%w: console.first-turn %q", ErrInvalidValue, that.Console.FirstTurn)
	}

	return nil
}
