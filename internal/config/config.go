package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

var (
	ErrInvalidLength   = errors.New("board length must be positive")
	ErrUnknownLogLevel = errors.New("unknown log level")
)

type Config struct {
	LogLevel string   `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	Board    Board    `yaml:"board"`
	Settings Settings `yaml:"settings"`
}

type Board struct {
	Length float64 `yaml:"length" env:"BOARD_LENGTH" env-default:"600"`
}

// Settings - values the settings menu starts with. They are not written back.
type Settings struct {
	BoardSize   uint32 `yaml:"board-size" env:"BOARD_SIZE" env-default:"3"`
	SearchDepth uint32 `yaml:"search-depth" env:"SEARCH_DEPTH" env-default:"4"`
}

// MustLoad - load all configurations in config.yml file, or from the environment when there is no file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("failed to read environment: %w", err)
		}

		return config, nil
	}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	return config, nil
}

func (that *Settings) Entity() entity.Settings {
	return entity.Settings{
		BoardSize:   that.BoardSize,
		SearchDepth: that.SearchDepth,
	}
}

// Validate - rejects values the app cannot start with.
func (that *Config) Validate() error {
	if _, err := that.SlogLevel(); err != nil {
		return err
	}

	if err := that.Board.Validate(); err != nil {
		return err
	}

	if err := that.Settings.Validate(); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}

	return nil
}

// SlogLevel - LogLevel as a slog level: debug, info, warn or error.
func (that *Config) SlogLevel() (slog.Level, error) {
	switch that.LogLevel {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("%w: %q", ErrUnknownLogLevel, that.LogLevel)
	}
}

// Validate - a board without area maps every pointer outside it.
func (that *Board) Validate() error {
	if !(that.Length > 0) {
		return fmt.Errorf("%w: %v", ErrInvalidLength, that.Length)
	}

	return nil
}

// Validate - both values must be among the options the settings menu offers.
func (that *Settings) Validate() error {
	for name, value := range map[string]uint32{"board-size": that.BoardSize, "search-depth": that.SearchDepth} {
		if value < entity.MinOption || value > entity.MaxOption {
			return fmt.Errorf("%w: %s is %d, want %d..%d", apperror.ErrInvalidSize, name, value, entity.MinOption, entity.MaxOption)
		}
	}

	return nil
}

func (that *Board) Bounds() entity.Bounds {
	return entity.CenteredBounds(that.Length)
}
