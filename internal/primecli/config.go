package primecli

import (
	"slices"

	"github.com/BurntSushi/toml"
	"go.llib.dev/frameless/pkg/errorkit"
	"go.llib.dev/frameless/pkg/logging"
	"go.llib.dev/frameless/pkg/zerokit"
)

const (
	ErrConfigFile    errorkit.Error = "ErrConfigFile"
	ErrInvalidConfig errorkit.Error = "ErrInvalidConfig"
)

const (
	DefaultWidth    = 64
	DefaultFormat   = FormatText
	DefaultLogLevel = logging.LevelInfo
)

var (
	widths    = []int{8, 16, 32, 64}
	formats   = []string{FormatText, FormatJSON, FormatTOML}
	logLevels = []logging.Level{logging.LevelDebug, logging.LevelInfo, logging.LevelWarn, logging.LevelError}
)

// FileConfig is the layout of the optional TOML config file.
//
//	width = 32
//	format = "json"
//	log_level = "debug"
type FileConfig struct {
	Width    int    `toml:"width"`
	Format   string `toml:"format"`
	LogLevel string `toml:"log_level"`
}

func LoadConfigFile(path string) (FileConfig, error) {
	var c FileConfig
	if _, err := toml.DecodeFile(path, &c); err != nil {
		return FileConfig{}, ErrConfigFile.Wrap(err)
	}
	if err := c.Validate(); err != nil {
		return FileConfig{}, err
	}
	return c, nil
}

// Validate checks the values that are present, zero values mean "not configured".
func (c FileConfig) Validate() error {
	var errs []error
	if c.Width != 0 && !slices.Contains(widths, c.Width) {
		errs = append(errs, ErrInvalidConfig.F("width must be one of %v, got %d", widths, c.Width))
	}
	if c.Format != "" && !slices.Contains(formats, c.Format) {
		errs = append(errs, ErrInvalidConfig.F("format must be one of %v, got %q", formats, c.Format))
	}
	if c.LogLevel != "" && !slices.Contains(logLevels, logging.Level(c.LogLevel)) {
		errs = append(errs, ErrInvalidConfig.F("log_level must be one of %v, got %q", logLevels, c.LogLevel))
	}
	return errorkit.Merge(errs...)
}

// Flags are the options shared by every command.
// Command line flags take precedence over environment variables,
// and both take precedence over the config file.
type Flags struct {
	Width    int
	Format   string
	LogLevel string
	Config   string
}

// Settings are the resolved Flags.
type Settings struct {
	Width    int
	Format   string
	LogLevel logging.Level
}

func (f Flags) Resolve() (Settings, error) {
	var file FileConfig
	if f.Config != "" {
		c, err := LoadConfigFile(f.Config)
		if err != nil {
			return Settings{}, err
		}
		file = c
	}
	s := Settings{
		Width:    zerokit.Coalesce(f.Width, file.Width, DefaultWidth),
		Format:   zerokit.Coalesce(f.Format, file.Format, DefaultFormat),
		LogLevel: logging.Level(zerokit.Coalesce(f.LogLevel, file.LogLevel, string(DefaultLogLevel))),
	}
	// flags and environment variables are validated by the cli package only when they are set
	if err := (FileConfig{Width: s.Width, Format: s.Format, LogLevel: string(s.LogLevel)}).Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}
