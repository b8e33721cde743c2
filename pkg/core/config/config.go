package config

import (
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	mumlerr "github.com/msto63/mUML/foundation/core/error"
	"github.com/msto63/mUML/foundation/utils/filex"
)

// EnvVar names the environment variable that points at a config file
const EnvVar = "MUML_CONFIG"

// Config holds the complete application configuration
type Config struct {
	General GeneralConfig `toml:"general" yaml:"general"`
	REPL    REPLConfig    `toml:"repl" yaml:"repl"`
	History HistoryConfig `toml:"history" yaml:"history"`
	TUI     TUIConfig     `toml:"tui" yaml:"tui"`

	// file the configuration was read from, empty for defaults
	path string
}

// GeneralConfig holds general application settings
type GeneralConfig struct {
	Name           string   `toml:"name" yaml:"name" validate:"required"`
	LogLevel       string   `toml:"log_level" yaml:"log_level" validate:"oneof=trace debug info warn warning error fatal"`
	LogFormat      string   `toml:"log_format" yaml:"log_format" validate:"oneof=json text console"`
	ReloadDebounce Duration `toml:"reload_debounce" yaml:"reload_debounce"`
}

// REPLConfig holds settings of the interactive prompt
type REPLConfig struct {
	Prompt string `toml:"prompt" yaml:"prompt" validate:"required"`
	// AutosavePath, when set, receives the diagram on exit
	AutosavePath string `toml:"autosave_path" yaml:"autosave_path"`
}

// HistoryConfig holds command history persistence settings
type HistoryConfig struct {
	Enabled    bool   `toml:"enabled" yaml:"enabled"`
	Path       string `toml:"path" yaml:"path" validate:"required_if=Enabled true"`
	MaxEntries int    `toml:"max_entries" yaml:"max_entries" validate:"min=0"`
}

// TUIConfig holds terminal UI colors. Values are hex colors ("#7D56F4")
// or ANSI 256 color numbers ("205").
type TUIConfig struct {
	Accent string `toml:"accent" yaml:"accent" validate:"color"`
	Muted  string `toml:"muted" yaml:"muted" validate:"color"`
	Error  string `toml:"error" yaml:"error" validate:"color"`
	Border string `toml:"border" yaml:"border" validate:"color"`
}

// Duration wraps time.Duration for TOML and YAML parsing
type Duration struct {
	time.Duration
}

// UnmarshalText parses a duration string
func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// MarshalText formats the duration as a string
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default returns the configuration used when no file is present
func Default() *Config {
	cfg := &Config{History: HistoryConfig{Enabled: true}}
	cfg.applyDefaults()
	return cfg
}

// Path returns the file the configuration was loaded from
func (c *Config) Path() string {
	return c.path
}

// Load loads configuration from a TOML or YAML file. Files ending in
// .yaml or .yml are read as YAML, everything else as TOML.
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, mumlerr.Newf("config file not found: %s", path).WithCode(mumlerr.CodeConfigError)
		}
		return nil, mumlerr.Wrap(err, "failed to read config").WithCode(mumlerr.CodeConfigError)
	}

	// history stays on unless the file turns it off
	cfg := Config{History: HistoryConfig{Enabled: true}}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	default:
		_, err = toml.Decode(string(data), &cfg)
	}
	if err != nil {
		return nil, mumlerr.Wrap(err, "failed to parse config").
			WithCode(mumlerr.CodeConfigError).
			WithDetail("path", path)
	}

	cfg.applyDefaults()
	cfg.expandEnvVars()
	cfg.path = path

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Locate returns $MUML_CONFIG if set, else the first existing default
// location, else "".
func Locate() string {
	if path := os.Getenv(EnvVar); path != "" {
		return path
	}
	defaultPaths := []string{
		"./configs/muml.toml",
		"./muml.toml",
	}
	if home, err := os.UserHomeDir(); err == nil {
		defaultPaths = append(defaultPaths, filepath.Join(home, ".config", "muml", "config.toml"))
	}
	return filex.FirstExisting(defaultPaths...)
}

// LoadFromEnv loads the file found by Locate, or the defaults if there is
// none. A $MUML_CONFIG naming a missing file is an error.
func LoadFromEnv() (*Config, error) {
	path := Locate()
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	if c.General.Name == "" {
		c.General.Name = "mUML"
	}
	if c.General.LogLevel == "" {
		c.General.LogLevel = "warn"
	}
	if c.General.LogFormat == "" {
		c.General.LogFormat = "text"
	}
	if c.General.ReloadDebounce.Duration == 0 {
		c.General.ReloadDebounce.Duration = 250 * time.Millisecond
	}

	if c.REPL.Prompt == "" {
		c.REPL.Prompt = "UML> "
	}

	if c.History.Path == "" {
		c.History.Path = "./data/history.db"
	}
	if c.History.MaxEntries == 0 {
		c.History.MaxEntries = 1000
	}

	if c.TUI.Accent == "" {
		c.TUI.Accent = "#7D56F4"
	}
	if c.TUI.Muted == "" {
		c.TUI.Muted = "241"
	}
	if c.TUI.Error == "" {
		c.TUI.Error = "#FF5F87"
	}
	if c.TUI.Border == "" {
		c.TUI.Border = "62"
	}
}

// expandEnvVars expands environment variables in path values
func (c *Config) expandEnvVars() {
	c.REPL.AutosavePath = os.ExpandEnv(c.REPL.AutosavePath)
	c.History.Path = os.ExpandEnv(c.History.Path)
}

var (
	hexColor = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)
	validate = newValidator()
)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("color", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		if hexColor.MatchString(s) {
			return true
		}
		n, err := strconv.Atoi(s)
		return err == nil && n >= 0 && n <= 255
	})
	return v
}

// Validate checks field constraints and reports the first violation
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	if verrs, ok := err.(validator.ValidationErrors); ok && len(verrs) > 0 {
		fe := verrs[0]
		return mumlerr.Newf("invalid config value for %s: '%v' fails '%s'", fe.Namespace(), fe.Value(), fe.Tag()).
			WithCode(mumlerr.CodeConfigError).
			WithDetail("field", fe.Namespace())
	}
	return mumlerr.Wrap(err, "invalid config").WithCode(mumlerr.CodeConfigError)
}
