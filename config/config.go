package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"starmutt/keys"
	"starmutt/log"
	"starmutt/ui"

	"github.com/spf13/viper"
)

const (
	ConfigFileName = "config"
	ConfigFileType = "toml"
	EnvPrefix      = "STARMUTT"
)

// Config holds application configuration.
type Config struct {
	Log  LogSettings       `mapstructure:"log"`
	UI   UISettings        `mapstructure:"ui"`
	Keys map[string]string `mapstructure:"keys"`

	// File is the configuration file that was read, empty when none was found.
	File string `mapstructure:"-"`
}

// LogSettings mirrors log.LogConfig.
type LogSettings struct {
	Enabled  bool   `mapstructure:"enabled"`
	Dir      string `mapstructure:"dir"`
	MaxSize  int    `mapstructure:"max_size"`
	MaxFiles int    `mapstructure:"max_files"`
	MaxAge   int    `mapstructure:"max_age"`
	Compress bool   `mapstructure:"compress"`
}

// UISettings holds presentation settings.
type UISettings struct {
	Mouse   bool                       `mapstructure:"mouse"`
	Palette map[string]PaletteSettings `mapstructure:"palette"`
}

// PaletteSettings overrides one theme attribute.
type PaletteSettings struct {
	Fg   string `mapstructure:"fg"`
	Bg   string `mapstructure:"bg"`
	Bold bool   `mapstructure:"bold"`
}

// GetConfigDir returns the directory searched for config.toml.
func GetConfigDir() (string, error) {
	return log.GetConfigDir()
}

func setDefaults(v *viper.Viper) {
	d := log.DefaultLogConfig()
	v.SetDefault("log.enabled", d.LogsEnabled)
	v.SetDefault("log.dir", d.LogsDir)
	v.SetDefault("log.max_size", d.LogMaxSize)
	v.SetDefault("log.max_files", d.LogMaxFiles)
	v.SetDefault("log.max_age", d.LogMaxAge)
	v.SetDefault("log.compress", d.LogCompress)
	v.SetDefault("ui.mouse", true)
}

// LoadConfig reads configuration from path, or from config.toml in the config
// directory when path is empty, then from the environment. Env var overrides use
// prefix STARMUTT_. A missing default file yields the defaults; a missing
// explicit file is an error.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetConfigType(ConfigFileType)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(ConfigFileName)
		if dir, err := GetConfigDir(); err == nil {
			v.AddConfigPath(dir)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	file := ""
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	} else {
		file = v.ConfigFileUsed()
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	c.File = file
	return &c, nil
}

// DefaultConfig returns the configuration used without any file or environment.
func DefaultConfig() *Config {
	d := log.DefaultLogConfig()
	return &Config{
		Log: LogSettings{
			Enabled:  d.LogsEnabled,
			Dir:      d.LogsDir,
			MaxSize:  d.LogMaxSize,
			MaxFiles: d.LogMaxFiles,
			MaxAge:   d.LogMaxAge,
			Compress: d.LogCompress,
		},
		UI: UISettings{Mouse: true},
	}
}

// LogConfig converts the log settings for the log package.
func (c *Config) LogConfig() *log.LogConfig {
	return &log.LogConfig{
		LogsEnabled: c.Log.Enabled,
		LogsDir:     c.Log.Dir,
		LogMaxSize:  c.Log.MaxSize,
		LogMaxFiles: c.Log.MaxFiles,
		LogMaxAge:   c.Log.MaxAge,
		LogCompress: c.Log.Compress,
	}
}

var hexColor = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// validColor accepts what lipgloss understands: an ANSI index or a hex value.
func validColor(c string) bool {
	if c == "" || hexColor.MatchString(c) {
		return true
	}
	n, err := strconv.Atoi(c)
	return err == nil && n >= 0 && n <= 255
}

// Theme builds the widget theme: the default palette with the configured
// entries on top. Entries with an invalid colour are logged and skipped.
func (c *Config) Theme() *ui.Theme {
	palette := make(map[string]ui.PaletteEntry, len(ui.DefaultPalette)+len(c.UI.Palette))
	for attr, entry := range ui.DefaultPalette {
		palette[attr] = entry
	}
	for attr, p := range c.UI.Palette {
		if !validColor(p.Fg) || !validColor(p.Bg) {
			log.WarningLog.Printf("ignoring palette entry %q: invalid colour fg=%q bg=%q", attr, p.Fg, p.Bg)
			continue
		}
		palette[attr] = ui.PaletteEntry{Foreground: p.Fg, Background: p.Bg, Bold: p.Bold}
	}
	return ui.NewTheme(palette)
}

// KeyOverrides returns the configured chords by action.
func (c *Config) KeyOverrides() map[keys.Action]keys.Chord {
	out := make(map[keys.Action]keys.Chord, len(c.Keys))
	for name, chord := range c.Keys {
		// Viper lowercases keys; actions are upper case.
		out[keys.Action(strings.ToUpper(name))] = keys.Chord(chord)
	}
	return out
}

// KeyMap builds the default keymap, applies the configured overrides and checks
// the result for shortcut conflicts.
func (c *Config) KeyMap() (*keys.ActionMap, error) {
	m, err := keys.NewDefaultMap()
	if err != nil {
		return nil, err
	}
	if err := m.Replace(c.KeyOverrides()); err != nil {
		return nil, fmt.Errorf("keys: %w", err)
	}
	if err := m.CheckConflicts(); err != nil {
		return nil, fmt.Errorf("keys: %w", err)
	}
	return m, nil
}

// DefaultConfigPath is where LoadConfig looks when no path is given.
func DefaultConfigPath() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ConfigFileName+"."+ConfigFileType), nil
}
