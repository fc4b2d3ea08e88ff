package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// ErrInvalid wraps every validation failure returned by Validate.
var ErrInvalid = errors.New("invalid config")

// Config holds application configuration.
type Config struct {
	Gesture   GestureConfig
	Animation AnimationConfig
	Panel     PanelConfig
	Theme     ThemeConfig
	Log       LogConfig
}

// GestureConfig decides which presses reach the gesture machine.
type GestureConfig struct {
	// Claim is "thumbnail" (press must land on the thumbnail) or "anywhere".
	Claim string
}

// AnimationConfig holds show/hide timings.
type AnimationConfig struct {
	FPS             int
	CloseMS         int     `mapstructure:"close_ms"`
	SpringFrequency float64 `mapstructure:"spring_frequency"`
	SpringDamping   float64 `mapstructure:"spring_damping"`
}

// PanelConfig holds popup card settings.
type PanelConfig struct {
	Author    string
	WidthPct  int `mapstructure:"width_pct"`
	HeightPct int `mapstructure:"height_pct"`
}

// ThemeConfig holds colours. Backdrop "auto" asks the terminal.
type ThemeConfig struct {
	Backdrop string
	Card     string
	Text     string
	Accent   string
}

// LogConfig holds the debug log destination; empty disables logging.
type LogConfig struct {
	Path string
}

const (
	ClaimThumbnail = "thumbnail"
	ClaimAnywhere  = "anywhere"
)

func defaults(v *viper.Viper) {
	v.SetDefault("gesture.claim", ClaimThumbnail)
	v.SetDefault("animation.fps", 60)
	v.SetDefault("animation.close_ms", 200)
	v.SetDefault("animation.spring_frequency", 7.0)
	v.SetDefault("animation.spring_damping", 0.4)
	v.SetDefault("panel.author", "Jason Brown")
	v.SetDefault("panel.width_pct", 90)
	v.SetDefault("panel.height_pct", 60)
	v.SetDefault("theme.backdrop", "auto")
	v.SetDefault("theme.card", "#ffffff")
	v.SetDefault("theme.text", "#1e1e2e")
	v.SetDefault("theme.accent", "#d20f39")
	v.SetDefault("log.path", "")
}

// Load reads configuration from file and env. Env var overrides use prefix HOLDMENU_.
func Load() (Config, error) {
	v := viper.New()
	defaults(v)

	v.SetConfigType("toml")

	cfgPath := os.Getenv("HOLDMENU_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "holdmenu"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("HOLDMENU")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// a missing default config file is fine, a broken or missing explicit one is not
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgPath != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	c.Gesture.Claim = strings.ToLower(strings.TrimSpace(c.Gesture.Claim))
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c Config) Validate() error {
	switch c.Gesture.Claim {
	case ClaimThumbnail, ClaimAnywhere:
	default:
		return fmt.Errorf("%w: gesture.claim %q", ErrInvalid, c.Gesture.Claim)
	}
	if c.Animation.FPS <= 0 || c.Animation.FPS > 240 {
		return fmt.Errorf("%w: animation.fps %d out of range", ErrInvalid, c.Animation.FPS)
	}
	if c.Animation.CloseMS < 0 {
		return fmt.Errorf("%w: animation.close_ms %d", ErrInvalid, c.Animation.CloseMS)
	}
	if c.Animation.SpringFrequency <= 0 || c.Animation.SpringDamping <= 0 {
		return fmt.Errorf("%w: spring frequency and damping must be positive", ErrInvalid)
	}
	for name, pct := range map[string]int{"panel.width_pct": c.Panel.WidthPct, "panel.height_pct": c.Panel.HeightPct} {
		if pct <= 0 || pct > 100 {
			return fmt.Errorf("%w: %s %d", ErrInvalid, name, pct)
		}
	}
	return nil
}

// CloseDuration is the hide animation length.
func (a AnimationConfig) CloseDuration() time.Duration {
	return time.Duration(a.CloseMS) * time.Millisecond
}
