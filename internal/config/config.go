package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"wishgallery/internal/lang"
)

// DefaultPath is where the gallery looks for its configuration file.
const DefaultPath = ".wish/config.yaml"

// DefaultAudioTrack is "Jingle Bells" by Kevin MacLeod (incompetech.com),
// streamed from Wikimedia Commons.
const DefaultAudioTrack = "https://upload.wikimedia.org/wikipedia/commons/e/e0/Jingle_Bells_by_Kevin_MacLeod.ogg"

// Config holds all wish gallery configuration.
type Config struct {
	Gemini  GeminiConfig  `yaml:"gemini"`
	Session SessionConfig `yaml:"session"`
	Audio   AudioConfig   `yaml:"audio"`
	Logging LoggingConfig `yaml:"logging"`
}

// SessionConfig configures the lifecycle controller.
type SessionConfig struct {
	// Initial display language: en or zh (any BCP-47 tag with those bases).
	Language string `yaml:"language"`

	// Minimum time between a response arriving and the gifts being shown.
	RevealDelay string `yaml:"reveal_delay"`
}

// AudioConfig configures the ambient track.
type AudioConfig struct {
	Enabled bool     `yaml:"enabled"`
	Track   string   `yaml:"track"`   // local file or http(s) URL
	Command []string `yaml:"command"` // player argv; the track is appended
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Gemini: GeminiConfig{
			Model: DefaultModel,
		},
		Session: SessionConfig{
			Language:    string(lang.Primary),
			RevealDelay: "1500ms",
		},
		Audio: AudioConfig{
			Enabled: true,
			Track:   DefaultAudioTrack,
			Command: []string{"ffplay", "-nodisp", "-loglevel", "quiet", "-loop", "0"},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load loads configuration from a YAML file. A missing file yields the
// defaults. Environment overrides (including a .env file in the working
// directory) are applied last.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	loadDotEnv()
	cfg.applyEnvOverrides()

	return cfg, nil
}

// loadDotEnv reads .env into the process environment without overriding
// variables that are already set.
func loadDotEnv() {
	if _, err := os.Stat(".env"); err != nil {
		return
	}
	_ = godotenv.Load()
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	// API key, lowest priority first
	for _, name := range []string{"API_KEY", "GOOGLE_API_KEY", "GEMINI_API_KEY"} {
		if key := os.Getenv(name); key != "" {
			c.Gemini.APIKey = key
		}
	}
	if model := os.Getenv("WISH_MODEL"); model != "" {
		c.Gemini.Model = model
	}
	if l := os.Getenv("WISH_LANGUAGE"); l != "" {
		c.Session.Language = l
	}
	if track := os.Getenv("WISH_AUDIO_TRACK"); track != "" {
		c.Audio.Track = track
	}
}

// GetRevealDelay returns the reveal delay as a duration.
func (c *Config) GetRevealDelay() time.Duration {
	d, err := time.ParseDuration(c.Session.RevealDelay)
	if err != nil || d < 0 {
		return 1500 * time.Millisecond
	}
	return d
}

// GetLanguage returns the configured initial display language, or Primary
// when the setting is empty or unsupported.
func (c *Config) GetLanguage() lang.Language {
	l, err := lang.Parse(c.Session.Language)
	if err != nil {
		return lang.Primary
	}
	return l
}

// Validate checks the configuration for values that cannot work.
func (c *Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.Gemini.Model) == "" {
		errs = append(errs, errors.New("gemini.model is required"))
	}
	if c.Session.Language != "" {
		if _, err := lang.Parse(c.Session.Language); err != nil {
			errs = append(errs, fmt.Errorf("session.language: %w", err))
		}
	}
	if c.Session.RevealDelay != "" {
		if d, err := time.ParseDuration(c.Session.RevealDelay); err != nil {
			errs = append(errs, fmt.Errorf("session.reveal_delay: %w", err))
		} else if d < 0 {
			errs = append(errs, errors.New("session.reveal_delay must not be negative"))
		}
	}
	if c.Audio.Enabled && c.Audio.Track != "" && len(c.Audio.Command) == 0 {
		errs = append(errs, errors.New("audio.command is required when a track is set"))
	}
	if err := c.Logging.validate(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
