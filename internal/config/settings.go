package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/tartampluch/go-nepalidate/internal/dateformat"
	"github.com/tartampluch/go-nepalidate/internal/locale"
	"gopkg.in/yaml.v3"
)

// Settings is the user facing state shared by the tray app and the CLI.
type Settings struct {
	Language       locale.Language `yaml:"language"`
	FormatType     dateformat.Type `yaml:"format_type"`
	CustomPattern  string          `yaml:"custom_pattern,omitempty"`
	FeedPort       string          `yaml:"feed_port"`
	FeedPastDays   int             `yaml:"feed_past_days"`
	FeedFutureDays int             `yaml:"feed_future_days"`
}

// DefaultSettings returns the first-run settings.
func DefaultSettings() Settings {
	return Settings{
		Language:       locale.Nepali,
		FormatType:     dateformat.Type(DefaultFormatType),
		FeedPort:       DefaultFeedPort,
		FeedPastDays:   DefaultFeedPastDays,
		FeedFutureDays: DefaultFeedFutureDays,
	}
}

// Pattern resolves the token pattern to render with. A Custom type with an
// empty pattern falls back to the default preset.
func (s Settings) Pattern() string {
	if s.FormatType == dateformat.Custom {
		if s.CustomPattern != "" {
			return s.CustomPattern
		}
		return dateformat.Type(DefaultFormatType).Pattern()
	}
	if p := s.FormatType.Pattern(); p != "" {
		return p
	}
	return dateformat.Type(DefaultFormatType).Pattern()
}

// Normalize replaces unknown or out-of-range values with defaults so files
// written by older versions keep working.
func (s *Settings) Normalize() {
	if t, err := dateformat.ParseType(string(s.FormatType)); err == nil {
		s.FormatType = t
	} else {
		s.FormatType = dateformat.Type(DefaultFormatType)
	}
	if ValidatePort(s.FeedPort) != nil {
		s.FeedPort = DefaultFeedPort
	}
	if s.FeedPastDays < 0 {
		s.FeedPastDays = DefaultFeedPastDays
	}
	if s.FeedFutureDays <= 0 {
		s.FeedFutureDays = DefaultFeedFutureDays
	}
	if s.FeedPastDays+s.FeedFutureDays > MaxFeedDays {
		s.FeedPastDays = DefaultFeedPastDays
		s.FeedFutureDays = DefaultFeedFutureDays
	}
}

// ValidatePort checks that port is a usable TCP port number.
func ValidatePort(port string) error {
	if port == "" {
		return errors.New(ErrPortRequired)
	}
	n, err := strconv.Atoi(port)
	if err != nil || n < 1 || n > 65535 {
		return errors.New(ErrPortNumber)
	}
	return nil
}

// DefaultSettingsPath returns <user config dir>/<AppName>/settings.yaml.
func DefaultSettingsPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("%s: %w", ErrConfigDir, err)
	}
	return filepath.Join(dir, AppName, SettingsFileName), nil
}

// LoadSettings reads settings from a YAML file. A missing file is created
// with defaults. If that first write fails, the defaults are returned along
// with the error.
func LoadSettings(path string) (Settings, error) {
	if path == "" {
		return Settings{}, errors.New(ErrSettingsPath)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s := DefaultSettings()
			return s, SaveSettings(path, s)
		}
		return Settings{}, fmt.Errorf("%s: %w", ErrSettingsLoad, err)
	}

	s := DefaultSettings()
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Settings{}, fmt.Errorf("%s: %w", ErrSettingsLoad, err)
	}
	s.Normalize()
	return s, nil
}

// SaveSettings writes s atomically: a temp file in the target directory is
// renamed over path, and the result is owner read/write only.
func SaveSettings(path string, s Settings) error {
	if path == "" {
		return errors.New(ErrSettingsPath)
	}
	s.Normalize()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, DirPermUserRWX); err != nil {
		return fmt.Errorf("%s: %w", ErrCreateDir, err)
	}

	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrSettingsSave, err)
	}

	tmp, err := os.CreateTemp(dir, ".settings-*.tmp")
	if err != nil {
		return fmt.Errorf("%s: %w", ErrSettingsSave, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("%s: %w", ErrSettingsSave, err)
	}
	if err := tmp.Chmod(FilePermUserRW); err != nil {
		tmp.Close()
		return fmt.Errorf("%s: %w", ErrSettingsSave, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%s: %w", ErrSettingsSave, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("%s: %w", ErrSettingsSave, err)
	}
	return nil
}
