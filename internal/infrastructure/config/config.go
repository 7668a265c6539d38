// Package config handles configuration loading and saving.
package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"gopkg.in/yaml.v3"

	"github.com/tesso57/podplay/internal/application/settings"
	"github.com/tesso57/podplay/internal/domain/subscription"
)

// Store manages persisted application settings.
type Store struct {
	Settings   settings.Settings
	configPath string
}

// Load loads the configuration from the specified path or default location.
func Load(customPath ...string) (*Store, error) {
	var configPath string
	if len(customPath) > 0 && customPath[0] != "" {
		configPath = customPath[0]
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		configPath = filepath.Join(home, ".config", "podplay", "config.yaml")
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0750); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	cfg := settings.Settings{}
	store := &Store{Settings: cfg, configPath: configPath}

	var options []kong.Option

	if _, err := os.Stat(configPath); err == nil {
		options = append(options, kong.Configuration(yamlKongLoader, configPath))
	}

	parser, err := kong.New(&cfg, options...)
	if err != nil {
		return nil, err
	}

	_, err = parser.Parse([]string{})
	if err != nil {
		return nil, err
	}

	store.Settings = cfg
	store.Settings.Subscriptions = subscription.SplitList(store.Settings.Subscriptions)

	// First run: persist the defaults.
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		if err := store.Save(); err != nil {
			return nil, fmt.Errorf("failed to save default config: %w", err)
		}
	}

	return store, nil
}

// Path returns the file the store reads and writes.
func (s *Store) Path() string {
	return s.configPath
}

// yamlKongLoader resolves kong flags from a YAML document. Flag names like
// "http.timeout-seconds" are looked up as the nested key http.timeout_seconds.
func yamlKongLoader(r io.Reader) (kong.Resolver, error) {
	values := map[string]any{}
	if err := yaml.NewDecoder(r).Decode(&values); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, err
	}

	var f kong.ResolverFunc = func(_ *kong.Context, _ *kong.Path, flag *kong.Flag) (any, error) {
		for _, name := range []string{flag.Name, strings.ReplaceAll(flag.Name, "-", "_")} {
			if v, ok := lookupPath(values, name); ok {
				return v, nil
			}
		}
		return nil, nil
	}
	return f, nil
}

func lookupPath(values map[string]any, dotted string) (any, bool) {
	if v, ok := values[dotted]; ok {
		return v, true
	}
	head, rest, nested := strings.Cut(dotted, ".")
	if !nested {
		return nil, false
	}
	child, ok := values[head].(map[string]any)
	if !ok {
		return nil, false
	}
	return lookupPath(child, rest)
}

// List returns the currently subscribed feed URLs.
func (s *Store) List() ([]string, error) {
	feeds := make([]string, len(s.Settings.Subscriptions))
	copy(feeds, s.Settings.Subscriptions)
	return feeds, nil
}

// Add appends a new feed URL and saves the configuration.
func (s *Store) Add(url string) error {
	s.Settings.Subscriptions = append(s.Settings.Subscriptions, url)
	return s.Save()
}

// Remove deletes a subscription by index and saves the configuration.
func (s *Store) Remove(index int) error {
	if index < 0 || index >= len(s.Settings.Subscriptions) {
		return fmt.Errorf("invalid subscription index: %d", index)
	}
	s.Settings.Subscriptions = append(s.Settings.Subscriptions[:index], s.Settings.Subscriptions[index+1:]...)
	return s.Save()
}

// Save writes the current settings to the config file.
func (s *Store) Save() error {
	f, err := os.Create(s.configPath)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	return yaml.NewEncoder(f).Encode(s.Settings)
}
