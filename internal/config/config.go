/*
* Loads the list of repositories and authors to display.
 */
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

var ErrInvalidConfig = errors.New("invalid configuration")

const envPrefix = "GIT_ACTIVITY"

const (
	keyRepositories = "repositories"
	keyAuthors      = "authors"
)

var defaultRepositories = []string{"./"}

type Config struct {
	Repositories []string
	Authors      []string
}

// Reads the YAML config file at path. A missing file is not an error; the
// defaults are used instead. Environment variables GIT_ACTIVITY_REPOSITORIES
// and GIT_ACTIVITY_AUTHORS (space separated) take precedence over the file.
func Load(path string) (_ Config, err error) {
	defer func() {
		if err != nil {
			err = fmt.Errorf("error loading config: %w", err)
		}
	}()

	v := viper.New()
	v.SetDefault(keyRepositories, defaultRepositories)
	v.SetDefault(keyAuthors, []string{})
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if path != "" {
		_, err := os.Stat(path)
		switch {
		case err == nil:
			v.SetConfigFile(path)
			v.SetConfigType("yaml")
			if err := v.ReadInConfig(); err != nil {
				return Config{}, fmt.Errorf("failed to read %s: %w", path, err)
			}
			logger().Debug("read config file", "path", path)
		case errors.Is(err, os.ErrNotExist):
			logger().Debug("no config file, using defaults", "path", path)
		default:
			return Config{}, fmt.Errorf("failed to stat %s: %w", path, err)
		}
	}

	cfg := Config{
		Repositories: v.GetStringSlice(keyRepositories),
		Authors:      v.GetStringSlice(keyAuthors),
	}

	// An empty list in the file means "use the default".
	if len(cfg.Repositories) == 0 {
		cfg.Repositories = defaultRepositories
	}

	if cfg.Authors == nil {
		cfg.Authors = []string{}
	}

	if err := validate(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func validate(cfg Config) error {
	for _, repo := range cfg.Repositories {
		if strings.TrimSpace(repo) == "" {
			return fmt.Errorf("%w: blank repository entry", ErrInvalidConfig)
		}
	}

	for _, author := range cfg.Authors {
		if strings.TrimSpace(author) == "" {
			return fmt.Errorf("%w: blank author entry", ErrInvalidConfig)
		}
	}

	return nil
}
