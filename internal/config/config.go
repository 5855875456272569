package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

type Config struct {
	Token     string          `mapstructure:"token"`
	BaseURL   string          `mapstructure:"base_url"`
	Redaction RedactionConfig `mapstructure:"redaction"`
}

type RedactionConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// RepoConfig is read from version-guard.yaml in the repository being linted.
type RepoConfig struct {
	Ignore []string `mapstructure:"ignore"`
}

func Defaults() Config {
	return Config{
		Redaction: RedactionConfig{Enabled: true},
	}
}

func Load(configPath string) (Config, RepoConfig, error) {
	userCfg := Defaults()
	repoCfg := RepoConfig{}

	if err := loadUserConfig(configPath, &userCfg); err != nil {
		return Config{}, RepoConfig{}, err
	}
	if err := loadRepoConfig(&repoCfg); err != nil {
		return Config{}, RepoConfig{}, err
	}

	if userCfg.Token == "" {
		userCfg.Token = os.Getenv("GITHUB_TOKEN")
	}
	if userCfg.BaseURL == "" {
		userCfg.BaseURL = os.Getenv("GITHUB_API_URL")
	}

	return userCfg, repoCfg, nil
}

func loadUserConfig(configPath string, cfg *Config) error {
	path := configPath
	if path == "" {
		path = filepath.Join(os.Getenv("HOME"), ".version-guard", "config.yaml")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read user config: %w", err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to load user config: %w", err)
	}
	if err := v.Unmarshal(cfg); err != nil {
		return fmt.Errorf("failed to parse user config: %w", err)
	}
	return nil
}

func loadRepoConfig(cfg *RepoConfig) error {
	path := filepath.Join(".", "version-guard.yaml")
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read repo config: %w", err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to load repo config: %w", err)
	}
	if err := v.Unmarshal(cfg); err != nil {
		return fmt.Errorf("failed to parse repo config: %w", err)
	}
	return nil
}
