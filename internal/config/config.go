package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up in the data directory.
const FileName = "assetlog.yaml"

// Config represents the top-level assetlog.yaml configuration.
type Config struct {
	Paths   PathsConfig   `yaml:"paths"`
	CSV     CSVConfig     `yaml:"csv"`
	Display DisplayConfig `yaml:"display"`
	Git     GitConfig     `yaml:"git"`
	Log     LogConfig     `yaml:"log"`
}

// PathsConfig locates reference lists and outputs. Relative paths are
// resolved against the data directory.
type PathsConfig struct {
	AccountList string `yaml:"account_list"`
	StockList   string `yaml:"stock_list"`
	OutputDir   string `yaml:"output_dir"`
	EntryLog    string `yaml:"entry_log"` // empty disables the log
}

// CSVConfig controls output files.
type CSVConfig struct {
	HeaderLanguage string `yaml:"header_language"` // "en" or "zh"
}

// DisplayConfig controls how amounts are echoed at the prompt.
type DisplayConfig struct {
	Currency string `yaml:"currency"` // ISO 4217 code
}

// GitConfig controls committing written files.
type GitConfig struct {
	AutoCommit  bool   `yaml:"auto_commit"`
	AuthorName  string `yaml:"author_name"`
	AuthorEmail string `yaml:"author_email"`
}

// LogConfig sets the operator log level.
type LogConfig struct {
	Level string `yaml:"level"`
}

// Load reads an assetlog.yaml file from disk. Fields absent from the file
// keep their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Paths: PathsConfig{
			AccountList: "account_list.txt",
			StockList:   "stock_list.txt",
			OutputDir:   "output",
			EntryLog:    filepath.Join("logs", "entry-log.csv"),
		},
		CSV: CSVConfig{
			HeaderLanguage: "en",
		},
		Display: DisplayConfig{
			Currency: "TWD",
		},
		Git: GitConfig{
			AutoCommit:  false,
			AuthorName:  "assetlog",
			AuthorEmail: "assetlog@localhost",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Resolve returns p joined to dir unless p is empty or absolute.
func Resolve(dir, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(dir, p)
}
