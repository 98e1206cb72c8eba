package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

type ConnectionConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Username string `yaml:"username"`
	Password string `yaml:"password,omitempty"`
	Database string `yaml:"database"`
	SSLMode  string `yaml:"sslmode,omitempty"`
}

// PathsConfig holds the project's default file locations.
type PathsConfig struct {
	DataFile   string `yaml:"data_file,omitempty"`
	SchemaFile string `yaml:"schema_file,omitempty"`
	Output     string `yaml:"output,omitempty"`
	MLOutput   string `yaml:"ml_output,omitempty"`
}

type ProjectConfig struct {
	Connection ConnectionConfig `yaml:"connection"`
	Paths      PathsConfig      `yaml:"paths"`
	Timeout    string           `yaml:"timeout,omitempty"`
}

const ConfigFileName = "pbckit.yaml"

// Load reads pbckit.yaml from the given directory.
func Load(sourcePath string) (*ProjectConfig, error) {
	configPath := filepath.Join(sourcePath, ConfigFileName)
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes the config as pbckit.yaml into the given directory.
func Save(sourcePath string, cfg *ProjectConfig) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(sourcePath, ConfigFileName), data, 0644)
}
