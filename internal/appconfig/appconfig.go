package appconfig

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"text/template"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v2"
)

// Config holds all configuration details.
type Config struct {
	Host     string         `yaml:"host"`
	BasePath string         `yaml:"basePath"`
	Database DatabaseConfig `yaml:"database"`
}

// DatabaseConfig defines the database connection details.
type DatabaseConfig struct {
	Driver string `yaml:"driver"`
	Source string `yaml:"source"`
}

// LoadConfig loads and parses the configuration from a given file path.
// The file is treated as a template so values like the database source can
// reference environment variables.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		err := errors.New("config file path is required")
		log.Error().Err(err).Msg("config file not provided")
		return nil, err
	}

	tmpl, err := template.ParseFiles(path)
	if err != nil {
		log.Error().Err(err).Msg("error parsing config file template")
		return nil, err
	}

	// Execute the template with the current environment
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, loadEnvVars()); err != nil {
		log.Error().Err(err).Msg("error executing config file template")
		return nil, err
	}

	var config Config
	if err := yaml.Unmarshal(buf.Bytes(), &config); err != nil {
		log.Error().Err(err).Msg("failed to unmarshal config YAML")
		return nil, err
	}

	return &config, nil
}

// loadEnvVars loads environment variables into a map.
func loadEnvVars() map[string]string {
	envVars := make(map[string]string)
	for _, env := range os.Environ() {
		kv := strings.SplitN(env, "=", 2)
		if len(kv) == 2 {
			envVars[kv[0]] = kv[1]
		}
	}
	return envVars
}
