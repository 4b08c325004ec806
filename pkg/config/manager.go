package config

import (
	"fmt"

	"github.com/lerenn/sur/pkg/fs"
	"github.com/lerenn/sur/pkg/logger"
	"gopkg.in/yaml.v3"
)

//go:generate mockgen -source=manager.go -destination=mocks/manager.gen.go -package=mocks

// Manager interface provides configuration management functionality with an embedded config path.
type Manager interface {
	// GetConfig loads and validates the configuration file.
	GetConfig() (Config, error)
	// GetConfigWithFallback loads the configuration, falling back to default on any failure.
	GetConfigWithFallback() (Config, error)
	// GetConfigPath returns the configuration file path.
	GetConfigPath() string
	// DefaultConfig returns the configuration used when no file can be loaded.
	DefaultConfig() Config
}

// NewManagerParams contains parameters for creating a new Manager instance.
type NewManagerParams struct {
	FS         fs.FS
	Logger     logger.Logger
	ConfigPath string
}

// realManager manages configuration with an embedded config path.
type realManager struct {
	fs         fs.FS
	logger     logger.Logger
	configPath string
}

// NewManager creates a new Manager instance.
func NewManager(params NewManagerParams) Manager {
	if params.FS == nil {
		params.FS = fs.NewFS()
	}
	if params.Logger == nil {
		params.Logger = logger.NewNoopLogger()
	}

	return &realManager{
		fs:         params.FS,
		logger:     params.Logger,
		configPath: params.ConfigPath,
	}
}

// GetConfig loads configuration from the embedded config path.
func (c *realManager) GetConfig() (Config, error) {
	// Check if config file exists
	exists, err := c.fs.Exists(c.configPath)
	if err != nil {
		return Config{}, fmt.Errorf("failed to check config file: %w", err)
	}
	if !exists {
		return Config{}, fmt.Errorf("%w: %s", ErrConfigNotFound, c.configPath)
	}

	// Read config file
	data, err := c.fs.ReadFile(c.configPath)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}

	// Parse YAML
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrConfigFileParse, err)
	}

	// Validate configuration
	if err := config.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// GetConfigWithFallback loads the configuration from the embedded config path, falling back to default
// if it is missing or malformed.
func (c *realManager) GetConfigWithFallback() (Config, error) {
	config, err := c.GetConfig()
	if err == nil {
		c.logger.Logf("Loaded configuration from %s", c.configPath)
		return config, nil
	}

	c.logger.Logf("Using default configuration: %v", err)
	return c.DefaultConfig(), nil
}

// GetConfigPath returns the configuration file path.
func (c *realManager) GetConfigPath() string {
	return c.configPath
}

// DefaultConfig returns the default configuration: no exclusions, all kinds.
func (c *realManager) DefaultConfig() Config {
	return Config{}
}
