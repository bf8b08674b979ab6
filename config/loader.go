package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// FileSystem interface for file operations (useful for testing).
type FileSystem interface {
	Exists(path string) bool
	LoadEnv(path string) error
}

// RealFileSystem implements FileSystem using actual file operations.
type RealFileSystem struct{}

func (rfs *RealFileSystem) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func (rfs *RealFileSystem) LoadEnv(path string) error {
	return godotenv.Load(path)
}

// Resolver handles finding and resolving config and env files.
type Resolver struct {
	FileSystem FileSystem
}

// ResolvedFiles contains the resolved config and env file paths.
type ResolvedFiles struct {
	ConfigFile string
	EnvFile    string
}

// ResolveFiles finds config and env files for a service.
// Returns explicit paths if provided, otherwise searches for them.
func (cr *Resolver) ResolveFiles(serviceName string, opts LoaderConfig) ResolvedFiles {
	resolved := ResolvedFiles{
		ConfigFile: opts.ConfigFile,
		EnvFile:    opts.EnvFile,
	}

	if resolved.ConfigFile == "" {
		resolved.ConfigFile = cr.findConfigFile()
	}
	if resolved.EnvFile == "" {
		resolved.EnvFile = cr.findEnvFile(serviceName)
	}

	return resolved
}

// findConfigFile searches for config.yml in standard locations.
func (cr *Resolver) findConfigFile() string {
	searchPaths := []string{
		"./config/config.yml",
		"../config/config.yml",
		"./config.yml",
	}

	for _, path := range searchPaths {
		if cr.FileSystem.Exists(path) {
			return path
		}
	}
	return ""
}

// findEnvFile searches for .env files in standard locations.
func (cr *Resolver) findEnvFile(serviceName string) string {
	envFiles := []string{
		fmt.Sprintf(".env.%s", serviceName),
		".env",
	}
	searchPaths := []string{"", "config"}

	for _, envFile := range envFiles {
		for _, basePath := range searchPaths {
			fullPath := envFile
			if basePath != "" {
				fullPath = basePath + "/" + envFile
			}
			if cr.FileSystem.Exists(fullPath) {
				return fullPath
			}
		}
	}
	return ""
}

// LoaderConfig holds dependencies and optional file overrides.
type LoaderConfig struct {
	FileSystem FileSystem
	ConfigFile string // Direct config file path (optional)
	EnvFile    string // Direct .env file path (optional)
}

// LoaderOption is a functional option for LoadConfig.
type LoaderOption func(*LoaderConfig)

// WithFileSystem sets a custom filesystem for the loader.
func WithFileSystem(fs FileSystem) LoaderOption {
	return func(lc *LoaderConfig) { lc.FileSystem = fs }
}

// WithConfigFile sets an explicit config file path.
func WithConfigFile(path string) LoaderOption {
	return func(lc *LoaderConfig) { lc.ConfigFile = path }
}

// WithEnvFile sets an explicit .env file path.
func WithEnvFile(path string) LoaderOption {
	return func(lc *LoaderConfig) { lc.EnvFile = path }
}

// LoadConfig loads configuration for a service into the provided cfg struct.
// It searches for config.yml and .env files in standard locations, binds
// environment variables, and unmarshals the result into cfg.
func LoadConfig(serviceName string, cfg interface{}, opts ...LoaderOption) error {
	var lc LoaderConfig
	for _, opt := range opts {
		opt(&lc)
	}
	if lc.FileSystem == nil {
		lc.FileSystem = &RealFileSystem{}
	}

	resolver := &Resolver{FileSystem: lc.FileSystem}
	files := resolver.ResolveFiles(serviceName, lc)

	return loadFromResolvedFiles(serviceName, cfg, files, lc.FileSystem)
}

// loadFromResolvedFiles loads configuration from specific files.
func loadFromResolvedFiles(serviceName string, cfg interface{}, files ResolvedFiles, fs FileSystem) error {
	v := viper.New()

	// YAML config first (base configuration)
	if files.ConfigFile != "" && fs.Exists(files.ConfigFile) {
		v.SetConfigFile(files.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config file %s: %w", files.ConfigFile, err)
		}
	}

	// Environment variables override file values.
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// .env file last so freshly loaded variables are visible to viper.
	if files.EnvFile != "" && fs.Exists(files.EnvFile) {
		if err := fs.LoadEnv(files.EnvFile); err != nil {
			return fmt.Errorf("failed to load .env file %s: %w", files.EnvFile, err)
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return fmt.Errorf("failed to unmarshal config for service %s: %w", serviceName, err)
	}

	return nil
}
