// Package config loads configuration for inference consumers from YAML
// files and the environment.
//
// It searches standard locations for a config.yml and a .env file, binds
// environment variables with viper, and unmarshals the result into the
// caller's config struct. The FileSystem interface allows tests to run
// against a fake filesystem.
package config
