package config

import (
	"os"
	"path/filepath"
	"testing"
)

// fakeFileSystem is a FileSystem backed by an in-memory set of paths.
type fakeFileSystem struct {
	files      map[string]bool
	loadedEnvs []string
}

func (f *fakeFileSystem) Exists(path string) bool { return f.files[path] }
func (f *fakeFileSystem) LoadEnv(path string) error {
	f.loadedEnvs = append(f.loadedEnvs, path)
	return nil
}

func TestResolveFiles_ExplicitPathsWin(t *testing.T) {
	fs := &fakeFileSystem{files: map[string]bool{"./config.yml": true, ".env": true}}
	r := &Resolver{FileSystem: fs}

	files := r.ResolveFiles("inferkit", LoaderConfig{
		ConfigFile: "custom.yml",
		EnvFile:    "custom.env",
	})
	if files.ConfigFile != "custom.yml" {
		t.Errorf("expected explicit config file, got %q", files.ConfigFile)
	}
	if files.EnvFile != "custom.env" {
		t.Errorf("expected explicit env file, got %q", files.EnvFile)
	}
}

func TestResolveFiles_SearchOrder(t *testing.T) {
	fs := &fakeFileSystem{files: map[string]bool{
		"./config.yml":  true,
		".env.inferkit": true,
		".env":          true,
	}}
	r := &Resolver{FileSystem: fs}

	files := r.ResolveFiles("inferkit", LoaderConfig{})
	if files.ConfigFile != "./config.yml" {
		t.Errorf("expected ./config.yml, got %q", files.ConfigFile)
	}
	// Service-specific .env has priority over plain .env.
	if files.EnvFile != ".env.inferkit" {
		t.Errorf("expected .env.inferkit, got %q", files.EnvFile)
	}
}

func TestResolveFiles_NothingFound(t *testing.T) {
	fs := &fakeFileSystem{files: map[string]bool{}}
	r := &Resolver{FileSystem: fs}

	files := r.ResolveFiles("inferkit", LoaderConfig{})
	if files.ConfigFile != "" || files.EnvFile != "" {
		t.Errorf("expected empty resolution, got %+v", files)
	}
}

func TestLoadConfig_FromYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	yaml := "name: test-adapter\nmodel_type: coding\ntemperature: 0.3\nmax_tokens: 512\n"
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatal(err)
	}

	var cfg struct {
		Name        string  `mapstructure:"name"`
		ModelType   string  `mapstructure:"model_type"`
		Temperature float64 `mapstructure:"temperature"`
		MaxTokens   int     `mapstructure:"max_tokens"`
	}

	err := LoadConfig("inferkit", &cfg, WithConfigFile(path))
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Name != "test-adapter" {
		t.Errorf("expected name 'test-adapter', got %q", cfg.Name)
	}
	if cfg.ModelType != "coding" {
		t.Errorf("expected model_type 'coding', got %q", cfg.ModelType)
	}
	if cfg.Temperature != 0.3 {
		t.Errorf("expected temperature 0.3, got %v", cfg.Temperature)
	}
	if cfg.MaxTokens != 512 {
		t.Errorf("expected max_tokens 512, got %d", cfg.MaxTokens)
	}
}

func TestLoadConfig_MissingFilesIsNotAnError(t *testing.T) {
	var cfg struct {
		Name string `mapstructure:"name"`
	}
	fs := &fakeFileSystem{files: map[string]bool{}}
	if err := LoadConfig("inferkit", &cfg, WithFileSystem(fs)); err != nil {
		t.Errorf("expected no error with no files, got %v", err)
	}
}

func TestLoadConfig_LoadsEnvFile(t *testing.T) {
	fs := &fakeFileSystem{files: map[string]bool{".env": true}}
	var cfg struct{}
	if err := LoadConfig("inferkit", &cfg, WithFileSystem(fs)); err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if len(fs.loadedEnvs) != 1 || fs.loadedEnvs[0] != ".env" {
		t.Errorf("expected .env loaded, got %v", fs.loadedEnvs)
	}
}
