package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"

	"github.com/kbukum/httpkit/httpclient"
)

func TestServiceConfigApplyDefaults(t *testing.T) {
	cfg := ServiceConfig{Name: "orders", Version: "1.2.0"}
	cfg.ApplyDefaults()

	if cfg.Environment != "development" || !cfg.Debug {
		t.Errorf("expected development with debug, got %q debug=%v", cfg.Environment, cfg.Debug)
	}
	if cfg.HTTP.Name != "orders" {
		t.Errorf("expected http name to follow service name, got %q", cfg.HTTP.Name)
	}
	if cfg.HTTP.Timeout != 10*time.Second || cfg.HTTP.Encoding != "utf-8" {
		t.Errorf("expected adapter defaults, got %+v", cfg.HTTP)
	}
	if cfg.Observability.ServiceName != "orders" || cfg.Observability.ServiceVersion != "1.2.0" {
		t.Errorf("expected telemetry identity, got %+v", cfg.Observability)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected logging defaults, got %+v", cfg.Logging)
	}
}

func TestServiceConfigApplyDefaults_Production(t *testing.T) {
	cfg := ServiceConfig{Name: "svc", Environment: "production", HTTP: httpclient.Config{Name: "upstream"}}
	cfg.ApplyDefaults()
	if cfg.Debug {
		t.Error("expected debug=false for production")
	}
	if cfg.HTTP.Name != "upstream" {
		t.Errorf("explicit http name should be kept, got %q", cfg.HTTP.Name)
	}
	if cfg.Observability.Environment != "production" {
		t.Errorf("expected telemetry environment production, got %q", cfg.Observability.Environment)
	}
}

func TestServiceConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*ServiceConfig)
		wantErr string
	}{
		{"valid", func(*ServiceConfig) {}, ""},
		{"missing name", func(c *ServiceConfig) { c.Name = "" }, "config.name is required"},
		{"invalid environment", func(c *ServiceConfig) { c.Environment = "qa" }, "config.environment must be one of"},
		{"invalid logging", func(c *ServiceConfig) { c.Logging.Level = "loud" }, "config.logging"},
		{"invalid encoding", func(c *ServiceConfig) { c.HTTP.Encoding = "klingon" }, "config.http"},
		{"invalid sample rate", func(c *ServiceConfig) { c.Observability.SampleRate = 2 }, "config.observability"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := ServiceConfig{Name: "svc"}
			cfg.ApplyDefaults()
			tc.mutate(&cfg)

			err := cfg.Validate()
			if tc.wantErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("expected error containing %q, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestLoadConfigWithYAML(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yml")

	yamlContent := `
name: test-service
environment: staging
version: "1.0.0"
logging:
  level: debug
  format: json
http:
  base_url: http://example.com/api
  timeout: 3s
  encoding: gbk
  headers:
    Accept: application/json
  auth:
    type: bearer
    token: secret
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	var cfg ServiceConfig
	if err := LoadConfig("test-service", &cfg, WithConfigFile(configPath)); err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Name != "test-service" || cfg.Environment != "staging" {
		t.Errorf("unexpected identity %q %q", cfg.Name, cfg.Environment)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.Format != "json" {
		t.Errorf("unexpected logging %+v", cfg.Logging)
	}
	if cfg.HTTP.BaseURL != "http://example.com/api" || cfg.HTTP.Timeout != 3*time.Second || cfg.HTTP.Encoding != "gbk" {
		t.Errorf("unexpected http %+v", cfg.HTTP)
	}
	if cfg.HTTP.Auth == nil || cfg.HTTP.Auth.Token != "secret" {
		t.Errorf("expected bearer auth, got %+v", cfg.HTTP.Auth)
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		t.Errorf("loaded config should validate: %v", err)
	}
}

func TestLoadConfigEnvOverride(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yml")
	if err := os.WriteFile(configPath, []byte("name: svc\nhttp:\n  timeout: 3s\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("HTTPKIT_HTTP_TIMEOUT", "7s")
	t.Setenv("HTTPKIT_LOGGING_LEVEL", "debug")

	var cfg ServiceConfig
	if err := LoadConfig("httpkit", &cfg, WithConfigFile(configPath)); err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.HTTP.Timeout != 7*time.Second {
		t.Errorf("expected env override 7s, got %v", cfg.HTTP.Timeout)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected logging level from env, got %q", cfg.Logging.Level)
	}
}

func TestLoadConfigIgnoresUnprefixedEnv(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(configPath, []byte("name: svc\nenvironment: staging\nhttp:\n  timeout: 3s\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("ENVIRONMENT", "prod")
	t.Setenv("NAME", "other")
	t.Setenv("HTTP_TIMEOUT", "not-a-duration")

	var cfg ServiceConfig
	if err := LoadConfig("httpkit", &cfg, WithConfigFile(configPath)); err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Name != "svc" || cfg.Environment != "staging" || cfg.HTTP.Timeout != 3*time.Second {
		t.Errorf("unprefixed variables leaked into config: %+v", cfg)
	}
}

func TestEnvPrefix(t *testing.T) {
	if got := EnvPrefix("httpkit"); got != "HTTPKIT_" {
		t.Errorf("EnvPrefix(httpkit) = %q", got)
	}
	if got := EnvPrefix("my-tool"); got != "MY_TOOL_" {
		t.Errorf("EnvPrefix(my-tool) = %q", got)
	}
}

func TestLoadConfigEnvFile(t *testing.T) {
	dir := t.TempDir()
	envPath := filepath.Join(dir, ".env")
	if err := os.WriteFile(envPath, []byte("HTTPKIT_TEST_REFERER=http://ref\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Unsetenv("HTTPKIT_TEST_REFERER") })

	type withReferer struct {
		ServiceConfig `yaml:",inline" mapstructure:",squash"`
		Referer       string `mapstructure:"test_referer"`
	}

	var cfg withReferer
	if err := LoadConfig("httpkit", &cfg, WithConfigFile("/nonexistent/path.yml"), WithEnvFile(envPath)); err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Referer != "http://ref" {
		t.Errorf("expected value from .env, got %q", cfg.Referer)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	var cfg ServiceConfig
	if err := LoadConfig("nonexistent-service", &cfg, WithConfigFile("/nonexistent/path.yml")); err != nil {
		t.Fatalf("expected LoadConfig to succeed with missing file, got %v", err)
	}
}

func TestLoadConfigMalformedFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(configPath, []byte("name: [unterminated"), 0o644); err != nil {
		t.Fatal(err)
	}
	var cfg ServiceConfig
	if err := LoadConfig("svc", &cfg, WithConfigFile(configPath)); err == nil {
		t.Fatal("expected error for malformed config")
	}
}

func TestResolverWithMockFS(t *testing.T) {
	tests := []struct {
		name       string
		files      map[string]bool
		wantConfig string
		wantEnv    string
	}{
		{"working dir", map[string]bool{"./httpkit.yml": true}, "./httpkit.yml", ""},
		{"yaml extension", map[string]bool{"./httpkit.yaml": true}, "./httpkit.yaml", ""},
		{"user config dir", map[string]bool{"/home/u/.config/httpkit/config.yml": true}, "/home/u/.config/httpkit/config.yml", ""},
		{"working dir wins", map[string]bool{"./httpkit.yml": true, "/home/u/.config/httpkit/config.yml": true}, "./httpkit.yml", ""},
		{"named env file", map[string]bool{"./.env.httpkit": true, "./.env": true}, "", "./.env.httpkit"},
		{"plain env file", map[string]bool{"./.env": true}, "", "./.env"},
		{"monorepo layout ignored", map[string]bool{"./cmd/httpkit/config.yml": true}, "", ""},
		{"nothing", map[string]bool{}, "", ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			resolver := &Resolver{FileSystem: &mockFS{files: tc.files, configDir: "/home/u/.config"}}
			files := resolver.ResolveFiles("httpkit", LoaderConfig{})
			if files.ConfigFile != tc.wantConfig {
				t.Errorf("config file = %q, want %q", files.ConfigFile, tc.wantConfig)
			}
			if files.EnvFile != tc.wantEnv {
				t.Errorf("env file = %q, want %q", files.EnvFile, tc.wantEnv)
			}
		})
	}
}

func TestResolverExplicitPaths(t *testing.T) {
	resolver := &Resolver{FileSystem: &mockFS{files: map[string]bool{"./config.yml": true}}}
	files := resolver.ResolveFiles("svc", LoaderConfig{ConfigFile: "a.yml", EnvFile: "b.env"})
	if files.ConfigFile != "a.yml" || files.EnvFile != "b.env" {
		t.Errorf("explicit paths should win, got %+v", files)
	}
}

type mockFS struct {
	files     map[string]bool
	configDir string
}

func (m *mockFS) Exists(path string) bool        { return m.files[path] }
func (m *mockFS) LoadEnv(path string) error      { return nil }
func (m *mockFS) UserConfigDir() (string, error) { return m.configDir, nil }

func TestLoaderOptions(t *testing.T) {
	var lc LoaderConfig
	fs := &mockFS{}
	WithFileSystem(fs)(&lc)
	WithConfigFile("/path/to/config.yml")(&lc)
	WithEnvFile("/path/to/.env")(&lc)
	WithEnvPrefix("APP_")(&lc)

	if lc.FileSystem != fs || lc.ConfigFile != "/path/to/config.yml" || lc.EnvFile != "/path/to/.env" || lc.EnvPrefix != "APP_" {
		t.Errorf("unexpected loader config %+v", lc)
	}
}

func TestGenerateEnvKeyVariants(t *testing.T) {
	variants := generateEnvKeyVariants("HTTP_BASE_URL")
	want := map[string]bool{"http_base_url": false, "http.base.url": false, "http.base_url": false}
	for _, v := range variants {
		if _, ok := want[v]; ok {
			want[v] = true
		}
	}
	for k, seen := range want {
		if !seen {
			t.Errorf("expected variant %q in %v", k, variants)
		}
	}
	if got := generateEnvKeyVariants("NAME"); len(got) != 1 || got[0] != "name" {
		t.Errorf("single segment should map to itself, got %v", got)
	}
}

func TestBindPrefixedEnv(t *testing.T) {
	v := viper.New()
	bindPrefixedEnv(v, "HTTPKIT_", []string{
		"HTTPKIT_HTTP_ENCODING=gbk",
		"HTTPKIT_=ignored",
		"HTTP_ENCODING=utf-8",
		"PATH=/usr/bin",
	})
	if got := v.GetString("http.encoding"); got != "gbk" {
		t.Errorf("http.encoding = %q, want gbk", got)
	}
	if v.IsSet("path") {
		t.Error("unprefixed variable should not be bound")
	}
}
