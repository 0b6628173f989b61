package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// validEnv sets the minimum required env vars for a valid config.
func validEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DATABASE_DSN", "postgres://u:p@localhost:5432/testdb")
	t.Setenv("AUTH_JWT_SECRET", "this-is-a-very-long-jwt-secret-for-testing-32+")
	t.Setenv("GENERATOR_API_KEY", "sk-test")
}

func writeYAML(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write yaml: %v", err)
	}
	return path
}

const validYAML = `
server:
  host: "127.0.0.1"
  port: 9090
  read_timeout: "5s"

database:
  dsn: "postgres://u:p@localhost:5432/testdb"
  max_conns: 10

redis:
  addr: "redis:6379"
  db: 2

auth:
  jwt_secret: "this-is-a-very-long-jwt-secret-for-testing-32+"
  bcrypt_cost: 4

generator:
  provider: "anthropic"
  api_key: "sk-ant"
  model: "claude-3-5-haiku-latest"
  timeout: "15s"

draft:
  ttl: "10m"

gate:
  landing_path: "/api/assist"

log:
  level: "debug"
  format: "text"
`

// validConfig returns a Config that passes Validate.
func validConfig() *Config {
	return &Config{
		Auth: AuthConfig{
			JWTSecret:  "this-is-a-very-long-jwt-secret-for-testing-32+",
			BcryptCost: 10,
		},
		Generator: GeneratorConfig{
			Provider:  ProviderOpenAI,
			APIKey:    "sk-test",
			Model:     "gpt-3.5-turbo",
			MaxTokens: 512,
			Timeout:   30 * time.Second,
		},
		Draft: DraftConfig{TTL: 30 * time.Minute},
		Gate: GateConfig{
			LoginPath:        "/login",
			LandingPath:      "/api/assist",
			AdminLandingPath: "/api/admin",
		},
		RateLimit: RateLimitConfig{DraftPerMinute: 10, AuthPerMinute: 20},
	}
}

func TestLoad_ValidYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeYAML(t, dir, validYAML)
	t.Setenv("CONFIG_PATH", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Addr() != "127.0.0.1:9090" {
		t.Errorf("server addr = %q, want %q", cfg.Server.Addr(), "127.0.0.1:9090")
	}
	if cfg.Server.ReadTimeout != 5*time.Second {
		t.Errorf("server.read_timeout = %v, want %v", cfg.Server.ReadTimeout, 5*time.Second)
	}
	if cfg.Database.MaxConns != 10 {
		t.Errorf("database.max_conns = %d, want 10", cfg.Database.MaxConns)
	}
	if cfg.Redis.Addr != "redis:6379" || cfg.Redis.DB != 2 {
		t.Errorf("redis = %+v", cfg.Redis)
	}
	if cfg.Auth.BcryptCost != 4 {
		t.Errorf("auth.bcrypt_cost = %d, want 4", cfg.Auth.BcryptCost)
	}
	if cfg.Generator.Provider != ProviderAnthropic {
		t.Errorf("generator.provider = %q", cfg.Generator.Provider)
	}
	if cfg.Generator.Timeout != 15*time.Second {
		t.Errorf("generator.timeout = %v, want 15s", cfg.Generator.Timeout)
	}
	if cfg.Draft.TTL != 10*time.Minute {
		t.Errorf("draft.ttl = %v, want 10m", cfg.Draft.TTL)
	}
	// Defaults fill what the file leaves out.
	if cfg.Gate.LoginPath != "/api/auth/login" {
		t.Errorf("gate.login_path = %q, want /api/auth/login", cfg.Gate.LoginPath)
	}
	if cfg.RateLimit.DraftPerMinute != 10 {
		t.Errorf("rate_limit.draft_per_minute = %d, want 10", cfg.RateLimit.DraftPerMinute)
	}
	if cfg.Log.Format != "text" {
		t.Errorf("log.format = %q, want text", cfg.Log.Format)
	}
}

func TestLoad_ENVOverridesYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeYAML(t, dir, validYAML)
	t.Setenv("CONFIG_PATH", path)
	t.Setenv("SERVER_PORT", "3000")
	t.Setenv("DRAFT_TTL", "5m")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != 3000 {
		t.Errorf("server.port = %d, want 3000 (ENV override)", cfg.Server.Port)
	}
	if cfg.Draft.TTL != 5*time.Minute {
		t.Errorf("draft.ttl = %v, want 5m (ENV override)", cfg.Draft.TTL)
	}
}

func TestLoad_NoFile_ENVOnly(t *testing.T) {
	validEnv(t)
	t.Setenv("CONFIG_PATH", "")

	origDir, _ := os.Getwd()
	t.Cleanup(func() { _ = os.Chdir(origDir) })
	_ = os.Chdir(t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("server.port = %d, want 8080 (default)", cfg.Server.Port)
	}
	if cfg.Generator.Model != "gpt-3.5-turbo" {
		t.Errorf("generator.model = %q, want default", cfg.Generator.Model)
	}
}

func TestLoad_ExplicitPathNotFound(t *testing.T) {
	t.Setenv("CONFIG_PATH", "/nonexistent/config.yaml")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for missing explicit config path")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeYAML(t, dir, `{{{invalid yaml`)
	t.Setenv("CONFIG_PATH", path)

	if _, err := Load(); err == nil {
		t.Fatal("expected error for invalid YAML")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{name: "valid", mutate: func(c *Config) {}},
		{name: "short jwt secret", mutate: func(c *Config) { c.Auth.JWTSecret = "short" }, wantErr: true},
		{name: "bcrypt cost too low", mutate: func(c *Config) { c.Auth.BcryptCost = 2 }, wantErr: true},
		{name: "bcrypt cost too high", mutate: func(c *Config) { c.Auth.BcryptCost = 32 }, wantErr: true},
		{name: "unknown provider", mutate: func(c *Config) { c.Generator.Provider = "bard" }, wantErr: true},
		{name: "missing api key", mutate: func(c *Config) { c.Generator.APIKey = "" }, wantErr: true},
		{name: "zero timeout", mutate: func(c *Config) { c.Generator.Timeout = 0 }, wantErr: true},
		{name: "zero max tokens", mutate: func(c *Config) { c.Generator.MaxTokens = 0 }, wantErr: true},
		{
			name: "disabled provider needs no key",
			mutate: func(c *Config) {
				c.Generator.Provider = "Disabled"
				c.Generator.APIKey = ""
				c.Generator.Timeout = 0
			},
		},
		{name: "zero draft ttl", mutate: func(c *Config) { c.Draft.TTL = 0 }, wantErr: true},
		{name: "relative landing path", mutate: func(c *Config) { c.Gate.LandingPath = "assist" }, wantErr: true},
		{name: "zero draft rate", mutate: func(c *Config) { c.RateLimit.DraftPerMinute = 0 }, wantErr: true},
		{name: "zero auth rate", mutate: func(c *Config) { c.RateLimit.AuthPerMinute = 0 }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr && err == nil {
				t.Fatal("expected error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestValidate_NormalizesProvider(t *testing.T) {
	cfg := validConfig()
	cfg.Generator.Provider = " OpenAI "

	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Generator.Provider != ProviderOpenAI {
		t.Errorf("provider = %q, want %q", cfg.Generator.Provider, ProviderOpenAI)
	}
	if !cfg.Generator.Enabled() {
		t.Error("openai generator should be enabled")
	}
}
