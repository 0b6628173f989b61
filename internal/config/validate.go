package config

import (
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.BcryptCost < bcrypt.MinCost || c.Auth.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("auth.bcrypt_cost must be within [%d, %d] (got %d)", bcrypt.MinCost, bcrypt.MaxCost, c.Auth.BcryptCost)
	}

	if err := c.Generator.validate(); err != nil {
		return fmt.Errorf("generator: %w", err)
	}

	if c.Draft.TTL <= 0 {
		return fmt.Errorf("draft.ttl must be > 0 (got %v)", c.Draft.TTL)
	}

	for name, p := range map[string]string{
		"gate.login_path":         c.Gate.LoginPath,
		"gate.landing_path":       c.Gate.LandingPath,
		"gate.admin_landing_path": c.Gate.AdminLandingPath,
	} {
		if !strings.HasPrefix(p, "/") {
			return fmt.Errorf("%s must start with / (got %q)", name, p)
		}
	}

	if c.RateLimit.DraftPerMinute <= 0 {
		return fmt.Errorf("rate_limit.draft_per_minute must be > 0 (got %d)", c.RateLimit.DraftPerMinute)
	}
	if c.RateLimit.AuthPerMinute <= 0 {
		return fmt.Errorf("rate_limit.auth_per_minute must be > 0 (got %d)", c.RateLimit.AuthPerMinute)
	}

	return nil
}

// Enabled reports whether a real generator backend is configured.
func (g GeneratorConfig) Enabled() bool {
	return g.Provider != ProviderDisabled
}

func (g *GeneratorConfig) validate() error {
	g.Provider = strings.ToLower(strings.TrimSpace(g.Provider))

	switch g.Provider {
	case ProviderOpenAI, ProviderAnthropic:
		if g.APIKey == "" {
			return fmt.Errorf("api_key is required for provider %q", g.Provider)
		}
	case ProviderDisabled:
		return nil
	default:
		return fmt.Errorf("unknown provider %q", g.Provider)
	}

	if g.Model == "" {
		return fmt.Errorf("model is required")
	}
	if g.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0 (got %v)", g.Timeout)
	}
	if g.MaxTokens <= 0 {
		return fmt.Errorf("max_tokens must be > 0 (got %d)", g.MaxTokens)
	}
	return nil
}
