package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	if c.Database.LockTimeout < 0 {
		return fmt.Errorf("database.lock_timeout must be >= 0 (got %s)", c.Database.LockTimeout)
	}

	if err := c.SRS.validate(); err != nil {
		return fmt.Errorf("srs: %w", err)
	}

	if err := c.Interleaved.validate(); err != nil {
		return fmt.Errorf("interleaved: %w", err)
	}

	if err := c.Oracle.validate(); err != nil {
		return fmt.Errorf("oracle: %w", err)
	}

	if c.RateLimit.RequestsPerSecond < 0 {
		return fmt.Errorf("rate_limit.requests_per_second must be >= 0 (got %v)", c.RateLimit.RequestsPerSecond)
	}

	return nil
}

func (s *SRSConfig) validate() error {
	if s.DefaultDueLimit <= 0 {
		return fmt.Errorf("default_due_limit must be > 0 (got %d)", s.DefaultDueLimit)
	}
	if s.MaxDueLimit < s.DefaultDueLimit {
		return fmt.Errorf("max_due_limit must be >= default_due_limit (got %d < %d)", s.MaxDueLimit, s.DefaultDueLimit)
	}

	loc, err := time.LoadLocation(strings.TrimSpace(s.Timezone))
	if err != nil {
		return fmt.Errorf("timezone %q: %w", s.Timezone, err)
	}
	s.Location = loc

	return nil
}

func (c *InterleavedConfig) validate() error {
	if c.QuestionsPerConcept <= 0 {
		return fmt.Errorf("questions_per_concept must be > 0 (got %d)", c.QuestionsPerConcept)
	}
	if c.MinConcepts < 1 {
		return fmt.Errorf("min_concepts must be >= 1 (got %d)", c.MinConcepts)
	}
	if c.MaxConcepts < c.MinConcepts {
		return fmt.Errorf("max_concepts must be >= min_concepts (got %d < %d)", c.MaxConcepts, c.MinConcepts)
	}
	if c.GenerationTimeout <= 0 {
		return errors.New("generation_timeout must be > 0")
	}
	if c.GradingTimeout <= 0 {
		return errors.New("grading_timeout must be > 0")
	}
	if c.MaxConcurrentGenerations <= 0 {
		return fmt.Errorf("max_concurrent_generations must be > 0 (got %d)", c.MaxConcurrentGenerations)
	}
	return nil
}

func (c *OracleConfig) validate() error {
	c.Provider = strings.ToLower(strings.TrimSpace(c.Provider))

	switch c.Provider {
	case ProviderExact:
		return nil
	case ProviderAnthropic, ProviderOpenAI:
	default:
		return fmt.Errorf("provider must be one of %s, %s, %s (got %q)",
			ProviderAnthropic, ProviderOpenAI, ProviderExact, c.Provider)
	}

	if c.APIKey == "" {
		return fmt.Errorf("api_key is required for provider %s", c.Provider)
	}
	if c.ModelOrDefault() == "" {
		return fmt.Errorf("model is required for provider %s", c.Provider)
	}
	if c.RequestsPerMinute < 0 {
		return fmt.Errorf("requests_per_minute must be >= 0 (got %d)", c.RequestsPerMinute)
	}
	if c.Burst < 0 {
		return fmt.Errorf("burst must be >= 0 (got %d)", c.Burst)
	}
	return nil
}
