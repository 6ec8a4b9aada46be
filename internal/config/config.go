package config

import (
	"strings"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server      ServerConfig      `yaml:"server"`
	Database    DatabaseConfig    `yaml:"database"`
	Auth        AuthConfig        `yaml:"auth"`
	Log         LogConfig         `yaml:"log"`
	SRS         SRSConfig         `yaml:"srs"`
	Interleaved InterleavedConfig `yaml:"interleaved"`
	Oracle      OracleConfig      `yaml:"oracle"`
	CORS        CORSConfig        `yaml:"cors"`
	RateLimit   RateLimitConfig   `yaml:"rate_limit"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PATCH,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// RateLimitConfig holds per-client HTTP rate limiting settings.
// A zero RequestsPerSecond disables the limiter.
type RateLimitConfig struct {
	RequestsPerSecond float64       `yaml:"requests_per_second" env:"RATE_LIMIT_RPS"      env-default:"20"`
	Burst             int           `yaml:"burst"               env:"RATE_LIMIT_BURST"    env-default:"40"`
	IdleTTL           time.Duration `yaml:"idle_ttl"            env:"RATE_LIMIT_IDLE_TTL" env-default:"10m"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	// Session creation waits on question generation, so writes get a generous budget.
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"90s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	// TrustProxy takes the client address from X-Forwarded-For.
	TrustProxy bool `yaml:"trust_proxy" env:"SERVER_TRUST_PROXY" env-default:"false"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	AutoMigrate     bool          `yaml:"auto_migrate"       env:"DATABASE_AUTO_MIGRATE"       env-default:"false"`
	// LockTimeout bounds how long a transaction waits for a row lock. Zero waits forever.
	LockTimeout time.Duration `yaml:"lock_timeout" env:"DATABASE_LOCK_TIMEOUT" env-default:"5s"`
}

// AuthConfig holds access-token validation settings. Tokens are issued by the
// identity service; this service only verifies them.
type AuthConfig struct {
	JWTSecret string `yaml:"jwt_secret" env:"AUTH_JWT_SECRET" env-required:"true"`
	JWTIssuer string `yaml:"jwt_issuer" env:"AUTH_JWT_ISSUER" env-default:"studyhub"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// SRSConfig holds spaced-repetition scheduling settings.
type SRSConfig struct {
	Timezone        string `yaml:"timezone"          env:"SRS_TIMEZONE"          env-default:"UTC"`
	DefaultDueLimit int    `yaml:"default_due_limit" env:"SRS_DEFAULT_DUE_LIMIT" env-default:"50"`
	MaxDueLimit     int    `yaml:"max_due_limit"     env:"SRS_MAX_DUE_LIMIT"     env-default:"200"`

	// Location is parsed from Timezone during validation.
	Location *time.Location `yaml:"-" env:"-"`
}

// InterleavedConfig holds interleaved session settings.
type InterleavedConfig struct {
	QuestionsPerConcept      int           `yaml:"questions_per_concept"      env:"INTERLEAVED_QUESTIONS_PER_CONCEPT"      env-default:"5"`
	MinConcepts              int           `yaml:"min_concepts"               env:"INTERLEAVED_MIN_CONCEPTS"               env-default:"2"`
	MaxConcepts              int           `yaml:"max_concepts"               env:"INTERLEAVED_MAX_CONCEPTS"               env-default:"10"`
	GenerationTimeout        time.Duration `yaml:"generation_timeout"         env:"INTERLEAVED_GENERATION_TIMEOUT"         env-default:"60s"`
	GradingTimeout           time.Duration `yaml:"grading_timeout"            env:"INTERLEAVED_GRADING_TIMEOUT"            env-default:"10s"`
	MaxConcurrentGenerations int           `yaml:"max_concurrent_generations" env:"INTERLEAVED_MAX_CONCURRENT_GENERATIONS" env-default:"4"`
}

// Oracle providers.
const (
	ProviderAnthropic = "anthropic"
	ProviderOpenAI    = "openai"
	// ProviderExact runs without a language model: template questions and
	// exact-match grading.
	ProviderExact = "exact"
)

// OracleConfig holds the question-generation and grading oracle settings.
// A zero RequestsPerMinute disables client-side throttling.
type OracleConfig struct {
	Provider          string `yaml:"provider"            env:"ORACLE_PROVIDER"            env-default:"exact"`
	APIKey            string `yaml:"api_key"             env:"ORACLE_API_KEY"`
	Model             string `yaml:"model"               env:"ORACLE_MODEL"`
	BaseURL           string `yaml:"base_url"            env:"ORACLE_BASE_URL"`
	RequestsPerMinute int    `yaml:"requests_per_minute" env:"ORACLE_REQUESTS_PER_MINUTE" env-default:"60"`
	Burst             int    `yaml:"burst"               env:"ORACLE_BURST"               env-default:"5"`
}

// UsesLLM reports whether the oracle is backed by a language model provider.
func (c OracleConfig) UsesLLM() bool {
	p := strings.ToLower(c.Provider)
	return p == ProviderAnthropic || p == ProviderOpenAI
}

// ModelOrDefault returns the configured model, falling back to the provider default.
func (c OracleConfig) ModelOrDefault() string {
	if c.Model != "" {
		return c.Model
	}
	if strings.EqualFold(c.Provider, ProviderOpenAI) {
		return "gpt-4o"
	}
	return ""
}
