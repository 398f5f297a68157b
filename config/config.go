// Package config loads client settings from a YAML file, a .env file and
// the process environment. It is opt-in: nothing is read unless Load is
// called.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	envprovider "github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/rs/zerolog"

	asaas "github.com/lucasbrito-wdt/asaas-sdk-go"
)

// DefaultEnvPrefix is used when Sources.EnvPrefix is empty.
const DefaultEnvPrefix = "ASAAS_"

// Environment names accepted in configuration.
const (
	EnvProduction = "production"
	EnvSandbox    = "sandbox"
)

// Sources lists where Load reads from. Empty paths are skipped.
type Sources struct {
	// File is a YAML file. It must exist when set.
	File string
	// DotEnv is a .env file. Only keys carrying EnvPrefix are used.
	DotEnv string
	// EnvPrefix selects environment variables. Nested keys use a double
	// underscore: ASAAS_RETRY__MAX_RETRIES sets retry.max_retries.
	EnvPrefix string
	// SkipEnv disables reading the process environment.
	SkipEnv bool
}

// File is the decoded configuration.
type File struct {
	APIKey          string         `koanf:"api_key"`
	APIKeyHeader    string         `koanf:"api_key_header" validate:"required"`
	Environment     string         `koanf:"environment" validate:"oneof=production sandbox"`
	BaseURL         string         `koanf:"base_url" validate:"omitempty,url"`
	Timeout         *time.Duration `koanf:"timeout"`
	UserAgent       string         `koanf:"user_agent"`
	RequestIDHeader string         `koanf:"request_id_header"`
	LogLevel        string         `koanf:"log_level" validate:"omitempty,oneof=trace debug info warn error disabled"`
	Retry           Retry          `koanf:"retry"`
}

// Retry is the retry section. Unset fields keep the client defaults.
type Retry struct {
	MaxRetries    *int           `koanf:"max_retries" validate:"omitempty,gte=0"`
	InitialDelay  *time.Duration `koanf:"initial_delay"`
	MaxDelay      *time.Duration `koanf:"max_delay"`
	BackoffFactor *float64       `koanf:"backoff_factor" validate:"omitempty,gte=1"`
	Jitter        *time.Duration `koanf:"jitter"`
	StatusCodes   []int          `koanf:"status_codes" validate:"omitempty,dive,gte=100,lte=599"`
	Methods       []string       `koanf:"methods" validate:"omitempty,dive,oneof=GET POST PUT PATCH DELETE HEAD OPTIONS"`
}

var validate = validator.New()

// Load reads the configuration with priority, lowest first: defaults, the
// YAML file, the .env file, then the process environment.
func Load(src Sources) (*File, error) {
	prefix := src.EnvPrefix
	if prefix == "" {
		prefix = DefaultEnvPrefix
	}

	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if src.File != "" {
		if err := k.Load(file.Provider(src.File), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", src.File, err)
		}
	}

	if src.DotEnv != "" {
		vars, err := godotenv.Read(src.DotEnv)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", src.DotEnv, err)
		}
		values := make(map[string]any)
		for name, raw := range vars {
			if !strings.HasPrefix(name, prefix) {
				continue
			}
			key, value := envValue(prefix)(name, raw)
			values[key] = value
		}
		if err := k.Load(confmap.Provider(values, "."), nil); err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", src.DotEnv, err)
		}
	}

	if !src.SkipEnv {
		if err := k.Load(envprovider.ProviderWithValue(prefix, ".", envValue(prefix)), nil); err != nil {
			return nil, fmt.Errorf("failed to load environment variables: %w", err)
		}
	}

	var cfg File
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.Environment = strings.ToLower(cfg.Environment)
	for i, m := range cfg.Retry.Methods {
		cfg.Retry.Methods[i] = strings.ToUpper(m)
	}

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// Validate checks cfg field by field.
func Validate(cfg *File) error {
	if err := validate.Struct(cfg); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s failed %q", fe.Namespace(), fe.Tag()))
			}
			return errors.New(strings.Join(msgs, "; "))
		}
		return err
	}
	return nil
}

// Options converts the configuration into client options.
func (f *File) Options() []asaas.Option {
	var opts []asaas.Option

	switch f.Environment {
	case EnvSandbox:
		opts = append(opts, asaas.WithEnvironment(asaas.Sandbox))
	case EnvProduction:
		opts = append(opts, asaas.WithEnvironment(asaas.Production))
	}
	if f.BaseURL != "" {
		opts = append(opts, asaas.WithBaseURL(f.BaseURL))
	}
	if f.APIKey != "" {
		opts = append(opts, asaas.WithAPIKey(f.APIKey))
	}
	if f.APIKeyHeader != "" {
		opts = append(opts, asaas.WithAPIKeyHeader(f.APIKeyHeader))
	}
	if f.Timeout != nil {
		opts = append(opts, asaas.WithTimeout(*f.Timeout))
	}
	if f.UserAgent != "" {
		opts = append(opts, asaas.WithUserAgent(f.UserAgent))
	}
	if f.RequestIDHeader != "" {
		opts = append(opts, asaas.WithRequestIDHeader(f.RequestIDHeader))
	}
	if f.LogLevel != "" {
		if level, err := zerolog.ParseLevel(f.LogLevel); err == nil {
			logger := zerolog.New(os.Stderr).Level(level).With().Timestamp().Logger()
			opts = append(opts, asaas.WithLogger(logger))
		}
	}

	r := f.Retry
	if r.MaxRetries != nil {
		opts = append(opts, asaas.WithMaxRetries(*r.MaxRetries))
	}
	if r.InitialDelay != nil || r.MaxDelay != nil {
		initial, maxDelay := asaas.DefaultRetryPolicy().InitialDelay, asaas.DefaultRetryPolicy().MaxDelay
		if r.InitialDelay != nil {
			initial = *r.InitialDelay
		}
		if r.MaxDelay != nil {
			maxDelay = *r.MaxDelay
		}
		opts = append(opts, asaas.WithRetryDelays(initial, maxDelay))
	}
	if r.BackoffFactor != nil {
		opts = append(opts, asaas.WithBackoffFactor(*r.BackoffFactor))
	}
	if r.Jitter != nil {
		opts = append(opts, asaas.WithRetryJitter(*r.Jitter))
	}
	if r.StatusCodes != nil {
		opts = append(opts, asaas.WithRetryStatusCodes(r.StatusCodes...))
	}
	if r.Methods != nil {
		opts = append(opts, asaas.WithRetryMethods(r.Methods...))
	}

	return opts
}

func defaults() map[string]any {
	return map[string]any{
		"api_key_header": "access_token",
		"environment":    EnvProduction,
	}
}

// envValue maps ASAAS_RETRY__MAX_RETRIES to retry.max_retries. List keys
// are split on commas.
func envValue(prefix string) func(key, value string) (string, any) {
	return func(key, value string) (string, any) {
		name := strings.ToLower(strings.TrimPrefix(key, prefix))
		name = strings.ReplaceAll(name, "__", ".")
		switch name {
		case "retry.status_codes", "retry.methods":
			parts := strings.Split(value, ",")
			for i := range parts {
				parts[i] = strings.TrimSpace(parts[i])
			}
			return name, parts
		}
		return name, value
	}
}
