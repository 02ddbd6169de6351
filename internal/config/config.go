package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/Chapsvision-dev/script-registry/internal/retry"
)

type Config struct {
	// ModuleRoot re-roots provider module specifiers; empty keeps them relative.
	ModuleRoot string
	// Strict makes `resolve` reject options missing required keys.
	Strict bool

	// Catalog publishing
	Provider               string
	CatalogOutput          string
	CatalogPrefix          string
	CatalogTimestampFormat string
	VerifySource           string
	VerifyTarget           string

	Azure AzureConfig

	RetryMaxAttempts  int
	RetryInitialDelay time.Duration
	RetryMaxDelay     time.Duration
	RetryMultiplier   float64
	RetryEnableJitter bool
}

type AzureConfig struct {
	Account   string
	Container string
	SASToken  string
	Endpoint  string // optional override, e.g. an Azurite URL

	ClientID     string
	ClientSecret string
	TenantID     string
}

// Load reads config from environment variables and applies defaults.
// Storage settings are only checked by ValidateProvider, so commands that
// never touch storage work without them.
func Load() (Config, error) {
	get := func(key, def string) string {
		if v, ok := os.LookupEnv(key); ok {
			return v
		}
		return def
	}

	parseInt := func(key string, def int) int {
		if v, ok := os.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
			if n, err := strconv.Atoi(v); err == nil && n >= 0 {
				return n
			}
		}
		return def
	}

	parseDur := func(key string, def time.Duration) time.Duration {
		if v, ok := os.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
			if d, err := time.ParseDuration(v); err == nil {
				return d
			}
		}
		return def
	}

	parseFloat := func(key string, def float64) float64 {
		if v, ok := os.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
			if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 {
				return f
			}
		}
		return def
	}

	cfg := Config{
		ModuleRoot: strings.TrimSpace(get("REGISTRY_MODULE_ROOT", "")),
		Strict:     ParseBool(get("RESOLVE_STRICT", ""), false),

		Provider:               strings.ToLower(strings.TrimSpace(get("CATALOG_PROVIDER", "azure"))),
		CatalogOutput:          get("CATALOG_OUTPUT", "./catalog.json"),
		CatalogPrefix:          get("CATALOG_PREFIX", "scripts/catalog"),
		CatalogTimestampFormat: get("CATALOG_TIMESTAMP_FORMAT", ""),
		VerifySource:           get("VERIFY_SOURCE", ""),
		VerifyTarget:           get("VERIFY_TARGET", "./published-catalog.json"),

		Azure: AzureConfig{
			Account:      get("AZURE_STORAGE_ACCOUNT", ""),
			Container:    get("AZURE_STORAGE_CONTAINER", ""),
			SASToken:     get("AZURE_STORAGE_SAS", ""),
			Endpoint:     strings.TrimSpace(get("AZURE_BLOB_ENDPOINT", "")),
			ClientID:     get("AZURE_CLIENT_ID", ""),
			ClientSecret: get("AZURE_CLIENT_SECRET", ""),
			TenantID:     get("AZURE_TENANT_ID", ""),
		},

		RetryMaxAttempts:  parseInt("RETRY_MAX_ATTEMPTS", retry.Default.MaxAttempts),
		RetryInitialDelay: parseDur("RETRY_INITIAL_DELAY", retry.Default.InitialDelay),
		RetryMaxDelay:     parseDur("RETRY_MAX_DELAY", retry.Default.MaxDelay),
		RetryMultiplier:   parseFloat("RETRY_MULTIPLIER", retry.Default.Multiplier),
		RetryEnableJitter: ParseBool(get("RETRY_JITTER", ""), retry.Default.Jitter),
	}

	switch cfg.Provider {
	case "azure":
	case "":
		cfg.Provider = "azure"
	default:
		return Config{}, errors.New("unsupported catalog provider: " + cfg.Provider)
	}
	return cfg, nil
}

// ParseBool accepts the usual yes/no spellings; anything else yields def.
func ParseBool(v string, def bool) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "y", "on":
		return true
	case "0", "false", "no", "n", "off":
		return false
	}
	return def
}

// ValidateProvider checks the storage settings needed by publish and verify.
// Azure needs Account+Container; credentials may be SAS, a service
// principal or whatever DefaultAzureCredential finds.
func (c Config) ValidateProvider() error {
	switch c.Provider {
	case "azure":
		if c.Azure.Account == "" || c.Azure.Container == "" {
			return errors.New("azure: AZURE_STORAGE_ACCOUNT and AZURE_STORAGE_CONTAINER are required")
		}
		sp := []string{c.Azure.ClientID, c.Azure.ClientSecret, c.Azure.TenantID}
		set := 0
		for _, v := range sp {
			if v != "" {
				set++
			}
		}
		if set != 0 && set != len(sp) {
			return errors.New("azure: AZURE_CLIENT_ID, AZURE_CLIENT_SECRET and AZURE_TENANT_ID must be set together")
		}
	default:
		return errors.New("unsupported catalog provider: " + c.Provider)
	}
	return nil
}

// RetryOptions converts retry-related config values to retry.Options.
func (c Config) RetryOptions() retry.Options {
	return retry.Options{
		MaxAttempts:  c.RetryMaxAttempts,
		InitialDelay: c.RetryInitialDelay,
		MaxDelay:     c.RetryMaxDelay,
		Multiplier:   c.RetryMultiplier,
		Jitter:       c.RetryEnableJitter,
	}
}
