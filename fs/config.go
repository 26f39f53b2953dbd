package fs

import (
	"context"
	"strings"
)

// Global
var (
	// globalConfig is the config used when the context carries none
	globalConfig = NewConfig()

	// Version of photocat
	Version = "v0.1.0-DEV"
)

type configContextKeyType struct{}

// Context key for config
var configContextKey = configContextKeyType{}

// ConfigInfo is the global options for a photocat run
type ConfigInfo struct {
	LogLevel   LogLevel
	UseJSONLog bool
	DryRun     bool

	// Remote store credentials
	CloudName string
	APIKey    string
	APISecret string

	// Optional; geocoding is disabled when empty
	GeocodeAPIKey string

	MaxImageDimension int
	MaxVideoDimension int
	ListPageSize      int
}

// NewConfig creates a new config with everything set to the default
// value.  These are the ultimate defaults and are overridden by the
// config module.
func NewConfig() *ConfigInfo {
	c := new(ConfigInfo)

	// Set any values which aren't the zero for the type
	c.LogLevel = LogLevelNotice
	c.MaxImageDimension = 1920
	c.MaxVideoDimension = 1024
	c.ListPageSize = 500

	return c
}

// GetConfig returns the global or context sensitive config
func GetConfig(ctx context.Context) *ConfigInfo {
	if ctx == nil {
		return globalConfig
	}
	c := ctx.Value(configContextKey)
	if c == nil {
		return globalConfig
	}
	return c.(*ConfigInfo)
}

// CopyConfig copies the global config (if any) from srcCtx into
// dstCtx returning the new context.
func CopyConfig(dstCtx, srcCtx context.Context) context.Context {
	if srcCtx == nil {
		return dstCtx
	}
	c := srcCtx.Value(configContextKey)
	if c == nil {
		return dstCtx
	}
	return context.WithValue(dstCtx, configContextKey, c)
}

// AddConfig returns a mutable config structure based on a shallow
// copy of that found in ctx and returns a new context with that added
// to it.
func AddConfig(ctx context.Context) (context.Context, *ConfigInfo) {
	c := GetConfig(ctx)
	cCopy := new(ConfigInfo)
	*cCopy = *c
	newCtx := context.WithValue(ctx, configContextKey, cCopy)
	return newCtx, cCopy
}

// HasStoreCredentials reports whether all three remote store
// credentials are set
func (c *ConfigInfo) HasStoreCredentials() bool {
	return c.CloudName != "" && c.APIKey != "" && c.APISecret != ""
}

// MissingStoreCredentials lists the names of the unset store
// credentials
func (c *ConfigInfo) MissingStoreCredentials() (missing []string) {
	if c.CloudName == "" {
		missing = append(missing, "cloud_name")
	}
	if c.APIKey == "" {
		missing = append(missing, "api_key")
	}
	if c.APISecret == "" {
		missing = append(missing, "api_secret")
	}
	return missing
}

// GeocodingEnabled is true when a geocoding provider key is configured
func (c *ConfigInfo) GeocodingEnabled() bool {
	return strings.TrimSpace(c.GeocodeAPIKey) != ""
}
