// Package config reads the remote store and geocoding credentials
// from the environment and an optional dotenv file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/photocat/photocat/fs"
	"github.com/spf13/viper"
)

// EnvFile is the dotenv file read for credentials.  It is fine for it
// not to exist.
var EnvFile = ".env"

// Credential keys, as used in the dotenv file
const (
	KeyCloudName  = "cloud_name"
	KeyAPIKey     = "api_key"
	KeyAPISecret  = "api_secret"
	KeyGeocodeAPI = "google_api"
)

var credentialKeys = []string{KeyCloudName, KeyAPIKey, KeyAPISecret, KeyGeocodeAPI}

func newViper(envFile string) (*viper.Viper, error) {
	v := viper.New()
	for _, key := range credentialKeys {
		// accept both the dotenv spelling and the conventional upper case
		if err := v.BindEnv(key, key, strings.ToUpper(key)); err != nil {
			return nil, fmt.Errorf("failed to bind environment variable for %s: %w", key, err)
		}
	}
	if envFile == "" {
		return v, nil
	}
	v.SetConfigFile(envFile)
	v.SetConfigType("env")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.Is(err, os.ErrNotExist) && !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading env file %q: %w", envFile, err)
		}
		fs.Debugf(nil, "No env file %q, using environment variables only", envFile)
	} else {
		fs.Debugf(nil, "Using env file %q", v.ConfigFileUsed())
	}
	return v, nil
}

// Load reads the credentials into ci.  Missing credentials are not an
// error here; commands which need the store check for them.
func Load(ci *fs.ConfigInfo) error {
	v, err := newViper(EnvFile)
	if err != nil {
		return err
	}
	ci.CloudName = v.GetString(KeyCloudName)
	ci.APIKey = v.GetString(KeyAPIKey)
	ci.APISecret = v.GetString(KeyAPISecret)
	ci.GeocodeAPIKey = v.GetString(KeyGeocodeAPI)
	if !ci.GeocodingEnabled() {
		fs.Debugf(nil, "No %s configured, geocoding disabled", KeyGeocodeAPI)
	}
	return nil
}

// RequireStore returns an error naming the missing store credentials
func RequireStore(ci *fs.ConfigInfo) error {
	if missing := ci.MissingStoreCredentials(); len(missing) > 0 {
		return fmt.Errorf("%w: set %v in the environment or %s", fs.ErrorNoCredentials, missing, EnvFile)
	}
	return nil
}
