package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func baseConfig() *Config {
	return &Config{
		Port:       "8090",
		DBHost:     "localhost",
		DBPort:     "5432",
		DBUser:     "user",
		DBPassword: "password",
		DBName:     "platefinder",
		DBSSLMode:  "disable",
		ImageDir:   "profile_images",
		Env:        "development",
	}
}

func TestValidateDevelopmentDefaults(t *testing.T) {
	// Development tolerates a missing places key; it only warns.
	cfg := baseConfig()
	assert.NoError(t, cfg.Validate())
}

func TestValidateRequiresPort(t *testing.T) {
	cfg := baseConfig()
	cfg.Port = ""
	assert.Error(t, cfg.Validate())
}

func TestValidateRequiresImageDir(t *testing.T) {
	cfg := baseConfig()
	cfg.ImageDir = ""
	assert.Error(t, cfg.Validate())
}

func TestValidateProductionRequiresPlacesKey(t *testing.T) {
	cfg := baseConfig()
	cfg.Env = "production"
	cfg.DBPassword = "s3cure-enough"

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "PLACES_API_KEY")
}

func TestValidateProductionRejectsWeakDBPassword(t *testing.T) {
	cfg := baseConfig()
	cfg.Env = "production"
	cfg.PlacesAPIKey = "real-key"

	for _, password := range []string{"password", ""} {
		cfg.DBPassword = password
		err := cfg.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "DB_PASSWORD")
	}
}

func TestValidateProductionHappyPath(t *testing.T) {
	cfg := baseConfig()
	cfg.Env = "prod"
	cfg.PlacesAPIKey = "real-key"
	cfg.DBPassword = "s3cure-enough"
	cfg.DBSSLMode = "require"

	assert.NoError(t, cfg.Validate())
}
