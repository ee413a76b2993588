package config

import (
	"fmt"
	"reflect"

	"github.com/caarlos0/env/v11"
)

// Config holds the application configuration.
type Config struct {
	EnvVars EnvVars `json:"env"`
	Places  *Places `json:"-"`
}

// EnvVars holds environment variables required by the application.
// Fields tagged `optional:"true"` are skipped by CheckConfigEnvFields.
type EnvVars struct {
	Host                  string   `env:"HOST" envDefault:"0.0.0.0"`
	Port                  string   `env:"PORT" envDefault:"8000"`
	GinMode               string   `env:"GIN_MODE" envDefault:"release"`
	LogLevel              string   `env:"LOG_LEVEL" optional:"true"`
	CORSOrigins           []string `env:"CORS_ORIGINS" envDefault:"*"`
	APIPrefix             string   `env:"API_PREFIX" envDefault:"/api/v1"`
	MaxSearchResults      int      `env:"MAX_SEARCH_RESULTS" envDefault:"100"`
	DefaultSearchLimit    int      `env:"DEFAULT_SEARCH_LIMIT" envDefault:"20"`
	DefaultPickupDistance int      `env:"DEFAULT_PICKUP_DISTANCE" envDefault:"50"`
	RateLimitPerMinute    int      `env:"RATE_LIMIT_PER_MINUTE" envDefault:"60"`
	OfferUpBaseURL        string   `env:"OFFERUP_BASE_URL" envDefault:"https://offerup.com"`
	OfferUpTimeoutSeconds int      `env:"OFFERUP_TIMEOUT_SECONDS" envDefault:"30"`
	OfferUpRPS            float64  `env:"OFFERUP_RPS" envDefault:"2"`
	PlacesFile            string   `env:"PLACES_FILE" envDefault:"configs/places.yaml"`
}

// LoadConfig parses environment variables into the Config struct.
func LoadConfig() (*Config, error) {
	var config Config
	if err := env.Parse(&config.EnvVars); err != nil {
		return nil, err
	}
	return &config, nil
}

// CheckConfigEnvFields validates that all required EnvVars fields are set.
func (c *Config) CheckConfigEnvFields() error {
	return checkFieldsRecursive(reflect.ValueOf(c.EnvVars))
}

func checkFieldsRecursive(v reflect.Value) error {
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	for i := 0; i < v.NumField(); i++ {
		field := v.Field(i)
		fieldType := v.Type().Field(i)
		if fieldType.Tag.Get("optional") == "true" {
			continue
		}
		if field.IsZero() {
			return fmt.Errorf("$%s must be set", fieldType.Name)
		}
		if field.Kind() == reflect.Struct {
			if err := checkFieldsRecursive(field); err != nil {
				return err
			}
		}
	}
	return nil
}
