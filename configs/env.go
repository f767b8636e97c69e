package configs

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/hashicorp/go-multierror"
	"github.com/joho/godotenv"

	"weather-reviewer/pkg/resource"
	"weather-reviewer/pkg/util/numberutils"
)

const defaultEnvFile = ".env"

// Config is read once at process start and passed to the components that need it.
type Config struct {
	ApplicationName string
	LogLevel        string
	Weather         WeatherConfig
	Mail            MailConfig
}

type WeatherConfig struct {
	City    string
	APIKey  string
	BaseURL string
}

type MailConfig struct {
	// Address is both the sender and the recipient of the report.
	Address  string
	Password string
	Host     string
	Port     int
}

// MissingConfigError reports a required value that is absent from the environment.
type MissingConfigError struct {
	Key string
	Env string
}

func (e *MissingConfigError) Error() string {
	return fmt.Sprintf("missing required configuration %s (set %s)", e.Key, e.Env)
}

// InvalidConfigError reports a value that is present but unusable.
type InvalidConfigError struct {
	Key    string
	Env    string
	Value  string
	Reason string
}

func (e *InvalidConfigError) Error() string {
	return fmt.Sprintf("invalid configuration %s=%q (%s): %s", e.Key, e.Value, e.Env, e.Reason)
}

type requiredKey struct {
	key string
	env string
}

var requiredKeys = []requiredKey{
	{"weather.city", "CITY"},
	{"weather.api-key", "API_KEY"},
	{"mail.address", "EMAIL"},
	{"mail.password", "PASSWORD"},
}

// Load seeds the environment from the .env file, if any, and builds the Config.
// Non-empty variables already present in the environment take precedence over the file.
func Load() (*Config, error) {
	if err := loadEnvFile(); err != nil {
		return nil, err
	}

	props, err := Properties()
	if err != nil {
		return nil, err
	}
	return LoadFrom(props)
}

// loadEnvFile reads ENV_FILE, or .env when unset. Only the default file may be absent.
// A file value is applied when the variable is unset or empty, matching how
// placeholders treat empty variables.
func loadEnvFile() error {
	path, explicit := os.LookupEnv("ENV_FILE")
	if !explicit || path == "" {
		path = defaultEnvFile
		explicit = false
	}

	values, err := godotenv.Read(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load env file %s: %w", path, err)
	}

	for key, value := range values {
		if os.Getenv(key) != "" {
			continue
		}
		if err := os.Setenv(key, value); err != nil {
			return fmt.Errorf("failed to set %s from env file %s: %w", key, path, err)
		}
	}
	return nil
}

// LoadFrom builds and validates a Config from resolved properties.
// Every missing or invalid value is reported in the returned error.
func LoadFrom(props *resource.Properties) (*Config, error) {
	var result *multierror.Error

	for _, rk := range requiredKeys {
		if props.GetString(rk.key) == "" {
			result = multierror.Append(result, &MissingConfigError{Key: rk.key, Env: rk.env})
		}
	}

	port, err := parsePort(props.GetString("mail.smtp.port"))
	if err != nil {
		result = multierror.Append(result, err)
	}

	if err := result.ErrorOrNil(); err != nil {
		return nil, err
	}

	return &Config{
		ApplicationName: props.GetString("app.name"),
		LogLevel:        props.GetString("app.log-level"),
		Weather: WeatherConfig{
			City:    props.GetString("weather.city"),
			APIKey:  props.GetString("weather.api-key"),
			BaseURL: props.GetString("weather.base-url"),
		},
		Mail: MailConfig{
			Address:  props.GetString("mail.address"),
			Password: props.GetString("mail.password"),
			Host:     props.GetString("mail.smtp.host"),
			Port:     port,
		},
	}, nil
}

func parsePort(value string) (int, error) {
	invalid := func(reason string) error {
		return &InvalidConfigError{Key: "mail.smtp.port", Env: "SMTP_PORT", Value: value, Reason: reason}
	}

	if value == "" || !numberutils.IsDigits(value) {
		return 0, invalid("not a number")
	}
	port, err := strconv.Atoi(value)
	if err != nil || !numberutils.IsIntInRange(port, 1, 65535) {
		return 0, invalid("out of range")
	}
	return port, nil
}
