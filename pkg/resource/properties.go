package resource

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"time"

	"github.com/spf13/viper"

	"weather-reviewer/pkg/log"
)

var envPattern = regexp.MustCompile(`^\$\{([^:}]+)(?::([^}]*))?}$`)

// Properties holds application properties read from YAML with ${ENV:default} placeholders resolved.
// A placeholder whose variable is unset and has no default leaves the key unset.
type Properties struct {
	v *viper.Viper
}

// Load reads YAML properties from r.
func Load(r io.Reader) (*Properties, error) {
	raw := viper.New()
	raw.SetConfigType("yml")
	if err := raw.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("fail to read properties: %w", err)
	}

	resolved := make(map[string]any)
	parsePropertiesMap("", raw.AllSettings(), resolved)

	v := viper.New()
	for key, value := range resolved {
		v.Set(key, value)
	}
	return &Properties{v: v}, nil
}

// LoadFile reads YAML properties from the file at path.
func LoadFile(path string) (*Properties, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("fail to open properties %s: %w", path, err)
	}
	defer f.Close()
	return Load(f)
}

// parsePropertiesMap flattens the YAML tree into dotted keys, resolving placeholders on the way.
func parsePropertiesMap(prefix string, data map[string]any, result map[string]any) {
	for key, value := range data {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		switch v := value.(type) {
		case string:
			if resolved, ok := resolveEnvVariable(v); ok {
				result[fullKey] = resolved
			}
		case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64, bool:
			result[fullKey] = v
		case map[string]any:
			parsePropertiesMap(fullKey, v, result)
		default:
			log.Warnf("Ignoring key '%s' with unsupported type.", fullKey)
		}
	}
}

// resolveEnvVariable expands a ${NAME:default} value. Plain strings are returned unchanged.
func resolveEnvVariable(value string) (string, bool) {
	matches := envPattern.FindStringSubmatch(value)
	if matches == nil {
		return value, true
	}

	if envValue, exists := os.LookupEnv(matches[1]); exists && envValue != "" {
		return envValue, true
	}
	if matches[2] != "" {
		return matches[2], true
	}
	return "", false
}

func (p *Properties) IsSet(key string) bool {
	return p.v.IsSet(key)
}

func (p *Properties) Get(key string) any {
	return p.v.Get(key)
}

func (p *Properties) GetString(key string) string {
	return p.v.GetString(key)
}

func (p *Properties) GetBool(key string) bool {
	return p.v.GetBool(key)
}

func (p *Properties) GetDuration(key string) time.Duration {
	return p.v.GetDuration(key)
}

func (p *Properties) GetInt(key string) int {
	return p.v.GetInt(key)
}
