package msg

import (
	"encoding/json"
	"fmt"
	"io"
	"reflect"
	"strconv"
	"strings"

	"github.com/spf13/viper"

	"weather-reviewer/pkg/log"
)

// Catalog holds message templates keyed by their dotted YAML path.
// Templates use {0}, {1}, ... placeholders.
type Catalog struct {
	messages map[string]string
}

// Load reads a YAML message file from r.
func Load(r io.Reader) (*Catalog, error) {
	v := viper.New()
	v.SetConfigType("yml")
	if err := v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("fail to read messages: %w", err)
	}

	messages := make(map[string]string)
	parseMessageMap("", v.AllSettings(), messages)
	return &Catalog{messages: messages}, nil
}

// parseMessageMap read recursively the yml archive
func parseMessageMap(prefix string, data map[string]interface{}, result map[string]string) {
	for key, value := range data {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		switch v := value.(type) {
		case string:
			result[fullKey] = v
		case map[string]interface{}:
			parseMessageMap(fullKey, v, result)
		default:
			log.Warnf("Ignoring key '%s' with unsupported type.", fullKey)
		}
	}
}

// Has reports whether the catalog defines key.
func (c *Catalog) Has(key string) bool {
	_, ok := c.messages[key]
	return ok
}

// Get returns the message for key with its placeholders replaced by args.
// Substituted text is not scanned again for placeholders.
func (c *Catalog) Get(key string, args ...interface{}) string {
	msg, exists := c.messages[key]
	if !exists {
		return fmt.Sprintf("Message not found: %s", key)
	}
	if len(args) == 0 {
		return msg
	}

	pairs := make([]string, 0, len(args)*2)
	for i, arg := range args {
		pairs = append(pairs, fmt.Sprintf("{%d}", i), argToString(arg))
	}
	return strings.NewReplacer(pairs...).Replace(msg)
}

func argToString(arg interface{}) string {
	if arg == nil {
		return ""
	}
	if isPrimitive(arg) {
		return primitiveToString(arg)
	}
	if s, ok := arg.(fmt.Stringer); ok {
		return s.String()
	}
	jsonBytes, err := json.Marshal(arg)
	if err != nil {
		return fmt.Sprintf("%v", arg)
	}
	return string(jsonBytes)
}

// isPrimitive checks if the provided value is of a primitive type (bool, int, uint, float, or string).
func isPrimitive(value interface{}) bool {
	switch reflect.TypeOf(value).Kind() {
	case reflect.Bool, reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64, reflect.String:
		return true
	default:
		return false
	}
}

func primitiveToString(value interface{}) string {
	switch v := value.(type) {
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", value)
	}
}
