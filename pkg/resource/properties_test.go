package resource

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `
app:
  name: ${RESOURCE_TEST_APP:weather-reviewer}
  debug: true
weather:
  city: ${RESOURCE_TEST_CITY}
  base-url: http://api.openweathermap.org/data/2.5
mail:
  smtp:
    port: ${RESOURCE_TEST_PORT:587}
    retries: 0
`

func TestLoad_ResolvesPlaceholders(t *testing.T) {
	t.Setenv("RESOURCE_TEST_CITY", "Hyderabad")
	t.Setenv("RESOURCE_TEST_PORT", "2525")

	props, err := Load(strings.NewReader(sample))
	require.NoError(t, err)

	assert.Equal(t, "weather-reviewer", props.GetString("app.name"))
	assert.True(t, props.GetBool("app.debug"))
	assert.Equal(t, "Hyderabad", props.GetString("weather.city"))
	assert.Equal(t, "http://api.openweathermap.org/data/2.5", props.GetString("weather.base-url"))
	assert.Equal(t, 2525, props.GetInt("mail.smtp.port"))
	assert.True(t, props.IsSet("mail.smtp.retries"))
}

func TestLoad_UnsetWithoutDefaultLeavesKeyUnset(t *testing.T) {
	t.Setenv("RESOURCE_TEST_CITY", "")

	props, err := Load(strings.NewReader(sample))
	require.NoError(t, err)

	assert.False(t, props.IsSet("weather.city"))
	assert.Equal(t, "", props.GetString("weather.city"))
	assert.Equal(t, 587, props.GetInt("mail.smtp.port"))
}

func TestLoad_InvalidYAML(t *testing.T) {
	_, err := Load(strings.NewReader("app: [unterminated"))
	assert.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "application.yml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o600))

	props, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "weather-reviewer", props.GetString("app.name"))

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yml"))
	assert.Error(t, err)
}
