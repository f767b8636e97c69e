package msg

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const messages = `
app:
  start: Starting run
mail:
  weather:
    subject: "Weather Update for {0}"
    body: "The current weather in {0} is: {1}."
stats:
  line: "{0} requests, ratio {1}, ok={2}"
`

func loadCatalog(t *testing.T) *Catalog {
	t.Helper()
	c, err := Load(strings.NewReader(messages))
	require.NoError(t, err)
	return c
}

func TestCatalog_Get(t *testing.T) {
	c := loadCatalog(t)

	assert.Equal(t, "Starting run", c.Get("app.start"))
	assert.Equal(t, "Weather Update for Hyderabad", c.Get("mail.weather.subject", "Hyderabad"))
	assert.Equal(t, "The current weather in Hyderabad is: clear sky.", c.Get("mail.weather.body", "Hyderabad", "clear sky"))
	assert.Equal(t, "3 requests, ratio 0.5, ok=true", c.Get("stats.line", 3, 0.5, true))
}

func TestCatalog_GetDoesNotReexpandArguments(t *testing.T) {
	c := loadCatalog(t)

	assert.Equal(t, "The current weather in {1} is: rain.", c.Get("mail.weather.body", "{1}", "rain"))
}

func TestCatalog_GetMissingKey(t *testing.T) {
	c := loadCatalog(t)

	assert.False(t, c.Has("mail.unknown"))
	assert.Equal(t, "Message not found: mail.unknown", c.Get("mail.unknown"))
}

func TestCatalog_GetStructArgument(t *testing.T) {
	c := loadCatalog(t)

	got := c.Get("app.start") + " " + argToString(struct {
		City string `json:"city"`
	}{City: "Paris"})
	assert.Equal(t, `Starting run {"city":"Paris"}`, got)
}
