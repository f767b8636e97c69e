package log

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

func TestSetLevel(t *testing.T) {
	t.Cleanup(func() { SetLevel("info") })

	cases := []struct {
		name  string
		ok    bool
		level zapcore.Level
	}{
		{"debug", true, zapcore.DebugLevel},
		{"WARN", true, zapcore.WarnLevel},
		{" error ", true, zapcore.ErrorLevel},
		{"", true, zapcore.InfoLevel},
		{"verbose", false, zapcore.InfoLevel},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.ok, SetLevel(tc.name))
			assert.Equal(t, tc.level, Level())
		})
	}
}

func TestSetName(t *testing.T) {
	var buf bytes.Buffer
	previous := name
	SetOutput(zapcore.AddSync(&buf))
	t.Cleanup(func() {
		name = previous
		SetOutput(zapcore.AddSync(os.Stdout))
	})

	SetName("weather-reviewer-staging")
	Info("named")
	SetName("")
	Info("unchanged")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	assert.Len(t, lines, 2)
	for _, line := range lines {
		assert.Contains(t, string(line), `"logName":"weather-reviewer-staging"`)
	}
}
