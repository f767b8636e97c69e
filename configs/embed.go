package configs

import (
	"bytes"
	_ "embed"

	"weather-reviewer/pkg/msg"
	"weather-reviewer/pkg/resource"
)

//go:embed application.yml
var applicationYAML []byte

//go:embed messages.yml
var messagesYAML []byte

// Properties resolves the embedded application.yml against the current environment.
func Properties() (*resource.Properties, error) {
	return resource.Load(bytes.NewReader(applicationYAML))
}

// Messages loads the embedded message catalog.
func Messages() (*msg.Catalog, error) {
	return msg.Load(bytes.NewReader(messagesYAML))
}
