package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"aurora/config"
)

func TestSentryClientOptions(t *testing.T) {
	config.AppConfig.SentryDSN = "https://key@o0.ingest.sentry.io/0"
	config.AppConfig.Environment = "test"

	opts := sentryClientOptions()
	assert.Equal(t, "https://key@o0.ingest.sentry.io/0", opts.Dsn)
	assert.Equal(t, "test", opts.Environment)
}
