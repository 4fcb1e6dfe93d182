package logger

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, parseLevel("debug"))
	assert.Equal(t, zapcore.WarnLevel, parseLevel("warn"))
	assert.Equal(t, zapcore.ErrorLevel, parseLevel("error"))
	assert.Equal(t, zapcore.InfoLevel, parseLevel("verbose"))
}

func TestZapWrapper_CarriesFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := NewZapAdapter(zap.New(core)).
		WithFields(map[string]interface{}{"city": "Goa"}).
		WithError(errors.New("boom"))

	log.Warn("cache unavailable", map[string]interface{}{"backend": "redis"})

	entries := logs.All()
	if assert.Len(t, entries, 1) {
		ctx := entries[0].ContextMap()
		assert.Equal(t, "cache unavailable", entries[0].Message)
		assert.Equal(t, "Goa", ctx["city"])
		assert.Equal(t, "redis", ctx["backend"])
		assert.Equal(t, "boom", ctx["error"])
	}
}

func TestNewStructured(t *testing.T) {
	assert.NotNil(t, NewStructured("info", "json"))
	assert.NotNil(t, NewStructured("debug", "console"))
	NewNoOpLogger().Info("dropped", nil)
	NewTestLogger(t).Debug("visible in -v", map[string]interface{}{"n": 1})
}
