package logger

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, Debug, ParseLevel(" DEBUG "))
	assert.Equal(t, Info, ParseLevel(""))
	assert.Equal(t, Warn, ParseLevel("warning"))
	assert.Equal(t, Error, ParseLevel("error"))
	assert.Equal(t, Info, ParseLevel("nope"))
}

func TestParseFormat(t *testing.T) {
	assert.Equal(t, FormatJSON, ParseFormat("JSON"))
	assert.Equal(t, FormatText, ParseFormat("console"))
}

func TestZapLogger_WithMergesFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := FromZap(zap.New(core)).With(map[string]any{"user_id": "u-1", "": "skip"})

	l.Warn("ai fallback", map[string]any{"err": errors.New("timeout")})

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "ai fallback", entries[0].Message)
	assert.Equal(t, zapcore.WarnLevel, entries[0].Level)

	ctx := entries[0].ContextMap()
	assert.Equal(t, "u-1", ctx["user_id"])
	assert.Equal(t, "timeout", ctx["err"])
	_, hasEmpty := ctx[""]
	assert.False(t, hasEmpty)
}

func TestNew_RespectsLevel(t *testing.T) {
	l, err := New(Options{Level: Error, Format: FormatJSON, App: "penguin-pet"})
	require.NoError(t, err)
	require.NotNil(t, l)

	// Nop nunca falla
	Nop().Info("hello", nil)
}
