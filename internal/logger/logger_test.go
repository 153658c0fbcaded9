package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	prevOut := logrus.StandardLogger().Out
	prevLevel := logrus.GetLevel()
	logrus.SetOutput(buf)
	t.Cleanup(func() {
		logrus.SetOutput(prevOut)
		logrus.SetLevel(prevLevel)
	})
	return buf
}

func TestWithContext(t *testing.T) {
	buf := captureOutput(t)
	Setup("info")

	ctx := context.WithValue(context.Background(), RequestIDKey, "req-123")
	ctx = context.WithValue(ctx, PlayerIDKey, uint(42))

	WithContext(ctx).WithError(errors.New("db down")).Error("Submit prediction error")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "req-123", entry["request_id"])
	assert.Equal(t, float64(42), entry["player_id"])
	assert.Equal(t, "db down", entry["error"])
	assert.Equal(t, "Submit prediction error", entry["msg"])
}

func TestWithContextAnonymous(t *testing.T) {
	buf := captureOutput(t)
	Setup("info")

	WithContext(context.Background()).Info("hello")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "anonymous", entry["player_id"])
	_, hasRequestID := entry["request_id"]
	assert.False(t, hasRequestID)
}

func TestSetupLevels(t *testing.T) {
	captureOutput(t)

	Setup("debug")
	assert.Equal(t, logrus.DebugLevel, logrus.GetLevel())
	Setup("WARN")
	assert.Equal(t, logrus.WarnLevel, logrus.GetLevel())
	Setup("error")
	assert.Equal(t, logrus.ErrorLevel, logrus.GetLevel())
	Setup("bogus")
	assert.Equal(t, logrus.InfoLevel, logrus.GetLevel())
}

func TestWithFields(t *testing.T) {
	buf := captureOutput(t)
	Setup("info")

	New().WithFields(map[string]interface{}{"round_number": 3}).WithField("op", "games").Info("lookup")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, float64(3), entry["round_number"])
	assert.Equal(t, "games", entry["op"])
}
