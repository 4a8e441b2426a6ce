package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/prototypes/pkg/types"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name    string
		want    slog.Level
		wantErr error
	}{
		{"", slog.LevelInfo, nil},
		{"debug", slog.LevelDebug, nil},
		{"INFO", slog.LevelInfo, nil},
		{"warn", slog.LevelWarn, nil},
		{"error", slog.LevelError, nil},
		{"verbose", slog.LevelInfo, types.ErrLogLevelUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLevel(tt.name)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSetupText(t *testing.T) {
	var buf bytes.Buffer
	logger, cleanup, err := Setup(Config{Level: "info", Output: &buf})
	require.NoError(t, err)
	defer cleanup()

	logger.Debug("hidden")
	logger.Info("loaded", "collections", 20)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "msg=loaded")
	assert.Contains(t, out, "collections=20")
}

func TestSetupJSON(t *testing.T) {
	var buf bytes.Buffer
	logger, cleanup, err := Setup(Config{Level: "debug", Format: types.LogFormatJSON, Output: &buf})
	require.NoError(t, err)
	defer cleanup()

	logger.Debug("query_run", "query", "bossLoyalty")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "DEBUG", entry["level"])
	assert.Equal(t, "bossLoyalty", entry["query"])
}

func TestSetupRejectsUnknownSettings(t *testing.T) {
	_, _, err := Setup(Config{Format: "xml"})
	assert.ErrorIs(t, err, types.ErrLogFormatUnknown)

	_, _, err = Setup(Config{Level: "loud"})
	assert.ErrorIs(t, err, types.ErrLogLevelUnknown)
}

func TestMultiHandlerFansOut(t *testing.T) {
	var debugBuf, warnBuf bytes.Buffer
	h := &multiHandler{handlers: []slog.Handler{
		slog.NewTextHandler(&debugBuf, &slog.HandlerOptions{Level: slog.LevelDebug}),
		slog.NewTextHandler(&warnBuf, &slog.HandlerOptions{Level: slog.LevelWarn}),
	}}
	logger := slog.New(h).With("run_id", "r1").WithGroup("query")

	logger.Info("ran", "name", "totalDamage")
	logger.Warn("slow", "name", "uncastActors")

	assert.Contains(t, debugBuf.String(), "run_id=r1")
	assert.Contains(t, debugBuf.String(), "query.name=totalDamage")
	assert.Contains(t, debugBuf.String(), "query.name=uncastActors")
	assert.NotContains(t, warnBuf.String(), "totalDamage")
	assert.Contains(t, warnBuf.String(), "query.name=uncastActors")
}
