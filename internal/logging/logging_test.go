package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewWithWriter(t *testing.T) {
	tests := []struct {
		name      string
		level     string
		wantDebug bool
		wantInfo  bool
	}{
		{"default is info", "", false, true},
		{"debug", "debug", true, true},
		{"warn hides info", "warn", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger, err := NewWithWriter(tt.level, &buf)
			require.NoError(t, err)

			logger.Debug("debug line", zap.String("dataset", "holdings"))
			logger.Info("info line")
			require.NoError(t, logger.Sync())

			out := buf.String()
			assert.Equal(t, tt.wantDebug, bytes.Contains(buf.Bytes(), []byte("debug line")), out)
			assert.Equal(t, tt.wantInfo, bytes.Contains(buf.Bytes(), []byte("info line")), out)
		})
	}
}

func TestNewWithWriterFields(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewWithWriter("debug", &buf)
	require.NoError(t, err)

	logger.Named("sqlite").Warn("skipped malformed records", zap.Int("skipped", 2))

	out := buf.String()
	assert.Contains(t, out, "tabview.sqlite")
	assert.Contains(t, out, `"skipped": 2`)
}

func TestNewInvalidLevel(t *testing.T) {
	_, err := New("verbose")
	assert.Error(t, err)
}
