package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/tesso57/podplay/internal/application/settings"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		raw     string
		want    zapcore.Level
		wantErr bool
	}{
		{raw: "", want: zapcore.WarnLevel},
		{raw: "debug", want: zapcore.DebugLevel},
		{raw: " INFO ", want: zapcore.InfoLevel},
		{raw: "error", want: zapcore.ErrorLevel},
		{raw: "chatty", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := parseLevel(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNew(t *testing.T) {
	logger, err := New(settings.LogConfig{Level: "debug", Development: true})
	require.NoError(t, err)
	assert.True(t, logger.Desugar().Core().Enabled(zapcore.DebugLevel))

	logger, err = New(settings.LogConfig{Level: "error"})
	require.NoError(t, err)
	assert.False(t, logger.Desugar().Core().Enabled(zapcore.WarnLevel))

	_, err = New(settings.LogConfig{Level: "nope"})
	assert.Error(t, err)
}
