package logger

import (
	"context"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  log.Level
	}{
		{"debug", log.DebugLevel},
		{"DEBUG", log.DebugLevel},
		{" info ", log.InfoLevel},
		{"warn", log.WarnLevel},
		{"warning", log.WarnLevel},
		{"error", log.ErrorLevel},
		{"fatal", log.FatalLevel},
		{"verbose", log.InfoLevel},
		{"", log.InfoLevel},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.input))
		})
	}
}

func TestGetLogger_Singleton(t *testing.T) {
	assert.Same(t, GetLogger(), GetLogger())
}

func TestConfigureFromEnv(t *testing.T) {
	l := GetLogger()
	t.Cleanup(func() { l.SetLogLevel("info") })

	t.Setenv(LevelEnv, "error")
	l.ConfigureFromEnv()
	assert.Equal(t, log.ErrorLevel, l.GetLevel())

	t.Setenv(LevelEnv, "")
	t.Setenv("ENV", "dev")
	l.ConfigureFromEnv()
	assert.Equal(t, log.DebugLevel, l.GetLevel())
}

func TestWithRun(t *testing.T) {
	ctx := WithRun(context.Background())

	runLogger := log.FromContext(ctx)
	assert.NotNil(t, runLogger)
	assert.NotSame(t, GetLogger().Logger, runLogger)
}
