package logger

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestInit(t *testing.T) {
	tests := []struct {
		name   string
		level  string
		pretty bool
		want   zerolog.Level
	}{
		{name: "debug level", level: "debug", want: zerolog.DebugLevel},
		{name: "info level", level: "info", want: zerolog.InfoLevel},
		{name: "warn level", level: "warn", want: zerolog.WarnLevel},
		{name: "error level", level: "error", want: zerolog.ErrorLevel},
		{name: "invalid level defaults to info", level: "invalid", want: zerolog.InfoLevel},
		{name: "pretty output", level: "info", pretty: true, want: zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Init(tt.level, tt.pretty)
			assert.Equal(t, tt.want, zerolog.GlobalLevel())
			assert.Equal(t, tt.want, Logger().GetLevel())
		})
	}
	zerolog.SetGlobalLevel(zerolog.TraceLevel)
}

func TestNew(t *testing.T) {
	t.Run("json output", func(t *testing.T) {
		var buf bytes.Buffer
		l := New(&buf, "info", false)

		l.Debug().Msg("hidden")
		l.Info().Str("from", "en").Msg("visible")

		assert.NotContains(t, buf.String(), "hidden")
		assert.Contains(t, buf.String(), `"from":"en"`)
		assert.Contains(t, buf.String(), `"message":"visible"`)
	})

	t.Run("pretty output", func(t *testing.T) {
		var buf bytes.Buffer
		l := New(&buf, "debug", true)

		l.Debug().Msg("console")

		assert.Contains(t, buf.String(), "console")
		assert.NotContains(t, buf.String(), `"message"`)
	})
}
