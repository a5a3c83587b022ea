package logging

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Backends(t *testing.T) {
	for _, backend := range []string{"slog", "zap"} {
		t.Run(backend, func(t *testing.T) {
			var buf bytes.Buffer
			log, sync, err := New(backend, "info", &buf)
			require.NoError(t, err)

			log.Debug(context.Background(), "hidden")
			log.With("user", "alice").Info(context.Background(), "registration accepted", "window", "w-1")
			require.NoError(t, sync())

			out := buf.String()
			assert.Contains(t, out, "registration accepted")
			assert.Contains(t, out, "alice")
			assert.Contains(t, out, "w-1")
			assert.NotContains(t, out, "hidden", "debug is below info")
		})
	}
}

func TestNew_Errors(t *testing.T) {
	_, _, err := New("logrus", "info", &bytes.Buffer{})
	require.Error(t, err)

	_, _, err = New("slog", "chatty", &bytes.Buffer{})
	require.Error(t, err)

	_, _, err = New("zap", "chatty", &bytes.Buffer{})
	require.Error(t, err)
}

func TestNop(t *testing.T) {
	log := Nop()
	log.Error(context.Background(), "dropped")
	log.With("a", 1).Info(context.Background(), "dropped too")
}
