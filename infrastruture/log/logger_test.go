package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger(t *testing.T) {
	t.Run("writes prefixed records", func(t *testing.T) {
		var buf bytes.Buffer
		l, err := New("SOLVER", "", &buf)
		require.NoError(t, err)

		l.Info("maze solved", "explored", 7)
		l.Warning("slow solve")
		l.Error("solve failed")

		out := buf.String()
		assert.Contains(t, out, "level=INFO")
		assert.Contains(t, out, "level=WARN")
		assert.Contains(t, out, "level=ERROR")
		for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
			assert.True(t, strings.HasPrefix(line, "[SOLVER] time="), line)
		}
		assert.Contains(t, out, "explored=7")
		assert.Equal(t, "SOLVER", l.Prefix())
	})

	t.Run("colored prefix is written raw", func(t *testing.T) {
		var buf bytes.Buffer
		l, err := New("APP", "\033[32m", &buf)
		require.NoError(t, err)

		l.Info("hello")

		out := buf.String()
		assert.True(t, strings.HasPrefix(out, "\033[32m[APP]\033[0m time="), out)
		assert.NotContains(t, out, `\x1b`)
		assert.Contains(t, out, "msg=hello")
	})

	t.Run("requires prefix and writer", func(t *testing.T) {
		_, err := New(" ", "", &bytes.Buffer{})
		assert.Error(t, err)

		_, err = New("APP", "", nil)
		assert.Error(t, err)
	})
}
