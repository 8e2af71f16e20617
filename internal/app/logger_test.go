package app

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/ikedadada/start-ddd-and-clean-architecture/internal/config"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {
	t.Run("json with level", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewLogger(config.LogConfig{Level: "warn", Format: "json"}, &buf)

		logger.Info("hidden")
		logger.Warn("shown", "todo", "abc")

		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		require.Len(t, lines, 1)
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
		assert.Equal(t, "shown", entry["msg"])
		assert.Equal(t, "abc", entry["todo"])
	})

	t.Run("unknown level falls back to info", func(t *testing.T) {
		logger := NewLogger(config.LogConfig{Level: "chatty", Format: "text"}, &bytes.Buffer{})
		assert.Equal(t, log.InfoLevel, logger.GetLevel())
	})
}

func TestRecoveryAndRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(config.LogConfig{Level: "info", Format: "logfmt"}, &buf)

	r := gin.New()
	r.Use(requestLogger(logger), recovery(logger))
	r.GET("/boom", func(*gin.Context) { panic("domain: todo title is required") })

	rec := call(t, r, http.MethodGet, "/boom", "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"internal server error"}`, rec.Body.String())
	assert.Contains(t, buf.String(), "panic recovered")
	assert.Contains(t, buf.String(), "status=500")
}
