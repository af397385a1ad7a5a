package logger

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	t.Run("creates console logger", func(t *testing.T) {
		log, err := New(&Config{Level: "debug", Format: "console", Output: "stdout"})
		require.NoError(t, err)
		assert.True(t, log.Core().Enabled(zapcore.DebugLevel))
	})

	t.Run("creates json logger", func(t *testing.T) {
		log, err := New(&Config{Level: "warn", Format: "json", Output: "stderr"})
		require.NoError(t, err)
		assert.False(t, log.Core().Enabled(zapcore.InfoLevel))
		assert.True(t, log.Core().Enabled(zapcore.WarnLevel))
	})

	t.Run("unknown level defaults to info", func(t *testing.T) {
		log, err := New(&Config{Level: "loud", Format: "json", Output: "stdout"})
		require.NoError(t, err)
		assert.True(t, log.Core().Enabled(zapcore.InfoLevel))
		assert.False(t, log.Core().Enabled(zapcore.DebugLevel))
	})
}

func TestRecovery(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(Recovery(zap.NewNop()))
	router.GET("/panic", func(c *gin.Context) {
		panic("boom")
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/panic", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestFromGin(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("returns stored logger", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		stored := zap.NewNop()
		c.Set("logger", stored)
		assert.Same(t, stored, FromGin(c))
	})

	t.Run("returns nop logger when missing", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		assert.NotNil(t, FromGin(c))
	})
}
