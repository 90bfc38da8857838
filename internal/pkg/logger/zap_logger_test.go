package logger

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newObservedLogger() (*ZapLogger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := zap.New(core)
	return &ZapLogger{Logger: l, sugar: l.Sugar()}, logs
}

func TestNewZapLogger_WithFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "auth.log")

	zl, err := NewZapLogger(ZapConfig{Level: "debug", FilePath: path})
	require.NoError(t, err)
	defer zl.Close()

	assert.Equal(t, path, zl.filePath)
	assert.NotNil(t, zl.file)
	assert.NotNil(t, zl.Sugar())
}

func TestNewZapLogger_InvalidLevelFallsBackToInfo(t *testing.T) {
	zl, err := NewZapLogger(ZapConfig{Level: "loud"})
	require.NoError(t, err)

	assert.False(t, zl.Core().Enabled(zapcore.DebugLevel))
	assert.True(t, zl.Core().Enabled(zapcore.InfoLevel))
}

func TestLogHTTPRequest_Levels(t *testing.T) {
	tests := []struct {
		name          string
		status        int
		err           error
		expectedLevel zapcore.Level
		expectedMsg   string
	}{
		{name: "Success", status: http.StatusOK, expectedLevel: zapcore.InfoLevel, expectedMsg: "Request processed"},
		{name: "Client error", status: http.StatusUnauthorized, expectedLevel: zapcore.WarnLevel, expectedMsg: "Client error"},
		{name: "Server error", status: http.StatusBadGateway, err: errors.New("sms down"), expectedLevel: zapcore.ErrorLevel, expectedMsg: "Server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			zl, logs := newObservedLogger()

			zl.LogHTTPRequest(http.MethodPost, "/auth/send-code", "127.0.0.1", "anonymous", "req-1", tt.status, 5*time.Millisecond, tt.err)

			require.Equal(t, 1, logs.Len())
			entry := logs.All()[0]
			assert.Equal(t, tt.expectedLevel, entry.Level)
			assert.Equal(t, tt.expectedMsg, entry.Message)
			assert.Equal(t, int64(tt.status), entry.ContextMap()["status"])
			assert.Equal(t, "req-1", entry.ContextMap()["request_id"])
		})
	}
}

func TestZapEchoMiddleware(t *testing.T) {
	zl, logs := newObservedLogger()

	e := echo.New()
	e.Use(ZapEchoMiddleware(zl))
	e.GET("/auth/profile", func(c echo.Context) error {
		c.Set("account_id", "acc-1")
		return echo.NewHTTPError(http.StatusUnauthorized, "nope")
	})

	req := httptest.NewRequest(http.MethodGet, "/auth/profile?x=1", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, "acc-1", fields["account_id"])
	assert.Equal(t, "/auth/profile?x=1", fields["path"])
	assert.Equal(t, int64(http.StatusUnauthorized), fields["status"])
}

func TestGlobalLogger(t *testing.T) {
	zl, logs := newObservedLogger()
	SetGlobalLogger(zl)
	defer SetGlobalLogger(nil)

	Info("hello", String("k", "v"))
	Warn("careful")

	assert.Equal(t, 2, logs.Len())
	assert.Same(t, zl, GetGlobalLogger())
}
