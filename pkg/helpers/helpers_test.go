package helpers

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("use-the-force")
	require.NoError(t, err)
	assert.NotEqual(t, "use-the-force", hash)
	assert.True(t, PasswordMatches(hash, "use-the-force"))
	assert.False(t, PasswordMatches(hash, "use-the-dark-side"))

	_, err = HashPassword(strings.Repeat("x", MaxPasswordBytes+1))
	assert.ErrorIs(t, err, ErrPasswordTooLong)
}

func TestLogErrorAddsErrorField(t *testing.T) {
	var buf bytes.Buffer
	logger := logrus.New()
	logger.SetOutput(&buf)
	logger.SetFormatter(&logrus.JSONFormatter{})

	LogError(logger, "request failed", errors.New("boom"), logrus.Fields{"path": "/users"})

	out := buf.String()
	assert.Contains(t, out, `"error":"boom"`)
	assert.Contains(t, out, `"path":"/users"`)
	assert.Contains(t, out, `"msg":"request failed"`)
}

func TestNewLoggerLevels(t *testing.T) {
	assert.Equal(t, logrus.DebugLevel, NewLogger("test", "development", "").GetLevel())
	assert.Equal(t, logrus.WarnLevel, NewLogger("test", "development", "warn").GetLevel())
	assert.Equal(t, logrus.InfoLevel, NewLogger("test", "production", "loud").GetLevel())
	prod := NewLogger("test", "production", "")
	assert.Equal(t, logrus.InfoLevel, prod.GetLevel())
	_, ok := prod.Formatter.(*logrus.JSONFormatter)
	assert.True(t, ok)
}
