package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/linguacrm/internal/bootstrap"
	"github.com/yigit/linguacrm/internal/config"
)

func writeConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
jwt:
  secret: token-test-secret
  access_token_expiration: 15m
  issuer: linguacrm.test
`), 0o600))
	t.Setenv("JWT_SECRET", "token-test-secret")
	return path
}

func TestRun_IssuesVerifiableToken(t *testing.T) {
	path := writeConfig(t)
	user := uuid.New()

	var out bytes.Buffer
	require.NoError(t, run([]string{"-config", path, "-user", user.String(), "-email", "ops@school.vn", "-role", "staff"}, &out))

	cfg, err := config.LoadConfig(path)
	require.NoError(t, err)
	claims, err := bootstrap.NewJWTService(cfg).ValidateAndExtractClaims(strings.TrimSpace(out.String()))
	require.NoError(t, err)
	assert.Equal(t, user.String(), claims.UserID)
	assert.Equal(t, "STAFF", claims.Role)
	assert.Equal(t, "linguacrm.test", claims.Issuer)
	assert.Equal(t, 15*60.0, claims.ExpiresAt.Sub(claims.IssuedAt.Time).Seconds())
}

func TestRun_RejectsBadFlags(t *testing.T) {
	path := writeConfig(t)
	var out bytes.Buffer

	assert.ErrorContains(t, run([]string{"-config", path, "-role", "OWNER"}, &out), "unknown role")
	assert.ErrorContains(t, run([]string{"-config", path, "-user", "u1"}, &out), "invalid user ID")
	assert.Empty(t, out.String())
}
