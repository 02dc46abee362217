package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("SOME_TEST_KEY", "value")
	assert.Equal(t, "value", getEnv("SOME_TEST_KEY", "fallback"))
	assert.Equal(t, "fallback", getEnv("SOME_MISSING_KEY", "fallback"))
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"admin"}, splitList("admin"))
	assert.Equal(t, []string{"a", "b", "c"}, splitList(" a, b ,c "))
	assert.Nil(t, splitList(""))
	assert.Nil(t, splitList(" , ,"))
}

func TestIsAdminPrincipal(t *testing.T) {
	cfg := &AppConfig{AdminPrincipals: []string{"admin", "webmaster"}}
	assert.True(t, cfg.IsAdminPrincipal("admin"))
	assert.True(t, cfg.IsAdminPrincipal("webmaster"))
	assert.False(t, cfg.IsAdminPrincipal("Admin"))
	assert.False(t, cfg.IsAdminPrincipal(""))
}
