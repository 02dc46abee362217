package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/o1egl/paseto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"securecam-backend/config"
)

var testSecret = []byte("0123456789abcdef0123456789abcdef")

func testRouter(cfg *config.AppConfig) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.DELETE("/api/categories/:slug", RequireAdmin(cfg), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"admin": c.GetString(ContextUsername)})
	})
	return r
}

func testConfig() *config.AppConfig {
	return &config.AppConfig{
		PasetoSecretKey: testSecret,
		AdminPrincipals: []string{"admin"},
	}
}

func doDelete(r *gin.Engine, setup func(*http.Request)) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodDelete, "/api/categories/dome-cameras", nil)
	if setup != nil {
		setup(req)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequireAdminAcceptsCookieToken(t *testing.T) {
	cfg := testConfig()
	token, err := IssueToken(cfg.PasetoSecretKey, "64f1a2b3c4d5e6f708192a3b", "admin")
	require.NoError(t, err)

	w := doDelete(testRouter(cfg), func(req *http.Request) {
		req.AddCookie(&http.Cookie{Name: CookieName, Value: token})
	})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"admin"`)
}

func TestRequireAdminAcceptsBearerFallback(t *testing.T) {
	cfg := testConfig()
	token, err := IssueToken(cfg.PasetoSecretKey, "64f1a2b3c4d5e6f708192a3b", "admin")
	require.NoError(t, err)

	w := doDelete(testRouter(cfg), func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer "+token)
	})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireAdminUniform401(t *testing.T) {
	cfg := testConfig()
	r := testRouter(cfg)

	expired := func() string {
		now := time.Now().Add(-48 * time.Hour)
		jsonToken := paseto.JSONToken{Subject: "x", IssuedAt: now, Expiration: now.Add(tokenTTL)}
		jsonToken.Set("username", "admin")
		token, err := paseto.NewV2().Encrypt(testSecret, jsonToken, tokenFooter)
		require.NoError(t, err)
		return token
	}()
	stranger, err := IssueToken(testSecret, "64f1a2b3c4d5e6f708192a3b", "intruder")
	require.NoError(t, err)

	cases := map[string]func(*http.Request){
		"no token":          nil,
		"garbage token":     func(req *http.Request) { req.AddCookie(&http.Cookie{Name: CookieName, Value: "v2.local.garbage"}) },
		"expired token":     func(req *http.Request) { req.AddCookie(&http.Cookie{Name: CookieName, Value: expired}) },
		"unknown principal": func(req *http.Request) { req.AddCookie(&http.Cookie{Name: CookieName, Value: stranger}) },
	}
	for name, setup := range cases {
		w := doDelete(r, setup)
		assert.Equal(t, http.StatusUnauthorized, w.Code, name)
		assert.JSONEq(t, `{"error":"Authentication required"}`, w.Body.String(), name)
	}
}

func TestVerifyTokenRoundTrip(t *testing.T) {
	token, err := IssueToken(testSecret, "64f1a2b3c4d5e6f708192a3b", "webmaster")
	require.NoError(t, err)

	username, err := VerifyToken(testSecret, token)
	require.NoError(t, err)
	assert.Equal(t, "webmaster", username)

	_, err = VerifyToken([]byte("ffffffffffffffffffffffffffffffff"), token)
	assert.Error(t, err)
}
