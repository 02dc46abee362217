package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"securecam-backend/config"
	"securecam-backend/controllers"
)

func testEngine() http.Handler {
	cfg := &config.AppConfig{
		Env:             "test",
		PasetoSecretKey: []byte("0123456789abcdef0123456789abcdef"),
		AdminPrincipals: []string{"admin"},
		UploadDir:       "static/uploads",
	}
	ctrl := controllers.New(nil, nil, cfg, zap.NewNop().Sugar())
	return Setup(ctrl, cfg)
}

func TestUnknownEndpointAnswers404(t *testing.T) {
	r := testEngine()
	req := httptest.NewRequest(http.MethodGet, "/api/nope", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Endpoint not found"}`, w.Body.String())
}

func TestMutatingRoutesRequireToken(t *testing.T) {
	r := testEngine()
	requests := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/navbar-categories"},
		{http.MethodPut, "/api/navbar-categories/cameras"},
		{http.MethodDelete, "/api/navbar-categories/cameras"},
		{http.MethodPost, "/api/categories"},
		{http.MethodPut, "/api/categories/dome-cameras"},
		{http.MethodDelete, "/api/categories/dome-cameras"},
		{http.MethodPost, "/api/subcategories"},
		{http.MethodDelete, "/api/subcategories/indoor-domes"},
		{http.MethodPost, "/api/products"},
		{http.MethodPut, "/api/products/64f1a2b3c4d5e6f708192a3b"},
		{http.MethodDelete, "/api/products/64f1a2b3c4d5e6f708192a3b"},
		{http.MethodPost, "/api/upload"},
	}
	for _, tc := range requests {
		req := httptest.NewRequest(tc.method, tc.path, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		// The middleware rejects before any handler (or database) is touched.
		assert.Equal(t, http.StatusUnauthorized, w.Code, "%s %s", tc.method, tc.path)
		assert.JSONEq(t, `{"error":"Authentication required"}`, w.Body.String(), "%s %s", tc.method, tc.path)
	}
}
