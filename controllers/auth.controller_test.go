package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"securecam-backend/catalog"
	"securecam-backend/config"
)

func TestRegisterDuplicateInsertAnswersConflict(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	// A concurrent registration can slip past the existence check; the unique
	// index then fails the insert, which must still read as a conflict.
	mt.Run("duplicate key on insert", func(mt *mtest.T) {
		ns := mt.DB.Name() + "." + catalog.CollAdmins
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, ns, mtest.FirstBatch),
			mtest.CreateWriteErrorsResponse(mtest.WriteError{
				Index:   0,
				Code:    11000,
				Message: "E11000 duplicate key error",
			}),
		)

		ctrl := mockController(mt, &config.AppConfig{AdminPrincipals: []string{"admin"}})
		r := gin.New()
		r.POST("/api/register", ctrl.Register)

		body := `{"username":"admin","password":"hunter22"}`
		req := httptest.NewRequest(http.MethodPost, "/api/register", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(mt, http.StatusConflict, w.Code)
		assert.Contains(mt, w.Body.String(), "already exists")
	})
}
