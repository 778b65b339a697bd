package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/playday-app/playday-backend/api"
	mock_api "github.com/playday-app/playday-backend/api/mocks"
	"github.com/playday-app/playday-backend/auth"
	fd "github.com/playday-app/playday-backend/field"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func setIdentityInContext(ident auth.Identity) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("identity", ident)
		c.Next()
	}
}

func setupFieldRouter(t *testing.T) (*gin.Engine, *gomock.Controller, *mock_api.MockFieldService) {
	t.Helper()
	ctrl := gomock.NewController(t)

	gin.SetMode(gin.TestMode)
	router := gin.Default()
	mockService := mock_api.NewMockFieldService(ctrl)
	handler := api.NewFieldHandler(mockService)
	handler.Register(router.Group("/api/v1/fields"))

	return router, ctrl, mockService
}

func TestListFields(t *testing.T) {

	t.Run("success", func(t *testing.T) {
		router, ctrl, mockService := setupFieldRouter(t)
		defer ctrl.Finish()

		lat, lng := 47.3769, 8.5417
		fields := []fd.Field{
			{ID: "f-1", FieldName: "Arena One", Location: "Zurich", Price: 10, Lat: &lat, Lng: &lng},
			{ID: "f-2", FieldName: "Court Two", Location: "Bern", Price: 15},
		}

		fieldsJson, _ := json.MarshalIndent(fields, "", "    ")
		mockService.EXPECT().List(gomock.Any()).Return(fields, nil).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/fields", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 200, w.Code)
		assert.JSONEq(t, string(fieldsJson), w.Body.String())
	})

	t.Run("error", func(t *testing.T) {
		router, ctrl, mockService := setupFieldRouter(t)
		defer ctrl.Finish()

		mockService.EXPECT().List(gomock.Any()).Return(nil, assert.AnError).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/fields", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 500, w.Code)
		assert.JSONEq(t, `{"error":"failed to retrieve fields"}`, w.Body.String())
	})
}
