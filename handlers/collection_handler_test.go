package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"references-archive/models"
	"references-archive/services"
)

type stubCollectionService struct {
	services.CollectionService
	deleteErr error
}

func (s *stubCollectionService) DeleteCollection(id string) (string, error) {
	return "", s.deleteErr
}

func TestCreateCollectionMissingName(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewCollectionHandler(nil)

	router := gin.New()
	router.POST("/collections", h.CreateCollection)

	req := httptest.NewRequest("POST", "/collections", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Code        int                 `json:"code"`
		CodeType    string              `json:"code_type"`
		CodeMessage map[string][]string `json:"code_message"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 422, resp.Code)
	assert.Equal(t, "validationError", resp.CodeType)
	assert.Contains(t, resp.CodeMessage, "name")
	assert.NotEmpty(t, resp.CodeMessage["name"])
}

func TestDeleteCollectionStateError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewCollectionHandler(&stubCollectionService{
		deleteErr: models.ErrorState{Message: "no collections remain to scope the view"},
	})

	router := gin.New()
	router.DELETE("/collections/:id", h.DeleteCollection)

	req := httptest.NewRequest("DELETE", "/collections/1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var resp struct {
		Code     int    `json:"code"`
		CodeType string `json:"code_type"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 500, resp.Code)
	assert.Equal(t, "internalServerError", resp.CodeType)
}
