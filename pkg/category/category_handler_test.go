package category

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/daywheel/daywheel/internal/event_bus"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupCategoryHandlerTest() (*mux.Router, *StubCategoryRepo) {
	repo := NewStubCategoryRepo()
	handler := NewCategoryHandler(NewCategoryService(repo, event_bus.NewEventBus()))

	router := mux.NewRouter()
	router.HandleFunc("/api/users/{userId:[0-9]+}/categories", handler.GetAll).Methods("GET")
	router.HandleFunc("/api/categories", handler.Create).Methods("POST")
	router.HandleFunc("/api/categories/{id:[0-9]+}", handler.Update).Methods("PUT")
	router.HandleFunc("/api/categories/{id:[0-9]+}", handler.Delete).Methods("DELETE")
	return router, repo
}

func TestCategoryHandler_Create(t *testing.T) {
	router, _ := setupCategoryHandlerTest()

	req := httptest.NewRequest("POST", "/api/categories",
		bytes.NewBufferString(`{"userId":1,"name":"Work","color":"#4A90E2","description":"billable"}`))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	require.Equal(t, http.StatusCreated, resp.Code)
	var created CategoryDTO
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &created))
	assert.Equal(t, 1, created.ID)
	assert.Equal(t, "Work", created.Name)
	require.NotNil(t, created.Description)
	assert.Equal(t, "billable", *created.Description)
}

func TestCategoryHandler_CreateRequiresNameAndColor(t *testing.T) {
	router, _ := setupCategoryHandlerTest()

	for _, body := range []string{
		`{"userId":1,"color":"#4A90E2"}`,
		`{"userId":1,"name":"Work"}`,
	} {
		req := httptest.NewRequest("POST", "/api/categories", bytes.NewBufferString(body))
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)

		assert.Equal(t, http.StatusBadRequest, resp.Code)
	}
}

func TestCategoryHandler_GetAll(t *testing.T) {
	router, repo := setupCategoryHandlerTest()
	_, err := repo.Store(context.Background(), Category{UserID: 1, Name: "Work", Color: "#4A90E2"})
	require.NoError(t, err)
	_, err = repo.Store(context.Background(), Category{UserID: 2, Name: "Sleep", Color: "#9B59B6"})
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/api/users/1/categories", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	require.Equal(t, http.StatusOK, resp.Code)
	var categories []CategoryDTO
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &categories))
	require.Len(t, categories, 1)
	assert.Equal(t, "Work", categories[0].Name)
}

func TestCategoryHandler_Update(t *testing.T) {
	router, repo := setupCategoryHandlerTest()
	id, err := repo.Store(context.Background(), Category{UserID: 1, Name: "Work", Color: "#4A90E2"})
	require.NoError(t, err)

	req := httptest.NewRequest("PUT", "/api/categories/1",
		bytes.NewBufferString(`{"name":"Deep Work","color":"#000000"}`))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	require.Equal(t, http.StatusOK, resp.Code)
	stored, err := repo.GetById(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "Deep Work", stored.Name)
	assert.Equal(t, 1, stored.UserID)
}

func TestCategoryHandler_UpdateNotFound(t *testing.T) {
	router, _ := setupCategoryHandlerTest()

	req := httptest.NewRequest("PUT", "/api/categories/42",
		bytes.NewBufferString(`{"name":"Ghost","color":"#FFFFFF"}`))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestCategoryHandler_Delete(t *testing.T) {
	router, repo := setupCategoryHandlerTest()
	_, err := repo.Store(context.Background(), Category{UserID: 1, Name: "Work", Color: "#4A90E2"})
	require.NoError(t, err)

	req := httptest.NewRequest("DELETE", "/api/categories/1", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusNoContent, resp.Code)
}

func TestCategoryHandler_DeleteInUse(t *testing.T) {
	router, repo := setupCategoryHandlerTest()
	id, err := repo.Store(context.Background(), Category{UserID: 1, Name: "Work", Color: "#4A90E2"})
	require.NoError(t, err)
	repo.InUse[id] = true

	req := httptest.NewRequest("DELETE", "/api/categories/1", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Contains(t, resp.Body.String(), "in use")
}
