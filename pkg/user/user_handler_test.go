package user

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupUserHandlerTest() *mux.Router {
	service := NewUserService(NewStubUserRepo(), &stubCategoryCreator{})
	handler := NewHandler(service)

	router := mux.NewRouter()
	router.HandleFunc("/api/users", handler.CreateUser).Methods("POST")
	router.HandleFunc("/api/users/{nickname}", handler.GetUserByNickname).Methods("GET")
	router.HandleFunc("/api/user/{id:[0-9]+}", handler.GetUser).Methods("GET")
	return router
}

func createUserRequest(t *testing.T, router *mux.Router, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("POST", "/api/users", bytes.NewBufferString(body))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestHandler_CreateUser(t *testing.T) {
	router := setupUserHandlerTest()

	resp := createUserRequest(t, router, `{"nickname":"ada","displayName":"Ada Lovelace"}`)

	require.Equal(t, http.StatusCreated, resp.Code)
	var created UserDTO
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &created))
	assert.Equal(t, 1, created.Id)
	assert.NotEmpty(t, created.Uid)
	assert.Equal(t, "ada", created.Nickname)
	assert.Equal(t, "Ada Lovelace", created.DisplayName)
}

func TestHandler_CreateUserRequiresNickname(t *testing.T) {
	router := setupUserHandlerTest()

	resp := createUserRequest(t, router, `{"displayName":"Nobody"}`)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestHandler_CreateUserMalformedBody(t *testing.T) {
	router := setupUserHandlerTest()

	resp := createUserRequest(t, router, `{"nickname":`)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestHandler_CreateUserNicknameConflict(t *testing.T) {
	router := setupUserHandlerTest()
	require.Equal(t, http.StatusCreated, createUserRequest(t, router, `{"nickname":"ada"}`).Code)

	resp := createUserRequest(t, router, `{"nickname":"ada"}`)

	assert.Equal(t, http.StatusConflict, resp.Code)
}

func TestHandler_GetUserByNickname(t *testing.T) {
	router := setupUserHandlerTest()
	require.Equal(t, http.StatusCreated, createUserRequest(t, router, `{"nickname":"ada lovelace"}`).Code)

	req := httptest.NewRequest("GET", "/api/users/ada%20lovelace", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	require.Equal(t, http.StatusOK, resp.Code)
	var found UserDTO
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &found))
	assert.Equal(t, "ada lovelace", found.Nickname)
}

func TestHandler_GetUserByNicknameNotFound(t *testing.T) {
	router := setupUserHandlerTest()

	req := httptest.NewRequest("GET", "/api/users/grace", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestHandler_GetUser(t *testing.T) {
	router := setupUserHandlerTest()
	require.Equal(t, http.StatusCreated, createUserRequest(t, router, `{"nickname":"ada"}`).Code)

	req := httptest.NewRequest("GET", "/api/user/1", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	require.Equal(t, http.StatusOK, resp.Code)
	var found UserDTO
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &found))
	assert.Equal(t, 1, found.Id)
	assert.Equal(t, "ada", found.Nickname)
}

func TestHandler_GetUserNotFound(t *testing.T) {
	router := setupUserHandlerTest()

	req := httptest.NewRequest("GET", "/api/user/42", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusNotFound, resp.Code)
}
