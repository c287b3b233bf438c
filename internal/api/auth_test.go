package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cravefit/backend/internal/service"
	"github.com/cravefit/backend/internal/testhelpers"
)

func setupAuthRouter(t *testing.T) (*gin.Engine, *service.AuthService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testhelpers.SetupTestDatabase(t)
	auth := service.NewAuthService(db, "test-secret")

	router := gin.New()
	NewAuthHandler(auth).RegisterRoutes(router.Group("/api/v1"))
	return router, auth
}

func postJSON(router *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	raw, _ := json.Marshal(body)
	req, _ := http.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAuthHandler_RegisterAndLogin(t *testing.T) {
	router, auth := setupAuthRouter(t)

	w := postJSON(router, "/api/v1/auth/register", gin.H{
		"name": "Ada", "email": "ada@example.com", "password": "password123",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	claims, err := auth.ValidateToken(resp["token"])
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", claims.Email)

	w = postJSON(router, "/api/v1/auth/login", gin.H{
		"email": "ada@example.com", "password": "password123",
	})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthHandler_DuplicateRegister(t *testing.T) {
	router, _ := setupAuthRouter(t)

	body := gin.H{"name": "Ada", "email": "ada@example.com", "password": "password123"}
	require.Equal(t, http.StatusCreated, postJSON(router, "/api/v1/auth/register", body).Code)
	assert.Equal(t, http.StatusConflict, postJSON(router, "/api/v1/auth/register", body).Code)
}

func TestAuthHandler_ValidationErrors(t *testing.T) {
	router, _ := setupAuthRouter(t)

	// Short password
	w := postJSON(router, "/api/v1/auth/register", gin.H{
		"name": "Ada", "email": "ada@example.com", "password": "short",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Not an email
	w = postJSON(router, "/api/v1/auth/register", gin.H{
		"name": "Ada", "email": "not-an-email", "password": "password123",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAuthHandler_BadLogin(t *testing.T) {
	router, _ := setupAuthRouter(t)

	w := postJSON(router, "/api/v1/auth/login", gin.H{
		"email": "nobody@example.com", "password": "password123",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
