package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"backoffice/internal/middleware"
	"backoffice/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const testJWTSecret = "test-secret"

func doRequest(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func seedTestUser(t *testing.T, db *gorm.DB, username, password, status string) models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	user := models.User{
		Username:     username,
		Email:        username + "@company.com",
		PasswordHash: string(hash),
		Role:         "Operator",
		Status:       status,
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func authRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewAuthHandler(db, testJWTSecret, 1)
	r := gin.New()
	r.POST("/auth/login", h.Login)

	protected := r.Group("")
	protected.Use(middleware.AuthMiddleware(testJWTSecret, db))
	protected.POST("/auth/logout", h.Logout)
	protected.GET("/me", NewUserHandler(db, bcrypt.MinCost).Me)
	return r
}

func loginToken(t *testing.T, r *gin.Engine, username, password string) string {
	t.Helper()
	w := doJSON(t, r, "POST", "/auth/login", gin.H{
		"username": username,
		"password": password,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var envelope struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	require.NotEmpty(t, envelope.Data.Token)
	return envelope.Data.Token
}

func TestLogin(t *testing.T) {
	db := setupTestDB(t)
	seedTestUser(t, db, "admin", "secret123", "active")
	r := authRouter(db)

	t.Run("success", func(t *testing.T) {
		token := loginToken(t, r, "admin", "secret123")

		req, _ := http.NewRequest("GET", "/me", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := doRequest(r, req)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "admin")
	})

	t.Run("username is case-insensitive", func(t *testing.T) {
		loginToken(t, r, "ADMIN", "secret123")
	})

	t.Run("wrong password", func(t *testing.T) {
		w := doJSON(t, r, "POST", "/auth/login", gin.H{
			"username": "admin",
			"password": "nope",
		})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("unknown user", func(t *testing.T) {
		w := doJSON(t, r, "POST", "/auth/login", gin.H{
			"username": "ghost",
			"password": "secret123",
		})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestLogin_InactiveAccount(t *testing.T) {
	db := setupTestDB(t)
	seedTestUser(t, db, "operator1", "secret123", "inactive")
	r := authRouter(db)

	w := doJSON(t, r, "POST", "/auth/login", gin.H{
		"username": "operator1",
		"password": "secret123",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLogin_LockoutAfterFiveFailures(t *testing.T) {
	db := setupTestDB(t)
	seedTestUser(t, db, "admin", "secret123", "active")
	r := authRouter(db)

	for i := 0; i < 5; i++ {
		w := doJSON(t, r, "POST", "/auth/login", gin.H{
			"username": "admin",
			"password": "nope",
		})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	}

	// even the right password is refused while locked
	w := doJSON(t, r, "POST", "/auth/login", gin.H{
		"username": "admin",
		"password": "secret123",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "locked")
}

func TestLogout_RevokesSession(t *testing.T) {
	db := setupTestDB(t)
	seedTestUser(t, db, "admin", "secret123", "active")
	r := authRouter(db)

	token := loginToken(t, r, "admin", "secret123")

	req, _ := http.NewRequest("POST", "/auth/logout", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := doRequest(r, req)
	require.Equal(t, http.StatusOK, w.Code)

	// the old token no longer passes the session check
	req, _ = http.NewRequest("GET", "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w = doRequest(r, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_RejectsMissingAndBogusTokens(t *testing.T) {
	db := setupTestDB(t)
	r := authRouter(db)

	req, _ := http.NewRequest("GET", "/me", nil)
	w := doRequest(r, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	req, _ = http.NewRequest("GET", "/me", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	w = doRequest(r, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
