package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"backoffice/internal/i18n"
	"backoffice/internal/kvstore"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func languageRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewLanguageHandler(kvstore.New(db))
	r := gin.New()
	r.GET("/language", h.Get)
	r.PUT("/language", h.Set)
	r.GET("/translations/:lang", h.Translations)
	return r
}

func currentLanguage(t *testing.T, r *gin.Engine) string {
	t.Helper()
	w := doJSON(t, r, "GET", "/language", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var envelope struct {
		Data struct {
			Language string `json:"language"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	return envelope.Data.Language
}

func TestLanguage_DefaultAndToggle(t *testing.T) {
	db := setupTestDB(t)
	r := languageRouter(db)

	assert.Equal(t, i18n.Default, currentLanguage(t, r))

	w := doJSON(t, r, "PUT", "/language", gin.H{"language": "th"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "th", currentLanguage(t, r))

	w = doJSON(t, r, "PUT", "/language", gin.H{"language": "fr"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "th", currentLanguage(t, r))
}

func TestTranslations(t *testing.T) {
	db := setupTestDB(t)
	r := languageRouter(db)

	w := doJSON(t, r, "GET", "/translations/th", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var envelope struct {
		Data struct {
			Language     string            `json:"language"`
			Translations map[string]string `json:"translations"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Equal(t, "th", envelope.Data.Language)
	assert.NotEmpty(t, envelope.Data.Translations["nav.dashboard"])

	w = doJSON(t, r, "GET", "/translations/de", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
