package handler

import (
	"net/http"

	"backoffice/internal/i18n"
	"backoffice/internal/kvstore"
	"backoffice/internal/util"

	"github.com/gin-gonic/gin"
)

// LanguageKey is the kvstore key holding the chosen UI language.
const LanguageKey = "language"

// LanguageHandler serves the language toggle and the translation
// tables the UI renders from.
type LanguageHandler struct {
	KV *kvstore.Store
}

func NewLanguageHandler(kv *kvstore.Store) *LanguageHandler {
	return &LanguageHandler{KV: kv}
}

// Get returns the stored language, or the default when none has been
// chosen or the stored value is no longer supported.
func (h *LanguageHandler) Get(c *gin.Context) {
	lang, ok, err := h.KV.Get(LanguageKey)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "query failed")
		return
	}
	if !ok || !i18n.Supported(lang) {
		lang = i18n.Default
	}
	util.Success(c, util.Response{
		"language": lang,
	})
}

type setLanguageReq struct {
	Language string `json:"language" binding:"required"`
}

func (h *LanguageHandler) Set(c *gin.Context) {
	var req setLanguageReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request")
		return
	}
	if !i18n.Supported(req.Language) {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "unsupported language")
		return
	}

	if err := h.KV.Set(LanguageKey, req.Language); err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "save failed, please retry")
		return
	}

	util.Success(c, util.Response{
		"language": req.Language,
	})
}

// Translations returns the full key-to-string table for a language.
func (h *LanguageHandler) Translations(c *gin.Context) {
	lang := c.Param("lang")
	if !i18n.Supported(lang) {
		util.Error(c, http.StatusNotFound, util.CodeNotFound, "unsupported language")
		return
	}
	util.Success(c, util.Response{
		"language":     lang,
		"translations": i18n.Table(lang),
	})
}
