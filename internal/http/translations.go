package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const defaultLanguage = "ru"

type TranslationsController struct {
	store TranslationStore
}

func NewTranslationsController(store TranslationStore) *TranslationsController {
	return &TranslationsController{store: store}
}

// GetTranslations returns the key/value strings of the language named first in
// Accept-Language.
func (tc *TranslationsController) GetTranslations(c *gin.Context) {
	translations, err := tc.store.GetTranslations(c.Request.Context(), preferredLanguage(c.GetHeader("Accept-Language")))
	if err != nil {
		respondInternalError(c, err, "get translations")
		return
	}
	c.JSON(http.StatusOK, translations)
}

// preferredLanguage takes "en-US,en;q=0.9" to "en-US". Quality values are not
// weighed; the first entry wins.
func preferredLanguage(header string) string {
	first, _, _ := strings.Cut(header, ",")
	first, _, _ = strings.Cut(first, ";")
	if first = strings.TrimSpace(first); first == "" || first == "*" {
		return defaultLanguage
	}
	return first
}
