// internal/middleware/i18n.go
package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/javajoker/listing-discovery/internal/i18n"
)

// I18nMiddleware picks the response language from a "lang" query parameter
// or Accept-Language, falling back to defaultLang.
func I18nMiddleware(defaultLang string) gin.HandlerFunc {
	if defaultLang == "" {
		defaultLang = "en"
	}
	return func(c *gin.Context) {
		lang := defaultLang
		if q := c.Query("lang"); q != "" {
			lang = normalizeLang(q, defaultLang)
		} else if header := c.GetHeader("Accept-Language"); header != "" {
			// Handle cases like "zh-TW,zh;q=0.9,en;q=0.8"
			first := strings.Split(header, ",")[0]
			lang = normalizeLang(strings.TrimSpace(strings.Split(first, ";")[0]), defaultLang)
		}

		c.Set("lang", lang)
		c.Next()
	}
}

func normalizeLang(tag, defaultLang string) string {
	// Convert common language codes
	switch tag {
	case "zh-TW", "zh-Hant", "zh_TW", "zh-HK":
		return "zh_TW"
	case "en", "en-US", "en-GB", "en-IN":
		return "en"
	}
	for _, supported := range i18n.GetSupportedLanguages() {
		if strings.EqualFold(tag, supported) {
			return supported
		}
	}
	return defaultLang
}
