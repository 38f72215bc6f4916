package middleware

import (
	"digital-menu/internal/pkg/cookie"
	"digital-menu/internal/pkg/i18n"

	"github.com/gin-gonic/gin"
)

const ctxLanguageKey = "language"

// Locale resolves the display language from ?lang, the language cookie and
// Accept-Language, in that order. English is the fallback.
func Locale() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(ctxLanguageKey, resolveLanguage(c))
		c.Next()
	}
}

func resolveLanguage(c *gin.Context) i18n.Language {
	if l, err := i18n.ParseLanguage(c.Query("lang")); err == nil {
		return l
	}
	if l, err := i18n.ParseLanguage(cookie.GetLanguage(c)); err == nil {
		return l
	}
	if l, ok := i18n.FromAcceptLanguage(c.GetHeader("Accept-Language")); ok {
		return l
	}
	return i18n.DefaultLanguage
}

func GetLanguage(c *gin.Context) i18n.Language {
	if v, ok := c.Get(ctxLanguageKey); ok {
		if l, ok := v.(i18n.Language); ok {
			return l
		}
	}
	return resolveLanguage(c)
}
