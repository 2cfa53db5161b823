package middleware

import (
	"context"
	"net/http"
	"strings"

	"golang.org/x/text/language"
)

type localeContextKey struct{}

// LocaleKey stores the detected request locale in the context.
var LocaleKey = localeContextKey{}

// Locale resolves the request locale from the X-Locale override or the
// Accept-Language header and stores its base language in the context.
func Locale(defaultLocale string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			locale := detectLocale(r, defaultLocale)
			ctx := context.WithValue(r.Context(), LocaleKey, locale)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func detectLocale(r *http.Request, fallback string) string {
	if v := strings.TrimSpace(r.Header.Get("X-Locale")); v != "" {
		if tag, err := language.Parse(v); err == nil {
			return baseLanguage(tag, fallback)
		}
	}
	if tags, _, err := language.ParseAcceptLanguage(r.Header.Get("Accept-Language")); err == nil && len(tags) > 0 {
		return baseLanguage(tags[0], fallback)
	}
	if fallback != "" {
		return fallback
	}
	return "en"
}

func baseLanguage(tag language.Tag, fallback string) string {
	base, conf := tag.Base()
	if conf == language.No {
		if fallback != "" {
			return fallback
		}
		return "en"
	}
	return base.String()
}

func LocaleFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(LocaleKey).(string); ok {
		return v
	}
	return "en"
}
