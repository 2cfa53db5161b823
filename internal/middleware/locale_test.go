package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestLocaleDetection(t *testing.T) {
	cases := []struct {
		name           string
		acceptLanguage string
		xLocale        string
		want           string
	}{
		{name: "x-locale wins", acceptLanguage: "en-US", xLocale: "id", want: "id"},
		{name: "accept-language region stripped", acceptLanguage: "ja-JP,ja;q=0.9", want: "ja"},
		{name: "quality ordering respected", acceptLanguage: "fr;q=0.8,de;q=0.9", want: "de"},
		{name: "garbage falls back", acceptLanguage: ";;;", want: "en"},
		{name: "empty falls back", want: "en"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var got string
			h := Locale("en")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				got = LocaleFromContext(r.Context())
			}))
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.acceptLanguage != "" {
				req.Header.Set("Accept-Language", tc.acceptLanguage)
			}
			if tc.xLocale != "" {
				req.Header.Set("X-Locale", tc.xLocale)
			}
			h.ServeHTTP(httptest.NewRecorder(), req)
			if got != tc.want {
				t.Fatalf("locale mismatch: got %q want %q", got, tc.want)
			}
		})
	}
}

func TestRequestIDGeneratedAndEchoed(t *testing.T) {
	var seen string
	h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestIDFromContext(r.Context())
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if seen == "" {
		t.Fatal("expected a generated request id")
	}
	if rec.Header().Get("X-Request-ID") != seen {
		t.Fatalf("header mismatch: %q vs %q", rec.Header().Get("X-Request-ID"), seen)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "client-supplied")
	h.ServeHTTP(httptest.NewRecorder(), req)
	if seen != "client-supplied" {
		t.Fatalf("client request id not reused: %q", seen)
	}
}
