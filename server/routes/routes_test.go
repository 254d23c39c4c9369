// Copyright 2025, 4423 and the portfolio contributors
// SPDX-License-Identifier: AGPL-3.0-only

package routes

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"codeberg.org/myosh4423/portfolio/content"
	"codeberg.org/myosh4423/portfolio/core/cookie"
	"codeberg.org/myosh4423/portfolio/i18n"
	"codeberg.org/myosh4423/portfolio/server/request_context"
)

func TestMain(m *testing.M) {
	// The repository root holds the po/ catalogs.
	if err := i18n.SetupFS(os.DirFS("../..")); err != nil {
		panic(err)
	}

	os.Exit(m.Run())
}

// newRequest builds a request as the middleware chain would hand it to a
// handler. pathLocale is the {locale} wildcard, if the route has one.
func newRequest(method, target, pathLocale string, body ...string) *http.Request {
	var req *http.Request
	if len(body) > 0 {
		req = httptest.NewRequest(method, target, strings.NewReader(body[0]))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}

	if pathLocale != "" {
		req.SetPathValue(i18n.LocalePathValue, pathLocale)
	}

	return req.WithContext(request_context.WithRequestContext(req.Context(), req))
}

func serve(t *testing.T, handler func(http.ResponseWriter, *http.Request) error, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()

	rr := httptest.NewRecorder()
	require.NoError(t, handler(rr, req))

	return rr
}

func parseHTML(t *testing.T, rr *httptest.ResponseRecorder) *goquery.Document {
	t.Helper()

	doc, err := goquery.NewDocumentFromReader(rr.Body)
	require.NoError(t, err)

	return doc
}

func TestLocalePage(t *testing.T) {
	t.Parallel()

	req := newRequest(http.MethodGet, "/en", "en")
	rr := serve(t, LocalePage, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, content.English, request_context.FromRequest(req).Locale)

	doc := parseHTML(t, rr)
	lang, _ := doc.Find("html").Attr("lang")
	assert.Equal(t, "en", lang)
	assert.Equal(t, "Projects", doc.Find("main section > h2").First().Text())
}

func TestLocalePageJapaneseChrome(t *testing.T) {
	t.Parallel()

	// Negotiated as English, served as Japanese.
	req := httptest.NewRequest(http.MethodGet, "/ja", nil)
	req.Header.Set("Accept-Language", "en")
	req = req.WithContext(request_context.WithRequestContext(req.Context(), req))
	req.SetPathValue(i18n.LocalePathValue, "ja")

	require.Equal(t, content.English, request_context.FromRequest(req).Locale)

	doc := parseHTML(t, serve(t, LocalePage, req))

	assert.Equal(t, "本文へスキップ", doc.Find("a.skip-link").Text())
	assert.Equal(t, "言語", doc.Find(`label[for="lang"]`).Text())
	assert.Equal(t, "言語を変更", doc.Find("form.language-switcher button").Text())
	assert.Equal(t, "プロジェクトを見る", doc.Find("article.project a").First().Text())
	assert.Equal(t, content.Content(content.Japanese).Profile.Tagline, doc.Find("p.tagline").Text())
}

func TestLocalePageUnsupported(t *testing.T) {
	t.Parallel()

	rr := serve(t, LocalePage, newRequest(http.MethodGet, "/xx", "xx"))

	assert.Equal(t, http.StatusFound, rr.Code)
	assert.Equal(t, "/ja", rr.Header().Get("Location"))
}

func TestLocalePageNotLocaleShaped(t *testing.T) {
	t.Parallel()

	for _, segment := range []string{"favicon.ico", "projects", "a"} {
		rr := serve(t, LocalePage, newRequest(http.MethodGet, "/"+segment, segment))

		assert.Equal(t, http.StatusNotFound, rr.Code, segment)
		assert.Empty(t, rr.Header().Get("Location"), segment)
	}
}

func TestIndexPageNegotiation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		target         string
		acceptLanguage string
		cookie         string
		want           string
	}{
		{name: "default", target: "/", want: "ja"},
		{name: "accept language", target: "/", acceptLanguage: "en-US,en;q=0.9", want: "en"},
		{name: "cookie wins", target: "/", acceptLanguage: "en-US", cookie: "ja", want: "ja"},
		{name: "auto ignores cookie", target: "/?lang=auto", acceptLanguage: "en", cookie: "ja", want: "en"},
		{name: "query", target: "/?lang=en", cookie: "ja", want: "en"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			if tt.acceptLanguage != "" {
				req.Header.Set("Accept-Language", tt.acceptLanguage)
			}

			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: string(cookie.LangCookie), Value: tt.cookie})
			}

			req = req.WithContext(request_context.WithRequestContext(req.Context(), req))

			rr := serve(t, IndexPage, req)
			require.Equal(t, http.StatusOK, rr.Code)
			assert.Equal(t, "Accept-Language, Cookie", rr.Header().Get("Vary"))

			lang, _ := parseHTML(t, rr).Find("html").Attr("lang")
			assert.Equal(t, tt.want, lang)
		})
	}
}

func TestLocalesAPI(t *testing.T) {
	t.Parallel()

	rr := serve(t, LocalesAPI, newRequest(http.MethodGet, "/api/v1/locales", ""))
	body := rr.Body.String()

	assert.Equal(t, "application/json; charset=utf-8", rr.Header().Get("Content-Type"))
	assert.Equal(t, `["en","ja"]`, gjson.Get(body, "supported").Raw)
	assert.Equal(t, "ja", gjson.Get(body, "default").String())
}

func TestLocaleContentAPI(t *testing.T) {
	t.Parallel()

	req := newRequest(http.MethodGet, "/api/v1/content/en", "en")
	rr := serve(t, LocaleContentAPI, req)
	body := rr.Body.String()

	assert.Empty(t, rr.Header().Get(FallbackHeader))
	assert.Equal(t, content.English, request_context.FromRequest(req).Locale)
	assert.Equal(t, "Projects", gjson.Get(body, "sectionTitles.projects").String())
	assert.Equal(t, "unity", gjson.Get(body, "tools.0.iconKey").String())
	assert.Equal(t, "x", gjson.Get(body, "contactLinks.0.icon").String())
	assert.Equal(t, "steponallstars_title.png", gjson.Get(body, "projects.0.thumbnail").String())
}

func TestLocaleContentAPIFallback(t *testing.T) {
	t.Parallel()

	req := newRequest(http.MethodGet, "/api/v1/content/xx", "xx")
	rr := serve(t, LocaleContentAPI, req)

	assert.Equal(t, "true", rr.Header().Get(FallbackHeader))
	assert.Equal(t, content.Japanese, request_context.FromRequest(req).Locale)
	assert.Equal(t, "ゲーム開発者 / デザイナー", gjson.Get(rr.Body.String(), "profile.tagline").String())
}

func TestLocaleContentAPIVariants(t *testing.T) {
	t.Parallel()

	tests := []struct {
		segment  string
		want     content.Locale
		fallback bool
	}{
		{"en-US", content.English, false},
		{"EN", content.English, false},
		{"en_GB", content.English, false},
		{"ja-JP", content.Japanese, false},
		{"fr", content.Japanese, true},
		{"fr-CA", content.Japanese, true},
		{"not-a-locale!", content.Japanese, true},
	}

	for _, tt := range tests {
		t.Run(tt.segment, func(t *testing.T) {
			t.Parallel()

			req := newRequest(http.MethodGet, "/api/v1/content/x", tt.segment)
			rr := serve(t, LocaleContentAPI, req)

			assert.Equal(t, tt.want, request_context.FromRequest(req).Locale)
			assert.Equal(t, tt.want.String(), gjson.Get(rr.Body.String(), "htmlLang").String())

			if tt.fallback {
				assert.Equal(t, "true", rr.Header().Get(FallbackHeader))
			} else {
				assert.Empty(t, rr.Header().Get(FallbackHeader))
			}
		})
	}
}

func TestContentAPINegotiated(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/content", nil)
	req.Header.Set("Accept-Language", "ja")
	req.AddCookie(&http.Cookie{Name: string(cookie.LangCookie), Value: "en"})
	req = req.WithContext(request_context.WithRequestContext(req.Context(), req))

	rr := serve(t, ContentAPI, req)

	assert.Equal(t, "en", gjson.Get(rr.Body.String(), "htmlLang").String())
	assert.Equal(t, "Accept-Language, Cookie", rr.Header().Get("Vary"))
}

func TestSetLanguage(t *testing.T) {
	t.Parallel()

	form := url.Values{i18n.LangParam: {"EN-us"}}.Encode()
	rr := serve(t, SetLanguage, newRequest(http.MethodPost, "/settings/lang", "", form))

	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/en", rr.Header().Get("Location"))

	cookies := rr.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, string(cookie.LangCookie), cookies[0].Name)
	assert.Equal(t, "en", cookies[0].Value)
}

func TestSetLanguageUnsupported(t *testing.T) {
	t.Parallel()

	form := url.Values{i18n.LangParam: {"fr"}}.Encode()
	rr := serve(t, SetLanguage, newRequest(http.MethodPost, "/settings/lang", "", form))

	assert.Equal(t, "/ja", rr.Header().Get("Location"))
}

func TestHealthz(t *testing.T) {
	t.Parallel()

	rr := serve(t, Healthz, newRequest(http.MethodGet, "/healthz", ""))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "ok", rr.Body.String())
}

func TestNotFound(t *testing.T) {
	t.Parallel()

	rr := serve(t, NotFound, newRequest(http.MethodGet, "/a/b", ""))

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestErrorPage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		locale    content.Locale
		status    int
		wantCode  int
		wantTitle string
	}{
		{content.English, http.StatusNotFound, http.StatusNotFound, "Page not found"},
		{content.Japanese, http.StatusNotFound, http.StatusNotFound, "ページが見つかりません"},
		{content.English, http.StatusOK, http.StatusInternalServerError, "Something went wrong"},
		{content.Japanese, http.StatusTooManyRequests, http.StatusTooManyRequests, "リクエストが多すぎます"},
		{content.English, http.StatusForbidden, http.StatusForbidden, "Access denied"},
	}

	for _, tt := range tests {
		t.Run(tt.wantTitle, func(t *testing.T) {
			t.Parallel()

			req := request_context.SetLocale(newRequest(http.MethodGet, "/", ""), tt.locale)
			rc := request_context.FromRequest(req)
			rc.StatusCode = tt.status

			rr := httptest.NewRecorder()
			ErrorPage(rr, req)

			assert.Equal(t, tt.wantCode, rr.Code)
			assert.Equal(t, "no-store", rr.Header().Get("Cache-Control"))

			doc := parseHTML(t, rr)
			assert.Equal(t, tt.wantTitle, doc.Find("h1").Text())
			assert.Contains(t, doc.Find("p.request-id").Text(), rc.RequestID)
		})
	}
}

func TestBlockPage(t *testing.T) {
	t.Parallel()

	req := newRequest(http.MethodGet, "/", "")
	rr := httptest.NewRecorder()
	BlockPage(rr, req, http.StatusTooManyRequests)

	assert.Equal(t, http.StatusTooManyRequests, rr.Code)
	assert.Equal(t, http.StatusTooManyRequests, request_context.FromRequest(req).StatusCode)
}
