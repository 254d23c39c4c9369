// Copyright 2025, 4423 and the portfolio contributors
// SPDX-License-Identifier: AGPL-3.0-only

package request_context

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"codeberg.org/myosh4423/portfolio/content"
	"codeberg.org/myosh4423/portfolio/i18n"
)

func TestWithRequestContext(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("Accept-Language", "en-GB,en;q=0.8")

	ctx := WithRequestContext(context.Background(), r)
	rc := FromContext(ctx)

	assert.NotEmpty(t, rc.RequestID)
	assert.Equal(t, http.StatusOK, rc.StatusCode)
	assert.Equal(t, content.English, rc.Locale)
	assert.Equal(t, content.English, i18n.LocaleFrom(ctx))
	assert.Equal(t, "/", rc.CommonData.CurrentPath)
}

func TestFromContextDefault(t *testing.T) {
	t.Parallel()

	rc := FromContext(context.Background())

	assert.Equal(t, content.DefaultLocale, rc.Locale)
	assert.Equal(t, http.StatusOK, rc.StatusCode)
}

func TestSetLocale(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodGet, "/en", nil)
	r = r.WithContext(WithRequestContext(r.Context(), r))

	r = SetLocale(r, content.English)

	assert.Equal(t, content.English, FromRequest(r).Locale)
	assert.Equal(t, content.English, i18n.LocaleFrom(r.Context()))
}
