// Copyright 2025, 4423 and the portfolio contributors
// SPDX-License-Identifier: AGPL-3.0-only

package commondata

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"

	"codeberg.org/myosh4423/portfolio/config"
)

func TestPopulatePageCommonData(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "http://portfolio.test/en?x=1", nil)

	var data PageCommonData

	PopulatePageCommonData(r, &data)

	assert.Equal(t, "http://portfolio.test", data.BaseURL)
	assert.Equal(t, "/en", data.CurrentPath)
	assert.Equal(t, "http://portfolio.test/en", data.FullURL)
	assert.Equal(t, []AlternateLink{
		{HrefLang: "en", Href: "http://portfolio.test/en"},
		{HrefLang: "ja", Href: "http://portfolio.test/ja"},
		{HrefLang: "x-default", Href: "http://portfolio.test/ja"},
	}, data.AlternateLinks())
}

func TestPopulatePageCommonDataSiteURL(t *testing.T) {
	prev := config.Global.Basic.SiteURL
	config.Global.Basic.SiteURL = url.URL{Scheme: "https", Host: "portfolio.example.com"}

	t.Cleanup(func() { config.Global.Basic.SiteURL = prev })

	r := httptest.NewRequest(http.MethodGet, "http://127.0.0.1:8282/ja", nil)

	var data PageCommonData

	PopulatePageCommonData(r, &data)

	assert.Equal(t, "https://portfolio.example.com", data.BaseURL)
	assert.Equal(t, "https://portfolio.example.com/ja", data.FullURL)
}
