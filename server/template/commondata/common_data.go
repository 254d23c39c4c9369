// Copyright 2025, 4423 and the portfolio contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package commondata holds page data shared by every rendered view.
*/
package commondata

import (
	"net/http"

	"codeberg.org/myosh4423/portfolio/config"
	"codeberg.org/myosh4423/portfolio/content"
	"codeberg.org/myosh4423/portfolio/server/utils"
)

// AlternateLink is one <link rel="alternate" hreflang> entry.
type AlternateLink struct {
	HrefLang string
	Href     string
}

// PageCommonData holds common variables accessible in views and handlers.
//
// It is populated for each request and attached to the
// request_context.RequestContext.
type PageCommonData struct {
	// BaseURL is the public origin of the site: config basic.siteUrl when
	// set, otherwise the origin of the current request.
	BaseURL string

	// CurrentPath is the URL path from request (e.g., "/en").
	CurrentPath string

	// FullURL is BaseURL + CurrentPath, without query parameters.
	FullURL string

	// AssetVersion is appended to stylesheet URLs for cache busting.
	AssetVersion string

	// RepoURL links to the site's source code, if configured.
	RepoURL string
}

// PopulatePageCommonData fills the PageCommonData struct from the request.
func PopulatePageCommonData(r *http.Request, data *PageCommonData) {
	if site := config.Global.Basic.SiteURL; site.Host != "" {
		data.BaseURL = site.String()
	} else {
		data.BaseURL = utils.GetOriginFromRequest(r)
	}

	data.CurrentPath = r.URL.Path
	data.FullURL = data.BaseURL + r.URL.Path
	data.AssetVersion = config.Global.Instance.FileServerCacheID
	data.RepoURL = config.Global.Instance.RepoURL
}

// LocaleURL returns the absolute URL of the page for l.
func (d PageCommonData) LocaleURL(l content.Locale) string {
	return d.BaseURL + "/" + l.String()
}

// AlternateLinks returns an hreflang entry for every supported locale plus
// an x-default entry pointing at the default locale.
func (d PageCommonData) AlternateLinks() []AlternateLink {
	locales := content.SupportedLocales()

	links := make([]AlternateLink, 0, len(locales)+1)
	for _, l := range locales {
		links = append(links, AlternateLink{HrefLang: l.String(), Href: d.LocaleURL(l)})
	}

	return append(links, AlternateLink{HrefLang: "x-default", Href: d.LocaleURL(content.DefaultLocale)})
}
