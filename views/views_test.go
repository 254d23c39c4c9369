// Copyright 2025, 4423 and the portfolio contributors
// SPDX-License-Identifier: AGPL-3.0-only

package views

import (
	"bytes"
	"context"
	"os"
	"testing"
	"testing/fstest"

	"github.com/PuerkitoBio/goquery"
	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codeberg.org/myosh4423/portfolio/content"
	"codeberg.org/myosh4423/portfolio/i18n"
	"codeberg.org/myosh4423/portfolio/server/template"
	"codeberg.org/myosh4423/portfolio/server/template/commondata"
)

const testSVG = `<svg viewBox="0 0 24 24"><path d="M0 0h24v24H0z"/></svg>`

func TestMain(m *testing.M) {
	icons := fstest.MapFS{}

	for _, i := range content.ToolIcons() {
		icons["icons/"+i.String()+".svg"] = &fstest.MapFile{Data: []byte(testSVG)}
	}

	for _, i := range content.ContactIcons() {
		icons["icons/"+i.String()+".svg"] = &fstest.MapFile{Data: []byte(testSVG)}
	}

	if err := template.LoadIcons(icons, "icons"); err != nil {
		panic(err)
	}

	if err := template.CheckIcons(); err != nil {
		panic(err)
	}

	os.Exit(m.Run())
}

var common = commondata.PageCommonData{BaseURL: "https://example.org", AssetVersion: "abc"}

func render(t *testing.T, l content.Locale, c templ.Component) *goquery.Document {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, c.Render(i18n.WithLocale(context.Background(), l), &buf))

	doc, err := goquery.NewDocumentFromReader(&buf)
	require.NoError(t, err)

	return doc
}

func sectionTitles(doc *goquery.Document) []string {
	return doc.Find("main section > h2").Map(func(_ int, s *goquery.Selection) string {
		return s.Text()
	})
}

func TestPageSectionOrder(t *testing.T) {
	t.Parallel()

	for _, l := range content.SupportedLocales() {
		t.Run(l.String(), func(t *testing.T) {
			t.Parallel()

			c := content.Content(l)
			doc := render(t, l, Page(PageData{Locale: l, Content: c, Common: common}))

			st := c.SectionTitles
			assert.Equal(t, []string{
				st.Projects, st.About, st.Specialties, st.Tools, st.Contributions, st.ProgrammingLanguages,
			}, sectionTitles(doc))

			lang, _ := doc.Find("html").Attr("lang")
			assert.Equal(t, c.HTMLLang, lang)
			assert.Equal(t, c.MetaTitle, doc.Find("title").Text())

			desc, _ := doc.Find(`meta[name="description"]`).Attr("content")
			assert.Equal(t, c.MetaDescription, desc)
			assert.Equal(t, c.Profile.Name, doc.Find("header.profile h1").Text())
		})
	}
}

func TestPagePreservesAuthoredOrder(t *testing.T) {
	t.Parallel()

	c := content.Content(content.English)
	doc := render(t, content.English, Page(PageData{Locale: content.English, Content: c, Common: common}))

	about := doc.Find("#about p").Map(func(_ int, s *goquery.Selection) string { return s.Text() })
	assert.Equal(t, c.AboutParagraphs, about)

	specialties := doc.Find("#specialties li").Map(func(_ int, s *goquery.Selection) string { return s.Text() })
	assert.Equal(t, c.Specialties, specialties)

	icons := doc.Find("#tools li").Map(func(_ int, s *goquery.Selection) string {
		v, _ := s.Attr("data-icon")

		return v
	})
	assert.Equal(t, []string{"unity", "vscode", "clipStudio", "aseprite"}, icons)

	langs := doc.Find("#programming-languages li").Map(func(_ int, s *goquery.Selection) string { return s.Text() })
	assert.Equal(t, c.Languages, langs)
}

func TestPageAlternateLinks(t *testing.T) {
	t.Parallel()

	doc := render(t, content.English, Page(PageData{
		Locale: content.English, Content: content.Content(content.English), Common: common,
	}))

	hreflangs := doc.Find(`link[rel="alternate"]`).Map(func(_ int, s *goquery.Selection) string {
		v, _ := s.Attr("hreflang")

		return v
	})
	assert.Equal(t, []string{"en", "ja", "x-default"}, hreflangs)

	canonical, _ := doc.Find(`link[rel="canonical"]`).Attr("href")
	assert.Equal(t, "https://example.org/en", canonical)

	selected, _ := doc.Find("option[selected]").Attr("value")
	assert.Equal(t, "en", selected)
}

func TestPageOptionalFields(t *testing.T) {
	t.Parallel()

	c := content.Content(content.English)
	c.ContactLinks = []content.ContactLink{
		{Title: "Discord", Icon: content.ContactIconDiscord},
	}
	c.Projects = []content.Project{
		{Title: "Bare", Role: "r", Description: "d"},
		{Title: "Image only", Role: "r", Description: "d", Thumbnail: content.Some("a b.png")},
		{Title: "Link only", Role: "r", Description: "d", Href: content.Some("https://example.org/p")},
	}

	doc := render(t, content.English, Page(PageData{Locale: content.English, Content: c, Common: common}))

	assert.Equal(t, 0, doc.Find("nav.contact a").Length())
	label := doc.Find("nav.contact span.label")
	assert.Equal(t, "Discord", label.Text())
	assert.Equal(t, 1, label.Find("svg.icon").Length())

	projects := doc.Find("article.project")
	require.Equal(t, 3, projects.Length())

	bare := projects.Eq(0)
	assert.Equal(t, 0, bare.Find("img").Length())
	assert.Equal(t, 0, bare.Find("a").Length())

	image := projects.Eq(1)
	src, _ := image.Find("img").Attr("src")
	assert.Equal(t, "/img/projects/a%20b.png", src)

	alt, ok := image.Find("img").Attr("alt")
	assert.True(t, ok)
	assert.Empty(t, alt)
	assert.Equal(t, 0, image.Find("a").Length())

	link := projects.Eq(2)
	assert.Equal(t, 0, link.Find("img").Length())

	href, _ := link.Find("a").Attr("href")
	assert.Equal(t, "https://example.org/p", href)

	assert.Equal(t, "3 projects", doc.Find("#projects p.count").Text())
}

func TestPageEscapesText(t *testing.T) {
	t.Parallel()

	c := content.Content(content.English)
	c.Profile.Name = "<script>alert(1)</script>"

	var buf bytes.Buffer
	require.NoError(t, Page(PageData{Locale: content.English, Content: c, Common: common}).
		Render(context.Background(), &buf))

	assert.NotContains(t, buf.String(), "<script>")
	assert.Contains(t, buf.String(), "&lt;script&gt;")
}

func TestError(t *testing.T) {
	t.Parallel()

	doc := render(t, content.English, Error(ErrorData{
		Locale:     content.English,
		StatusCode: 404,
		Title:      "Page not found",
		Message:    "The page you requested does not exist.",
		RequestID:  "123456abcd",
		Common:     common,
	}))

	assert.Equal(t, "Page not found", doc.Find("h1").Text())
	assert.Equal(t, "404", doc.Find("p.status").Text())
	assert.Equal(t, "Request ID: 123456abcd", doc.Find("p.request-id").Text())
	assert.Equal(t, 0, doc.Find(`link[rel="alternate"]`).Length())

	home, _ := doc.Find("section.error a").Attr("href")
	assert.Equal(t, "/en", home)
}
