// Copyright 2025, 4423 and the portfolio contributors
// SPDX-License-Identifier: AGPL-3.0-only

package views

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"codeberg.org/myosh4423/portfolio/content"
	"codeberg.org/myosh4423/portfolio/i18n"
	"codeberg.org/myosh4423/portfolio/server/template"
	"codeberg.org/myosh4423/portfolio/server/template/commondata"
)

// PageData is everything the portfolio page needs.
type PageData struct {
	Locale  content.Locale
	Content content.LocaleContent
	Common  commondata.PageCommonData
}

// Page renders the portfolio page. Sections appear in a fixed order, each
// under its heading from Content.SectionTitles.
func Page(data PageData) templ.Component {
	c := data.Content

	return layout(LayoutData{
		Locale:      data.Locale,
		HTMLLang:    c.HTMLLang,
		Title:       c.MetaTitle,
		Description: c.MetaDescription,
		Owner:       c.Profile.Name,
		Common:      data.Common,
		Alternates:  true,
	}, templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}

		profileSection(ctx, h, c)
		projectsSection(ctx, h, c)
		listSection(h, "about", c.SectionTitles.About, "p", c.AboutParagraphs)
		listSection(h, "specialties", c.SectionTitles.Specialties, "li", c.Specialties)
		toolsSection(h, c)
		contributionsSection(h, c)
		programmingLanguagesSection(h, c)

		return h.err
	}))
}

func sectionStart(h *htmlWriter, id, title string) {
	h.raw("<section")
	h.attr("id", id)
	h.raw(">\n<h2>")
	h.text(title)
	h.raw("</h2>\n")
}

func profileSection(ctx context.Context, h *htmlWriter, c content.LocaleContent) {
	h.raw(`<header class="profile">`, "\n<h1>")
	h.text(c.Profile.Name)
	h.raw("</h1>\n")
	h.raw(`<p class="tagline">`)
	h.text(c.Profile.Tagline)
	h.raw("</p>\n")
	h.raw(`<p class="summary">`)
	h.text(c.Profile.Summary)
	h.raw("</p>\n")

	h.raw(`<nav class="contact"`)
	h.attr("aria-label", i18n.Tr(ctx, "Contact"))
	h.raw(">\n<ul>\n")

	for _, link := range c.ContactLinks {
		h.raw("<li>")

		// A link without href is a plain label.
		if href, ok := link.Href.Get(); ok {
			h.raw("<a")
			h.href(href)
			h.raw(` rel="me noopener">`)
			h.raw(template.ContactIcon(link.Icon, "icon"))
			h.text(link.Title)
			h.raw("</a>")
		} else {
			h.raw(`<span class="label">`)
			h.raw(template.ContactIcon(link.Icon, "icon"))
			h.text(link.Title)
			h.raw("</span>")
		}

		h.raw("</li>\n")
	}

	h.raw("</ul>\n</nav>\n</header>\n")
}

func projectsSection(ctx context.Context, h *htmlWriter, c content.LocaleContent) {
	sectionStart(h, "projects", c.SectionTitles.Projects)

	h.raw(`<p class="count">`)
	h.text(i18n.TrN(ctx, "{{.Count}} project", "{{.Count}} projects", len(c.Projects), "Count", len(c.Projects)))
	h.raw("</p>\n")

	for _, p := range c.Projects {
		h.raw(`<article class="project">`, "\n")

		if file, ok := p.Thumbnail.Get(); ok {
			h.raw("<img")
			h.attr("src", template.ThumbnailURL(file))
			h.attr("alt", p.ThumbnailAlt.Or(""))
			h.raw(` loading="lazy">`, "\n")
		}

		h.raw("<h3>")
		h.text(p.Title)
		h.raw("</h3>\n")
		h.raw(`<p class="role">`)
		h.text(p.Role)
		h.raw("</p>\n<p>")
		h.text(p.Description)
		h.raw("</p>\n")

		if href, ok := p.Href.Get(); ok {
			h.raw("<a")
			h.href(href)
			h.raw(` rel="noopener">`)
			h.component(ctx, i18n.MsgKey("Visit project"))
			h.raw("</a>\n")
		}

		h.raw("</article>\n")
	}

	h.raw("</section>\n")
}

// listSection renders items in order, each wrapped in elem. For "li" the
// items are placed in a <ul>.
func listSection(h *htmlWriter, id, title, elem string, items []string) {
	sectionStart(h, id, title)

	if elem == "li" {
		h.raw("<ul>\n")
	}

	for _, item := range items {
		h.raw("<", elem, ">")
		h.text(item)
		h.raw("</", elem, ">\n")
	}

	if elem == "li" {
		h.raw("</ul>\n")
	}

	h.raw("</section>\n")
}

func toolsSection(h *htmlWriter, c content.LocaleContent) {
	sectionStart(h, "tools", c.SectionTitles.Tools)
	h.raw(`<ul class="tools">`, "\n")

	for _, tool := range c.Tools {
		h.raw("<li")
		h.attr("data-icon", tool.IconKey.String())
		h.raw(">")
		h.raw(template.ToolIcon(tool.IconKey, "icon"))
		h.raw(`<span class="name">`)
		h.text(tool.Name)
		h.raw(`</span> <span class="note">`)
		h.text(tool.Note)
		h.raw("</span></li>\n")
	}

	h.raw("</ul>\n</section>\n")
}

func contributionsSection(h *htmlWriter, c content.LocaleContent) {
	sectionStart(h, "contributions", c.SectionTitles.Contributions)
	h.raw("<dl>\n")

	for _, entry := range c.Contributions {
		h.raw("<dt>")
		h.text(entry.Title)
		h.raw("</dt><dd>")
		h.text(entry.Detail)
		h.raw("</dd>\n")
	}

	h.raw("</dl>\n</section>\n")
}

func programmingLanguagesSection(h *htmlWriter, c content.LocaleContent) {
	sectionStart(h, "programming-languages", c.SectionTitles.ProgrammingLanguages)
	h.raw(`<ul class="languages">`, "\n")

	for _, name := range c.Languages {
		h.raw("<li>")
		h.text(name)
		h.raw("</li>\n")
	}

	h.raw("</ul>\n<p>")
	h.text(c.ProgrammingLanguagesNote)
	h.raw("</p>\n</section>\n")
}
