// Copyright 2025, 4423 and the portfolio contributors
// SPDX-License-Identifier: AGPL-3.0-only

package content

import "slices"

// LocaleContent is the complete display content of the site for one locale.
//
// Every slice is in display order. Consumers must not sort, filter or
// deduplicate them.
type LocaleContent struct {
	MetaTitle       string `json:"metaTitle"       yaml:"metaTitle"`
	MetaDescription string `json:"metaDescription" yaml:"metaDescription"`
	HTMLLang        string `json:"htmlLang"        yaml:"htmlLang"`

	Profile      Profile       `json:"profile"      yaml:"profile"`
	ContactLinks []ContactLink `json:"contactLinks" yaml:"contactLinks"`

	AboutParagraphs []string       `json:"aboutParagraphs" yaml:"aboutParagraphs"`
	Specialties     []string       `json:"specialties"     yaml:"specialties"`
	Tools           []Tool         `json:"tools"           yaml:"tools"`
	Contributions   []Contribution `json:"contributions"   yaml:"contributions"`

	// Languages are programming language names, unrelated to the locale set.
	Languages                []string `json:"languages"                yaml:"languages"`
	ProgrammingLanguagesNote string   `json:"programmingLanguagesNote" yaml:"programmingLanguagesNote"`

	Projects      []Project     `json:"projects"      yaml:"projects"`
	SectionTitles SectionTitles `json:"sectionTitles" yaml:"sectionTitles"`
}

// Profile is the header block of the page.
type Profile struct {
	Name    string `json:"name"    yaml:"name"`
	Tagline string `json:"tagline" yaml:"tagline"`
	Summary string `json:"summary" yaml:"summary"`
}

// ContactLink is an external contact entry. A link without Href is shown as
// a label only.
type ContactLink struct {
	Title string      `json:"title"          yaml:"title"`
	Href  Optional    `json:"href,omitzero"  yaml:"href,omitempty"`
	Icon  ContactIcon `json:"icon"           yaml:"icon"`
}

// Tool is a tool or engine the author works with.
type Tool struct {
	Name    string   `json:"name"    yaml:"name"`
	Note    string   `json:"note"    yaml:"note"`
	IconKey ToolIcon `json:"iconKey" yaml:"iconKey"`
}

// Contribution is a team project the author contributed to.
type Contribution struct {
	Title  string `json:"title"  yaml:"title"`
	Detail string `json:"detail" yaml:"detail"`
}

// Project is a showcased work. Href, Thumbnail and ThumbnailAlt are
// independent of each other.
type Project struct {
	Title       string `json:"title"       yaml:"title"`
	Role        string `json:"role"        yaml:"role"`
	Description string `json:"description" yaml:"description"`

	Href Optional `json:"href,omitzero" yaml:"href,omitempty"`

	// Thumbnail is a bare file name; the rendering layer resolves it to a URL.
	Thumbnail    Optional `json:"thumbnail,omitzero"    yaml:"thumbnail,omitempty"`
	ThumbnailAlt Optional `json:"thumbnailAlt,omitzero" yaml:"thumbnailAlt,omitempty"`
}

// SectionTitles holds the heading of every page section. All fields are mandatory.
type SectionTitles struct {
	Projects             string `json:"projects"             yaml:"projects"`
	About                string `json:"about"                yaml:"about"`
	Specialties          string `json:"specialties"          yaml:"specialties"`
	Tools                string `json:"tools"                yaml:"tools"`
	Contributions        string `json:"contributions"        yaml:"contributions"`
	ProgrammingLanguages string `json:"programmingLanguages" yaml:"programmingLanguages"`
}

// clone returns a deep copy of c.
func (c LocaleContent) clone() LocaleContent {
	c.ContactLinks = slices.Clone(c.ContactLinks)
	c.AboutParagraphs = slices.Clone(c.AboutParagraphs)
	c.Specialties = slices.Clone(c.Specialties)
	c.Tools = slices.Clone(c.Tools)
	c.Contributions = slices.Clone(c.Contributions)
	c.Languages = slices.Clone(c.Languages)
	c.Projects = slices.Clone(c.Projects)

	return c
}
