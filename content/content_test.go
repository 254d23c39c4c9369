// Copyright 2025, 4423 and the portfolio contributors
// SPDX-License-Identifier: AGPL-3.0-only

package content

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSupportedLocales(t *testing.T) {
	t.Parallel()

	locales := SupportedLocales()

	require.NotEmpty(t, locales)
	assert.Equal(t, []Locale{English, Japanese}, locales)
	assert.Contains(t, locales, DefaultLocale)
	assert.Equal(t, Japanese, DefaultLocale)

	// The returned slice is a copy.
	locales[0] = "xx"
	assert.Equal(t, English, SupportedLocales()[0])
}

func TestEveryLocaleHasValidRecord(t *testing.T) {
	t.Parallel()

	for _, locale := range SupportedLocales() {
		t.Run(string(locale), func(t *testing.T) {
			t.Parallel()

			c, ok := Lookup(locale)
			require.True(t, ok)
			assert.NoError(t, Validate(locale, c))
		})
	}

	assert.NoError(t, ValidateTable(table))
	assert.Len(t, table, len(SupportedLocales()))
}

func TestContentExamples(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "ゲーム開発者 / デザイナー", Content(Japanese).Profile.Tagline)
	assert.Equal(t, "Projects", Content(English).SectionTitles.Projects)
	assert.Equal(t, "en", Content(English).HTMLLang)
	assert.Equal(t, "ja", Content(Japanese).HTMLLang)
}

func TestDefaultContentIsJapanese(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Content(Japanese), DefaultContent())
	assert.Equal(t, Content(DefaultLocale), DefaultContent())
}

func TestOrderIsPreserved(t *testing.T) {
	t.Parallel()

	en := Content(English)

	assert.Equal(t, []string{
		"Game programming and systems design in Unity",
		"UI design",
		"Pixel art",
		"Workflow automation and ML prototyping with Python",
	}, en.Specialties)

	toolNames := make([]string, 0, len(en.Tools))
	for _, tool := range en.Tools {
		toolNames = append(toolNames, tool.Name)
	}

	assert.Equal(t, []string{"Unity", "Visual Studio Code", "Clip Studio Paint", "Aseprite"}, toolNames)
	assert.Equal(t, []ToolIcon{ToolIconUnity, ToolIconVSCode, ToolIconClipStudio, ToolIconAseprite},
		[]ToolIcon{en.Tools[0].IconKey, en.Tools[1].IconKey, en.Tools[2].IconKey, en.Tools[3].IconKey})
	assert.Equal(t, []string{"C#", "Python", "C++"}, en.Languages)

	require.Len(t, en.AboutParagraphs, 2)
	assert.Contains(t, en.AboutParagraphs[0], "Unity (C#)")
	assert.Contains(t, en.AboutParagraphs[1], "The sections below")

	require.Len(t, en.ContactLinks, 2)
	assert.Equal(t, ContactIconX, en.ContactLinks[0].Icon)
	assert.Equal(t, ContactIconDiscord, en.ContactLinks[1].Icon)
}

func TestProjectOptionalFieldsPresent(t *testing.T) {
	t.Parallel()

	projects := Content(English).Projects
	require.Len(t, projects, 1)

	p := projects[0]
	assert.Equal(t, "Step On All Stars", p.Title)

	href, ok := p.Href.Get()
	assert.True(t, ok)
	assert.Equal(t, "https://myosh4423.itch.io/step-on-all-stars", href)

	thumbnail, ok := p.Thumbnail.Get()
	assert.True(t, ok)
	assert.Equal(t, "steponallstars_title.png", thumbnail)

	assert.Equal(t, "Step On All Stars thumbnail", p.ThumbnailAlt.Or(""))
}

func TestContentReturnsCopy(t *testing.T) {
	t.Parallel()

	c := Content(English)
	c.Projects[0].Title = "mutated"
	c.Specialties[0] = "mutated"
	c.Tools = append(c.Tools, Tool{Name: "extra", Note: "extra", IconKey: ToolIconUnity})
	c.SectionTitles.Projects = "mutated"

	fresh := Content(English)
	assert.Equal(t, "Step On All Stars", fresh.Projects[0].Title)
	assert.Equal(t, "Game programming and systems design in Unity", fresh.Specialties[0])
	assert.Len(t, fresh.Tools, 4)
	assert.Equal(t, "Projects", fresh.SectionTitles.Projects)
}

func TestContentPanicsOnUnsupportedLocale(t *testing.T) {
	t.Parallel()

	assert.PanicsWithError(t, `content: unsupported locale: "fr"`, func() {
		_ = Content("fr")
	})

	_, ok := Lookup("fr")
	assert.False(t, ok)
}

func TestIconsBelongToEnumerations(t *testing.T) {
	t.Parallel()

	toolKeys := []string{"unity", "vscode", "clipStudio", "aseprite"}
	contactKeys := []string{"x", "discord"}

	for _, locale := range SupportedLocales() {
		c := Content(locale)

		for _, tool := range c.Tools {
			assert.Contains(t, toolKeys, tool.IconKey.String(), "locale %s tool %s", locale, tool.Name)
		}

		for _, link := range c.ContactLinks {
			assert.Contains(t, contactKeys, link.Icon.String(), "locale %s link %s", locale, link.Title)
		}
	}
}

func TestSectionTitlesParity(t *testing.T) {
	t.Parallel()

	for _, locale := range SupportedLocales() {
		titles := reflect.ValueOf(Content(locale).SectionTitles)

		require.Equal(t, 6, titles.NumField())

		for i := range titles.NumField() {
			assert.NotEmpty(t, titles.Field(i).String(),
				"locale %s section %s", locale, titles.Type().Field(i).Name)
		}
	}
}

func TestParseLocale(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    Locale
		wantErr bool
	}{
		{in: "en", want: English},
		{in: "ja", want: Japanese},
		{in: " JA ", want: Japanese},
		{in: "ja-JP", wantErr: true},
		{in: "fr", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()

			got, err := ParseLocale(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnsupportedLocale)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
