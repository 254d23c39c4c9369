// Copyright 2025, 4423 and the portfolio contributors
// SPDX-License-Identifier: AGPL-3.0-only

package content

import (
	"encoding/json"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionalStates(t *testing.T) {
	t.Parallel()

	var absent Optional

	_, ok := absent.Get()
	assert.False(t, ok)
	assert.True(t, absent.IsZero())
	assert.Equal(t, "fallback", absent.Or("fallback"))

	empty := Some("")
	v, ok := empty.Get()
	assert.True(t, ok)
	assert.Empty(t, v)
	assert.False(t, empty.IsZero())
	assert.Empty(t, empty.Or("fallback"))

	assert.NotEqual(t, absent, empty)
}

func TestOptionalJSON(t *testing.T) {
	t.Parallel()

	p := Project{
		Title:        "Untitled",
		Role:         "Programmer",
		Description:  "No link.",
		ThumbnailAlt: Some(""),
	}

	data, err := json.Marshal(p)
	require.NoError(t, err)

	assert.NotContains(t, string(data), `"href"`)
	assert.NotContains(t, string(data), `"thumbnail"`)
	assert.Contains(t, string(data), `"thumbnailAlt":""`)

	var decoded Project
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, p, decoded)

	require.NoError(t, json.Unmarshal([]byte(`{"href":null}`), &decoded))
	assert.False(t, decoded.Href.Present())
}

func TestOptionalYAML(t *testing.T) {
	t.Parallel()

	p := Project{
		Title:        "Untitled",
		Role:         "Programmer",
		Description:  "Thumbnail only.",
		Thumbnail:    Some("cover.png"),
		ThumbnailAlt: Some(""),
	}

	data, err := yaml.Marshal(p)
	require.NoError(t, err)

	out := string(data)
	assert.NotContains(t, out, "href:")
	assert.Contains(t, out, "thumbnail: cover.png")
	assert.Contains(t, out, "thumbnailAlt:")

	var decoded Project
	require.NoError(t, yaml.Unmarshal(data, &decoded))
	assert.Equal(t, p, decoded)

	require.NoError(t, yaml.Unmarshal([]byte("title: t\nhref: null\nthumbnail: ~\nthumbnailAlt: \"\"\n"), &decoded))
	assert.False(t, decoded.Href.Present())
	assert.False(t, decoded.Thumbnail.Present())

	alt, ok := decoded.ThumbnailAlt.Get()
	assert.True(t, ok)
	assert.Empty(t, alt)
}

func TestLocaleContentYAMLRoundTrip(t *testing.T) {
	t.Parallel()

	for _, locale := range SupportedLocales() {
		data, err := yaml.Marshal(Content(locale))
		require.NoError(t, err)

		var decoded LocaleContent
		require.NoError(t, yaml.Unmarshal(data, &decoded), locale)
		assert.Equal(t, Content(locale), decoded, locale)
	}
}
