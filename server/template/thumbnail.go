// Copyright 2025, 4423 and the portfolio contributors
// SPDX-License-Identifier: AGPL-3.0-only

package template

import (
	"net/url"
	"strings"

	"codeberg.org/myosh4423/portfolio/config"
)

// ThumbnailURL resolves a project thumbnail file name against the configured
// thumbnail base, e.g. "steponallstars_title.png" → "/img/projects/steponallstars_title.png".
func ThumbnailURL(file string) string {
	return JoinThumbnail(config.Global.Assets.ThumbnailBase, file)
}

// JoinThumbnail joins base and file with exactly one slash, escaping file.
// An empty base falls back to config.DefaultThumbnailBase.
func JoinThumbnail(base, file string) string {
	if base == "" {
		base = config.DefaultThumbnailBase
	}

	return strings.TrimRight(base, "/") + "/" + url.PathEscape(file)
}
