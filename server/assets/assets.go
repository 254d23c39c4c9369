// Copyright 2025, 4423 and the portfolio contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package assets provides access to the application's embedded static assets.

The layout is:

	assets/css/...      stylesheets
	assets/icons/*.svg  tool and contact icons, named by icon key
	assets/img/...      images, including project thumbnails
	assets/robots.txt
	po/*.po             gettext catalogues
*/
package assets

import (
	"io/fs"
)

// FS provides access to the embedded file system. It is assigned by package
// main before any other package reads it.
var FS fs.FS
