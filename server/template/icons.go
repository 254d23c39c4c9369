// Copyright 2025, 4423 and the portfolio contributors
// SPDX-License-Identifier: AGPL-3.0-only

package template

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"codeberg.org/myosh4423/portfolio/content"
)

// ErrMissingIcon is returned by CheckIcons when an icon key has no SVG asset.
var ErrMissingIcon = errors.New("missing icon asset")

// iconCache holds all of our SVGs keyed by filename (without the “.svg” suffix).
var iconCache = make(map[string]string)

// LoadIcons reads every “.svg” file in dir of fsys into iconCache,
// replacing anything loaded before.
func LoadIcons(fsys fs.FS, dir string) error {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return fmt.Errorf("reading icons directory %q: %w", dir, err)
	}

	cache := make(map[string]string, len(entries))

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".svg") {
			continue
		}

		// The embedded filesystem requires forward slashes on all operating systems.
		fullPath := path.Join(dir, name)

		data, err := fs.ReadFile(fsys, fullPath)
		if err != nil {
			return fmt.Errorf("reading icon %q: %w", fullPath, err)
		}

		cache[strings.TrimSuffix(name, ".svg")] = strings.TrimSpace(string(data))
	}

	iconCache = cache

	return nil
}

// CheckIcons reports every tool and contact icon key that has no loaded SVG.
func CheckIcons() error {
	var errs []error

	for _, i := range content.ToolIcons() {
		if _, ok := iconCache[i.String()]; !ok {
			errs = append(errs, fmt.Errorf("%w: tool icon %q", ErrMissingIcon, i.String()))
		}
	}

	for _, i := range content.ContactIcons() {
		if _, ok := iconCache[i.String()]; !ok {
			errs = append(errs, fmt.Errorf("%w: contact icon %q", ErrMissingIcon, i.String()))
		}
	}

	return errors.Join(errs...)
}

// RenderIcon returns the raw SVG markup for iconName. Icon files are
// trusted assets embedded at build time.
//
// If iconName is not found, a simple text placeholder is returned.
//
// The optional classes parameter injects a single CSS class into the <svg> tag.
// Only the first string in classes is used.
func RenderIcon(iconName string, classes ...string) string {
	svg, ok := iconCache[iconName]
	if !ok {
		return "[missing icon: " + iconName + "]"
	}

	if len(classes) > 0 && classes[0] != "" {
		svg = strings.Replace(svg, "<svg", `<svg class="`+classes[0]+`"`, 1)
	}

	return svg
}

// ToolIcon renders the SVG for a tool entry.
func ToolIcon(i content.ToolIcon, classes ...string) string {
	return RenderIcon(i.String(), classes...)
}

// ContactIcon renders the SVG for a contact link.
func ContactIcon(i content.ContactIcon, classes ...string) string {
	return RenderIcon(i.String(), classes...)
}
