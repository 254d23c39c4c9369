// Copyright 2025, 4423 and the portfolio contributors
// SPDX-License-Identifier: AGPL-3.0-only

package content

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrUnknownIcon is returned when an icon key is outside its enumeration.
var ErrUnknownIcon = errors.New("unknown icon")

// ToolIcon identifies the graphical asset of a tool entry.
//
// The zero value is not a valid icon.
type ToolIcon uint8

// Recognized tool icons.
const (
	_ ToolIcon = iota
	ToolIconUnity
	ToolIconVSCode
	ToolIconClipStudio
	ToolIconAseprite
)

var toolIconKeys = map[ToolIcon]string{
	ToolIconUnity:      "unity",
	ToolIconVSCode:     "vscode",
	ToolIconClipStudio: "clipStudio",
	ToolIconAseprite:   "aseprite",
}

// ToolIcons returns every recognized tool icon.
func ToolIcons() []ToolIcon {
	return []ToolIcon{ToolIconUnity, ToolIconVSCode, ToolIconClipStudio, ToolIconAseprite}
}

// ParseToolIcon returns the tool icon whose key is s.
func ParseToolIcon(s string) (ToolIcon, error) {
	for icon, key := range toolIconKeys {
		if key == s {
			return icon, nil
		}
	}

	return 0, fmt.Errorf("%w: tool icon %q", ErrUnknownIcon, s)
}

// Valid reports whether i is a recognized tool icon.
func (i ToolIcon) Valid() bool {
	_, ok := toolIconKeys[i]

	return ok
}

// String returns the icon key, for example "clipStudio".
func (i ToolIcon) String() string {
	if key, ok := toolIconKeys[i]; ok {
		return key
	}

	return "ToolIcon(" + strconv.Itoa(int(i)) + ")"
}

func (i ToolIcon) MarshalText() ([]byte, error) {
	if !i.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrUnknownIcon, i)
	}

	return []byte(i.String()), nil
}

func (i *ToolIcon) UnmarshalText(text []byte) error {
	icon, err := ParseToolIcon(string(text))
	if err != nil {
		return err
	}

	*i = icon

	return nil
}

// ContactIcon identifies the graphical asset of a contact link.
//
// The zero value is not a valid icon.
type ContactIcon uint8

// Recognized contact icons.
const (
	_ ContactIcon = iota
	ContactIconX
	ContactIconDiscord
)

var contactIconKeys = map[ContactIcon]string{
	ContactIconX:       "x",
	ContactIconDiscord: "discord",
}

// ContactIcons returns every recognized contact icon.
func ContactIcons() []ContactIcon {
	return []ContactIcon{ContactIconX, ContactIconDiscord}
}

// ParseContactIcon returns the contact icon whose key is s.
func ParseContactIcon(s string) (ContactIcon, error) {
	for icon, key := range contactIconKeys {
		if key == s {
			return icon, nil
		}
	}

	return 0, fmt.Errorf("%w: contact icon %q", ErrUnknownIcon, s)
}

// Valid reports whether i is a recognized contact icon.
func (i ContactIcon) Valid() bool {
	_, ok := contactIconKeys[i]

	return ok
}

// String returns the icon key, for example "discord".
func (i ContactIcon) String() string {
	if key, ok := contactIconKeys[i]; ok {
		return key
	}

	return "ContactIcon(" + strconv.Itoa(int(i)) + ")"
}

func (i ContactIcon) MarshalText() ([]byte, error) {
	if !i.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrUnknownIcon, i)
	}

	return []byte(i.String()), nil
}

func (i *ContactIcon) UnmarshalText(text []byte) error {
	icon, err := ParseContactIcon(string(text))
	if err != nil {
		return err
	}

	*i = icon

	return nil
}
