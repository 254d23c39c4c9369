// Copyright 2025, 4423 and the portfolio contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package template holds rendering helpers shared by the views: the icon cache
and thumbnail URL resolution.
*/
package template
