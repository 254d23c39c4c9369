// Copyright 2025, 4423 and the portfolio contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
This package r/w public state in a request.

Public state -- HTTP cookies -- is received from the user agent and can be anything.
Callers must validate every value read here before use, e.g. by passing a
locale cookie through i18n.Normalize.
*/
package untrusted
