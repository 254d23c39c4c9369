// Copyright 2025, 4423 and the portfolio contributors
// SPDX-License-Identifier: AGPL-3.0-only

package config

import (
	"runtime/debug"
	"strings"
)

// BuildVersion is the latest tagged release of the portfolio server.
const BuildVersion string = "v1.2.0"

const shortRevisionLength = 8

type buildInfo struct {
	VcsRevision string
	VcsTime     string
	VcsModified bool
}

// Revision formats the VCS stamp as "<date>-<short hash>[+dirty]".
func (b *buildInfo) Revision() string {
	if b.VcsRevision == "" {
		return "unknown"
	}

	s := strings.Split(b.VcsTime, "T")[0] + "-" + b.VcsRevision[:min(shortRevisionLength, len(b.VcsRevision))]
	if b.VcsModified {
		s += "+dirty"
	}

	return s
}

func (b *buildInfo) load() {
	if buildInfo, ok := debug.ReadBuildInfo(); ok {
		b.VcsRevision = getBuildSetting(buildInfo.Settings, "vcs.revision")
		b.VcsTime = getBuildSetting(buildInfo.Settings, "vcs.time")
		b.VcsModified = getBuildSetting(buildInfo.Settings, "vcs.modified") == "true"
	}
}

func getBuildSetting(settings []debug.BuildSetting, key string) string {
	for _, kv := range settings {
		if key == kv.Key {
			return kv.Value
		}
	}

	return ""
}
