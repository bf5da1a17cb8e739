// Package jenjang provides education-level detection and configuration for
// the portal, the per-branch analog of multi-tenant detection.
package jenjang

import (
	"strings"

	"github.com/asrulmaaliy26/sma-unggul-bangsa-portal-sub000/internal/domain/entities/levels"
)

// ResolveDefault determines the default active level for a request. Priority
// order, first match wins:
//
//  1. an explicitly configured default level (normalized to upper case),
//  2. the first label of the host name, matched case-insensitively against
//     the known level set,
//  3. the universal level.
//
// The function is deterministic and never fails; malformed input degrades to
// the universal level.
func ResolveDefault(configured, host string) levels.LevelID {
	if configured != "" {
		id := levels.LevelID(strings.ToUpper(strings.TrimSpace(configured)))
		if levels.Known(id) {
			return id
		}
	}

	if label := firstHostLabel(host); label != "" {
		id := levels.LevelID(strings.ToUpper(label))
		if levels.Known(id) {
			return id
		}
	}

	return levels.Universal
}

// firstHostLabel extracts the leading DNS label of a host, tolerating ports
// and empty input.
func firstHostLabel(host string) string {
	host = strings.TrimSpace(host)
	if host == "" {
		return ""
	}
	if idx := strings.IndexByte(host, ':'); idx >= 0 {
		host = host[:idx]
	}
	if idx := strings.IndexByte(host, '.'); idx >= 0 {
		host = host[:idx]
	}
	return host
}
