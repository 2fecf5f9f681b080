package domain

import (
	"regexp"
	"strings"
)

// Loopback forms recognised as local targets. Other loopback spellings
// (::1, 0.0.0.0, LOCALHOST) are treated as external.
const (
	LoopbackAddress  = "127.0.0.1"
	LoopbackHostname = "localhost"
)

// TargetKind classifies where an alias points to.
type TargetKind int

const (
	// TargetLocal is a process on the host machine, proxied through the gateway host.
	TargetLocal TargetKind = iota
	// TargetExternal is a third-party host, reached by redirect.
	TargetExternal
)

func (k TargetKind) String() string {
	switch k {
	case TargetLocal:
		return "local"
	case TargetExternal:
		return "external"
	default:
		return "unknown"
	}
}

var explicitSchemeRegex = regexp.MustCompile(`(?i)^https?://`)

// IsLoopbackPrefixed reports whether target starts with the loopback address
// or the loopback hostname. The match is a case-sensitive prefix test.
func IsLoopbackPrefixed(target string) bool {
	return strings.HasPrefix(target, LoopbackAddress) || strings.HasPrefix(target, LoopbackHostname)
}

// HasExplicitScheme reports whether target starts with http:// or https://,
// ignoring case.
func HasExplicitScheme(target string) bool {
	return explicitSchemeRegex.MatchString(target)
}

// ClassifyTarget decides whether target is local or external.
func ClassifyTarget(target string) TargetKind {
	if IsLoopbackPrefixed(target) {
		return TargetLocal
	}
	return TargetExternal
}
