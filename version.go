// Package quire is the in-memory text-editing core of a terminal editor.
//
// The core lives in the storage, buffer and highlight packages; editor hosts
// buffers in a Bubble Tea program and cmd/quire is the executable.
package quire

import (
	_ "embed"
	"fmt"
	"strings"

	"golang.org/x/mod/semver"
)

//go:embed VERSION
var embeddedVersion string

// Version returns the quire version without the leading `v`.
func Version() string {
	return strings.TrimSpace(embeddedVersion)
}

// VersionTag returns Version as a git tag.
func VersionTag() string {
	return "v" + Version()
}

// Describe formats the version with build details for `quire version`.
// Unknown details are left out.
func Describe(commit, date string) string {
	var extra []string
	if commit != "" && commit != "none" {
		extra = append(extra, "commit "+commit)
	}
	if date != "" && date != "unknown" {
		extra = append(extra, "built "+date)
	}
	if len(extra) == 0 {
		return "quire " + VersionTag()
	}
	return fmt.Sprintf("quire %s (%s)", VersionTag(), strings.Join(extra, ", "))
}

// IsSemver reports whether v is a full SemVer 2.0.0 version without the
// leading `v`. Shorthands such as "1.2" are rejected.
func IsSemver(v string) bool {
	tag := "v" + strings.TrimSpace(v)
	if !semver.IsValid(tag) {
		return false
	}
	core, _, _ := strings.Cut(tag, "+")
	return semver.Canonical(tag) == core
}
