package app

import (
	"regexp"
	"strings"
)

// DefaultAccent is the accent color used when none or an invalid one is given.
const DefaultAccent = "58a6ff"

var accentPattern = regexp.MustCompile(`^[0-9a-fA-F]{6}$`)

// RenderOptions controls which card sections are rendered and how.
type RenderOptions struct {
	ShowName       bool
	ShowStats      bool
	ShowLanguages  bool
	ShowStreak     bool
	ShowActivity   bool
	IncludePrivate bool

	// Accent is a color of exactly 6 hex digits, without '#'.
	Accent string

	// FullWidth makes the outer image fluid. Internal layout width doesn't change.
	FullWidth bool
}

// DefaultRenderOptions returns options with every section enabled.
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{
		ShowName:      true,
		ShowStats:     true,
		ShowLanguages: true,
		ShowStreak:    true,
		ShowActivity:  true,
		Accent:        DefaultAccent,
	}
}

// NormalizeAccent strips an optional leading '#' and returns the accent if it has
// exactly 6 hex digits, DefaultAccent otherwise.
func NormalizeAccent(accent string) string {
	accent = strings.TrimPrefix(accent, "#")
	if accentPattern.MatchString(accent) {
		return accent
	}
	return DefaultAccent
}
