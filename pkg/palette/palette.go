package palette

import (
	"slices"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/exp/maps"
)

// Default is the background used when no color is requested or the token is
// not recognized. Dark blue-gray.
var Default = mustHex("#2d2d37")

// Soft color palette, keyed by the names users can pass with a quote request.
var colors = map[string]colorful.Color{
	"red":    mustHex("#ff6b6b"),
	"pink":   mustHex("#ff8cc8"),
	"purple": mustHex("#9b59b6"),
	"blue":   mustHex("#74b9ff"),
	"cyan":   mustHex("#00cec9"),
	"green":  mustHex("#55a3ff"),
	"yellow": mustHex("#fdcb6e"),
	"orange": mustHex("#e17055"),
	"brown":  mustHex("#8d6e63"),
	"gray":   mustHex("#b2bec3"),
	"grey":   mustHex("#b2bec3"),
	"black":  mustHex("#2d3436"),
	"white":  mustHex("#ffffff"),
}

// Resolve maps a user-supplied color token to a concrete color. Named colors
// are matched case-insensitively, "#RRGGBB" strings are parsed, and anything
// else falls back to Default. Resolution never fails.
func Resolve(token string) colorful.Color {
	token = strings.ToLower(strings.TrimSpace(token))
	if token == "" {
		return Default
	}
	if c, ok := colors[token]; ok {
		return c
	}
	if len(token) == 7 && token[0] == '#' {
		if c, err := colorful.Hex(token); err == nil {
			return c
		}
	}
	return Default
}

// Names returns the available color names, sorted.
func Names() []string {
	names := maps.Keys(colors)
	slices.Sort(names)
	return names
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}
