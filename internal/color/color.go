// Package color provides deterministic color derivation for project keys
// along with hex color validation and manipulation helpers.
//
// Generate maps a stable string key (repository or directory name) to a hex
// color by hashing the key and spreading the resulting seed across the hue
// circle with the golden-ratio conjugate. The same key always produces the
// same color, across processes and machines.
package color

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// goldenRatioConjugate spreads successive hash seeds across the hue circle,
// keeping colors for similar keys visually distinct.
const goldenRatioConjugate = 0.618033988749895

// Generated colors use fixed saturation and lightness so every assignment
// sits in the same perceptual band.
const (
	defaultSaturation = 70
	defaultLightness  = 50
)

// defaultKey substitutes for an empty key so Generate stays total.
const defaultKey = "default"

var hexColorRe = regexp.MustCompile(`^#?([0-9a-fA-F]{6})$`)

// ValidateHex validates and normalizes a hex color string.
// It accepts exactly six hex digits with an optional leading "#",
// case-insensitively, and normalizes to lowercase with a leading "#".
// Returns ("", false) for anything else.
func ValidateHex(s string) (string, bool) {
	m := hexColorRe.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return "", false
	}
	return "#" + strings.ToLower(m[1]), true
}

// HexToRGB converts a hex color to its RGB channels.
// Returns ok=false if the input is not a valid hex color.
func HexToRGB(s string) (r, g, b int, ok bool) {
	normalized, ok := ValidateHex(s)
	if !ok {
		return 0, 0, 0, false
	}
	raw, err := hex.DecodeString(normalized[1:])
	if err != nil {
		return 0, 0, 0, false
	}
	return int(raw[0]), int(raw[1]), int(raw[2]), true
}

// RGBToHex converts RGB channels to a lowercase #rrggbb string.
func RGBToHex(r, g, b int) string {
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// Mute scales each RGB channel of the color toward black.
// A factor of 1.0 returns the color unchanged; 0.0 returns black.
// Returns ok=false if the input color is malformed.
func Mute(color string, factor float64) (string, bool) {
	r, g, b, ok := HexToRGB(color)
	if !ok {
		return "", false
	}
	return RGBToHex(
		int(float64(r)*factor),
		int(float64(g)*factor),
		int(float64(b)*factor),
	), true
}

// Background RGB that tints blend toward. Matches the dark terminal
// background the generated styles are designed for.
const (
	tintBaseR = 30
	tintBaseG = 30
	tintBaseB = 30
)

// BackgroundTint blends the color toward a fixed dark background by factor.
// Small factors (0.05–0.08) produce a barely perceptible wash.
// Returns ok=false if the input color is malformed.
func BackgroundTint(color string, factor float64) (string, bool) {
	r, g, b, ok := HexToRGB(color)
	if !ok {
		return "", false
	}
	return RGBToHex(
		int(tintBaseR+float64(r-tintBaseR)*factor),
		int(tintBaseG+float64(g-tintBaseG)*factor),
		int(tintBaseB+float64(b-tintBaseB)*factor),
	), true
}

// HSLToHex converts HSL (hue 0-360, saturation 0-100, lightness 0-100)
// to a hex color. Channel values truncate to integers rather than round;
// callers relying on exact reproducibility depend on this.
func HSLToHex(h, s, l float64) string {
	h /= 360.0
	s /= 100.0
	l /= 100.0

	var r, g, b float64
	if s == 0 {
		r, g, b = l, l, l
	} else {
		var q float64
		if l < 0.5 {
			q = l * (1 + s)
		} else {
			q = l + s - l*s
		}
		p := 2*l - q
		r = hueToRGB(p, q, h+1.0/3.0)
		g = hueToRGB(p, q, h)
		b = hueToRGB(p, q, h-1.0/3.0)
	}

	return RGBToHex(int(r*255), int(g*255), int(b*255))
}

func hueToRGB(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	switch {
	case t < 1.0/6.0:
		return p + (q-p)*6*t
	case t < 1.0/2.0:
		return q
	case t < 2.0/3.0:
		return p + (q-p)*(2.0/3.0-t)*6
	}
	return p
}

// Generate derives a deterministic, distinctive hex color for the given key.
// An empty key maps to a fixed sentinel key rather than undefined behavior.
func Generate(key string) string {
	if key == "" {
		key = defaultKey
	}

	digest := md5.Sum([]byte(key))
	seed, err := strconv.ParseUint(hex.EncodeToString(digest[:])[:8], 16, 64)
	if err != nil {
		// Unreachable: the digest prefix is always valid hex.
		seed = 0
	}

	hue := math.Mod(float64(seed)*goldenRatioConjugate, 1.0) * 360

	return HSLToHex(hue, defaultSaturation, defaultLightness)
}
