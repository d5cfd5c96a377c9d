// Package theme classifies a generated HTML document as light or dark so
// composed pages can seed their color scheme to match. The heuristics are
// best-effort display polish; nothing downstream depends on them for
// correctness.
package theme

import (
	"regexp"
	"strings"
)

// bodyBackgroundRe finds the first background declaration inside a CSS rule
// whose selector mentions html or body. The selector span excludes tag
// markup so the <html> element itself cannot bind to an unrelated rule.
var bodyBackgroundRe = regexp.MustCompile(`(?is)\b(?:html|body)\b[^{}<>]*\{[^{}]*?background(?:-color)?\s*:\s*([^;}!]+)`)

// darkClassRe matches a class attribute whose value contains "dark", or an
// explicit data-theme="dark"
var (
	darkClassRe     = regexp.MustCompile(`(?i)class\s*=\s*["'][^"']*dark`)
	darkDataAttrRe  = regexp.MustCompile(`(?i)data-theme\s*=\s*["']dark["']`)
	darkUtilityRe   = regexp.MustCompile(`\bbg-(?:slate|gray|zinc|neutral|stone)-(?:800|850|900|950)\b`)
)

// knownDarkLiterals are background values that always classify as dark
var knownDarkLiterals = map[string]bool{
	"black":   true,
	"#000":    true,
	"#0a0a0a": true,
	"#111":    true,
	"#18181b": true,
	"#1a1a1a": true,
	"#0d0d0d": true,
}

// IsDark infers whether a generated document uses a dark visual theme.
// Checks run in order and the first positive signal wins:
//
//  1. a body/html CSS background whose hex color starts in the 0-3 range,
//     or matches a known-dark literal
//  2. a class attribute containing "dark", or data-theme="dark"
//  3. a dark-toned Tailwind-style background utility class
//
// Anything else classifies light.
func IsDark(doc string) bool {
	if m := bodyBackgroundRe.FindStringSubmatch(doc); m != nil {
		value := strings.ToLower(strings.TrimSpace(m[1]))
		if isDarkColor(value) {
			return true
		}
	}

	if darkClassRe.MatchString(doc) || darkDataAttrRe.MatchString(doc) {
		return true
	}

	return darkUtilityRe.MatchString(doc)
}

func isDarkColor(value string) bool {
	if knownDarkLiterals[value] {
		return true
	}
	if strings.HasPrefix(value, "#") && len(value) > 1 {
		return value[1] >= '0' && value[1] <= '3'
	}
	return false
}
