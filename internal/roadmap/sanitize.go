package roadmap

import (
	"regexp"
	"strings"
)

// The rewrite steps below assume the preceding ones already ran: fences
// must be gone before the brace span is extracted, and bare keys must
// be quoted before single-quote rewriting can run safely.
var (
	fenceRe         = regexp.MustCompile("```(?:json)?")
	braceSpanRe     = regexp.MustCompile(`(?s)\{.*\}`)
	trailingCommaRe = regexp.MustCompile(`,\s*([}\]])`)
	bareKeyRe       = regexp.MustCompile(`([{,]\s*)([A-Za-z_][A-Za-z0-9_]*)\s*:`)
	singleQuoteRe   = regexp.MustCompile(`([:\[{,]\s*)'([^']*)'`)
)

// Sanitize applies best-effort textual repairs to raw model output so
// a subsequent JSON parse has a fighting chance. It always returns a
// string; the result may still be invalid JSON and the caller must
// handle the parse failure.
func Sanitize(raw string) string {
	s := strings.TrimSpace(raw)

	// 1. Strip markdown code fences.
	s = fenceRe.ReplaceAllString(s, "")

	// 2. Keep only the span from the first '{' to the last '}'.
	// When no object span exists the string passes through unchanged.
	if span := braceSpanRe.FindString(s); span != "" {
		s = span
	}

	// Steps 3-5 only apply outside double-quoted string literals, so
	// apostrophes and comma/colon-shaped prose inside values survive.
	s = applyOutsideStrings(s, func(seg string) string {
		// 3. Drop trailing commas before a closing brace or bracket.
		seg = trailingCommaRe.ReplaceAllString(seg, "$1")

		// 4. Quote bare object keys.
		seg = bareKeyRe.ReplaceAllString(seg, `$1"$2":`)

		// 5. Rewrite single-quoted string literals to double quotes.
		// Only quotes opening a value or element position count.
		seg = singleQuoteRe.ReplaceAllString(seg, `$1"$2"`)

		return seg
	})

	return s
}

// applyOutsideStrings runs fn over the regions of s that lie outside
// double-quoted string literals, copying the literals through
// untouched. Backslash escapes inside literals are honored.
func applyOutsideStrings(s string, fn func(string) string) string {
	var out strings.Builder
	var seg strings.Builder
	inString := false
	escaped := false

	for i := 0; i < len(s); i++ {
		c := s[i]

		if inString {
			out.WriteByte(c)
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}

		if c == '"' {
			out.WriteString(fn(seg.String()))
			seg.Reset()
			out.WriteByte(c)
			inString = true
			continue
		}

		seg.WriteByte(c)
	}

	out.WriteString(fn(seg.String()))
	return out.String()
}
