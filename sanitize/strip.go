package sanitize

import (
	"regexp"
	"strings"
)

// Precompiled patterns. All are immutable after init and safe for
// concurrent use.
var (
	// tagPattern matches a tag-shaped span: "<", one or more non-">"
	// characters, ">". It is purely syntactic and does not understand
	// nesting, quoting, or malformed markup.
	tagPattern = regexp.MustCompile(`<[^>]+>`)

	// eventAttrPattern matches a tag carrying an inline event-handler
	// attribute (onclick, onmouseover, ...) with a quoted value. Group 1
	// is the tag text before the attribute, group 2 the text from the
	// closing quote to ">", so replacing with "$1$2" excises the
	// attribute and keeps the tag.
	eventAttrPattern = regexp.MustCompile(`(?i)(<[^>]*)\son\w+=(?:'[^']*'|"[^"]*")([^>]*>)`)

	// Container tags whose contents are script, not text. When such a tag
	// is not allowlisted the whole block goes, contents included.
	scriptBlockPattern = regexp.MustCompile(`(?is)<script[^>]*>.*?</script>`)
	styleBlockPattern  = regexp.MustCompile(`(?is)<style[^>]*>.*?</style>`)
)

// IsBlank reports whether s is empty or consists only of whitespace.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// StripEvents returns text with inline event-handler attributes removed
// from every tag. The surrounding tag is kept. Blank input is returned
// unchanged.
//
// The rewrite runs in a loop until it reaches a fixed point, so tags
// carrying several event attributes are fully cleaned even though a
// single non-overlapping pass would miss some of them. The result is
// idempotent: StripEvents(StripEvents(x)) == StripEvents(x).
func StripEvents(text string) string {
	if IsBlank(text) {
		return text
	}
	for {
		next := eventAttrPattern.ReplaceAllString(text, "$1$2")
		if next == text {
			return text
		}
		text = next
	}
}

// StripTags returns text with markup tags removed. Blank input is
// returned unchanged.
//
// With no allowedTags every tag-shaped span is deleted in a single
// syntactic pass; text between tags is untouched.
//
// With allowedTags, only tags matching one of the entries survive.
// Entries are tag-name prefixes written with the opening delimiter, e.g.
// "<a" or "<b"; a trailing ">" is tolerated and stripped, and matching is
// case-insensitive. An entry admits the closing form of its tag as well,
// so "<b" keeps both <b> and </b> (and, being a prefix match, <br> too).
// Script and style blocks whose tag is not allowed are removed together
// with their contents. Tags that survive the allowlist are still piped
// through StripEvents, so inline handlers never make it to the output.
func StripTags(text string, allowedTags ...string) string {
	if IsBlank(text) {
		return text
	}
	prefixes := allowedPrefixes(allowedTags)
	if len(prefixes) == 0 {
		return tagPattern.ReplaceAllString(text, "")
	}

	keep := func(m string) bool {
		m = strings.ToLower(m)
		for _, p := range prefixes {
			if strings.HasPrefix(m, p) {
				return true
			}
		}
		return false
	}

	if !keep("<script>") {
		text = scriptBlockPattern.ReplaceAllString(text, "")
	}
	if !keep("<style>") {
		text = styleBlockPattern.ReplaceAllString(text, "")
	}

	out := tagPattern.ReplaceAllStringFunc(text, func(m string) string {
		if keep(m) {
			return m
		}
		return ""
	})
	return StripEvents(out)
}

// StripTagsList is StripTags with the allowlist supplied as a single
// string of entries separated by ";". A blank list strips every tag.
func StripTagsList(text, allowedTags string) string {
	if IsBlank(allowedTags) {
		return StripTags(text)
	}
	return StripTags(text, strings.Split(allowedTags, ";")...)
}

// allowedPrefixes normalizes allowlist entries into the lowercase
// prefixes an incoming tag-shaped span is checked against. Each entry
// "<name" contributes "</name" as well so closing tags survive.
func allowedPrefixes(entries []string) []string {
	prefixes := make([]string, 0, len(entries)*2)
	for _, e := range entries {
		e = strings.TrimSpace(e)
		e = strings.TrimSuffix(e, ">")
		if e == "" || e == "<" {
			continue
		}
		e = strings.ToLower(e)
		prefixes = append(prefixes, e)
		if strings.HasPrefix(e, "<") {
			prefixes = append(prefixes, "</"+e[1:])
		}
	}
	return prefixes
}
