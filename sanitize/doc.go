// Package sanitize removes unwanted markup from text.
//
// # Strip family
//
// [StripEvents], [StripTags], and [StripTagsList] are lightweight,
// pattern-based filters over tag-shaped spans (`<` ... `>`):
//   - [StripEvents] excises inline event-handler attributes (onclick,
//     onmouseover, ...) while keeping the surrounding tag, iterating to a
//     fixed point so tags with several handlers come out clean.
//   - [StripTags] deletes every tag, or only the tags not admitted by an
//     allowlist of prefixes such as "<a" or "<b", stripping events from
//     the survivors.
//   - [StripTagsList] accepts the allowlist as one ";"-separated string.
//
// The strip family is deliberately syntactic: it does not parse HTML,
// repair nesting, or detect malformed markup. Anything matching `<[^>]+>`
// is treated as a tag wherever it appears. That leniency is a feature
// for callers cleaning markup-ish text, and a caveat for callers needing
// real HTML semantics; those should use a [Policy] instead.
//
// No strip function ever fails: blank input (empty or whitespace-only)
// is returned unchanged, and there is no error return.
//
// # Policy sanitizer
//
// A [Policy] parses the input with golang.org/x/net/html, walks the node
// tree, and re-renders only the tags, attributes, and URL schemes it
// allows. URL-valued attributes are entity-decoded before the scheme
// check so encoded javascript: URLs cannot slip through. Two built-in
// policies are provided: [DefaultPolicy] for article-style content and
// [StrictPolicy] for short user-generated text.
//
// [PlainText] is the parser-based text extractor, decoding entities and
// honouring the DOM the parser actually builds.
//
// # Thread safety
//
// All functions are safe for concurrent use. A Policy must not be
// mutated after its first use.
package sanitize
