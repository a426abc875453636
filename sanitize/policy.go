package sanitize

import (
	"bytes"
	"io"
	"net/url"
	"strings"
	"sync"

	"golang.org/x/net/html"
)

// Policy is the attribute-aware counterpart to the strip family. Where
// StripTags works on raw tag prefixes, a Policy parses the input and
// decides per element which tags, attributes, and URL schemes may
// survive. A Policy must not be mutated after its first use.
type Policy struct {
	// AllowedTags lists the element names kept in output. Everything
	// else is stripped or escaped depending on StripDisallowed.
	AllowedTags []string

	// AllowedAttributes maps tag names to the attribute names kept on
	// that tag. The key "*" allows an attribute on every tag.
	AllowedAttributes map[string][]string

	// AllowedSchemes lists the URL schemes permitted in href, src, and
	// action attributes. Relative URLs always pass.
	AllowedSchemes []string

	// StripDisallowed removes disallowed elements together with their
	// descendants. When false the tags are escaped to visible text and
	// the descendants are still walked.
	StripDisallowed bool

	compileOnce sync.Once
	tags        map[string]bool
	schemes     map[string]bool
}

// DefaultPolicy returns a Policy allowing a common safe subset of content
// HTML: headings, paragraphs, inline formatting, lists, links, images,
// tables, code, and blockquotes. Links and image sources must use http,
// https, or mailto.
func DefaultPolicy() *Policy {
	return &Policy{
		AllowedTags: []string{
			"h1", "h2", "h3", "h4", "h5", "h6",
			"p", "br", "hr",
			"b", "i", "em", "strong", "u", "s", "del", "ins",
			"a", "img",
			"ul", "ol", "li",
			"table", "thead", "tbody", "tr", "th", "td",
			"code", "pre", "kbd", "samp",
			"blockquote", "cite", "q",
			"div", "span",
			"sup", "sub",
		},
		AllowedAttributes: map[string][]string{
			"a":          {"href", "title", "target", "rel"},
			"img":        {"src", "alt", "title", "width", "height"},
			"td":         {"colspan", "rowspan"},
			"th":         {"colspan", "rowspan", "scope"},
			"blockquote": {"cite"},
			"q":          {"cite"},
			"*":          {"id", "class", "lang", "dir"},
		},
		AllowedSchemes: []string{"http", "https", "mailto"},
	}
}

// StrictPolicy returns a Policy allowing only basic inline formatting
// with no attributes at all. Disallowed elements are removed outright.
// Suitable for comments and other short user-generated content.
func StrictPolicy() *Policy {
	return &Policy{
		AllowedTags:       []string{"b", "i", "em", "strong", "br", "p", "ul", "ol", "li"},
		AllowedAttributes: map[string][]string{},
		AllowedSchemes:    []string{"https"},
		StripDisallowed:   true,
	}
}

func (p *Policy) compile() {
	p.compileOnce.Do(func() {
		p.tags = make(map[string]bool, len(p.AllowedTags))
		for _, t := range p.AllowedTags {
			p.tags[strings.ToLower(t)] = true
		}
		p.schemes = make(map[string]bool, len(p.AllowedSchemes))
		for _, s := range p.AllowedSchemes {
			p.schemes[strings.ToLower(s)] = true
		}
	})
}

// Sanitize parses s and returns it re-rendered with only the tags,
// attributes, and URL schemes the policy allows. Attributes outside the
// allowlist, event handlers included, are dropped.
func (p *Policy) Sanitize(s string) (string, error) {
	return p.SanitizeReader(strings.NewReader(s))
}

// SanitizeReader is Sanitize reading the input HTML from r.
func (p *Policy) SanitizeReader(r io.Reader) (string, error) {
	p.compile()

	doc, err := html.Parse(r)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	// html.Parse wraps fragments in <html><head><body>; render from body.
	if body := findBody(doc); body != nil {
		for c := body.FirstChild; c != nil; c = c.NextSibling {
			p.render(&buf, c)
		}
	} else {
		p.render(&buf, doc)
	}
	return buf.String(), nil
}

func (p *Policy) render(buf *bytes.Buffer, n *html.Node) {
	switch n.Type {
	case html.TextNode:
		buf.WriteString(html.EscapeString(n.Data))

	case html.ElementNode:
		tag := strings.ToLower(n.Data)
		if !p.tags[tag] {
			if p.StripDisallowed {
				return
			}
			// Escape the tags to visible text but keep walking.
			buf.WriteString(html.EscapeString(openTagText(n)))
			for c := n.FirstChild; c != nil; c = c.NextSibling {
				p.render(buf, c)
			}
			if !voidElement(tag) {
				buf.WriteString(html.EscapeString("</" + tag + ">"))
			}
			return
		}

		buf.WriteByte('<')
		buf.WriteString(tag)
		for _, a := range p.filterAttrs(tag, n.Attr) {
			buf.WriteByte(' ')
			buf.WriteString(strings.ToLower(a.Key))
			buf.WriteString(`="`)
			buf.WriteString(html.EscapeString(a.Val))
			buf.WriteByte('"')
		}
		if voidElement(tag) {
			buf.WriteString(" />")
			return
		}
		buf.WriteByte('>')
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			p.render(buf, c)
		}
		buf.WriteString("</")
		buf.WriteString(tag)
		buf.WriteByte('>')

	case html.CommentNode, html.DoctypeNode:
		// dropped

	default:
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			p.render(buf, c)
		}
	}
}

func (p *Policy) filterAttrs(tag string, attrs []html.Attribute) []html.Attribute {
	out := attrs[:0]
	for _, a := range attrs {
		key := strings.ToLower(a.Key)
		if !p.attrAllowed(tag, key) {
			continue
		}
		if key == "href" || key == "src" || key == "action" {
			if !p.schemeAllowed(a.Val) {
				continue
			}
		}
		out = append(out, a)
	}
	return out
}

func (p *Policy) attrAllowed(tag, attr string) bool {
	for _, a := range p.AllowedAttributes["*"] {
		if strings.EqualFold(a, attr) {
			return true
		}
	}
	for _, a := range p.AllowedAttributes[tag] {
		if strings.EqualFold(a, attr) {
			return true
		}
	}
	return false
}

// schemeAllowed decides whether a URL-valued attribute survives. The
// value is entity-decoded first so &#106;avascript: and friends cannot
// smuggle a scheme past the check, and control characters are dropped
// before parsing.
func (p *Policy) schemeAllowed(raw string) bool {
	v := html.UnescapeString(strings.TrimSpace(raw))
	v = strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7f {
			return -1
		}
		return r
	}, strings.ToLower(strings.TrimSpace(v)))

	u, err := url.Parse(v)
	if err != nil {
		return false
	}
	if u.Scheme == "" {
		// Relative URL.
		return true
	}
	return p.schemes[strings.ToLower(u.Scheme)]
}

// PlainText parses s and returns only its text content, entities
// decoded. It is the DOM-accurate sibling of StripTags: markup that the
// parser repairs or discards never reaches the output.
func PlainText(s string) (string, error) {
	doc, err := html.Parse(strings.NewReader(s))
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	if body := findBody(doc); body != nil {
		walk(body)
	} else {
		walk(doc)
	}
	return buf.String(), nil
}

func openTagText(n *html.Node) string {
	var sb strings.Builder
	sb.WriteByte('<')
	sb.WriteString(n.Data)
	for _, a := range n.Attr {
		sb.WriteByte(' ')
		sb.WriteString(a.Key)
		sb.WriteString(`="`)
		sb.WriteString(a.Val)
		sb.WriteByte('"')
	}
	sb.WriteByte('>')
	return sb.String()
}

func voidElement(tag string) bool {
	switch tag {
	case "area", "base", "br", "col", "embed", "hr", "img", "input",
		"link", "meta", "param", "source", "track", "wbr":
		return true
	}
	return false
}

func findBody(doc *html.Node) *html.Node {
	var find func(*html.Node) *html.Node
	find = func(n *html.Node) *html.Node {
		if n.Type == html.ElementNode && n.Data == "body" {
			return n
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if r := find(c); r != nil {
				return r
			}
		}
		return nil
	}
	return find(doc)
}
