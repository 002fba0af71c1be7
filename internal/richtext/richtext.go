// Package richtext converts the CMS rich-text AST into HTML.
//
// The AST arrives as decoded JSON: text nodes carry a "text" payload plus
// boolean style flags, element nodes carry a "type" discriminator plus a
// "children" array. Unknown node types render their children with no
// wrapping tag, so future CMS node kinds degrade instead of breaking pages.
package richtext

import (
	"fmt"
	"html"
	"strings"
)

// node is the decoded form of one AST entry. A node is a text node when
// isText is set; otherwise it is an element dispatched on Type.
type node struct {
	Type     string
	Text     string
	isText   bool
	Attrs    map[string]any
	Children []node

	Bold          bool
	Italic        bool
	Underline     bool
	Strikethrough bool
	Code          bool
	Superscript   bool
	Subscript     bool
}

// styleWraps lists the inline style tags in their fixed application order,
// innermost first. The order is part of the output contract: a given flag
// combination always produces the same nesting.
var styleWraps = []struct {
	active func(node) bool
	tag    string
}{
	{func(n node) bool { return n.Subscript }, "sub"},
	{func(n node) bool { return n.Superscript }, "sup"},
	{func(n node) bool { return n.Code }, "code"},
	{func(n node) bool { return n.Strikethrough }, "s"},
	{func(n node) bool { return n.Underline }, "u"},
	{func(n node) bool { return n.Italic }, "em"},
	{func(n node) bool { return n.Bold }, "strong"},
}

// simpleWraps maps element types to plain wrapping tags. Types needing
// attributes (a, img) and void elements (hr, br) are handled separately.
var simpleWraps = map[string]string{
	"p":          "p",
	"h1":         "h1",
	"h2":         "h2",
	"h3":         "h3",
	"h4":         "h4",
	"h5":         "h5",
	"h6":         "h6",
	"ol":         "ol",
	"ul":         "ul",
	"li":         "li",
	"blockquote": "blockquote",
	"table":      "table",
	"thead":      "thead",
	"tbody":      "tbody",
	"tr":         "tr",
	"th":         "th",
	"td":         "td",
}

// ToHTML converts a rich-text value into an HTML string. It accepts a single
// node, a slice of nodes, or a wrapper object holding only a children array,
// so callers can hand over whatever shape the CMS returned. It never fails:
// unrecognized input converts to the empty string.
func ToHTML(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case []any:
		var b strings.Builder
		for _, item := range t {
			b.WriteString(ToHTML(item))
		}
		return b.String()
	case map[string]any:
		return renderNode(decode(t))
	default:
		return ""
	}
}

func decode(m map[string]any) node {
	n := node{}

	if text, ok := m["text"]; ok {
		n.isText = true
		n.Text, _ = text.(string)
		n.Bold = boolFlag(m, "bold")
		n.Italic = boolFlag(m, "italic")
		n.Underline = boolFlag(m, "underline")
		n.Strikethrough = boolFlag(m, "strikethrough")
		n.Code = boolFlag(m, "code")
		n.Superscript = boolFlag(m, "superscript")
		n.Subscript = boolFlag(m, "subscript")
		return n
	}

	n.Type, _ = m["type"].(string)
	if attrs, ok := m["attrs"].(map[string]any); ok {
		n.Attrs = attrs
	}
	if children, ok := m["children"].([]any); ok {
		for _, child := range children {
			if cm, ok := child.(map[string]any); ok {
				n.Children = append(n.Children, decode(cm))
			}
		}
	}
	return n
}

func boolFlag(m map[string]any, key string) bool {
	v, _ := m[key].(bool)
	return v
}

func renderNode(n node) string {
	if n.isText {
		return renderText(n)
	}

	inner := renderChildren(n.Children)

	if tag, ok := simpleWraps[n.Type]; ok {
		return fmt.Sprintf("<%s>%s</%s>", tag, inner, tag)
	}

	switch n.Type {
	case "hr":
		return "<hr />"
	case "br":
		return "<br />"
	case "a":
		return renderLink(n, inner)
	case "img":
		return renderImage(n)
	case "code":
		return fmt.Sprintf("<pre><code>%s</code></pre>", inner)
	default:
		// Pass-through policy: unknown or missing type emits its children
		// with no wrapping tag.
		return inner
	}
}

func renderText(n node) string {
	out := html.EscapeString(n.Text)
	for _, wrap := range styleWraps {
		if wrap.active(n) {
			out = fmt.Sprintf("<%s>%s</%s>", wrap.tag, out, wrap.tag)
		}
	}
	return out
}

func renderChildren(children []node) string {
	var b strings.Builder
	for _, child := range children {
		b.WriteString(renderNode(child))
	}
	return b.String()
}

func renderLink(n node, inner string) string {
	href := attrString(n.Attrs, "href", "url")
	target := attrString(n.Attrs, "target")

	var b strings.Builder
	b.WriteString(`<a href="`)
	b.WriteString(html.EscapeString(href))
	b.WriteString(`"`)
	if target != "" {
		b.WriteString(` target="`)
		b.WriteString(html.EscapeString(target))
		b.WriteString(`"`)
	}
	b.WriteString(">")
	b.WriteString(inner)
	b.WriteString("</a>")
	return b.String()
}

func renderImage(n node) string {
	src := attrString(n.Attrs, "src", "url")
	alt := attrString(n.Attrs, "alt")
	return fmt.Sprintf(`<img src="%s" alt="%s" />`, html.EscapeString(src), html.EscapeString(alt))
}

// attrString returns the first non-empty string value among the candidate
// attribute keys.
func attrString(attrs map[string]any, keys ...string) string {
	for _, key := range keys {
		if v, ok := attrs[key].(string); ok && v != "" {
			return v
		}
	}
	return ""
}
