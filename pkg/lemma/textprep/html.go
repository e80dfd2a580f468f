// Package textprep prepares raw request text for tokenization.
package textprep

import (
	"strings"

	"golang.org/x/net/html"
)

// StripHTML extracts the visible text from markup so that pasted web pages
// analyze cleanly. Plain text passes through unchanged apart from
// whitespace normalization; the parser treats it as a single text node.
func StripHTML(s string) string {
	doc, err := html.Parse(strings.NewReader(s))
	if err != nil {
		// Fall back to the raw string if parsing fails
		return s
	}

	var buf strings.Builder
	var extractText func(*html.Node)
	extractText = func(n *html.Node) {
		if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style") {
			return
		}
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
			buf.WriteByte(' ')
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extractText(c)
		}
	}
	extractText(doc)

	return strings.Join(strings.Fields(buf.String()), " ")
}
