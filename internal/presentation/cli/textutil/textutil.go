// Package textutil provides small formatting helpers for terminal text.
package textutil

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
	"golang.org/x/net/html"
)

// SingleLine collapses whitespace into single spaces.
func SingleLine(text string) string {
	if text == "" {
		return ""
	}
	return strings.Join(strings.Fields(text), " ")
}

// Truncate trims a string to the given width with an ellipsis.
func Truncate(text string, width int) string {
	if width <= 0 {
		return ""
	}
	return ansi.Truncate(text, width, "...")
}

var lineBreakTags = map[string]bool{
	"br": true, "p": true, "div": true, "li": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
}

var skippedTags = map[string]bool{
	"img": true, "script": true, "style": true,
}

// HTMLToText renders an HTML description as plain text. Source newlines are
// dropped and images removed; paragraph-like elements become line breaks.
func HTMLToText(desc string) string {
	if desc == "" {
		return ""
	}
	desc = strings.ReplaceAll(desc, "\r", "")
	desc = strings.ReplaceAll(desc, "\n", "")

	doc, err := html.Parse(strings.NewReader(desc))
	if err != nil {
		return SingleLine(desc)
	}

	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && skippedTags[n.Data] {
			return
		}
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
		if n.Type == html.ElementNode && lineBreakTags[n.Data] {
			b.WriteString("\n")
		}
	}
	walk(doc)

	lines := strings.Split(b.String(), "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if line = SingleLine(line); line != "" {
			out = append(out, line)
		}
	}
	return strings.Join(out, "\n")
}
