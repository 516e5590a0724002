package richtext

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html"
)

// PlainText extracts the visible text of an HTML fragment with whitespace collapsed.
func PlainText(fragment string) (string, error) {
	doc, err := html.Parse(strings.NewReader(fragment))
	if err != nil {
		return "", fmt.Errorf("parse html: %w", err)
	}

	var buf strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			buf.WriteString(n.Data)
		case html.ElementNode:
			switch n.Data {
			case "script", "style", "head":
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
		// Block boundaries separate words that would otherwise run together.
		if n.Type == html.ElementNode && isBlock(n.Data) {
			buf.WriteByte(' ')
		}
	}
	walk(doc)

	return strings.Join(strings.Fields(buf.String()), " "), nil
}

// Excerpt returns at most limit runes of fragment's text, cut at a word
// boundary and marked with an ellipsis when shortened.
func Excerpt(fragment string, limit int) string {
	text, err := PlainText(fragment)
	if err != nil || limit <= 0 {
		return ""
	}
	if utf8.RuneCountInString(text) <= limit {
		return text
	}

	runes := []rune(text)
	cut := string(runes[:limit])
	if i := strings.LastIndexByte(cut, ' '); i > 0 {
		cut = cut[:i]
	}
	return strings.TrimRight(cut, " ,;:.") + "…"
}

func isBlock(tag string) bool {
	switch tag {
	case "p", "div", "li", "ul", "ol", "br", "tr", "td", "th", "blockquote", "pre",
		"h1", "h2", "h3", "h4", "h5", "h6", "section", "article":
		return true
	}
	return false
}
