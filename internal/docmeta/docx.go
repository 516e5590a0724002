package docmeta

import (
	"fmt"
	"os"
	"strings"

	"github.com/fumiama/go-docx"
)

// inspectDOCX returns the document's title: the first Title or Heading1
// paragraph, else the first non-empty paragraph.
func inspectDOCX(path string, size int64) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open docx: %w", err)
	}
	defer f.Close()

	doc, err := docx.Parse(f, size)
	if err != nil {
		return "", fmt.Errorf("parse docx: %w", err)
	}

	first := ""
	for _, item := range doc.Document.Body.Items {
		para, ok := item.(*docx.Paragraph)
		if !ok {
			continue
		}
		text := docxParagraphText(para)
		if text == "" {
			continue
		}
		if isTitleStyle(para) {
			return text, nil
		}
		if first == "" {
			first = text
		}
	}
	return first, nil
}

func isTitleStyle(para *docx.Paragraph) bool {
	if para.Properties == nil || para.Properties.Style == nil {
		return false
	}
	switch strings.ToLower(strings.ReplaceAll(para.Properties.Style.Val, " ", "")) {
	case "title", "heading1":
		return true
	}
	return false
}

func docxParagraphText(para *docx.Paragraph) string {
	var buf strings.Builder
	for _, child := range para.Children {
		run, ok := child.(*docx.Run)
		if !ok {
			continue
		}
		for _, rc := range run.Children {
			if t, ok := rc.(*docx.Text); ok {
				buf.WriteString(t.Text)
			}
		}
	}
	return strings.TrimSpace(buf.String())
}
