// Package docmeta inspects downloadable documents so listings can show a
// size and page count even when editors leave them blank.
package docmeta

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
)

// Meta describes a document on disk.
type Meta struct {
	Size  int64
	Pages int // 0 when unknown
	Title string
}

// HumanSize formats a byte count the way download listings show it ("2.5 MB").
func (m Meta) HumanSize() string {
	return HumanSize(m.Size)
}

func HumanSize(n int64) string {
	if n < 0 {
		n = 0
	}
	return humanize.Bytes(uint64(n))
}

// Inspect stats path and, for PDF and DOCX files, reads document metadata.
// Size is filled in even when the document itself cannot be parsed.
func Inspect(path string) (Meta, error) {
	info, err := os.Stat(path)
	if err != nil {
		return Meta{}, fmt.Errorf("stat document: %w", err)
	}
	if info.IsDir() {
		return Meta{}, fmt.Errorf("stat document: %s is a directory", path)
	}
	meta := Meta{Size: info.Size()}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		pages, title, err := inspectPDF(path)
		if err != nil {
			return meta, err
		}
		meta.Pages, meta.Title = pages, title
	case ".docx":
		title, err := inspectDOCX(path, info.Size())
		if err != nil {
			return meta, err
		}
		meta.Title = title
	}
	return meta, nil
}
