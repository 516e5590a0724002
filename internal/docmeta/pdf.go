package docmeta

import (
	"fmt"
	"strings"

	pdflib "github.com/ledongthuc/pdf"
)

func inspectPDF(path string) (pages int, title string, err error) {
	// The pdf reader panics on some malformed cross-reference tables.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("read pdf: %v", r)
		}
	}()

	f, reader, err := pdflib.Open(path)
	if err != nil {
		return 0, "", fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	pages = reader.NumPage()
	info := reader.Trailer().Key("Info")
	if !info.IsNull() {
		title = strings.TrimSpace(info.Key("Title").Text())
	}
	return pages, title, nil
}
