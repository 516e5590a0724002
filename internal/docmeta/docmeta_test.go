package docmeta

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fumiama/go-docx"
)

func TestHumanSize(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{0, "0 B"},
		{-4, "0 B"},
		{800, "800 B"},
		{800000, "800 kB"},
		{2500000, "2.5 MB"},
	}
	for _, tt := range tests {
		if got := HumanSize(tt.n); got != tt.want {
			t.Errorf("HumanSize(%d): expected %q, got %q", tt.n, tt.want, got)
		}
	}
}

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestInspect_PlainFile(t *testing.T) {
	path := writeFile(t, "notes.txt", []byte("hello world"))
	meta, err := Inspect(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if meta.Size != 11 {
		t.Errorf("expected size 11, got %d", meta.Size)
	}
	if meta.Pages != 0 || meta.Title != "" {
		t.Errorf("expected no document metadata, got %+v", meta)
	}
	if meta.HumanSize() != "11 B" {
		t.Errorf("expected %q, got %q", "11 B", meta.HumanSize())
	}
}

func TestInspect_MissingFile(t *testing.T) {
	if _, err := Inspect(filepath.Join(t.TempDir(), "gone.pdf")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestInspect_Directory(t *testing.T) {
	if _, err := Inspect(t.TempDir()); err == nil {
		t.Error("expected error for directory")
	}
}

func TestInspect_CorruptDocumentsKeepSize(t *testing.T) {
	for _, name := range []string{"broken.pdf", "broken.docx"} {
		data := []byte(strings.Repeat("not a real document ", 10))
		path := writeFile(t, name, data)

		meta, err := Inspect(path)
		if err == nil {
			t.Errorf("%s: expected parse error", name)
		}
		if meta.Size != int64(len(data)) {
			t.Errorf("%s: expected size %d, got %d", name, len(data), meta.Size)
		}
	}
}

func TestInspect_DOCXTitle(t *testing.T) {
	tests := []struct {
		name  string
		build func(d *docx.Docx)
		want  string
	}{
		{"title style wins", func(d *docx.Docx) {
			d.AddParagraph().AddText("Prepared by the bursar")
			d.AddParagraph().Style("Heading1").AddText("Fee Structure")
		}, "Fee Structure"},
		{"first paragraph fallback", func(d *docx.Docx) {
			d.AddParagraph()
			d.AddParagraph().AddText("Uniform Policy")
			d.AddParagraph().AddText("Details")
		}, "Uniform Policy"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := docx.New().WithDefaultTheme()
			tt.build(d)
			var buf bytes.Buffer
			if _, err := d.WriteTo(&buf); err != nil {
				t.Fatalf("write docx: %v", err)
			}
			path := writeFile(t, "doc.docx", buf.Bytes())

			meta, err := Inspect(path)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if meta.Title != tt.want {
				t.Errorf("expected title %q, got %q", tt.want, meta.Title)
			}
			if meta.Size != int64(buf.Len()) {
				t.Errorf("expected size %d, got %d", buf.Len(), meta.Size)
			}
		})
	}
}
