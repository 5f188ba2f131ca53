package loader

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(p, []byte("\xEF\xBB\xBFhello world\n"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	doc, err := Load(context.Background(), p, Options{StripBOM: true})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if doc.Content != "hello world\n" {
		t.Fatalf("content = %q", doc.Content)
	}
	if doc.Size != 15 || doc.Path != p {
		t.Fatalf("unexpected doc: %+v", doc)
	}

	doc, err = Load(context.Background(), p, Options{})
	if err != nil {
		t.Fatalf("Load without strip: %v", err)
	}
	if doc.Content[:3] != "\xEF\xBB\xBF" {
		t.Fatalf("BOM should be kept when StripBOM is false")
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	big := filepath.Join(dir, "big.log")
	if err := os.WriteFile(big, make([]byte, 2048), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	bin := filepath.Join(dir, "blob.txt")
	if err := os.WriteFile(bin, []byte{0xff, 0xfe, 0x00}, 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cases := []struct {
		name string
		path string
		opts Options
		want error
	}{
		{"missing", filepath.Join(dir, "nope.txt"), Options{}, ErrNotFound},
		{"directory", dir, Options{}, ErrIsDirectory},
		{"too large", big, Options{MaxSize: 1024}, ErrTooLarge},
		{"invalid utf8", bin, Options{}, ErrInvalidUTF8},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Load(context.Background(), c.path, c.opts)
			if !errors.Is(err, c.want) {
				t.Fatalf("Load(%s) error = %v, want %v", c.path, err, c.want)
			}
		})
	}
}

func TestLoadCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Load(ctx, "whatever.txt", Options{}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestDecodeEmpty(t *testing.T) {
	doc, err := Decode("empty.md", nil, Options{StripBOM: true})
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if doc.Content != "" || doc.Size != 0 {
		t.Fatalf("unexpected doc: %+v", doc)
	}
}
