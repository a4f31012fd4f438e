package images

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSanitizeFilename(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{input: "B001_cover.jpg", want: "B001_cover.jpg"},
		{input: "a b&c.jpg", want: "a_b_c.jpg"},
		{input: "gold (front).png", want: "gold_front_.png"},
		{input: "already-safe.file.name", want: "already-safe.file.name"},
	}

	for _, tc := range cases {
		if got := SanitizeFilename(tc.input); got != tc.want {
			t.Fatalf("SanitizeFilename(%q) = %q want %q", tc.input, got, tc.want)
		}
	}
}

func TestCopyAll(t *testing.T) {
	source := t.TempDir()
	target := filepath.Join(t.TempDir(), "images")

	if err := os.WriteFile(filepath.Join(source, "B001 cover.jpg"), []byte("img-1"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(source, "B002_cover.jpg"), []byte("img-2"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.Mkdir(filepath.Join(source, "nested"), 0o755); err != nil {
		t.Fatal(err)
	}

	copied, err := CopyAll(source, target)
	if err != nil {
		t.Fatal(err)
	}
	if copied != 2 {
		t.Fatalf("copied=%d want 2", copied)
	}

	blob, err := os.ReadFile(filepath.Join(target, "B001_cover.jpg"))
	if err != nil {
		t.Fatal(err)
	}
	if string(blob) != "img-1" {
		t.Fatalf("content %q", blob)
	}
	if _, err := os.Stat(filepath.Join(target, "B002_cover.jpg")); err != nil {
		t.Fatal(err)
	}
}

func TestCopyAllMissingSource(t *testing.T) {
	if _, err := CopyAll(filepath.Join(t.TempDir(), "missing"), t.TempDir()); err == nil {
		t.Fatal("expected error")
	}
}
