package catalog

import (
	"os"
	"path/filepath"
	"testing"
)

func TestImageSetResolve(t *testing.T) {
	set := NewImageSet([]string{
		"B001_cover.jpg",
		"B001_back.jpg",
		"B002_cover.png",
		"B0010_cover.jpg",
	})

	cases := []struct {
		name   string
		code   string
		want   string
		wantOK bool
	}{
		{name: "first match wins", code: "B001", want: "B001_cover.jpg", wantOK: true},
		{name: "exact prefix only", code: "B0010", want: "B0010_cover.jpg", wantOK: true},
		{name: "other book", code: "B002", want: "B002_cover.png", wantOK: true},
		{name: "no match", code: "B999", wantOK: false},
		{name: "empty code", code: "", wantOK: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := set.Resolve(tc.code)
			if ok != tc.wantOK || got != tc.want {
				t.Fatalf("got %q,%v want %q,%v", got, ok, tc.want, tc.wantOK)
			}
		})
	}
}

func TestListImageDir(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"B002_cover.png", "B001_cover.jpg"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("img"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "thumbs"), 0o755); err != nil {
		t.Fatal(err)
	}

	set, err := ListImageDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if set.Len() != 2 {
		t.Fatalf("len=%d want 2 (subdirectory must be ignored)", set.Len())
	}
	if got, ok := set.Resolve("B001"); !ok || got != "B001_cover.jpg" {
		t.Fatalf("got %q,%v", got, ok)
	}

	if _, err := ListImageDir(filepath.Join(dir, "missing")); err == nil {
		t.Fatal("expected error for missing dir")
	}
}
