package catalog

import (
	"testing"

	"bookbridge/internal"
)

func TestBuildAuthorIndex(t *testing.T) {
	idx := BuildAuthorIndex([]internal.AuthorRecord{
		{ID: "A1", FirstName: "Jane", LastName: "Doe"},
		{ID: "A2", FirstName: "", LastName: "Stirling"},
		{ID: "A3", FirstName: " ", LastName: " "},
		{ID: "A4", FirstName: "Tom", LastName: ""},
		{ID: "A1", FirstName: "Janet", LastName: "Doe"},
	})

	if len(idx) != 3 {
		t.Fatalf("len=%d want 3", len(idx))
	}
	if idx["A1"] != "Janet Doe" {
		t.Fatalf("last write should win, got %q", idx["A1"])
	}
	if idx["A2"] != "Stirling" {
		t.Fatalf("got %q", idx["A2"])
	}
	if idx["A4"] != "Tom" {
		t.Fatalf("got %q", idx["A4"])
	}
	if _, ok := idx["A3"]; ok {
		t.Fatalf("empty display name should be omitted")
	}
}
