package core

import (
	"encoding/json"
	"testing"
	"time"
)

func TestNormalizeTags(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{"nil", nil, []string{}},
		{"empty", []string{}, []string{}},
		{"duplicates collapse", []string{"a", "b", "a"}, []string{"a", "b"}},
		{"empties dropped", []string{"", "a", ""}, []string{"a"}},
		{"first-seen order kept", []string{"c", "a", "c", "b", "a"}, []string{"c", "a", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := normalizeTags(tt.in)
			if len(got) != len(tt.want) {
				t.Fatalf("normalizeTags(%v) = %v, want %v", tt.in, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("normalizeTags(%v)[%d] = %q, want %q", tt.in, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestNoteWithoutTag(t *testing.T) {
	n := Note{Tags: []string{"a", "b", "c"}}

	got := n.WithoutTag("b")
	if len(got) != 2 || got[0] != "a" || got[1] != "c" {
		t.Errorf("WithoutTag(b) = %v, want [a c]", got)
	}
	if len(n.Tags) != 3 {
		t.Error("WithoutTag must not mutate the receiver")
	}

	got = n.WithoutTag("missing")
	if len(got) != 3 {
		t.Errorf("WithoutTag(missing) = %v, want all tags", got)
	}
}

func TestNoteHasTag(t *testing.T) {
	n := Note{Tags: []string{"a", "b"}}
	if !n.HasTag("a") {
		t.Error("expected HasTag(a) = true")
	}
	if n.HasTag("z") {
		t.Error("expected HasTag(z) = false")
	}
}

func TestNoteWireShape(t *testing.T) {
	n := Note{
		ID:        "n1",
		Title:     "t",
		Content:   "c",
		Tags:      []string{"tag1"},
		IsPinned:  true,
		CreatedAt: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
		UpdatedAt: time.Date(2024, 5, 2, 10, 0, 0, 0, time.UTC),
	}

	data, err := json.Marshal(n)
	if err != nil {
		t.Fatal(err)
	}

	// The persisted field names are a compatibility contract with existing
	// data files.
	var fields map[string]any
	if err := json.Unmarshal(data, &fields); err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"id", "title", "content", "tags", "isPinned", "createdAt", "updatedAt"} {
		if _, ok := fields[want]; !ok {
			t.Errorf("marshaled note missing field %q", want)
		}
	}
}

func TestTagWireShape(t *testing.T) {
	data, err := json.Marshal(Tag{ID: "t1", Name: "work"})
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `{"id":"t1","name":"work"}` {
		t.Errorf("color must be omitted when empty, got %s", data)
	}
}
