package core

import (
	"testing"
	"time"
)

func TestParseSortOption(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    SortOption
		wantErr bool
	}{
		{name: "Created Desc", input: "createdAt_desc", want: SortCreatedDesc},
		{name: "Created Asc", input: "createdAt_asc", want: SortCreatedAsc},
		{name: "Title Asc", input: "title_asc", want: SortTitleAsc},
		{name: "Title Desc", input: "title_desc", want: SortTitleDesc},
		{name: "Empty", input: "", wantErr: true},
		{name: "Unknown", input: "updatedAt_desc", wantErr: true},
		{name: "Case Matters", input: "TITLE_ASC", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSortOption(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseSortOption() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if err != nil {
				return
			}
			if got != tt.want {
				t.Errorf("ParseSortOption() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSortNotes(t *testing.T) {
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	mk := func(title string, age time.Duration, pinned bool) Note {
		return Note{ID: title, Title: title, CreatedAt: base.Add(-age), IsPinned: pinned}
	}

	notes := []Note{
		mk("banana", 2*time.Hour, false),
		mk("Apple", 1*time.Hour, false),
		mk("cherry", 3*time.Hour, true),
		mk("date", 30*time.Minute, true),
	}

	tests := []struct {
		name   string
		option SortOption
		want   []string
	}{
		{name: "Created Desc", option: SortCreatedDesc, want: []string{"date", "cherry", "Apple", "banana"}},
		{name: "Created Asc", option: SortCreatedAsc, want: []string{"cherry", "date", "banana", "Apple"}},
		{name: "Title Asc", option: SortTitleAsc, want: []string{"cherry", "date", "Apple", "banana"}},
		{name: "Title Desc", option: SortTitleDesc, want: []string{"date", "cherry", "banana", "Apple"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sortNotes(notes, tt.option)
			if len(got) != len(tt.want) {
				t.Fatalf("sortNotes() returned %d notes, want %d", len(got), len(tt.want))
			}
			for i, id := range tt.want {
				if got[i].ID != id {
					t.Errorf("position %d = %s, want %s", i, got[i].ID, id)
				}
			}
			// Pinned partition always leads.
			for i, n := range got {
				if i < 2 && !n.IsPinned {
					t.Errorf("position %d should be pinned", i)
				}
				if i >= 2 && n.IsPinned {
					t.Errorf("position %d should be unpinned", i)
				}
			}
		})
	}
}

func TestSortNotesStable(t *testing.T) {
	ts := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	notes := []Note{
		{ID: "first", Title: "same", CreatedAt: ts},
		{ID: "second", Title: "same", CreatedAt: ts},
	}

	got := sortNotes(notes, SortTitleAsc)
	if got[0].ID != "first" || got[1].ID != "second" {
		t.Errorf("equal keys should keep input order, got [%s, %s]", got[0].ID, got[1].ID)
	}
}

func TestSortNotesDoesNotMutateInput(t *testing.T) {
	notes := []Note{
		{ID: "a", CreatedAt: time.Now()},
		{ID: "b", CreatedAt: time.Now().Add(time.Hour)},
	}

	_ = sortNotes(notes, SortCreatedDesc)
	if notes[0].ID != "a" || notes[1].ID != "b" {
		t.Error("sortNotes must not reorder its input slice")
	}
}
