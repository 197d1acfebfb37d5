package core

import (
	"testing"
)

func TestIDFromContent(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "same content produces same ID",
			content: "coffee shop",
		},
		{
			name:    "empty string",
			content: "",
		},
		{
			name:    "long content",
			content: "A much longer place description with an address that should still hash consistently",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id1 := IDFromContent(tt.content)
			id2 := IDFromContent(tt.content)

			if id1 != id2 {
				t.Errorf("IDFromContent() produced different IDs for same content: %d vs %d", id1, id2)
			}
		})
	}
}

func TestIDFromContent_Different(t *testing.T) {
	id1 := IDFromContent("Coffee Shop, 1 Main St")
	id2 := IDFromContent("Coffee Shop, 2 Main St")

	if id1 == id2 {
		t.Errorf("IDFromContent() produced same ID for different content")
	}
}

func TestPlace_Label(t *testing.T) {
	tests := []struct {
		name  string
		place Place
		want  string
	}{
		{
			name:  "name and address",
			place: Place{Name: "Coffee Shop", Address: "1 Main St"},
			want:  "Coffee Shop, 1 Main St",
		},
		{
			name:  "name only",
			place: Place{Name: "Coffee Shop"},
			want:  "Coffee Shop",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.place.Label()
			if got != tt.want {
				t.Errorf("Place.Label() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNormalizeQuery(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "trims whitespace", in: "  coffee  ", want: "coffee"},
		{name: "case folds", in: "Coffee Shop", want: "coffee shop"},
		{name: "collapses internal runs", in: "coffee \t  shop", want: "coffee shop"},
		{name: "whitespace only", in: " \t\n ", want: ""},
		{name: "empty", in: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeQuery(tt.in)
			if got != tt.want {
				t.Errorf("NormalizeQuery(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
