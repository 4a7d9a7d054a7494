package search

import (
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"simple words", "grid columns", []string{"grid", "columns"}},
		{"case folding", "Grid COLUMNS", []string{"grid", "columns"}},
		{"punctuation split", "grid.setItems(items)", []string{"grid", "setitems", "items"}},
		{"stopwords dropped", "how to style the grid", []string{"style", "grid"}},
		{"single chars dropped", "a b grid", []string{"grid"}},
		{"digits kept", "vaadin 25 upgrade", []string{"vaadin", "25", "upgrade"}},
		{"single multibyte rune dropped", "é grid", []string{"grid"}},
		{"accented words kept", "café menü", []string{"café", "menü"}},
		{"empty", "", nil},
		{"only stopwords", "the of and", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tokenize(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("tokenize(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestTermCounts(t *testing.T) {
	counts := termCounts("grid grid columns")
	if counts["grid"] != 2 {
		t.Errorf("counts[grid] = %d, want 2", counts["grid"])
	}
	if counts["columns"] != 1 {
		t.Errorf("counts[columns] = %d, want 1", counts["columns"])
	}
}
