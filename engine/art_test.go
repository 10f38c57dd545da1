package engine

import (
	"errors"
	"testing"
)

func TestParseArt(t *testing.T) {
	b, err := ParseArt(`
		. 1 .
		f . a
	`)
	if err != nil {
		t.Fatalf("ParseArt failed: %v", err)
	}
	if b.Width() != 3 || b.Height() != 2 {
		t.Fatalf("size = %dx%d, want 3x2", b.Width(), b.Height())
	}
	if b.Pixel(1, 0) != White {
		t.Errorf("Pixel(1,0) = %v, want white", b.Pixel(1, 0))
	}
	if b.Pixel(0, 1) != Black {
		t.Errorf("Pixel(0,1) = %v, want black", b.Pixel(0, 1))
	}
	if b.Pixel(2, 1) != Purple {
		t.Errorf("Pixel(2,1) = %v, want purple", b.Pixel(2, 1))
	}
}

func TestParseArt_Errors(t *testing.T) {
	tests := []struct {
		name string
		art  string
	}{
		{"empty", "   \n  "},
		{"ragged", ". .\n. . ."},
		{"bad cell", ". g"},
		{"multi char cell", ". 11"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseArt(tc.art)
			if !errors.Is(err, ErrBadArt) {
				t.Errorf("ParseArt(%q) error = %v, want ErrBadArt", tc.art, err)
			}
		})
	}
}
