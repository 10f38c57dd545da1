package engine

import (
	"errors"
	"fmt"
	"strings"
)

// ErrBadArt is returned when image art cannot be parsed.
var ErrBadArt = errors.New("invalid image art")

// ParseArt converts arcade-style image art into a bitmap. Each non-blank line
// is one row; cells are separated by whitespace and are either '.' for
// transparent or a single hex digit palette index.
func ParseArt(art string) (*Bitmap, error) {
	var rows [][]Color
	width := -1
	for lineNo, line := range strings.Split(art, "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		row := make([]Color, len(fields))
		for i, f := range fields {
			c, err := parseArtCell(f)
			if err != nil {
				return nil, fmt.Errorf("line %d column %d: %w", lineNo+1, i+1, err)
			}
			row[i] = c
		}
		if width == -1 {
			width = len(row)
		} else if len(row) != width {
			return nil, fmt.Errorf("line %d has %d cells, expected %d: %w", lineNo+1, len(row), width, ErrBadArt)
		}
		rows = append(rows, row)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("no rows: %w", ErrBadArt)
	}

	b := NewBitmap(width, len(rows))
	for y, row := range rows {
		copy(b.pix[y*width:], row)
	}
	return b, nil
}

func parseArtCell(s string) (Color, error) {
	if len(s) != 1 {
		return 0, fmt.Errorf("cell %q: %w", s, ErrBadArt)
	}
	ch := s[0]
	switch {
	case ch == '.':
		return Transparent, nil
	case ch >= '0' && ch <= '9':
		return Color(ch - '0'), nil
	case ch >= 'a' && ch <= 'f':
		return Color(ch-'a') + 10, nil
	case ch >= 'A' && ch <= 'F':
		return Color(ch-'A') + 10, nil
	}
	return 0, fmt.Errorf("cell %q: %w", s, ErrBadArt)
}
