package formats

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-onet/internal/games/onet/board"
)

func TestParseYAMLValidation(t *testing.T) {
	tests := []struct {
		name string
		data string
		code string
	}{
		{"missing id", "rows: [\"11\"]", "MISSING_ID"},
		{"no size", "id: x", "INVALID_SIZE"},
		{"row count", "id: x\nsize: {w: 2, h: 2}\nrows: [\"11\"]", "ROW_COUNT"},
		{"row width", "id: x\nsize: {w: 2, h: 1}\nrows: [\"111\"]", "ROW_WIDTH"},
		{"bad tile", "id: x\nsize: {w: 2, h: 1}\nrows: [\"1#\"]", "INVALID_TILE"},
		{"zero tile", "id: x\nsize: {w: 2, h: 1}\nrows: [\"10\"]", "INVALID_TILE"},
		{"unpaired", "id: x\nsize: {w: 3, h: 1}\nrows: [\"1.2\"]", "UNPAIRED_TILE"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseYAML([]byte(tc.data))
			var verr ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("ParseYAML() = %v, expected ValidationError", err)
			}
			if verr.Code != tc.code {
				t.Errorf("Code = %q, expected %q", verr.Code, tc.code)
			}
		})
	}
}

func TestParseYAMLEmptyBoard(t *testing.T) {
	lvl, err := ParseYAML([]byte("id: blank\nsize: {w: 4, h: 3}\n"))
	if err != nil {
		t.Fatalf("ParseYAML() error = %v", err)
	}
	if lvl.Width != 4 || lvl.Height != 3 || len(lvl.Tiles) != 0 {
		t.Errorf("got %dx%d with %d tiles, expected empty 4x3", lvl.Width, lvl.Height, len(lvl.Tiles))
	}
	if lvl.Name != "blank" {
		t.Errorf("Name = %q, expected id fallback", lvl.Name)
	}
}

func TestParseTile(t *testing.T) {
	tests := []struct {
		ch       rune
		expected board.TileID
		ok       bool
	}{
		{'.', board.NoTile, true},
		{'1', 1, true},
		{'9', 9, true},
		{'a', 10, true},
		{'Z', 35, true},
		{'0', board.NoTile, false},
		{' ', board.NoTile, false},
	}

	for _, tc := range tests {
		got, ok := ParseTile(tc.ch)
		if got != tc.expected || ok != tc.ok {
			t.Errorf("ParseTile(%q) = %d, %v, expected %d, %v", tc.ch, got, ok, tc.expected, tc.ok)
		}
	}
}

func TestMarshalGridRoundTrip(t *testing.T) {
	g, err := board.NewGrid(3, 2)
	if err != nil {
		t.Fatal(err)
	}
	for c, tile := range map[board.Cell]board.TileID{
		board.C(1, 1): 4, board.C(3, 2): 4, board.C(2, 1): 12, board.C(2, 2): 12,
	} {
		if err := g.Set(c, tile); err != nil {
			t.Fatal(err)
		}
	}

	data, err := MarshalGrid("saved", "Saved board", g)
	if err != nil {
		t.Fatalf("MarshalGrid() error = %v", err)
	}
	lvl, err := ParseYAML(data)
	if err != nil {
		t.Fatalf("ParseYAML() of marshalled grid error = %v\n%s", err, data)
	}
	if lvl.Width != 3 || lvl.Height != 2 || len(lvl.Tiles) != 4 {
		t.Errorf("round trip = %dx%d with %d tiles", lvl.Width, lvl.Height, len(lvl.Tiles))
	}
	for c, tile := range lvl.Tiles {
		if g.Get(c) != tile {
			t.Errorf("tile at %s = %d, expected %d", c, tile, g.Get(c))
		}
	}
}
