// Package formats provides pluggable board file format parsers.
package formats

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-onet/internal/games/onet/board"
	"gopkg.in/yaml.v3"
)

// YAMLLevel represents the YAML structure for a board file.
//
//	id: tutorial
//	name: First steps
//	size: {w: 4, h: 2}
//	rows:
//	  - "1..1"
//	  - "2a2a"
//
// Each row character is a tile in base 36 ('1'-'9', 'a'-'z');
// '.' marks an empty cell.
type YAMLLevel struct {
	ID       string            `yaml:"id"`
	Name     string            `yaml:"name"`
	Size     YAMLSize          `yaml:"size"`
	Kinds    int               `yaml:"kinds,omitempty"`
	Rows     []string          `yaml:"rows"`
	Metadata map[string]string `yaml:"metadata,omitempty"`
}

// YAMLSize represents play area dimensions.
type YAMLSize struct {
	W int `yaml:"w"`
	H int `yaml:"h"`
}

// Level represents a parsed board ready for use. Tiles are keyed by grid
// cell, so the top-left playable cell is (1,1).
type Level struct {
	ID       string
	Name     string
	Width    int
	Height   int
	Kinds    int
	Tiles    map[board.Cell]board.TileID
	Metadata map[string]string
}

// ValidationError contains details about a malformed board file.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// ParseYAML parses a YAML board file.
func ParseYAML(data []byte) (Level, error) {
	var yl YAMLLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Level{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	if yl.ID == "" {
		return Level{}, ValidationError{Code: "MISSING_ID", Message: "board has no id"}
	}

	width, height := yl.Size.W, yl.Size.H
	if width == 0 && height == 0 && len(yl.Rows) > 0 {
		// Size may be left out and taken from the rows.
		width, height = len(yl.Rows[0]), len(yl.Rows)
	}
	if width <= 0 || height <= 0 {
		return Level{}, ValidationError{
			Code:    "INVALID_SIZE",
			Message: fmt.Sprintf("size must be positive, got %dx%d", width, height),
		}
	}
	if len(yl.Rows) != 0 && len(yl.Rows) != height {
		return Level{}, ValidationError{
			Code:    "ROW_COUNT",
			Message: fmt.Sprintf("expected %d rows, got %d", height, len(yl.Rows)),
		}
	}

	level := Level{
		ID:       yl.ID,
		Name:     yl.Name,
		Width:    width,
		Height:   height,
		Kinds:    yl.Kinds,
		Tiles:    make(map[board.Cell]board.TileID),
		Metadata: yl.Metadata,
	}
	if level.Name == "" {
		level.Name = yl.ID
	}

	counts := make(map[board.TileID]int)
	for r, row := range yl.Rows {
		row = strings.TrimSpace(row)
		if len(row) != width {
			return Level{}, ValidationError{
				Code:    "ROW_WIDTH",
				Message: fmt.Sprintf("row %d has %d cells, expected %d", r+1, len(row), width),
			}
		}
		for c, ch := range row {
			tile, ok := ParseTile(ch)
			if !ok {
				return Level{}, ValidationError{
					Code:    "INVALID_TILE",
					Message: fmt.Sprintf("row %d column %d: unknown tile %q", r+1, c+1, ch),
				}
			}
			if tile == board.NoTile {
				continue
			}
			level.Tiles[board.C(c+1, r+1)] = tile
			counts[tile]++
		}
	}

	for tile, n := range counts {
		if n%2 != 0 {
			return Level{}, ValidationError{
				Code:    "UNPAIRED_TILE",
				Message: fmt.Sprintf("tile %c appears %d times", board.TileRune(tile), n),
			}
		}
	}
	if level.Kinds == 0 {
		level.Kinds = len(counts)
	}

	return level, nil
}

// ParseTile reads one row character. ok is false for characters that are
// neither '.' nor a base-36 digit above zero.
func ParseTile(ch rune) (board.TileID, bool) {
	switch {
	case ch == '.':
		return board.NoTile, true
	case ch >= '1' && ch <= '9':
		return board.TileID(ch - '0'), true
	case ch >= 'a' && ch <= 'z':
		return board.TileID(ch-'a') + 10, true
	case ch >= 'A' && ch <= 'Z':
		return board.TileID(ch-'A') + 10, true
	default:
		return board.NoTile, false
	}
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}

// MarshalGrid renders a grid back into the YAML board format.
func MarshalGrid(id, name string, g *board.Grid) ([]byte, error) {
	yl := YAMLLevel{
		ID:   id,
		Name: name,
		Size: YAMLSize{W: g.Columns() - 2, H: g.Rows() - 2},
		Rows: strings.Split(g.String(), "\n"),
	}
	return yaml.Marshal(yl)
}
