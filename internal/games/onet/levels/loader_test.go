package levels

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-onet/internal/games/onet/board"
	"github.com/vovakirdan/tui-onet/internal/games/onet/levels/formats"
)

func testdataPath() string {
	return filepath.Join("testdata", "boards")
}

func TestLoaderLoadAll(t *testing.T) {
	loader := NewLoader(testdataPath())

	lvls, err := loader.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}

	// broken.yaml and notes.txt are skipped
	if len(lvls) != 3 {
		t.Fatalf("expected 3 levels, got %d", len(lvls))
	}

	for i := 1; i < len(lvls); i++ {
		if lvls[i-1].ID >= lvls[i].ID {
			t.Errorf("levels not sorted: %s >= %s", lvls[i-1].ID, lvls[i].ID)
		}
	}

	ids, err := loader.ListIDs()
	if err != nil {
		t.Fatalf("ListIDs failed: %v", err)
	}
	if strings.Join(ids, ",") != "b01,b02,b03" {
		t.Errorf("ListIDs() = %v, expected [b01 b02 b03]", ids)
	}
}

func TestLoaderLoadByID(t *testing.T) {
	loader := NewLoader(testdataPath())

	lvl, err := loader.LoadByID("b02")
	if err != nil {
		t.Fatalf("LoadByID failed: %v", err)
	}

	if lvl.Name != "Corners" {
		t.Errorf("expected Name 'Corners', got %q", lvl.Name)
	}
	if lvl.Width != 5 || lvl.Height != 3 {
		t.Errorf("expected 5x3, got %dx%d", lvl.Width, lvl.Height)
	}
	if lvl.Kinds != 3 {
		t.Errorf("expected 3 kinds, got %d", lvl.Kinds)
	}
	if len(lvl.Tiles) != 6 {
		t.Errorf("expected 6 tiles, got %d", len(lvl.Tiles))
	}
	if lvl.Tiles[board.C(5, 1)] != 2 {
		t.Errorf("tile at (5,1) = %d, expected 2", lvl.Tiles[board.C(5, 1)])
	}
	if lvl.Metadata["author"] != "onet" {
		t.Errorf("metadata author = %q, expected 'onet'", lvl.Metadata["author"])
	}
	if filepath.Base(lvl.FilePath) != "corners.yaml" {
		t.Errorf("FilePath = %q, expected corners.yaml", lvl.FilePath)
	}

	if _, err := loader.LoadByID("nope"); err == nil {
		t.Error("LoadByID(nope) should fail")
	}
}

func TestLevelToGrid(t *testing.T) {
	lvl, err := LoadFile(filepath.Join(testdataPath(), "tutorial.yaml"))
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}

	g, err := lvl.ToGrid()
	if err != nil {
		t.Fatalf("ToGrid failed: %v", err)
	}
	if g.String() != "1..1\n2a2a" {
		t.Errorf("grid = %q, expected %q", g.String(), "1..1\n2a2a")
	}
	if !g.StillHasMove() {
		t.Error("tutorial board should have a straight move")
	}
	if lvl.Kinds != 3 {
		t.Errorf("Kinds = %d, expected 3 counted from tiles", lvl.Kinds)
	}
}

func TestLoadFileSizeFromRows(t *testing.T) {
	lvl, err := LoadFile(filepath.Join(testdataPath(), "extra", "spiral.yml"))
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if lvl.Width != 2 || lvl.Height != 2 {
		t.Errorf("expected 2x2, got %dx%d", lvl.Width, lvl.Height)
	}
}

func TestLoadFileErrors(t *testing.T) {
	_, err := LoadFile(filepath.Join(testdataPath(), "extra", "broken.yaml"))
	var verr formats.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("LoadFile(broken) = %v, expected ValidationError", err)
	}
	if verr.Code != "UNPAIRED_TILE" {
		t.Errorf("Code = %q, expected UNPAIRED_TILE", verr.Code)
	}

	if _, err := LoadFile(filepath.Join(testdataPath(), "notes.txt")); err == nil {
		t.Error("LoadFile(notes.txt) should fail")
	}
	if _, err := LoadFile(filepath.Join(testdataPath(), "missing.yaml")); err == nil {
		t.Error("LoadFile(missing) should fail")
	}
}
