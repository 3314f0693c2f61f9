// Package onet implements the Onet tile-matching puzzle with campaign and
// endless modes.
package onet

// Level defines a campaign board: its play area and how many tile kinds
// are dealt onto it.
type Level struct {
	ID      int
	Name    string
	Columns int
	Rows    int
	Kinds   int
}

// Levels defines the campaign. Every board holds an even number of cells
// so a full deal leaves no cell empty.
var Levels = []Level{
	{ID: 1, Name: "Warm-up", Columns: 6, Rows: 4, Kinds: 4},
	{ID: 2, Name: "Garden Path", Columns: 8, Rows: 4, Kinds: 6},
	{ID: 3, Name: "Courtyard", Columns: 8, Rows: 6, Kinds: 10},
	{ID: 4, Name: "Market Square", Columns: 10, Rows: 6, Kinds: 12},
	{ID: 5, Name: "Harbor", Columns: 12, Rows: 6, Kinds: 14},
	{ID: 6, Name: "Temple Steps", Columns: 12, Rows: 7, Kinds: 16},
	{ID: 7, Name: "Palace Hall", Columns: 14, Rows: 8, Kinds: 20},
	{ID: 8, Name: "Summit", Columns: 16, Rows: 8, Kinds: 24},
}

// LevelCount returns the number of campaign levels.
func LevelCount() int {
	return len(Levels)
}

// GetLevel returns the level at the given index (0-based).
// Returns nil if index is out of range.
func GetLevel(index int) *Level {
	if index < 0 || index >= len(Levels) {
		return nil
	}
	return &Levels[index]
}

// LevelNames returns the names of all levels.
func LevelNames() []string {
	names := make([]string, len(Levels))
	for i, lvl := range Levels {
		names[i] = lvl.Name
	}
	return names
}
