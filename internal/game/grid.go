package game

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Point is a single grid coordinate. X is the column, Y is the row.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Grid is a rectangular matrix of single uppercase letters. Absent cells
// (nil) allow irregular board shapes like the "o" and "x" templates.
// The JSON shape is a matrix of nullable one-character strings and must
// round-trip exactly - the frontend depends on it.
type Grid [][]*string

// ExtractWord walks the path in order and concatenates the letters it
// lands on. Returns false for an empty path, an out-of-bounds coordinate,
// or a coordinate on an absent cell.
func (g Grid) ExtractWord(path []Point) (string, bool) {
	if len(path) == 0 {
		return "", false
	}
	word := ""
	for _, p := range path {
		if p.Y < 0 || p.Y >= len(g) {
			return "", false
		}
		row := g[p.Y]
		if p.X < 0 || p.X >= len(row) {
			return "", false
		}
		cell := row[p.X]
		if cell == nil {
			return "", false
		}
		word += *cell
	}
	return word, true
}

// Value serializes the grid to JSONB for storage.
func (g Grid) Value() (driver.Value, error) {
	return json.Marshal(g)
}

// Scan deserializes a JSONB grid column.
func (g *Grid) Scan(src any) error {
	data, ok := src.([]byte)
	if !ok {
		return fmt.Errorf("cannot scan %T into Grid", src)
	}
	return json.Unmarshal(data, g)
}

// TilePath is an ordered list of grid coordinates, stored as JSONB.
type TilePath []Point

// Value serializes the path to JSONB for storage.
func (p TilePath) Value() (driver.Value, error) {
	return json.Marshal(p)
}

// Scan deserializes a JSONB tile path column.
func (p *TilePath) Scan(src any) error {
	data, ok := src.([]byte)
	if !ok {
		return fmt.Errorf("cannot scan %T into TilePath", src)
	}
	return json.Unmarshal(data, p)
}
