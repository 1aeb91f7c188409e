package game

import "testing"

func letter(s string) *string {
	return &s
}

// 3x3 grid with an absent center cell:
//
//	C A T
//	D . G
//	O X B
func setupTestGrid() Grid {
	return Grid{
		{letter("C"), letter("A"), letter("T")},
		{letter("D"), nil, letter("G")},
		{letter("O"), letter("X"), letter("B")},
	}
}

func TestExtractWordInBounds(t *testing.T) {
	grid := setupTestGrid()

	word, ok := grid.ExtractWord([]Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}})
	if !ok {
		t.Fatal("expected in-bounds path to extract")
	}
	if word != "CAT" {
		t.Errorf("expected CAT, got %q", word)
	}
}

func TestExtractWordFollowsPathOrder(t *testing.T) {
	grid := setupTestGrid()

	word, ok := grid.ExtractWord([]Point{{X: 2, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 0}})
	if !ok {
		t.Fatal("expected reversed path to extract")
	}
	if word != "TAC" {
		t.Errorf("expected TAC, got %q", word)
	}
}

func TestExtractWordEmptyPath(t *testing.T) {
	grid := setupTestGrid()

	if _, ok := grid.ExtractWord(nil); ok {
		t.Error("expected empty path to be rejected")
	}
}

func TestExtractWordAbsentCell(t *testing.T) {
	grid := setupTestGrid()

	if _, ok := grid.ExtractWord([]Point{{X: 0, Y: 1}, {X: 1, Y: 1}}); ok {
		t.Error("expected path through absent cell to be rejected")
	}
}

func TestExtractWordOutOfBounds(t *testing.T) {
	grid := setupTestGrid()

	cases := [][]Point{
		{{X: -1, Y: 0}},
		{{X: 0, Y: -1}},
		{{X: 3, Y: 0}},
		{{X: 0, Y: 3}},
		{{X: 0, Y: 0}, {X: 5, Y: 5}},
	}
	for _, path := range cases {
		if _, ok := grid.ExtractWord(path); ok {
			t.Errorf("expected out-of-bounds path %v to be rejected", path)
		}
	}
}

func TestRandomGridMatchesTemplate(t *testing.T) {
	for name, template := range GridTemplates {
		grid := RandomGrid(template)
		if len(grid) != len(template) {
			t.Fatalf("template %s: expected %d rows, got %d", name, len(template), len(grid))
		}
		for y, row := range template {
			for x, present := range row {
				cell := grid[y][x]
				if present && cell == nil {
					t.Errorf("template %s: expected letter at (%d,%d)", name, x, y)
				}
				if !present && cell != nil {
					t.Errorf("template %s: expected absent cell at (%d,%d)", name, x, y)
				}
				if cell != nil && len(*cell) != 1 {
					t.Errorf("template %s: expected single letter at (%d,%d), got %q", name, x, y, *cell)
				}
			}
		}
	}
}
