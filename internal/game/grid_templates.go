package game

import "math/rand"

// GridTemplate marks which cells of a board shape hold a letter.
type GridTemplate [][]bool

// GridTemplates are the board shapes a new game may be dealt.
// These MUST match the template shapes the frontend renders.
var GridTemplates = map[string]GridTemplate{
	"standard": {
		{true, true, true, true},
		{true, true, true, true},
		{true, true, true, true},
		{true, true, true, true},
	},
	"o": {
		{false, true, true, true, false},
		{true, true, true, true, true},
		{true, true, false, true, true},
		{true, true, true, true, true},
		{false, true, true, true, false},
	},
	"x": {
		{true, true, false, true, true},
		{true, true, true, true, true},
		{false, true, true, true, false},
		{true, true, true, true, true},
		{true, true, false, true, true},
	},
	"big": {
		{true, true, true, true, true},
		{true, true, true, true, true},
		{true, true, true, true, true},
		{true, true, true, true, true},
		{true, true, true, true, true},
	},
}

const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// RandomGrid fills the present cells of a template with random letters.
func RandomGrid(template GridTemplate) Grid {
	grid := make(Grid, len(template))
	for y, row := range template {
		grid[y] = make([]*string, len(row))
		for x, present := range row {
			if present {
				letter := string(alphabet[rand.Intn(len(alphabet))])
				grid[y][x] = &letter
			}
		}
	}
	return grid
}

// RandomTemplateGrid deals a random grid from a randomly chosen template.
func RandomTemplateGrid() Grid {
	names := make([]string, 0, len(GridTemplates))
	for name := range GridTemplates {
		names = append(names, name)
	}
	return RandomGrid(GridTemplates[names[rand.Intn(len(names))]])
}
