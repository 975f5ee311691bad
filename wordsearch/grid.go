package wordsearch

// NewGrid builds a Grid from rows of equal length. The input is copied.
// Returns ErrEmptyGrid if there are no rows or the rows are empty,
// ErrNonRectangular if any row length differs.
// Complexity: O(W×H).
func NewGrid(rows []string) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	w, h := len(rows[0]), len(rows)
	cells := make([]byte, 0, w*h)
	for _, row := range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
		cells = append(cells, row...)
	}

	return &Grid{Width: w, Height: h, cells: cells}, nil
}

// InBounds reports whether (x,y) lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// At returns the letter at (x,y). Panics if (x,y) is out of bounds.
func (g *Grid) At(x, y int) byte {
	return g.cells[g.index(x, y)]
}

// index maps (x,y) to a row-major index: y*Width + x.
func (g *Grid) index(x, y int) int {
	return y*g.Width + x
}

// Coordinate converts a row-major index back to (x,y).
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) (x, y int) {
	return idx % g.Width, idx / g.Width
}

// CanFit reports whether a word of length n starting at (x,y) stays inside
// the grid when read along d.
// Complexity: O(1).
func (g *Grid) CanFit(d Direction, n, x, y int) bool {
	dx, dy := d.Offset()
	endX, endY := x+dx*(n-1), y+dy*(n-1)

	return g.InBounds(x, y) && g.InBounds(endX, endY)
}

// Match reports whether word appears at (x,y) read along d.
func (g *Grid) Match(word string, x, y int, d Direction) bool {
	if !g.CanFit(d, len(word), x, y) {
		return false
	}
	dx, dy := d.Offset()
	for i := 0; i < len(word); i++ {
		if g.At(x+dx*i, y+dy*i) != word[i] {
			return false
		}
	}

	return true
}
