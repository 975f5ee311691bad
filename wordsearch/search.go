package wordsearch

// CountWord counts every placement of word in g along the eight directions.
//
// With WithReducedDirections only Right, DownRight, Down and DownLeft are
// probed, once for word and once for its reverse. Both modes return the same
// count for non-palindromic words. A palindrome reads the same both ways, so
// reduced mode counts it once per line while full mode counts each reading.
//
// Returns ErrEmptyWord for an empty word.
func CountWord(g *Grid, word string, opts ...Option) (int, error) {
	if word == "" {
		return 0, ErrEmptyWord
	}
	var o searchOptions
	for _, opt := range opts {
		opt(&o)
	}

	if !o.reduced {
		return countAlong(g, word, AllDirections), nil
	}

	rev := reverse(word)
	count := countAlong(g, word, ReducedDirections)
	if rev != word {
		count += countAlong(g, rev, ReducedDirections)
	}

	return count, nil
}

// countAlong counts matches of word starting at any cell along dirs.
func countAlong(g *Grid, word string, dirs []Direction) int {
	count := 0
	for idx, c := range g.cells {
		if c != word[0] {
			continue
		}
		x, y := g.Coordinate(idx)
		for _, d := range dirs {
			if g.Match(word, x, y, d) {
				count++
			}
		}
	}

	return count
}

func reverse(s string) string {
	b := []byte(s)
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}

	return string(b)
}

// CountCross counts cells holding 'A' whose two diagonals each read
// "MAS" or "SAM" through it. Border cells are skipped.
// Complexity: O(W×H).
func CountCross(g *Grid) int {
	count := 0
	for y := 1; y < g.Height-1; y++ {
		for x := 1; x < g.Width-1; x++ {
			if g.At(x, y) != 'A' {
				continue
			}
			tl, br := g.At(x-1, y-1), g.At(x+1, y+1)
			tr, bl := g.At(x+1, y-1), g.At(x-1, y+1)
			if isMS(tl, br) && isMS(tr, bl) {
				count++
			}
		}
	}

	return count
}

// isMS reports whether {a,b} is exactly {'M','S'}.
func isMS(a, b byte) bool {
	return (a == 'M' && b == 'S') || (a == 'S' && b == 'M')
}
