// Package wordsearch finds words in a rectangular letter grid.
//
// What:
//
//   - Grid wraps rectangular rows of bytes, stored row-major.
//   - CountWord counts placements of a word along any of the eight compass
//     directions. WithReducedDirections scans only four directions but looks
//     for the word and its reverse, halving the probes per cell.
//   - CountCross counts "X-MAS" shapes: two MAS diagonals crossing on an A,
//     each readable in either direction.
//
// Complexity:
//
//   - NewGrid:    O(W×H) time and memory
//   - CountWord:  O(W×H×d×L) (d = directions, L = word length)
//   - CountCross: O(W×H)
//
// Errors:
//
//   - ErrEmptyGrid: no rows or no columns
//   - ErrNonRectangular: rows of differing lengths
//   - ErrEmptyWord: CountWord called with an empty word
package wordsearch
