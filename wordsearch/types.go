package wordsearch

import "errors"

var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("wordsearch: grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("wordsearch: all rows must have the same length")
	// ErrEmptyWord indicates an empty search word.
	ErrEmptyWord = errors.New("wordsearch: word must not be empty")
)

// Direction is one of the eight compass directions, clockwise from East.
// Y grows downward.
type Direction int

const (
	Right     Direction = iota // +x
	DownRight                  // +x +y
	Down                       // +y
	DownLeft                   // -x +y
	Left                       // -x
	UpLeft                     // -x -y
	Up                         // -y
	UpRight                    // +x -y
)

// offsets[d] is the (dx, dy) unit step of direction d.
var offsets = [...][2]int{
	Right:     {1, 0},
	DownRight: {1, 1},
	Down:      {0, 1},
	DownLeft:  {-1, 1},
	Left:      {-1, 0},
	UpLeft:    {-1, -1},
	Up:        {0, -1},
	UpRight:   {1, -1},
}

// AllDirections lists every direction.
var AllDirections = []Direction{Right, DownRight, Down, DownLeft, Left, UpLeft, Up, UpRight}

// ReducedDirections covers each line through a cell once; the opposite four
// are reached by searching for the reversed word.
var ReducedDirections = []Direction{Right, DownRight, Down, DownLeft}

// Offset returns the unit step of d.
func (d Direction) Offset() (dx, dy int) {
	o := offsets[d]

	return o[0], o[1]
}

// String implements fmt.Stringer.
func (d Direction) String() string {
	switch d {
	case Right:
		return "right"
	case DownRight:
		return "down-right"
	case Down:
		return "down"
	case DownLeft:
		return "down-left"
	case Left:
		return "left"
	case UpLeft:
		return "up-left"
	case Up:
		return "up"
	case UpRight:
		return "up-right"
	default:
		return "unknown"
	}
}

// Grid is an immutable rectangular letter grid.
type Grid struct {
	Width, Height int
	cells         []byte // row-major: cells[y*Width+x]
}

// Option configures CountWord.
type Option func(*searchOptions)

type searchOptions struct {
	reduced bool
}

// WithReducedDirections searches four directions for the word and its reverse.
func WithReducedDirections() Option {
	return func(o *searchOptions) {
		o.reduced = true
	}
}
