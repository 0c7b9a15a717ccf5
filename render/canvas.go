package render

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/pathfinding/city"
	"github.com/katalvlaran/pathfinding/tsp"
)

const (
	// Background fills unused cells.
	Background byte = '-'

	// Line marks cells crossed by a tour segment.
	Line byte = '#'

	// Overflow is the symbol of cities with id ≥ 52.
	Overflow byte = '*'
)

var (
	// ErrInvalidSize indicates a grid side < 1.
	ErrInvalidSize = errors.New("render: invalid grid size")

	// ErrOutOfGrid indicates a city position outside the grid.
	ErrOutOfGrid = errors.New("render: city outside grid")

	// ErrUnknownCity indicates a tour id that is not a city of the town.
	ErrUnknownCity = errors.New("render: tour references unknown city")
)

// Canvas is a square character grid.
type Canvas struct {
	size  int
	cells [][]byte
}

// NewCanvas returns a size×size canvas filled with Background.
func NewCanvas(size int) (*Canvas, error) {
	if size < 1 {
		return nil, fmt.Errorf("NewCanvas: size %d: %w", size, ErrInvalidSize)
	}
	c := &Canvas{size: size, cells: make([][]byte, size)}
	for x := range c.cells {
		c.cells[x] = make([]byte, size)
	}
	c.Reset()

	return c, nil
}

// Grid draws tour over town on a fresh canvas. tour may be open or closed;
// consecutive entries are joined, so pass a closed tour to draw the cycle.
// A nil tour draws the cities only.
//
// Complexity: O(size² + Σ segment length).
func Grid(town city.Town, tour tsp.Tour, size int) (*Canvas, error) {
	c, err := NewCanvas(size)
	if err != nil {
		return nil, err
	}
	if err = c.Connect(town, tour); err != nil {
		return nil, err
	}
	if err = c.Place(town); err != nil {
		return nil, err
	}

	return c, nil
}

// Reset fills every cell with Background.
func (c *Canvas) Reset() {
	for x := range c.cells {
		for y := range c.cells[x] {
			c.cells[x][y] = Background
		}
	}
}

// Size returns the grid side.
func (c *Canvas) Size() int { return c.size }

// At returns the cell at row x, column y, or 0 outside the grid.
func (c *Canvas) At(x, y int) byte {
	if !c.inside(x, y) {
		return 0
	}

	return c.cells[x][y]
}

func (c *Canvas) inside(x, y int) bool {
	return x >= 0 && x < c.size && y >= 0 && y < c.size
}

// Place writes every city symbol at its position.
func (c *Canvas) Place(town city.Town) error {
	for _, ct := range town {
		if !c.inside(ct.X, ct.Y) {
			return fmt.Errorf("Place: city %d at (%d,%d): %w", ct.ID, ct.X, ct.Y, ErrOutOfGrid)
		}
		c.cells[ct.X][ct.Y] = Symbol(ct.ID)
	}

	return nil
}

// Connect marks the interior cells of every segment tour[i]→tour[i+1].
// Endpoints are left for Place.
func (c *Canvas) Connect(town city.Town, tour tsp.Tour) error {
	var i int
	for i = 0; i+1 < len(tour); i++ {
		u, v := tour[i], tour[i+1]
		if u < 0 || u >= len(town) || v < 0 || v >= len(town) {
			return fmt.Errorf("Connect: step %d (%d→%d): %w", i, u, v, ErrUnknownCity)
		}
		a, b := town[u], town[v]
		if !c.inside(a.X, a.Y) || !c.inside(b.X, b.Y) {
			return fmt.Errorf("Connect: step %d: %w", i, ErrOutOfGrid)
		}
		c.segment(a.X, a.Y, b.X, b.Y)
	}

	return nil
}

// segment walks the dominant axis strictly between the endpoints and solves
// the line equation for the other coordinate with truncating division.
func (c *Canvas) segment(x1, y1, x2, y2 int) {
	var j int
	if abs(x2-x1) > abs(y2-y1) {
		for j = min(x1, x2) + 1; j < max(x1, x2); j++ {
			c.cells[j][y1+(j-x1)*(y2-y1)/(x2-x1)] = Line
		}

		return
	}
	for j = min(y1, y2) + 1; j < max(y1, y2); j++ {
		c.cells[x1+(j-y1)*(x2-x1)/(y2-y1)][j] = Line
	}
}

// String renders one row per line with cells separated by a single space.
func (c *Canvas) String() string {
	var sb strings.Builder
	sb.Grow(c.size * c.size * 2)
	for x := range c.cells {
		writeRow(&sb, c.cells[x], func(b byte) string { return string(b) })
		sb.WriteByte('\n')
	}

	return sb.String()
}

// writeRow writes cells joined by single spaces through the given cell formatter.
func writeRow(sb *strings.Builder, row []byte, cell func(byte) string) {
	for y, b := range row {
		if y > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(cell(b))
	}
}

// Symbol returns the display character of city id.
func Symbol(id int) byte {
	switch {
	case id >= 0 && id < 26:
		return byte('A' + id)
	case id >= 26 && id < 52:
		return byte('a' + id - 26)
	default:
		return Overflow
	}
}

// Path formats a tour as "A --> B --> ... --> A".
func Path(tour tsp.Tour) string {
	var sb strings.Builder
	for i, id := range tour {
		if i > 0 {
			sb.WriteString(" --> ")
		}
		sb.WriteByte(Symbol(id))
	}

	return sb.String()
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
