package distance

import (
	"errors"
	"fmt"
)

// Unreachable marks the diagonal and every pair without a direct edge.
// Valid distances are ≥ 0, so -1 is unambiguous.
const Unreachable = -1

// Scale multiplies Euclidean distances before truncation.
const Scale = 10

// ErrInvalidDimensions indicates a non-positive or non-square shape.
var ErrInvalidDimensions = errors.New("distance: invalid dimensions")

// ErrIndexOutOfBounds indicates a row or column outside [0..n-1].
var ErrIndexOutOfBounds = errors.New("distance: index out of bounds")

// ErrNegativeDistance indicates a negative value other than Unreachable.
var ErrNegativeDistance = errors.New("distance: negative distance")

// matrixErrorf wraps err with Matrix method context.
func matrixErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, err)
}

// Matrix is a square row-major table of integer distances.
type Matrix struct {
	n    int   // order
	data []int // flat storage, len == n*n
}

// New creates an n×n matrix with every entry set to Unreachable.
//
// Complexity: O(n²) time and memory.
func New(n int) (*Matrix, error) {
	if n <= 0 {
		return nil, ErrInvalidDimensions
	}
	data := make([]int, n*n)
	for i := range data {
		data[i] = Unreachable
	}

	return &Matrix{n: n, data: data}, nil
}

// FromRows copies explicit rows into a Matrix. Rows must form a square table;
// negative values other than Unreachable are rejected.
//
// Complexity: O(n²).
func FromRows(rows [][]int) (*Matrix, error) {
	n := len(rows)
	m, err := New(n)
	if err != nil {
		return nil, err
	}
	var i, j int
	for i = 0; i < n; i++ {
		if len(rows[i]) != n {
			return nil, fmt.Errorf("FromRows: row %d has %d columns, want %d: %w", i, len(rows[i]), n, ErrInvalidDimensions)
		}
		for j = 0; j < n; j++ {
			if err = m.Set(i, j, rows[i][j]); err != nil {
				return nil, err
			}
		}
	}

	return m, nil
}

// Len returns the matrix order n.
func (m *Matrix) Len() int { return m.n }

// indexOf converts (i,j) into a flat index after bounds checks.
func (m *Matrix) indexOf(i, j int) (int, error) {
	if i < 0 || i >= m.n || j < 0 || j >= m.n {
		return 0, ErrIndexOutOfBounds
	}

	return i*m.n + j, nil
}

// At returns the raw entry, which may be Unreachable. Out-of-range indices
// also yield Unreachable.
func (m *Matrix) At(i, j int) int {
	idx, err := m.indexOf(i, j)
	if err != nil {
		return Unreachable
	}

	return m.data[idx]
}

// Weight returns the distance u→v and ok == false when no edge exists.
// It is the accessor used by every cost routine (see tsp.Weights).
func (m *Matrix) Weight(u, v int) (int, bool) {
	w := m.At(u, v)

	return w, w != Unreachable
}

// Set assigns the entry (i,j). Use Unreachable to remove an edge.
func (m *Matrix) Set(i, j, w int) error {
	idx, err := m.indexOf(i, j)
	if err != nil {
		return matrixErrorf("Set", i, j, err)
	}
	if w < 0 && w != Unreachable {
		return matrixErrorf("Set", i, j, ErrNegativeDistance)
	}
	m.data[idx] = w

	return nil
}

// IsSymmetric reports whether At(i,j) == At(j,i) for every pair.
//
// Complexity: O(n²).
func (m *Matrix) IsSymmetric() bool {
	var i, j int
	for i = 0; i < m.n; i++ {
		for j = i + 1; j < m.n; j++ {
			if m.data[i*m.n+j] != m.data[j*m.n+i] {
				return false
			}
		}
	}

	return true
}

// Rows returns a deep copy of the matrix as [][]int.
func (m *Matrix) Rows() [][]int {
	out := make([][]int, m.n)
	for i := 0; i < m.n; i++ {
		out[i] = append([]int(nil), m.data[i*m.n:(i+1)*m.n]...)
	}

	return out
}
