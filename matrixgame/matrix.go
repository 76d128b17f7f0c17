package matrixgame

import (
	"github.com/pkg/errors"
)

var (
	// ErrMalformedMatrix is returned when a matrix has missing or
	// inconsistent payoffs for its declared dimensions.
	ErrMalformedMatrix = errors.New("malformed payoff matrix")
	// ErrUnsupportedDimension is returned when an analysis is requested
	// on a matrix whose shape it does not handle.
	ErrUnsupportedDimension = errors.New("unsupported matrix dimension")
	// ErrOutOfRange is returned when a Cell lies outside the matrix.
	ErrOutOfRange = errors.New("cell out of range")
)

// Matrix is an immutable m x n grid of Payoffs.
//
// A Matrix can only be obtained from a Builder (or NewMatrix), which
// validates its shape. Accessors return copies so that callers cannot
// mutate the game once it has been built.
type Matrix struct {
	rows, cols int
	// Row-major.
	payoffs []Payoff
}

// NewMatrix builds a Matrix from a slice of rows.
func NewMatrix(rows [][]Payoff) (*Matrix, error) {
	if len(rows) == 0 {
		return nil, errors.Wrap(ErrMalformedMatrix, "no rows")
	}

	b := NewBuilder(len(rows), len(rows[0]))
	for _, row := range rows {
		if err := b.AddRow(row); err != nil {
			return nil, err
		}
	}

	return b.Build()
}

// Rows returns the number of pure strategies of the row player.
func (m *Matrix) Rows() int {
	if m == nil {
		return 0
	}

	return m.rows
}

// Cols returns the number of pure strategies of the column player.
func (m *Matrix) Cols() int {
	if m == nil {
		return 0
	}

	return m.cols
}

// Is2x2 returns whether the game has exactly two strategies per player.
func (m *Matrix) Is2x2() bool {
	return m != nil && m.rows == 2 && m.cols == 2
}

// At returns a copy of the Payoff for the given Cell.
func (m *Matrix) At(cell Cell) (Payoff, error) {
	if err := m.Validate(); err != nil {
		return Payoff{}, err
	}

	if !m.contains(cell) {
		return Payoff{}, errors.Wrapf(ErrOutOfRange, "%v in %dx%d matrix", cell, m.rows, m.cols)
	}

	return m.at(cell.Row, cell.Col).Copy(), nil
}

// Cells returns every Cell of the matrix in row-major order.
func (m *Matrix) Cells() []Cell {
	if m == nil {
		return nil
	}

	result := make([]Cell, 0, m.rows*m.cols)
	for row := 0; row < m.rows; row++ {
		for col := 0; col < m.cols; col++ {
			result = append(result, Cell{Row: row, Col: col})
		}
	}

	return result
}

// Validate sanity checks that every Cell of the matrix has a Payoff.
// All analyses call it before scanning.
func (m *Matrix) Validate() error {
	if m == nil {
		return errors.Wrap(ErrMalformedMatrix, "nil matrix")
	}

	if m.rows < 1 || m.cols < 1 {
		return errors.Wrapf(ErrMalformedMatrix, "invalid dimensions %dx%d", m.rows, m.cols)
	}

	if len(m.payoffs) != m.rows*m.cols {
		return errors.Wrapf(ErrMalformedMatrix, "%dx%d matrix has %d payoffs",
			m.rows, m.cols, len(m.payoffs))
	}

	for i, p := range m.payoffs {
		if !p.isComplete() {
			return errors.Wrapf(ErrMalformedMatrix, "missing payoff at %v",
				Cell{Row: i / m.cols, Col: i % m.cols})
		}
	}

	return nil
}

func (m *Matrix) contains(cell Cell) bool {
	return cell.Row >= 0 && cell.Row < m.rows && cell.Col >= 0 && cell.Col < m.cols
}

// at returns the stored Payoff without copying. It must only be read.
func (m *Matrix) at(row, col int) Payoff {
	return m.payoffs[row*m.cols+col]
}

// Builder accumulates validated rows of a Matrix.
// Once Build has been called the Builder is frozen.
type Builder struct {
	rows, cols int
	payoffs    []Payoff
	built      bool
}

// NewBuilder creates a Builder for an m x n matrix.
func NewBuilder(m, n int) *Builder {
	return &Builder{
		rows:    m,
		cols:    n,
		payoffs: make([]Payoff, 0, max(m*n, 0)),
	}
}

// AddRow appends the next row of Payoffs. The Payoffs are copied.
func (b *Builder) AddRow(row []Payoff) error {
	if b.built {
		return errors.New("builder already built")
	}

	if b.rows < 1 || b.cols < 1 {
		return errors.Wrapf(ErrMalformedMatrix, "invalid dimensions %dx%d", b.rows, b.cols)
	}

	nRows := len(b.payoffs) / b.cols
	if nRows >= b.rows {
		return errors.Wrapf(ErrMalformedMatrix, "too many rows: expected %d", b.rows)
	}

	if len(row) != b.cols {
		return errors.Wrapf(ErrMalformedMatrix, "row %d has %d payoffs, expected %d",
			nRows, len(row), b.cols)
	}

	for col, p := range row {
		if !p.isComplete() {
			return errors.Wrapf(ErrMalformedMatrix, "missing payoff at %v",
				Cell{Row: nRows, Col: col})
		}
	}

	for _, p := range row {
		b.payoffs = append(b.payoffs, p.Copy())
	}

	return nil
}

// Build freezes the accumulated rows into a Matrix.
func (b *Builder) Build() (*Matrix, error) {
	if b.built {
		return nil, errors.New("builder already built")
	}

	m := &Matrix{rows: b.rows, cols: b.cols, payoffs: b.payoffs}
	if err := m.Validate(); err != nil {
		return nil, err
	}

	b.built = true
	b.payoffs = nil
	return m, nil
}
