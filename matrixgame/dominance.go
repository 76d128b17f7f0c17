package matrixgame

import (
	"github.com/golang/glog"
)

// WeaklyDominates returns whether a gives each player at least as much as b.
func WeaklyDominates(a, b Payoff) bool {
	return a.Row.Cmp(b.Row) >= 0 && a.Col.Cmp(b.Col) >= 0
}

// Dominates returns whether a Pareto dominates b: a gives each player at
// least as much as b, and at least one player strictly more.
func Dominates(a, b Payoff) bool {
	if !WeaklyDominates(a, b) {
		return false
	}

	return a.Row.Cmp(b.Row) > 0 || a.Col.Cmp(b.Col) > 0
}

// IsParetoOptimal returns whether no other Cell of the matrix Pareto
// dominates the given one. Cells with identical payoffs do not dominate
// each other, so both are reported.
func IsParetoOptimal(m *Matrix, cell Cell) (bool, error) {
	if err := m.Validate(); err != nil {
		return false, err
	}

	if !m.contains(cell) {
		return false, ErrOutOfRange
	}

	return isParetoOptimal(m, cell), nil
}

// isParetoOptimal assumes a validated matrix and an in-range cell.
func isParetoOptimal(m *Matrix, cell Cell) bool {
	target := m.at(cell.Row, cell.Col)
	for row := 0; row < m.rows; row++ {
		for col := 0; col < m.cols; col++ {
			if row == cell.Row && col == cell.Col {
				continue
			}

			if other := m.at(row, col); Dominates(other, target) {
				glog.V(3).Infof("%v %v is dominated by %v %v",
					cell, target, Cell{Row: row, Col: col}, other)
				return false
			}
		}
	}

	return true
}
