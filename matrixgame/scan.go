package matrixgame

import (
	"math/big"

	"github.com/golang/glog"
	"github.com/pkg/errors"
)

// ErrUnknownPredicate is returned by Scan for a Predicate it does not know.
var ErrUnknownPredicate = errors.New("unknown predicate")

// Predicate selects which test Scan applies to each Cell.
type Predicate int

const (
	// Pareto reports cells that no other cell Pareto dominates.
	Pareto Predicate = iota
	// Nash reports cells where neither player gains by deviating alone.
	Nash
)

var predicateStr = [...]string{
	"Pareto",
	"Nash",
}

func (p Predicate) String() string {
	if p < 0 || int(p) >= len(predicateStr) {
		return "Unknown"
	}

	return predicateStr[p]
}

func (p Predicate) test(m *Matrix, cell Cell) bool {
	switch p {
	case Pareto:
		return isParetoOptimal(m, cell)
	case Nash:
		return isPureNashEquilibrium(m, cell)
	}

	panic(errors.Errorf("unhandled predicate %d", int(p)))
}

// Scan applies the Predicate to every Cell in row-major order and returns
// the matching Cells in that same order. The result may be empty.
func Scan(m *Matrix, p Predicate) ([]Cell, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}

	if p != Pareto && p != Nash {
		return nil, errors.Wrapf(ErrUnknownPredicate, "%d", int(p))
	}

	var result []Cell
	for _, cell := range m.Cells() {
		if p.test(m, cell) {
			result = append(result, cell)
		}
	}

	glog.V(1).Infof("%v scan of %dx%d matrix matched %d cells: %v",
		p, m.rows, m.cols, len(result), result)
	return result, nil
}

// FindParetoOptimal returns every Pareto optimal pure-strategy profile.
func FindParetoOptimal(m *Matrix) ([]Cell, error) {
	return Scan(m, Pareto)
}

// FindPureNashEquilibria returns every pure-strategy Nash equilibrium.
func FindPureNashEquilibria(m *Matrix) ([]Cell, error) {
	return Scan(m, Nash)
}

// IsPureNashEquilibrium returns whether the row payoff of the cell is the
// maximum of its column and the column payoff is the maximum of its row.
func IsPureNashEquilibrium(m *Matrix, cell Cell) (bool, error) {
	if err := m.Validate(); err != nil {
		return false, err
	}

	if !m.contains(cell) {
		return false, ErrOutOfRange
	}

	return isPureNashEquilibrium(m, cell), nil
}

func isPureNashEquilibrium(m *Matrix, cell Cell) bool {
	payoff := m.at(cell.Row, cell.Col)
	for _, player := range []Player{RowPlayer, ColumnPlayer} {
		// Each player deviates holding the other's strategy fixed.
		var best *big.Rat
		if player == RowPlayer {
			best, _ = rowBestResponses(m, cell.Col)
		} else {
			best, _ = colBestResponses(m, cell.Row)
		}

		if payoff.Get(player).Cmp(best) != 0 {
			glog.V(3).Infof("%v: %v gains by deviating", cell, player)
			return false
		}
	}

	return true
}
