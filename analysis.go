// Package bimatrix analyzes two-player normal-form games: Pareto optimal
// and Nash equilibrium pure-strategy profiles, and the mixed equilibrium
// of 2x2 games.
package bimatrix

import (
	"github.com/golang/glog"
	"github.com/pkg/errors"

	"github.com/timpalpant/bimatrix/matrixgame"
)

// Analysis is the result of running every analysis on one game.
type Analysis struct {
	Rows, Cols int
	// Pure-strategy profiles, in row-major order.
	Pareto []matrixgame.Cell
	Nash   []matrixgame.Cell
	// Mixed is only set for 2x2 games.
	Mixed *matrixgame.Equilibrium
}

// Analyze finds the Pareto optimal and pure Nash equilibrium profiles of
// the game, and its mixed equilibrium if the game is 2x2.
func Analyze(m *matrixgame.Matrix) (*Analysis, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}

	nash, err := matrixgame.FindPureNashEquilibria(m)
	if err != nil {
		return nil, errors.Wrap(err, "pure nash equilibria")
	}

	pareto, err := matrixgame.FindParetoOptimal(m)
	if err != nil {
		return nil, errors.Wrap(err, "pareto optimal profiles")
	}

	result := &Analysis{
		Rows:   m.Rows(),
		Cols:   m.Cols(),
		Pareto: pareto,
		Nash:   nash,
	}

	if m.Is2x2() {
		eq, err := matrixgame.SolveMixedEquilibrium(m)
		if err != nil {
			return nil, errors.Wrap(err, "mixed equilibrium")
		}

		if eq.Degenerate {
			glog.Warningf("Mixed equilibrium is not uniquely determined, reporting %v %v",
				eq.Row, eq.Column)
		} else if eq.Row.IsPure() && eq.Column.IsPure() {
			glog.V(1).Infof("Mixed equilibrium solver found a pure equilibrium: %v %v",
				eq.Row, eq.Column)
		}
		result.Mixed = &eq
	}

	glog.V(1).Infof("Analyzed %dx%d game: %d Pareto optimal, %d pure Nash",
		result.Rows, result.Cols, len(pareto), len(nash))
	return result, nil
}
