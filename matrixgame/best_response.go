package matrixgame

import (
	"math/big"
)

// RowBestResponses returns every row that maximizes the row player's
// payoff when the column player plays the given pure strategy.
// Ties are all reported, in ascending order.
func RowBestResponses(m *Matrix, col int) ([]int, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}

	if col < 0 || col >= m.cols {
		return nil, ErrOutOfRange
	}

	_, br := rowBestResponses(m, col)
	return br, nil
}

// ColumnBestResponses returns every column that maximizes the column
// player's payoff when the row player plays the given pure strategy.
func ColumnBestResponses(m *Matrix, row int) ([]int, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}

	if row < 0 || row >= m.rows {
		return nil, ErrOutOfRange
	}

	_, br := colBestResponses(m, row)
	return br, nil
}

func rowBestResponses(m *Matrix, col int) (*big.Rat, []int) {
	utilities := make([]*big.Rat, m.rows)
	for row := range utilities {
		utilities[row] = m.at(row, col).Row
	}

	return argMax(utilities)
}

func colBestResponses(m *Matrix, row int) (*big.Rat, []int) {
	utilities := make([]*big.Rat, m.cols)
	for col := range utilities {
		utilities[col] = m.at(row, col).Col
	}

	return argMax(utilities)
}

// argMax returns the maximum value and every index that attains it.
func argMax(vs []*big.Rat) (*big.Rat, []int) {
	var best *big.Rat
	var bestIdx []int
	for i, v := range vs {
		switch {
		case best == nil || v.Cmp(best) > 0:
			best = v
			bestIdx = append(bestIdx[:0], i)
		case v.Cmp(best) == 0:
			bestIdx = append(bestIdx, i)
		}
	}

	return best, bestIdx
}
