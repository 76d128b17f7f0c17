package gameio

import (
	"fmt"
	"io"
	"math/big"
	"strings"

	"github.com/pkg/errors"

	"github.com/timpalpant/bimatrix"
	"github.com/timpalpant/bimatrix/matrixgame"
)

// FormatRat renders r as "0", an integer, or "num/den".
func FormatRat(r *big.Rat) string {
	if r.Sign() == 0 {
		return "0"
	}

	return r.RatString()
}

// FormatCells renders cells as a bracketed list, e.g. [(0, 0), (1, 1)].
func FormatCells(cells []matrixgame.Cell) string {
	strs := make([]string, len(cells))
	for i, cell := range cells {
		strs[i] = cell.String()
	}

	return "[" + strings.Join(strs, ", ") + "]"
}

func formatPair(x, y *big.Rat) string {
	return fmt.Sprintf("(%6s, %6s)", FormatRat(x), FormatRat(y))
}

// WriteMatrix writes one line per row of the payoff matrix.
func WriteMatrix(w io.Writer, m *matrixgame.Matrix) error {
	if err := m.Validate(); err != nil {
		return err
	}

	for row := 0; row < m.Rows(); row++ {
		var sb strings.Builder
		for col := 0; col < m.Cols(); col++ {
			p, err := m.At(matrixgame.Cell{Row: row, Col: col})
			if err != nil {
				return err
			}

			sb.WriteString(formatPair(p.Row, p.Col))
			sb.WriteString(" ")
		}

		if _, err := fmt.Fprintln(w, sb.String()); err != nil {
			return err
		}
	}

	return nil
}

// WriteReport writes the payoff matrix followed by the result of each analysis.
func WriteReport(w io.Writer, m *matrixgame.Matrix, a *bimatrix.Analysis) error {
	if a == nil {
		return errors.New("nil analysis")
	}

	if err := WriteMatrix(w, m); err != nil {
		return err
	}

	var sb strings.Builder
	fmt.Fprintln(&sb, "Pure Nash:", FormatCells(a.Nash))
	fmt.Fprintln(&sb, "Pure Pareto:", FormatCells(a.Pareto))
	if a.Mixed != nil {
		fmt.Fprintln(&sb, "Mixed Nash:")
		fmt.Fprintf(&sb, "\tRow Strategy:\t\t%s\n", formatPair(a.Mixed.Row[0], a.Mixed.Row[1]))
		fmt.Fprintf(&sb, "\tColumn Strategy:\t%s\n", formatPair(a.Mixed.Column[0], a.Mixed.Column[1]))
		if a.Mixed.Degenerate {
			fmt.Fprintln(&sb, "\t(not uniquely determined)")
		}
	}

	_, err := io.WriteString(w, sb.String())
	return err
}
