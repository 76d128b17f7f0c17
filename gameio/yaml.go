package gameio

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/timpalpant/bimatrix"
	"github.com/timpalpant/bimatrix/matrixgame"
)

// Game is the YAML representation of a normal-form game.
//
//	name: Prisoner's Dilemma
//	rows: [Cooperate, Defect]
//	columns: [Cooperate, Defect]
//	payoffs:
//	  - ["(3,3)", "(0,5)"]
//	  - ["(5,0)", "(1,1)"]
type Game struct {
	Name string `yaml:"name,omitempty"`
	// Optional labels for the pure strategies of each player.
	Rows    []string `yaml:"rows,omitempty"`
	Columns []string `yaml:"columns,omitempty"`
	// Payoff tokens in the same "(x,y)" form accepted by ParsePayoff.
	Payoffs [][]string `yaml:"payoffs"`
}

// DecodeGame reads a Game from YAML.
func DecodeGame(r io.Reader) (*Game, error) {
	var g Game
	if err := yaml.NewDecoder(r).Decode(&g); err != nil {
		return nil, errors.Wrap(err, "yaml decode")
	}

	return &g, nil
}

// LoadGame reads a Game from a YAML file.
func LoadGame(filename string) (*Game, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	g, err := DecodeGame(f)
	if err != nil {
		return nil, errors.Wrapf(err, "load %v", filename)
	}

	return g, nil
}

// Matrix parses the payoffs of the Game.
func (g *Game) Matrix() (*matrixgame.Matrix, error) {
	if len(g.Payoffs) == 0 {
		return nil, errors.Wrap(ErrInvalidInput, "game has no payoffs")
	}

	m, n := len(g.Payoffs), len(g.Payoffs[0])
	if len(g.Rows) != 0 && len(g.Rows) != m {
		return nil, errors.Wrapf(ErrInvalidInput, "%d row labels for %d rows", len(g.Rows), m)
	}
	if len(g.Columns) != 0 && len(g.Columns) != n {
		return nil, errors.Wrapf(ErrInvalidInput, "%d column labels for %d columns", len(g.Columns), n)
	}

	b := matrixgame.NewBuilder(m, n)
	for i, tokens := range g.Payoffs {
		row := make([]matrixgame.Payoff, len(tokens))
		for j, token := range tokens {
			p, err := ParsePayoff(token)
			if err != nil {
				return nil, errors.Wrapf(err, "row %d, column %d", i+1, j+1)
			}
			row[j] = p
		}

		if err := b.AddRow(row); err != nil {
			return nil, err
		}
	}

	return b.Build()
}

func (g *Game) rowLabel(i int) string {
	if i < len(g.Rows) {
		return g.Rows[i]
	}

	return ""
}

func (g *Game) columnLabel(j int) string {
	if j < len(g.Columns) {
		return g.Columns[j]
	}

	return ""
}

type profileYAML struct {
	Row      int    `yaml:"row"`
	Col      int    `yaml:"col"`
	RowLabel string `yaml:"row_label,omitempty"`
	ColLabel string `yaml:"col_label,omitempty"`
}

type mixedYAML struct {
	Row        [2]string `yaml:"row,flow"`
	Column     [2]string `yaml:"column,flow"`
	Degenerate bool      `yaml:"degenerate,omitempty"`
}

type reportYAML struct {
	Name   string        `yaml:"name,omitempty"`
	Rows   int           `yaml:"rows"`
	Cols   int           `yaml:"cols"`
	Nash   []profileYAML `yaml:"pure_nash"`
	Pareto []profileYAML `yaml:"pure_pareto"`
	Mixed  *mixedYAML    `yaml:"mixed_nash,omitempty"`
}

func (g *Game) profiles(cells []matrixgame.Cell) []profileYAML {
	result := make([]profileYAML, len(cells))
	for i, cell := range cells {
		result[i] = profileYAML{
			Row:      cell.Row,
			Col:      cell.Col,
			RowLabel: g.rowLabel(cell.Row),
			ColLabel: g.columnLabel(cell.Col),
		}
	}

	return result
}

// EncodeReport writes the Analysis of the Game as YAML.
// Probabilities are written as exact fractions.
func EncodeReport(w io.Writer, g *Game, a *bimatrix.Analysis) error {
	if g == nil {
		g = &Game{}
	}

	report := reportYAML{
		Name:   g.Name,
		Rows:   a.Rows,
		Cols:   a.Cols,
		Nash:   g.profiles(a.Nash),
		Pareto: g.profiles(a.Pareto),
	}

	if a.Mixed != nil {
		report.Mixed = &mixedYAML{
			Row:        [2]string{FormatRat(a.Mixed.Row[0]), FormatRat(a.Mixed.Row[1])},
			Column:     [2]string{FormatRat(a.Mixed.Column[0]), FormatRat(a.Mixed.Column[1])},
			Degenerate: a.Mixed.Degenerate,
		}
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(report); err != nil {
		return errors.Wrap(err, "yaml encode")
	}

	return enc.Close()
}
