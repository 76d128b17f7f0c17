// Find the pure Pareto optimal profiles, pure Nash equilibria and, for
// 2x2 games, the mixed Nash equilibrium of a two-player game.
//
// The payoff matrix is read from stdin as m lines of n "(x,y)" tokens:
//
//	echo -e "(3,3) (0,5)\n(5,0) (1,1)" | nash_pareto 2 2
//
// or from a YAML game file with -game.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/golang/glog"
	"github.com/pkg/errors"

	"github.com/timpalpant/bimatrix"
	"github.com/timpalpant/bimatrix/gameio"
	"github.com/timpalpant/bimatrix/internal/config"
	"github.com/timpalpant/bimatrix/matrixgame"
)

func main() {
	gameFile := flag.String("game", "", "YAML game file to analyze instead of reading the matrix from stdin (default $NASH_PARETO_GAME)")
	format := flag.String("format", "", "Output format: text or yaml (default $NASH_PARETO_FORMAT, else text)")
	flag.Usage = printUsage
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	cfg = cfg.Override(*format, *gameFile)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		printUsage()
		os.Exit(2)
	}

	game, m, err := readGame(cfg.Game, flag.Args())
	if errors.Cause(err) == gameio.ErrUsage {
		glog.V(1).Info(err)
		printUsage()
		os.Exit(2)
	} else if err != nil {
		glog.Errorf("Unable to read game: %v", err)
		fmt.Println("Invalid input!")
		os.Exit(1)
	}

	glog.V(1).Infof("Analyzing %dx%d game", m.Rows(), m.Cols())
	analysis, err := bimatrix.Analyze(m)
	if err != nil {
		glog.Fatal(err)
	}

	switch cfg.Format {
	case config.FormatYAML:
		err = gameio.EncodeReport(os.Stdout, game, analysis)
	default:
		err = gameio.WriteReport(os.Stdout, m, analysis)
	}
	if err != nil {
		glog.Fatal(err)
	}
}

// readGame loads the game from the YAML file if one was given, and
// otherwise reads an m x n matrix from stdin.
func readGame(filename string, args []string) (*gameio.Game, *matrixgame.Matrix, error) {
	if filename != "" {
		game, err := gameio.LoadGame(filename)
		if err != nil {
			return nil, nil, err
		}

		m, err := game.Matrix()
		return game, m, err
	}

	rows, cols, err := gameio.ParseDimensions(args)
	if err != nil {
		return nil, nil, err
	}

	m, err := gameio.ReadMatrix(os.Stdin, rows, cols)
	return nil, m, err
}

func printUsage() {
	out := flag.CommandLine.Output()
	fmt.Fprintln(out, "usage: nash_pareto [flags] m n")
	fmt.Fprintln(out, "\tm: number of rows in the payoff matrix, positive integer")
	fmt.Fprintln(out, "\tn: number of columns in the payoff matrix, positive integer")
	fmt.Fprintln(out, "   or: nash_pareto [flags] -game file.yaml")
	flag.PrintDefaults()
}
