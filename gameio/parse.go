// Package gameio reads payoff matrices from text and YAML and renders
// analysis reports.
package gameio

import (
	"bufio"
	"io"
	"math/big"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/timpalpant/bimatrix/matrixgame"
)

var (
	// ErrUsage is returned when the command line dimensions are invalid.
	ErrUsage = errors.New("usage: m n, where m and n are positive integers")
	// ErrInvalidInput is returned when a matrix cannot be parsed.
	ErrInvalidInput = errors.New("invalid input")
)

// ParseDimensions parses the number of rows and columns of the payoff
// matrix from the positional command line arguments.
func ParseDimensions(args []string) (m, n int, err error) {
	if len(args) != 2 {
		return 0, 0, errors.Wrapf(ErrUsage, "got %d arguments", len(args))
	}

	m, err = strconv.Atoi(args[0])
	if err != nil || m < 1 {
		return 0, 0, errors.Wrapf(ErrUsage, "invalid number of rows %q", args[0])
	}

	n, err = strconv.Atoi(args[1])
	if err != nil || n < 1 {
		return 0, 0, errors.Wrapf(ErrUsage, "invalid number of columns %q", args[1])
	}

	return m, n, nil
}

// ParsePayoff parses a token of the form "(x,y)", where x is the row
// player's payoff and y the column player's. Each may be an integer,
// a fraction such as -3/4, or a decimal such as 0.25.
func ParsePayoff(token string) (matrixgame.Payoff, error) {
	token = strings.TrimSpace(token)
	if !strings.HasPrefix(token, "(") || !strings.HasSuffix(token, ")") {
		return matrixgame.Payoff{}, errors.Wrapf(ErrInvalidInput, "payoff %q is not parenthesized", token)
	}

	parts := strings.Split(token[1:len(token)-1], ",")
	if len(parts) != 2 {
		return matrixgame.Payoff{}, errors.Wrapf(ErrInvalidInput, "payoff %q must have two components", token)
	}

	row, err := parseRat(parts[0])
	if err != nil {
		return matrixgame.Payoff{}, errors.Wrapf(err, "payoff %q", token)
	}

	col, err := parseRat(parts[1])
	if err != nil {
		return matrixgame.Payoff{}, errors.Wrapf(err, "payoff %q", token)
	}

	return matrixgame.Payoff{Row: row, Col: col}, nil
}

// maxRatLen bounds the length of a single rational literal.
const maxRatLen = 64

func parseRat(s string) (*big.Rat, error) {
	s = strings.TrimSpace(s)
	if len(s) > maxRatLen {
		return nil, errors.Wrapf(ErrInvalidInput, "rational %.16q... longer than %d characters", s, maxRatLen)
	}

	// Only plain decimals and fractions: no exponents or base prefixes,
	// which big.Rat would otherwise expand.
	if i := strings.IndexFunc(s, func(c rune) bool {
		return !strings.ContainsRune("0123456789+-./", c)
	}); i >= 0 {
		return nil, errors.Wrapf(ErrInvalidInput, "invalid character %q in rational %q", s[i], s)
	}

	r, ok := new(big.Rat).SetString(s)
	if !ok {
		return nil, errors.Wrapf(ErrInvalidInput, "invalid rational %q", s)
	}

	return r, nil
}

// ReadMatrix reads m lines of n whitespace-separated payoff tokens.
func ReadMatrix(r io.Reader, m, n int) (*matrixgame.Matrix, error) {
	b := matrixgame.NewBuilder(m, n)
	scanner := bufio.NewScanner(r)
	for line := 0; line < m; line++ {
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return nil, errors.Wrap(err, "read matrix")
			}

			return nil, errors.Wrapf(ErrInvalidInput, "expected %d rows, got %d", m, line)
		}

		tokens := strings.Fields(scanner.Text())
		if len(tokens) != n {
			return nil, errors.Wrapf(ErrInvalidInput, "line %d has %d payoffs, expected %d",
				line+1, len(tokens), n)
		}

		row := make([]matrixgame.Payoff, n)
		for col, token := range tokens {
			p, err := ParsePayoff(token)
			if err != nil {
				return nil, errors.Wrapf(err, "line %d, column %d", line+1, col+1)
			}
			row[col] = p
		}

		if err := b.AddRow(row); err != nil {
			return nil, err
		}
	}

	return b.Build()
}
