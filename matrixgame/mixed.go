package matrixgame

import (
	"fmt"
	"math/big"

	"github.com/golang/glog"
	"github.com/pkg/errors"
)

// MixedStrategy is a probability distribution (p, 1-p) over the two pure
// strategies of a player in a 2x2 game.
type MixedStrategy [2]*big.Rat

// NewMixedStrategy returns the strategy (p, 1-p).
func NewMixedStrategy(p *big.Rat) MixedStrategy {
	one := big.NewRat(1, 1)
	return MixedStrategy{
		new(big.Rat).Set(p),
		new(big.Rat).Sub(one, p),
	}
}

// Validate checks that both probabilities lie in [0, 1] and sum to exactly 1.
func (s MixedStrategy) Validate() error {
	zero, one := new(big.Rat), big.NewRat(1, 1)
	for i, p := range s {
		if p == nil {
			return errors.Errorf("probability %d is missing", i)
		}

		if p.Cmp(zero) < 0 || p.Cmp(one) > 0 {
			return errors.Errorf("probability %d is %v, not in [0, 1]", i, p.RatString())
		}
	}

	if sum := new(big.Rat).Add(s[0], s[1]); sum.Cmp(one) != 0 {
		return errors.Errorf("probabilities sum to %v", sum.RatString())
	}

	return nil
}

// IsPure returns whether the strategy puts all weight on one pure strategy.
func (s MixedStrategy) IsPure() bool {
	return s[0].Sign() == 0 || s[1].Sign() == 0
}

func (s MixedStrategy) String() string {
	return fmt.Sprintf("(%v, %v)", s[0].RatString(), s[1].RatString())
}

// Equilibrium is a pair of mixed strategies in a 2x2 game.
type Equilibrium struct {
	// The row player plays row 0 with probability Row[0].
	Row MixedStrategy
	// The column player plays column 0 with probability Column[0].
	Column MixedStrategy
	// Degenerate is set when a player is indifferent regardless of the
	// opponent's mixture, so the opponent's probability is not uniquely
	// determined. The undetermined probability is reported as 0.
	Degenerate bool
}

// indifference is the advantage of a player's first pure strategy over
// its second, as a linear function of the opponent's probability x of
// playing their first pure strategy: atZero + x*(atOne-atZero).
type indifference struct {
	atZero, atOne *big.Rat
}

func (d indifference) slope() *big.Rat {
	return new(big.Rat).Sub(d.atOne, d.atZero)
}

// dominant returns the player's own probability of playing their first
// strategy if one strategy is strictly better for every x in [0, 1].
func (d indifference) dominant() (*big.Rat, bool) {
	switch {
	case d.atZero.Sign() > 0 && d.atOne.Sign() > 0:
		return big.NewRat(1, 1), true
	case d.atZero.Sign() < 0 && d.atOne.Sign() < 0:
		return new(big.Rat), true
	}

	return nil, false
}

// bestResponse returns the player's pure best response to x, as the
// probability of playing their first strategy. It is false on a tie.
func (d indifference) bestResponse(x *big.Rat) (*big.Rat, bool) {
	v := new(big.Rat).Mul(x, d.slope())
	v.Add(v, d.atZero)
	switch v.Sign() {
	case 1:
		return big.NewRat(1, 1), true
	case -1:
		return new(big.Rat), true
	}

	return nil, false
}

// root returns the x at which the player is indifferent. It is false
// when the advantage does not depend on x.
func (d indifference) root() (*big.Rat, bool) {
	den := d.slope()
	if den.Sign() == 0 {
		return nil, false
	}

	x := new(big.Rat).Neg(d.atZero)
	return x.Quo(x, den), true
}

// SolveMixedEquilibrium computes the Nash equilibrium of a 2x2 game in
// closed form, using exact rational arithmetic.
//
// With (0,0) -> (a, b), (0,1) -> (c, d), (1,0) -> (e, f), (1,1) -> (g, h),
// the column player's probability q makes the row player indifferent:
//
//	q = -(c-g) / ((a-c)-(e-g))
//
// and the row player's probability p makes the column player indifferent:
//
//	p = -(f-h) / ((b-f)-(d-h))
//
// A player with a strictly dominant pure strategy plays it, and the
// opponent best responds to it.
func SolveMixedEquilibrium(m *Matrix) (Equilibrium, error) {
	if err := m.Validate(); err != nil {
		return Equilibrium{}, err
	}

	if !m.Is2x2() {
		return Equilibrium{}, errors.Wrapf(ErrUnsupportedDimension,
			"mixed equilibrium requires a 2x2 matrix, got %dx%d", m.rows, m.cols)
	}

	a, b := m.at(0, 0).Row, m.at(0, 0).Col
	c, d := m.at(0, 1).Row, m.at(0, 1).Col
	e, f := m.at(1, 0).Row, m.at(1, 0).Col
	g, h := m.at(1, 1).Row, m.at(1, 1).Col

	// Row 0 minus row 1 for the row player, as a function of q.
	rowAdv := indifference{
		atZero: new(big.Rat).Sub(c, g),
		atOne:  new(big.Rat).Sub(a, e),
	}
	// Column 0 minus column 1 for the column player, as a function of p.
	colAdv := indifference{
		atZero: new(big.Rat).Sub(f, h),
		atOne:  new(big.Rat).Sub(b, d),
	}

	var eq Equilibrium
	p, rowFixed := rowAdv.dominant()
	q, colFixed := colAdv.dominant()
	var ok bool
	switch {
	case rowFixed && colFixed:
		glog.V(1).Infof("Both players have strictly dominant strategies")
	case rowFixed:
		glog.V(1).Infof("%v has a strictly dominant strategy (p = %v)", RowPlayer, p.RatString())
		if q, ok = colAdv.bestResponse(p); !ok {
			glog.V(1).Infof("%v is indifferent against it", ColumnPlayer)
			q, eq.Degenerate = new(big.Rat), true
		}
	case colFixed:
		glog.V(1).Infof("%v has a strictly dominant strategy (q = %v)", ColumnPlayer, q.RatString())
		if p, ok = rowAdv.bestResponse(q); !ok {
			glog.V(1).Infof("%v is indifferent against it", RowPlayer)
			p, eq.Degenerate = new(big.Rat), true
		}
	default:
		if q, ok = rowAdv.root(); !ok {
			glog.V(1).Infof("%v is indifferent to every q", RowPlayer)
			q, eq.Degenerate = new(big.Rat), true
		}
		if p, ok = colAdv.root(); !ok {
			glog.V(1).Infof("%v is indifferent to every p", ColumnPlayer)
			p, eq.Degenerate = new(big.Rat), true
		}
	}

	eq.Row = NewMixedStrategy(p)
	eq.Column = NewMixedStrategy(q)
	return eq, nil
}

// ExpectedPayoff returns each player's expected reward when the row and
// column players independently play the given mixed strategies.
func ExpectedPayoff(m *Matrix, row, column MixedStrategy) (Payoff, error) {
	if err := m.Validate(); err != nil {
		return Payoff{}, err
	}

	if !m.Is2x2() {
		return Payoff{}, errors.Wrapf(ErrUnsupportedDimension,
			"expected payoff of mixed strategies requires a 2x2 matrix, got %dx%d", m.rows, m.cols)
	}

	if err := row.Validate(); err != nil {
		return Payoff{}, errors.Wrapf(err, "%v strategy invalid", RowPlayer)
	}

	if err := column.Validate(); err != nil {
		return Payoff{}, errors.Wrapf(err, "%v strategy invalid", ColumnPlayer)
	}

	result := Payoff{Row: new(big.Rat), Col: new(big.Rat)}
	w := new(big.Rat)
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			w.Mul(row[i], column[j])
			cell := m.at(i, j)
			result.Row.Add(result.Row, new(big.Rat).Mul(w, cell.Row))
			result.Col.Add(result.Col, new(big.Rat).Mul(w, cell.Col))
		}
	}

	return result, nil
}
