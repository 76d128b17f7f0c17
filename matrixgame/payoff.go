package matrixgame

import (
	"fmt"
	"math/big"
)

// Player identifies one of the two players of a normal-form game.
type Player uint8

const (
	RowPlayer Player = iota
	ColumnPlayer
)

var playerStr = [...]string{
	"RowPlayer",
	"ColumnPlayer",
}

func (p Player) String() string {
	return playerStr[p]
}

// Cell is a pure-strategy profile: the row chosen by the row player
// and the column chosen by the column player. Both are 0-indexed.
type Cell struct {
	Row int
	Col int
}

// String implements Stringer.
func (c Cell) String() string {
	return fmt.Sprintf("(%d, %d)", c.Row, c.Col)
}

// Payoff is the pair of rewards attached to one Cell.
type Payoff struct {
	// Reward to the row player.
	Row *big.Rat
	// Reward to the column player.
	Col *big.Rat
}

// NewPayoff creates a Payoff from two integer fractions.
func NewPayoff(rowNum, rowDen, colNum, colDen int64) Payoff {
	return Payoff{
		Row: big.NewRat(rowNum, rowDen),
		Col: big.NewRat(colNum, colDen),
	}
}

// IntPayoff creates a Payoff with integer rewards.
func IntPayoff(row, col int64) Payoff {
	return NewPayoff(row, 1, col, 1)
}

// Get returns the reward to the given player.
func (p Payoff) Get(player Player) *big.Rat {
	if player == RowPlayer {
		return p.Row
	}

	return p.Col
}

// Copy returns a deep copy of the Payoff.
func (p Payoff) Copy() Payoff {
	return Payoff{
		Row: new(big.Rat).Set(p.Row),
		Col: new(big.Rat).Set(p.Col),
	}
}

func (p Payoff) String() string {
	return fmt.Sprintf("(%v, %v)", p.Row.RatString(), p.Col.RatString())
}

func (p Payoff) isComplete() bool {
	return p.Row != nil && p.Col != nil
}
