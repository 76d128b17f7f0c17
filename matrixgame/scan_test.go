package matrixgame

import (
	"reflect"
	"testing"

	"github.com/pkg/errors"
)

func TestFindParetoOptimal(t *testing.T) {
	testCases := []struct {
		name     string
		rows     [][]Payoff
		expected []Cell
	}{
		{"matching pennies", matchingPennies, []Cell{{0, 0}, {0, 1}, {1, 0}, {1, 1}}},
		{"prisoner's dilemma", prisonersDilemma, []Cell{{0, 0}, {0, 1}, {1, 0}}},
		{"single cell", single, []Cell{{0, 0}}},
		{"strict winner", [][]Payoff{
			{IntPayoff(1, 1), IntPayoff(2, 2), IntPayoff(0, 3)},
		}, []Cell{{0, 1}, {0, 2}}},
		{"equal in one coordinate", [][]Payoff{
			{IntPayoff(1, 1)},
			{IntPayoff(1, 2)},
		}, []Cell{{1, 0}}},
		{"fractions", [][]Payoff{
			{NewPayoff(1, 2, 1, 3), NewPayoff(1, 3, 1, 2)},
			{NewPayoff(1, 2, 1, 2), NewPayoff(2, 4, 2, 6)},
		}, []Cell{{1, 0}}},
	}

	for _, tc := range testCases {
		m := mustMatrix(t, tc.rows)
		result, err := FindParetoOptimal(m)
		if err != nil {
			t.Fatal(err)
		}

		if !reflect.DeepEqual(result, tc.expected) {
			t.Errorf("%s: got %v, expected %v", tc.name, result, tc.expected)
		}
	}
}

func TestFindPureNashEquilibria(t *testing.T) {
	testCases := []struct {
		name     string
		rows     [][]Payoff
		expected []Cell
	}{
		{"matching pennies", matchingPennies, nil},
		{"prisoner's dilemma", prisonersDilemma, []Cell{{1, 1}}},
		{"single cell", single, []Cell{{0, 0}}},
		{"coordination", [][]Payoff{
			{IntPayoff(2, 1), IntPayoff(0, 0)},
			{IntPayoff(0, 0), IntPayoff(1, 2)},
		}, []Cell{{0, 0}, {1, 1}}},
		{"all ties", [][]Payoff{
			{IntPayoff(0, 0), IntPayoff(0, 0)},
			{IntPayoff(0, 0), IntPayoff(0, 0)},
		}, []Cell{{0, 0}, {0, 1}, {1, 0}, {1, 1}}},
		{"3x2", [][]Payoff{
			{IntPayoff(1, 0), IntPayoff(4, 1)},
			{IntPayoff(3, 2), IntPayoff(0, 1)},
			{IntPayoff(2, 5), IntPayoff(3, 3)},
		}, []Cell{{0, 1}, {1, 0}}},
	}

	for _, tc := range testCases {
		m := mustMatrix(t, tc.rows)
		result, err := FindPureNashEquilibria(m)
		if err != nil {
			t.Fatal(err)
		}

		if !reflect.DeepEqual(result, tc.expected) {
			t.Errorf("%s: got %v, expected %v", tc.name, result, tc.expected)
		}
	}
}

// Every reported cell must satisfy the best-response conditions and every
// unreported cell must violate one.
func TestNashMatchesBestResponses(t *testing.T) {
	m := mustMatrix(t, [][]Payoff{
		{IntPayoff(3, 1), IntPayoff(2, 2), IntPayoff(0, 2)},
		{IntPayoff(3, 0), IntPayoff(1, 1), IntPayoff(4, 4)},
		{IntPayoff(0, 5), IntPayoff(2, 5), IntPayoff(4, 1)},
	})

	nash, err := FindPureNashEquilibria(m)
	if err != nil {
		t.Fatal(err)
	}

	reported := make(map[Cell]bool)
	for _, cell := range nash {
		reported[cell] = true
	}

	for _, cell := range m.Cells() {
		rows, _ := RowBestResponses(m, cell.Col)
		cols, _ := ColumnBestResponses(m, cell.Row)
		isBest := contains(rows, cell.Row) && contains(cols, cell.Col)
		if isBest != reported[cell] {
			t.Errorf("%v: best response = %v, reported = %v", cell, isBest, reported[cell])
		}
	}
}

func TestParetoNeverDominated(t *testing.T) {
	m := mustMatrix(t, [][]Payoff{
		{IntPayoff(3, 1), IntPayoff(2, 2), IntPayoff(0, 2)},
		{IntPayoff(3, 0), IntPayoff(1, 1), IntPayoff(4, 4)},
		{IntPayoff(0, 5), IntPayoff(2, 5), IntPayoff(4, 1)},
	})

	pareto, err := FindParetoOptimal(m)
	if err != nil {
		t.Fatal(err)
	}

	expected := []Cell{{1, 2}, {2, 1}}
	if !reflect.DeepEqual(pareto, expected) {
		t.Errorf("got %v, expected %v", pareto, expected)
	}

	for _, cell := range pareto {
		target, _ := m.At(cell)
		for _, other := range m.Cells() {
			p, _ := m.At(other)
			if other != cell && Dominates(p, target) {
				t.Errorf("%v is dominated by %v", cell, other)
			}
		}
	}
}

func TestBestResponses(t *testing.T) {
	m := mustMatrix(t, [][]Payoff{
		{IntPayoff(1, 7), IntPayoff(5, 7)},
		{IntPayoff(5, 0), IntPayoff(2, 1)},
	})

	rows, err := RowBestResponses(m, 0)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(rows, []int{1}) {
		t.Errorf("row best responses to column 0: %v", rows)
	}

	cols, err := ColumnBestResponses(m, 0)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(cols, []int{0, 1}) {
		t.Errorf("column best responses to row 0: %v", cols)
	}

	if _, err := RowBestResponses(m, 2); errors.Cause(err) != ErrOutOfRange {
		t.Errorf("got error %v, expected %v", err, ErrOutOfRange)
	}
	if _, err := ColumnBestResponses(m, -1); errors.Cause(err) != ErrOutOfRange {
		t.Errorf("got error %v, expected %v", err, ErrOutOfRange)
	}
}

func TestDominates(t *testing.T) {
	testCases := []struct {
		a, b           Payoff
		dominates      bool
		weaklyDominate bool
	}{
		{IntPayoff(1, 1), IntPayoff(1, 1), false, true},
		{IntPayoff(2, 1), IntPayoff(1, 1), true, true},
		{IntPayoff(2, 0), IntPayoff(1, 1), false, false},
		{NewPayoff(1, 2, 1, 1), NewPayoff(1, 3, 1, 1), true, true},
	}

	for _, tc := range testCases {
		if result := Dominates(tc.a, tc.b); result != tc.dominates {
			t.Errorf("Dominates(%v, %v) = %v, expected %v", tc.a, tc.b, result, tc.dominates)
		}
		if result := WeaklyDominates(tc.a, tc.b); result != tc.weaklyDominate {
			t.Errorf("WeaklyDominates(%v, %v) = %v, expected %v", tc.a, tc.b, result, tc.weaklyDominate)
		}
	}
}

func TestScanUnknownPredicate(t *testing.T) {
	m := mustMatrix(t, single)
	if _, err := Scan(m, Predicate(7)); errors.Cause(err) != ErrUnknownPredicate {
		t.Errorf("got error %v, expected %v", err, ErrUnknownPredicate)
	}

	if Predicate(7).String() != "Unknown" || Nash.String() != "Nash" {
		t.Errorf("unexpected predicate names: %v, %v", Predicate(7), Nash)
	}
}

func TestCellPredicatesOutOfRange(t *testing.T) {
	m := mustMatrix(t, single)
	if _, err := IsParetoOptimal(m, Cell{0, 1}); errors.Cause(err) != ErrOutOfRange {
		t.Errorf("got error %v, expected %v", err, ErrOutOfRange)
	}
	if _, err := IsPureNashEquilibrium(m, Cell{1, 0}); errors.Cause(err) != ErrOutOfRange {
		t.Errorf("got error %v, expected %v", err, ErrOutOfRange)
	}

	ok, err := IsPureNashEquilibrium(m, Cell{0, 0})
	if err != nil || !ok {
		t.Errorf("single cell is not a Nash equilibrium: %v, %v", ok, err)
	}
}

func TestScanIsIdempotent(t *testing.T) {
	m := mustMatrix(t, prisonersDilemma)
	for _, p := range []Predicate{Pareto, Nash} {
		first, err := Scan(m, p)
		if err != nil {
			t.Fatal(err)
		}

		second, err := Scan(m, p)
		if err != nil {
			t.Fatal(err)
		}

		if !reflect.DeepEqual(first, second) {
			t.Errorf("%v: first scan %v, second scan %v", p, first, second)
		}
	}
}

func contains(vs []int, x int) bool {
	for _, v := range vs {
		if v == x {
			return true
		}
	}

	return false
}
