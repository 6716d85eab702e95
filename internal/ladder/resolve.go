package ladder

import (
	"fmt"

	"github.com/lox/omaha-odds/internal/deck"
)

// Resolve expands a generic ladder into its concrete form: it enumerates
// every unordered two-card combination of the remaining deck and assigns
// each to the first (strongest) level whose pattern it fulfills. First
// match wins, so no couplet is ever counted in two levels. Levels left
// without concrete couplets are dropped.
//
// Panics if a remaining couplet matches no level. The catch-all terminal
// level makes that impossible for any ladder built by Generic; hitting it
// is an internal consistency defect, not a recoverable condition.
func Resolve(r Rules, generic Ladder, board []deck.Card) ConcreteLadder {
	remaining := deck.Remaining(r.NumRanks, r.NumSuits, board)
	resolved := make(ConcreteLadder, len(generic))
	for i := 0; i < len(remaining); i++ {
		for j := i + 1; j < len(remaining); j++ {
			couplet := ConcreteCouplet{A: remaining[i], B: remaining[j]}
			idx := firstLevelIndex(couplet, generic)
			if idx < 0 {
				panic(fmt.Sprintf("ladder: couplet %v matched no level on board %v", couplet, board))
			}
			resolved[idx] = append(resolved[idx], couplet)
		}
	}

	out := make(ConcreteLadder, 0, len(resolved))
	for _, level := range resolved {
		if len(level) > 0 {
			out = append(out, level)
		}
	}
	return out
}

// firstLevelIndex scans levels strongest-first and returns the index of the
// first level containing a pattern the couplet fulfills, or -1.
func firstLevelIndex(c ConcreteCouplet, levels Ladder) int {
	for i, level := range levels {
		for _, pattern := range level {
			if c.Fulfills(pattern) {
				return i
			}
		}
	}
	return -1
}

// IndexOf returns the index of the concrete level containing the couplet,
// scanning strongest-first, or -1 if the couplet appears in no level (which
// for a couplet drawn from the remaining deck would violate the
// exhaustiveness invariant).
func (l ConcreteLadder) IndexOf(c ConcreteCouplet) int {
	for i, level := range l {
		for _, other := range level {
			if (c.A == other.A && c.B == other.B) || (c.A == other.B && c.B == other.A) {
				return i
			}
		}
	}
	return -1
}

// RankLadder builds the concrete strength ladder for a board: the ordered,
// mutually exclusive and exhaustive partition of every two-card couplet
// remaining in the deck. It is a pure function of the board and rules.
func RankLadder(r Rules, board []deck.Card) (ConcreteLadder, error) {
	if err := ValidateBoard(r, board); err != nil {
		return nil, err
	}
	return Resolve(r, Generic(r, board), board), nil
}
