package ladder

import (
	"github.com/lox/omaha-odds/internal/deck"
)

// rankTally counts board occurrences per rank, indexed by rank.
type rankTally []int

// tallyRanks counts how often each rank appears on the board. Aces are
// counted under their true rank only; the low-ace alias never shows up in a
// tally.
func tallyRanks(r Rules, board []deck.Card) rankTally {
	tallies := make(rankTally, r.NumRanks)
	for _, c := range board {
		tallies[c.Rank]++
	}
	return tallies
}

// max returns the highest per-rank count: 0 for an empty board, 1 for an
// unpaired board, up to the board size. It determines whether the board is
// paired, tripled, etc.
func (t rankTally) max() int {
	most := 0
	for _, n := range t {
		if n > most {
			most = n
		}
	}
	return most
}

// highestRepeated returns the highest rank appearing at least twice.
// Precondition: the board is paired (max() >= 2); callers must not invoke
// this on an unpaired board.
func (t rankTally) highestRepeated() deck.Rank {
	for rank := len(t) - 1; rank >= 0; rank-- {
		if t[rank] > 1 {
			return deck.Rank(rank)
		}
	}
	return deck.Rank(-1)
}

// partitionBySuit groups board cards by suit, highest suit first. The fixed
// descending order keeps multi-suit ambiguity on oversized boards
// deterministic: when two suits both qualify for a flush, the higher suit's
// levels are emitted first.
func partitionBySuit(r Rules, board []deck.Card) [][]deck.Card {
	groups := make([][]deck.Card, 0, r.NumSuits)
	for suit := r.NumSuits - 1; suit >= 0; suit-- {
		var group []deck.Card
		for _, c := range board {
			if c.Suit == deck.Suit(suit) {
				group = append(group, c)
			}
		}
		groups = append(groups, group)
	}
	return groups
}

// extractRanks lists the board's ranks as plain ints. With includeLowAce
// set, every ace also contributes the low-ace alias so straight detection
// can see wheel straights.
func extractRanks(r Rules, board []deck.Card, includeLowAce bool) []int {
	ranks := make([]int, 0, len(board)*2)
	for _, c := range board {
		ranks = append(ranks, int(c.Rank))
	}
	if includeLowAce {
		ace := r.NumRanks - 1
		for _, c := range board {
			if int(c.Rank) == ace {
				ranks = append(ranks, lowAce)
			}
		}
	}
	return ranks
}

// uniqueInts keeps the first occurrence of each value, preserving order.
func uniqueInts(values []int) []int {
	var out []int
	seen := make(map[int]bool, len(values))
	for _, v := range values {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}

// containsInt reports whether values holds v.
func containsInt(values []int, v int) bool {
	for _, other := range values {
		if other == v {
			return true
		}
	}
	return false
}
