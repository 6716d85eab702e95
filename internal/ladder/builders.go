package ladder

import (
	"github.com/lox/omaha-odds/internal/deck"
)

// The builders below each generate the levels for one hand category, in
// strict strength order within the category. Generic concatenates them
// strongest category first and appends the catch-all terminal level.
//
// Every rank loop walks from the highest rank down, so all the ways to make
// aces-full are assessed before kings-full, and so on.

// rankCouplet is a couplet of two specific ranks in any suits.
func rankCouplet(hi, lo deck.Rank) Couplet {
	return Couplet{
		A: Pattern(RankOf(hi), AnySuit()),
		B: Pattern(RankOf(lo), AnySuit()),
	}
}

// Generic builds the full generic ladder for the board: every category's
// levels, strongest first, terminated by the any-any catch-all so that
// every remaining couplet is guaranteed a level.
func Generic(r Rules, board []deck.Card) Ladder {
	var l Ladder
	l = append(l, straightFlushLevels(r, board)...)
	l = append(l, fourOfAKindLevels(r, board)...)
	l = append(l, fullHouseLevels(r, board)...)
	l = append(l, flushLevels(r, board)...)
	l = append(l, straightLevels(r, board)...)
	l = append(l, threeOfAKindLevels(r, board)...)
	l = append(l, twoPairLevels(r, board)...)
	l = append(l, onePairLevels(r, board)...)
	l = append(l, highCardLevels(r, board)...)
	l = append(l, Level{CatchAll()})
	return l
}

// fourOfAKindLevels emits one level per board rank that can be extended to
// quads: a doubly-present rank needs the pocket pair of its two remaining
// cards, a triply-present rank needs just one more card of it.
func fourOfAKindLevels(r Rules, board []deck.Card) []Level {
	tallies := tallyRanks(r, board)
	var levels []Level
	for rank := r.NumRanks - 1; rank >= 0; rank-- {
		switch {
		case tallies[rank] == 2:
			levels = append(levels, Level{PairCouplet(deck.Rank(rank))})
		case tallies[rank] >= 3:
			levels = append(levels, Level{{
				A: Pattern(RankOf(deck.Rank(rank)), AnySuit()),
				B: Pattern(AnyRank(), AnySuit()),
			}})
		}
	}
	return levels
}

// fullHouseLevels applies only when the board is at least paired.
func fullHouseLevels(r Rules, board []deck.Card) []Level {
	tallies := tallyRanks(r, board)
	var levels []Level
	switch most := tallies.max(); {
	case most == 2:
		for rank := r.NumRanks - 1; rank >= 0; rank-- {
			switch tallies[rank] {
			case 1:
				levels = append(levels, Level{PairCouplet(deck.Rank(rank))})
			case 2:
				for inner := r.NumRanks - 1; inner >= 0; inner-- {
					// On a double-paired board, a couplet that could
					// complete either pair scores as high-full-of-low,
					// never the reverse.
					if tallies[inner] == 1 || (tallies[inner] == 2 && inner < rank) {
						levels = append(levels, Level{rankCouplet(deck.Rank(rank), deck.Rank(inner))})
					}
				}
			}
		}
	case most >= 3:
		for rank := r.NumRanks - 1; rank >= 0; rank-- {
			if tallies[rank] == 1 {
				levels = append(levels, Level{PairCouplet(deck.Rank(rank))})
			} else if tallies[rank] >= 3 {
				// A tally of 2 is skipped: it always makes quads rather
				// than a full house.
				for inner := r.NumRanks - 1; inner >= 0; inner-- {
					if tallies[inner] == 0 || (tallies[inner] == 1 && inner < rank) {
						levels = append(levels, Level{PairCouplet(deck.Rank(inner))})
					}
				}
				// Every pocket pair below the highest board trips is
				// assessed in this pass; lower trip ranks add nothing new.
				break
			}
		}
	}
	return levels
}

// flushLevels emits one level per missing suited rank, for every suit with
// at least three board cards. Each missing rank is a strictly distinct
// flush value; no suited couplet is lower than three-high. Assumes no card
// appears more than once in the deck. For boards longer than five cards
// this is sensitive to the relative highness of the suits.
func flushLevels(r Rules, board []deck.Card) []Level {
	var levels []Level
	for _, subboard := range partitionBySuit(r, board) {
		if len(subboard) < 3 {
			continue
		}
		suit := subboard[0].Suit
		suitedRanks := extractRanks(r, subboard, false)
		for rank := r.NumRanks - 1; rank >= rankThree; rank-- {
			if containsInt(suitedRanks, rank) {
				continue
			}
			levels = append(levels, Level{{
				A: Pattern(RankOf(deck.Rank(rank)), SuitOf(suit)),
				B: Pattern(AnyRank(), SuitOf(suit)),
			}})
		}
	}
	return levels
}

// straightLevels emits one level per straight high rank the board can
// support, highest first.
func straightLevels(r Rules, board []deck.Card) []Level {
	return straightLevelsWithSuit(r, board, AnySuit())
}

// straightFlushLevels runs straight detection per suit, restricted to suits
// with at least three board cards. The resulting patterns are fully
// concrete, so any pattern that would reuse a board card is dropped as a
// final duplicate-card safety net. For boards longer than five cards this
// is sensitive to the relative highness of the suits.
func straightFlushLevels(r Rules, board []deck.Card) []Level {
	var levels []Level
	for _, subboard := range partitionBySuit(r, board) {
		if len(subboard) >= 3 {
			levels = append(levels, straightLevelsWithSuit(r, subboard, SuitOf(subboard[0].Suit))...)
		}
	}

	var out []Level
	for _, level := range levels {
		if filtered := removeIncompatible(level, board); len(filtered) > 0 {
			out = append(out, filtered)
		}
	}
	return out
}

// straightLevelsWithSuit walks candidate straight high ranks from the top
// of the deck down to five, the lowest straight the low-ace alias allows.
// The same couplet may appear in multiple levels; resolution's
// first-match-wins rule keeps that harmless.
func straightLevelsWithSuit(r Rules, cards []deck.Card, suit SuitPattern) []Level {
	boardRanks := uniqueInts(extractRanks(r, cards, true))
	var levels []Level
	for high := r.NumRanks - 1; high >= rankFive; high-- {
		if level := straightLevel(r, high, boardRanks, suit); len(level) > 0 {
			levels = append(levels, level)
		}
	}
	return levels
}

// straightLevel lists every couplet that completes a high-rank-high
// straight: three of the five window ranks must already be on the board and
// the remaining two come from the holding.
func straightLevel(r Rules, high int, boardRanks []int, suit SuitPattern) Level {
	window := []int{high, high - 1, high - 2, high - 3, high - 4}
	var level Level
	for i := 0; i < len(window)-2; i++ {
		for j := i + 1; j < len(window)-1; j++ {
			for k := j + 1; k < len(window); k++ {
				if !containsInt(boardRanks, window[i]) ||
					!containsInt(boardRanks, window[j]) ||
					!containsInt(boardRanks, window[k]) {
					continue
				}
				var rest []int
				for idx, rank := range window {
					if idx != i && idx != j && idx != k {
						rest = append(rest, rank)
					}
				}
				level = append(level, coupletOfRanks(r, rest[0], rest[1], suit))
			}
		}
	}
	return level
}

// coupletOfRanks builds a couplet from two straight-window ranks, mapping
// the low-ace alias back onto the true ace rank.
func coupletOfRanks(r Rules, hi, lo int, suit SuitPattern) Couplet {
	undeprecate := func(v int) deck.Rank {
		return deck.Rank(((v % r.NumRanks) + r.NumRanks) % r.NumRanks)
	}
	return Couplet{
		A: Pattern(RankOf(undeprecate(hi)), suit),
		B: Pattern(RankOf(undeprecate(lo)), suit),
	}
}

// threeOfAKindLevels mirrors the full-house case split one tier down:
// pocket pairs make trips rather than a full house.
func threeOfAKindLevels(r Rules, board []deck.Card) []Level {
	tallies := tallyRanks(r, board)
	var levels []Level
	switch most := tallies.max(); {
	case most == 1:
		for rank := r.NumRanks - 1; rank >= 0; rank-- {
			if tallies[rank] == 1 {
				levels = append(levels, Level{PairCouplet(deck.Rank(rank))})
			}
		}
	case most == 2:
		for rank := r.NumRanks - 1; rank >= 0; rank-- {
			if tallies[rank] != 2 {
				continue
			}
			for inner := r.NumRanks - 1; inner >= 0; inner-- {
				if tallies[inner] == 0 {
					levels = append(levels, Level{rankCouplet(deck.Rank(rank), deck.Rank(inner))})
				}
			}
		}
	case most >= 3:
		// Board pairs above the highest board trips make trips too; track
		// them so they are excluded from the kicker ranges below.
		var overPairs []int
		for rank := r.NumRanks - 1; rank >= 0; rank-- {
			if tallies[rank] == 2 {
				// A tally of 1 is skipped: it always makes a full house
				// rather than trips.
				for inner := r.NumRanks - 1; inner >= 0; inner-- {
					if tallies[inner] == 0 {
						levels = append(levels, Level{rankCouplet(deck.Rank(rank), deck.Rank(inner))})
					}
				}
				overPairs = append(overPairs, rank)
			} else if tallies[rank] == 3 {
				var kickers []int
				for inner := r.NumRanks - 1; inner >= 0; inner-- {
					if inner != rank && !containsInt(overPairs, inner) {
						kickers = append(kickers, inner)
					}
				}
				for _, hiKicker := range kickers {
					for _, loKicker := range kickers {
						if loKicker < hiKicker {
							levels = append(levels, Level{rankCouplet(deck.Rank(hiKicker), deck.Rank(loKicker))})
						}
					}
				}
				// Only the highest board trips needs explicit kicker
				// enumeration; lower trip ranks are structurally dominated.
				break
			}
		}
	}
	return levels
}

// twoPairLevels pairs hole cards with board ranks. On a paired board the
// kicker split around the board pair rank matters: a kicker above the board
// pair together with another above-pair board rank makes two pair with the
// higher kicker, not with the board pair.
func twoPairLevels(r Rules, board []deck.Card) []Level {
	tallies := tallyRanks(r, board)
	var levels []Level
	switch most := tallies.max(); {
	case most == 1:
		var pairable []int
		for rank := r.NumRanks - 1; rank >= 0; rank-- {
			if tallies[rank] == 1 {
				pairable = append(pairable, rank)
			}
		}
		for _, hi := range pairable {
			for _, lo := range pairable {
				if lo < hi {
					levels = append(levels, Level{rankCouplet(deck.Rank(hi), deck.Rank(lo))})
				}
			}
		}
	case most == 2:
		boardPair := int(tallies.highestRepeated())
		for rank := r.NumRanks - 1; rank >= 0; rank-- {
			if tallies[rank] == 0 {
				levels = append(levels, Level{PairCouplet(deck.Rank(rank))})
			}
			if tallies[rank] == 1 {
				for inner := r.NumRanks - 1; inner >= 0; inner-- {
					if inner > boardPair && tallies[inner] == 1 && inner != rank {
						levels = append(levels, Level{rankCouplet(deck.Rank(rank), deck.Rank(inner))})
					}
				}
				for inner := r.NumRanks - 1; inner >= 0; inner-- {
					if inner < boardPair || tallies[inner] == 0 {
						levels = append(levels, Level{rankCouplet(deck.Rank(rank), deck.Rank(inner))})
					}
				}
			}
		}
	}
	return levels
}

// onePairLevels enumerates pairs on unpaired boards and kicker couplets on
// paired boards where the board pair itself is the made pair.
func onePairLevels(r Rules, board []deck.Card) []Level {
	tallies := tallyRanks(r, board)
	var levels []Level
	switch most := tallies.max(); {
	case most == 1:
		for rank := r.NumRanks - 1; rank >= 0; rank-- {
			if tallies[rank] == 0 {
				levels = append(levels, Level{PairCouplet(deck.Rank(rank))})
			}
			if tallies[rank] == 1 {
				for inner := r.NumRanks - 1; inner >= 0; inner-- {
					if tallies[inner] == 0 {
						levels = append(levels, Level{rankCouplet(deck.Rank(rank), deck.Rank(inner))})
					}
				}
			}
		}
	case most == 2:
		var kickers []int
		for rank := r.NumRanks - 1; rank >= 0; rank-- {
			if tallies[rank] == 0 {
				kickers = append(kickers, rank)
			}
		}
		for _, hi := range kickers {
			for _, lo := range kickers {
				if lo < hi {
					levels = append(levels, Level{rankCouplet(deck.Rank(hi), deck.Rank(lo))})
				}
			}
		}
	}
	return levels
}

// highCardLevels applies only to fully unpaired boards: ordered two-kicker
// combinations from ranks absent on the board.
func highCardLevels(r Rules, board []deck.Card) []Level {
	tallies := tallyRanks(r, board)
	if tallies.max() != 1 {
		return nil
	}
	var kickers []int
	for rank := r.NumRanks - 1; rank >= 0; rank-- {
		if tallies[rank] == 0 {
			kickers = append(kickers, rank)
		}
	}
	var levels []Level
	for _, hi := range kickers {
		for _, lo := range kickers {
			if lo < hi {
				levels = append(levels, Level{rankCouplet(deck.Rank(hi), deck.Rank(lo))})
			}
		}
	}
	return levels
}

// removeIncompatible drops couplets whose concrete cards collide with a
// forbidden card (a card already on the board).
func removeIncompatible(level Level, forbidden []deck.Card) Level {
	var out Level
	for _, c := range level {
		if c.Compatible(forbidden) {
			out = append(out, c)
		}
	}
	return out
}
