// Package ladder ranks every two-card sub-holding ("couplet") against a
// fixed board of community cards. It builds an ordered sequence of strength
// levels covering every hand category, then resolves the wildcard patterns
// in each level into the concrete couplets remaining in the deck. The
// resulting concrete ladder is the input to the equity engine.
package ladder

// Rules holds the fixed game parameters for a ladder or equity evaluation.
// A Rules value is immutable once constructed; evaluations with different
// parameterizations (short decks, more opponents) can coexist.
type Rules struct {
	NumRanks    int
	NumSuits    int
	BoardSize   int
	HoldingSize int
	NumPlayers  int
}

// DefaultRules are the standard 6-player Omaha parameters.
var DefaultRules = Rules{
	NumRanks:    13,
	NumSuits:    4,
	BoardSize:   5,
	HoldingSize: 4,
	NumPlayers:  6,
}

// CoupletsPerHolding is the number of two-card subsets in one holding.
func (r Rules) CoupletsPerHolding() int {
	return r.HoldingSize * (r.HoldingSize - 1) / 2
}

// OpponentCouplets is the number of couplets contributed by all opponents
// combined, modeled as drawn uniformly from the remaining compatible couplets.
func (r Rules) OpponentCouplets() int {
	return (r.NumPlayers - 1) * r.CoupletsPerHolding()
}

// DeckSize is the total number of cards in the deck.
func (r Rules) DeckSize() int {
	return r.NumRanks * r.NumSuits
}

// Named ranks used by the builders. These are offsets into the rank range,
// not tied to the default 13-rank deck: "three" is the second-lowest rank
// and "five" the fourth-lowest, which is what the flush floor and the
// lowest straight high card mean under any parameterization.
const (
	rankThree = 1
	rankFive  = 3
)

// lowAce is the deprecated-ace alias: the ace additionally counts as the
// rank below the lowest normal rank, but only inside straight detection.
const lowAce = -1
