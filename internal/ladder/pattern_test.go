package ladder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/omaha-odds/internal/deck"
)

func mustCouplet(t *testing.T, s string) ConcreteCouplet {
	t.Helper()
	cards, err := deck.ParseCards(s)
	require.NoError(t, err)
	require.Len(t, cards, 2)
	return ConcreteCouplet{A: cards[0], B: cards[1]}
}

func TestCoupletFulfillsEitherPairing(t *testing.T) {
	t.Parallel()
	pattern := Couplet{
		A: Pattern(RankOf(deck.Ace), AnySuit()),
		B: Pattern(RankOf(deck.King), AnySuit()),
	}

	assert.True(t, mustCouplet(t, "AhKc").Fulfills(pattern))
	assert.True(t, mustCouplet(t, "KcAh").Fulfills(pattern), "member order must not matter")
	assert.False(t, mustCouplet(t, "AhQc").Fulfills(pattern))
}

func TestCoupletFulfillsSwapInvariance(t *testing.T) {
	t.Parallel()
	// Fulfills must be invariant under swapping the concrete members and
	// the pattern members independently.
	patterns := []Couplet{
		PairCouplet(deck.Seven),
		{A: Pattern(RankOf(deck.Ten), SuitOf(deck.Hearts)), B: Pattern(AnyRank(), SuitOf(deck.Hearts))},
		{A: Pattern(RankOf(deck.Queen), AnySuit()), B: Pattern(RankOf(deck.Jack), AnySuit())},
		CatchAll(),
	}
	couplets := []ConcreteCouplet{
		mustCouplet(t, "7h7s"),
		mustCouplet(t, "Th2h"),
		mustCouplet(t, "QdJc"),
		mustCouplet(t, "9c4d"),
	}

	for _, p := range patterns {
		swappedPattern := Couplet{A: p.B, B: p.A}
		for _, c := range couplets {
			swapped := ConcreteCouplet{A: c.B, B: c.A}
			got := c.Fulfills(p)
			assert.Equal(t, got, swapped.Fulfills(p), "couplet swap changed result for %v vs %v", c, p)
			assert.Equal(t, got, c.Fulfills(swappedPattern), "pattern swap changed result for %v vs %v", c, p)
			assert.Equal(t, got, swapped.Fulfills(swappedPattern), "double swap changed result for %v vs %v", c, p)
		}
	}
}

func TestCatchAllMatchesEverything(t *testing.T) {
	t.Parallel()
	catchAll := CatchAll()
	for _, s := range []string{"AhAs", "2c3d", "KhKs", "7h2c"} {
		assert.True(t, mustCouplet(t, s).Fulfills(catchAll), "%s must fulfill the catch-all", s)
	}
}

func TestConcreteCoupletCompatible(t *testing.T) {
	t.Parallel()
	board := deck.MustParseCards("AhAsKd7c2h")

	assert.True(t, mustCouplet(t, "AdKh").Compatible(board))
	assert.False(t, mustCouplet(t, "AhQc").Compatible(board), "Ah is already on the board")
	assert.False(t, mustCouplet(t, "Qc2h").Compatible(board), "2h is already on the board")
}

func TestGenericCoupletCompatible(t *testing.T) {
	t.Parallel()
	board := deck.MustParseCards("9h8h7h2s2d")

	concrete := Couplet{
		A: Pattern(RankOf(deck.Nine), SuitOf(deck.Hearts)),
		B: Pattern(RankOf(deck.Ten), SuitOf(deck.Hearts)),
	}
	assert.False(t, concrete.Compatible(board), "9h collides with the board")

	// A wildcard part never denotes a single physical card, so it cannot
	// collide with one.
	wildcard := Couplet{
		A: Pattern(RankOf(deck.Nine), AnySuit()),
		B: Pattern(AnyRank(), SuitOf(deck.Hearts)),
	}
	assert.True(t, wildcard.Compatible(board))
}
