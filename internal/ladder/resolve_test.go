package ladder

import (
	"testing"

	"github.com/paulhankin/poker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/omaha-odds/internal/deck"
	"github.com/lox/omaha-odds/internal/randutil"
)

// scenarioBoards cover every category mix: paired, unpaired, double paired,
// tripled, three- and four-flush, and straight-heavy boards.
var scenarioBoards = []string{
	"AhAsKd7c2h",
	"KdTs7c4h2h",
	"AhTh7hKsQd",
	"9h8h7h2s2d",
	"9h8c7s6d2c",
	"AhAd7s7c2h",
	"QhQsQd8c3h",
	"9h8h7h6h2d",
	"5h4s3dKcQd",
}

func coupletKey(c ConcreteCouplet) ConcreteCouplet {
	a, b := c.A, c.B
	if a.Rank < b.Rank || (a.Rank == b.Rank && a.Suit < b.Suit) {
		a, b = b, a
	}
	return ConcreteCouplet{A: a, B: b}
}

func TestResolvePartitionsRemainingCouplets(t *testing.T) {
	t.Parallel()

	boards := make([][]deck.Card, 0, len(scenarioBoards)+10)
	for _, s := range scenarioBoards {
		boards = append(boards, deck.MustParseCards(s))
	}
	d := deck.New(DefaultRules.NumRanks, DefaultRules.NumSuits, randutil.New(42))
	for i := 0; i < 10; i++ {
		d.Shuffle()
		boards = append(boards, d.Deal(DefaultRules.BoardSize))
	}

	for _, board := range boards {
		concrete, err := RankLadder(DefaultRules, board)
		require.NoError(t, err)

		// 47 remaining cards give C(47,2) couplets; each must land in
		// exactly one level.
		require.Equal(t, 1081, concrete.CoupletCount(), "board %v", board)

		seen := make(map[ConcreteCouplet]bool, 1081)
		for _, level := range concrete {
			require.NotEmpty(t, level, "board %v has an empty level", board)
			for _, c := range level {
				key := coupletKey(c)
				require.False(t, seen[key], "couplet %v appears twice on board %v", c, board)
				seen[key] = true
			}
		}

		remaining := deck.Remaining(DefaultRules.NumRanks, DefaultRules.NumSuits, board)
		for i := 0; i < len(remaining); i++ {
			for j := i + 1; j < len(remaining); j++ {
				key := coupletKey(ConcreteCouplet{A: remaining[i], B: remaining[j]})
				require.True(t, seen[key], "couplet %v missing from ladder on board %v", key, board)
			}
		}
	}
}

func TestConcreteLadderIndexOf(t *testing.T) {
	t.Parallel()
	board := deck.MustParseCards("AhAsKd7c2h")
	concrete, err := RankLadder(DefaultRules, board)
	require.NoError(t, err)

	// Pocket aces make quads, the strongest level on this board.
	acesIdx := concrete.IndexOf(mustCouplet(t, "AdAc"))
	assert.Equal(t, 0, acesIdx)
	assert.Equal(t, acesIdx, concrete.IndexOf(mustCouplet(t, "AcAd")), "lookup must ignore member order")

	assert.Equal(t, -1, concrete.IndexOf(mustCouplet(t, "AhKh")), "board cards cannot form a remaining couplet")
}

func TestRankLadderRejectsBadBoards(t *testing.T) {
	t.Parallel()

	_, err := RankLadder(DefaultRules, nil)
	assert.Error(t, err, "empty board")

	_, err = RankLadder(DefaultRules, deck.MustParseCards("AhAhKd7c2h"))
	assert.Error(t, err, "duplicate card")

	small := Rules{NumRanks: 5, NumSuits: 2, BoardSize: 3, HoldingSize: 2, NumPlayers: 2}
	_, err = RankLadder(small, deck.MustParseCards("AhKd2c"))
	assert.Error(t, err, "card outside the configured deck")
}

// refCard maps a card onto the reference evaluator's encoding: ranks run
// ace=1 through king=13, suits are club, diamond, heart, spade.
func refCard(t *testing.T, c deck.Card) poker.Card {
	t.Helper()
	var suit poker.Suit
	switch c.Suit {
	case deck.Clubs:
		suit = poker.Suit(0)
	case deck.Diamonds:
		suit = poker.Suit(1)
	case deck.Hearts:
		suit = poker.Suit(2)
	case deck.Spades:
		suit = poker.Suit(3)
	}
	rank := poker.Rank(1)
	if c.Rank != deck.Ace {
		rank = poker.Rank(int(c.Rank) + 2)
	}
	card, err := poker.MakeCard(suit, rank)
	require.NoError(t, err)
	return card
}

// refValue scores a couplet on a five-card board under the two-from-hand,
// three-from-board rule: the best five-card hand over all board triples.
func refValue(t *testing.T, c ConcreteCouplet, board []deck.Card) int16 {
	t.Helper()
	require.Len(t, board, 5)
	best := int16(-1 << 14)
	for i := 0; i < len(board); i++ {
		for j := i + 1; j < len(board); j++ {
			for k := j + 1; k < len(board); k++ {
				hand := [5]poker.Card{
					refCard(t, c.A), refCard(t, c.B),
					refCard(t, board[i]), refCard(t, board[j]), refCard(t, board[k]),
				}
				if v := poker.Eval5(&hand); v > best {
					best = v
				}
			}
		}
	}
	return best
}

func TestLadderOrderMatchesReferenceEvaluator(t *testing.T) {
	t.Parallel()

	for _, s := range scenarioBoards {
		board := deck.MustParseCards(s)
		concrete, err := RankLadder(DefaultRules, board)
		require.NoError(t, err)

		// Every couplet in a level must beat every couplet in all weaker
		// levels; checking adjacent level extremes covers the whole chain.
		prevMin := int16(1<<15 - 1)
		for i, level := range concrete {
			levelMin, levelMax := int16(1<<15-1), int16(-1<<14)
			for _, c := range level {
				v := refValue(t, c, board)
				if v < levelMin {
					levelMin = v
				}
				if v > levelMax {
					levelMax = v
				}
			}
			require.Less(t, levelMax, prevMin,
				"level %d on board %s is not strictly weaker than the level above", i, s)
			prevMin = levelMin
		}
	}
}
