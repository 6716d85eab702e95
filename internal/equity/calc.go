// Package equity computes a holding's expected pot share against a field
// of uniformly random opponent couplets, using the concrete strength
// ladder for the board and hypergeometric counting over the remaining
// couplets.
package equity

import (
	"fmt"
	"math/big"

	"github.com/lox/omaha-odds/internal/deck"
	"github.com/lox/omaha-odds/internal/ladder"
)

// Result breaks down a single equity evaluation.
type Result struct {
	// Utility is the expected pot fraction in [0,1].
	Utility float64
	// LevelIndex is the concrete-ladder index of the holding's strongest
	// two-card couplet (0 = strongest level on this board).
	LevelIndex int
	// Better, Equipotent and Worse count the concrete couplets compatible
	// with the holding in stronger levels, the holding's own level, and
	// weaker levels respectively.
	Better     int
	Equipotent int
	Worse      int
}

// Calculator evaluates holdings under a fixed set of game rules. It holds
// no mutable state; a single Calculator is safe for concurrent use.
type Calculator struct {
	rules ladder.Rules
}

// NewCalculator creates a calculator for the given rules.
func NewCalculator(rules ladder.Rules) *Calculator {
	return &Calculator{rules: rules}
}

// Rules returns the calculator's fixed game parameters.
func (c *Calculator) Rules() ladder.Rules {
	return c.rules
}

// Utility returns the expected fraction of the pot the holding wins on the
// board against NumPlayers-1 opponents holding random couplets.
func (c *Calculator) Utility(holding, board []deck.Card) (float64, error) {
	res, err := c.Evaluate(holding, board)
	if err != nil {
		return 0, err
	}
	return res.Utility, nil
}

// Evaluate builds the concrete ladder for the board, locates the holding's
// strongest couplet on it, and combines the win probability with the
// expected tie split.
func (c *Calculator) Evaluate(holding, board []deck.Card) (Result, error) {
	concrete, err := ladder.RankLadder(c.rules, board)
	if err != nil {
		return Result{}, err
	}
	if err := ladder.ValidateHolding(c.rules, holding, board); err != nil {
		return Result{}, err
	}
	return c.evaluateOn(concrete, holding, board)
}

// EvaluateOn evaluates a holding against a pre-built concrete ladder. The
// ladder must have been built for the same board; reusing one ladder across
// many holdings on a fixed board avoids rebuilding it per call.
func (c *Calculator) EvaluateOn(concrete ladder.ConcreteLadder, holding, board []deck.Card) (Result, error) {
	if err := ladder.ValidateHolding(c.rules, holding, board); err != nil {
		return Result{}, err
	}
	return c.evaluateOn(concrete, holding, board)
}

func (c *Calculator) evaluateOn(concrete ladder.ConcreteLadder, holding, board []deck.Card) (Result, error) {
	// The holding's strength is the strength of its best two-card subset,
	// not of the four cards as a whole.
	best := len(concrete)
	for i := 0; i < len(holding); i++ {
		for j := i + 1; j < len(holding); j++ {
			couplet := ladder.ConcreteCouplet{A: holding[i], B: holding[j]}
			idx := concrete.IndexOf(couplet)
			if idx < 0 {
				return Result{}, fmt.Errorf("couplet %v not present in ladder; holding/board mismatch", couplet)
			}
			if idx < best {
				best = idx
			}
		}
	}

	// Opponent couplets can never reuse one of our cards.
	better := 0
	for i := 0; i < best; i++ {
		better += countCompatible(concrete[i], holding)
	}
	equipotent := countCompatible(concrete[best], holding)
	worse := 0
	for i := best + 1; i < len(concrete); i++ {
		worse += countCompatible(concrete[i], holding)
	}

	opponents := c.rules.OpponentCouplets()
	utility := probBestHand(better, equipotent, worse, opponents) *
		expectedShareGivenBest(equipotent, worse, opponents)

	return Result{
		Utility:    utility,
		LevelIndex: best,
		Better:     better,
		Equipotent: equipotent,
		Worse:      worse,
	}, nil
}

func countCompatible(level ladder.ConcreteLevel, holding []deck.Card) int {
	n := 0
	for _, couplet := range level {
		if couplet.Compatible(holding) {
			n++
		}
	}
	return n
}

// probBestHand is the probability that none of the opponents' couplets
// land in a level stronger than the holding's, assuming the opponent
// couplets are drawn uniformly from the compatible remaining couplets.
func probBestHand(better, equipotent, worse, opponents int) float64 {
	return ratio(choose(equipotent+worse, opponents), choose(better+equipotent+worse, opponents))
}

// expectedShareGivenBest sums over the number k of opponent couplets tying
// at the holding's level: the probability of exactly k ties, weighted by
// the 1/(k+1) pot split among the winners.
func expectedShareGivenBest(equipotent, worse, opponents int) float64 {
	denom := choose(equipotent+worse, opponents)
	if denom.Sign() == 0 {
		// Fewer equipotent-or-worse couplets exist than the opponents
		// hold: the holding can never have the best hand. Defined as a
		// zero contribution, not an error.
		return 0
	}
	share := 0.0
	for k := 0; k <= min(equipotent, opponents); k++ {
		ways := new(big.Int).Mul(choose(equipotent, k), choose(worse, opponents-k))
		share += ratio(ways, denom) / float64(k+1)
	}
	return share
}

// choose is the domain-checked binomial coefficient: zero for any
// out-of-domain arguments instead of an error, so degenerate opponent
// counts collapse to zero probability.
func choose(n, k int) *big.Int {
	if n < 0 || k < 0 || k > n {
		return new(big.Int)
	}
	return new(big.Int).Binomial(int64(n), int64(k))
}

// ratio converts a quotient of big integers to float64, treating a zero
// denominator as zero.
func ratio(num, denom *big.Int) float64 {
	if denom.Sign() == 0 {
		return 0
	}
	q := new(big.Float).Quo(new(big.Float).SetInt(num), new(big.Float).SetInt(denom))
	f, _ := q.Float64()
	return f
}
