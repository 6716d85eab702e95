package ladder

import (
	"strings"

	"github.com/lox/omaha-odds/internal/deck"
)

// RankPattern matches either one concrete rank or any rank. The wildcard is
// a tagged state rather than a reserved rank value, so growing or shrinking
// the deck's rank count can never collide with it.
type RankPattern struct {
	any  bool
	rank deck.Rank
}

// AnyRank matches every rank.
func AnyRank() RankPattern { return RankPattern{any: true} }

// RankOf matches exactly the given rank.
func RankOf(r deck.Rank) RankPattern { return RankPattern{rank: r} }

// Matches reports whether the pattern accepts the rank.
func (p RankPattern) Matches(r deck.Rank) bool {
	return p.any || p.rank == r
}

func (p RankPattern) String() string {
	if p.any {
		return "x"
	}
	return p.rank.String()
}

// SuitPattern matches either one concrete suit or any suit.
type SuitPattern struct {
	any  bool
	suit deck.Suit
}

// AnySuit matches every suit.
func AnySuit() SuitPattern { return SuitPattern{any: true} }

// SuitOf matches exactly the given suit.
func SuitOf(s deck.Suit) SuitPattern { return SuitPattern{suit: s} }

// Matches reports whether the pattern accepts the suit.
func (p SuitPattern) Matches(s deck.Suit) bool {
	return p.any || p.suit == s
}

func (p SuitPattern) String() string {
	if p.any {
		return "x"
	}
	return p.suit.String()
}

// CardPattern is a wildcard-bearing card template. A pattern with both rank
// and suit wildcards matches every card; it backs the terminal catch-all
// level that guarantees the ladder is exhaustive.
type CardPattern struct {
	Rank RankPattern
	Suit SuitPattern
}

// Pattern builds a card pattern from its two parts.
func Pattern(rank RankPattern, suit SuitPattern) CardPattern {
	return CardPattern{Rank: rank, Suit: suit}
}

// ExactCard is a pattern matching only the given concrete card.
func ExactCard(c deck.Card) CardPattern {
	return CardPattern{Rank: RankOf(c.Rank), Suit: SuitOf(c.Suit)}
}

// Matches reports whether the concrete card fulfills the pattern.
func (p CardPattern) Matches(c deck.Card) bool {
	return p.Rank.Matches(c.Rank) && p.Suit.Matches(c.Suit)
}

func (p CardPattern) String() string {
	return p.Rank.String() + p.Suit.String()
}

// Couplet is an unordered pair of card patterns: two cards that form a
// subset of a player's holding, possibly with wildcards. Order between the
// two members never matters.
type Couplet struct {
	A, B CardPattern
}

// PairCouplet is a couplet whose cards share the given rank in any suits,
// i.e. a pocket pair of that rank.
func PairCouplet(rank deck.Rank) Couplet {
	return Couplet{
		A: Pattern(RankOf(rank), AnySuit()),
		B: Pattern(RankOf(rank), AnySuit()),
	}
}

// CatchAll matches every couplet. It terminates the ladder so that every
// remaining couplet is guaranteed a level.
func CatchAll() Couplet {
	return Couplet{
		A: Pattern(AnyRank(), AnySuit()),
		B: Pattern(AnyRank(), AnySuit()),
	}
}

// isCopy reports whether the pattern denotes exactly the given physical
// card. Patterns with a wildcard part denote no single card and are never
// copies.
func (p CardPattern) isCopy(c deck.Card) bool {
	return !p.Rank.any && !p.Suit.any && p.Rank.rank == c.Rank && p.Suit.suit == c.Suit
}

// Compatible reports whether neither member pattern denotes a card in
// forbidden. Used to discard straight-flush patterns that would reuse a
// board card.
func (c Couplet) Compatible(forbidden []deck.Card) bool {
	for _, f := range forbidden {
		if c.A.isCopy(f) || c.B.isCopy(f) {
			return false
		}
	}
	return true
}

func (c Couplet) String() string {
	return c.A.String() + " " + c.B.String()
}

// ConcreteCouplet is an unordered pair of real cards.
type ConcreteCouplet struct {
	A, B deck.Card
}

// Fulfills reports whether the couplet's cards match the target pattern in
// either pairing. A couplet is a set of two cards, not a sequence, so both
// assignments have to be tried.
func (c ConcreteCouplet) Fulfills(target Couplet) bool {
	return (target.A.Matches(c.A) && target.B.Matches(c.B)) ||
		(target.A.Matches(c.B) && target.B.Matches(c.A))
}

// Compatible reports whether neither member card is an exact copy of any
// card in forbidden. It enforces the no-duplicate-card constraint between a
// holding couplet and the board (or another holding).
func (c ConcreteCouplet) Compatible(forbidden []deck.Card) bool {
	return !deck.Contains(forbidden, c.A) && !deck.Contains(forbidden, c.B)
}

// Cards returns the couplet's two member cards.
func (c ConcreteCouplet) Cards() []deck.Card {
	return []deck.Card{c.A, c.B}
}

func (c ConcreteCouplet) String() string {
	return c.A.String() + " " + c.B.String()
}

// Level is an ordered list of generic couplets that produce hands of
// identical value given the board.
type Level []Couplet

func (l Level) String() string {
	parts := make([]string, len(l))
	for i, c := range l {
		parts[i] = c.String()
	}
	return strings.Join(parts, "  ")
}

// Ladder is the ordered sequence of generic levels, strongest first.
type Ladder []Level

// ConcreteLevel lists the actual remaining couplets belonging to one level.
type ConcreteLevel []ConcreteCouplet

// ConcreteLadder is the resolved ladder: mutually exclusive, exhaustive over
// every couplet drawable from the remaining deck, strongest level first.
type ConcreteLadder []ConcreteLevel

// CoupletCount returns the total number of concrete couplets in the ladder.
func (l ConcreteLadder) CoupletCount() int {
	n := 0
	for _, level := range l {
		n += len(level)
	}
	return n
}
