package deck

import "fmt"

// Suit represents a card suit. The numeric order doubles as the suit
// "highness" used when flush logic breaks ties on oversized boards:
// hearts outrank spades, spades outrank diamonds, diamonds outrank clubs.
type Suit int

const (
	Clubs Suit = iota
	Diamonds
	Spades
	Hearts
)

// String returns the one-letter suit notation used in card strings ("Ah").
func (s Suit) String() string {
	switch s {
	case Clubs:
		return "c"
	case Diamonds:
		return "d"
	case Spades:
		return "s"
	case Hearts:
		return "h"
	default:
		return "?"
	}
}

// Glyph returns the unicode symbol for the suit.
func (s Suit) Glyph() string {
	switch s {
	case Clubs:
		return "♣"
	case Diamonds:
		return "♦"
	case Spades:
		return "♠"
	case Hearts:
		return "♥"
	default:
		return "?"
	}
}

// IsRed returns true if the suit is red (Hearts or Diamonds)
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

// Rank represents a card rank, zero-based so that Two=0 and Ace=12.
type Rank int

const (
	Two Rank = iota
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// String returns the string representation of a rank
func (r Rank) String() string {
	switch {
	case r == Ace:
		return "A"
	case r == King:
		return "K"
	case r == Queen:
		return "Q"
	case r == Jack:
		return "J"
	case r == Ten:
		return "T"
	case r >= Two && r <= Nine:
		return fmt.Sprintf("%d", int(r)+2)
	default:
		return "?"
	}
}

// Card represents a concrete playing card. Wildcard patterns live in the
// ladder package; a Card is always a real, dealable card.
type Card struct {
	Rank Rank
	Suit Suit
}

// NewCard creates a new card
func NewCard(rank Rank, suit Suit) Card {
	return Card{Rank: rank, Suit: suit}
}

// String returns the two-letter notation for the card (e.g. "Ah")
func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}

// IsRed returns true if the card is red
func (c Card) IsRed() bool {
	return c.Suit.IsRed()
}
