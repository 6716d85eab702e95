package deck

import (
	rand "math/rand/v2"
)

// All enumerates every card of a deck with the given dimensions, highest
// rank first and within a rank highest suit first, so that stronger cards
// are assessed before weaker ones wherever enumeration order matters.
func All(numRanks, numSuits int) []Card {
	cards := make([]Card, 0, numRanks*numSuits)
	for rank := numRanks - 1; rank >= 0; rank-- {
		for suit := numSuits - 1; suit >= 0; suit-- {
			cards = append(cards, Card{Rank: Rank(rank), Suit: Suit(suit)})
		}
	}
	return cards
}

// Remaining returns every card of the deck not present in excluded,
// preserving the descending enumeration order of All.
func Remaining(numRanks, numSuits int, excluded []Card) []Card {
	var cards []Card
	for _, c := range All(numRanks, numSuits) {
		if !Contains(excluded, c) {
			cards = append(cards, c)
		}
	}
	return cards
}

// Contains reports whether cards holds an exact copy of c.
func Contains(cards []Card, c Card) bool {
	for _, other := range cards {
		if other == c {
			return true
		}
	}
	return false
}

// Deck deals random cards with an explicit RNG for deterministic runs.
type Deck struct {
	cards []Card
	next  int
	rng   *rand.Rand
}

// New creates a new shuffled deck with explicit RNG
func New(numRanks, numSuits int, rng *rand.Rand) *Deck {
	d := &Deck{
		cards: All(numRanks, numSuits),
		rng:   rng,
	}
	d.Shuffle()
	return d
}

// Shuffle reshuffles the deck using Fisher-Yates and rewinds it.
func (d *Deck) Shuffle() {
	d.next = 0
	for i := len(d.cards) - 1; i > 0; i-- {
		j := d.rng.IntN(i + 1)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// Deal deals n cards from the deck, or nil if not enough remain.
func (d *Deck) Deal(n int) []Card {
	if d.next+n > len(d.cards) {
		return nil
	}
	cards := d.cards[d.next : d.next+n]
	d.next += n
	return cards
}

// DealAvoiding reshuffles and deals n cards, skipping any card in avoid.
// This is the deal_random(n, excluding) surface consumed by trial drivers.
// Returns nil if the deck cannot cover the request.
func (d *Deck) DealAvoiding(n int, avoid []Card) []Card {
	d.Shuffle()
	cards := make([]Card, 0, n)
	for _, c := range d.cards {
		if Contains(avoid, c) {
			continue
		}
		cards = append(cards, c)
		if len(cards) == n {
			return cards
		}
	}
	return nil
}

// CardsRemaining returns the number of cards left in the deck
func (d *Deck) CardsRemaining() int {
	return len(d.cards) - d.next
}
