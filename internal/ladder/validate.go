package ladder

import (
	"fmt"

	"github.com/lox/omaha-odds/internal/deck"
)

// ValidateBoard checks that every board card exists in the configured deck
// and that no physical card appears twice. Ladder construction on a
// malformed board has undefined combinatorial behavior, so this fails fast.
func ValidateBoard(r Rules, board []deck.Card) error {
	if len(board) == 0 {
		return fmt.Errorf("board is empty")
	}
	return validateCards(r, board, "board")
}

// ValidateHolding checks the holding's size, card validity and uniqueness,
// and that it shares no card with the board.
func ValidateHolding(r Rules, holding, board []deck.Card) error {
	if len(holding) != r.HoldingSize {
		return fmt.Errorf("holding must contain exactly %d cards, got %d", r.HoldingSize, len(holding))
	}
	if err := validateCards(r, holding, "holding"); err != nil {
		return err
	}
	for _, c := range holding {
		if deck.Contains(board, c) {
			return fmt.Errorf("card %s appears in both holding and board", c)
		}
	}
	return nil
}

func validateCards(r Rules, cards []deck.Card, label string) error {
	seen := make(map[deck.Card]bool, len(cards))
	for _, c := range cards {
		if int(c.Rank) < 0 || int(c.Rank) >= r.NumRanks || int(c.Suit) < 0 || int(c.Suit) >= r.NumSuits {
			return fmt.Errorf("%s card %s is outside the %d-rank %d-suit deck", label, c, r.NumRanks, r.NumSuits)
		}
		if seen[c] {
			return fmt.Errorf("duplicate card %s in %s", c, label)
		}
		seen[c] = true
	}
	return nil
}
