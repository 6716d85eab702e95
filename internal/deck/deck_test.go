package deck

import (
	"testing"

	"github.com/lox/omaha-odds/internal/randutil"
)

func TestAllDescendingOrder(t *testing.T) {
	t.Parallel()
	cards := All(13, 4)
	if len(cards) != 52 {
		t.Fatalf("expected 52 cards, got %d", len(cards))
	}
	if cards[0] != (Card{Rank: Ace, Suit: Hearts}) {
		t.Errorf("first card = %v, want Ah", cards[0])
	}
	if cards[51] != (Card{Rank: Two, Suit: Clubs}) {
		t.Errorf("last card = %v, want 2c", cards[51])
	}

	seen := make(map[Card]bool)
	for _, c := range cards {
		if seen[c] {
			t.Fatalf("duplicate card %v", c)
		}
		seen[c] = true
	}
}

func TestRemaining(t *testing.T) {
	t.Parallel()
	board := MustParseCards("AhAsKd7c2h")
	rest := Remaining(13, 4, board)
	if len(rest) != 47 {
		t.Fatalf("expected 47 remaining cards, got %d", len(rest))
	}
	for _, c := range board {
		if Contains(rest, c) {
			t.Errorf("board card %v still in remaining deck", c)
		}
	}
}

func TestDealAvoiding(t *testing.T) {
	t.Parallel()
	holding := MustParseCards("AhKcQcTh")
	d := New(13, 4, randutil.New(42))

	for trial := 0; trial < 20; trial++ {
		board := d.DealAvoiding(5, holding)
		if len(board) != 5 {
			t.Fatalf("expected 5 cards, got %d", len(board))
		}
		seen := make(map[Card]bool)
		for _, c := range board {
			if Contains(holding, c) {
				t.Errorf("dealt card %v overlaps holding", c)
			}
			if seen[c] {
				t.Errorf("dealt duplicate card %v", c)
			}
			seen[c] = true
		}
	}
}

func TestDealExhaustion(t *testing.T) {
	t.Parallel()
	d := New(5, 2, randutil.New(1))
	if got := d.Deal(10); len(got) != 10 {
		t.Fatalf("expected full deck of 10, got %d", len(got))
	}
	if got := d.Deal(1); got != nil {
		t.Fatalf("expected nil on exhausted deck, got %v", got)
	}
}
