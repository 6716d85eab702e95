// Package display renders cards, couplets and ladders for the terminal.
// Suits are color coded the same way everywhere: hearts red, diamonds blue,
// clubs green, spades uncolored.
package display

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/lox/omaha-odds/internal/deck"
	"github.com/lox/omaha-odds/internal/equity"
	"github.com/lox/omaha-odds/internal/ladder"
)

// Styles holds the lipgloss styles used by a Renderer.
type Styles struct {
	Hearts   lipgloss.Style
	Diamonds lipgloss.Style
	Clubs    lipgloss.Style
	Spades   lipgloss.Style
	Header   lipgloss.Style
	Percent  lipgloss.Style
	Muted    lipgloss.Style
}

// DefaultStyles returns the colored style set.
func DefaultStyles() Styles {
	return Styles{
		Hearts:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		Diamonds: lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		Clubs:    lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		Spades:   lipgloss.NewStyle(),
		Header:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")),
		Percent:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11")),
		Muted:    lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

// PlainStyles returns an uncolored style set for dumb terminals and tests.
func PlainStyles() Styles {
	plain := lipgloss.NewStyle()
	return Styles{
		Hearts: plain, Diamonds: plain, Clubs: plain, Spades: plain,
		Header: plain, Percent: plain, Muted: plain,
	}
}

// Renderer formats cards and evaluation results.
type Renderer struct {
	styles Styles
}

// New creates a renderer, falling back to plain output when the terminal
// reports no color support.
func New() *Renderer {
	if termenv.ColorProfile() == termenv.Ascii {
		return NewPlain()
	}
	return &Renderer{styles: DefaultStyles()}
}

// NewPlain creates a renderer that never emits color escapes.
func NewPlain() *Renderer {
	return &Renderer{styles: PlainStyles()}
}

func (r *Renderer) suitStyle(s deck.Suit) lipgloss.Style {
	switch s {
	case deck.Hearts:
		return r.styles.Hearts
	case deck.Diamonds:
		return r.styles.Diamonds
	case deck.Clubs:
		return r.styles.Clubs
	default:
		return r.styles.Spades
	}
}

// Card renders one card as rank plus suit glyph, e.g. "A♥".
func (r *Renderer) Card(c deck.Card) string {
	return r.suitStyle(c.Suit).Render(c.Rank.String() + c.Suit.Glyph())
}

// Cards renders a sequence of cards separated by spaces.
func (r *Renderer) Cards(cards []deck.Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = r.Card(c)
	}
	return strings.Join(parts, " ")
}

// Couplet renders the two cards of a concrete couplet.
func (r *Renderer) Couplet(c ladder.ConcreteCouplet) string {
	return r.Card(c.A) + " " + r.Card(c.B)
}

// Ladder writes the concrete ladder one numbered level per line, strongest
// first. maxLevels truncates the listing; zero or negative means all levels.
func (r *Renderer) Ladder(w io.Writer, concrete ladder.ConcreteLadder, maxLevels int) error {
	shown := len(concrete)
	if maxLevels > 0 && maxLevels < shown {
		shown = maxLevels
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\t%s\t%s\n",
		r.styles.Header.Render("level"),
		r.styles.Header.Render("couplets"),
		r.styles.Header.Render("members"))
	for i := 0; i < shown; i++ {
		level := concrete[i]
		members := make([]string, len(level))
		for j, c := range level {
			members[j] = r.Couplet(c)
		}
		fmt.Fprintf(tw, "%d\t%d\t%s\n", i+1, len(level), strings.Join(members, "  "))
	}
	if shown < len(concrete) {
		fmt.Fprintf(tw, "%s\n", r.styles.Muted.Render(
			fmt.Sprintf("... %d more levels", len(concrete)-shown)))
	}
	return tw.Flush()
}

// Result writes a holding's evaluation breakdown.
func (r *Renderer) Result(w io.Writer, holding, board []deck.Card, res equity.Result) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\t%s\n", r.styles.Header.Render("holding"), r.Cards(holding))
	fmt.Fprintf(tw, "%s\t%s\n", r.styles.Header.Render("board"), r.Cards(board))
	fmt.Fprintf(tw, "%s\t%s\n", r.styles.Header.Render("equity"),
		r.styles.Percent.Render(fmt.Sprintf("%.2f%%", res.Utility*100)))
	fmt.Fprintf(tw, "%s\t%d\n", r.styles.Header.Render("level"), res.LevelIndex+1)
	fmt.Fprintf(tw, "%s\t%s\n", r.styles.Header.Render("field"),
		r.styles.Muted.Render(fmt.Sprintf("%d better / %d equal / %d worse",
			res.Better, res.Equipotent, res.Worse)))
	return tw.Flush()
}
