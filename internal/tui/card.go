package tui

import (
	"fmt"
	"strings"

	"sahasrayogam-be/internal/dto"

	"github.com/charmbracelet/lipgloss"
)

// RenderCard draws one formulation card at the given outer width.
func RenderCard(theme Theme, card *dto.CardResponse, width int) string {
	var b strings.Builder

	b.WriteString(theme.CardName.Render(card.Name))
	b.WriteString("  ")
	b.WriteString(theme.EntryNumber.Render(fmt.Sprintf("#%d", card.EntryNumber)))

	if card.SanskritVerse != "" {
		b.WriteString("\n\n")
		b.WriteString(theme.Verse.Render(card.SanskritVerse))
	}

	b.WriteString("\n\n")
	b.WriteString(theme.Heading.Render("Ingredients"))
	for _, line := range card.Ingredients {
		b.WriteString("\n• ")
		if line.HasLabel {
			b.WriteString(theme.Label.Render(line.Label + ":"))
		}
		b.WriteString(line.Text)
	}

	b.WriteString("\n\n")
	b.WriteString(theme.Heading.Render("Procedure"))
	for i, line := range card.Procedure {
		fmt.Fprintf(&b, "\n%d. %s", i+1, line)
	}

	if card.Indications != "" {
		b.WriteString("\n\n")
		b.WriteString(theme.Heading.Render("Indications"))
		b.WriteString("\n")
		b.WriteString(card.Indications)
	}
	if card.Notes != "" {
		b.WriteString("\n\n")
		b.WriteString(theme.Heading.Render("Notes"))
		b.WriteString("\n")
		b.WriteString(card.Notes)
	}

	style := theme.Card
	if width > 0 {
		// Width excludes the border.
		style = style.Width(max(width-2, 10))
	}
	return style.Render(b.String())
}

// RenderResults draws the cards of a view, or its empty state.
func RenderResults(theme Theme, view dto.ViewResponse, width int) string {
	if view.Loading {
		return ""
	}
	if len(view.Cards) == 0 {
		return theme.Empty.Render(view.EmptyMessage + "\n" + view.EmptyHint)
	}
	cards := make([]string, len(view.Cards))
	for i, card := range view.Cards {
		cards[i] = RenderCard(theme, card, width)
	}
	return lipgloss.JoinVertical(lipgloss.Left, cards...)
}
