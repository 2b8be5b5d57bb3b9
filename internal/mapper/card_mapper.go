package mapper

import (
	"strings"

	"sahasrayogam-be/internal/dto"
	"sahasrayogam-be/internal/entity"
)

// CardMapper turns records into display cards.
type CardMapper struct{}

func NewCardMapper() *CardMapper {
	return &CardMapper{}
}

func (m *CardMapper) ToCard(f *entity.Formulation) *dto.CardResponse {
	if f == nil {
		return nil
	}
	return &dto.CardResponse{
		Id:            f.Id,
		Category:      string(f.Category),
		Name:          f.Name,
		EntryNumber:   f.EntryNumber,
		SanskritVerse: f.SanskritVerse,
		Ingredients:   IngredientLines(f.Ingredients),
		Procedure:     SplitLines(f.Procedure),
		Indications:   f.IndicationsText(),
		Notes:         f.Notes,
	}
}

func (m *CardMapper) ToCards(formulations []*entity.Formulation) []*dto.CardResponse {
	cards := make([]*dto.CardResponse, len(formulations))
	for i, f := range formulations {
		cards[i] = m.ToCard(f)
	}
	return cards
}

// SplitLines splits a newline-delimited block into display lines. An empty
// block has no lines.
func SplitLines(block string) []string {
	if block == "" {
		return []string{}
	}
	lines := strings.Split(block, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// IngredientLines splits the ingredients block and separates each line at
// its first colon.
func IngredientLines(block string) []dto.IngredientLine {
	lines := SplitLines(block)
	out := make([]dto.IngredientLine, len(lines))
	for i, line := range lines {
		label, rest, found := strings.Cut(line, ":")
		if !found {
			out[i] = dto.IngredientLine{Text: line}
			continue
		}
		out[i] = dto.IngredientLine{Label: label, Text: rest, HasLabel: true}
	}
	return out
}
