package entity

import "strings"

type Category string

const (
	CategoryKashaya Category = "Kashaya"
	CategoryGhrita  Category = "Ghrita"
)

// Categories lists the partitions in display order.
var Categories = []Category{CategoryKashaya, CategoryGhrita}

func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Searchable field keys.
const (
	FieldName          = "name"
	FieldIngredients   = "ingredients"
	FieldIndications   = "indications"
	FieldSanskritVerse = "sanskrit_verse"
	FieldProcedure     = "procedure"
)

// Formulation is one recipe entry of the formulary. Values are never
// modified after load; a reload replaces the whole collection.
type Formulation struct {
	Id            int64
	Category      Category
	Name          string
	EntryNumber   int
	SanskritVerse string
	Ingredients   string
	Procedure     string
	Indications   string
	Notes         string

	// MissingIngredients and MissingProcedure record that the source row
	// carried no value, as opposed to an empty string.
	MissingIngredients bool
	MissingProcedure   bool
}

// IndicationsTags is the search interpretation of the indications column:
// comma separated, trimmed, empty entries dropped.
func (f *Formulation) IndicationsTags() []string {
	if f.Indications == "" {
		return nil
	}
	parts := strings.Split(f.Indications, ",")
	tags := make([]string, 0, len(parts))
	for _, part := range parts {
		if tag := strings.TrimSpace(part); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

// IndicationsText is the display interpretation: the raw block, untouched.
func (f *Formulation) IndicationsText() string {
	return f.Indications
}

// Field returns the text searched for a field key. Unknown keys yield "".
func (f *Formulation) Field(key string) string {
	switch key {
	case FieldName:
		return f.Name
	case FieldIngredients:
		return f.Ingredients
	case FieldIndications:
		return strings.Join(f.IndicationsTags(), ", ")
	case FieldSanskritVerse:
		return f.SanskritVerse
	case FieldProcedure:
		return f.Procedure
	}
	return ""
}
