package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIndicationsInterpretations(t *testing.T) {
	f := Formulation{Indications: " Fever, ,Cough ,  Skin disease,"}

	assert.Equal(t, []string{"Fever", "Cough", "Skin disease"}, f.IndicationsTags())
	assert.Equal(t, " Fever, ,Cough ,  Skin disease,", f.IndicationsText())
	assert.Equal(t, "Fever, Cough, Skin disease", f.Field(FieldIndications))
}

func TestIndicationsTagsEmpty(t *testing.T) {
	f := Formulation{}
	assert.Nil(t, f.IndicationsTags())
	assert.Equal(t, "", f.Field(FieldIndications))
}

func TestFieldKeys(t *testing.T) {
	f := Formulation{
		Name:          "Indukanta Ghrita",
		Ingredients:   "Putika: 1 pala",
		SanskritVerse: "verse",
		Procedure:     "Cook with ghee",
	}

	assert.Equal(t, "Indukanta Ghrita", f.Field(FieldName))
	assert.Equal(t, "Putika: 1 pala", f.Field(FieldIngredients))
	assert.Equal(t, "verse", f.Field(FieldSanskritVerse))
	assert.Equal(t, "Cook with ghee", f.Field(FieldProcedure))
	assert.Equal(t, "", f.Field("notes"))
}

func TestCategoryValid(t *testing.T) {
	assert.True(t, CategoryKashaya.Valid())
	assert.True(t, CategoryGhrita.Valid())
	assert.False(t, Category("Churna").Valid())
	assert.False(t, Category("kashaya").Valid())
}
