package constant

import "sahasrayogam-be/internal/entity"

// FieldScope names a set of record fields a query is matched against.
type FieldScope struct {
	Id    string
	Label string
	Keys  []string
}

const (
	FieldScopeAll           = "all"
	FieldScopeName          = "name"
	FieldScopeIngredients   = "ingredients"
	FieldScopeIndications   = "indications"
	FieldScopeSanskritVerse = "sanskrit_verse"
	FieldScopeProcedure     = "procedure"
)

// FieldScopes in selector order. The first entry is the fallback for
// unknown ids.
var FieldScopes = []FieldScope{
	{Id: FieldScopeAll, Label: "All Fields", Keys: []string{
		entity.FieldName,
		entity.FieldIngredients,
		entity.FieldIndications,
		entity.FieldSanskritVerse,
		entity.FieldProcedure,
	}},
	{Id: FieldScopeName, Label: "Name", Keys: []string{entity.FieldName}},
	{Id: FieldScopeIngredients, Label: "Ingredients", Keys: []string{entity.FieldIngredients}},
	{Id: FieldScopeIndications, Label: "Indications", Keys: []string{entity.FieldIndications}},
	{Id: FieldScopeSanskritVerse, Label: "Sanskrit", Keys: []string{entity.FieldSanskritVerse}},
	{Id: FieldScopeProcedure, Label: "Procedure", Keys: []string{entity.FieldProcedure}},
}

// LookupFieldScope resolves a scope id, falling back to "all".
func LookupFieldScope(id string) FieldScope {
	for _, scope := range FieldScopes {
		if scope.Id == id {
			return scope
		}
	}
	return FieldScopes[0]
}

// CategoryInfo is the display metadata of a category.
type CategoryInfo struct {
	Id          entity.Category
	Label       string
	Description string
}

var CategoryInfos = []CategoryInfo{
	{Id: entity.CategoryKashaya, Label: "Kashaya", Description: "Decoction"},
	{Id: entity.CategoryGhrita, Label: "Ghrita", Description: "Ghee"},
}

const (
	DefaultCategory = entity.CategoryKashaya

	SourceRemote   = "remote"
	SourceFallback = "fallback"

	LoadingMessage    = "Loading formulations..."
	EmptyStateFormat  = `No recipes found matching "%s"`
	EmptyStateHint    = `Try searching for ingredients like "Guduchi" or indications like "Fever"`
	ResultCountFormat = "Showing %d formulations"
	PlaceholderFormat = "Search in %s..."
	SubtitleFormat    = "%s Prakarana"

	EventTypeFormulationsLoaded = "FORMULATIONS_LOADED"
)

const (
	SessionCookieName = "formulary_session"
	SessionQueryParam = "session"
)
