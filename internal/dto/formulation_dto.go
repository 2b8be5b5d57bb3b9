package dto

type SearchRequest struct {
	Category string `query:"category" validate:"omitempty,oneof=Kashaya Ghrita"`
	Field    string `query:"field" validate:"omitempty,max=32"`
	Query    string `query:"q" validate:"max=256"`
}

// IngredientLine is one display line of the ingredients block. When the
// source line has a colon, Label holds the text before the first colon and
// Text the remainder.
type IngredientLine struct {
	Label    string `json:"label,omitempty"`
	Text     string `json:"text"`
	HasLabel bool   `json:"has_label"`
}

type CardResponse struct {
	Id            int64            `json:"id"`
	Category      string           `json:"category"`
	Name          string           `json:"name"`
	EntryNumber   int              `json:"entry_number"`
	SanskritVerse string           `json:"sanskrit_verse,omitempty"`
	Ingredients   []IngredientLine `json:"ingredients"`
	Procedure     []string         `json:"procedure"`
	Indications   string           `json:"indications,omitempty"`
	Notes         string           `json:"notes,omitempty"`
}

type SearchResponse struct {
	Category string          `json:"category"`
	Field    string          `json:"field"`
	Query    string          `json:"query"`
	Count    int             `json:"count"`
	Loading  bool            `json:"loading"`
	Results  []*CardResponse `json:"results"`
}

type CategoryResponse struct {
	Id          string `json:"id"`
	Label       string `json:"label"`
	Description string `json:"description"`
}

type FieldScopeResponse struct {
	Id    string   `json:"id"`
	Label string   `json:"label"`
	Keys  []string `json:"keys"`
}

type StatusResponse struct {
	Loading bool   `json:"loading"`
	Source  string `json:"source,omitempty"`
	Total   int    `json:"total"`
}

type OptionResponse struct {
	Id     string `json:"id"`
	Label  string `json:"label"`
	Active bool   `json:"active"`
}

// ViewResponse is everything a viewer needs to draw one frame.
type ViewResponse struct {
	SessionId    string           `json:"session_id,omitempty"`
	Category     string           `json:"category"`
	Subtitle     string           `json:"subtitle"`
	Field        string           `json:"field"`
	Placeholder  string           `json:"placeholder"`
	Query        string           `json:"query"`
	Loading      bool             `json:"loading"`
	Count        int              `json:"count"`
	CountLine    string           `json:"count_line"`
	Categories   []OptionResponse `json:"categories"`
	Fields       []OptionResponse `json:"fields"`
	Cards        []*CardResponse  `json:"cards"`
	EmptyMessage string           `json:"empty_message,omitempty"`
	EmptyHint    string           `json:"empty_hint,omitempty"`
}

// ViewerCommand is a state transition sent by a live viewer.
type ViewerCommand struct {
	Type  string `json:"type" validate:"required,oneof=set_query set_category set_field refresh"`
	Value string `json:"value" validate:"max=256"`
}

type ViewerMessage struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}
