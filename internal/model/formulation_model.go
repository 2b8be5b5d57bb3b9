package model

// Formulation mirrors one row of the hosted "formulations" table. Optional
// text columns are nullable there, so they come back as pointers.
type Formulation struct {
	Id            int64   `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Category      string  `gorm:"type:varchar(64);not null;index" json:"category"`
	Name          string  `gorm:"type:varchar(255);not null" json:"name"`
	EntryNumber   int     `gorm:"not null" json:"entry_number"`
	SanskritVerse *string `gorm:"type:text" json:"sanskrit_verse"`
	Ingredients   *string `gorm:"type:text" json:"ingredients"`
	Procedure     *string `gorm:"type:text" json:"procedure"`
	Indications   *string `gorm:"type:text" json:"indications"`
	Notes         *string `gorm:"type:text" json:"notes"`
}

func (Formulation) TableName() string {
	return "formulations"
}
