package specification

import (
	"sahasrayogam-be/internal/entity"

	"gorm.io/gorm"
)

// ByCategory filters formulations of one category
type ByCategory struct {
	Category entity.Category
}

func (s ByCategory) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("category = ?", string(s.Category))
}

// InSourceOrder keeps rows in the order of their ids, which is the order the
// source text lists them in.
func InSourceOrder() Specification {
	return OrderBy{Field: "id"}
}
