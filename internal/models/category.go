package models

// CategoryModel represents one of the fixed editorial categories.
type CategoryModel struct {
	Base
	Name   string `json:"name"    gorm:"uniqueIndex;not null"` // Korean display name
	NameEN string `json:"name_en"`
	Slug   string `json:"slug"    gorm:"uniqueIndex;not null"`

	Posts []PostModel `json:"posts,omitempty" gorm:"foreignKey:CategoryID"`
}

func (CategoryModel) TableName() string { return "categories" }
