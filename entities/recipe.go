package entities

import (
	"time"
)

const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

type Recipe struct {
	ID              uint       `gorm:"primaryKey" json:"id"`
	Title           string     `gorm:"size:255" json:"title"`
	Slug            string     `gorm:"size:255;uniqueIndex" json:"slug"`
	MetaTitle       string     `gorm:"size:80" json:"meta_title,omitempty"`
	MetaDescription string     `gorm:"size:160" json:"meta_description,omitempty"`
	Description     string     `gorm:"type:text" json:"description"`
	DescriptionHTML string     `gorm:"type:text" json:"description_html"`
	PreparationTime int        `json:"preparation_time"` // minutes
	CookingTime     int        `json:"cooking_time"`     // minutes
	Servings        int        `gorm:"default:1" json:"servings"`
	Difficulty      string     `gorm:"size:20" json:"difficulty"` // "easy", "medium", "hard"
	ImagePath       string     `gorm:"size:512" json:"image_path,omitempty"`
	VideoURL        string     `gorm:"size:512" json:"video_url,omitempty"`
	PublishedAt     *time.Time `gorm:"index" json:"published_at,omitempty"`

	Categories     []RecipeCategory `gorm:"many2many:recipe_category_links" json:"categories,omitempty"`
	Tags           []Tag            `gorm:"many2many:recipe_tag_links" json:"tags,omitempty"`
	Cuisines       []Cuisine        `gorm:"many2many:recipe_cuisine_links" json:"cuisines,omitempty"`
	MealTypes      []MealType       `gorm:"many2many:recipe_meal_type_links" json:"meal_types,omitempty"`
	CookingMethods []CookingMethod  `gorm:"many2many:recipe_cooking_method_links" json:"cooking_methods,omitempty"`

	Ingredients []RecipeIngredient `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"ingredients,omitempty"`
	Steps       []RecipeStep       `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"steps,omitempty"`
	Timestamp
}

// IsPublished reports whether the recipe is visible to the search index.
func (r *Recipe) IsPublished() bool {
	return r.PublishedAt != nil
}

type RecipeIngredient struct {
	ID           uint    `gorm:"primaryKey" json:"id"`
	RecipeID     uint    `gorm:"uniqueIndex:idx_recipe_ingredients_pair" json:"recipe_id"`
	IngredientID uint    `gorm:"uniqueIndex:idx_recipe_ingredients_pair" json:"ingredient_id"`
	Amount       float64 `json:"amount"`
	UnitID       uint    `json:"unit_id"`
	Note         string  `gorm:"size:255" json:"note,omitempty"`

	Ingredient *Ingredient      `gorm:"foreignKey:IngredientID" json:"ingredient,omitempty"`
	Unit       *MeasurementUnit `gorm:"foreignKey:UnitID" json:"unit,omitempty"`
	Timestamp
}

type RecipeStep struct {
	ID              uint   `gorm:"primaryKey" json:"id"`
	RecipeID        uint   `gorm:"uniqueIndex:idx_recipe_steps_order" json:"recipe_id"`
	Order           int    `gorm:"column:step_order;uniqueIndex:idx_recipe_steps_order" json:"order"`
	Title           string `gorm:"size:255" json:"title,omitempty"`
	Description     string `gorm:"type:text" json:"description"`
	DescriptionHTML string `gorm:"type:text" json:"description_html,omitempty"`
	ImagePath       string `gorm:"size:512" json:"image_path,omitempty"`
	Duration        *int   `json:"duration,omitempty"` // minutes
	VideoURL        string `gorm:"size:512" json:"video_url,omitempty"`

	Timestamp
}
