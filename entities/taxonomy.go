package entities

const (
	UnitTypeWeight = "weight"
	UnitTypeVolume = "volume"
	UnitTypeCount  = "count"
)

type IngredientCategory struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"size:255" json:"name"`
	Slug     string `gorm:"size:255;uniqueIndex" json:"slug"`
	ParentID *uint  `json:"parent_id,omitempty"`

	Parent   *IngredientCategory  `gorm:"foreignKey:ParentID" json:"-"`
	Children []IngredientCategory `gorm:"foreignKey:ParentID" json:"children,omitempty"`
	Timestamp
}

type RecipeCategory struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"size:255" json:"name"`
	Slug     string `gorm:"size:255;uniqueIndex" json:"slug"`
	ParentID *uint  `json:"parent_id,omitempty"`

	Parent   *RecipeCategory  `gorm:"foreignKey:ParentID" json:"-"`
	Children []RecipeCategory `gorm:"foreignKey:ParentID" json:"children,omitempty"`
	Timestamp
}

type Ingredient struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	Name       string `gorm:"size:255" json:"name"`
	Slug       string `gorm:"size:255;uniqueIndex" json:"slug"`
	CategoryID uint   `json:"category_id"`

	Category *IngredientCategory `gorm:"foreignKey:CategoryID" json:"-"`
	Timestamp
}

type MeasurementUnit struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Name      string `gorm:"size:100;uniqueIndex:idx_units_name_short" json:"name"`
	ShortName string `gorm:"size:10;uniqueIndex:idx_units_name_short" json:"short_name"`
	UnitType  string `gorm:"size:20" json:"unit_type"` // "weight", "volume", "count"

	Timestamp
}

type MealType struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:255" json:"name"`
	Slug string `gorm:"size:255;uniqueIndex" json:"slug"`

	Timestamp
}

type Cuisine struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	Name   string `gorm:"size:255" json:"name"`
	Slug   string `gorm:"size:255;uniqueIndex" json:"slug"`
	Region string `gorm:"size:255" json:"region,omitempty"`

	Timestamp
}

type CookingMethod struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:255" json:"name"`
	Slug string `gorm:"size:255;uniqueIndex" json:"slug"`

	Timestamp
}

type Tag struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:255" json:"name"`
	Slug string `gorm:"size:255;uniqueIndex" json:"slug"`

	Timestamp
}
