package entities

type Bookmark struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	UserID   uint `gorm:"uniqueIndex:idx_bookmarks_user_recipe" json:"user_id"`
	RecipeID uint `gorm:"uniqueIndex:idx_bookmarks_user_recipe" json:"recipe_id"`

	User   *User   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Recipe *Recipe `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"-"`
	Timestamp
}

type Rating struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	UserID   uint `gorm:"uniqueIndex:idx_ratings_user_recipe" json:"user_id"`
	RecipeID uint `gorm:"uniqueIndex:idx_ratings_user_recipe" json:"recipe_id"`
	Value    int  `gorm:"check:value >= 1 AND value <= 5" json:"value"`

	User   *User   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Recipe *Recipe `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"-"`
	Timestamp
}

type Comment struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	UserID     uint   `gorm:"index" json:"user_id"`
	RecipeID   uint   `gorm:"index" json:"recipe_id"`
	Content    string `gorm:"type:text" json:"content"`
	IsApproved bool   `gorm:"default:false" json:"is_approved"`

	User   *User   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Recipe *Recipe `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"-"`
	Timestamp
}
