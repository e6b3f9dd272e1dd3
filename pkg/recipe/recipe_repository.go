package recipe

import (
	"Recipe-Platform-Backend/domain"
	"Recipe-Platform-Backend/entities"
	"context"
	"errors"
	"strconv"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	RatingStat struct {
		RecipeID uint
		Average  float64
		Count    int64
	}

	RecipeRepository interface {
		SearchRecipes(ctx context.Context, filters domain.RecipeFilters) ([]*entities.Recipe, int64, error)
		CountRecipesByIDs(ctx context.Context, recipeIDs []uint, filters domain.RecipeFilters) (int64, error)
		GetRecipesByIDs(ctx context.Context, recipeIDs []uint, filters domain.RecipeFilters) ([]*entities.Recipe, error)
		RatingStats(ctx context.Context, recipeIDs []uint) (map[uint]RatingStat, error)
		BookmarkedRecipeIDs(ctx context.Context, userID uint, recipeIDs []uint) (map[uint]bool, error)

		GetRecipeBySlug(ctx context.Context, slug string) (*entities.Recipe, error)
		GetRecipeByID(ctx context.Context, recipeID uint) (*entities.Recipe, error)
		ListComments(ctx context.Context, recipeID uint) ([]*entities.Comment, error)
		GetUserRating(ctx context.Context, userID, recipeID uint) (*int, error)

		BookmarkedRecipes(ctx context.Context, userID uint, limit, offset int) ([]*entities.Recipe, int64, error)
		ToggleBookmark(ctx context.Context, userID, recipeID uint) (bool, error)
		UpsertRating(ctx context.Context, userID, recipeID uint, value int) error
		CreateComment(ctx context.Context, comment *entities.Comment) error

		SlugExists(ctx context.Context, slug string, excludeID uint) (bool, error)
		CreateRecipe(ctx context.Context, recipe *entities.Recipe) error
		UpdateRecipe(ctx context.Context, recipe *entities.Recipe) error
		DeleteRecipe(ctx context.Context, recipeID uint) error
		UpdateImagePath(ctx context.Context, recipeID uint, imagePath string) error
	}

	recipeRepository struct {
		db *gorm.DB
	}
)

func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

// applyRecipeFilters narrows a recipes query to published rows matching the
// taxonomy and difficulty filters. The free-text condition is only added on
// the database fallback path; the ranked path gets its text match from the
// external index.
func applyRecipeFilters(query *gorm.DB, filters domain.RecipeFilters, includeText bool) *gorm.DB {
	query = query.Where("recipes.published_at IS NOT NULL")

	if filters.Tag != "" {
		query = query.
			Joins("JOIN recipe_tag_links ON recipe_tag_links.recipe_id = recipes.id").
			Joins("JOIN tags ON tags.id = recipe_tag_links.tag_id").
			Where("tags.slug = ?", filters.Tag)
	}
	if filters.Category != "" {
		query = query.
			Joins("JOIN recipe_category_links ON recipe_category_links.recipe_id = recipes.id").
			Joins("JOIN recipe_categories ON recipe_categories.id = recipe_category_links.recipe_category_id").
			Where("recipe_categories.slug = ?", filters.Category)
	}
	if filters.Cuisine != "" {
		query = query.
			Joins("JOIN recipe_cuisine_links ON recipe_cuisine_links.recipe_id = recipes.id").
			Joins("JOIN cuisines ON cuisines.id = recipe_cuisine_links.cuisine_id").
			Where("cuisines.slug = ?", filters.Cuisine)
	}
	if filters.MealType != "" {
		query = query.
			Joins("JOIN recipe_meal_type_links ON recipe_meal_type_links.recipe_id = recipes.id").
			Joins("JOIN meal_types ON meal_types.id = recipe_meal_type_links.meal_type_id").
			Where("meal_types.slug = ?", filters.MealType)
	}
	if filters.Difficulty != "" {
		query = query.Where("recipes.difficulty = ?", filters.Difficulty)
	}

	if includeText && filters.Search != "" {
		pattern := "%" + strings.ToLower(filters.Search) + "%"
		query = query.Where(
			"lower(recipes.title) LIKE ? OR lower(recipes.description) LIKE ? OR lower(recipes.description_html) LIKE ?",
			pattern, pattern, pattern,
		)
	}
	return query
}

func (r *recipeRepository) SearchRecipes(ctx context.Context, filters domain.RecipeFilters) ([]*entities.Recipe, int64, error) {
	base := applyRecipeFilters(r.db.WithContext(ctx).Model(&entities.Recipe{}), filters, true)

	var total int64
	if err := base.Session(&gorm.Session{}).Distinct("recipes.id").Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var recipes []*entities.Recipe
	err := base.Session(&gorm.Session{}).
		Distinct("recipes.*").
		Order("recipes.published_at DESC, recipes.updated_at DESC, recipes.id DESC").
		Offset(filters.Offset).
		Limit(filters.Limit).
		Preload("Tags").
		Find(&recipes).Error
	if err != nil {
		return nil, 0, err
	}
	return recipes, total, nil
}

func (r *recipeRepository) CountRecipesByIDs(ctx context.Context, recipeIDs []uint, filters domain.RecipeFilters) (int64, error) {
	if len(recipeIDs) == 0 {
		return 0, nil
	}
	var total int64
	err := applyRecipeFilters(r.db.WithContext(ctx).Model(&entities.Recipe{}), filters, false).
		Where("recipes.id IN ?", recipeIDs).
		Distinct("recipes.id").
		Count(&total).Error
	return total, err
}

// GetRecipesByIDs fetches the given recipes with the relational filters
// re-applied, preserving the order of recipeIDs.
func (r *recipeRepository) GetRecipesByIDs(ctx context.Context, recipeIDs []uint, filters domain.RecipeFilters) ([]*entities.Recipe, error) {
	if len(recipeIDs) == 0 {
		return []*entities.Recipe{}, nil
	}

	var orderSQL strings.Builder
	orderSQL.WriteString("CASE recipes.id")
	args := make([]any, 0, len(recipeIDs))
	for position, id := range recipeIDs {
		orderSQL.WriteString(" WHEN ? THEN ")
		orderSQL.WriteString(strconv.Itoa(position))
		args = append(args, id)
	}
	orderSQL.WriteString(" END")

	var recipes []*entities.Recipe
	err := applyRecipeFilters(r.db.WithContext(ctx).Model(&entities.Recipe{}), filters, false).
		Where("recipes.id IN ?", recipeIDs).
		Clauses(clause.OrderBy{
			Expression: clause.Expr{SQL: orderSQL.String(), Vars: args, WithoutParentheses: true},
		}).
		Preload("Tags").
		Find(&recipes).Error
	if err != nil {
		return nil, err
	}

	// Taxonomy joins can duplicate rows, keep first occurrence only.
	seen := make(map[uint]struct{}, len(recipes))
	unique := recipes[:0]
	for _, recipe := range recipes {
		if _, dup := seen[recipe.ID]; dup {
			continue
		}
		seen[recipe.ID] = struct{}{}
		unique = append(unique, recipe)
	}
	return unique, nil
}

func (r *recipeRepository) RatingStats(ctx context.Context, recipeIDs []uint) (map[uint]RatingStat, error) {
	stats := make(map[uint]RatingStat, len(recipeIDs))
	if len(recipeIDs) == 0 {
		return stats, nil
	}

	var rows []RatingStat
	err := r.db.WithContext(ctx).
		Model(&entities.Rating{}).
		Select("recipe_id, AVG(value) AS average, COUNT(*) AS count").
		Where("recipe_id IN ?", recipeIDs).
		Group("recipe_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		stats[row.RecipeID] = row
	}
	return stats, nil
}

func (r *recipeRepository) BookmarkedRecipeIDs(ctx context.Context, userID uint, recipeIDs []uint) (map[uint]bool, error) {
	bookmarked := make(map[uint]bool, len(recipeIDs))
	if userID == 0 || len(recipeIDs) == 0 {
		return bookmarked, nil
	}

	var ids []uint
	err := r.db.WithContext(ctx).
		Model(&entities.Bookmark{}).
		Where("user_id = ? AND recipe_id IN ?", userID, recipeIDs).
		Pluck("recipe_id", &ids).Error
	if err != nil {
		return nil, err
	}
	for _, id := range ids {
		bookmarked[id] = true
	}
	return bookmarked, nil
}

func (r *recipeRepository) GetRecipeBySlug(ctx context.Context, slug string) (*entities.Recipe, error) {
	var recipe entities.Recipe
	err := r.db.WithContext(ctx).
		Where("slug = ?", slug).
		Preload("Tags").
		Preload("Categories").
		Preload("MealTypes").
		Preload("Cuisines").
		Preload("CookingMethods").
		Preload("Ingredients", func(db *gorm.DB) *gorm.DB {
			return db.Order("recipe_ingredients.id")
		}).
		Preload("Ingredients.Ingredient").
		Preload("Ingredients.Unit").
		Preload("Steps", func(db *gorm.DB) *gorm.DB {
			return db.Order("recipe_steps.step_order")
		}).
		First(&recipe).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRecipeNotFound
		}
		return nil, err
	}
	return &recipe, nil
}

func (r *recipeRepository) GetRecipeByID(ctx context.Context, recipeID uint) (*entities.Recipe, error) {
	var recipe entities.Recipe
	err := r.db.WithContext(ctx).First(&recipe, recipeID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRecipeNotFound
		}
		return nil, err
	}
	return &recipe, nil
}

func (r *recipeRepository) ListComments(ctx context.Context, recipeID uint) ([]*entities.Comment, error) {
	var comments []*entities.Comment
	err := r.db.WithContext(ctx).
		Where("recipe_id = ?", recipeID).
		Preload("User").
		Order("created_at DESC, id DESC").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}

func (r *recipeRepository) GetUserRating(ctx context.Context, userID, recipeID uint) (*int, error) {
	var rating entities.Rating
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		First(&rating).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rating.Value, nil
}

func (r *recipeRepository) BookmarkedRecipes(ctx context.Context, userID uint, limit, offset int) ([]*entities.Recipe, int64, error) {
	base := r.db.WithContext(ctx).
		Model(&entities.Recipe{}).
		Joins("JOIN bookmarks ON bookmarks.recipe_id = recipes.id").
		Where("bookmarks.user_id = ?", userID)

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var recipes []*entities.Recipe
	err := base.Session(&gorm.Session{}).
		Select("recipes.*").
		Order("bookmarks.created_at DESC, bookmarks.id DESC").
		Offset(offset).
		Limit(limit).
		Preload("Tags").
		Find(&recipes).Error
	if err != nil {
		return nil, 0, err
	}
	return recipes, total, nil
}

func (r *recipeRepository) ToggleBookmark(ctx context.Context, userID, recipeID uint) (bool, error) {
	var bookmark entities.Bookmark
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		First(&bookmark).Error
	if err == nil {
		if err := r.db.WithContext(ctx).Delete(&bookmark).Error; err != nil {
			return false, err
		}
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	bookmark = entities.Bookmark{UserID: userID, RecipeID: recipeID}
	if err := r.db.WithContext(ctx).Create(&bookmark).Error; err != nil {
		return false, err
	}
	return true, nil
}

func (r *recipeRepository) UpsertRating(ctx context.Context, userID, recipeID uint, value int) error {
	rating := entities.Rating{UserID: userID, RecipeID: recipeID, Value: value}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "recipe_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&rating).Error
}

func (r *recipeRepository) CreateComment(ctx context.Context, comment *entities.Comment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

func (r *recipeRepository) SlugExists(ctx context.Context, slug string, excludeID uint) (bool, error) {
	var count int64
	query := r.db.WithContext(ctx).
		Model(&entities.Recipe{}).
		Where("slug = ?", slug)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *recipeRepository) CreateRecipe(ctx context.Context, recipe *entities.Recipe) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ingredients := recipe.Ingredients
		steps := recipe.Steps
		recipe.Ingredients = nil
		recipe.Steps = nil

		if err := tx.Omit("Ingredients", "Steps").Create(recipe).Error; err != nil {
			return err
		}
		if err := writeRecipeChildren(tx, recipe.ID, ingredients, steps); err != nil {
			return err
		}
		recipe.Ingredients = ingredients
		recipe.Steps = steps
		return nil
	})
}

func (r *recipeRepository) UpdateRecipe(ctx context.Context, recipe *entities.Recipe) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&entities.Recipe{ID: recipe.ID}).
			Select(
				"title", "slug", "meta_title", "meta_description",
				"description", "description_html", "preparation_time",
				"cooking_time", "servings", "difficulty", "video_url",
				"published_at",
			).
			Updates(recipe).Error
		if err != nil {
			return err
		}

		anchor := &entities.Recipe{ID: recipe.ID}
		if err := tx.Model(anchor).Association("Categories").Replace(recipe.Categories); err != nil {
			return err
		}
		if err := tx.Model(anchor).Association("Tags").Replace(recipe.Tags); err != nil {
			return err
		}
		if err := tx.Model(anchor).Association("Cuisines").Replace(recipe.Cuisines); err != nil {
			return err
		}
		if err := tx.Model(anchor).Association("MealTypes").Replace(recipe.MealTypes); err != nil {
			return err
		}
		if err := tx.Model(anchor).Association("CookingMethods").Replace(recipe.CookingMethods); err != nil {
			return err
		}

		if err := tx.Where("recipe_id = ?", recipe.ID).Delete(&entities.RecipeIngredient{}).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", recipe.ID).Delete(&entities.RecipeStep{}).Error; err != nil {
			return err
		}
		return writeRecipeChildren(tx, recipe.ID, recipe.Ingredients, recipe.Steps)
	})
}

func writeRecipeChildren(tx *gorm.DB, recipeID uint, ingredients []entities.RecipeIngredient, steps []entities.RecipeStep) error {
	for i := range ingredients {
		ingredients[i].ID = 0
		ingredients[i].RecipeID = recipeID
	}
	for i := range steps {
		steps[i].ID = 0
		steps[i].RecipeID = recipeID
	}
	if len(ingredients) > 0 {
		if err := tx.Omit("Ingredient", "Unit").Create(&ingredients).Error; err != nil {
			return err
		}
	}
	if len(steps) > 0 {
		if err := tx.Create(&steps).Error; err != nil {
			return err
		}
	}
	return nil
}

func (r *recipeRepository) DeleteRecipe(ctx context.Context, recipeID uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		recipe := entities.Recipe{ID: recipeID}
		for _, association := range []string{"Categories", "Tags", "Cuisines", "MealTypes", "CookingMethods"} {
			if err := tx.Model(&recipe).Association(association).Clear(); err != nil {
				return err
			}
		}
		if err := tx.Where("recipe_id = ?", recipeID).Delete(&entities.RecipeIngredient{}).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", recipeID).Delete(&entities.RecipeStep{}).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", recipeID).Delete(&entities.Bookmark{}).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", recipeID).Delete(&entities.Rating{}).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", recipeID).Delete(&entities.Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&recipe).Error
	})
}

func (r *recipeRepository) UpdateImagePath(ctx context.Context, recipeID uint, imagePath string) error {
	return r.db.WithContext(ctx).
		Model(&entities.Recipe{}).
		Where("id = ?", recipeID).
		Update("image_path", imagePath).Error
}
