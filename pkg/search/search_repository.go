package search

import (
	"Recipe-Platform-Backend/entities"
	"context"
	"errors"

	"gorm.io/gorm"
)

type (
	SearchRepository interface {
		// GetPublishedRecipe returns (nil, nil) when the recipe is missing
		// or unpublished; both states mean "drop the document".
		GetPublishedRecipe(ctx context.Context, recipeID uint) (*entities.Recipe, error)
		PublishedRecipeIDs(ctx context.Context, limit int) ([]uint, error)
	}

	searchRepository struct {
		db *gorm.DB
	}
)

func NewSearchRepository(db *gorm.DB) SearchRepository {
	return &searchRepository{db: db}
}

func (r *searchRepository) GetPublishedRecipe(ctx context.Context, recipeID uint) (*entities.Recipe, error) {
	var recipe entities.Recipe
	err := r.db.WithContext(ctx).
		Where("id = ? AND published_at IS NOT NULL", recipeID).
		Preload("Tags").
		Preload("Categories").
		Preload("Cuisines").
		Preload("Ingredients", func(db *gorm.DB) *gorm.DB {
			return db.Order("recipe_ingredients.id")
		}).
		Preload("Ingredients.Ingredient").
		First(&recipe).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &recipe, nil
}

func (r *searchRepository) PublishedRecipeIDs(ctx context.Context, limit int) ([]uint, error) {
	var ids []uint
	query := r.db.WithContext(ctx).
		Model(&entities.Recipe{}).
		Where("published_at IS NOT NULL").
		Order("id")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Pluck("id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}
