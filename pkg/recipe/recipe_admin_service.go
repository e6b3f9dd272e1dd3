package recipe

import (
	"Recipe-Platform-Backend/domain"
	"Recipe-Platform-Backend/entities"
	"Recipe-Platform-Backend/internal/utils/storage"
	"Recipe-Platform-Backend/pkg/imaging"
	"context"
	"fmt"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

type (
	// RecipeAdminService is the staff-only mutation surface. Every write
	// runs inside a transaction and refreshes the search index once the
	// transaction has committed.
	RecipeAdminService interface {
		CreateRecipe(ctx context.Context, req *domain.SaveRecipeRequest) (*domain.RecipeDetail, error)
		UpdateRecipe(ctx context.Context, recipeID uint, req *domain.SaveRecipeRequest) (*domain.RecipeDetail, error)
		DeleteRecipe(ctx context.Context, recipeID uint) error
		UploadRecipeImage(ctx context.Context, recipeID uint, filename string, data []byte) (*domain.RecipeImageResponse, error)
	}

	recipeAdminService struct {
		repository RecipeRepository
		index      RecipeIndex
		store      storage.ObjectStorage
	}
)

func NewRecipeAdminService(repository RecipeRepository, index RecipeIndex, store storage.ObjectStorage) RecipeAdminService {
	return &recipeAdminService{
		repository: repository,
		index:      index,
		store:      store,
	}
}

func (s *recipeAdminService) CreateRecipe(ctx context.Context, req *domain.SaveRecipeRequest) (*domain.RecipeDetail, error) {
	recipe, err := s.buildRecipe(ctx, req, nil)
	if err != nil {
		return nil, err
	}
	if err := s.repository.CreateRecipe(ctx, recipe); err != nil {
		return nil, err
	}
	s.index.UpsertRecipe(ctx, recipe.ID)
	return s.reload(ctx, recipe.Slug)
}

func (s *recipeAdminService) UpdateRecipe(ctx context.Context, recipeID uint, req *domain.SaveRecipeRequest) (*domain.RecipeDetail, error) {
	existing, err := s.repository.GetRecipeByID(ctx, recipeID)
	if err != nil {
		return nil, err
	}

	recipe, err := s.buildRecipe(ctx, req, existing)
	if err != nil {
		return nil, err
	}
	if err := s.repository.UpdateRecipe(ctx, recipe); err != nil {
		return nil, err
	}
	s.index.UpsertRecipe(ctx, recipe.ID)
	return s.reload(ctx, recipe.Slug)
}

func (s *recipeAdminService) DeleteRecipe(ctx context.Context, recipeID uint) error {
	if _, err := s.repository.GetRecipeByID(ctx, recipeID); err != nil {
		return err
	}
	if err := s.repository.DeleteRecipe(ctx, recipeID); err != nil {
		return err
	}
	s.index.DeleteRecipe(ctx, recipeID)
	return nil
}

// buildRecipe validates a save payload and projects it onto an entity.
// When existing is non-nil the entity keeps its id, slug and image path.
func (s *recipeAdminService) buildRecipe(ctx context.Context, req *domain.SaveRecipeRequest, existing *entities.Recipe) (*entities.Recipe, error) {
	ingredients, err := buildIngredients(req.Ingredients)
	if err != nil {
		return nil, err
	}
	steps, err := buildSteps(req.Steps)
	if err != nil {
		return nil, err
	}

	recipe := &entities.Recipe{
		Title:           strings.TrimSpace(req.Title),
		MetaTitle:       req.MetaTitle,
		MetaDescription: req.MetaDescription,
		Description:     req.Description,
		DescriptionHTML: req.DescriptionHTML,
		PreparationTime: req.PreparationTime,
		CookingTime:     req.CookingTime,
		Servings:        req.Servings,
		Difficulty:      req.Difficulty,
		VideoURL:        req.VideoURL,
		Categories:      idRefs(req.CategoryIDs, func(id uint) entities.RecipeCategory { return entities.RecipeCategory{ID: id} }),
		Tags:            idRefs(req.TagIDs, func(id uint) entities.Tag { return entities.Tag{ID: id} }),
		Cuisines:        idRefs(req.CuisineIDs, func(id uint) entities.Cuisine { return entities.Cuisine{ID: id} }),
		MealTypes:       idRefs(req.MealTypeIDs, func(id uint) entities.MealType { return entities.MealType{ID: id} }),
		CookingMethods:  idRefs(req.CookingMethods, func(id uint) entities.CookingMethod { return entities.CookingMethod{ID: id} }),
		Ingredients:     ingredients,
		Steps:           steps,
	}

	if existing != nil {
		recipe.ID = existing.ID
		recipe.Slug = existing.Slug
		recipe.ImagePath = existing.ImagePath
		recipe.PublishedAt = existing.PublishedAt
	} else {
		recipe.Slug, err = s.uniqueSlug(ctx, recipe.Title, 0)
		if err != nil {
			return nil, err
		}
	}

	if req.Published {
		if recipe.PublishedAt == nil {
			now := time.Now()
			recipe.PublishedAt = &now
		}
	} else {
		recipe.PublishedAt = nil
	}
	return recipe, nil
}

func (s *recipeAdminService) uniqueSlug(ctx context.Context, title string, excludeID uint) (string, error) {
	base := slug.Make(title)
	candidate := base
	for suffix := 2; ; suffix++ {
		taken, err := s.repository.SlugExists(ctx, candidate, excludeID)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, suffix)
	}
}

func buildIngredients(inputs []domain.RecipeIngredientInput) ([]entities.RecipeIngredient, error) {
	seen := make(map[uint]struct{}, len(inputs))
	ingredients := make([]entities.RecipeIngredient, 0, len(inputs))
	for _, input := range inputs {
		if _, dup := seen[input.IngredientID]; dup {
			return nil, domain.ErrIngredientRepeated
		}
		seen[input.IngredientID] = struct{}{}
		ingredients = append(ingredients, entities.RecipeIngredient{
			IngredientID: input.IngredientID,
			Amount:       input.Amount,
			UnitID:       input.UnitID,
			Note:         input.Note,
		})
	}
	return ingredients, nil
}

func buildSteps(inputs []domain.RecipeStepInput) ([]entities.RecipeStep, error) {
	seen := make(map[int]struct{}, len(inputs))
	steps := make([]entities.RecipeStep, 0, len(inputs))
	for _, input := range inputs {
		if _, dup := seen[input.Order]; dup {
			return nil, domain.ErrStepOrderDuplicate
		}
		seen[input.Order] = struct{}{}
		steps = append(steps, entities.RecipeStep{
			Order:       input.Order,
			Title:       input.Title,
			Description: input.Description,
			Duration:    input.Duration,
			VideoURL:    input.VideoURL,
		})
	}
	return steps, nil
}

func idRefs[T any](ids []uint, build func(uint) T) []T {
	refs := make([]T, 0, len(ids))
	for _, id := range ids {
		refs = append(refs, build(id))
	}
	return refs
}

func (s *recipeAdminService) reload(ctx context.Context, slug string) (*domain.RecipeDetail, error) {
	recipe, err := s.repository.GetRecipeBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	viewer := recipeService{repository: s.repository, index: s.index, store: s.store}
	return viewer.buildDetail(ctx, recipe, 0)
}

func (s *recipeAdminService) UploadRecipeImage(ctx context.Context, recipeID uint, filename string, data []byte) (*domain.RecipeImageResponse, error) {
	if _, err := s.repository.GetRecipeByID(ctx, recipeID); err != nil {
		return nil, err
	}

	source, err := imaging.Decode(data)
	if err != nil {
		return nil, domain.ErrInvalidImage
	}

	ext := strings.ToLower(path.Ext(filename))
	if ext == "" {
		ext = ".jpg"
	}
	baseKey := fmt.Sprintf("recipes/%d/%s%s", recipeID, uuid.NewString(), ext)

	if _, err := s.store.UploadBytes(ctx, baseKey, data, http.DetectContentType(data)); err != nil {
		return nil, err
	}

	variants, err := imaging.DeriveAll(source, baseKey)
	if err != nil {
		return nil, err
	}
	for _, spec := range imaging.Variants {
		key := spec.VariantKey(baseKey)
		if _, err := s.store.UploadBytes(ctx, key, variants[key], spec.ContentType()); err != nil {
			return nil, err
		}
	}

	if err := s.repository.UpdateImagePath(ctx, recipeID, baseKey); err != nil {
		return nil, err
	}
	return &domain.RecipeImageResponse{Images: buildImageSet(s.store, baseKey)}, nil
}
