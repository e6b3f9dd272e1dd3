package domain

import (
	"errors"
	"strings"
	"time"
)

const (
	RecipeListDefaultLimit = 20
	RecipeListMaxLimit     = 100
)

var (
	MessageSuccessGetRecipes      = "success get recipes"
	MessageSuccessGetRecipeDetail = "success get recipe detail"
	MessageSuccessSaveRecipe      = "recipe saved successfully"
	MessageSuccessDeleteRecipe    = "recipe deleted successfully"
	MessageSuccessToggleBookmark  = "bookmark toggled successfully"
	MessageSuccessGetBookmarks    = "success get bookmarked recipes"
	MessageSuccessCreateComment   = "comment submitted for review"
	MessageSuccessUpsertRating    = "rating saved successfully"
	MessageSuccessUploadImage     = "recipe image uploaded successfully"

	MessageFailedGetRecipes      = "failed to get recipes"
	MessageFailedGetRecipeDetail = "failed to get recipe detail"
	MessageFailedSaveRecipe      = "failed to save recipe"
	MessageFailedDeleteRecipe    = "failed to delete recipe"
	MessageFailedToggleBookmark  = "failed to toggle bookmark"
	MessageFailedGetBookmarks    = "failed to get bookmarked recipes"
	MessageFailedCreateComment   = "failed to create comment"
	MessageFailedUpsertRating    = "failed to save rating"
	MessageFailedUploadImage     = "failed to upload recipe image"

	ErrRecipeNotFound     = errors.New("recipe not found")
	ErrStepOrderDuplicate = errors.New("duplicate step order")
	ErrIngredientRepeated = errors.New("ingredient listed twice")
	ErrInvalidImage       = errors.New("invalid image file")
)

type (
	// RecipeFilters is the query surface of the listing endpoint.
	RecipeFilters struct {
		Search     string `query:"search"`
		Tag        string `query:"tag"`
		Category   string `query:"category"`
		Cuisine    string `query:"cuisine"`
		MealType   string `query:"meal_type"`
		Difficulty string `query:"difficulty" validate:"omitempty,oneof=easy medium hard"`
		Limit      int    `query:"limit"`
		Offset     int    `query:"offset"`
	}

	SimpleLookup struct {
		ID   uint   `json:"id"`
		Name string `json:"name"`
		Slug string `json:"slug,omitempty"`
	}

	ImageVariant struct {
		Avif string `json:"avif,omitempty"`
		Webp string `json:"webp,omitempty"`
	}

	ImageSet struct {
		Original string        `json:"original,omitempty"`
		Thumb    *ImageVariant `json:"thumb,omitempty"`
		Small    *ImageVariant `json:"small,omitempty"`
		Medium   *ImageVariant `json:"medium,omitempty"`
		Large    *ImageVariant `json:"large,omitempty"`
	}

	RecipeSummary struct {
		ID              uint           `json:"id"`
		Title           string         `json:"title"`
		Slug            string         `json:"slug"`
		Difficulty      string         `json:"difficulty"`
		Images          *ImageSet      `json:"images,omitempty"`
		PreparationTime int            `json:"preparation_time"`
		CookingTime     int            `json:"cooking_time"`
		Servings        int            `json:"servings"`
		PublishedAt     *time.Time     `json:"published_at,omitempty"`
		RatingAverage   *float64       `json:"rating_average,omitempty"`
		RatingCount     int64          `json:"rating_count"`
		Tags            []SimpleLookup `json:"tags"`
		IsBookmarked    bool           `json:"is_bookmarked"`
	}

	RecipeListResponse struct {
		Total int64           `json:"total"`
		Items []RecipeSummary `json:"items"`
	}

	RecipeIngredientItem struct {
		ID     uint         `json:"id"`
		Amount float64      `json:"amount"`
		Note   string       `json:"note,omitempty"`
		Name   string       `json:"name"`
		Slug   string       `json:"slug,omitempty"`
		Unit   SimpleLookup `json:"unit"`
	}

	RecipeStepItem struct {
		ID              uint      `json:"id"`
		Order           int       `json:"order"`
		Title           string    `json:"title,omitempty"`
		Description     string    `json:"description"`
		DescriptionHTML string    `json:"description_html,omitempty"`
		Duration        *int      `json:"duration,omitempty"`
		VideoURL        string    `json:"video_url,omitempty"`
		Images          *ImageSet `json:"images,omitempty"`
	}

	CommentResponse struct {
		ID         uint      `json:"id"`
		Content    string    `json:"content"`
		UserName   string    `json:"user_name"`
		IsApproved bool      `json:"is_approved"`
		CreatedAt  time.Time `json:"created_at"`
	}

	RecipeDetail struct {
		RecipeSummary
		Description     string                 `json:"description,omitempty"`
		DescriptionHTML string                 `json:"description_html,omitempty"`
		VideoURL        string                 `json:"video_url,omitempty"`
		Categories      []SimpleLookup         `json:"categories"`
		MealTypes       []SimpleLookup         `json:"meal_types"`
		Cuisines        []SimpleLookup         `json:"cuisines"`
		CookingMethods  []SimpleLookup         `json:"cooking_methods"`
		Ingredients     []RecipeIngredientItem `json:"ingredients"`
		Steps           []RecipeStepItem       `json:"steps"`
		Comments        []CommentResponse      `json:"comments"`
		UserRating      *int                   `json:"user_rating,omitempty"`
	}

	BookmarkToggleResponse struct {
		IsBookmarked bool `json:"is_bookmarked"`
	}

	CommentCreateRequest struct {
		Content string `json:"content" validate:"required,min=3,max=2000"`
	}

	RatingCreateRequest struct {
		Value int `json:"value" validate:"required,min=1,max=5"`
	}

	RatingResponse struct {
		Value int `json:"value"`
	}

	// Staff-only payloads.

	RecipeIngredientInput struct {
		IngredientID uint    `json:"ingredient_id" validate:"required"`
		Amount       float64 `json:"amount" validate:"required,gt=0"`
		UnitID       uint    `json:"unit_id" validate:"required"`
		Note         string  `json:"note" validate:"omitempty,max=255"`
	}

	RecipeStepInput struct {
		Order       int    `json:"order" validate:"required,min=1"`
		Title       string `json:"title" validate:"omitempty,max=255"`
		Description string `json:"description" validate:"required"`
		Duration    *int   `json:"duration" validate:"omitempty,min=1"`
		VideoURL    string `json:"video_url" validate:"omitempty,url"`
	}

	SaveRecipeRequest struct {
		Title           string                  `json:"title" validate:"required,max=255"`
		MetaTitle       string                  `json:"meta_title" validate:"omitempty,max=80"`
		MetaDescription string                  `json:"meta_description" validate:"omitempty,max=160"`
		Description     string                  `json:"description"`
		DescriptionHTML string                  `json:"description_html"`
		PreparationTime int                     `json:"preparation_time" validate:"min=0"`
		CookingTime     int                     `json:"cooking_time" validate:"min=0"`
		Servings        int                     `json:"servings" validate:"min=1"`
		Difficulty      string                  `json:"difficulty" validate:"required,oneof=easy medium hard"`
		VideoURL        string                  `json:"video_url" validate:"omitempty,url"`
		Published       bool                    `json:"published"`
		CategoryIDs     []uint                  `json:"category_ids"`
		TagIDs          []uint                  `json:"tag_ids"`
		CuisineIDs      []uint                  `json:"cuisine_ids"`
		MealTypeIDs     []uint                  `json:"meal_type_ids"`
		CookingMethods  []uint                  `json:"cooking_method_ids"`
		Ingredients     []RecipeIngredientInput `json:"ingredients" validate:"dive"`
		Steps           []RecipeStepInput       `json:"steps" validate:"dive"`
	}

	RecipeImageResponse struct {
		Images *ImageSet `json:"images"`
	}
)

// Normalize trims the free-text query and clamps pagination to the
// documented bounds.
func (f *RecipeFilters) Normalize() {
	f.Search = strings.TrimSpace(f.Search)
	if f.Limit < 1 {
		f.Limit = RecipeListDefaultLimit
	}
	if f.Limit > RecipeListMaxLimit {
		f.Limit = RecipeListMaxLimit
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
}

// HasTaxonomyFilters reports whether any relational narrowing beyond the
// text query is requested.
func (f *RecipeFilters) HasTaxonomyFilters() bool {
	return f.Tag != "" || f.Category != "" || f.Cuisine != "" || f.MealType != "" || f.Difficulty != ""
}
