package search

import (
	"Recipe-Platform-Backend/entities"
	"fmt"
	"html"
	"strconv"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"
)

const documentIDPrefix = "recipe:"

var stripPolicy = bluemonday.StrictPolicy()

type (
	// Document is the denormalized index record for one published recipe.
	// Steps are intentionally excluded to keep documents small.
	Document struct {
		ID       string           `json:"id"`
		Content  DocumentContent  `json:"content"`
		Metadata DocumentMetadata `json:"metadata"`
	}

	DocumentContent struct {
		Title           string `json:"title"`
		Description     string `json:"description"`
		DescriptionHTML string `json:"description_html"`
		Ingredients     string `json:"ingredients"`
		Cuisines        string `json:"cuisines"`
		Categories      string `json:"categories"`
		Tags            string `json:"tags"`
	}

	DocumentMetadata struct {
		RecipeID        uint    `json:"recipe_id"`
		Slug            string  `json:"slug"`
		Difficulty      string  `json:"difficulty"`
		PreparationTime int     `json:"preparation_time"`
		CookingTime     int     `json:"cooking_time"`
		Servings        int     `json:"servings"`
		PublishedAt     *string `json:"published_at"`
	}
)

func RecipeDocumentID(recipeID uint) string {
	return fmt.Sprintf("%s%d", documentIDPrefix, recipeID)
}

// ParseRecipeID extracts the recipe id from a document id of the form
// "recipe:<id>". Malformed ids report ok=false.
func ParseRecipeID(documentID string) (uint, bool) {
	if !strings.HasPrefix(documentID, documentIDPrefix) {
		return 0, false
	}
	raw := strings.TrimSpace(strings.TrimPrefix(documentID, documentIDPrefix))
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

func stripHTML(value string) string {
	return strings.TrimSpace(html.UnescapeString(stripPolicy.Sanitize(value)))
}

func compactJoin(values []string) string {
	items := make([]string, 0, len(values))
	for _, v := range values {
		if trimmed := strings.TrimSpace(v); trimmed != "" {
			items = append(items, trimmed)
		}
	}
	return strings.Join(items, ", ")
}

// BuildRecipeDocument projects a published recipe (with taxonomy and
// ingredient relations loaded) into its index document.
func BuildRecipeDocument(recipe *entities.Recipe) Document {
	ingredients := make([]string, 0, len(recipe.Ingredients))
	for _, ri := range recipe.Ingredients {
		if ri.Ingredient != nil {
			ingredients = append(ingredients, ri.Ingredient.Name)
		}
	}

	cuisines := make([]string, 0, len(recipe.Cuisines))
	for _, c := range recipe.Cuisines {
		cuisines = append(cuisines, c.Name)
	}
	categories := make([]string, 0, len(recipe.Categories))
	for _, c := range recipe.Categories {
		categories = append(categories, c.Name)
	}
	tags := make([]string, 0, len(recipe.Tags))
	for _, t := range recipe.Tags {
		tags = append(tags, t.Name)
	}

	var publishedAt *string
	if recipe.PublishedAt != nil {
		iso := recipe.PublishedAt.Format(time.RFC3339)
		publishedAt = &iso
	}

	return Document{
		ID: RecipeDocumentID(recipe.ID),
		Content: DocumentContent{
			Title:           strings.TrimSpace(recipe.Title),
			Description:     strings.TrimSpace(recipe.Description),
			DescriptionHTML: stripHTML(recipe.DescriptionHTML),
			Ingredients:     compactJoin(ingredients),
			Cuisines:        compactJoin(cuisines),
			Categories:      compactJoin(categories),
			Tags:            compactJoin(tags),
		},
		Metadata: DocumentMetadata{
			RecipeID:        recipe.ID,
			Slug:            recipe.Slug,
			Difficulty:      recipe.Difficulty,
			PreparationTime: recipe.PreparationTime,
			CookingTime:     recipe.CookingTime,
			Servings:        recipe.Servings,
			PublishedAt:     publishedAt,
		},
	}
}
