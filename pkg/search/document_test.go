package search

import (
	"Recipe-Platform-Backend/entities"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRecipeID(t *testing.T) {
	tests := []struct {
		documentID string
		wantID     uint
		wantOK     bool
	}{
		{"recipe:42", 42, true},
		{"recipe:1", 1, true},
		{"recipe:", 0, false},
		{"recipe:abc", 0, false},
		{"recipe:-5", 0, false},
		{"user:42", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		id, ok := ParseRecipeID(tt.documentID)
		assert.Equal(t, tt.wantOK, ok, tt.documentID)
		assert.Equal(t, tt.wantID, id, tt.documentID)
	}
}

func TestRecipeDocumentID(t *testing.T) {
	assert.Equal(t, "recipe:7", RecipeDocumentID(7))
}

func TestBuildRecipeDocument(t *testing.T) {
	publishedAt := time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)
	recipe := &entities.Recipe{
		ID:              12,
		Title:           "  Beef Rendang ",
		Slug:            "beef-rendang",
		Description:     "Slow cooked beef",
		DescriptionHTML: "<p>Slow cooked <strong>beef</strong> &amp; spices</p>",
		Difficulty:      entities.DifficultyHard,
		PreparationTime: 30,
		CookingTime:     240,
		Servings:        6,
		PublishedAt:     &publishedAt,
		Tags:            []entities.Tag{{Name: "spicy"}, {Name: ""}, {Name: "beef"}},
		Cuisines:        []entities.Cuisine{{Name: "Indonesian"}},
		Categories:      []entities.RecipeCategory{{Name: "Main course"}},
		Ingredients: []entities.RecipeIngredient{
			{Ingredient: &entities.Ingredient{Name: "Beef"}},
			{Ingredient: nil},
			{Ingredient: &entities.Ingredient{Name: "Coconut milk"}},
		},
	}

	doc := BuildRecipeDocument(recipe)

	assert.Equal(t, "recipe:12", doc.ID)
	assert.Equal(t, "Beef Rendang", doc.Content.Title)
	assert.Equal(t, "Slow cooked beef & spices", doc.Content.DescriptionHTML)
	assert.Equal(t, "Beef, Coconut milk", doc.Content.Ingredients)
	assert.Equal(t, "Indonesian", doc.Content.Cuisines)
	assert.Equal(t, "Main course", doc.Content.Categories)
	assert.Equal(t, "spicy, beef", doc.Content.Tags)

	assert.Equal(t, uint(12), doc.Metadata.RecipeID)
	assert.Equal(t, "beef-rendang", doc.Metadata.Slug)
	require.NotNil(t, doc.Metadata.PublishedAt)
	assert.Equal(t, "2025-03-14T09:00:00Z", *doc.Metadata.PublishedAt)
}

func TestBuildRecipeDocumentUnpublished(t *testing.T) {
	doc := BuildRecipeDocument(&entities.Recipe{ID: 3, Title: "Draft"})
	assert.Nil(t, doc.Metadata.PublishedAt)
}
