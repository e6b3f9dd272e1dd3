package recipe

import (
	"Recipe-Platform-Backend/domain"
	"Recipe-Platform-Backend/entities"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAdminFixture(t *testing.T) (*fixture, RecipeAdminService) {
	t.Helper()
	f := newFixture(t)
	admin := NewRecipeAdminService(NewRecipeRepository(f.db), f.index, fakeStore{})
	return f, admin
}

func saveRequest(title string, published bool) *domain.SaveRecipeRequest {
	return &domain.SaveRecipeRequest{
		Title:      title,
		Difficulty: entities.DifficultyMedium,
		Servings:   4,
		Published:  published,
		Steps: []domain.RecipeStepInput{
			{Order: 1, Description: "Prepare"},
			{Order: 2, Description: "Cook"},
		},
	}
}

func TestCreateRecipe(t *testing.T) {
	f, admin := newAdminFixture(t)

	detail, err := admin.CreateRecipe(context.Background(), saveRequest("Nasi Uduk", true))
	require.NoError(t, err)

	assert.Equal(t, "nasi-uduk", detail.Slug)
	assert.NotNil(t, detail.PublishedAt)
	require.Len(t, detail.Steps, 2)

	// The index is refreshed after the write commits.
	assert.Equal(t, []uint{detail.ID}, f.index.upsertedIDs)
}

func TestCreateRecipeSlugCollision(t *testing.T) {
	_, admin := newAdminFixture(t)

	first, err := admin.CreateRecipe(context.Background(), saveRequest("Nasi Uduk", true))
	require.NoError(t, err)
	second, err := admin.CreateRecipe(context.Background(), saveRequest("Nasi Uduk", true))
	require.NoError(t, err)

	assert.Equal(t, "nasi-uduk", first.Slug)
	assert.Equal(t, "nasi-uduk-2", second.Slug)
}

func TestCreateRecipeDuplicateStepOrder(t *testing.T) {
	_, admin := newAdminFixture(t)

	req := saveRequest("Broken Steps", true)
	req.Steps = []domain.RecipeStepInput{
		{Order: 1, Description: "First"},
		{Order: 1, Description: "Also first"},
	}

	_, err := admin.CreateRecipe(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrStepOrderDuplicate)
}

func TestCreateRecipeDuplicateIngredient(t *testing.T) {
	f, admin := newAdminFixture(t)

	category := entities.IngredientCategory{Name: "Spices", Slug: "spices"}
	require.NoError(t, f.db.Create(&category).Error)
	ingredient := entities.Ingredient{Name: "Garlic", Slug: "garlic", CategoryID: category.ID}
	require.NoError(t, f.db.Create(&ingredient).Error)
	unit := entities.MeasurementUnit{Name: "clove", ShortName: "cl", UnitType: entities.UnitTypeCount}
	require.NoError(t, f.db.Create(&unit).Error)

	req := saveRequest("Garlic Overload", true)
	req.Ingredients = []domain.RecipeIngredientInput{
		{IngredientID: ingredient.ID, Amount: 2, UnitID: unit.ID},
		{IngredientID: ingredient.ID, Amount: 3, UnitID: unit.ID},
	}

	_, err := admin.CreateRecipe(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrIngredientRepeated)
}

func TestUpdateRecipeUnpublishTriggersIndexRefresh(t *testing.T) {
	f, admin := newAdminFixture(t)

	created, err := admin.CreateRecipe(context.Background(), saveRequest("Soon Hidden", true))
	require.NoError(t, err)
	f.index.upsertedIDs = nil

	req := saveRequest("Soon Hidden", false)
	_, err = admin.UpdateRecipe(context.Background(), created.ID, req)
	require.NoError(t, err)

	var stored entities.Recipe
	require.NoError(t, f.db.First(&stored, created.ID).Error)
	assert.Nil(t, stored.PublishedAt)
	// Upsert runs either way; the index service resolves the unpublished
	// state into a document delete.
	assert.Equal(t, []uint{created.ID}, f.index.upsertedIDs)
}

func TestUpdateRecipeRewritesStepsAndTags(t *testing.T) {
	f, admin := newAdminFixture(t)

	tag := entities.Tag{Name: "Quick", Slug: "quick"}
	require.NoError(t, f.db.Create(&tag).Error)
	other := entities.Tag{Name: "Slow", Slug: "slow"}
	require.NoError(t, f.db.Create(&other).Error)

	req := saveRequest("Evolving Dish", true)
	req.TagIDs = []uint{tag.ID}
	created, err := admin.CreateRecipe(context.Background(), req)
	require.NoError(t, err)

	update := saveRequest("Evolving Dish", true)
	update.TagIDs = []uint{other.ID}
	update.Steps = []domain.RecipeStepInput{{Order: 1, Description: "Only step"}}

	updated, err := admin.UpdateRecipe(context.Background(), created.ID, update)
	require.NoError(t, err)

	require.Len(t, updated.Steps, 1)
	assert.Equal(t, "Only step", updated.Steps[0].Description)
	require.Len(t, updated.Tags, 1)
	assert.Equal(t, "slow", updated.Tags[0].Slug)

	var stepCount int64
	require.NoError(t, f.db.Model(&entities.RecipeStep{}).Where("recipe_id = ?", created.ID).Count(&stepCount).Error)
	assert.Equal(t, int64(1), stepCount)
}

func TestDeleteRecipe(t *testing.T) {
	f, admin := newAdminFixture(t)

	created, err := admin.CreateRecipe(context.Background(), saveRequest("Doomed Dish", true))
	require.NoError(t, err)

	user := f.createUser(t, "fan")
	require.NoError(t, f.db.Create(&entities.Bookmark{UserID: user.ID, RecipeID: created.ID}).Error)

	require.NoError(t, admin.DeleteRecipe(context.Background(), created.ID))

	var recipeCount, bookmarkCount, stepCount int64
	require.NoError(t, f.db.Model(&entities.Recipe{}).Count(&recipeCount).Error)
	require.NoError(t, f.db.Model(&entities.Bookmark{}).Count(&bookmarkCount).Error)
	require.NoError(t, f.db.Model(&entities.RecipeStep{}).Count(&stepCount).Error)
	assert.Zero(t, recipeCount)
	assert.Zero(t, bookmarkCount)
	assert.Zero(t, stepCount)

	assert.Equal(t, []uint{created.ID}, f.index.deletedIDs)
}

func TestDeleteRecipeNotFound(t *testing.T) {
	_, admin := newAdminFixture(t)
	err := admin.DeleteRecipe(context.Background(), 404)
	assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
}

func TestUpdateRecipeKeepsPublishedAt(t *testing.T) {
	f, admin := newAdminFixture(t)

	created, err := admin.CreateRecipe(context.Background(), saveRequest("Stable Dish", true))
	require.NoError(t, err)

	var before entities.Recipe
	require.NoError(t, f.db.First(&before, created.ID).Error)
	require.NotNil(t, before.PublishedAt)
	originalPublish := *before.PublishedAt

	time.Sleep(10 * time.Millisecond)
	_, err = admin.UpdateRecipe(context.Background(), created.ID, saveRequest("Stable Dish", true))
	require.NoError(t, err)

	var after entities.Recipe
	require.NoError(t, f.db.First(&after, created.ID).Error)
	require.NotNil(t, after.PublishedAt)
	assert.WithinDuration(t, originalPublish, *after.PublishedAt, time.Millisecond)
}
