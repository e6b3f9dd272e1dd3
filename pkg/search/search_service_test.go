package search

import (
	"Recipe-Platform-Backend/entities"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type fakeIndexClient struct {
	upserted   []Document
	deletedIDs []string
	searches   []string

	hits      []Hit
	searchErr error
}

func (f *fakeIndexClient) Upsert(_ context.Context, documents []Document) error {
	f.upserted = append(f.upserted, documents...)
	return nil
}

func (f *fakeIndexClient) Delete(_ context.Context, documentIDs []string) error {
	f.deletedIDs = append(f.deletedIDs, documentIDs...)
	return nil
}

func (f *fakeIndexClient) Search(_ context.Context, query string, _ int) ([]Hit, error) {
	f.searches = append(f.searches, query)
	return f.hits, f.searchErr
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&entities.User{},
		&entities.IngredientCategory{},
		&entities.Ingredient{},
		&entities.MeasurementUnit{},
		&entities.RecipeCategory{},
		&entities.Cuisine{},
		&entities.Tag{},
		&entities.Recipe{},
		&entities.RecipeIngredient{},
		&entities.RecipeStep{},
	))
	return db
}

func enabledConfig() Config {
	return Config{Enabled: true, RestURL: "https://search.test", RestToken: "token", IndexName: "recipes"}
}

func seedRecipe(t *testing.T, db *gorm.DB, title string, published bool) *entities.Recipe {
	t.Helper()
	recipe := &entities.Recipe{
		Title:      title,
		Slug:       strings.ToLower(strings.ReplaceAll(title, " ", "-")),
		Difficulty: entities.DifficultyEasy,
		Servings:   2,
	}
	if published {
		now := time.Now()
		recipe.PublishedAt = &now
	}
	require.NoError(t, db.Create(recipe).Error)
	return recipe
}

func TestEnabled(t *testing.T) {
	tests := []struct {
		name   string
		config Config
		want   bool
	}{
		{"all set", enabledConfig(), true},
		{"flag off", Config{RestURL: "u", RestToken: "t"}, false},
		{"missing url", Config{Enabled: true, RestToken: "t"}, false},
		{"missing token", Config{Enabled: true, RestURL: "u"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewSearchService(tt.config, nil)
			assert.Equal(t, tt.want, service.Enabled())
		})
	}
}

func TestSearchRecipeIDsBlankQuery(t *testing.T) {
	client := &fakeIndexClient{}
	service := NewSearchServiceWithClient(enabledConfig(), nil, client)

	ids, err := service.SearchRecipeIDs(context.Background(), "   ", 100)
	require.NoError(t, err)
	assert.Empty(t, ids)
	assert.Empty(t, client.searches)
}

func TestSearchRecipeIDsDisabled(t *testing.T) {
	service := NewSearchService(Config{}, nil)

	_, err := service.SearchRecipeIDs(context.Background(), "rendang", 100)
	assert.ErrorIs(t, err, ErrSearchUnavailable)
}

func TestSearchRecipeIDsClientError(t *testing.T) {
	client := &fakeIndexClient{searchErr: errors.New("boom")}
	service := NewSearchServiceWithClient(enabledConfig(), nil, client)

	_, err := service.SearchRecipeIDs(context.Background(), "rendang", 100)
	assert.ErrorIs(t, err, ErrSearchUnavailable)
}

func TestSearchRecipeIDsParsesAndDedupes(t *testing.T) {
	client := &fakeIndexClient{hits: []Hit{
		{ID: "recipe:5", Score: 0.9},
		{ID: "recipe:2", Score: 0.8},
		{ID: "recipe:5", Score: 0.7},
		{ID: "garbage", Score: 0.6},
		{ID: "recipe:9", Score: 0.5},
	}}
	service := NewSearchServiceWithClient(enabledConfig(), nil, client)

	ids, err := service.SearchRecipeIDs(context.Background(), "soup", 100)
	require.NoError(t, err)
	assert.Equal(t, []uint{5, 2, 9}, ids)
}

func TestUpsertRecipePublished(t *testing.T) {
	db := newTestDB(t)
	recipe := seedRecipe(t, db, "Chicken Soup", true)

	client := &fakeIndexClient{}
	service := NewSearchServiceWithClient(enabledConfig(), NewSearchRepository(db), client)

	service.UpsertRecipe(context.Background(), recipe.ID)

	require.Len(t, client.upserted, 1)
	assert.Equal(t, RecipeDocumentID(recipe.ID), client.upserted[0].ID)
	assert.Equal(t, "Chicken Soup", client.upserted[0].Content.Title)
	assert.Empty(t, client.deletedIDs)
}

func TestUpsertRecipeUnpublishedDeletesDocument(t *testing.T) {
	db := newTestDB(t)
	draft := seedRecipe(t, db, "Secret Draft", false)

	client := &fakeIndexClient{}
	service := NewSearchServiceWithClient(enabledConfig(), NewSearchRepository(db), client)

	service.UpsertRecipe(context.Background(), draft.ID)

	assert.Empty(t, client.upserted)
	assert.Equal(t, []string{RecipeDocumentID(draft.ID)}, client.deletedIDs)
}

func TestUpsertRecipeMissingDeletesDocument(t *testing.T) {
	db := newTestDB(t)
	client := &fakeIndexClient{}
	service := NewSearchServiceWithClient(enabledConfig(), NewSearchRepository(db), client)

	service.UpsertRecipe(context.Background(), 999)

	assert.Empty(t, client.upserted)
	assert.Equal(t, []string{"recipe:999"}, client.deletedIDs)
}

func TestUpsertRecipeDisabledNoop(t *testing.T) {
	client := &fakeIndexClient{}
	service := NewSearchServiceWithClient(Config{}, nil, client)

	service.UpsertRecipe(context.Background(), 1)
	service.DeleteRecipe(context.Background(), 1)

	assert.Empty(t, client.upserted)
	assert.Empty(t, client.deletedIDs)
}

func TestBackfill(t *testing.T) {
	db := newTestDB(t)
	first := seedRecipe(t, db, "First", true)
	seedRecipe(t, db, "Draft", false)
	seedRecipe(t, db, "Second", true)

	client := &fakeIndexClient{}
	service := NewSearchServiceWithClient(enabledConfig(), NewSearchRepository(db), client)

	processed, err := service.Backfill(context.Background(), 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, processed)
	assert.Len(t, client.upserted, 2)

	client.upserted = nil
	processed, err = service.Backfill(context.Background(), first.ID, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, processed)
	assert.Len(t, client.upserted, 1)
}

func TestBackfillDisabled(t *testing.T) {
	service := NewSearchService(Config{}, nil)
	_, err := service.Backfill(context.Background(), 0, 0)
	assert.ErrorIs(t, err, ErrSearchUnavailable)
}
