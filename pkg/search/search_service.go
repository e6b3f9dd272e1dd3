package search

import (
	"Recipe-Platform-Backend/internal/utils"
	"context"
	"errors"
	"log"
	"strings"
	"sync"
)

// ErrSearchUnavailable reports that the external index could not serve a
// query, either because it is disabled or because the request failed.
// Callers fall back to database search when they see it.
var ErrSearchUnavailable = errors.New("search index unavailable")

type (
	SearchService interface {
		Enabled() bool
		// UpsertRecipe refreshes the index document for a recipe. A missing
		// or unpublished recipe turns the upsert into a delete. Index
		// failures are logged and never propagated.
		UpsertRecipe(ctx context.Context, recipeID uint)
		DeleteRecipe(ctx context.Context, recipeID uint)
		// SearchRecipeIDs returns ranked recipe ids for a query. A blank
		// query yields an empty result without consulting the index.
		SearchRecipeIDs(ctx context.Context, query string, limit int) ([]uint, error)
		// Backfill reindexes either a single recipe or every published
		// recipe up to limit, returning the number of documents processed.
		Backfill(ctx context.Context, recipeID uint, limit int) (int, error)
	}

	Config struct {
		Enabled   bool
		RestURL   string
		RestToken string
		IndexName string
	}

	searchService struct {
		config     Config
		repository SearchRepository

		clientOnce sync.Once
		client     IndexClient
	}
)

// LoadConfigFromEnv reads the index settings from the application config.
func LoadConfigFromEnv() Config {
	return Config{
		Enabled:   strings.EqualFold(utils.GetConfig("UPSTASH_SEARCH_ENABLED"), "true"),
		RestURL:   utils.GetConfig("UPSTASH_SEARCH_REST_URL"),
		RestToken: utils.GetConfig("UPSTASH_SEARCH_REST_TOKEN"),
		IndexName: utils.GetConfig("UPSTASH_SEARCH_INDEX"),
	}
}

func NewSearchService(config Config, repository SearchRepository) SearchService {
	return &searchService{config: config, repository: repository}
}

// NewSearchServiceWithClient wires an explicit index client, bypassing the
// REST client construction. Used by tests and custom transports.
func NewSearchServiceWithClient(config Config, repository SearchRepository, client IndexClient) SearchService {
	s := &searchService{config: config, repository: repository}
	s.clientOnce.Do(func() { s.client = client })
	return s
}

func (s *searchService) Enabled() bool {
	return s.config.Enabled && s.config.RestURL != "" && s.config.RestToken != ""
}

func (s *searchService) indexClient() IndexClient {
	s.clientOnce.Do(func() {
		s.client = NewUpstashClient(s.config.RestURL, s.config.RestToken, s.config.IndexName)
	})
	return s.client
}

func (s *searchService) UpsertRecipe(ctx context.Context, recipeID uint) {
	if !s.Enabled() {
		return
	}

	recipe, err := s.repository.GetPublishedRecipe(ctx, recipeID)
	if err != nil {
		log.Printf("search: load recipe %d for indexing: %v", recipeID, err)
		return
	}
	if recipe == nil {
		s.DeleteRecipe(ctx, recipeID)
		return
	}

	document := BuildRecipeDocument(recipe)
	if err := s.indexClient().Upsert(ctx, []Document{document}); err != nil {
		log.Printf("search: upsert recipe %d: %v", recipeID, err)
	}
}

func (s *searchService) DeleteRecipe(ctx context.Context, recipeID uint) {
	if !s.Enabled() {
		return
	}
	if err := s.indexClient().Delete(ctx, []string{RecipeDocumentID(recipeID)}); err != nil {
		log.Printf("search: delete recipe %d: %v", recipeID, err)
	}
}

func (s *searchService) SearchRecipeIDs(ctx context.Context, query string, limit int) ([]uint, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []uint{}, nil
	}
	if !s.Enabled() {
		return nil, ErrSearchUnavailable
	}

	hits, err := s.indexClient().Search(ctx, query, limit)
	if err != nil {
		log.Printf("search: query %q: %v", query, err)
		return nil, ErrSearchUnavailable
	}

	ids := make([]uint, 0, len(hits))
	seen := make(map[uint]struct{}, len(hits))
	for _, hit := range hits {
		id, ok := ParseRecipeID(hit.ID)
		if !ok {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids, nil
}

func (s *searchService) Backfill(ctx context.Context, recipeID uint, limit int) (int, error) {
	if !s.Enabled() {
		return 0, ErrSearchUnavailable
	}

	var ids []uint
	if recipeID != 0 {
		ids = []uint{recipeID}
	} else {
		var err error
		ids, err = s.repository.PublishedRecipeIDs(ctx, limit)
		if err != nil {
			return 0, err
		}
	}

	for _, id := range ids {
		s.UpsertRecipe(ctx, id)
	}
	return len(ids), nil
}
