package recipe

import (
	"Recipe-Platform-Backend/domain"
	"Recipe-Platform-Backend/entities"
	"Recipe-Platform-Backend/internal/utils"
	"Recipe-Platform-Backend/internal/utils/storage"
	"Recipe-Platform-Backend/pkg/imaging"
	"context"
	"strings"
)

const (
	// rankedFetchLimit caps how many ranked ids one index query may return.
	rankedFetchLimit = 1000
	// maxRankedOffset is the deepest page the ranked path can serve; beyond
	// it the database fallback takes over.
	maxRankedOffset = 1000
)

type (
	// RecipeIndex is the slice of the search service the listing and
	// mutation flows depend on.
	RecipeIndex interface {
		SearchRecipeIDs(ctx context.Context, query string, limit int) ([]uint, error)
		UpsertRecipe(ctx context.Context, recipeID uint)
		DeleteRecipe(ctx context.Context, recipeID uint)
	}

	// Notifier sends a templated email without ever failing the caller.
	Notifier interface {
		Send(ctx context.Context, templateKey string, to []string, data map[string]any)
	}

	RecipeService interface {
		ListRecipes(ctx context.Context, filters domain.RecipeFilters, viewerID uint) (*domain.RecipeListResponse, error)
		GetRecipeDetail(ctx context.Context, slug string, viewerID uint) (*domain.RecipeDetail, error)
		ListBookmarks(ctx context.Context, userID uint, limit, offset int) (*domain.RecipeListResponse, error)
		ToggleBookmark(ctx context.Context, userID, recipeID uint) (*domain.BookmarkToggleResponse, error)
		CreateComment(ctx context.Context, userID, recipeID uint, req *domain.CommentCreateRequest) (*domain.CommentResponse, error)
		UpsertRating(ctx context.Context, userID, recipeID uint, req *domain.RatingCreateRequest) (*domain.RatingResponse, error)
	}

	recipeService struct {
		repository RecipeRepository
		index      RecipeIndex
		store      storage.ObjectStorage
		notifier   Notifier
	}
)

func NewRecipeService(repository RecipeRepository, index RecipeIndex, store storage.ObjectStorage, notifier Notifier) RecipeService {
	return &recipeService{
		repository: repository,
		index:      index,
		store:      store,
		notifier:   notifier,
	}
}

// ListRecipes resolves a page of published recipes. With a text query it
// first asks the external index for ranked ids and serves the page as a
// window over that ranking; when the index is unavailable, or the page is
// deeper than the ranking covers, it falls back to a database substring
// search ordered by recency.
func (s *recipeService) ListRecipes(ctx context.Context, filters domain.RecipeFilters, viewerID uint) (*domain.RecipeListResponse, error) {
	filters.Normalize()

	if filters.Search != "" && filters.Offset < maxRankedOffset {
		rankedIDs, err := s.index.SearchRecipeIDs(ctx, filters.Search, rankedFetchLimit)
		if err == nil {
			return s.listRanked(ctx, rankedIDs, filters, viewerID)
		}
	}

	recipes, total, err := s.repository.SearchRecipes(ctx, filters)
	if err != nil {
		return nil, err
	}
	items, err := s.buildSummaries(ctx, recipes, viewerID)
	if err != nil {
		return nil, err
	}
	return &domain.RecipeListResponse{Total: total, Items: items}, nil
}

func (s *recipeService) listRanked(ctx context.Context, rankedIDs []uint, filters domain.RecipeFilters, viewerID uint) (*domain.RecipeListResponse, error) {
	total, err := s.repository.CountRecipesByIDs(ctx, rankedIDs, filters)
	if err != nil {
		return nil, err
	}

	if filters.Offset >= len(rankedIDs) {
		return &domain.RecipeListResponse{Total: total, Items: []domain.RecipeSummary{}}, nil
	}
	end := filters.Offset + filters.Limit
	if end > len(rankedIDs) {
		end = len(rankedIDs)
	}
	window := rankedIDs[filters.Offset:end]

	recipes, err := s.repository.GetRecipesByIDs(ctx, window, filters)
	if err != nil {
		return nil, err
	}
	items, err := s.buildSummaries(ctx, recipes, viewerID)
	if err != nil {
		return nil, err
	}
	return &domain.RecipeListResponse{Total: total, Items: items}, nil
}

func (s *recipeService) buildSummaries(ctx context.Context, recipes []*entities.Recipe, viewerID uint) ([]domain.RecipeSummary, error) {
	ids := make([]uint, 0, len(recipes))
	for _, recipe := range recipes {
		ids = append(ids, recipe.ID)
	}

	stats, err := s.repository.RatingStats(ctx, ids)
	if err != nil {
		return nil, err
	}
	bookmarked, err := s.repository.BookmarkedRecipeIDs(ctx, viewerID, ids)
	if err != nil {
		return nil, err
	}

	items := make([]domain.RecipeSummary, 0, len(recipes))
	for _, recipe := range recipes {
		items = append(items, s.buildSummary(recipe, stats, bookmarked))
	}
	return items, nil
}

func (s *recipeService) buildSummary(recipe *entities.Recipe, stats map[uint]RatingStat, bookmarked map[uint]bool) domain.RecipeSummary {
	summary := domain.RecipeSummary{
		ID:              recipe.ID,
		Title:           recipe.Title,
		Slug:            recipe.Slug,
		Difficulty:      recipe.Difficulty,
		Images:          buildImageSet(s.store, recipe.ImagePath),
		PreparationTime: recipe.PreparationTime,
		CookingTime:     recipe.CookingTime,
		Servings:        recipe.Servings,
		PublishedAt:     recipe.PublishedAt,
		Tags:            toLookups(recipe.Tags, func(t entities.Tag) domain.SimpleLookup {
			return domain.SimpleLookup{ID: t.ID, Name: t.Name, Slug: t.Slug}
		}),
		IsBookmarked: bookmarked[recipe.ID],
	}
	if stat, ok := stats[recipe.ID]; ok {
		average := stat.Average
		summary.RatingAverage = &average
		summary.RatingCount = stat.Count
	}
	return summary
}

func (s *recipeService) GetRecipeDetail(ctx context.Context, slug string, viewerID uint) (*domain.RecipeDetail, error) {
	recipe, err := s.repository.GetRecipeBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if !recipe.IsPublished() {
		return nil, domain.ErrRecipeNotFound
	}
	return s.buildDetail(ctx, recipe, viewerID)
}

func (s *recipeService) buildDetail(ctx context.Context, recipe *entities.Recipe, viewerID uint) (*domain.RecipeDetail, error) {
	items, err := s.buildSummaries(ctx, []*entities.Recipe{recipe}, viewerID)
	if err != nil {
		return nil, err
	}

	detail := &domain.RecipeDetail{
		RecipeSummary:   items[0],
		Description:     recipe.Description,
		DescriptionHTML: recipe.DescriptionHTML,
		VideoURL:        recipe.VideoURL,
		Categories: toLookups(recipe.Categories, func(c entities.RecipeCategory) domain.SimpleLookup {
			return domain.SimpleLookup{ID: c.ID, Name: c.Name, Slug: c.Slug}
		}),
		MealTypes: toLookups(recipe.MealTypes, func(m entities.MealType) domain.SimpleLookup {
			return domain.SimpleLookup{ID: m.ID, Name: m.Name, Slug: m.Slug}
		}),
		Cuisines: toLookups(recipe.Cuisines, func(c entities.Cuisine) domain.SimpleLookup {
			return domain.SimpleLookup{ID: c.ID, Name: c.Name, Slug: c.Slug}
		}),
		CookingMethods: toLookups(recipe.CookingMethods, func(m entities.CookingMethod) domain.SimpleLookup {
			return domain.SimpleLookup{ID: m.ID, Name: m.Name, Slug: m.Slug}
		}),
		Ingredients: make([]domain.RecipeIngredientItem, 0, len(recipe.Ingredients)),
		Steps:       make([]domain.RecipeStepItem, 0, len(recipe.Steps)),
		Comments:    []domain.CommentResponse{},
	}

	for _, ri := range recipe.Ingredients {
		item := domain.RecipeIngredientItem{
			ID:     ri.ID,
			Amount: ri.Amount,
			Note:   ri.Note,
		}
		if ri.Ingredient != nil {
			item.Name = ri.Ingredient.Name
			item.Slug = ri.Ingredient.Slug
		}
		if ri.Unit != nil {
			item.Unit = domain.SimpleLookup{ID: ri.Unit.ID, Name: ri.Unit.ShortName}
		}
		detail.Ingredients = append(detail.Ingredients, item)
	}

	for _, step := range recipe.Steps {
		detail.Steps = append(detail.Steps, domain.RecipeStepItem{
			ID:              step.ID,
			Order:           step.Order,
			Title:           step.Title,
			Description:     step.Description,
			DescriptionHTML: step.DescriptionHTML,
			Duration:        step.Duration,
			VideoURL:        step.VideoURL,
			Images:          buildImageSet(s.store, step.ImagePath),
		})
	}

	comments, err := s.repository.ListComments(ctx, recipe.ID)
	if err != nil {
		return nil, err
	}
	for _, comment := range comments {
		// Pending comments stay private to their author.
		if !comment.IsApproved && comment.UserID != viewerID {
			continue
		}
		detail.Comments = append(detail.Comments, domain.CommentResponse{
			ID:         comment.ID,
			Content:    comment.Content,
			UserName:   comment.User.DisplayName(),
			IsApproved: comment.IsApproved,
			CreatedAt:  comment.CreatedAt,
		})
	}

	if viewerID != 0 {
		rating, err := s.repository.GetUserRating(ctx, viewerID, recipe.ID)
		if err != nil {
			return nil, err
		}
		detail.UserRating = rating
	}
	return detail, nil
}

func (s *recipeService) ListBookmarks(ctx context.Context, userID uint, limit, offset int) (*domain.RecipeListResponse, error) {
	filters := domain.RecipeFilters{Limit: limit, Offset: offset}
	filters.Normalize()

	recipes, total, err := s.repository.BookmarkedRecipes(ctx, userID, filters.Limit, filters.Offset)
	if err != nil {
		return nil, err
	}
	items, err := s.buildSummaries(ctx, recipes, userID)
	if err != nil {
		return nil, err
	}
	return &domain.RecipeListResponse{Total: total, Items: items}, nil
}

func (s *recipeService) ToggleBookmark(ctx context.Context, userID, recipeID uint) (*domain.BookmarkToggleResponse, error) {
	if _, err := s.repository.GetRecipeByID(ctx, recipeID); err != nil {
		return nil, err
	}
	isBookmarked, err := s.repository.ToggleBookmark(ctx, userID, recipeID)
	if err != nil {
		return nil, err
	}
	return &domain.BookmarkToggleResponse{IsBookmarked: isBookmarked}, nil
}

func (s *recipeService) CreateComment(ctx context.Context, userID, recipeID uint, req *domain.CommentCreateRequest) (*domain.CommentResponse, error) {
	recipe, err := s.repository.GetRecipeByID(ctx, recipeID)
	if err != nil {
		return nil, err
	}
	if !recipe.IsPublished() {
		return nil, domain.ErrRecipeNotFound
	}

	comment := &entities.Comment{
		UserID:   userID,
		RecipeID: recipeID,
		Content:  strings.TrimSpace(req.Content),
	}
	if err := s.repository.CreateComment(ctx, comment); err != nil {
		return nil, err
	}

	if recipients := commentRecipients(); len(recipients) > 0 {
		s.notifier.Send(ctx, domain.TemplateCommentNotification, recipients, map[string]any{
			"recipe_title": recipe.Title,
			"recipe_slug":  recipe.Slug,
			"comment":      comment.Content,
		})
	}

	return &domain.CommentResponse{
		ID:         comment.ID,
		Content:    comment.Content,
		IsApproved: comment.IsApproved,
		CreatedAt:  comment.CreatedAt,
	}, nil
}

func commentRecipients() []string {
	raw := utils.GetConfig("COMMENT_NOTIFICATION_RECIPIENTS")
	parts := strings.Split(raw, ",")
	recipients := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			recipients = append(recipients, trimmed)
		}
	}
	return recipients
}

func (s *recipeService) UpsertRating(ctx context.Context, userID, recipeID uint, req *domain.RatingCreateRequest) (*domain.RatingResponse, error) {
	recipe, err := s.repository.GetRecipeByID(ctx, recipeID)
	if err != nil {
		return nil, err
	}
	if !recipe.IsPublished() {
		return nil, domain.ErrRecipeNotFound
	}
	if err := s.repository.UpsertRating(ctx, userID, recipeID, req.Value); err != nil {
		return nil, err
	}
	return &domain.RatingResponse{Value: req.Value}, nil
}

func toLookups[T any](values []T, convert func(T) domain.SimpleLookup) []domain.SimpleLookup {
	lookups := make([]domain.SimpleLookup, 0, len(values))
	for _, value := range values {
		lookups = append(lookups, convert(value))
	}
	return lookups
}

// buildImageSet resolves the stored base key plus its derived variants into
// public URLs, grouped by size then codec.
func buildImageSet(store storage.ObjectStorage, imagePath string) *domain.ImageSet {
	if imagePath == "" {
		return nil
	}

	set := &domain.ImageSet{Original: store.PublicURL(imagePath)}
	variantFor := func(name string) *domain.ImageVariant {
		switch name {
		case "thumb":
			if set.Thumb == nil {
				set.Thumb = &domain.ImageVariant{}
			}
			return set.Thumb
		case "small":
			if set.Small == nil {
				set.Small = &domain.ImageVariant{}
			}
			return set.Small
		case "medium":
			if set.Medium == nil {
				set.Medium = &domain.ImageVariant{}
			}
			return set.Medium
		case "large":
			if set.Large == nil {
				set.Large = &domain.ImageVariant{}
			}
			return set.Large
		}
		return nil
	}

	for _, spec := range imaging.Variants {
		variant := variantFor(spec.Name)
		if variant == nil {
			continue
		}
		url := store.PublicURL(spec.VariantKey(imagePath))
		switch spec.Format {
		case imaging.FormatAVIF:
			variant.Avif = url
		case imaging.FormatWebP:
			variant.Webp = url
		}
	}
	return set
}
