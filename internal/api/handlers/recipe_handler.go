package handlers

import (
	"Recipe-Platform-Backend/domain"
	"Recipe-Platform-Backend/internal/api/presenters"
	"Recipe-Platform-Backend/internal/utils"
	"Recipe-Platform-Backend/pkg/recipe"
	"errors"
	"io"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

type RecipeHandler struct {
	recipeService recipe.RecipeService
	adminService  recipe.RecipeAdminService
}

func NewRecipeHandler(recipeService recipe.RecipeService, adminService recipe.RecipeAdminService) *RecipeHandler {
	return &RecipeHandler{
		recipeService: recipeService,
		adminService:  adminService,
	}
}

func recipeIDParam(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, domain.ErrParseID
	}
	return uint(id), nil
}

func (h *RecipeHandler) ListRecipes(c *fiber.Ctx) error {
	filters := new(domain.RecipeFilters)
	if err := c.QueryParser(filters); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetRecipes, err)
	}
	if err := utils.Validate.Struct(filters); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusUnprocessableEntity, domain.MessageFailedGetRecipes, err)
	}

	response, err := h.recipeService.ListRecipes(c.Context(), *filters, viewerID(c))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetRecipes, err)
	}
	return presenters.SuccessResponse(c, response, fiber.StatusOK, domain.MessageSuccessGetRecipes)
}

func (h *RecipeHandler) GetRecipeDetail(c *fiber.Ctx) error {
	response, err := h.recipeService.GetRecipeDetail(c.Context(), c.Params("slug"), viewerID(c))
	if err != nil {
		if errors.Is(err, domain.ErrRecipeNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetRecipeDetail, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetRecipeDetail, err)
	}
	return presenters.SuccessResponse(c, response, fiber.StatusOK, domain.MessageSuccessGetRecipeDetail)
}

func (h *RecipeHandler) ListBookmarks(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", domain.RecipeListDefaultLimit)
	offset := c.QueryInt("offset", 0)

	response, err := h.recipeService.ListBookmarks(c.Context(), viewerID(c), limit, offset)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetBookmarks, err)
	}
	return presenters.SuccessResponse(c, response, fiber.StatusOK, domain.MessageSuccessGetBookmarks)
}

func (h *RecipeHandler) ToggleBookmark(c *fiber.Ctx) error {
	recipeID, err := recipeIDParam(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedToggleBookmark, err)
	}

	response, err := h.recipeService.ToggleBookmark(c.Context(), viewerID(c), recipeID)
	if err != nil {
		if errors.Is(err, domain.ErrRecipeNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedToggleBookmark, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedToggleBookmark, err)
	}
	return presenters.SuccessResponse(c, response, fiber.StatusOK, domain.MessageSuccessToggleBookmark)
}

func (h *RecipeHandler) CreateComment(c *fiber.Ctx) error {
	recipeID, err := recipeIDParam(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateComment, err)
	}

	req := new(domain.CommentCreateRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := utils.Validate.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusUnprocessableEntity, domain.MessageFailedCreateComment, err)
	}

	response, err := h.recipeService.CreateComment(c.Context(), viewerID(c), recipeID, req)
	if err != nil {
		if errors.Is(err, domain.ErrRecipeNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedCreateComment, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedCreateComment, err)
	}
	return presenters.SuccessResponse(c, response, fiber.StatusCreated, domain.MessageSuccessCreateComment)
}

func (h *RecipeHandler) UpsertRating(c *fiber.Ctx) error {
	recipeID, err := recipeIDParam(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpsertRating, err)
	}

	req := new(domain.RatingCreateRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := utils.Validate.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusUnprocessableEntity, domain.MessageFailedUpsertRating, err)
	}

	response, err := h.recipeService.UpsertRating(c.Context(), viewerID(c), recipeID, req)
	if err != nil {
		if errors.Is(err, domain.ErrRecipeNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedUpsertRating, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedUpsertRating, err)
	}
	return presenters.SuccessResponse(c, response, fiber.StatusOK, domain.MessageSuccessUpsertRating)
}

// Staff endpoints.

func (h *RecipeHandler) parseSaveRequest(c *fiber.Ctx) (*domain.SaveRecipeRequest, error) {
	req := new(domain.SaveRecipeRequest)
	if err := c.BodyParser(req); err != nil {
		return nil, err
	}
	if err := utils.Validate.Struct(req); err != nil {
		return nil, err
	}
	return req, nil
}

func (h *RecipeHandler) CreateRecipe(c *fiber.Ctx) error {
	req, err := h.parseSaveRequest(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusUnprocessableEntity, domain.MessageFailedSaveRecipe, err)
	}

	response, err := h.adminService.CreateRecipe(c.Context(), req)
	if err != nil {
		return saveRecipeError(c, err)
	}
	return presenters.SuccessResponse(c, response, fiber.StatusCreated, domain.MessageSuccessSaveRecipe)
}

func (h *RecipeHandler) UpdateRecipe(c *fiber.Ctx) error {
	recipeID, err := recipeIDParam(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSaveRecipe, err)
	}
	req, err := h.parseSaveRequest(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusUnprocessableEntity, domain.MessageFailedSaveRecipe, err)
	}

	response, err := h.adminService.UpdateRecipe(c.Context(), recipeID, req)
	if err != nil {
		return saveRecipeError(c, err)
	}
	return presenters.SuccessResponse(c, response, fiber.StatusOK, domain.MessageSuccessSaveRecipe)
}

func saveRecipeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrRecipeNotFound):
		return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedSaveRecipe, err)
	case errors.Is(err, domain.ErrStepOrderDuplicate), errors.Is(err, domain.ErrIngredientRepeated):
		return presenters.ErrorResponse(c, fiber.StatusUnprocessableEntity, domain.MessageFailedSaveRecipe, err)
	default:
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedSaveRecipe, err)
	}
}

func (h *RecipeHandler) DeleteRecipe(c *fiber.Ctx) error {
	recipeID, err := recipeIDParam(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteRecipe, err)
	}

	if err := h.adminService.DeleteRecipe(c.Context(), recipeID); err != nil {
		if errors.Is(err, domain.ErrRecipeNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedDeleteRecipe, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedDeleteRecipe, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteRecipe)
}

func (h *RecipeHandler) UploadRecipeImage(c *fiber.Ctx) error {
	recipeID, err := recipeIDParam(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadImage, err)
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadImage, domain.ErrInvalidImage)
	}
	file, err := fileHeader.Open()
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadImage, domain.ErrInvalidImage)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadImage, domain.ErrInvalidImage)
	}

	response, err := h.adminService.UploadRecipeImage(c.Context(), recipeID, fileHeader.Filename, data)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecipeNotFound):
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedUploadImage, err)
		case errors.Is(err, domain.ErrInvalidImage):
			return presenters.ErrorResponse(c, fiber.StatusUnprocessableEntity, domain.MessageFailedUploadImage, err)
		default:
			return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedUploadImage, err)
		}
	}
	return presenters.SuccessResponse(c, response, fiber.StatusOK, domain.MessageSuccessUploadImage)
}
