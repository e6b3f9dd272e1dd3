package handlers

import (
	"Recipe-Platform-Backend/domain"
	"Recipe-Platform-Backend/internal/api/presenters"
	"Recipe-Platform-Backend/pkg/sitecontent"
	"errors"

	"github.com/gofiber/fiber/v2"
)

type SiteContentHandler struct {
	siteContentService sitecontent.SiteContentService
}

func NewSiteContentHandler(siteContentService sitecontent.SiteContentService) *SiteContentHandler {
	return &SiteContentHandler{siteContentService: siteContentService}
}

func (h *SiteContentHandler) GetHeader(c *fiber.Ctx) error {
	response, err := h.siteContentService.GetHeader(c.Context())
	if err != nil {
		if errors.Is(err, domain.ErrNoActiveHeader) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetHeader, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetHeader, err)
	}
	return presenters.SuccessResponse(c, response, fiber.StatusOK, domain.MessageSuccessGetHeader)
}

func (h *SiteContentHandler) GetFooter(c *fiber.Ctx) error {
	response, err := h.siteContentService.GetFooter(c.Context())
	if err != nil {
		if errors.Is(err, domain.ErrNoActiveFooter) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetFooter, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetFooter, err)
	}
	return presenters.SuccessResponse(c, response, fiber.StatusOK, domain.MessageSuccessGetFooter)
}

func (h *SiteContentHandler) ListHeroes(c *fiber.Ctx) error {
	response, err := h.siteContentService.ListHeroes(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetHeroes, err)
	}
	return presenters.SuccessResponse(c, response, fiber.StatusOK, domain.MessageSuccessGetHeroes)
}
