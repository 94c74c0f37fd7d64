package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/estate-service/internal/api/dto"
	"github.com/spec-kit/estate-service/internal/auth"
	"github.com/spec-kit/estate-service/internal/domain"
	"github.com/spec-kit/estate-service/internal/service"
	apperrors "github.com/spec-kit/estate-service/pkg/util"
)

// PropertiesHandler manages the property catalog endpoints.
type PropertiesHandler struct {
	catalog *service.CatalogService
}

// NewPropertiesHandler constructs handler.
func NewPropertiesHandler(catalog *service.CatalogService) *PropertiesHandler {
	return &PropertiesHandler{catalog: catalog}
}

// Get GET /properties?id=&ownerId=. Public. With id set it returns a
// single object, otherwise the recent feed as an array.
func (h *PropertiesHandler) Get(c *fiber.Ctx) error {
	if id := c.Query("id"); id != "" {
		property, err := h.catalog.Get(c.Context(), id)
		if err != nil {
			return err
		}
		return c.JSON(propertyResponse(property))
	}

	filter := service.PropertyListFilter{}
	if ownerID := c.Query("ownerId"); ownerID != "" {
		filter.OwnerID = &ownerID
	}
	feed, err := h.catalog.List(c.Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(propertyResponses(feed))
}

// Create POST /properties. Bearer token required.
func (h *PropertiesHandler) Create(c *fiber.Ctx) error {
	var req dto.CreatePropertyRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewInvalidInput("invalid payload", nil)
	}

	property, err := h.catalog.Create(c.Context(), auth.ActorFromContext(c), service.PropertyCreateInput{
		Title:    req.Title,
		City:     req.City,
		Price:    req.Price,
		ImageURL: req.Image,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON([]dto.PropertyResponse{propertyResponse(property)})
}

// Update PUT /properties?id=. Owner-only, partial fields.
func (h *PropertiesHandler) Update(c *fiber.Ctx) error {
	id := c.Query("id")
	if id == "" {
		return apperrors.NewInvalidInput("id query parameter required", nil)
	}
	var req dto.UpdatePropertyRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewInvalidInput("invalid payload", nil)
	}

	property, err := h.catalog.Update(c.Context(), auth.ActorFromContext(c), id, service.PropertyUpdateInput{
		Title:    req.Title,
		City:     req.City,
		Price:    req.Price,
		ImageURL: req.Image,
	})
	if err != nil {
		return err
	}
	return c.JSON([]dto.PropertyResponse{propertyResponse(property)})
}

// Delete DELETE /properties?id=. Owner-only; inquiries cascade.
func (h *PropertiesHandler) Delete(c *fiber.Ctx) error {
	id := c.Query("id")
	if id == "" {
		return apperrors.NewInvalidInput("id query parameter required", nil)
	}
	if err := h.catalog.Delete(c.Context(), auth.ActorFromContext(c), id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true})
}

func propertyResponse(property *domain.Property) dto.PropertyResponse {
	return dto.PropertyResponse{
		ID:        property.ID,
		Owner:     property.OwnerID,
		Title:     property.Title,
		City:      property.City,
		Price:     property.Price,
		Image:     property.ImageURL,
		CreatedAt: property.CreatedAt,
	}
}

func propertyResponses(properties []domain.Property) []dto.PropertyResponse {
	items := make([]dto.PropertyResponse, 0, len(properties))
	for i := range properties {
		items = append(items, propertyResponse(&properties[i]))
	}
	return items
}
