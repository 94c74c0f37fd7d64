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

// InquiriesHandler manages the inquiry routing endpoints.
type InquiriesHandler struct {
	inquiries *service.InquiryService
}

// NewInquiriesHandler constructs handler.
func NewInquiriesHandler(inquiries *service.InquiryService) *InquiriesHandler {
	return &InquiriesHandler{inquiries: inquiries}
}

// List GET /inquiries?propertyId=|userId=. Bearer token required.
// Without a filter it returns everything the caller is party to.
func (h *InquiriesHandler) List(c *fiber.Ctx) error {
	actor := auth.ActorFromContext(c)

	var (
		items []domain.Inquiry
		err   error
	)
	switch {
	case c.Query("propertyId") != "":
		items, err = h.inquiries.ListForProperty(c.Context(), actor, c.Query("propertyId"))
	case c.Query("userId") != "":
		items, err = h.inquiries.ListForUser(c.Context(), actor, c.Query("userId"))
	default:
		items, err = h.inquiries.ListForActor(c.Context(), actor)
	}
	if err != nil {
		return err
	}
	return c.JSON(inquiryResponses(items))
}

// Create POST /inquiries. Bearer token required; self-inquiry rejected.
func (h *InquiriesHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateInquiryRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewInvalidInput("invalid payload", nil)
	}
	if req.Property == "" {
		return apperrors.NewInvalidInput("property required", nil)
	}

	inquiry, err := h.inquiries.Create(c.Context(), auth.ActorFromContext(c), req.Property, req.Message)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON([]dto.InquiryResponse{inquiryResponse(inquiry)})
}

// Delete DELETE /inquiries?id=. Sender or property owner only.
func (h *InquiriesHandler) Delete(c *fiber.Ctx) error {
	id := c.Query("id")
	if id == "" {
		return apperrors.NewInvalidInput("id query parameter required", nil)
	}
	if err := h.inquiries.Delete(c.Context(), auth.ActorFromContext(c), id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true})
}

func inquiryResponse(inquiry *domain.Inquiry) dto.InquiryResponse {
	return dto.InquiryResponse{
		ID:        inquiry.ID,
		Property:  inquiry.PropertyID,
		Sender:    inquiry.SenderID,
		Message:   inquiry.Message,
		CreatedAt: inquiry.CreatedAt,
	}
}

func inquiryResponses(inquiries []domain.Inquiry) []dto.InquiryResponse {
	items := make([]dto.InquiryResponse, 0, len(inquiries))
	for i := range inquiries {
		items = append(items, inquiryResponse(&inquiries[i]))
	}
	return items
}
