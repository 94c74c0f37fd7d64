package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/estate-service/internal/authz"
	"github.com/spec-kit/estate-service/internal/domain"
	"github.com/spec-kit/estate-service/internal/events"
	"github.com/spec-kit/estate-service/internal/repository"
	apperrors "github.com/spec-kit/estate-service/pkg/util"
)

// InquiryService routes inquiries between senders and property owners.
type InquiryService struct {
	inquiries  repository.InquiryRepository
	properties repository.PropertyRepository
	dispatcher events.Dispatcher
}

// InquiryDependencies bundles collaborators for the inquiry service.
type InquiryDependencies struct {
	InquiryRepo  repository.InquiryRepository
	PropertyRepo repository.PropertyRepository
	Dispatcher   events.Dispatcher
}

// NewInquiryService constructs the service.
func NewInquiryService(deps InquiryDependencies) *InquiryService {
	return &InquiryService{
		inquiries:  deps.InquiryRepo,
		properties: deps.PropertyRepo,
		dispatcher: deps.Dispatcher,
	}
}

// Create records an inquiry from the actor about a property. Owners
// cannot inquire about their own properties; that condition carries a
// distinct code so clients know retrying is pointless.
func (s *InquiryService) Create(ctx context.Context, actor *string, propertyID, message string) (*domain.Inquiry, error) {
	if actor == nil {
		return nil, apperrors.NewUnauthorized("authentication required")
	}

	property, err := s.properties.GetByID(ctx, propertyID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("property", map[string]any{"id": propertyID})
		}
		return nil, apperrors.NewStoreError(err)
	}

	message = strings.TrimSpace(message)
	if message == "" {
		return nil, apperrors.NewInvalidInput("message required", nil)
	}
	if property.OwnerID == *actor {
		return nil, apperrors.NewSelfInquiry()
	}

	inquiry := &domain.Inquiry{
		ID:              uuid.NewString(),
		PropertyID:      property.ID,
		SenderID:        *actor,
		Message:         message,
		PropertyOwnerID: property.OwnerID,
	}
	if err := s.inquiries.Create(ctx, inquiry); err != nil {
		return nil, apperrors.NewStoreError(err)
	}

	s.publish(ctx, events.EventInquiryCreated, *actor, events.InquiryPayload{
		InquiryID:       inquiry.ID,
		PropertyID:      inquiry.PropertyID,
		SenderID:        inquiry.SenderID,
		PropertyOwnerID: inquiry.PropertyOwnerID,
		MessagePreview:  preview(inquiry.Message, 120),
	})
	return inquiry, nil
}

// ListForProperty returns a property's inquiries, newest first.
// Listing a property's inquiries is owner-scoped, the same rule the
// contract applies to property writes.
func (s *InquiryService) ListForProperty(ctx context.Context, actor *string, propertyID string) ([]domain.Inquiry, error) {
	if actor == nil {
		return nil, apperrors.NewUnauthorized("authentication required")
	}

	property, err := s.properties.GetByID(ctx, propertyID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("property", map[string]any{"id": propertyID})
		}
		return nil, apperrors.NewStoreError(err)
	}
	if err := authz.Decide(actor, authz.ActionWrite, authz.PropertyFor(property)); err != nil {
		return nil, err
	}

	inquiries, err := s.inquiries.ListByProperty(ctx, propertyID)
	if err != nil {
		return nil, apperrors.NewStoreError(err)
	}
	return inquiries, nil
}

// ListForUser returns inquiries sent by userID; callers may only read
// their own.
func (s *InquiryService) ListForUser(ctx context.Context, actor *string, userID string) ([]domain.Inquiry, error) {
	if actor == nil {
		return nil, apperrors.NewUnauthorized("authentication required")
	}
	if *actor != userID {
		return nil, apperrors.NewForbidden("may only list your own inquiries")
	}

	inquiries, err := s.inquiries.ListBySender(ctx, userID)
	if err != nil {
		return nil, apperrors.NewStoreError(err)
	}
	return inquiries, nil
}

// ListForActor returns the union of inquiries the actor sent and
// inquiries on properties the actor owns, newest first. The owned
// property ids are resolved first; when the actor owns nothing the
// membership clause must match no rows, which the repository handles
// by dropping the clause rather than formatting an empty set.
func (s *InquiryService) ListForActor(ctx context.Context, actor *string) ([]domain.Inquiry, error) {
	if actor == nil {
		return nil, apperrors.NewUnauthorized("authentication required")
	}

	ownedIDs, err := s.properties.ListIDsByOwner(ctx, *actor)
	if err != nil {
		return nil, apperrors.NewStoreError(err)
	}

	inquiries, err := s.inquiries.ListBySenderOrProperties(ctx, *actor, ownedIDs)
	if err != nil {
		return nil, apperrors.NewStoreError(err)
	}
	return inquiries, nil
}

// Delete removes an inquiry; allowed for the sender or the owner of
// the referenced property.
func (s *InquiryService) Delete(ctx context.Context, actor *string, id string) error {
	inquiry, err := s.inquiries.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("inquiry", map[string]any{"id": id})
		}
		return apperrors.NewStoreError(err)
	}
	if err := authz.Decide(actor, authz.ActionWrite, authz.InquiryFor(inquiry)); err != nil {
		return err
	}

	if err := s.inquiries.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("inquiry", map[string]any{"id": id})
		}
		return apperrors.NewStoreError(err)
	}

	s.publish(ctx, events.EventInquiryDeleted, *actor, events.InquiryPayload{
		InquiryID:       inquiry.ID,
		PropertyID:      inquiry.PropertyID,
		SenderID:        inquiry.SenderID,
		PropertyOwnerID: inquiry.PropertyOwnerID,
	})
	return nil
}

func (s *InquiryService) publish(ctx context.Context, eventType events.EventType, actorID string, payload interface{}) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		Type:      eventType,
		ActorID:   actorID,
		Timestamp: time.Now().UTC(),
		Payload:   payload,
	})
}

func preview(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
