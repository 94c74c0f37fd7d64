package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/estate-service/internal/authz"
	"github.com/spec-kit/estate-service/internal/cache"
	"github.com/spec-kit/estate-service/internal/domain"
	"github.com/spec-kit/estate-service/internal/events"
	"github.com/spec-kit/estate-service/internal/repository"
	apperrors "github.com/spec-kit/estate-service/pkg/util"
)

// CatalogService exposes the property catalog: public reads, owner-only
// writes. Every ownership decision goes through the authz contract.
type CatalogService struct {
	properties repository.PropertyRepository
	feedCache  *cache.FeedCache
	dispatcher events.Dispatcher
}

// CatalogDependencies bundles collaborators for the catalog service.
type CatalogDependencies struct {
	PropertyRepo repository.PropertyRepository
	FeedCache    *cache.FeedCache
	Dispatcher   events.Dispatcher
}

// PropertyCreateInput describes property creation payload. Price is a
// pointer so an explicit zero is distinguishable from a missing value.
type PropertyCreateInput struct {
	Title    string
	City     string
	Price    *float64
	ImageURL *string
}

// PropertyUpdateInput carries partial updates; nil fields are left
// untouched. Ownership is not representable here at all.
type PropertyUpdateInput struct {
	Title    *string
	City     *string
	Price    *float64
	ImageURL *string
}

// PropertyListFilter restricts the public listing.
type PropertyListFilter struct {
	OwnerID *string
}

// NewCatalogService constructs the service.
func NewCatalogService(deps CatalogDependencies) *CatalogService {
	return &CatalogService{
		properties: deps.PropertyRepo,
		feedCache:  deps.FeedCache,
		dispatcher: deps.Dispatcher,
	}
}

// List returns the most recent properties, capped at the feed limit,
// newest first. Public. The unfiltered feed is served from cache when
// warm.
func (s *CatalogService) List(ctx context.Context, filter PropertyListFilter) ([]domain.Property, error) {
	unfiltered := filter.OwnerID == nil
	if unfiltered {
		if feed, ok := s.feedCache.Get(ctx); ok {
			return feed, nil
		}
	}

	feed, err := s.properties.List(ctx, repository.PropertyFilter{
		OwnerID: filter.OwnerID,
		Limit:   repository.FeedLimit,
	})
	if err != nil {
		return nil, apperrors.NewStoreError(err)
	}
	if unfiltered {
		s.feedCache.Set(ctx, feed)
	}
	return feed, nil
}

// Get fetches a single property. Public.
func (s *CatalogService) Get(ctx context.Context, id string) (*domain.Property, error) {
	return s.fetch(ctx, id)
}

// Create inserts a property owned by the actor. The owner is always
// the caller; any owner supplied in the payload never reaches here.
func (s *CatalogService) Create(ctx context.Context, actor *string, input PropertyCreateInput) (*domain.Property, error) {
	if actor == nil {
		return nil, apperrors.NewUnauthorized("authentication required")
	}

	title := strings.TrimSpace(input.Title)
	city := strings.TrimSpace(input.City)
	if title == "" || city == "" || input.Price == nil {
		return nil, apperrors.NewInvalidInput("title, city, price required", nil)
	}
	if *input.Price < 0 {
		return nil, apperrors.NewInvalidInput("price must be non-negative", nil)
	}

	property := &domain.Property{
		ID:       uuid.NewString(),
		OwnerID:  *actor,
		Title:    title,
		City:     city,
		Price:    *input.Price,
		ImageURL: input.ImageURL,
	}
	if err := s.properties.Create(ctx, property); err != nil {
		return nil, apperrors.NewStoreError(err)
	}

	s.feedCache.Invalidate(ctx)
	s.publish(ctx, events.EventPropertyCreated, *actor, events.PropertyPayload{
		PropertyID: property.ID,
		OwnerID:    property.OwnerID,
		Title:      property.Title,
		City:       property.City,
	})
	return property, nil
}

// Update applies the supplied fields to an owned property.
func (s *CatalogService) Update(ctx context.Context, actor *string, id string, input PropertyUpdateInput) (*domain.Property, error) {
	property, err := s.fetch(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := authz.Decide(actor, authz.ActionWrite, authz.PropertyFor(property)); err != nil {
		return nil, err
	}

	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title == "" {
			return nil, apperrors.NewInvalidInput("title cannot be empty", nil)
		}
		property.Title = title
	}
	if input.City != nil {
		city := strings.TrimSpace(*input.City)
		if city == "" {
			return nil, apperrors.NewInvalidInput("city cannot be empty", nil)
		}
		property.City = city
	}
	if input.Price != nil {
		if *input.Price < 0 {
			return nil, apperrors.NewInvalidInput("price must be non-negative", nil)
		}
		property.Price = *input.Price
	}
	if input.ImageURL != nil {
		property.ImageURL = input.ImageURL
	}

	if err := s.properties.Update(ctx, property); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("property", map[string]any{"id": id})
		}
		return nil, apperrors.NewStoreError(err)
	}

	s.feedCache.Invalidate(ctx)
	s.publish(ctx, events.EventPropertyUpdated, *actor, events.PropertyPayload{
		PropertyID: property.ID,
		OwnerID:    property.OwnerID,
	})
	return property, nil
}

// Delete removes an owned property; the store cascades its inquiries.
func (s *CatalogService) Delete(ctx context.Context, actor *string, id string) error {
	property, err := s.fetch(ctx, id)
	if err != nil {
		return err
	}
	if err := authz.Decide(actor, authz.ActionWrite, authz.PropertyFor(property)); err != nil {
		return err
	}

	if err := s.properties.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("property", map[string]any{"id": id})
		}
		return apperrors.NewStoreError(err)
	}

	s.feedCache.Invalidate(ctx)
	s.publish(ctx, events.EventPropertyDeleted, *actor, events.PropertyPayload{
		PropertyID: property.ID,
		OwnerID:    property.OwnerID,
	})
	return nil
}

func (s *CatalogService) fetch(ctx context.Context, id string) (*domain.Property, error) {
	property, err := s.properties.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("property", map[string]any{"id": id})
		}
		return nil, apperrors.NewStoreError(err)
	}
	return property, nil
}

func (s *CatalogService) publish(ctx context.Context, eventType events.EventType, actorID string, payload interface{}) {
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
