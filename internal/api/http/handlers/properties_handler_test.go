package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/spec-kit/estate-service/internal/api/dto"
	"github.com/spec-kit/estate-service/internal/domain"
	"github.com/spec-kit/estate-service/internal/repository"
)

func TestProperties_List_PublicWithoutToken(t *testing.T) {
	env := newTestEnv(t)

	env.properties.On("List", mock.Anything, mock.MatchedBy(func(f repository.PropertyFilter) bool {
		return f.OwnerID == nil && f.Limit == repository.FeedLimit
	})).Return([]domain.Property{
		{ID: "p1", OwnerID: "user-1", Title: "Villa", City: "Yerevan", Price: 100000},
	}, nil)

	resp := env.request(t, http.MethodGet, "/properties", nil, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var feed []dto.PropertyResponse
	decodeJSON(t, resp, &feed)
	assert.Len(t, feed, 1)
	assert.Equal(t, "Villa", feed[0].Title)
}

func TestProperties_GetByID_PublicWithoutToken(t *testing.T) {
	env := newTestEnv(t)

	env.properties.On("GetByID", mock.Anything, "p1").Return(&domain.Property{
		ID: "p1", OwnerID: "user-1", Title: "Villa", City: "Yerevan", Price: 100000,
	}, nil)

	resp := env.request(t, http.MethodGet, "/properties?id=p1", nil, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var property dto.PropertyResponse
	decodeJSON(t, resp, &property)
	assert.Equal(t, "p1", property.ID)
	assert.Equal(t, "user-1", property.Owner)
}

func TestProperties_ListByOwner(t *testing.T) {
	env := newTestEnv(t)

	env.properties.On("List", mock.Anything, mock.MatchedBy(func(f repository.PropertyFilter) bool {
		return f.OwnerID != nil && *f.OwnerID == "user-1"
	})).Return([]domain.Property{{ID: "p1", OwnerID: "user-1"}}, nil)

	resp := env.request(t, http.MethodGet, "/properties?ownerId=user-1", nil, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestProperties_Create_WithoutTokenUnauthorized(t *testing.T) {
	env := newTestEnv(t)

	resp := env.request(t, http.MethodPost, "/properties", dto.CreatePropertyRequest{
		Title: "Villa", City: "Yerevan", Price: floatPtr(100000),
	}, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "UNAUTHORIZED", errorCode(t, resp))
	env.properties.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestProperties_Create_OwnerForcedToCaller(t *testing.T) {
	env := newTestEnv(t)

	env.properties.On("Create", mock.Anything, mock.MatchedBy(func(p *domain.Property) bool {
		return p.OwnerID == "user-1" && p.Price == 100000
	})).Return(nil)

	resp := env.request(t, http.MethodPost, "/properties", dto.CreatePropertyRequest{
		Title: "Villa", City: "Yerevan", Price: floatPtr(100000),
	}, "user-1")
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var rows []dto.PropertyResponse
	decodeJSON(t, resp, &rows)
	assert.Len(t, rows, 1)
	assert.Equal(t, "user-1", rows[0].Owner)
	assert.Equal(t, 100000.0, rows[0].Price)
}

func TestProperties_Create_MissingPrice(t *testing.T) {
	env := newTestEnv(t)

	resp := env.request(t, http.MethodPost, "/properties", dto.CreatePropertyRequest{
		Title: "Villa", City: "Yerevan",
	}, "user-1")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_INPUT", errorCode(t, resp))
}

func TestProperties_Update_NonOwnerForbidden(t *testing.T) {
	env := newTestEnv(t)

	env.properties.On("GetByID", mock.Anything, "p1").Return(&domain.Property{ID: "p1", OwnerID: "user-1"}, nil)

	resp := env.request(t, http.MethodPut, "/properties?id=p1", map[string]any{"title": "New"}, "user-2")
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "FORBIDDEN", errorCode(t, resp))
}

func TestProperties_Update_OwnerFieldInPayloadIgnored(t *testing.T) {
	env := newTestEnv(t)

	env.properties.On("GetByID", mock.Anything, "p1").Return(&domain.Property{
		ID: "p1", OwnerID: "user-1", Title: "Villa", City: "Yerevan", Price: 100000,
	}, nil)
	env.properties.On("Update", mock.Anything, mock.MatchedBy(func(p *domain.Property) bool {
		return p.OwnerID == "user-1" && p.Title == "Mansion"
	})).Return(nil)

	resp := env.request(t, http.MethodPut, "/properties?id=p1", map[string]any{
		"title": "Mansion",
		"owner": "user-9",
	}, "user-1")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var rows []dto.PropertyResponse
	decodeJSON(t, resp, &rows)
	assert.Len(t, rows, 1)
	assert.Equal(t, "user-1", rows[0].Owner)
	assert.Equal(t, "Mansion", rows[0].Title)
}

func TestProperties_Update_MissingIDParam(t *testing.T) {
	env := newTestEnv(t)

	resp := env.request(t, http.MethodPut, "/properties", map[string]any{"title": "New"}, "user-1")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_INPUT", errorCode(t, resp))
}

func TestProperties_Delete_OwnerSucceeds(t *testing.T) {
	env := newTestEnv(t)

	env.properties.On("GetByID", mock.Anything, "p1").Return(&domain.Property{ID: "p1", OwnerID: "user-1"}, nil)
	env.properties.On("Delete", mock.Anything, "p1").Return(nil)

	resp := env.request(t, http.MethodDelete, "/properties?id=p1", nil, "user-1")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]bool
	decodeJSON(t, resp, &body)
	assert.True(t, body["success"])
}

func TestProperties_UnsupportedMethodGets405(t *testing.T) {
	env := newTestEnv(t)

	resp := env.request(t, http.MethodPatch, "/properties", nil, "user-1")
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("Allow"))
}

func floatPtr(f float64) *float64 { return &f }
