package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/estate-service/internal/api/http"
	"github.com/spec-kit/estate-service/internal/api/http/handlers"
	"github.com/spec-kit/estate-service/internal/auth"
	"github.com/spec-kit/estate-service/internal/config"
	"github.com/spec-kit/estate-service/internal/observability"
	"github.com/spec-kit/estate-service/internal/persistence"
	"github.com/spec-kit/estate-service/internal/service"
)

type testEnv struct {
	app        *fiber.App
	tokens     *auth.TokenManager
	properties *MockPropertyRepository
	inquiries  *MockInquiryRepository
	users      *MockUserRepository
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	properties := new(MockPropertyRepository)
	inquiries := new(MockInquiryRepository)
	users := new(MockUserRepository)

	authService := service.NewAuthService(config.AuthConfig{
		JWTSecret:             "test-secret",
		AccessTokenTTLMinutes: 5,
		BcryptCost:            4,
	}, users)
	catalogService := service.NewCatalogService(service.CatalogDependencies{PropertyRepo: properties})
	inquiryService := service.NewInquiryService(service.InquiryDependencies{
		InquiryRepo:  inquiries,
		PropertyRepo: properties,
	})

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, zap.NewNop(), observability.NewMetrics(), 0)
	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler("test", "test", &persistence.Postgres{}, &persistence.Redis{}),
		Users:          handlers.NewUsersHandler(authService),
		Properties:     handlers.NewPropertiesHandler(catalogService),
		Inquiries:      handlers.NewInquiriesHandler(inquiryService),
		AuthMiddleware: auth.NewMiddleware(authService.TokenManager()),
	})

	return &testEnv{
		app:        app,
		tokens:     authService.TokenManager(),
		properties: properties,
		inquiries:  inquiries,
		users:      users,
	}
}

// request performs an HTTP exchange against the in-memory app. A
// non-empty userID attaches a bearer token for that user.
func (e *testEnv) request(t *testing.T, method, target string, body any, userID string) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		assert.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if userID != "" {
		token, _, err := e.tokens.GenerateToken(userID)
		assert.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := e.app.Test(req)
	assert.NoError(t, err)
	return resp
}

func decodeJSON(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	payload, err := io.ReadAll(resp.Body)
	assert.NoError(t, err)
	assert.NoError(t, json.Unmarshal(payload, out))
}

func errorCode(t *testing.T, resp *http.Response) string {
	t.Helper()
	var body struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	decodeJSON(t, resp, &body)
	return body.Error.Code
}
