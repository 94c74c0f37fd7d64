package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	apperrors "github.com/spec-kit/estate-service/pkg/util"
)

const actorKey = "auth_actor_id"

// Middleware resolves bearer tokens to a user identifier.
type Middleware struct {
	tokens *TokenManager
}

// NewMiddleware constructs middleware.
func NewMiddleware(tokens *TokenManager) *Middleware {
	return &Middleware{tokens: tokens}
}

// Required rejects requests without a resolvable bearer token. The
// check runs before any handler so unauthenticated writes never reach
// the store.
func (m *Middleware) Required(c *fiber.Ctx) error {
	actor, err := m.resolve(c)
	if err != nil {
		return err
	}
	c.Locals(actorKey, actor)
	return c.Next()
}

// Optional resolves the token when one is present and passes through
// otherwise. Used on public routes where a caller may or may not be
// signed in.
func (m *Middleware) Optional(c *fiber.Ctx) error {
	if actor, err := m.resolve(c); err == nil {
		c.Locals(actorKey, actor)
	}
	return c.Next()
}

func (m *Middleware) resolve(c *fiber.Ctx) (string, error) {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return "", apperrors.NewUnauthorized("missing authorization header")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", apperrors.NewUnauthorized("invalid authorization header")
	}

	claims, err := m.tokens.ParseToken(parts[1])
	if err != nil {
		return "", apperrors.NewUnauthorized("invalid token")
	}
	return claims.UserID, nil
}

// ActorFromContext retrieves the resolved caller id, nil when the
// request carried no resolvable token.
func ActorFromContext(c *fiber.Ctx) *string {
	val := c.Locals(actorKey)
	if val == nil {
		return nil
	}
	actor, ok := val.(string)
	if !ok || actor == "" {
		return nil
	}
	return &actor
}
