package principal

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Principal is the authenticated identity every handler works against.
// It is trusted as given; services only re-check role-based ownership.
type Principal struct {
	UserID uuid.UUID
	Email  string
	Role   string
}

// FromContext extracts the principal from the verified JWT in Fiber locals.
func FromContext(c *fiber.Ctx) (*Principal, error) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok {
		return nil, errors.New("invalid token in context")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid claims")
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return nil, errors.New("missing sub claim")
	}

	userID, err := uuid.Parse(sub)
	if err != nil {
		return nil, err
	}

	email, _ := claims["email"].(string)
	role, _ := claims["role"].(string)

	return &Principal{UserID: userID, Email: email, Role: role}, nil
}
