package auth

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// Role names issued by the platform's token service.
const (
	RoleTourist    = "tourist"
	RoleAdmin      = "admin"
	RoleSeller     = "seller"
	RoleAdvertiser = "advertiser"
	RoleTourGuide  = "tour_guide"
	RoleGovernor   = "tourism_governor"
)

// Locals keys populated by the middleware.
const (
	LocalUserID = "user_id"
	LocalRole   = "role"
)

// errorResponse mirrors the handlers' error envelope.
type errorResponse struct {
	Message string `json:"message"`
	RayID   string `json:"ray_id,omitempty"`
}

// RequireAuth returns a middleware that validates the Bearer token and stores
// the caller's identity in the request locals.
func RequireAuth(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := authenticate(c, secret); err != nil {
			return unauthorized(c, err.Error())
		}
		return c.Next()
	}
}

// RequireRole returns a middleware that validates the Bearer token and
// additionally requires one of the given roles.
func RequireRole(secret string, roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := authenticate(c, secret); err != nil {
			return unauthorized(c, err.Error())
		}

		role, _ := c.Locals(LocalRole).(string)
		for _, allowed := range roles {
			if role == allowed {
				return c.Next()
			}
		}

		rayID, _ := c.Locals("requestid").(string)
		return c.Status(http.StatusForbidden).JSON(errorResponse{
			Message: "insufficient role",
			RayID:   rayID,
		})
	}
}

// authenticate validates the request token and stores identity in locals.
func authenticate(c *fiber.Ctx, secret string) error {
	claims, err := parseToken(c.Get("Authorization"), secret)
	if err != nil {
		return err
	}

	userID, _ := claims["sub"].(string)
	role, _ := claims["role"].(string)
	if userID == "" {
		return fmt.Errorf("token is missing a subject")
	}

	c.Locals(LocalUserID, userID)
	c.Locals(LocalRole, role)
	return nil
}

// UserID returns the authenticated user id stored by RequireAuth.
func UserID(c *fiber.Ctx) string {
	id, _ := c.Locals(LocalUserID).(string)
	return id
}

// parseToken validates an "Authorization: Bearer <token>" header value.
func parseToken(header, secret string) (jwt.MapClaims, error) {
	parts := strings.Split(header, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, fmt.Errorf("missing or malformed Authorization header")
	}

	token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}
	return claims, nil
}

func unauthorized(c *fiber.Ctx, msg string) error {
	rayID, _ := c.Locals("requestid").(string)
	return c.Status(http.StatusUnauthorized).JSON(errorResponse{
		Message: msg,
		RayID:   rayID,
	})
}
