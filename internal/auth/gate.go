package auth

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"

	"gallery-service/internal/utils"
)

var (
	errNoCredential = errors.New("no credential")
	errBadToken     = errors.New("invalid token")
)

// Gate classifies a request as admin or not. It accepts the shared static
// admin token, or an HS256 JWT whose role claim is "admin".
type Gate struct {
	adminToken string
	secret     []byte
}

func NewGate(adminToken, jwtSecret string) *Gate {
	return &Gate{adminToken: adminToken, secret: []byte(jwtSecret)}
}

// IsAdmin resolves an Authorization header value to an admin verdict.
// errNoCredential/errBadToken map to 401, a valid non-admin token to false.
func (g *Gate) IsAdmin(authHeader string) (bool, error) {
	token := strings.TrimSpace(authHeader)
	if strings.HasPrefix(token, "Bearer ") {
		token = strings.TrimPrefix(token, "Bearer ")
	}
	if token == "" {
		return false, errNoCredential
	}
	if g.adminToken != "" && token == g.adminToken {
		return true, nil
	}

	t, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return g.secret, nil
	})
	if err != nil || !t.Valid {
		return false, errBadToken
	}
	claims, ok := t.Claims.(jwt.MapClaims)
	if !ok {
		return false, errBadToken
	}
	role, _ := claims["role"].(string)
	return role == "admin", nil
}

// RequireAdmin guards admin-only routes. Missing or invalid credentials are
// 401, valid non-admin credentials are 403.
func (g *Gate) RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		admin, err := g.IsAdmin(c.Get("Authorization"))
		if errors.Is(err, errNoCredential) {
			return utils.JSONError(c, fiber.StatusUnauthorized, "Unauthorized")
		}
		if err != nil {
			return utils.JSONError(c, fiber.StatusUnauthorized, "Invalid token")
		}
		if !admin {
			return utils.JSONError(c, fiber.StatusForbidden, "Admin only")
		}
		return c.Next()
	}
}
