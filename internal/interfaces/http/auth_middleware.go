package http

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/orders-pro/internal/application/dto"
	"github.com/tu-usuario/orders-pro/internal/domain/repository"
	"github.com/tu-usuario/orders-pro/pkg/jwt"
)

// Locals keys para la identidad del caller en Fiber.
const (
	LocalUserID = "user_id"
	LocalName   = "name"
	LocalEmail  = "email"
	LocalRole   = "role"
)

// AuthMiddleware valida el Bearer Token JWT y carga el registro actual del
// usuario desde el Identity Store a c.Locals. El rol para RequireRole sale de
// la fila en DB, no del claim: un token viejo no conserva un rol que ya cambió.
func AuthMiddleware(jwtSecret string, users repository.UserRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Message: "Token is missing"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Message: "Invalid token format"})
		}
		ident, err := jwt.Parse(jwtSecret, strings.TrimSpace(parts[1]))
		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Message: "Token has expired"})
			}
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Message: "Invalid token"})
		}
		user, err := users.GetByID(ident.ID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Message: err.Error()})
		}
		if user == nil {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Message: "User not found"})
		}
		c.Locals(LocalUserID, user.ID)
		c.Locals(LocalName, user.Name)
		c.Locals(LocalEmail, user.Email)
		c.Locals(LocalRole, user.Role)
		return c.Next()
	}
}

// RequireRole devuelve un middleware que exige que el rol del caller esté en
// el conjunto permitido. Debe usarse DESPUÉS de AuthMiddleware.
func RequireRole(allowedRoles ...string) fiber.Handler {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		if role == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Message: "Invalid token"})
		}
		if _, ok := allowed[role]; !ok {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Message: "Permission denied"})
		}
		return c.Next()
	}
}

// GetUserID devuelve el ID del caller (después del middleware de auth).
func GetUserID(c *fiber.Ctx) string { return localString(c, LocalUserID) }

// GetName devuelve el nombre del caller.
func GetName(c *fiber.Ctx) string { return localString(c, LocalName) }

// GetEmail devuelve el email del caller.
func GetEmail(c *fiber.Ctx) string { return localString(c, LocalEmail) }

// GetRole devuelve el rol del caller.
func GetRole(c *fiber.Ctx) string { return localString(c, LocalRole) }

func localString(c *fiber.Ctx, key string) string {
	v := c.Locals(key)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
