package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/premiarte/premiarte-api/internal/application/dto"
	"github.com/premiarte/premiarte-api/pkg/jwt"
)

// LocalUserID clave de c.Locals donde el middleware deja el UserID.
const LocalUserID = "user_id"

// AuthMiddleware valida el Bearer Token JWT de sesión y deja el UserID en
// c.Locals. Los tokens de recuperación de contraseña no sirven como sesión.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		userID, purpose, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil || purpose != jwt.PurposeSession {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		c.Locals(LocalUserID, userID)
		return c.Next()
	}
}

// OptionalAuthMiddleware toma el UserID del Bearer Token si viene uno válido,
// pero nunca rechaza la petición. Para endpoints que comparten storefront y
// dashboard, como la creación de presupuestos.
func OptionalAuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			userID, purpose, err := jwt.Parse(jwtSecret, strings.TrimSpace(parts[1]))
			if err == nil && purpose == jwt.PurposeSession {
				c.Locals(LocalUserID, userID)
			}
		}
		return c.Next()
	}
}

// GetUserID devuelve el UserID del contexto (después del middleware de auth).
func GetUserID(c *fiber.Ctx) string {
	v := c.Locals(LocalUserID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
