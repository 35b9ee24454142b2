package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/store-rating-api/internal/application/dto"
	"github.com/jhoicas/store-rating-api/internal/domain/entity"
)

// RequireRole autoriza sólo si el rol del token es uno de roles. Va DESPUÉS de AuthMiddleware.
//
//   - 401 MISSING_ROLE → el token no trae rol.
//   - 403 FORBIDDEN    → rol desconocido o no permitido en esta ruta.
func RequireRole(roles ...entity.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := GetRole(c)
		if raw == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "MISSING_ROLE",
				Message: "Token has no role",
			})
		}
		role, err := entity.ParseRole(raw)
		if err == nil {
			for _, allowed := range roles {
				if role == allowed {
					return c.Next()
				}
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Code:    "FORBIDDEN",
			Message: "Access denied",
		})
	}
}
