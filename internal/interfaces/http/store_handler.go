package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/store-rating-api/internal/application/usecase"
	"github.com/jhoicas/store-rating-api/pkg/logger"
)

// StoreHandler endpoints del rol store (/api/store). La tienda es la cuenta del token.
type StoreHandler struct {
	uc  *usecase.StoreUseCase
	log *logger.Logger
}

// NewStoreHandler construye el handler.
func NewStoreHandler(uc *usecase.StoreUseCase, log *logger.Logger) *StoreHandler {
	return &StoreHandler{uc: uc, log: log}
}

// GetDashboard godoc
// @Summary      Promedio, total y calificaciones de la tienda
// @Tags         store
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.StoreDashboardResponse
// @Router       /api/store/dashboard [get]
func (h *StoreHandler) GetDashboard(c *fiber.Ctx) error {
	out, err := h.uc.GetDashboard(c.UserContext(), GetUserID(c))
	if err != nil {
		return respondError(c, h.log, err, "Error fetching store dashboard")
	}
	return c.JSON(out)
}

// GetRatings godoc
// @Summary      Calificaciones de la tienda, más recientes primero
// @Tags         store
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   dto.StoreRatingResponse
// @Router       /api/store/ratings [get]
func (h *StoreHandler) GetRatings(c *fiber.Ctx) error {
	out, err := h.uc.GetRatings(c.UserContext(), GetUserID(c))
	if err != nil {
		return respondError(c, h.log, err, "Error fetching ratings")
	}
	return c.JSON(out)
}

// ChangePassword godoc
// @Summary      Cambiar contraseña de la tienda
// @Tags         store
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.ChangePasswordRequest  true  "currentPassword, newPassword"
// @Success      200  {object}  dto.MessageResponse
// @Router       /api/store/change-password [put]
func (h *StoreHandler) ChangePassword(c *fiber.Ctx) error {
	return changePassword(c, h.log, h.uc.PasswordChanger)
}
