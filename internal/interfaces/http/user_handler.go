package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/jhoicas/store-rating-api/internal/application/dto"
	"github.com/jhoicas/store-rating-api/internal/application/usecase"
	"github.com/jhoicas/store-rating-api/pkg/logger"
)

// UserHandler endpoints del rol user (/api/user).
type UserHandler struct {
	uc  *usecase.UserUseCase
	log *logger.Logger
}

// NewUserHandler construye el handler.
func NewUserHandler(uc *usecase.UserUseCase, log *logger.Logger) *UserHandler {
	return &UserHandler{uc: uc, log: log}
}

// GetStores godoc
// @Summary      Tiendas con promedio general y la calificación propia
// @Tags         user
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   dto.UserStoreResponse
// @Router       /api/user/stores [get]
func (h *UserHandler) GetStores(c *fiber.Ctx) error {
	stores, err := h.uc.GetStores(c.UserContext(), GetUserID(c))
	if err != nil {
		return respondError(c, h.log, err, "Error fetching stores")
	}
	return c.JSON(stores)
}

// SubmitRating godoc
// @Summary      Calificar una tienda
// @Tags         user
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        storeId  path  string             true  "ID de la tienda"
// @Param        body     body  dto.RatingRequest  true  "rating 1-5"
// @Success      201  {object}  dto.MessageResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/user/stores/{storeId}/rating [post]
func (h *UserHandler) SubmitRating(c *fiber.Ctx) error {
	var in dto.RatingRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := h.uc.SubmitRating(c.UserContext(), GetUserID(c), utils.CopyString(c.Params("storeId")), in.Rating); err != nil {
		return respondError(c, h.log, err, "Error submitting rating")
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MessageResponse{Message: "Rating submitted successfully"})
}

// UpdateRating godoc
// @Summary      Actualizar la calificación propia
// @Tags         user
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        storeId  path  string             true  "ID de la tienda"
// @Param        body     body  dto.RatingRequest  true  "rating 1-5"
// @Success      200  {object}  dto.MessageResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/user/stores/{storeId}/rating [put]
func (h *UserHandler) UpdateRating(c *fiber.Ctx) error {
	var in dto.RatingRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := h.uc.UpdateRating(c.UserContext(), GetUserID(c), utils.CopyString(c.Params("storeId")), in.Rating); err != nil {
		return respondError(c, h.log, err, "Error updating rating")
	}
	return c.JSON(dto.MessageResponse{Message: "Rating updated successfully"})
}

// ChangePassword godoc
// @Summary      Cambiar contraseña
// @Tags         user
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.ChangePasswordRequest  true  "currentPassword, newPassword"
// @Success      200  {object}  dto.MessageResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/user/change-password [put]
func (h *UserHandler) ChangePassword(c *fiber.Ctx) error {
	return changePassword(c, h.log, h.uc.PasswordChanger)
}

// changePassword compartido por user y store; sólo cambia el mensaje de NotFound.
func changePassword(c *fiber.Ctx, log *logger.Logger, pc *usecase.PasswordChanger) error {
	var in dto.ChangePasswordRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := pc.ChangePassword(c.UserContext(), GetUserID(c), in); err != nil {
		return respondError(c, log, err, "Error changing password")
	}
	return c.JSON(dto.MessageResponse{Message: "Password changed successfully"})
}
