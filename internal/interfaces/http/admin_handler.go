package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/jhoicas/store-rating-api/internal/application/dto"
	"github.com/jhoicas/store-rating-api/internal/application/usecase"
	"github.com/jhoicas/store-rating-api/pkg/logger"
)

// AdminHandler endpoints de administración (/api/admin).
type AdminHandler struct {
	uc  *usecase.AdminUseCase
	log *logger.Logger
}

// NewAdminHandler construye el handler.
func NewAdminHandler(uc *usecase.AdminUseCase, log *logger.Logger) *AdminHandler {
	return &AdminHandler{uc: uc, log: log}
}

// GetDashboardStats godoc
// @Summary      Estadísticas de la plataforma
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.DashboardStatsResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/admin/stats [get]
func (h *AdminHandler) GetDashboardStats(c *fiber.Ctx) error {
	stats, err := h.uc.GetDashboardStats(c.UserContext())
	if err != nil {
		return respondError(c, h.log, err, "Error fetching dashboard statistics")
	}
	return c.JSON(stats)
}

// AddUser godoc
// @Summary      Crear cuenta con cualquier rol
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.AddUserRequest  true  "name, email, password, address, role"
// @Success      201   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/admin/users [post]
func (h *AdminHandler) AddUser(c *fiber.Ctx) error {
	var in dto.AddUserRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if _, err := h.uc.AddUser(c.UserContext(), in); err != nil {
		return respondError(c, h.log, err, "Error adding user")
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MessageResponse{Message: "User added successfully"})
}

// GetStores godoc
// @Summary      Listar tiendas con su promedio
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   dto.AdminStoreResponse
// @Router       /api/admin/stores [get]
func (h *AdminHandler) GetStores(c *fiber.Ctx) error {
	stores, err := h.uc.GetStores(c.UserContext())
	if err != nil {
		return respondError(c, h.log, err, "Error fetching stores")
	}
	return c.JSON(stores)
}

// GetUsers godoc
// @Summary      Listar cuentas
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   dto.AccountResponse
// @Router       /api/admin/users [get]
func (h *AdminHandler) GetUsers(c *fiber.Ctx) error {
	users, err := h.uc.GetUsers(c.UserContext())
	if err != nil {
		return respondError(c, h.log, err, "Error fetching users")
	}
	return c.JSON(users)
}

// GetUserDetails godoc
// @Summary      Detalle de una cuenta
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        userId  path  string  true  "ID de la cuenta"
// @Success      200  {object}  dto.AccountResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/users/{userId} [get]
func (h *AdminHandler) GetUserDetails(c *fiber.Ctx) error {
	user, err := h.uc.GetUserDetails(c.UserContext(), utils.CopyString(c.Params("userId")))
	if err != nil {
		return respondError(c, h.log, err, "Error fetching user details")
	}
	return c.JSON(user)
}
