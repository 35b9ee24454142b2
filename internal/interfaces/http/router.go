package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/store-rating-api/internal/application/auth"
	"github.com/jhoicas/store-rating-api/internal/application/usecase"
	"github.com/jhoicas/store-rating-api/internal/domain/entity"
	"github.com/jhoicas/store-rating-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC  *auth.AuthUseCase
	AdminUC *usecase.AdminUseCase
	UserUC  *usecase.UserUseCase
	StoreUC *usecase.StoreUseCase
	Logger  *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	log := deps.Logger
	if log == nil {
		log = logger.Nop()
	}
	api := app.Group("/api")
	requireAuth := AuthMiddleware(deps.AuthUC)

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC, log)
	authGroup.Post("/signup", authHandler.Signup)
	authGroup.Post("/login", authHandler.Login)

	// Admin
	admin := api.Group("/admin", requireAuth, RequireRole(entity.RoleAdmin))
	adminHandler := NewAdminHandler(deps.AdminUC, log)
	admin.Get("/stats", adminHandler.GetDashboardStats)
	admin.Post("/users", adminHandler.AddUser)
	admin.Get("/stores", adminHandler.GetStores)
	admin.Get("/users", adminHandler.GetUsers)
	admin.Get("/users/:userId", adminHandler.GetUserDetails)

	// User
	user := api.Group("/user", requireAuth, RequireRole(entity.RoleUser))
	userHandler := NewUserHandler(deps.UserUC, log)
	user.Get("/stores", userHandler.GetStores)
	user.Post("/stores/:storeId/rating", userHandler.SubmitRating)
	user.Put("/stores/:storeId/rating", userHandler.UpdateRating)
	user.Put("/change-password", userHandler.ChangePassword)

	// Store
	store := api.Group("/store", requireAuth, RequireRole(entity.RoleStore))
	storeHandler := NewStoreHandler(deps.StoreUC, log)
	store.Get("/dashboard", storeHandler.GetDashboard)
	store.Get("/ratings", storeHandler.GetRatings)
	store.Put("/change-password", storeHandler.ChangePassword)
}
