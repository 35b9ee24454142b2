package dto

import "time"

// SignupRequest entrada para registro público; el rol siempre es "user".
type SignupRequest struct {
	Name     string `json:"name" validate:"required,name"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,password"`
	Address  string `json:"address" validate:"required,address"`
}

// AddUserRequest entrada para que un admin cree una cuenta con cualquier rol.
type AddUserRequest struct {
	Name     string `json:"name" validate:"required,name"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,password"`
	Address  string `json:"address" validate:"required,address"`
	Role     string `json:"role" validate:"required,role"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// PublicUser proyección pública de la cuenta (sin password).
type PublicUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// LoginResponse salida con token JWT.
type LoginResponse struct {
	Token string     `json:"token"`
	User  PublicUser `json:"user"`
}

// AccountResponse proyección de cuenta para administración.
type AccountResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Address   string    `json:"address"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// ChangePasswordRequest entrada para cambio de contraseña (usuario o tienda).
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// DashboardStatsResponse contadores globales de la plataforma.
type DashboardStatsResponse struct {
	TotalUsers   int64 `json:"totalUsers"`
	TotalStores  int64 `json:"totalStores"`
	TotalRatings int64 `json:"totalRatings"`
}
