package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/store-rating-api/internal/application/dto"
	"github.com/jhoicas/store-rating-api/internal/application/validation"
	"github.com/jhoicas/store-rating-api/internal/domain"
	"github.com/jhoicas/store-rating-api/internal/domain/entity"
	"github.com/jhoicas/store-rating-api/internal/domain/repository"
	"github.com/jhoicas/store-rating-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: registro, login y verificación de token.
type AuthUseCase struct {
	accountRepo repository.AccountRepository
	jwtCfg      JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(accountRepo repository.AccountRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{accountRepo: accountRepo, jwtCfg: jwtCfg}
}

// Signup registra una cuenta con rol "user". No emite token: el cliente debe hacer login.
func (uc *AuthUseCase) Signup(ctx context.Context, in dto.SignupRequest) error {
	if err := validation.Struct(in); err != nil {
		return err
	}
	_, err := CreateAccount(ctx, uc.accountRepo, in.Name, in.Email, in.Password, in.Address, entity.RoleUser)
	return err
}

// Login verifica email/password, genera JWT y retorna token + usuario.
// Email desconocido y password incorrecta devuelven el mismo error.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	if in.Email == "" || in.Password == "" {
		return nil, domain.NewValidationError(validation.MsgLoginRequired)
	}
	account, err := uc.accountRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if account == nil {
		// mismo costo que una comparación real
		_ = CheckPassword(dummyHash, in.Password)
		return nil, domain.ErrInvalidCredentials
	}
	if err := CheckPassword(account.PasswordHash, in.Password); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, account.ID, account.Email, account.Role.String(), uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User: dto.PublicUser{
			ID:    account.ID,
			Name:  account.Name,
			Email: account.Email,
			Role:  account.Role.String(),
		},
	}, nil
}

// VerifyToken valida firma y expiración y devuelve los claims embebidos.
func (uc *AuthUseCase) VerifyToken(token string) (*jwt.Claims, error) {
	if token == "" {
		return nil, domain.NewUnauthorizedError("Access token required")
	}
	claims, err := jwt.Parse(uc.jwtCfg.Secret, token)
	if err != nil {
		return nil, domain.NewUnauthorizedError("Invalid or expired token")
	}
	return claims, nil
}

// CreateAccount hashea la contraseña y persiste la cuenta con el rol indicado.
// El pre-chequeo de email es sólo para responder rápido; la constraint UNIQUE de la DB
// es la garantía y el repositorio la traduce a domain.ErrEmailAlreadyExists.
func CreateAccount(ctx context.Context, repo repository.AccountRepository, name, email, password, address string, role entity.Role) (*entity.Account, error) {
	existing, err := repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := HashPassword(password)
	if err != nil {
		return nil, err
	}
	account := &entity.Account{
		ID:           uuid.New().String(),
		Name:         validation.Normalize(name),
		Email:        email,
		PasswordHash: hash,
		Address:      validation.Normalize(address),
		Role:         role,
		CreatedAt:    time.Now().UTC(),
	}
	if err := repo.Create(ctx, account); err != nil {
		return nil, err
	}
	return account, nil
}
