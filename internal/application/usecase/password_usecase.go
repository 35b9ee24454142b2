package usecase

import (
	"context"

	"github.com/jhoicas/store-rating-api/internal/application/auth"
	"github.com/jhoicas/store-rating-api/internal/application/dto"
	"github.com/jhoicas/store-rating-api/internal/application/validation"
	"github.com/jhoicas/store-rating-api/internal/domain"
	"github.com/jhoicas/store-rating-api/internal/domain/repository"
)

// PasswordChanger cambia la contraseña de la cuenta autenticada (usuario o tienda).
type PasswordChanger struct {
	repo            repository.AccountRepository
	notFoundMessage string
}

// NewPasswordChanger construye el caso de uso; notFoundMessage se usa si la cuenta desapareció.
func NewPasswordChanger(repo repository.AccountRepository, notFoundMessage string) *PasswordChanger {
	return &PasswordChanger{repo: repo, notFoundMessage: notFoundMessage}
}

// ChangePassword verifica la contraseña actual y persiste el hash de la nueva.
func (uc *PasswordChanger) ChangePassword(ctx context.Context, accountID string, in dto.ChangePasswordRequest) error {
	if in.CurrentPassword == "" || in.NewPassword == "" {
		return domain.NewValidationError(validation.MsgPasswordFields)
	}
	if !validation.ValidPassword(in.NewPassword) {
		return domain.NewValidationError(validation.MsgPassword)
	}
	account, err := uc.repo.GetByID(ctx, accountID)
	if err != nil {
		return err
	}
	if account == nil {
		return domain.NewNotFoundError(uc.notFoundMessage)
	}
	if err := auth.CheckPassword(account.PasswordHash, in.CurrentPassword); err != nil {
		return domain.NewUnauthorizedError("Current password is incorrect")
	}
	hash, err := auth.HashPassword(in.NewPassword)
	if err != nil {
		return err
	}
	found, err := uc.repo.UpdatePassword(ctx, accountID, hash)
	if err != nil {
		return err
	}
	if !found {
		return domain.NewNotFoundError(uc.notFoundMessage)
	}
	return nil
}
