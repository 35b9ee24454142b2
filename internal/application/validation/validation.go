// Package validation centraliza las reglas de entrada de cuentas y calificaciones
// sobre go-playground/validator, devolviendo errores de dominio con mensajes para el cliente.
package validation

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/jhoicas/store-rating-api/internal/domain"
	"github.com/jhoicas/store-rating-api/internal/domain/entity"
	"golang.org/x/text/unicode/norm"
)

// Límites de los campos de cuenta.
const (
	NameMinLen     = 20
	NameMaxLen     = 60
	AddressMaxLen  = 400
	PasswordMinLen = 8
	PasswordMaxLen = 16
	passwordSymbol = "!@#$%^&*"
)

// Mensajes de validación expuestos al cliente.
const (
	MsgRequiredFields = "All fields are required"
	MsgName           = "Name must be between 20-60 characters"
	MsgEmail          = "Invalid email address"
	MsgPassword       = "Password must be 8-16 characters with at least one uppercase letter and one special character"
	MsgAddress        = "Address must not exceed 400 characters"
	MsgRole           = "Invalid role"
	MsgRating         = "Rating must be between 1 and 5"
	MsgLoginRequired  = "Email and password are required"
	MsgPasswordFields = "Current password and new password are required"
)

var passwordCharset = regexp.MustCompile(`^[A-Za-z0-9!@#$%^&*]+$`)

var tagMessages = map[string]string{
	"required": MsgRequiredFields,
	"name":     MsgName,
	"email":    MsgEmail,
	"password": MsgPassword,
	"address":  MsgAddress,
	"role":     MsgRole,
}

var validate = newValidate()

func newValidate() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	mustRegister(v, "name", func(fl validator.FieldLevel) bool { return ValidName(fl.Field().String()) })
	mustRegister(v, "password", func(fl validator.FieldLevel) bool { return ValidPassword(fl.Field().String()) })
	mustRegister(v, "address", func(fl validator.FieldLevel) bool { return ValidAddress(fl.Field().String()) })
	mustRegister(v, "role", func(fl validator.FieldLevel) bool { return entity.Role(fl.Field().String()).Valid() })
	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("validation: registrar %q: %v", tag, err))
	}
}

// Struct valida s según sus tags. Si falta algún campo requerido devuelve MsgRequiredFields;
// si no, el mensaje de la primera regla violada en orden de declaración.
func Struct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return fmt.Errorf("validation: %w", err)
	}
	for _, fe := range verrs {
		if fe.Tag() == "required" {
			return domain.NewValidationError(MsgRequiredFields)
		}
	}
	if msg, ok := tagMessages[verrs[0].Tag()]; ok {
		return domain.NewValidationError(msg)
	}
	return domain.NewValidationError(fmt.Sprintf("%s is invalid", verrs[0].Field()))
}

// Normalize devuelve la forma NFC de s. Nombre y dirección se validan y se guardan así,
// de modo que los límites de longitud coinciden con VARCHAR(60)/VARCHAR(400).
func Normalize(s string) string {
	return norm.NFC.String(s)
}

// ValidName: 20..60 caracteres contados sobre la forma NFC.
func ValidName(s string) bool {
	n := utf8.RuneCountInString(Normalize(s))
	return n >= NameMinLen && n <= NameMaxLen
}

// ValidAddress: como máximo 400 caracteres.
func ValidAddress(s string) bool {
	return utf8.RuneCountInString(Normalize(s)) <= AddressMaxLen
}

// ValidPassword: 8..16 caracteres de [A-Za-z0-9!@#$%^&*], al menos una mayúscula y un símbolo.
func ValidPassword(s string) bool {
	if len(s) < PasswordMinLen || len(s) > PasswordMaxLen {
		return false
	}
	if !passwordCharset.MatchString(s) {
		return false
	}
	return strings.ContainsAny(s, "ABCDEFGHIJKLMNOPQRSTUVWXYZ") && strings.ContainsAny(s, passwordSymbol)
}

// Rating valida que el valor exista y esté en [1, 5].
func Rating(value *int) error {
	if value == nil || *value < entity.MinRating || *value > entity.MaxRating {
		return domain.NewValidationError(MsgRating)
	}
	return nil
}
