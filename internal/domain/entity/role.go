package entity

import "fmt"

// Role es el rol de una cuenta. Conjunto cerrado: admin, user, store.
type Role string

// Roles válidos para Account.
const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
	RoleStore Role = "store"
)

// ParseRole convierte un string en Role; cualquier valor fuera del conjunto es error.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin:
		return RoleAdmin, nil
	case RoleUser:
		return RoleUser, nil
	case RoleStore:
		return RoleStore, nil
	default:
		return "", fmt.Errorf("rol desconocido: %q", s)
	}
}

// Valid indica si r pertenece al conjunto de roles.
func (r Role) Valid() bool {
	_, err := ParseRole(string(r))
	return err == nil
}

func (r Role) String() string { return string(r) }
