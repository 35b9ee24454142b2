package entity

import "time"

// Account representa cualquier identidad de la plataforma: administrador, usuario o tienda.
// Una tienda es una cuenta con Role == RoleStore; no existe una entidad separada.
type Account struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Address      string
	Role         Role // inmutable tras la creación
	CreatedAt    time.Time
}

// IsStore indica si la cuenta representa una tienda.
func (a *Account) IsStore() bool {
	return a != nil && a.Role == RoleStore
}
