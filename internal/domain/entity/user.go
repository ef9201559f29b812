package entity

import "time"

// Roles válidos para User.
const (
	RoleDetective = "detective"
	RoleManager   = "manager"
)

// ValidRole indica si el rol es uno de los soportados por el sistema.
func ValidRole(role string) bool {
	return role == RoleDetective || role == RoleManager
}

// User representa un usuario del sistema (detective o manager).
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Role         string // detective, manager
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
