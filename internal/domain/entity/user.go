package entity

import "time"

// Roles válidos para User. Enum cerrado: cualquier otro valor se rechaza en el borde.
const (
	RoleAdmin    = "admin"
	RoleCustomer = "customer"
	RoleSalesRep = "sales_rep"
)

// ValidRole indica si el string corresponde a un rol conocido.
func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleCustomer, RoleSalesRep:
		return true
	}
	return false
}

// User representa un usuario del sistema. El registro siempre crea customers;
// solo un admin puede cambiar el rol después.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Role         string // admin, customer, sales_rep
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
