package entity

// Roles válidos para User.
const (
	RoleManager  = "manager"
	RoleStockist = "stockist"
	RoleCashier  = "cashier"
)

// User representa un usuario del panel de administración. El password se
// guarda en texto plano: esto es aceptable únicamente porque el sistema es
// una demo local, nunca una postura de producción.
type User struct {
	ID       int64    `json:"id"`
	Name     string   `json:"name"`
	Email    string   `json:"email"`
	Roles    []string `json:"roles"` // no vacío: manager, stockist, cashier
	Password string   `json:"password"`
	Active   bool     `json:"is_active"`
}
