package domain

// Identity es la identidad verificada que resuelve el middleware de auth a partir
// del Bearer token. Incluye el contacto porque las notificaciones del ciclo de
// vida lo propagan a la contraparte.
type Identity struct {
	ID    string
	Email string
	Name  string
	Phone string
	Role  string // "user" | "adm"
}

// IsAdmin indica si la identidad tiene rol administrativo.
func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}

// Roles válidos.
const (
	RoleUser  = "user"
	RoleAdmin = "adm"
)
