package domain

// Action acción sobre un recurso, para el chequeo de capacidades.
type Action string

const (
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// Resource recurso sobre el que se decide, con su dueño.
type Resource struct {
	Kind    string // "offer", "user", ...
	OwnerID string
}

// Authorize decide si la identidad puede ejecutar la acción sobre el recurso,
// independiente del transporte. Reglas:
//   - update: solo el dueño.
//   - delete: el dueño o un admin.
//
// Devuelve nil si se permite, ErrForbidden si no.
func Authorize(id Identity, res Resource, action Action) error {
	switch action {
	case ActionUpdate:
		if id.ID == res.OwnerID {
			return nil
		}
	case ActionDelete:
		if id.ID == res.OwnerID || id.IsAdmin() {
			return nil
		}
	}
	return ErrForbidden
}
