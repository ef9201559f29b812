package entity

import "time"

// Estados válidos para Case.
const (
	StatusOpen       = "open"
	StatusInProgress = "in_progress"
	StatusClosed     = "closed"
)

// ValidStatus indica si el estado es uno de los soportados.
func ValidStatus(status string) bool {
	return status == StatusOpen || status == StatusInProgress || status == StatusClosed
}

// Case representa un caso de investigación.
// ManagerID se fija al crear (el manager creador) y nunca se modifica después.
// DetectiveID nil significa caso sin asignar.
type Case struct {
	ID          string
	Title       string
	Details     string
	Location    string
	Status      string // open, in_progress, closed (inicial: open)
	DetectiveID *string
	ManagerID   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// AssignedTo indica si el caso está asignado al detective dado.
func (c *Case) AssignedTo(detectiveID string) bool {
	return c.DetectiveID != nil && *c.DetectiveID == detectiveID
}

// CaseUpdate describe una actualización parcial de un caso. Un puntero nil
// significa "no tocar ese campo". En DetectiveID, cadena vacía desasigna el caso.
// ManagerID no aparece aquí a propósito: es inmutable.
type CaseUpdate struct {
	Title       *string
	Details     *string
	Location    *string
	Status      *string
	DetectiveID *string
}

// IsEmpty indica si la actualización no toca ningún campo.
func (u CaseUpdate) IsEmpty() bool {
	return u.Title == nil && u.Details == nil && u.Location == nil &&
		u.Status == nil && u.DetectiveID == nil
}
