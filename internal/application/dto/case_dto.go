package dto

import (
	"time"

	"github.com/spynet/spynet-api/internal/domain/entity"
)

// CreateCaseRequest entrada para crear un caso (solo manager).
// manager_id no viene en el body: se toma del manager autenticado.
type CreateCaseRequest struct {
	Title       string  `json:"title" validate:"required,min=1,max=300"`
	Details     string  `json:"details" validate:"required"`
	Location    string  `json:"location" validate:"required,max=300"`
	Status      string  `json:"status" validate:"omitempty,oneof=open in_progress closed"`
	DetectiveID *string `json:"detective_id" validate:"omitempty,uuid"`
}

// UpdateCaseRequest actualización parcial de un caso. Punteros nil = no tocar.
// En detective_id, cadena vacía desasigna el caso.
type UpdateCaseRequest struct {
	Title       *string `json:"title"`
	Details     *string `json:"details"`
	Location    *string `json:"location"`
	Status      *string `json:"status" validate:"omitempty,oneof=open in_progress closed"`
	DetectiveID *string `json:"detective_id"`
}

// ToUpdate convierte la petición al tipo de dominio.
func (r UpdateCaseRequest) ToUpdate() entity.CaseUpdate {
	return entity.CaseUpdate{
		Title:       r.Title,
		Details:     r.Details,
		Location:    r.Location,
		Status:      r.Status,
		DetectiveID: r.DetectiveID,
	}
}

// CaseListFilter filtros de query para listar casos.
type CaseListFilter struct {
	Status      string `query:"status"`
	DetectiveID string `query:"detective_id"`
}

// CaseResponse salida de un caso.
type CaseResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Details     string    `json:"details"`
	Location    string    `json:"location"`
	Status      string    `json:"status"`
	DetectiveID *string   `json:"detective_id"`
	ManagerID   string    `json:"manager_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
