package repository

import "github.com/spynet/spynet-api/internal/domain/entity"

// CaseFilter filtros de igualdad opcionales para listar casos.
// Cadena vacía = sin restricción en ese campo.
type CaseFilter struct {
	Status      string
	DetectiveID string
}

// CaseRepository define el puerto de persistencia para Case (DIP).
// GetByID devuelve (nil, nil) cuando el caso no existe. El orden de los
// listados es el del store; la capa de política no garantiza orden.
type CaseRepository interface {
	Create(c *entity.Case) error
	GetByID(id string) (*entity.Case, error)
	List(f CaseFilter) ([]*entity.Case, error)
	// ListByDetective casos asignados al detective, filtrados por status si no es vacío.
	ListByDetective(detectiveID, status string) ([]*entity.Case, error)
	// ListUnassignedByManagers casos sin asignar cuyo manager_id está en managerIDs.
	ListUnassignedByManagers(managerIDs []string, status string) ([]*entity.Case, error)
	// Update aplica una actualización parcial; updated_at lo asigna el servidor.
	// Devuelve el caso actualizado o domain.ErrCaseNotFound si el id no existe.
	Update(id string, upd entity.CaseUpdate) (*entity.Case, error)
	Delete(id string) error
}
