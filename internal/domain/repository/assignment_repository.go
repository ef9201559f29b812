package repository

import "github.com/spynet/spynet-api/internal/domain/entity"

// AssignmentRepository define el puerto de persistencia para ManagerAssignment.
// El par (detective_id, manager_id) es único; Create devuelve domain.ErrDuplicate
// si ya existe y Delete devuelve domain.ErrNotFound si no existe.
type AssignmentRepository interface {
	Create(a *entity.ManagerAssignment) error
	Delete(detectiveID, managerID string) error
	// ManagerIDsForDetective managers delegados al detective.
	ManagerIDsForDetective(detectiveID string) ([]string, error)
	// DetectiveIDsForManager detectives delegados al manager.
	DetectiveIDsForManager(managerID string) ([]string, error)
}
