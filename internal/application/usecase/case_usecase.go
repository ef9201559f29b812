package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/spynet/spynet-api/internal/application/dto"
	"github.com/spynet/spynet-api/internal/domain"
	"github.com/spynet/spynet-api/internal/domain/entity"
	"github.com/spynet/spynet-api/internal/domain/policy"
	"github.com/spynet/spynet-api/internal/domain/repository"
)

// CaseUseCase aplica las reglas de visibilidad y mutación de casos.
// El orden de verificación es siempre: rol (middleware) → existencia → propiedad/campos.
type CaseUseCase struct {
	cases       repository.CaseRepository
	assignments repository.AssignmentRepository
}

// NewCaseUseCase construye el caso de uso con los puertos de persistencia.
func NewCaseUseCase(cases repository.CaseRepository, assignments repository.AssignmentRepository) *CaseUseCase {
	return &CaseUseCase{cases: cases, assignments: assignments}
}

// List resuelve el conjunto de casos visibles para el caller.
//
// Manager: todos los casos, con filtros opcionales de status y detective_id.
// Detective: sus casos asignados ∪ casos sin asignar de sus managers delegados,
// deduplicado por id. El filtro detective_id se ignora para detectives: su
// visibilidad siempre es sobre sí mismos.
func (uc *CaseUseCase) List(callerID, callerRole string, f dto.CaseListFilter) ([]dto.CaseResponse, error) {
	if callerRole == entity.RoleManager {
		list, err := uc.cases.List(repository.CaseFilter{
			Status:      f.Status,
			DetectiveID: f.DetectiveID,
		})
		if err != nil {
			return nil, err
		}
		return toCaseResponses(list), nil
	}

	own, err := uc.cases.ListByDetective(callerID, f.Status)
	if err != nil {
		return nil, err
	}
	managerIDs, err := uc.assignments.ManagerIDsForDetective(callerID)
	if err != nil {
		return nil, err
	}
	var delegated []*entity.Case
	if len(managerIDs) > 0 {
		delegated, err = uc.cases.ListUnassignedByManagers(managerIDs, f.Status)
		if err != nil {
			return nil, err
		}
	}
	return toCaseResponses(policy.MergeVisible(own, delegated)), nil
}

// GetByID devuelve un caso. Detectives solo pueden ver casos asignados a ellos.
func (uc *CaseUseCase) GetByID(callerID, callerRole, id string) (*dto.CaseResponse, error) {
	c, err := uc.cases.GetByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrCaseNotFound
	}
	if !policy.CanViewCase(callerRole, callerID, c) {
		return nil, domain.ErrForbidden
	}
	return toCaseResponse(c), nil
}

// Create crea un caso nuevo. El manager_id queda fijado al manager autenticado
// y no vuelve a cambiar. Status por defecto: open.
func (uc *CaseUseCase) Create(managerID string, in dto.CreateCaseRequest) (*dto.CaseResponse, error) {
	status := in.Status
	if status == "" {
		status = entity.StatusOpen
	}
	now := time.Now()
	c := &entity.Case{
		ID:          uuid.New().String(),
		Title:       in.Title,
		Details:     in.Details,
		Location:    in.Location,
		Status:      status,
		DetectiveID: in.DetectiveID,
		ManagerID:   managerID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.cases.Create(c); err != nil {
		return nil, err
	}
	return toCaseResponse(c), nil
}

// Update actualiza un caso. Managers pueden tocar cualquier campo; detectives
// solo status y details de sus propios casos (los demás campos se descartan en
// silencio). Si no queda ningún campo válido, ErrInvalidInput.
func (uc *CaseUseCase) Update(callerID, callerRole, id string, in dto.UpdateCaseRequest) (*dto.CaseResponse, error) {
	c, err := uc.cases.GetByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrCaseNotFound
	}
	upd, err := policy.NarrowCaseUpdate(callerRole, callerID, c, in.ToUpdate())
	if err != nil {
		return nil, err
	}
	updated, err := uc.cases.Update(id, upd)
	if err != nil {
		return nil, err
	}
	return toCaseResponse(updated), nil
}

// Delete elimina un caso (solo manager, gate en el router). La existencia se
// verifica antes de mutar: id inexistente → ErrCaseNotFound.
func (uc *CaseUseCase) Delete(id string) error {
	c, err := uc.cases.GetByID(id)
	if err != nil {
		return err
	}
	if c == nil {
		return domain.ErrCaseNotFound
	}
	return uc.cases.Delete(id)
}

func toCaseResponse(c *entity.Case) *dto.CaseResponse {
	if c == nil {
		return nil
	}
	return &dto.CaseResponse{
		ID:          c.ID,
		Title:       c.Title,
		Details:     c.Details,
		Location:    c.Location,
		Status:      c.Status,
		DetectiveID: c.DetectiveID,
		ManagerID:   c.ManagerID,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func toCaseResponses(list []*entity.Case) []dto.CaseResponse {
	out := make([]dto.CaseResponse, 0, len(list))
	for _, c := range list {
		out = append(out, *toCaseResponse(c))
	}
	return out
}
