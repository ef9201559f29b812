// Package policy concentra las reglas de autorización por rol: quién puede
// ver o mutar qué, y cómo se recorta una actualización según el rol del caller.
// Todo es puro (sin I/O); los use cases aplican estas reglas en el orden
// rol → existencia → propiedad/campos.
package policy

import (
	"github.com/spynet/spynet-api/internal/domain"
	"github.com/spynet/spynet-api/internal/domain/entity"
)

// CanReadCases indica si el rol puede listar/ver casos (detective o manager).
func CanReadCases(role string) bool {
	return role == entity.RoleDetective || role == entity.RoleManager
}

// CanManageCases indica si el rol puede crear/eliminar casos (solo manager).
func CanManageCases(role string) bool {
	return role == entity.RoleManager
}

// CanListUsers indica si el rol puede listar todos los usuarios (solo manager).
func CanListUsers(role string) bool {
	return role == entity.RoleManager
}

// CanViewUser: un manager ve cualquier perfil; los demás solo el propio.
func CanViewUser(callerRole, callerID, targetID string) bool {
	return callerRole == entity.RoleManager || callerID == targetID
}

// CanUpdateUser: un manager actualiza cualquier campo de cualquier usuario.
// Un no-manager solo puede actualizarse a sí mismo y únicamente el campo name.
func CanUpdateUser(callerRole, callerID, targetID string, fields []string) bool {
	if callerRole == entity.RoleManager {
		return true
	}
	if callerID != targetID {
		return false
	}
	for _, f := range fields {
		if f != "name" {
			return false
		}
	}
	return true
}

// CanViewCase: un manager ve cualquier caso; un detective solo los asignados a él.
func CanViewCase(callerRole, callerID string, c *entity.Case) bool {
	if callerRole == entity.RoleManager {
		return true
	}
	return c.AssignedTo(callerID)
}

// NarrowCaseUpdate recorta la actualización según el rol del caller.
//
// Manager: todos los campos pasan. Detective: primero se verifica la
// asignación (ErrForbidden si el caso no es suyo, antes de cualquier recorte)
// y luego los campos se reducen en silencio a {status, details}; los demás se
// descartan sin error. Si tras el recorte no queda nada, ErrInvalidInput.
func NarrowCaseUpdate(callerRole, callerID string, c *entity.Case, upd entity.CaseUpdate) (entity.CaseUpdate, error) {
	if callerRole == entity.RoleDetective {
		if !c.AssignedTo(callerID) {
			return entity.CaseUpdate{}, domain.ErrForbidden
		}
		upd = entity.CaseUpdate{
			Status:  upd.Status,
			Details: upd.Details,
		}
	}
	if upd.IsEmpty() {
		return entity.CaseUpdate{}, domain.ErrInvalidInput
	}
	return upd, nil
}

// MergeVisible une los casos propios del detective con los casos sin asignar
// de sus managers delegados, deduplicando por id. El conjunto propio tiene
// precedencia (en la práctica los conjuntos son disjuntos por construcción:
// un caso no puede estar asignado y sin asignar a la vez).
func MergeVisible(own, delegated []*entity.Case) []*entity.Case {
	merged := make([]*entity.Case, 0, len(own)+len(delegated))
	seen := make(map[string]struct{}, len(own))
	for _, c := range own {
		if _, ok := seen[c.ID]; ok {
			continue
		}
		seen[c.ID] = struct{}{}
		merged = append(merged, c)
	}
	for _, c := range delegated {
		if _, ok := seen[c.ID]; ok {
			continue
		}
		seen[c.ID] = struct{}{}
		merged = append(merged, c)
	}
	return merged
}
