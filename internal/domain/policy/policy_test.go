package policy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spynet/spynet-api/internal/domain"
	"github.com/spynet/spynet-api/internal/domain/entity"
	"github.com/spynet/spynet-api/internal/domain/policy"
)

func strPtr(s string) *string { return &s }

func caseAssignedTo(detectiveID string) *entity.Case {
	return &entity.Case{ID: "c1", Status: entity.StatusOpen, DetectiveID: &detectiveID, ManagerID: "m1"}
}

// ──────────────────────────────────────────────────────────────────────────────
// Gates de rol
// ──────────────────────────────────────────────────────────────────────────────

func TestGatesDeRol(t *testing.T) {
	assert.True(t, policy.CanReadCases(entity.RoleDetective))
	assert.True(t, policy.CanReadCases(entity.RoleManager))
	assert.False(t, policy.CanReadCases("otro"))

	assert.True(t, policy.CanManageCases(entity.RoleManager))
	assert.False(t, policy.CanManageCases(entity.RoleDetective))

	assert.True(t, policy.CanListUsers(entity.RoleManager))
	assert.False(t, policy.CanListUsers(entity.RoleDetective))
}

// ──────────────────────────────────────────────────────────────────────────────
// Visibilidad de usuarios
// ──────────────────────────────────────────────────────────────────────────────

func TestCanViewUser_ManagerVeCualquiera(t *testing.T) {
	assert.True(t, policy.CanViewUser(entity.RoleManager, "m1", "otro"))
}

func TestCanViewUser_DetectiveSoloSePropio(t *testing.T) {
	assert.True(t, policy.CanViewUser(entity.RoleDetective, "d1", "d1"),
		"un detective debe poder ver su propio perfil")
	assert.False(t, policy.CanViewUser(entity.RoleDetective, "d1", "d2"),
		"un detective no debe ver perfiles ajenos")
}

func TestCanUpdateUser_SelfSoloName(t *testing.T) {
	// Self actualizando solo name → permitido
	assert.True(t, policy.CanUpdateUser(entity.RoleDetective, "d1", "d1", []string{"name"}))
	// Self intentando escalar rol → denegado
	assert.False(t, policy.CanUpdateUser(entity.RoleDetective, "d1", "d1", []string{"role"}),
		"un no-manager no puede cambiar su propio rol")
	assert.False(t, policy.CanUpdateUser(entity.RoleDetective, "d1", "d1", []string{"name", "email"}))
	// Otro usuario → denegado aunque sea solo name
	assert.False(t, policy.CanUpdateUser(entity.RoleDetective, "d1", "d2", []string{"name"}))
	// Manager puede todo
	assert.True(t, policy.CanUpdateUser(entity.RoleManager, "m1", "d1", []string{"name", "email", "role"}))
}

// ──────────────────────────────────────────────────────────────────────────────
// Visibilidad de casos
// ──────────────────────────────────────────────────────────────────────────────

func TestCanViewCase_DetectiveSoloAsignados(t *testing.T) {
	c := caseAssignedTo("d1")
	assert.True(t, policy.CanViewCase(entity.RoleDetective, "d1", c))
	assert.False(t, policy.CanViewCase(entity.RoleDetective, "d2", c))

	unassigned := &entity.Case{ID: "c2", ManagerID: "m1"}
	assert.False(t, policy.CanViewCase(entity.RoleDetective, "d1", unassigned),
		"un caso sin asignar no es visible vía getCase para un detective")
}

func TestCanViewCase_ManagerVeCualquiera(t *testing.T) {
	assert.True(t, policy.CanViewCase(entity.RoleManager, "m2", caseAssignedTo("d1")),
		"un manager ve cualquier caso, sea o no el dueño")
}

// ──────────────────────────────────────────────────────────────────────────────
// NarrowCaseUpdate
// ──────────────────────────────────────────────────────────────────────────────

func TestNarrowCaseUpdate_ManagerTodosLosCampos(t *testing.T) {
	upd := entity.CaseUpdate{
		Title:       strPtr("nuevo título"),
		Location:    strPtr("Bogotá"),
		Status:      strPtr(entity.StatusClosed),
		DetectiveID: strPtr("d2"),
	}
	out, err := policy.NarrowCaseUpdate(entity.RoleManager, "m1", caseAssignedTo("d1"), upd)
	require.NoError(t, err)
	assert.Equal(t, upd, out, "para un manager la actualización pasa sin recortes")
}

func TestNarrowCaseUpdate_DetectiveRecortaASilencio(t *testing.T) {
	upd := entity.CaseUpdate{
		Title:       strPtr("no permitido"),
		Location:    strPtr("no permitido"),
		DetectiveID: strPtr("d2"),
		Status:      strPtr(entity.StatusInProgress),
		Details:     strPtr("avance del caso"),
	}
	out, err := policy.NarrowCaseUpdate(entity.RoleDetective, "d1", caseAssignedTo("d1"), upd)
	require.NoError(t, err)

	// Solo sobreviven status y details; el resto se descarta sin error.
	assert.Nil(t, out.Title)
	assert.Nil(t, out.Location)
	assert.Nil(t, out.DetectiveID)
	require.NotNil(t, out.Status)
	assert.Equal(t, entity.StatusInProgress, *out.Status)
	require.NotNil(t, out.Details)
	assert.Equal(t, "avance del caso", *out.Details)
}

func TestNarrowCaseUpdate_DetectiveCasoAjeno_Forbidden(t *testing.T) {
	upd := entity.CaseUpdate{Status: strPtr(entity.StatusClosed)}
	_, err := policy.NarrowCaseUpdate(entity.RoleDetective, "d2", caseAssignedTo("d1"), upd)
	assert.ErrorIs(t, err, domain.ErrForbidden,
		"el chequeo de asignación va antes de cualquier recorte de campos")
}

func TestNarrowCaseUpdate_SinCamposValidos_InvalidInput(t *testing.T) {
	// Detective pidiendo solo campos no permitidos → queda vacío → InvalidInput, no Forbidden.
	upd := entity.CaseUpdate{Title: strPtr("x"), Location: strPtr("y")}
	_, err := policy.NarrowCaseUpdate(entity.RoleDetective, "d1", caseAssignedTo("d1"), upd)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// Actualización vacía de un manager también es InvalidInput.
	_, err = policy.NarrowCaseUpdate(entity.RoleManager, "m1", caseAssignedTo("d1"), entity.CaseUpdate{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// MergeVisible
// ──────────────────────────────────────────────────────────────────────────────

func TestMergeVisible_UneYDeduplica(t *testing.T) {
	own := []*entity.Case{{ID: "c1"}, {ID: "c2"}}
	delegated := []*entity.Case{{ID: "c3"}, {ID: "c2"}, {ID: "c4"}}

	merged := policy.MergeVisible(own, delegated)

	ids := make([]string, 0, len(merged))
	for _, c := range merged {
		ids = append(ids, c.ID)
	}
	assert.Equal(t, []string{"c1", "c2", "c3", "c4"}, ids,
		"la unión se deduplica por id y el conjunto propio tiene precedencia")
}

func TestMergeVisible_ConjuntosVacios(t *testing.T) {
	assert.Empty(t, policy.MergeVisible(nil, nil))

	delegated := []*entity.Case{{ID: "c1"}}
	merged := policy.MergeVisible(nil, delegated)
	require.Len(t, merged, 1)
	assert.Equal(t, "c1", merged[0].ID)
}
