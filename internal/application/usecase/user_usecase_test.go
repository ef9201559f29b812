package usecase_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spynet/spynet-api/internal/application/dto"
	"github.com/spynet/spynet-api/internal/application/usecase"
	"github.com/spynet/spynet-api/internal/domain"
	"github.com/spynet/spynet-api/internal/domain/entity"
)

func seedUser(repo *fakeUserRepo, id, name, role string) {
	now := time.Now()
	_ = repo.Create(&entity.User{
		ID:        id,
		Name:      name,
		Email:     id + "@spynet.test",
		Role:      role,
		CreatedAt: now,
		UpdatedAt: now,
	})
}

func newUserUC() (*usecase.UserUseCase, *fakeUserRepo, *fakeAssignmentRepo) {
	assignments := newFakeAssignmentRepo()
	users := newFakeUserRepo(assignments)
	return usecase.NewUserUseCase(users, assignments), users, assignments
}

func TestUserGet_DetectivePerfilAjeno_Forbidden(t *testing.T) {
	uc, users, _ := newUserUC()
	seedUser(users, "d1", "Dupin", entity.RoleDetective)
	seedUser(users, "d2", "Marlowe", entity.RoleDetective)

	_, err := uc.GetByID("d1", entity.RoleDetective, "d2")
	assert.ErrorIs(t, err, domain.ErrForbidden)

	// El chequeo de permiso va antes que la existencia: mismo error con un id inexistente.
	_, err = uc.GetByID("d1", entity.RoleDetective, "fantasma")
	assert.ErrorIs(t, err, domain.ErrForbidden,
		"un caller sin acceso no debe aprender si el usuario existe")
}

func TestUserGet_SelfYManager_OK(t *testing.T) {
	uc, users, _ := newUserUC()
	seedUser(users, "d1", "Dupin", entity.RoleDetective)
	seedUser(users, "m1", "Vidocq", entity.RoleManager)

	out, err := uc.GetByID("d1", entity.RoleDetective, "d1")
	require.NoError(t, err)
	assert.Equal(t, "Dupin", out.Name)

	out, err = uc.GetByID("m1", entity.RoleManager, "d1")
	require.NoError(t, err)
	assert.Equal(t, "d1", out.ID)
}

func TestUserUpdate_SelfName_OK(t *testing.T) {
	uc, users, _ := newUserUC()
	seedUser(users, "d1", "Dupin", entity.RoleDetective)

	out, err := uc.Update("d1", entity.RoleDetective, "d1", dto.UpdateUserRequest{
		Name: strPtr("Auguste Dupin"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Auguste Dupin", out.Name)
}

func TestUserUpdate_SelfRole_Forbidden(t *testing.T) {
	uc, users, _ := newUserUC()
	seedUser(users, "d1", "Dupin", entity.RoleDetective)

	_, err := uc.Update("d1", entity.RoleDetective, "d1", dto.UpdateUserRequest{
		Role: strPtr(entity.RoleManager),
	})
	assert.ErrorIs(t, err, domain.ErrForbidden,
		"un no-manager no puede escalar su propio rol")
}

func TestUserUpdate_ManagerCualquierCampo(t *testing.T) {
	uc, users, _ := newUserUC()
	seedUser(users, "d1", "Dupin", entity.RoleDetective)
	seedUser(users, "m1", "Vidocq", entity.RoleManager)

	out, err := uc.Update("m1", entity.RoleManager, "d1", dto.UpdateUserRequest{
		Name: strPtr("C. Auguste Dupin"),
		Role: strPtr(entity.RoleManager),
	})
	require.NoError(t, err)
	assert.Equal(t, "C. Auguste Dupin", out.Name)
	assert.Equal(t, entity.RoleManager, out.Role)
}

func TestUserUpdate_SinCampos_InvalidInput(t *testing.T) {
	uc, users, _ := newUserUC()
	seedUser(users, "m1", "Vidocq", entity.RoleManager)

	_, err := uc.Update("m1", entity.RoleManager, "m1", dto.UpdateUserRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestListDetectives_TodosYPorManager(t *testing.T) {
	uc, users, assignments := newUserUC()
	seedUser(users, "d1", "Dupin", entity.RoleDetective)
	seedUser(users, "d2", "Marlowe", entity.RoleDetective)
	seedUser(users, "m1", "Vidocq", entity.RoleManager)
	require.NoError(t, assignments.Create(&entity.ManagerAssignment{DetectiveID: "d1", ManagerID: "m1"}))

	all, err := uc.ListDetectives("")
	require.NoError(t, err)
	assert.Len(t, all, 2, "sin filtro se listan todos los detectives, nunca los managers")

	mine, err := uc.ListDetectives("m1")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "d1", mine[0].ID)
}

func TestAssignDetective_FlujoCompleto(t *testing.T) {
	uc, users, _ := newUserUC()
	seedUser(users, "d1", "Dupin", entity.RoleDetective)
	seedUser(users, "m1", "Vidocq", entity.RoleManager)
	seedUser(users, "m2", "Lestrade", entity.RoleManager)

	require.NoError(t, uc.AssignDetective("m1", "d1"))

	// El par es único
	err := uc.AssignDetective("m1", "d1")
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	// Un detective puede estar delegado a varios managers
	require.NoError(t, uc.AssignDetective("m2", "d1"))

	// Solo ids de detectives reales
	err = uc.AssignDetective("m1", "fantasma")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
	err = uc.AssignDetective("m1", "m2")
	assert.ErrorIs(t, err, domain.ErrUserNotFound, "no se puede delegar a un manager como detective")

	// Eliminar la delegación
	require.NoError(t, uc.UnassignDetective("m1", "d1"))
	err = uc.UnassignDetective("m1", "d1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
