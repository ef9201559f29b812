package usecase

import (
	"time"

	"github.com/spynet/spynet-api/internal/application/dto"
	"github.com/spynet/spynet-api/internal/domain"
	"github.com/spynet/spynet-api/internal/domain/entity"
	"github.com/spynet/spynet-api/internal/domain/policy"
	"github.com/spynet/spynet-api/internal/domain/repository"
)

// UserUseCase aplica reglas de negocio para usuarios y delegaciones.
type UserUseCase struct {
	users       repository.UserRepository
	assignments repository.AssignmentRepository
}

// NewUserUseCase construye el caso de uso con los puertos de persistencia.
func NewUserUseCase(users repository.UserRepository, assignments repository.AssignmentRepository) *UserUseCase {
	return &UserUseCase{users: users, assignments: assignments}
}

// List devuelve todos los usuarios (solo manager, gate en el router).
func (uc *UserUseCase) List() ([]dto.UserResponse, error) {
	users, err := uc.users.List()
	if err != nil {
		return nil, err
	}
	return toUserResponses(users), nil
}

// GetByID devuelve un usuario. El chequeo de permiso va antes de la consulta:
// un caller sin acceso no aprende si el usuario existe.
func (uc *UserUseCase) GetByID(callerID, callerRole, targetID string) (*dto.UserResponse, error) {
	if !policy.CanViewUser(callerRole, callerID, targetID) {
		return nil, domain.ErrForbidden
	}
	user, err := uc.users.GetByID(targetID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return toUserResponse(user), nil
}

// Update actualiza un usuario. Un manager puede tocar cualquier campo de
// cualquier usuario; un no-manager solo su propio name. Petición sin campos → ErrInvalidInput.
func (uc *UserUseCase) Update(callerID, callerRole, targetID string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	if !policy.CanUpdateUser(callerRole, callerID, targetID, in.Fields()) {
		return nil, domain.ErrForbidden
	}
	if len(in.Fields()) == 0 {
		return nil, domain.ErrInvalidInput
	}
	user, err := uc.users.GetByID(targetID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if in.Name != nil {
		user.Name = *in.Name
	}
	if in.Email != nil {
		user.Email = *in.Email
	}
	if in.Role != nil {
		user.Role = *in.Role
	}
	user.UpdatedAt = time.Now()
	if err := uc.users.Update(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// ListDetectives lista usuarios con rol detective. Con managerID no vacío,
// solo los delegados a ese manager.
func (uc *UserUseCase) ListDetectives(managerID string) ([]dto.UserResponse, error) {
	var (
		users []*entity.User
		err   error
	)
	if managerID != "" {
		users, err = uc.users.ListDetectivesByManager(managerID)
	} else {
		users, err = uc.users.ListByRole(entity.RoleDetective)
	}
	if err != nil {
		return nil, err
	}
	return toUserResponses(users), nil
}

// AssignDetective delega un detective al manager autenticado.
// ErrUserNotFound si el detective no existe o el id no es de un detective;
// ErrDuplicate si la delegación ya existe.
func (uc *UserUseCase) AssignDetective(managerID, detectiveID string) error {
	detective, err := uc.users.GetByID(detectiveID)
	if err != nil {
		return err
	}
	if detective == nil || detective.Role != entity.RoleDetective {
		return domain.ErrUserNotFound
	}
	return uc.assignments.Create(&entity.ManagerAssignment{
		DetectiveID: detectiveID,
		ManagerID:   managerID,
		CreatedAt:   time.Now(),
	})
}

// UnassignDetective elimina la delegación. ErrNotFound si no existía.
func (uc *UserUseCase) UnassignDetective(managerID, detectiveID string) error {
	return uc.assignments.Delete(detectiveID, managerID)
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func toUserResponses(list []*entity.User) []dto.UserResponse {
	out := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		out = append(out, *toUserResponse(u))
	}
	return out
}
