package repository

import "github.com/spynet/spynet-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
// Los Get* devuelven (nil, nil) cuando el registro no existe.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	Update(user *entity.User) error
	List() ([]*entity.User, error)
	ListByRole(role string) ([]*entity.User, error)
	// ListDetectivesByManager lista los detectives delegados a un manager
	// (join con manager_assignments).
	ListDetectivesByManager(managerID string) ([]*entity.User, error)
}
