package dto

import "time"

// SignupRequest entrada para registro (password en texto, se hashea en use case).
type SignupRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=200"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role" validate:"required,oneof=detective manager"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse salida de signup/login: usuario + token de acceso.
type AuthResponse struct {
	User        UserResponse `json:"user"`
	AccessToken string       `json:"access_token"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UpdateUserRequest actualización parcial de un usuario. Punteros nil = no tocar.
type UpdateUserRequest struct {
	Name  *string `json:"name" validate:"omitempty,min=1,max=200"`
	Email *string `json:"email" validate:"omitempty,email"`
	Role  *string `json:"role" validate:"omitempty,oneof=detective manager"`
}

// Fields devuelve los nombres de los campos presentes en la petición.
func (r UpdateUserRequest) Fields() []string {
	var fields []string
	if r.Name != nil {
		fields = append(fields, "name")
	}
	if r.Email != nil {
		fields = append(fields, "email")
	}
	if r.Role != nil {
		fields = append(fields, "role")
	}
	return fields
}

// AssignDetectiveRequest entrada para delegar un detective al manager autenticado.
type AssignDetectiveRequest struct {
	DetectiveID string `json:"detective_id" validate:"required,uuid"`
}
