package dto

// LoginRequestDTO is the credential triple checked at login. Role must
// match the stored account's role exactly.
type LoginRequestDTO struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role" validate:"required,oneof=Learner Instructor Admin"`
}

// RegisterRequestDTO creates a Learner or Instructor account.
type RegisterRequestDTO struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"required,oneof=Learner Instructor"`
}

// AuthResponseDTO is returned by both login and register.
type AuthResponseDTO struct {
	Token string          `json:"token"`
	User  UserResponseDTO `json:"user"`
}
