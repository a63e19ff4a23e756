package dto

import "app/internal/model"

// UserResponseDTO is returned in API responses
type UserResponseDTO struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	Avatar string `json:"avatar"`
	Theme  string `json:"theme"`
}

func NewUserResponse(u *model.User) UserResponseDTO {
	return UserResponseDTO{
		ID:     u.ID,
		Name:   u.Name,
		Email:  u.Email,
		Role:   string(u.Role),
		Avatar: u.Avatar,
		Theme:  u.Theme,
	}
}

// UpdateProfileDTO carries profile changes. Omitted fields keep their
// stored values; a new password requires the current one.
type UpdateProfileDTO struct {
	Name            string `json:"name"`
	Email           string `json:"email" validate:"omitempty,email"`
	Avatar          string `json:"avatar" validate:"omitempty,url"`
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword" validate:"omitempty,min=6"`
}

// ThemeDTO sets the persisted UI preference.
type ThemeDTO struct {
	Theme string `json:"theme" validate:"required,oneof=light dark"`
}

type LeaderboardEntryDTO struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
	Points int    `json:"points"`
}
