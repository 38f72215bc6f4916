package response

import (
	"digital-menu/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type UserResponse struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	IsActive bool      `json:"is_active"`
}

type LoginResponse struct {
	AccessToken  string        `json:"access_token"`
	RefreshToken string        `json:"refresh_token"`
	User         *UserResponse `json:"user,omitempty"`
}

type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

func FromUserView(v *queries.AuthorizedUserView) *UserResponse {
	if v == nil {
		return nil
	}
	var res UserResponse
	if err := copier.Copy(&res, v); err != nil {
		return &UserResponse{ID: v.ID, Email: v.Email, Role: v.Role, IsActive: v.IsActive}
	}
	return &res
}
