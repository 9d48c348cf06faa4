package response

import (
	"time"

	"court-booking/internal/domain/user"
	"court-booking/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type UserResponse struct {
	ID        string    `json:"user_id"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Name      string    `json:"name"`
	Picture   *string   `json:"picture,omitempty"`
	Language  string    `json:"language"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

type AuthResponse struct {
	User  *UserResponse `json:"user"`
	Token string        `json:"token,omitempty"`
}

func FromUser(u *user.User) *UserResponse {
	return &UserResponse{
		ID:        u.ID(),
		Email:     u.Email().Value(),
		Phone:     u.Phone(),
		Name:      u.Name(),
		Picture:   u.Picture(),
		Language:  u.Language().String(),
		Role:      u.Role().String(),
		CreatedAt: u.CreatedAt(),
	}
}

func FromUserView(v *queries.UserView) *UserResponse {
	res := &UserResponse{}
	_ = copier.Copy(res, v)
	return res
}

func FromUserViews(vs []*queries.UserView) []*UserResponse {
	res := make([]*UserResponse, 0, len(vs))
	_ = copier.Copy(&res, vs)
	return res
}

type MessageResponse struct {
	Message string `json:"message"`
}
