package http

import (
	"time"

	"github.com/ayushgupta5924/quickbucks/internal/model"
	"github.com/ayushgupta5924/quickbucks/internal/user"
)

// --- Request DTOs ---

type registerReq struct {
	Email    string `json:"email"    binding:"required,email"`
	Name     string `json:"name"     binding:"required,min=1,max=100"`
	Password string `json:"password" binding:"required,min=6,max=72"`
}

func (r registerReq) toInput() user.RegisterInput {
	return user.RegisterInput{
		Email:    r.Email,
		Name:     r.Name,
		Password: r.Password,
	}
}

type loginReq struct {
	Email    string `json:"email"    binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (r loginReq) toInput() user.LoginInput {
	return user.LoginInput{
		Email:    r.Email,
		Password: r.Password,
	}
}

// --- Response DTOs ---

type userResp struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Wallet    int64     `json:"wallet"`
	CreatedAt time.Time `json:"created_at"`
}

func (h *handler) newUserResp(u model.User) userResp {
	return userResp{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Wallet:    u.Wallet,
		CreatedAt: u.CreatedAt,
	}
}

type authResp struct {
	User  userResp `json:"user"`
	Token string   `json:"token"`
}

func (h *handler) newAuthResp(out user.AuthOutput) authResp {
	return authResp{
		User:  h.newUserResp(out.User),
		Token: out.Token,
	}
}
