package user

import "github.com/ayushgupta5924/quickbucks/internal/model"

// --- UseCase Inputs ---

type RegisterInput struct {
	Email    string
	Name     string
	Password string
}

type LoginInput struct {
	Email    string
	Password string
}

// --- UseCase Outputs ---

// AuthOutput is returned from both Register and Login.
type AuthOutput struct {
	User  model.User
	Token string
}

type MeOutput struct {
	User model.User
}
