package repository

import (
	"context"

	"github.com/ayushgupta5924/quickbucks/internal/model"
)

// Repository is the composed interface for the user domain data store.
type Repository interface {
	UserRepository
}

// UserRepository defines all data access methods for the User entity.
type UserRepository interface {
	CreateUser(ctx context.Context, opt CreateUserOptions) (model.User, error)
	GetOneUser(ctx context.Context, opt GetOneUserOptions) (model.User, error)
	CreditWallet(ctx context.Context, opt CreditWalletOptions) (model.User, error)
}
