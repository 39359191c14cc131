package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/ayushgupta5924/quickbucks/internal/model"
	"github.com/ayushgupta5924/quickbucks/internal/user"
	repo "github.com/ayushgupta5924/quickbucks/internal/user/repository"
	"github.com/ayushgupta5924/quickbucks/pkg/scope"
)

// Register creates an account and returns it with a signed token.
func (uc *implUseCase) Register(ctx context.Context, input user.RegisterInput) (user.AuthOutput, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Register hash: %v", err)
		return user.AuthOutput{}, err
	}

	created, err := uc.repo.CreateUser(ctx, repo.CreateUserOptions{
		ID:           uuid.NewString(),
		Email:        strings.ToLower(strings.TrimSpace(input.Email)),
		Name:         strings.TrimSpace(input.Name),
		PasswordHash: string(hash),
	})
	if err != nil {
		if errors.Is(err, repo.ErrDuplicateEmail) {
			return user.AuthOutput{}, user.ErrEmailTaken
		}
		uc.l.Errorf(ctx, "uc.Register CreateUser: %v", err)
		return user.AuthOutput{}, err
	}

	return uc.authOutput(ctx, created)
}

// Login verifies credentials and returns the account with a signed token.
func (uc *implUseCase) Login(ctx context.Context, input user.LoginInput) (user.AuthOutput, error) {
	found, err := uc.repo.GetOneUser(ctx, repo.GetOneUserOptions{
		Email: strings.ToLower(strings.TrimSpace(input.Email)),
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Login GetOneUser: %v", err)
		return user.AuthOutput{}, err
	}
	if found.ID == "" {
		return user.AuthOutput{}, user.ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(found.PasswordHash), []byte(input.Password)) != nil {
		return user.AuthOutput{}, user.ErrInvalidCredentials
	}

	return uc.authOutput(ctx, found)
}

func (uc *implUseCase) authOutput(ctx context.Context, u model.User) (user.AuthOutput, error) {
	token, err := uc.jwtManager.Issue(scope.Payload{UserID: u.ID, Email: u.Email})
	if err != nil {
		uc.l.Errorf(ctx, "uc token issue: %v", err)
		return user.AuthOutput{}, err
	}
	return user.AuthOutput{User: u, Token: token}, nil
}
