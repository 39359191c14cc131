package usecase

import (
	"context"

	"github.com/ayushgupta5924/quickbucks/internal/user"
	repo "github.com/ayushgupta5924/quickbucks/internal/user/repository"
)

// Me returns the account profile, including the current wallet balance.
func (uc *implUseCase) Me(ctx context.Context, userID string) (user.MeOutput, error) {
	found, err := uc.repo.GetOneUser(ctx, repo.GetOneUserOptions{ID: userID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Me GetOneUser: %v", err)
		return user.MeOutput{}, err
	}
	if found.ID == "" {
		return user.MeOutput{}, user.ErrUserNotFound
	}
	return user.MeOutput{User: found}, nil
}
