package usecase

import (
	"context"

	"github.com/ayushgupta5924/quickbucks/internal/model"
	"github.com/ayushgupta5924/quickbucks/internal/task"
	repo "github.com/ayushgupta5924/quickbucks/internal/task/repository"
	userrepo "github.com/ayushgupta5924/quickbucks/internal/user/repository"
)

// Complete marks a pending task completed and credits its reward to the
// owner's wallet. Completing twice is rejected, so a reward is paid at most
// once per task.
func (uc *implUseCase) Complete(ctx context.Context, sc model.Scope, id string) (task.CompleteTaskOutput, error) {
	completed, err := uc.repo.CompleteTask(ctx, repo.CompleteTaskOptions{
		ID:          id,
		UserID:      sc.UserID,
		CompletedAt: uc.now(),
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Complete CompleteTask: %v", err)
		return task.CompleteTaskOutput{}, err
	}

	if completed.ID == "" {
		// No pending row matched: distinguish missing from already done.
		existing, err := uc.repo.GetOneTask(ctx, repo.GetOneTaskOptions{ID: id, UserID: sc.UserID})
		if err != nil {
			uc.l.Errorf(ctx, "uc.Complete GetOneTask: %v", err)
			return task.CompleteTaskOutput{}, err
		}
		if existing.ID == "" {
			return task.CompleteTaskOutput{}, task.ErrTaskNotFound
		}
		return task.CompleteTaskOutput{}, task.ErrAlreadyCompleted
	}

	wallet, err := uc.creditReward(ctx, sc, completed)
	if err != nil {
		return task.CompleteTaskOutput{}, err
	}

	return task.CompleteTaskOutput{Task: completed, Wallet: wallet}, nil
}

func (uc *implUseCase) creditReward(ctx context.Context, sc model.Scope, completed model.Task) (int64, error) {
	if completed.Reward <= 0 {
		owner, err := uc.userRepo.GetOneUser(ctx, userrepo.GetOneUserOptions{ID: sc.UserID})
		if err != nil {
			uc.l.Errorf(ctx, "uc.Complete GetOneUser: %v", err)
			return 0, err
		}
		return owner.Wallet, nil
	}

	owner, err := uc.userRepo.CreditWallet(ctx, userrepo.CreditWalletOptions{
		UserID: sc.UserID,
		Amount: completed.Reward,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Complete CreditWallet: %v", err)
		return 0, err
	}
	return owner.Wallet, nil
}
