package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/ayushgupta5924/quickbucks/internal/model"
	"github.com/ayushgupta5924/quickbucks/internal/task"
	repo "github.com/ayushgupta5924/quickbucks/internal/task/repository"
	userrepo "github.com/ayushgupta5924/quickbucks/internal/user/repository"
)

func TestCompleteCreditsWallet(t *testing.T) {
	tasks := &mockTaskRepo{
		completeFn: func(ctx context.Context, opt repo.CompleteTaskOptions) (model.Task, error) {
			if opt.ID != "task-1" || opt.UserID != "user-1" {
				t.Errorf("unexpected options: %+v", opt)
			}
			if !opt.CompletedAt.Equal(base) {
				t.Errorf("CompletedAt = %v, want %v", opt.CompletedAt, base)
			}
			return model.Task{ID: opt.ID, UserID: opt.UserID, Reward: 150, Completed: true}, nil
		},
	}
	var credited userrepo.CreditWalletOptions
	users := &mockUserRepo{
		creditFn: func(ctx context.Context, opt userrepo.CreditWalletOptions) (model.User, error) {
			credited = opt
			return model.User{ID: opt.UserID, Wallet: 500}, nil
		},
	}
	uc := newTestUseCase(t, tasks, users)

	out, err := uc.Complete(context.Background(), sc, "task-1")
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}

	if credited.Amount != 150 || credited.UserID != "user-1" {
		t.Errorf("credit = %+v, want 150 to user-1", credited)
	}
	if out.Wallet != 500 {
		t.Errorf("Wallet = %d, want 500", out.Wallet)
	}
	if !out.Task.Completed {
		t.Error("returned task should be completed")
	}
}

func TestCompleteZeroRewardSkipsCredit(t *testing.T) {
	tasks := &mockTaskRepo{
		completeFn: func(ctx context.Context, opt repo.CompleteTaskOptions) (model.Task, error) {
			return model.Task{ID: opt.ID, Reward: 0, Completed: true}, nil
		},
	}
	users := &mockUserRepo{
		creditFn: func(ctx context.Context, opt userrepo.CreditWalletOptions) (model.User, error) {
			t.Error("CreditWallet should not be called for zero reward")
			return model.User{}, nil
		},
		getOneFn: func(ctx context.Context, opt userrepo.GetOneUserOptions) (model.User, error) {
			return model.User{ID: opt.ID, Wallet: 42}, nil
		},
	}
	uc := newTestUseCase(t, tasks, users)

	out, err := uc.Complete(context.Background(), sc, "task-1")
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if out.Wallet != 42 {
		t.Errorf("Wallet = %d, want current balance 42", out.Wallet)
	}
}

func TestCompleteNotFound(t *testing.T) {
	tasks := &mockTaskRepo{
		completeFn: func(ctx context.Context, opt repo.CompleteTaskOptions) (model.Task, error) {
			return model.Task{}, nil
		},
		getOneFn: func(ctx context.Context, opt repo.GetOneTaskOptions) (model.Task, error) {
			return model.Task{}, nil
		},
	}
	uc := newTestUseCase(t, tasks, &mockUserRepo{})

	_, err := uc.Complete(context.Background(), sc, "missing")
	if !errors.Is(err, task.ErrTaskNotFound) {
		t.Errorf("err = %v, want ErrTaskNotFound", err)
	}
}

func TestCompleteAlreadyCompleted(t *testing.T) {
	tasks := &mockTaskRepo{
		completeFn: func(ctx context.Context, opt repo.CompleteTaskOptions) (model.Task, error) {
			return model.Task{}, nil
		},
		getOneFn: func(ctx context.Context, opt repo.GetOneTaskOptions) (model.Task, error) {
			return model.Task{ID: opt.ID, Completed: true}, nil
		},
	}
	users := &mockUserRepo{
		creditFn: func(ctx context.Context, opt userrepo.CreditWalletOptions) (model.User, error) {
			t.Error("double completion must not credit the wallet again")
			return model.User{}, nil
		},
	}
	uc := newTestUseCase(t, tasks, users)

	_, err := uc.Complete(context.Background(), sc, "task-1")
	if !errors.Is(err, task.ErrAlreadyCompleted) {
		t.Errorf("err = %v, want ErrAlreadyCompleted", err)
	}
}

func TestDeleteNotFound(t *testing.T) {
	tasks := &mockTaskRepo{
		deleteFn: func(ctx context.Context, opt repo.DeleteTaskOptions) (bool, error) {
			return false, nil
		},
	}
	uc := newTestUseCase(t, tasks, &mockUserRepo{})

	err := uc.Delete(context.Background(), sc, "missing")
	if !errors.Is(err, task.ErrTaskNotFound) {
		t.Errorf("err = %v, want ErrTaskNotFound", err)
	}
}

func TestDelete(t *testing.T) {
	tasks := &mockTaskRepo{
		deleteFn: func(ctx context.Context, opt repo.DeleteTaskOptions) (bool, error) {
			if opt.ID != "task-1" || opt.UserID != "user-1" {
				t.Errorf("unexpected options: %+v", opt)
			}
			return true, nil
		},
	}
	uc := newTestUseCase(t, tasks, &mockUserRepo{})

	if err := uc.Delete(context.Background(), sc, "task-1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
}

func TestParse(t *testing.T) {
	uc := newTestUseCase(t, &mockTaskRepo{}, &mockUserRepo{})

	out, err := uc.Parse(context.Background(), task.ParseTaskInput{
		Text: "do laundry tomorrow for 50",
	})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if out.Draft.Title != "laundry tomorrow" {
		t.Errorf("Title = %q, want %q", out.Draft.Title, "laundry tomorrow")
	}
	if out.Draft.Category != model.CategoryPersonal {
		t.Errorf("Category = %s, want personal", out.Draft.Category)
	}
	if out.Draft.Reward != 50 {
		t.Errorf("Reward = %d, want 50", out.Draft.Reward)
	}
}

func TestParseEmptyText(t *testing.T) {
	uc := newTestUseCase(t, &mockTaskRepo{}, &mockUserRepo{})

	_, err := uc.Parse(context.Background(), task.ParseTaskInput{Text: "  \n "})
	if !errors.Is(err, task.ErrEmptyInput) {
		t.Errorf("err = %v, want ErrEmptyInput", err)
	}
}
