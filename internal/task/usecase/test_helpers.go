package usecase

import (
	"context"

	"github.com/ayushgupta5924/quickbucks/internal/model"
	repo "github.com/ayushgupta5924/quickbucks/internal/task/repository"
	userrepo "github.com/ayushgupta5924/quickbucks/internal/user/repository"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}

// mockTaskRepo implements repository.Repository with overridable funcs.
type mockTaskRepo struct {
	createFn   func(ctx context.Context, opt repo.CreateTaskOptions) (model.Task, error)
	getOneFn   func(ctx context.Context, opt repo.GetOneTaskOptions) (model.Task, error)
	listFn     func(ctx context.Context, opt repo.ListTasksOptions) ([]model.Task, int, error)
	listAllFn  func(ctx context.Context, sc model.Scope) ([]model.Task, error)
	completeFn func(ctx context.Context, opt repo.CompleteTaskOptions) (model.Task, error)
	deleteFn   func(ctx context.Context, opt repo.DeleteTaskOptions) (bool, error)
}

func (m *mockTaskRepo) CreateTask(ctx context.Context, opt repo.CreateTaskOptions) (model.Task, error) {
	if m.createFn == nil {
		return model.Task{}, nil
	}
	return m.createFn(ctx, opt)
}

func (m *mockTaskRepo) GetOneTask(ctx context.Context, opt repo.GetOneTaskOptions) (model.Task, error) {
	if m.getOneFn == nil {
		return model.Task{}, nil
	}
	return m.getOneFn(ctx, opt)
}

func (m *mockTaskRepo) ListTasks(ctx context.Context, opt repo.ListTasksOptions) ([]model.Task, int, error) {
	if m.listFn == nil {
		return nil, 0, nil
	}
	return m.listFn(ctx, opt)
}

func (m *mockTaskRepo) ListAllTasks(ctx context.Context, sc model.Scope) ([]model.Task, error) {
	if m.listAllFn == nil {
		return nil, nil
	}
	return m.listAllFn(ctx, sc)
}

func (m *mockTaskRepo) CompleteTask(ctx context.Context, opt repo.CompleteTaskOptions) (model.Task, error) {
	if m.completeFn == nil {
		return model.Task{}, nil
	}
	return m.completeFn(ctx, opt)
}

func (m *mockTaskRepo) DeleteTask(ctx context.Context, opt repo.DeleteTaskOptions) (bool, error) {
	if m.deleteFn == nil {
		return false, nil
	}
	return m.deleteFn(ctx, opt)
}

// mockUserRepo implements the user repository with overridable funcs.
type mockUserRepo struct {
	createFn func(ctx context.Context, opt userrepo.CreateUserOptions) (model.User, error)
	getOneFn func(ctx context.Context, opt userrepo.GetOneUserOptions) (model.User, error)
	creditFn func(ctx context.Context, opt userrepo.CreditWalletOptions) (model.User, error)
}

func (m *mockUserRepo) CreateUser(ctx context.Context, opt userrepo.CreateUserOptions) (model.User, error) {
	if m.createFn == nil {
		return model.User{}, nil
	}
	return m.createFn(ctx, opt)
}

func (m *mockUserRepo) GetOneUser(ctx context.Context, opt userrepo.GetOneUserOptions) (model.User, error) {
	if m.getOneFn == nil {
		return model.User{}, nil
	}
	return m.getOneFn(ctx, opt)
}

func (m *mockUserRepo) CreditWallet(ctx context.Context, opt userrepo.CreditWalletOptions) (model.User, error) {
	if m.creditFn == nil {
		return model.User{}, nil
	}
	return m.creditFn(ctx, opt)
}
