package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/ayushgupta5924/quickbucks/internal/model"
	"github.com/ayushgupta5924/quickbucks/internal/user"
	repo "github.com/ayushgupta5924/quickbucks/internal/user/repository"
	"github.com/ayushgupta5924/quickbucks/pkg/scope"
)

// mockUserRepo implements repository.Repository with overridable funcs.
type mockUserRepo struct {
	createFn func(ctx context.Context, opt repo.CreateUserOptions) (model.User, error)
	getOneFn func(ctx context.Context, opt repo.GetOneUserOptions) (model.User, error)
	creditFn func(ctx context.Context, opt repo.CreditWalletOptions) (model.User, error)
}

func (m *mockUserRepo) CreateUser(ctx context.Context, opt repo.CreateUserOptions) (model.User, error) {
	if m.createFn == nil {
		return model.User{}, nil
	}
	return m.createFn(ctx, opt)
}

func (m *mockUserRepo) GetOneUser(ctx context.Context, opt repo.GetOneUserOptions) (model.User, error) {
	if m.getOneFn == nil {
		return model.User{}, nil
	}
	return m.getOneFn(ctx, opt)
}

func (m *mockUserRepo) CreditWallet(ctx context.Context, opt repo.CreditWalletOptions) (model.User, error) {
	if m.creditFn == nil {
		return model.User{}, nil
	}
	return m.creditFn(ctx, opt)
}

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

var jm = scope.NewJWTManager("test-secret", time.Hour)

func TestRegister(t *testing.T) {
	var got repo.CreateUserOptions
	users := &mockUserRepo{
		createFn: func(ctx context.Context, opt repo.CreateUserOptions) (model.User, error) {
			got = opt
			return model.User{ID: opt.ID, Email: opt.Email, Name: opt.Name}, nil
		},
	}
	uc := New(users, jm, &mockLogger{})

	out, err := uc.Register(context.Background(), user.RegisterInput{
		Email:    "  Ayush@Example.COM ",
		Name:     "Ayush",
		Password: "hunter22",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	if got.Email != "ayush@example.com" {
		t.Errorf("Email = %q, want lowercased/trimmed", got.Email)
	}
	if got.ID == "" {
		t.Error("expected a generated user ID")
	}
	if got.PasswordHash == "hunter22" || got.PasswordHash == "" {
		t.Error("password must be stored hashed")
	}
	if bcrypt.CompareHashAndPassword([]byte(got.PasswordHash), []byte("hunter22")) != nil {
		t.Error("stored hash does not verify against the password")
	}
	if out.Token == "" {
		t.Error("expected a signed token")
	}

	payload, err := jm.Verify(out.Token)
	if err != nil || payload.UserID != got.ID {
		t.Errorf("token payload = %+v, err %v", payload, err)
	}
}

func TestRegisterEmailTaken(t *testing.T) {
	users := &mockUserRepo{
		createFn: func(ctx context.Context, opt repo.CreateUserOptions) (model.User, error) {
			return model.User{}, repo.ErrDuplicateEmail
		},
	}
	uc := New(users, jm, &mockLogger{})

	_, err := uc.Register(context.Background(), user.RegisterInput{
		Email:    "taken@example.com",
		Password: "pw",
	})
	if !errors.Is(err, user.ErrEmailTaken) {
		t.Errorf("err = %v, want ErrEmailTaken", err)
	}
}

func TestLogin(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter22"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	users := &mockUserRepo{
		getOneFn: func(ctx context.Context, opt repo.GetOneUserOptions) (model.User, error) {
			if opt.Email != "ayush@example.com" {
				t.Errorf("lookup email = %q", opt.Email)
			}
			return model.User{ID: "user-1", Email: opt.Email, PasswordHash: string(hash), Wallet: 100}, nil
		},
	}
	uc := New(users, jm, &mockLogger{})

	out, err := uc.Login(context.Background(), user.LoginInput{
		Email:    "Ayush@example.com",
		Password: "hunter22",
	})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if out.User.Wallet != 100 {
		t.Errorf("Wallet = %d, want 100", out.User.Wallet)
	}
	if out.Token == "" {
		t.Error("expected a signed token")
	}
}

func TestLoginWrongPassword(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("correct"), bcrypt.MinCost)
	users := &mockUserRepo{
		getOneFn: func(ctx context.Context, opt repo.GetOneUserOptions) (model.User, error) {
			return model.User{ID: "user-1", PasswordHash: string(hash)}, nil
		},
	}
	uc := New(users, jm, &mockLogger{})

	_, err := uc.Login(context.Background(), user.LoginInput{Email: "a@b.com", Password: "wrong"})
	if !errors.Is(err, user.ErrInvalidCredentials) {
		t.Errorf("err = %v, want ErrInvalidCredentials", err)
	}
}

func TestLoginUnknownEmail(t *testing.T) {
	uc := New(&mockUserRepo{}, jm, &mockLogger{})

	_, err := uc.Login(context.Background(), user.LoginInput{Email: "nobody@b.com", Password: "pw"})
	if !errors.Is(err, user.ErrInvalidCredentials) {
		t.Errorf("err = %v, want ErrInvalidCredentials", err)
	}
}

func TestMeNotFound(t *testing.T) {
	uc := New(&mockUserRepo{}, jm, &mockLogger{})

	_, err := uc.Me(context.Background(), "missing")
	if !errors.Is(err, user.ErrUserNotFound) {
		t.Errorf("err = %v, want ErrUserNotFound", err)
	}
}
