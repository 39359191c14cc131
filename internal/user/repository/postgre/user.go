package postgre

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/lib/pq"

	"github.com/ayushgupta5924/quickbucks/internal/model"
	repo "github.com/ayushgupta5924/quickbucks/internal/user/repository"
)

const userColumns = `id, email, name, password_hash, wallet, created_at`

func scanUser(row interface{ Scan(...any) error }) (model.User, error) {
	var u model.User
	err := row.Scan(&u.ID, &u.Email, &u.Name, &u.PasswordHash, &u.Wallet, &u.CreatedAt)
	if err != nil {
		return model.User{}, err
	}
	return u, nil
}

// CreateUser inserts a new User row and returns the created entity.
// A unique violation on email maps to ErrDuplicateEmail.
func (r *implRepository) CreateUser(ctx context.Context, opt repo.CreateUserOptions) (model.User, error) {
	query := fmt.Sprintf(`
		INSERT INTO users (id, email, name, password_hash, wallet, created_at)
		VALUES ($1, $2, $3, $4, 0, NOW())
		RETURNING %s`, userColumns)

	row := r.db.QueryRowContext(ctx, query, opt.ID, opt.Email, opt.Name, opt.PasswordHash)
	u, err := scanUser(row)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return model.User{}, repo.ErrDuplicateEmail
		}
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateUser"), err)
		return model.User{}, repo.ErrFailedToInsert
	}
	return u, nil
}

// GetOneUser retrieves a single User by the provided filters (AND condition).
// Returns zero-value User (ID == "") when not found — do NOT return error for not-found.
func (r *implRepository) GetOneUser(ctx context.Context, opt repo.GetOneUserOptions) (model.User, error) {
	var conditions []string
	var args []any
	idx := 1

	if opt.ID != "" {
		conditions = append(conditions, fmt.Sprintf("id = $%d", idx))
		args = append(args, opt.ID)
		idx++
	}
	if opt.Email != "" {
		conditions = append(conditions, fmt.Sprintf("email = $%d", idx))
		args = append(args, opt.Email)
		idx++
	}
	if len(conditions) == 0 {
		conditions = append(conditions, "1=1")
	}

	query := fmt.Sprintf("SELECT %s FROM users WHERE %s LIMIT 1",
		userColumns, strings.Join(conditions, " AND "))

	u, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return model.User{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneUser"), err)
		return model.User{}, repo.ErrFailedToGet
	}
	return u, nil
}

// CreditWallet atomically increments the user's wallet balance.
func (r *implRepository) CreditWallet(ctx context.Context, opt repo.CreditWalletOptions) (model.User, error) {
	query := fmt.Sprintf(`
		UPDATE users
		SET wallet = wallet + $1
		WHERE id = $2
		RETURNING %s`, userColumns)

	u, err := scanUser(r.db.QueryRowContext(ctx, query, opt.Amount, opt.UserID))
	if err == sql.ErrNoRows {
		return model.User{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreditWallet"), err)
		return model.User{}, repo.ErrFailedToUpdate
	}
	return u, nil
}
