package postgre

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ayushgupta5924/quickbucks/internal/model"
	repo "github.com/ayushgupta5924/quickbucks/internal/task/repository"
)

const taskColumns = `id, user_id, title, category, priority, reward, completed, created_at, completed_at, due_date`

// scanTask scans one task row. completed_at and due_date are nullable.
func scanTask(row interface{ Scan(...any) error }) (model.Task, error) {
	var (
		t           model.Task
		category    string
		priority    string
		completedAt sql.NullTime
		dueDate     sql.NullTime
	)
	err := row.Scan(
		&t.ID, &t.UserID, &t.Title, &category, &priority,
		&t.Reward, &t.Completed, &t.CreatedAt, &completedAt, &dueDate,
	)
	if err != nil {
		return model.Task{}, err
	}
	t.Category = model.Category(category)
	t.Priority = model.Priority(priority)
	if completedAt.Valid {
		v := completedAt.Time
		t.CompletedAt = &v
	}
	if dueDate.Valid {
		v := dueDate.Time
		t.DueDate = &v
	}
	return t, nil
}

// CreateTask inserts a new Task row and returns the created entity.
func (r *implRepository) CreateTask(ctx context.Context, opt repo.CreateTaskOptions) (model.Task, error) {
	query := fmt.Sprintf(`
		INSERT INTO tasks (id, user_id, title, category, priority, reward, completed, created_at, due_date)
		VALUES ($1, $2, $3, $4, $5, $6, FALSE, NOW(), $7)
		RETURNING %s`, taskColumns)

	row := r.db.QueryRowContext(ctx, query,
		opt.ID, opt.UserID, opt.Title, string(opt.Category), string(opt.Priority), opt.Reward, opt.DueDate,
	)
	t, err := scanTask(row)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateTask"), err)
		return model.Task{}, repo.ErrFailedToInsert
	}
	return t, nil
}

// GetOneTask retrieves a single Task by the provided filters (AND condition).
// Returns zero-value Task (ID == "") when not found — do NOT return error for not-found.
func (r *implRepository) GetOneTask(ctx context.Context, opt repo.GetOneTaskOptions) (model.Task, error) {
	mods, args := r.buildGetOneQuery(opt)
	query := fmt.Sprintf("SELECT %s FROM tasks WHERE %s LIMIT 1", taskColumns, mods)

	t, err := scanTask(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return model.Task{}, nil // not found → zero value, no error
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneTask"), err)
		return model.Task{}, repo.ErrFailedToGet
	}
	return t, nil
}

// ListTasks returns a paginated list of Tasks and the total count.
func (r *implRepository) ListTasks(ctx context.Context, opt repo.ListTasksOptions) ([]model.Task, int, error) {
	// 1. Count total (without pagination)
	countMods, countArgs := r.buildCountQuery(opt)
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM tasks WHERE %s", countMods)
	var total int
	if err := r.db.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "%s count: %v", r.dsn("ListTasks"), err)
		return nil, 0, repo.ErrFailedToList
	}

	// 2. Fetch page
	mods, args := r.buildListQuery(opt)
	query := fmt.Sprintf("SELECT %s FROM tasks %s", taskColumns, mods)
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListTasks"), err)
		return nil, 0, repo.ErrFailedToList
	}
	defer rows.Close()

	var tasks []model.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, 0, repo.ErrFailedToList
		}
		tasks = append(tasks, t)
	}
	return tasks, total, nil
}

// ListAllTasks returns the full task history for one user, oldest first.
// The analytics engines consume the whole history, so there is no pagination.
func (r *implRepository) ListAllTasks(ctx context.Context, sc model.Scope) ([]model.Task, error) {
	query := fmt.Sprintf("SELECT %s FROM tasks WHERE user_id = $1 ORDER BY created_at ASC", taskColumns)
	rows, err := r.db.QueryContext(ctx, query, sc.UserID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListAllTasks"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var tasks []model.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, repo.ErrFailedToList
		}
		tasks = append(tasks, t)
	}
	return tasks, nil
}

// CompleteTask marks a pending Task completed and returns the updated entity.
// Returns zero-value Task when no pending row matched (missing or already done).
func (r *implRepository) CompleteTask(ctx context.Context, opt repo.CompleteTaskOptions) (model.Task, error) {
	query := fmt.Sprintf(`
		UPDATE tasks
		SET completed = TRUE, completed_at = $1
		WHERE id = $2 AND user_id = $3 AND completed = FALSE
		RETURNING %s`, taskColumns)

	t, err := scanTask(r.db.QueryRowContext(ctx, query, opt.CompletedAt, opt.ID, opt.UserID))
	if err == sql.ErrNoRows {
		return model.Task{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CompleteTask"), err)
		return model.Task{}, repo.ErrFailedToUpdate
	}
	return t, nil
}

// DeleteTask removes a Task by ID within the user scope.
// The bool reports whether a row was actually deleted.
func (r *implRepository) DeleteTask(ctx context.Context, opt repo.DeleteTaskOptions) (bool, error) {
	const query = `DELETE FROM tasks WHERE id = $1 AND user_id = $2`
	res, err := r.db.ExecContext(ctx, query, opt.ID, opt.UserID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteTask"), err)
		return false, repo.ErrFailedToDelete
	}
	affected, err := res.RowsAffected()
	if err != nil {
		r.l.Errorf(ctx, "%s rows affected: %v", r.dsn("DeleteTask"), err)
		return false, repo.ErrFailedToDelete
	}
	return affected > 0, nil
}
