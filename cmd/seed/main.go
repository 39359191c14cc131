package main

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"

	"github.com/ayushgupta5924/quickbucks/config"
	"github.com/ayushgupta5924/quickbucks/internal/model"
	taskrepo "github.com/ayushgupta5924/quickbucks/internal/task/repository"
	taskpg "github.com/ayushgupta5924/quickbucks/internal/task/repository/postgre"
	userrepo "github.com/ayushgupta5924/quickbucks/internal/user/repository"
	userpg "github.com/ayushgupta5924/quickbucks/internal/user/repository/postgre"
	"github.com/ayushgupta5924/quickbucks/pkg/log"
)

const (
	demoEmail    = "demo@quickbucks.com"
	demoName     = "Demo User"
	demoPassword = "demo123"
	demoWallet   = 450
)

type seedTask struct {
	title       string
	category    model.Category
	priority    model.Priority
	reward      int64
	dueIn       time.Duration
	completedAt time.Duration // negative offset from now; zero means pending
}

var sampleTasks = []seedTask{
	{
		title:       "Complete project presentation",
		category:    model.CategoryWork,
		priority:    model.PriorityHigh,
		reward:      300,
		completedAt: -2 * 24 * time.Hour,
	},
	{
		title:       "Morning workout",
		category:    model.CategoryHealth,
		priority:    model.PriorityMedium,
		reward:      100,
		completedAt: -1 * 24 * time.Hour,
	},
	{
		title:    "Prepare quarterly report",
		category: model.CategoryWork,
		priority: model.PriorityHigh,
		reward:   400,
		dueIn:    3 * 24 * time.Hour,
	},
}

// Seeds the database with a demo account and a few sample tasks.
// Existing users and tasks are wiped first.
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx := context.Background()

	db, err := sql.Open("postgres", cfg.Postgres.DSN())
	if err != nil {
		logger.Error(ctx, "Failed to open Postgres connection: ", err)
		return
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		logger.Error(ctx, "Failed to ping Postgres: ", err)
		return
	}

	if err := seed(ctx, db, logger); err != nil {
		logger.Error(ctx, "Seeding failed: ", err)
		return
	}

	logger.Infof(ctx, "Database seeded! Login: %s / %s", demoEmail, demoPassword)
}

func seed(ctx context.Context, db *sql.DB, logger log.Logger) error {
	if _, err := db.ExecContext(ctx, `DELETE FROM tasks`); err != nil {
		return fmt.Errorf("wiping tasks: %w", err)
	}
	if _, err := db.ExecContext(ctx, `DELETE FROM users`); err != nil {
		return fmt.Errorf("wiping users: %w", err)
	}

	users := userpg.New(db, logger)
	tasks := taskpg.New(db, logger)

	hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hashing demo password: %w", err)
	}

	demoUser, err := users.CreateUser(ctx, userrepo.CreateUserOptions{
		ID:           uuid.NewString(),
		Email:        demoEmail,
		Name:         demoName,
		PasswordHash: string(hash),
	})
	if err != nil {
		return fmt.Errorf("creating demo user: %w", err)
	}

	if _, err := users.CreditWallet(ctx, userrepo.CreditWalletOptions{
		UserID: demoUser.ID,
		Amount: demoWallet,
	}); err != nil {
		return fmt.Errorf("setting demo wallet: %w", err)
	}

	now := time.Now()
	for _, st := range sampleTasks {
		opt := taskrepo.CreateTaskOptions{
			ID:       uuid.NewString(),
			UserID:   demoUser.ID,
			Title:    st.title,
			Category: st.category,
			Priority: st.priority,
			Reward:   st.reward,
		}
		if st.dueIn > 0 {
			due := now.Add(st.dueIn)
			opt.DueDate = &due
		}

		created, err := tasks.CreateTask(ctx, opt)
		if err != nil {
			return fmt.Errorf("creating task %q: %w", st.title, err)
		}

		if st.completedAt != 0 {
			if _, err := tasks.CompleteTask(ctx, taskrepo.CompleteTaskOptions{
				ID:          created.ID,
				UserID:      demoUser.ID,
				CompletedAt: now.Add(st.completedAt),
			}); err != nil {
				return fmt.Errorf("completing task %q: %w", st.title, err)
			}
		}

		logger.Infof(ctx, "Seeded task: %s", st.title)
	}

	return nil
}
