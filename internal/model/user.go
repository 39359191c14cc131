package model

import "time"

// User is an account with a virtual-currency wallet. Completed task rewards
// are credited to Wallet by the task usecase.
type User struct {
	ID           string
	Email        string
	Name         string
	PasswordHash string
	Wallet       int64
	CreatedAt    time.Time
}
