package model

// Scope carries the authenticated caller's identity through usecases.
// Every repository query is filtered by Scope.UserID so records never leak
// across owners.
type Scope struct {
	UserID string
}
