package domain

import "time"

// Admin is the single privileged actor. Rows are provisioned out-of-band.
type Admin struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// AdminSummary is the public projection returned after login.
type AdminSummary struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Summary drops the password hash.
func (a *Admin) Summary() AdminSummary {
	return AdminSummary{ID: a.ID, Name: a.Name, Email: a.Email}
}
