package domain

import "time"

// User represents a registered author in the system.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// AuthorRef identifies an author by id only. Used on write paths.
type AuthorRef struct {
	ID string `json:"id"`
}

// AuthorView is an author resolved for display. Used on read paths.
type AuthorView struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// Ref returns the id-only reference for the user.
func (u *User) Ref() AuthorRef {
	return AuthorRef{ID: u.ID}
}

// View returns the display shape for the user.
func (u *User) View() AuthorView {
	return AuthorView{ID: u.ID, Username: u.Username}
}
