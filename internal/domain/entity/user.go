// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User is the identity record behind a portfolio account. Email is the login
// key; PasswordHash stores the bcrypt digest and must never leave the server.
type User struct {
	ID           int64     // Auto-incremented identifier assigned by the store on creation.
	Email        string    // Unique login key, stored case-sensitively.
	PasswordHash string    // One-way salted hash of the password. Never serialized to clients.
	Name         string    // Optional display name, empty by default.
	Mobile       string    // Optional contact number, empty by default.
	CreatedAt    time.Time // Set once when the account is created.
}

// PublicUser is the client-facing view of a User. It carries everything a
// profile response needs and nothing a client must not see.
type PublicUser struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Mobile    string    `json:"mobile"`
	CreatedAt time.Time `json:"createdAt"`
}

// Public strips the credential material from a User.
func (u *User) Public() *PublicUser {
	return &PublicUser{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Mobile:    u.Mobile,
		CreatedAt: u.CreatedAt,
	}
}
