package entity

import "time"

// User is a registered account. It owns zero or more Blog posts.
// PasswordHash is persistence-only state and must never leave the service
// through an output schema.
type User struct {
	ID           uint      // Auto-assigned numeric identifier.
	Name         string    // The user's display name.
	Email        string    // The user's contact email. Uniqueness is not enforced at this layer.
	PasswordHash string    // bcrypt digest of the registration password.
	Blogs        []Blog    // Posts owned by this user, populated on reads for serialization.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification.
}
