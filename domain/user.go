package domain

import (
	"context"
	"time"
)

// User represents a consuming user of the platform.
// A user can register, login, like and save food items.
type User struct {
	ID        string    // Unique identifier (uuid)
	Name      string    // Display name
	Email     string    // Login email (unique)
	Password  string    // Bcrypt hashed password
	ImageURL  string    // Avatar url
	CreatedAt time.Time // Account creation timestamp
	UpdatedAt time.Time // Last profile update timestamp
}

// UserRepository defines the contract for user data persistence.
type UserRepository interface {
	// GetByID retrieves a user by their ID.
	// Returns ErrNotFound if the user doesn't exist.
	GetByID(ctx context.Context, id string) (User, error)

	// GetByEmail retrieves a user by email.
	// Used during login to verify credentials.
	GetByEmail(ctx context.Context, email string) (User, error)

	// Insert creates a new user account.
	// Returns ErrConflict if the email is already registered.
	Insert(ctx context.Context, u *User) error

	// Exists reports whether a user with the given id is present.
	Exists(ctx context.Context, id string) (bool, error)
}
