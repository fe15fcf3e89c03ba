package user

import "context"

// UserRepository defines data access methods for users.
type UserRepository interface {
	// Create inserts a user; the store assigns ID and EmployeeID.
	Create(ctx context.Context, u User) (User, error)

	GetByID(ctx context.Context, id string) (User, error)

	// GetByEmployeeID resolves the sequential reporting key back to a user.
	GetByEmployeeID(ctx context.Context, employeeID int) (User, error)

	GetByEmail(ctx context.Context, email string) (User, error)

	// List retrieves users with filters and pagination
	List(ctx context.Context, filter UserFilter) ([]User, int64, error)

	// GetAll returns every user, unpaginated. Used by report assembly.
	GetAll(ctx context.Context) ([]User, error)

	Update(ctx context.Context, u User) error

	UpdatePassword(ctx context.Context, id string, passwordHash string) error

	SetActive(ctx context.Context, id string, active bool) error

	Delete(ctx context.Context, id string) error
}
