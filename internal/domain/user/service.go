package user

import "context"

// UserService defines business logic for the admin user surface.
type UserService interface {
	CreateUser(ctx context.Context, req CreateUserRequest) (UserResponse, error)

	GetUser(ctx context.Context, id string) (UserResponse, error)

	ListUsers(ctx context.Context, filter UserFilter) (ListUserResponse, error)

	UpdateUser(ctx context.Context, req UpdateUserRequest) (UserResponse, error)

	DeleteUser(ctx context.Context, id string) error

	// ToggleStatus flips the active flag on a user account.
	ToggleStatus(ctx context.Context, id string, active bool) (UserResponse, error)

	// BulkAction applies activate/deactivate/delete per-user, skipping
	// and reporting IDs that fail rather than aborting the batch.
	BulkAction(ctx context.Context, req BulkActionRequest) (BulkActionResponse, error)
}
