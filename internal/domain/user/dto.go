package user

import (
	"strings"
	"time"

	"github.com/timecardhq/timecard-backend-go/internal/pkg/validator"
)

type CreateUserRequest struct {
	Email      string   `json:"email"`
	FirstName  string   `json:"first_name"`
	LastName   string   `json:"last_name"`
	Password   string   `json:"password"`
	Role       string   `json:"role"`
	HourlyRate *float64 `json:"hourly_rate"`
}

func (r *CreateUserRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "a valid email is required",
		})
	}
	if validator.IsEmpty(r.FirstName) {
		errs = append(errs, validator.ValidationError{
			Field:   "first_name",
			Message: "first_name is required",
		})
	}
	if !validator.IsValidPassword(r.Password) {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must be at least 8 characters with a letter and a digit",
		})
	}
	if !validator.IsInSlice(r.Role, RoleValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be one of: " + strings.Join(RoleValues, ", "),
		})
	}
	if r.HourlyRate != nil && *r.HourlyRate < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "hourly_rate",
			Message: "hourly_rate must be a non-negative number",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateUserRequest struct {
	ID         string   `json:"-"`
	Email      *string  `json:"email"`
	FirstName  *string  `json:"first_name"`
	LastName   *string  `json:"last_name"`
	Role       *string  `json:"role"`
	HourlyRate *float64 `json:"hourly_rate"`
	IsActive   *bool    `json:"is_active"`
}

func (r *UpdateUserRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "a valid email is required",
		})
	}
	if r.Role != nil && !validator.IsInSlice(*r.Role, RoleValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be one of: " + strings.Join(RoleValues, ", "),
		})
	}
	if r.HourlyRate != nil && *r.HourlyRate < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "hourly_rate",
			Message: "hourly_rate must be a non-negative number",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UserFilter struct {
	// Search & Filter
	Name     *string `json:"name,omitempty"`
	Role     *string `json:"role,omitempty"`
	IsActive *bool   `json:"is_active,omitempty"`

	// Pagination
	Page  int `json:"page"`
	Limit int `json:"limit"`

	// Sorting
	SortBy    string `json:"sort_by"`    // name, email, role, created_at
	SortOrder string `json:"sort_order"` // asc, desc
}

func (f *UserFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Page < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "page",
			Message: "page must be a positive number",
		})
	}
	if f.Limit < 0 || f.Limit > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must be between 1 and 100",
		})
	}
	if f.Role != nil && !validator.IsInSlice(*f.Role, RoleValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be one of: " + strings.Join(RoleValues, ", "),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// BulkActionRequest applies one action to a set of users. Failing IDs are
// skipped and reported, not fatal.
type BulkActionRequest struct {
	Action  string   `json:"action"` // activate, deactivate, delete
	UserIDs []string `json:"user_ids"`
}

var bulkActions = []string{"activate", "deactivate", "delete"}

func (r *BulkActionRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.Action, bulkActions) {
		errs = append(errs, validator.ValidationError{
			Field:   "action",
			Message: "action must be one of: " + strings.Join(bulkActions, ", "),
		})
	}
	if len(r.UserIDs) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "user_ids",
			Message: "user_ids is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type BulkActionResponse struct {
	Processed  int      `json:"processed"`
	SkippedIDs []string `json:"skipped_ids,omitempty"`
}

type UserResponse struct {
	ID         string   `json:"id"`
	EmployeeID int      `json:"employee_id"`
	Email      string   `json:"email"`
	FirstName  string   `json:"first_name"`
	LastName   string   `json:"last_name"`
	Role       string   `json:"role"`
	HourlyRate *float64 `json:"hourly_rate,omitempty"`
	IsActive   bool     `json:"is_active"`
	CreatedAt  string   `json:"created_at"`
	UpdatedAt  string   `json:"updated_at"`
}

type ListUserResponse struct {
	TotalCount int64          `json:"total_count"`
	Page       int            `json:"page"`
	Limit      int            `json:"limit"`
	Users      []UserResponse `json:"users"`
}

// ToUserResponse maps an entity to its API shape. The password hash never
// leaves the service layer.
func ToUserResponse(u User) UserResponse {
	return UserResponse{
		ID:         u.ID,
		EmployeeID: u.EmployeeID,
		Email:      u.Email,
		FirstName:  u.FirstName,
		LastName:   u.LastName,
		Role:       string(u.Role),
		HourlyRate: u.HourlyRate,
		IsActive:   u.IsActive,
		CreatedAt:  u.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  u.UpdatedAt.Format(time.RFC3339),
	}
}
