package user

import "time"

type Role string

const (
	RoleEmployee      Role = "employee"      // Clocks in/out, sees own data
	RoleManager       Role = "manager"       // Creates and publishes schedules
	RoleAdministrator Role = "administrator" // Manages users and reports
)

var RoleValues = []string{
	string(RoleEmployee),
	string(RoleManager),
	string(RoleAdministrator),
}

type User struct {
	ID           string
	EmployeeID   int // sequential reporting key, assigned by the store
	Email        string
	FirstName    string
	LastName     string
	PasswordHash *string
	Role         Role
	HourlyRate   *float64
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// FullName joins first and last name for display.
func (u *User) FullName() string {
	if u.FirstName == "" {
		return u.LastName
	}
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

// IsManager checks if user is manager or administrator
func (u *User) IsManager() bool {
	return u.Role == RoleManager || u.Role == RoleAdministrator
}

// IsAdministrator checks if user can manage other users
func (u *User) IsAdministrator() bool {
	return u.Role == RoleAdministrator
}
