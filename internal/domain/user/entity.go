package user

import "time"

type Role string

const (
	RoleWorker     Role = "worker"     // Clocks in and out, owns their own requests
	RoleSupervisor Role = "supervisor" // Can review correction requests
	RoleAdmin      Role = "admin"      // Full access
)

type User struct {
	ID                string
	EmployeeCode      string // 5-digit PIN used for worker login
	FullName          string
	Email             *string
	PasswordHash      *string // set for reviewers only
	Phone             *string
	BirthDate         *time.Time
	Role              Role
	Department        *string
	WeeklyHoursTarget int // contracted weekly hours, defaults to 40
	IsActive          bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// CanReview checks if user can review correction requests
func (u *User) CanReview() bool {
	return u.Role == RoleSupervisor || u.Role == RoleAdmin
}
