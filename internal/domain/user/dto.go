package user

import (
	"time"

	"github.com/clockwork-hr/timeclock-backend-go/internal/pkg/validator"
)

type UpdateProfileRequest struct {
	FullName          *string `json:"full_name,omitempty"`
	Email             *string `json:"email,omitempty"`
	Phone             *string `json:"phone,omitempty"`
	BirthDate         *string `json:"birth_date,omitempty"` // YYYY-MM-DD
	Department        *string `json:"department,omitempty"`
	WeeklyHoursTarget *int    `json:"weekly_hours_target,omitempty"`
}

func (r *UpdateProfileRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.FullName != nil {
		if validator.IsEmpty(*r.FullName) {
			errs = append(errs, validator.ValidationError{
				Field:   "full_name",
				Message: "full_name must not be empty",
			})
		}
		if len(*r.FullName) > 255 {
			errs = append(errs, validator.ValidationError{
				Field:   "full_name",
				Message: "full_name must not exceed 255 characters",
			})
		}
	}

	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid email address",
		})
	}

	if r.BirthDate != nil {
		if _, ok := validator.IsValidDate(*r.BirthDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "birth_date",
				Message: "birth_date must be in YYYY-MM-DD format",
			})
		}
	}

	if r.WeeklyHoursTarget != nil && (*r.WeeklyHoursTarget < 1 || *r.WeeklyHoursTarget > 80) {
		errs = append(errs, validator.ValidationError{
			Field:   "weekly_hours_target",
			Message: "weekly_hours_target must be between 1 and 80",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ProfileResponse struct {
	ID                string  `json:"id"`
	EmployeeCode      string  `json:"employee_code"`
	FullName          string  `json:"full_name"`
	Email             *string `json:"email,omitempty"`
	Phone             *string `json:"phone,omitempty"`
	BirthDate         *string `json:"birth_date,omitempty"`
	Role              string  `json:"role"`
	Department        *string `json:"department,omitempty"`
	WeeklyHoursTarget int     `json:"weekly_hours_target"`
	IsActive          bool    `json:"is_active"`
	CreatedAt         string  `json:"created_at"`
	UpdatedAt         string  `json:"updated_at"`
}

func ToProfileResponse(u User) ProfileResponse {
	var birthDate *string
	if u.BirthDate != nil {
		formatted := u.BirthDate.Format("2006-01-02")
		birthDate = &formatted
	}

	return ProfileResponse{
		ID:                u.ID,
		EmployeeCode:      u.EmployeeCode,
		FullName:          u.FullName,
		Email:             u.Email,
		Phone:             u.Phone,
		BirthDate:         birthDate,
		Role:              string(u.Role),
		Department:        u.Department,
		WeeklyHoursTarget: u.WeeklyHoursTarget,
		IsActive:          u.IsActive,
		CreatedAt:         u.CreatedAt.Format(time.RFC3339),
		UpdatedAt:         u.UpdatedAt.Format(time.RFC3339),
	}
}
