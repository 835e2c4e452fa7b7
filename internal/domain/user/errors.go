package user

import "errors"

var (
	ErrUserNotFound           = errors.New("user not found")
	ErrReviewerAccessRequired = errors.New("supervisor or admin access required")
)
