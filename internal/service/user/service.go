package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/clockwork-hr/timeclock-backend-go/internal/domain/user"
	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"
)

type UserServiceImpl struct {
	user.UserRepository
}

func NewUserService(userRepository user.UserRepository) user.UserService {
	return &UserServiceImpl{
		UserRepository: userRepository,
	}
}

// getUserID extracts user_id from JWT claims
func (s *UserServiceImpl) getUserID(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", fmt.Errorf("user_id not found in claims")
	}
	return userID, nil
}

// GetProfile implements user.UserService.
func (s *UserServiceImpl) GetProfile(ctx context.Context) (user.ProfileResponse, error) {
	userID, err := s.getUserID(ctx)
	if err != nil {
		return user.ProfileResponse{}, err
	}

	userData, err := s.UserRepository.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.ProfileResponse{}, user.ErrUserNotFound
		}
		return user.ProfileResponse{}, fmt.Errorf("failed to get user: %w", err)
	}

	return user.ToProfileResponse(userData), nil
}

// UpdateProfile implements user.UserService.
func (s *UserServiceImpl) UpdateProfile(ctx context.Context, req user.UpdateProfileRequest) (user.ProfileResponse, error) {
	if err := req.Validate(); err != nil {
		return user.ProfileResponse{}, err
	}

	userID, err := s.getUserID(ctx)
	if err != nil {
		return user.ProfileResponse{}, err
	}

	updated, err := s.UserRepository.Update(ctx, userID, req)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.ProfileResponse{}, user.ErrUserNotFound
		}
		return user.ProfileResponse{}, fmt.Errorf("failed to update user: %w", err)
	}

	return user.ToProfileResponse(updated), nil
}
