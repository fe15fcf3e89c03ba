package user

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/timecardhq/timecard-backend-go/internal/domain/user"
)

type UserServiceImpl struct {
	user.UserRepository
}

func NewUserService(userRepository user.UserRepository) user.UserService {
	return &UserServiceImpl{
		UserRepository: userRepository,
	}
}

// CreateUser implements user.UserService.
func (s *UserServiceImpl) CreateUser(ctx context.Context, req user.CreateUserRequest) (user.UserResponse, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}
	passwordHash := string(hash)

	created, err := s.UserRepository.Create(ctx, user.User{
		Email:        req.Email,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		PasswordHash: &passwordHash,
		Role:         user.Role(req.Role),
		HourlyRate:   req.HourlyRate,
		IsActive:     true,
	})
	if err != nil {
		return user.UserResponse{}, err
	}

	return user.ToUserResponse(created), nil
}

// GetUser implements user.UserService.
func (s *UserServiceImpl) GetUser(ctx context.Context, id string) (user.UserResponse, error) {
	u, err := s.UserRepository.GetByID(ctx, id)
	if err != nil {
		return user.UserResponse{}, err
	}
	return user.ToUserResponse(u), nil
}

// ListUsers implements user.UserService.
func (s *UserServiceImpl) ListUsers(ctx context.Context, filter user.UserFilter) (user.ListUserResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 20
	}

	users, total, err := s.UserRepository.List(ctx, filter)
	if err != nil {
		return user.ListUserResponse{}, err
	}

	responses := make([]user.UserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, user.ToUserResponse(u))
	}

	return user.ListUserResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		Users:      responses,
	}, nil
}

// UpdateUser implements user.UserService. Only the fields present in the
// request change; the rest keep their stored values.
func (s *UserServiceImpl) UpdateUser(ctx context.Context, req user.UpdateUserRequest) (user.UserResponse, error) {
	u, err := s.UserRepository.GetByID(ctx, req.ID)
	if err != nil {
		return user.UserResponse{}, err
	}

	if req.Email != nil {
		u.Email = *req.Email
	}
	if req.FirstName != nil {
		u.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		u.LastName = *req.LastName
	}
	if req.Role != nil {
		u.Role = user.Role(*req.Role)
	}
	if req.HourlyRate != nil {
		u.HourlyRate = req.HourlyRate
	}
	if req.IsActive != nil {
		u.IsActive = *req.IsActive
	}

	if err := s.UserRepository.Update(ctx, u); err != nil {
		return user.UserResponse{}, err
	}

	updated, err := s.UserRepository.GetByID(ctx, req.ID)
	if err != nil {
		return user.UserResponse{}, err
	}
	return user.ToUserResponse(updated), nil
}

// DeleteUser implements user.UserService.
func (s *UserServiceImpl) DeleteUser(ctx context.Context, id string) error {
	return s.UserRepository.Delete(ctx, id)
}

// ToggleStatus implements user.UserService.
func (s *UserServiceImpl) ToggleStatus(ctx context.Context, id string, active bool) (user.UserResponse, error) {
	if err := s.UserRepository.SetActive(ctx, id, active); err != nil {
		return user.UserResponse{}, err
	}
	u, err := s.UserRepository.GetByID(ctx, id)
	if err != nil {
		return user.UserResponse{}, err
	}
	return user.ToUserResponse(u), nil
}

// BulkAction implements user.UserService. Each id is processed on its own;
// a failure skips that id and the batch keeps going.
func (s *UserServiceImpl) BulkAction(ctx context.Context, req user.BulkActionRequest) (user.BulkActionResponse, error) {
	var resp user.BulkActionResponse

	for _, id := range req.UserIDs {
		var err error
		switch req.Action {
		case "activate":
			err = s.UserRepository.SetActive(ctx, id, true)
		case "deactivate":
			err = s.UserRepository.SetActive(ctx, id, false)
		case "delete":
			err = s.UserRepository.Delete(ctx, id)
		default:
			return user.BulkActionResponse{}, user.ErrUnknownBulkAction
		}
		if err != nil {
			resp.SkippedIDs = append(resp.SkippedIDs, id)
			continue
		}
		resp.Processed++
	}

	return resp, nil
}
