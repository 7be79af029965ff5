package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"uatf-curricular/backend/internal/dto"
	"uatf-curricular/backend/internal/model"
	"uatf-curricular/backend/internal/repository"
	apperrors "uatf-curricular/backend/pkg/errors"
)

var (
	ErrInvalidRole = apperrors.New(apperrors.KindValidation, 11006, "unknown role")
)

// UserService account administration, reserved for administrators
type UserService interface {
	Create(ctx context.Context, actor Actor, req *dto.CreateUserRequest) (*dto.UserResponse, error)
	List(ctx context.Context, actor Actor, req *dto.PaginationRequest) ([]dto.UserResponse, int64, error)
	UpdateRole(ctx context.Context, actor Actor, id string, role string) (*dto.UserResponse, error)
}

type userService struct {
	repo   *repository.Repository
	clock  Clock
	logger *zap.Logger
}

// NewUserService creates a UserService
func NewUserService(repo *repository.Repository, clock Clock, logger *zap.Logger) UserService {
	return &userService{repo: repo, clock: clock, logger: logger}
}

func (s *userService) Create(ctx context.Context, actor Actor, req *dto.CreateUserRequest) (*dto.UserResponse, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	user, err := CreateUser(ctx, s.repo, s.clock, NewUser{
		Username:  req.Username,
		Email:     req.Email,
		FullName:  req.FullName,
		Role:      req.Role,
		Phone:     req.Phone,
		Position:  req.Position,
		FacultyID: req.FacultyID,
		Password:  req.Password,
	})
	if err != nil {
		if apperrors.KindOf(err) == apperrors.KindInternal {
			s.logger.Error("create user failed", zap.Error(err))
		}
		return nil, err
	}

	s.logger.Info("user created", zap.String("id", user.UserID), zap.String("role", user.Role), zap.String("by", actor.UserID))
	resp := toUserResponse(user)
	return &resp, nil
}

func (s *userService) List(ctx context.Context, actor Actor, req *dto.PaginationRequest) ([]dto.UserResponse, int64, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, 0, err
	}
	users, total, err := s.repo.User.List(ctx, req.GetOffset(), req.GetPageSize())
	if err != nil {
		s.logger.Error("list users failed", zap.Error(err))
		return nil, 0, err
	}
	result := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		result = append(result, toUserResponse(&users[i]))
	}
	return result, total, nil
}

func (s *userService) UpdateRole(ctx context.Context, actor Actor, id string, role string) (*dto.UserResponse, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	if !model.IsValidRole(role) {
		return nil, ErrInvalidRole
	}
	user, err := s.repo.User.GetByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	user.Role = role
	user.UpdatedAt = s.clock.Now()
	if err := s.repo.User.Update(ctx, user); err != nil {
		s.logger.Error("update user role failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	resp := toUserResponse(user)
	return &resp, nil
}

// NewUser fields of an administratively created account
type NewUser struct {
	Username  string
	Email     string
	FullName  string
	Role      string
	Phone     string
	Position  string
	FacultyID string
	Password  string
}

// CreateUser validates and stores an account with any role. Shared by the
// admin API and the create-user command.
func CreateUser(ctx context.Context, repo *repository.Repository, clock Clock, in NewUser) (*model.User, error) {
	if in.Role == "" {
		in.Role = model.RoleReviewer
	}
	if !model.IsValidRole(in.Role) {
		return nil, ErrInvalidRole
	}
	username := strings.TrimSpace(in.Username)
	exists, err := repo.User.ExistsByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrUsernameExists
	}

	var facultyID *string
	if in.FacultyID != "" {
		if _, err := repo.Faculty.GetByID(ctx, in.FacultyID); err != nil {
			if isNotFound(err) {
				return nil, ErrFacultyNotFound
			}
			return nil, err
		}
		id := in.FacultyID
		facultyID = &id
	}

	hash, err := HashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	user := &model.User{
		Username:     username,
		FullName:     strings.TrimSpace(in.FullName),
		Email:        strings.TrimSpace(in.Email),
		PasswordHash: hash,
		Role:         in.Role,
		Phone:        in.Phone,
		Position:     in.Position,
		FacultyID:    facultyID,
		IsActive:     true,
	}
	user.Touch(clock.Now())
	if err := repo.User.Create(ctx, user); err != nil {
		if isDuplicate(err) {
			return nil, ErrUsernameExists
		}
		return nil, err
	}
	return user, nil
}
