package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/philipjohn05/taskapp-portfolio/internal/core/domain"
	"github.com/philipjohn05/taskapp-portfolio/internal/core/ports"
)

type userIdentity struct {
	Email       string `validate:"required,max=255,email"`
	DisplayName string `validate:"required,max=100"`
}

type UserService struct {
	userRepository ports.UserRepository
	now            func() time.Time
}

func NewUserService(userRepository ports.UserRepository, opts ...Option) *UserService {
	o := buildOptions(opts)
	return &UserService{userRepository: userRepository, now: o.now}
}

// EnsureUserExists returns the id of the user with the given email, creating
// the user first if needed.
func (s *UserService) EnsureUserExists(ctx context.Context, email, displayName string) (string, error) {
	identity := userIdentity{
		Email:       strings.TrimSpace(email),
		DisplayName: strings.TrimSpace(displayName),
	}
	if err := validateStruct(identity); err != nil {
		return "", err
	}

	user, err := s.userRepository.GetByEmail(ctx, identity.Email)
	if err == nil {
		return user.ID, nil
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return "", err
	}

	newUser := domain.User{
		ID:          uuid.NewString(),
		Email:       identity.Email,
		DisplayName: identity.DisplayName,
		CreatedAt:   serverTime(s.now),
	}
	err = s.userRepository.Create(ctx, newUser)
	if err == nil {
		zap.L().Info("user created", zap.String("user_id", newUser.ID), zap.String("email", newUser.Email))
		return newUser.ID, nil
	}
	if !errors.Is(err, domain.ErrUserAlreadyExists) {
		return "", err
	}

	// A concurrent request inserted the same email first; use its row.
	zap.L().Debug("user insert lost race, retrying lookup", zap.String("email", identity.Email))
	user, err = s.userRepository.GetByEmail(ctx, identity.Email)
	if err != nil {
		return "", err
	}
	return user.ID, nil
}

func (s *UserService) UserExists(ctx context.Context, userID string) (bool, error) {
	return s.userRepository.Exists(ctx, userID)
}

var _ ports.UserService = (*UserService)(nil)
