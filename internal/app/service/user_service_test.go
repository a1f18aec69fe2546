package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/philipjohn05/taskapp-portfolio/internal/app/service"
	"github.com/philipjohn05/taskapp-portfolio/internal/core/domain"
)

func TestUserService_EnsureUserExists_ReturnsExistingUser(t *testing.T) {
	repo := new(userRepositoryMock)
	repo.On("GetByEmail", mock.Anything, "demo@example.com").
		Return(domain.User{ID: "existing-id", Email: "demo@example.com"}, nil).Once()
	svc := service.NewUserService(repo)

	id, err := svc.EnsureUserExists(context.Background(), "demo@example.com", "Demo User")

	require.NoError(t, err)
	require.Equal(t, "existing-id", id)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	repo.AssertExpectations(t)
}

func TestUserService_EnsureUserExists_CreatesMissingUser(t *testing.T) {
	repo := new(userRepositoryMock)
	repo.On("GetByEmail", mock.Anything, "demo@example.com").Return(domain.User{}, domain.ErrUserNotFound).Once()
	repo.On("Create", mock.Anything, mock.MatchedBy(func(user domain.User) bool {
		_, err := uuid.Parse(user.ID)
		return err == nil &&
			user.Email == "demo@example.com" &&
			user.DisplayName == "Demo User" &&
			user.CreatedAt.Equal(fixedNow)
	})).Return(nil).Once()
	svc := service.NewUserService(repo, service.WithClock(fixedClock))

	id, err := svc.EnsureUserExists(context.Background(), "demo@example.com", "Demo User")

	require.NoError(t, err)
	_, parseErr := uuid.Parse(id)
	require.NoError(t, parseErr)
	repo.AssertExpectations(t)
}

func TestUserService_EnsureUserExists_RetriesLookupAfterConflict(t *testing.T) {
	repo := new(userRepositoryMock)
	repo.On("GetByEmail", mock.Anything, "demo@example.com").Return(domain.User{}, domain.ErrUserNotFound).Once()
	repo.On("Create", mock.Anything, mock.Anything).Return(domain.ErrUserAlreadyExists).Once()
	repo.On("GetByEmail", mock.Anything, "demo@example.com").
		Return(domain.User{ID: "winner-id", Email: "demo@example.com"}, nil).Once()
	svc := service.NewUserService(repo)

	id, err := svc.EnsureUserExists(context.Background(), "demo@example.com", "Demo User")

	require.NoError(t, err)
	require.Equal(t, "winner-id", id)
	repo.AssertExpectations(t)
}

func TestUserService_EnsureUserExists_PropagatesStorageErrors(t *testing.T) {
	storageErr := &domain.StorageError{Op: "get user by email", Err: errors.New("timeout")}
	repo := new(userRepositoryMock)
	repo.On("GetByEmail", mock.Anything, "demo@example.com").Return(domain.User{}, storageErr).Once()
	svc := service.NewUserService(repo)

	_, err := svc.EnsureUserExists(context.Background(), "demo@example.com", "Demo User")

	require.ErrorIs(t, err, storageErr)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUserService_EnsureUserExists_ValidatesIdentity(t *testing.T) {
	tests := []struct {
		name        string
		email       string
		displayName string
		message     string
	}{
		{name: "missing email", email: "", displayName: "Demo", message: "email is required"},
		{name: "malformed email", email: "not-an-email", displayName: "Demo", message: "email must be a valid email address"},
		{name: "missing display name", email: "demo@example.com", displayName: " ", message: "displayName is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(userRepositoryMock)
			svc := service.NewUserService(repo)

			_, err := svc.EnsureUserExists(context.Background(), tt.email, tt.displayName)

			require.ErrorIs(t, err, domain.ErrValidation)
			require.Equal(t, tt.message, err.Error())
			repo.AssertNotCalled(t, "GetByEmail", mock.Anything, mock.Anything)
		})
	}
}

func TestUserService_UserExists(t *testing.T) {
	repo := new(userRepositoryMock)
	repo.On("Exists", mock.Anything, "user-1").Return(true, nil).Once()
	svc := service.NewUserService(repo)

	exists, err := svc.UserExists(context.Background(), "user-1")

	require.NoError(t, err)
	require.True(t, exists)
	repo.AssertExpectations(t)
}
