package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "gymhub/internal/errors"
	"gymhub/internal/model"
)

func TestUserService_Profile(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockRepo.On("FindByEmail", mock.Anything, "a@x.com").Return(&model.User{
		ID:    1,
		Email: "a@x.com",
		Role:  model.RoleMember,
	}, nil)

	svc := NewUserService(mockRepo, nil)
	user, err := svc.Profile(context.Background(), "a@x.com")

	assert.NoError(t, err)
	assert.Equal(t, "a@x.com", user.Email)
	mockRepo.AssertExpectations(t)
}

func TestUserService_ProfileNotFound(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockRepo.On("FindByEmail", mock.Anything, "ghost@x.com").Return(nil, gorm.ErrRecordNotFound)

	svc := NewUserService(mockRepo, nil)
	user, err := svc.Profile(context.Background(), "ghost@x.com")

	assert.Equal(t, apperrors.ErrUserNotFound, err)
	assert.Nil(t, user)
}

func TestUserService_UpdateRole(t *testing.T) {
	tests := []struct {
		name          string
		userID        uint
		newRole       string
		setupMock     func(*MockUserRepository)
		expectedError error
	}{
		{
			name:    "promote member to trainer",
			userID:  3,
			newRole: "trainer",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByID", mock.Anything, uint(3)).Return(&model.User{
					ID:    3,
					Email: "a@x.com",
					Role:  model.RoleMember,
				}, nil)
				m.On("Update", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
			},
			expectedError: nil,
		},
		{
			name:          "unknown role rejected",
			userID:        3,
			newRole:       "owner",
			setupMock:     func(m *MockUserRepository) {},
			expectedError: apperrors.ErrInvalidRole,
		},
		{
			name:    "target not found",
			userID:  99,
			newRole: "admin",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByID", mock.Anything, uint(99)).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)

			svc := NewUserService(mockRepo, nil)
			user, err := svc.UpdateRole(context.Background(), tt.userID, tt.newRole)

			if tt.expectedError != nil {
				assert.Equal(t, tt.expectedError, err)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, model.Role(tt.newRole), user.Role)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}
