package usecase_test

import (
	"context"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"go-talentmatch-backend/internal/domain"
	"go-talentmatch-backend/internal/usecase"
)

const testSecret = "test-secret"

func TestAuthenticateExistingUser(t *testing.T) {
	userRepo := new(MockUserRepo)
	existing := &domain.User{ID: "u1", Name: "Alice", Email: "alice@example.com", Role: domain.RoleAdmin}
	userRepo.On("GetByEmail", mock.Anything, "alice@example.com").Return(existing, nil)

	uc := usecase.NewAuthUsecase(userRepo, testSecret, testLogger())
	user, token, err := uc.Authenticate(context.Background(), "ignored", "Alice@Example.com", domain.RoleRecruiter)

	assert.NoError(t, err)
	assert.Equal(t, "u1", user.ID)
	// stored role wins over the requested one
	assert.Equal(t, domain.RoleAdmin, user.Role)
	userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)

	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	assert.NoError(t, err)
	claims := parsed.Claims.(jwt.MapClaims)
	assert.Equal(t, "u1", claims["sub"])
	assert.Equal(t, "ADMIN", claims["role"])
}

func TestAuthenticateCreatesUnknownUser(t *testing.T) {
	userRepo := new(MockUserRepo)
	userRepo.On("GetByEmail", mock.Anything, "new@example.com").Return(nil, domain.ErrNotFound)

	var created *domain.User
	userRepo.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		created = args.Get(1).(*domain.User)
	}).Return(nil)

	uc := usecase.NewAuthUsecase(userRepo, testSecret, testLogger())
	user, token, err := uc.Authenticate(context.Background(), "New User", "new@example.com", "")

	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, created.ID, user.ID)
	assert.Equal(t, domain.RoleRecruiter, created.Role)
	assert.Contains(t, created.AvatarURL, "ui-avatars.com")
}

func TestAuthenticateRequiresEmail(t *testing.T) {
	uc := usecase.NewAuthUsecase(new(MockUserRepo), testSecret, testLogger())
	_, _, err := uc.Authenticate(context.Background(), "Name", "   ", domain.RoleRecruiter)

	assert.Error(t, err)
}
