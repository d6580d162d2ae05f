package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"go-talentmatch-backend/internal/domain"
	"go-talentmatch-backend/pkg/apperror"
)

const tokenTTL = 24 * time.Hour

type authUsecase struct {
	userRepo  domain.UserRepository
	jwtSecret string
	logger    *slog.Logger
}

func NewAuthUsecase(userRepo domain.UserRepository, jwtSecret string, logger *slog.Logger) domain.AuthUsecase {
	return &authUsecase{
		userRepo:  userRepo,
		jwtSecret: jwtSecret,
		logger:    logger,
	}
}

// Authenticate is find-or-create: a known email returns the stored
// profile, an unknown one registers a new recruiter with a generated
// avatar. Either way the caller gets a fresh signed token.
func (u *authUsecase) Authenticate(ctx context.Context, name, email string, role domain.UserRole) (*domain.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, "", apperror.BadRequest("Email is required")
	}

	user, err := u.userRepo.GetByEmail(ctx, email)
	if err == domain.ErrNotFound {
		if role == "" {
			role = domain.RoleRecruiter
		}
		user = &domain.User{
			ID:        uuid.NewString(),
			Name:      name,
			Email:     email,
			Role:      role,
			AvatarURL: avatarURL(name),
			CreatedAt: time.Now(),
		}
		if err := u.userRepo.Create(ctx, user); err != nil {
			return nil, "", err
		}
		u.logger.Info("new user registered", "user_id", user.ID, "role", user.Role)
	} else if err != nil {
		return nil, "", err
	}

	token, err := u.signToken(user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (u *authUsecase) GetUser(ctx context.Context, id string) (*domain.User, error) {
	user, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		if err == domain.ErrNotFound {
			return nil, apperror.NotFound("User not found")
		}
		return nil, err
	}
	return user, nil
}

func (u *authUsecase) signToken(user *domain.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   user.ID,
		"email": user.Email,
		"role":  string(user.Role),
		"iat":   now.Unix(),
		"exp":   now.Add(tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(u.jwtSecret))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

func avatarURL(name string) string {
	return fmt.Sprintf("https://ui-avatars.com/api/?name=%s&background=random", url.QueryEscape(name))
}
