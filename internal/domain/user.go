package domain

import (
	"context"
	"time"
)

type UserRole string

const (
	RoleAdmin     UserRole = "ADMIN"
	RoleRecruiter UserRole = "RECRUITER"
)

type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name" validate:"required,min=2,max=120"`
	Email     string    `json:"email" validate:"required,email"`
	Role      UserRole  `json:"role"`
	AvatarURL string    `json:"avatar_url"`
	CreatedAt time.Time `json:"created_at"`
}

type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	Fetch(ctx context.Context) ([]User, error)
	Delete(ctx context.Context, id string) error
	DeleteAllExcept(ctx context.Context, keepID string) (int64, error)
	Count(ctx context.Context) (int64, error)
}

type AuthUsecase interface {
	// Authenticate finds the user by email or creates one with the
	// given name and role, then returns it with a signed token.
	Authenticate(ctx context.Context, name, email string, role UserRole) (*User, string, error)
	GetUser(ctx context.Context, id string) (*User, error)
}
