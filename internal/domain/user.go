package domain

import (
	"context"
	"fmt"
	"time"

	"github.com/asaskevich/govalidator"
)

//go:generate mockgen -destination mocks/mock_user_service.go -package mocks github.com/mailkite/mailkite/internal/domain UserService
//go:generate mockgen -destination mocks/mock_user_repository.go -package mocks github.com/mailkite/mailkite/internal/domain UserRepository

// UserRole defines the role of a user account
type UserRole string

const (
	UserRoleUser  UserRole = "user"
	UserRoleAdmin UserRole = "admin"
)

// User is the tenant principal. Every tenant-scoped row is owned,
// directly or transitively, by exactly one user.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Role         UserRole  `json:"role"`
	IsVerified   bool      `json:"is_verified" db:"is_verified"`
	HasPaid      bool      `json:"has_paid" db:"has_paid"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Validate performs validation on the user fields
func (u *User) Validate() error {
	if u.ID == "" {
		return fmt.Errorf("invalid user: id is required")
	}
	if u.Email == "" {
		return fmt.Errorf("invalid user: email is required")
	}
	if !govalidator.IsEmail(u.Email) {
		return fmt.Errorf("invalid user: email is not valid")
	}
	switch u.Role {
	case UserRoleUser, UserRoleAdmin:
	default:
		return fmt.Errorf("invalid user: unknown role: %s", u.Role)
	}
	return nil
}

// ScanUser scans a user from the database
func ScanUser(scanner interface {
	Scan(dest ...interface{}) error
}) (*User, error) {
	var u User
	if err := scanner.Scan(
		&u.ID,
		&u.Email,
		&u.Name,
		&u.PasswordHash,
		&u.Role,
		&u.IsVerified,
		&u.HasPaid,
		&u.CreatedAt,
		&u.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &u, nil
}

// Request/Response types
type SignupRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

func (r *SignupRequest) Validate() error {
	if r.Email == "" {
		return fmt.Errorf("invalid signup request: email is required")
	}
	if !govalidator.IsEmail(r.Email) {
		return fmt.Errorf("invalid signup request: email is not valid")
	}
	if len(r.Password) < 8 {
		return fmt.Errorf("invalid signup request: password must be at least 8 characters")
	}
	if len(r.Name) > 255 {
		return fmt.Errorf("invalid signup request: name length must be between 0 and 255")
	}
	return nil
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	if r.Email == "" {
		return fmt.Errorf("invalid login request: email is required")
	}
	if r.Password == "" {
		return fmt.Errorf("invalid login request: password is required")
	}
	return nil
}

// AuthResponse carries the signed bearer token for an authenticated tenant
type AuthResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

// UserService provides account operations for tenant principals
type UserService interface {
	// Signup creates a new tenant principal
	Signup(ctx context.Context, req *SignupRequest) (*AuthResponse, error)

	// Login authenticates an existing tenant principal
	Login(ctx context.Context, req *LoginRequest) (*AuthResponse, error)

	// GetUserByID retrieves a user by ID
	GetUserByID(ctx context.Context, id string) (*User, error)

	// VerifyToken resolves a bearer token into the authenticated user
	VerifyToken(ctx context.Context, token string) (*User, error)

	// DeleteUser deletes a tenant principal and cascades every owned row
	DeleteUser(ctx context.Context, id string) error
}

// UserRepository defines persistence for tenant principals
type UserRepository interface {
	CreateUser(ctx context.Context, user *User) error
	GetUserByID(ctx context.Context, id string) (*User, error)
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	UpdateUser(ctx context.Context, user *User) error

	// DeleteUser removes the user row; composite foreign keys cascade the
	// deletion through every tenant-scoped table
	DeleteUser(ctx context.Context, id string) error
}
