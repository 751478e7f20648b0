package auth

import (
	"context"

	"pluggedin/internal/domain"
)

// UserRepositoryInterface holds only the methods the auth service uses.
type UserRepositoryInterface interface {
	Create(ctx context.Context, u *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
}

// PasswordResetRepositoryInterface is storage for single-use reset tokens.
type PasswordResetRepositoryInterface interface {
	Create(ctx context.Context, pr *domain.PasswordReset) error
	GetValidByHash(ctx context.Context, hash string) (*domain.PasswordReset, error)
	MarkUsed(ctx context.Context, id int64) error
}

// Mailer delivers the password reset link.
type Mailer interface {
	SendPasswordReset(to, resetURL string) error
}

type jwtService interface {
	GenerateToken(userID int64, email string) (string, error)
}
