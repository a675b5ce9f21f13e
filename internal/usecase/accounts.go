package usecase

import (
	"context"
	"errors"
	"fmt"

	"resume-enhancer/internal/common"
	"resume-enhancer/internal/domain"

	"golang.org/x/crypto/bcrypt"
)

// UsersRepo is the account persistence needed by Accounts.
type UsersRepo interface {
	Create(ctx context.Context, u *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

// Accounts handles signup and credential checks.
type Accounts struct {
	repo UsersRepo
}

func NewAccounts(repo UsersRepo) *Accounts {
	return &Accounts{repo: repo}
}

// SignUp creates an account with a bcrypt-hashed password. A taken email
// surfaces as common.ErrEmailTaken.
func (a *Accounts) SignUp(ctx context.Context, email, password, username string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	return a.repo.Create(ctx, &domain.User{
		Email:        email,
		PasswordHash: string(hash),
		Username:     username,
	})
}

// Login verifies the credentials and returns the display name. Outcomes are
// common.ErrUserNotFound, common.ErrWrongPassword, or success.
func (a *Accounts) Login(ctx context.Context, email, password string) (string, error) {
	u, err := a.repo.GetByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return "", common.ErrWrongPassword
		}
		return "", fmt.Errorf("compare password: %w", err)
	}
	return u.Username, nil
}
