package usecase

import (
	"context"

	"github.com/Konete326/elitedev/internal/domain"
)

type UserUsecase struct {
	repo domain.UserRepository
}

func NewUserUsecase(repo domain.UserRepository) *UserUsecase {
	return &UserUsecase{repo: repo}
}

// Signup validates and hashes before any write, so a stored password is
// always a bcrypt hash.
func (uc *UserUsecase) Signup(ctx context.Context, firstname, username, password string) error {
	user := domain.NewUser(firstname, username, password)
	if err := user.Validate(); err != nil {
		return err
	}
	if err := user.HashPassword(); err != nil {
		return err
	}
	return uc.repo.Create(ctx, user)
}

// Login returns the user iff the password matches the stored hash. Unknown
// usernames and bad passwords both come back as ErrInvalidCredentials.
func (uc *UserUsecase) Login(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := uc.repo.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrInvalidCredentials
	}
	if err := user.CheckPassword(password); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	return user, nil
}
