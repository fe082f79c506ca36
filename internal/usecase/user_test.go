package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Konete326/elitedev/internal/domain"
)

func TestSignupStoresHash(t *testing.T) {
	ctx := context.Background()
	repo := newFakeUserRepo()
	uc := NewUserUsecase(repo)

	require.NoError(t, uc.Signup(ctx, "Sam", "sam1", "hunter2"))

	stored, err := repo.FindByUsername(ctx, "sam1")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NotEqual(t, "hunter2", stored.Password)
	assert.NoError(t, stored.CheckPassword("hunter2"))
}

func TestSignupDuplicateUsername(t *testing.T) {
	ctx := context.Background()
	repo := newFakeUserRepo()
	uc := NewUserUsecase(repo)

	require.NoError(t, uc.Signup(ctx, "Sam", "sam1", "hunter2"))

	err := uc.Signup(ctx, "Other Sam", "sam1", "different")
	assert.ErrorIs(t, err, domain.ErrDuplicateKey)
	assert.Len(t, repo.users, 1)
}

func TestSignupMissingFields(t *testing.T) {
	ctx := context.Background()
	repo := newFakeUserRepo()
	uc := NewUserUsecase(repo)

	err := uc.Signup(ctx, "Sam", "", "hunter2")
	assert.True(t, domain.IsValidationError(err))

	err = uc.Signup(ctx, "Sam", "sam1", "")
	assert.True(t, domain.IsValidationError(err))

	assert.Empty(t, repo.users)
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	repo := newFakeUserRepo()
	uc := NewUserUsecase(repo)
	require.NoError(t, uc.Signup(ctx, "Sam", "sam1", "hunter2"))

	user, err := uc.Login(ctx, "sam1", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, "Sam", user.Firstname)

	_, err = uc.Login(ctx, "sam1", "wrong")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = uc.Login(ctx, "nobody", "hunter2")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}
