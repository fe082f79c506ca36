package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Konete326/elitedev/internal/domain"
)

func TestSubmitContact(t *testing.T) {
	ctx := context.Background()
	repo := &fakeContactRepo{}
	uc := NewContactUsecase(repo, nil, nil)

	require.NoError(t, uc.Submit(ctx, "Sam", "sam@example.com", "Hello", "Nice site"))

	require.Len(t, repo.msgs, 1)
	assert.Equal(t, "Nice site", repo.msgs[0].Message)
}

func TestSubmitContactMissingField(t *testing.T) {
	ctx := context.Background()
	repo := &fakeContactRepo{}
	uc := NewContactUsecase(repo, nil, nil)

	err := uc.Submit(ctx, "Sam", "", "Hello", "Nice site")
	assert.True(t, domain.IsValidationError(err))
	assert.Empty(t, repo.msgs)
}

func TestSubmitContactNotifierFailureIsSwallowed(t *testing.T) {
	ctx := context.Background()
	repo := &fakeContactRepo{}
	notifier := &failingNotifier{}
	uc := NewContactUsecase(repo, notifier, nil)

	require.NoError(t, uc.Submit(ctx, "Sam", "sam@example.com", "Hello", "Nice site"))

	assert.Len(t, repo.msgs, 1)
	assert.Equal(t, 1, notifier.calls)
}
