package handler

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Konete326/elitedev/internal/domain"
)

type fakeUserRepo struct {
	users map[string]domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]domain.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	if _, exists := r.users[user.Username]; exists {
		return domain.ErrDuplicateKey
	}
	user.ID = primitive.NewObjectID()
	r.users[user.Username] = *user
	return nil
}

func (r *fakeUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	user, ok := r.users[username]
	if !ok {
		return nil, nil
	}
	return &user, nil
}

func (r *fakeUserRepo) ListAll(_ context.Context) ([]domain.User, error) {
	var out []domain.User
	for _, u := range r.users {
		out = append(out, u)
	}
	return out, nil
}

type fakeContactRepo struct {
	msgs []domain.ContactMessage
}

func (r *fakeContactRepo) Create(_ context.Context, msg *domain.ContactMessage) error {
	msg.ID = primitive.NewObjectID()
	r.msgs = append(r.msgs, *msg)
	return nil
}

func (r *fakeContactRepo) ListAll(_ context.Context) ([]domain.ContactMessage, error) {
	return r.msgs, nil
}
