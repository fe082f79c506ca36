package domain

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

// User is a site account. Password always holds the bcrypt hash once the
// user has passed through the credential store; the plaintext only ever
// exists in the signup/login request.
//
// The password field is serialized on purpose: the admin view lists users
// including the stored hash, which is a disclosure concern for a public
// deployment.
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Firstname string             `bson:"firstname" json:"firstname"`
	Username  string             `bson:"username" json:"username"`
	Password  string             `bson:"password" json:"password"`
}

func NewUser(firstname, username, password string) *User {
	return &User{
		Firstname: firstname,
		Username:  username,
		Password:  password,
	}
}

// Validate checks the required fields. Firstname is optional.
func (u *User) Validate() error {
	if u.Username == "" {
		return &ValidationError{Field: "username"}
	}
	if u.Password == "" {
		return &ValidationError{Field: "password"}
	}
	return nil
}

func (u *User) HashPassword() error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashedPassword)
	return nil
}

func (u *User) CheckPassword(password string) error {
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
}

// UserRepository is the credential store. Lookups return (nil, nil) when no
// user matches.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	FindByUsername(ctx context.Context, username string) (*User, error)
	ListAll(ctx context.Context) ([]User, error)
}
