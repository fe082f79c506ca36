package domain

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ContactMessage is a contact-form submission, stored verbatim. It is never
// updated and only read back by the admin listing.
type ContactMessage struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name    string             `bson:"name" json:"name"`
	Email   string             `bson:"email" json:"email"`
	Subject string             `bson:"subject" json:"subject"`
	Message string             `bson:"message" json:"message"`
}

func NewContactMessage(name, email, subject, message string) *ContactMessage {
	return &ContactMessage{
		Name:    name,
		Email:   email,
		Subject: subject,
		Message: message,
	}
}

func (c *ContactMessage) Validate() error {
	if c.Name == "" {
		return &ValidationError{Field: "name"}
	}
	if c.Email == "" {
		return &ValidationError{Field: "email"}
	}
	if c.Subject == "" {
		return &ValidationError{Field: "subject"}
	}
	if c.Message == "" {
		return &ValidationError{Field: "message"}
	}
	return nil
}

type ContactRepository interface {
	Create(ctx context.Context, msg *ContactMessage) error
	ListAll(ctx context.Context) ([]ContactMessage, error)
}
