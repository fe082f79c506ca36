package usecase

import (
	"context"
	"crypto/subtle"

	"github.com/Konete326/elitedev/internal/domain"
	"github.com/Konete326/elitedev/internal/infrastructure"
)

// AdminUsecase gates the admin data view. Authentication issues a signed
// token and the data route demands it; the listing is never reachable
// without a prior admin login.
type AdminUsecase struct {
	users    domain.UserRepository
	contacts domain.ContactRepository
	password string
	tokens   *infrastructure.JWTService
}

func NewAdminUsecase(users domain.UserRepository, contacts domain.ContactRepository, password string, tokens *infrastructure.JWTService) *AdminUsecase {
	return &AdminUsecase{
		users:    users,
		contacts: contacts,
		password: password,
		tokens:   tokens,
	}
}

// Authenticate checks the submitted password and returns a signed admin
// token on success.
func (uc *AdminUsecase) Authenticate(password string) (string, error) {
	if subtle.ConstantTimeCompare([]byte(password), []byte(uc.password)) != 1 {
		return "", domain.ErrInvalidCredentials
	}
	return uc.tokens.GenerateToken("admin")
}

// Authorize validates a previously issued admin token.
func (uc *AdminUsecase) Authorize(token string) error {
	if token == "" {
		return domain.ErrInvalidCredentials
	}
	if err := uc.tokens.ValidateToken(token); err != nil {
		return domain.ErrInvalidCredentials
	}
	return nil
}

// AdminData is the payload of the admin view: every contact message and
// every user record, stored password hash included.
type AdminData struct {
	Contacts []domain.ContactMessage `json:"contacts"`
	Users    []domain.User           `json:"users"`
}

func (uc *AdminUsecase) FetchData(ctx context.Context) (*AdminData, error) {
	contacts, err := uc.contacts.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	users, err := uc.users.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	if contacts == nil {
		contacts = []domain.ContactMessage{}
	}
	if users == nil {
		users = []domain.User{}
	}
	return &AdminData{Contacts: contacts, Users: users}, nil
}
