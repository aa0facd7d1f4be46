package services

import (
	"context"
	"errors"

	"lojabase/internal/domain"
	"lojabase/internal/validate"
)

// dummyHash is compared against when the email is unknown so that an unknown
// account and a wrong password take the same time.
const dummyHash = "$2a$10$7EqJtq98hPqEX7fNZaFWoOa4vVDmd8q8oDqZxwsqN2y3aBzWC0Xdu"

type AuthService struct {
	Customers CustomerStore
	Hasher    PasswordHasher
	Tokens    TokenIssuer
}

func NewAuthService(customers CustomerStore, hasher PasswordHasher, tokens TokenIssuer) *AuthService {
	return &AuthService{Customers: customers, Hasher: hasher, Tokens: tokens}
}

// Register hashes the password and stores a new customer. Email uniqueness is
// enforced by the store.
func (s *AuthService) Register(ctx context.Context, in domain.RegisterInput) (domain.Customer, error) {
	name, okName := validate.Required(in.Name)
	email, okEmail := validate.Email(in.Email)
	if !okName || !okEmail || in.Password == "" {
		return domain.Customer{}, domain.ErrInvalidInput
	}
	hash, err := s.Hasher.Hash(in.Password)
	if err != nil {
		return domain.Customer{}, err
	}
	c, err := s.Customers.Create(ctx, domain.Customer{Name: name, Email: email, Hash: hash})
	if errors.Is(err, domain.ErrDuplicateEmail) {
		return domain.Customer{}, err
	}
	if err != nil {
		return domain.Customer{}, storeFault("register customer", err)
	}
	return c, nil
}

// Login returns a signed bearer token. Unknown email and wrong password both
// fail with domain.ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, in domain.LoginInput) (string, error) {
	email, ok := validate.Email(in.Email)
	if !ok || in.Password == "" {
		return "", domain.ErrInvalidInput
	}
	c, err := s.Customers.ByEmail(ctx, email)
	if errors.Is(err, domain.ErrNotFound) {
		s.Hasher.Verify(in.Password, dummyHash)
		return "", domain.ErrInvalidCredentials
	}
	if err != nil {
		return "", storeFault("login lookup", err)
	}
	if !s.Hasher.Verify(in.Password, c.Hash) {
		return "", domain.ErrInvalidCredentials
	}
	return s.Tokens.Issue(c.ID, c.Email)
}
