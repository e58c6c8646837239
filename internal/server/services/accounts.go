// Package services contains server-side business logic. AccountService runs
// registration, login and profile update; ItemService runs the item catalog.
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/secondchance/internal/common"
	"github.com/dmitrijs2005/secondchance/internal/server/models"
	"github.com/dmitrijs2005/secondchance/internal/server/repositories/users"
)

// PasswordHasher derives and checks stored password hashes.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, encoded string) (bool, error)
}

// TokenIssuer signs session tokens for an account id.
type TokenIssuer interface {
	Issue(subjectID string) (string, error)
}

// Session is the result of a successful auth event.
type Session struct {
	Token   string
	Account *models.Account
}

// RegisterInput carries the registration body. The password is only held
// long enough to hash it.
type RegisterInput struct {
	Email     string
	FirstName string
	LastName  string
	Password  string
}

type AccountService struct {
	users  users.Repository
	hasher PasswordHasher
	issuer TokenIssuer
	now    func() time.Time
}

func NewAccountService(repo users.Repository, hasher PasswordHasher, issuer TokenIssuer) *AccountService {
	return &AccountService{
		users:  repo,
		hasher: hasher,
		issuer: issuer,
		now:    time.Now,
	}
}

// Register creates an account and issues its first token. A taken email
// yields common.ErrorAlreadyExists, whether caught by the existence check or
// by the store's unique index.
func (s *AccountService) Register(ctx context.Context, in RegisterInput) (*Session, error) {
	exists, err := s.users.ExistsByEmail(ctx, in.Email)
	if err != nil {
		return nil, fmt.Errorf("error checking email: %w", err)
	}
	if exists {
		return nil, common.ErrorAlreadyExists
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	account, err := s.users.Create(ctx, &models.Account{
		Email:        in.Email,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		PasswordHash: hash,
		CreatedAt:    s.now(),
	})
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, err
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return s.session(account)
}

// Login checks the password against the stored hash. An unknown email
// yields common.ErrorNotFound, a mismatch common.ErrorIncorrectPassword.
func (s *AccountService) Login(ctx context.Context, email, password string) (*Session, error) {
	account, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("error finding user: %w", err)
	}

	ok, err := s.hasher.Verify(password, account.PasswordHash)
	if err != nil {
		return nil, fmt.Errorf("error verifying password: %w", err)
	}
	if !ok {
		return nil, common.ErrorIncorrectPassword
	}

	return s.session(account)
}

// UpdateProfile replaces the first name of the account with the given email
// and stamps updatedAt. name must already be validated and trimmed.
func (s *AccountService) UpdateProfile(ctx context.Context, email, name string) (*Session, error) {
	if email == "" {
		return nil, common.ErrorNotFound
	}

	account, err := s.users.UpdateFirstNameByEmail(ctx, email, name, s.now())
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("error updating user: %w", err)
	}

	return s.session(account)
}

func (s *AccountService) session(account *models.Account) (*Session, error) {
	token, err := s.issuer.Issue(account.ID)
	if err != nil {
		return nil, fmt.Errorf("error issuing token: %w", err)
	}
	return &Session{Token: token, Account: account}, nil
}
