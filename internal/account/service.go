package account

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/apex/log"

	"mediguard/internal/models"
)

var (
	ErrMissingCredentials = errors.New("name, email and password are required")
	ErrPasswordMismatch   = errors.New("passwords do not match")
)

// Authenticator talks to the auth endpoints of the backend.
type Authenticator interface {
	Login(ctx context.Context, email, password string) (*models.User, error)
	Signup(ctx context.Context, name, email, password string) (*models.User, error)
}

// UserStore is the persisted session.
type UserStore interface {
	User() *models.User
	SetUser(u models.User) error
	UpdateUserName(name string) error
	Clear() error
}

type SignupInput struct {
	Name            string
	Email           string
	Password        string
	ConfirmPassword string
}

func (in SignupInput) validate() error {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Email) == "" || in.Password == "" {
		return ErrMissingCredentials
	}
	if in.Password != in.ConfirmPassword {
		return ErrPasswordMismatch
	}
	return nil
}

type Service struct {
	auth  Authenticator
	store UserStore
}

func NewService(auth Authenticator, store UserStore) *Service {
	return &Service{auth: auth, store: store}
}

func (s *Service) Login(ctx context.Context, email, password string) (*models.User, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, ErrMissingCredentials
	}
	u, err := s.auth.Login(ctx, email, password)
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	if err := s.store.SetUser(*u); err != nil {
		return nil, err
	}
	log.WithField("user_id", u.ID).Info("signed in")
	return u, nil
}

// Signup validates the form locally; nothing is sent when it is invalid.
func (s *Service) Signup(ctx context.Context, in SignupInput) (*models.User, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	u, err := s.auth.Signup(ctx, strings.TrimSpace(in.Name), strings.TrimSpace(in.Email), in.Password)
	if err != nil {
		return nil, fmt.Errorf("signup: %w", err)
	}
	if err := s.store.SetUser(*u); err != nil {
		return nil, err
	}
	log.WithField("user_id", u.ID).Info("account created")
	return u, nil
}

func (s *Service) SignOut() error {
	return s.store.Clear()
}

// UpdateProfile changes the display name of the signed-in user. It is
// local only; the backend has no profile endpoint.
func (s *Service) UpdateProfile(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrMissingCredentials
	}
	return s.store.UpdateUserName(name)
}

func (s *Service) Current() *models.User {
	return s.store.User()
}
