package auth

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/printhaus/printshop/internal/config"
	"github.com/printhaus/printshop/internal/users"
	"golang.org/x/crypto/bcrypt"
)

// bcryptCost matches the cost the account base was hashed with.
const bcryptCost = 10

type service struct {
	users  users.System
	secret []byte
	cfg    config.AuthConfig
	logger *slog.Logger
}

// New creates a new authentication system backed by the user store.
func New(users users.System, cfg config.AuthConfig, logger *slog.Logger) System {
	return &service{
		users:  users,
		secret: []byte(cfg.Secret),
		cfg:    cfg,
		logger: logger.With("system", "auth"),
	}
}

func (s *service) Handler() *Handler {
	return NewHandler(s, s.logger)
}

func (s *service) Register(ctx context.Context, cmd RegisterCommand) (*Session, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(cmd.Password), bcryptCost)
	if err != nil {
		return nil, err
	}

	u, err := s.users.Create(ctx, users.CreateCommand{
		Email:        cmd.Email,
		PasswordHash: string(hash),
		Name:         cmd.Name,
		Phone:        cmd.Phone,
		UserType:     cmd.UserType,
		UNP:          cmd.UNP,
		LegalAddress: cmd.LegalAddress,
		BankName:     cmd.BankName,
		BankAccount:  cmd.BankAccount,
		BankCode:     cmd.BankCode,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("account registered", "id", u.ID, "email", u.Email)
	return s.session(u)
}

func (s *service) Login(ctx context.Context, cmd LoginCommand) (*Session, error) {
	u, err := s.users.FindByEmail(ctx, cmd.Email)
	if err != nil {
		if errors.Is(err, users.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(cmd.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	if !u.IsActive {
		return nil, ErrAccountInactive
	}

	s.logger.Info("login", "id", u.ID, "email", u.Email)
	return s.session(u)
}

func (s *service) Verify(ctx context.Context, token string) (*users.User, error) {
	claims, err := parseToken(s.secret, token)
	if err != nil {
		return nil, err
	}

	id, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, ErrInvalidToken
	}

	u, err := s.users.Find(ctx, id)
	if err != nil {
		if errors.Is(err, users.ErrNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, err
	}

	if !u.IsActive {
		return nil, ErrAccountInactive
	}

	return u, nil
}

func (s *service) session(u *users.User) (*Session, error) {
	token, err := issueToken(s.secret, u.ID, u.Email, s.cfg.TokenTTLDuration())
	if err != nil {
		return nil, err
	}
	return &Session{Token: token, User: u}, nil
}
