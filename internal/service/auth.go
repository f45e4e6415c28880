package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"aidhub/internal/auth"
	"aidhub/internal/domain"
)

const (
	minPasswordLength = 6
	// bcrypt rejects longer inputs.
	maxPasswordBytes = 72
)

var errBadCredentials = fmt.Errorf("%w: invalid email or password", domain.ErrUnauthenticated)

// RegisterInput is the payload for a new account.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     string
	Phone    *string
	Address  *string
	City     *string
	Region   *string
}

// Session is a signed token together with the public user it was issued for.
type Session struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

// AuthService registers accounts, signs users in and manages profiles.
type AuthService struct {
	users  domain.UserRepository
	hasher auth.PasswordHasher
	tokens *auth.TokenIssuer
	logger zerolog.Logger
}

func NewAuthService(users domain.UserRepository, hasher auth.PasswordHasher, tokens *auth.TokenIssuer, logger zerolog.Logger) *AuthService {
	return &AuthService{users: users, hasher: hasher, tokens: tokens, logger: logger}
}

// Register creates an account and returns a session for it.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*Session, error) {
	name := strings.TrimSpace(in.Name)
	email, err := normalizeEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if name == "" || in.Password == "" || strings.TrimSpace(in.Role) == "" {
		return nil, fmt.Errorf("%w: name, email, password and role are required", domain.ErrValidation)
	}
	if utf8.RuneCountInString(in.Password) < minPasswordLength {
		return nil, fmt.Errorf("%w: password must be at least %d characters", domain.ErrValidation, minPasswordLength)
	}
	if len(in.Password) > maxPasswordBytes {
		return nil, fmt.Errorf("%w: password must not exceed %d bytes", domain.ErrValidation, maxPasswordBytes)
	}
	role, err := domain.ParseRole(in.Role)
	if err != nil {
		return nil, err
	}
	if len(email) > domain.MaxEmailLength {
		return nil, fmt.Errorf("%w: email exceeds %d characters", domain.ErrValidation, domain.MaxEmailLength)
	}
	profile := domain.ProfileUpdate{
		Name:    name,
		Phone:   trimmedPtr(in.Phone),
		Address: trimmedPtr(in.Address),
		City:    domain.NormalizePlacePtr(in.City),
		Region:  domain.NormalizePlacePtr(in.Region),
	}
	if err := profile.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, fmt.Errorf("%w: email is already registered", domain.ErrConflict)
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}
	user := &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Phone:        profile.Phone,
		Address:      profile.Address,
		City:         profile.City,
		Region:       profile.Region,
		Role:         role,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return nil, fmt.Errorf("%w: email is already registered", domain.ErrConflict)
		}
		return nil, err
	}
	s.logger.Info().Int64("user_id", user.ID).Str("role", string(user.Role)).Msg("user registered")
	return s.session(user)
}

// Login checks credentials. Unknown email and wrong password are indistinguishable.
func (s *AuthService) Login(ctx context.Context, email, password string) (*Session, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, fmt.Errorf("%w: email and password are required", domain.ErrValidation)
	}
	user, err := s.users.GetByEmail(ctx, email)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, errBadCredentials
	}
	if err != nil {
		return nil, err
	}
	if err := s.hasher.Compare(user.PasswordHash, password); err != nil {
		if errors.Is(err, auth.ErrPasswordMismatch) {
			return nil, errBadCredentials
		}
		return nil, err
	}
	return s.session(user)
}

// Profile returns the account of the authenticated actor.
func (s *AuthService) Profile(ctx context.Context, actor domain.Actor) (*domain.User, error) {
	return s.users.GetByID(ctx, actor.ID)
}

// UpdateProfile replaces the mutable profile fields; omitted optional fields are cleared.
func (s *AuthService) UpdateProfile(ctx context.Context, actor domain.Actor, in domain.ProfileUpdate) (*domain.User, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Phone = trimmedPtr(in.Phone)
	in.Address = trimmedPtr(in.Address)
	in.City = domain.NormalizePlacePtr(in.City)
	in.Region = domain.NormalizePlacePtr(in.Region)
	if err := in.Validate(); err != nil {
		return nil, err
	}
	return s.users.UpdateProfile(ctx, actor.ID, in)
}

func (s *AuthService) session(user *domain.User) (*Session, error) {
	token, err := s.tokens.Issue(*user)
	if err != nil {
		return nil, err
	}
	return &Session{Token: token, User: user}, nil
}

func normalizeEmail(raw string) (string, error) {
	email := strings.ToLower(strings.TrimSpace(raw))
	if email == "" {
		return "", fmt.Errorf("%w: name, email, password and role are required", domain.ErrValidation)
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email || !strings.Contains(email[strings.LastIndex(email, "@"):], ".") {
		return "", fmt.Errorf("%w: email is not valid", domain.ErrValidation)
	}
	return email, nil
}

func trimmedPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
