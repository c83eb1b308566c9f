package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"taskboard/internal/domain"
	"taskboard/internal/repository"
)

// MinPasswordLength is the shortest accepted password.
const MinPasswordLength = 6

type UserStore interface {
	Create(ctx context.Context, u *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
}

// AuthService registers and authenticates users and verifies identity tokens.
type AuthService struct {
	users  UserStore
	hasher *PasswordHasher
	tokens *JWTManager

	// compared against when the email is unknown so both failure paths cost a bcrypt check
	dummyHash string
}

func NewAuthService(users UserStore, hasher *PasswordHasher, tokens *JWTManager) *AuthService {
	dummy, _ := hasher.Hash("taskboard-dummy-password")
	return &AuthService{users: users, hasher: hasher, tokens: tokens, dummyHash: dummy}
}

func (s *AuthService) Tokens() *JWTManager {
	return s.tokens
}

// Register creates a user and issues a token for it.
func (s *AuthService) Register(ctx context.Context, email, password string) (*domain.User, string, error) {
	if strings.TrimSpace(email) == "" || password == "" {
		return nil, "", fmt.Errorf("email and password are required: %w", domain.ErrInvalidInput)
	}
	if len(password) < MinPasswordLength {
		return nil, "", fmt.Errorf("password must be at least %d characters: %w", MinPasswordLength, domain.ErrInvalidInput)
	}
	if len(password) > MaxPasswordBytes {
		return nil, "", fmt.Errorf("password must be at most %d bytes: %w", MaxPasswordBytes, domain.ErrInvalidInput)
	}

	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, "", fmt.Errorf("user already exists: %w", domain.ErrAlreadyExists)
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, "", fmt.Errorf("lookup user: %w", err)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}

	u := &domain.User{Email: email, PasswordHash: hash}
	if err := s.users.Create(ctx, u); err != nil {
		// lost a race with a concurrent registration
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, "", fmt.Errorf("user already exists: %w", domain.ErrAlreadyExists)
		}
		return nil, "", fmt.Errorf("create user: %w", err)
	}

	token, err := s.tokens.GenerateJWT(u.ID)
	if err != nil {
		return nil, "", fmt.Errorf("generate token: %w", err)
	}
	return u, token, nil
}

// Authenticate checks the credentials. Unknown email and wrong password are
// reported identically.
func (s *AuthService) Authenticate(ctx context.Context, email, password string) (*domain.User, string, error) {
	if email == "" || password == "" {
		return nil, "", fmt.Errorf("email and password are required: %w", domain.ErrInvalidInput)
	}

	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			return nil, "", fmt.Errorf("lookup user: %w", err)
		}
		s.hasher.Verify(password, s.dummyHash)
		return nil, "", domain.ErrInvalidCredentials
	}

	if !s.hasher.Verify(password, u.PasswordHash) {
		return nil, "", domain.ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateJWT(u.ID)
	if err != nil {
		return nil, "", fmt.Errorf("generate token: %w", err)
	}
	return u, token, nil
}

// VerifyIdentity returns the token's user id. ok is false for an absent,
// malformed, expired or badly signed token.
func (s *AuthService) VerifyIdentity(token string) (userID string, ok bool) {
	id, err := s.tokens.ParseJWT(token)
	if err != nil {
		return "", false
	}
	return id, true
}

// CurrentUser loads the authenticated user. A token for a user that no
// longer exists yields ErrNotFound.
func (s *AuthService) CurrentUser(ctx context.Context, userID string) (*domain.User, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("user not found: %w", domain.ErrNotFound)
		}
		return nil, fmt.Errorf("lookup user: %w", err)
	}
	return u, nil
}
