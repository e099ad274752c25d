package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/pos-service/internal/auth"
	"github.com/spec-kit/pos-service/internal/config"
	"github.com/spec-kit/pos-service/internal/domain"
	"github.com/spec-kit/pos-service/internal/events"
	"github.com/spec-kit/pos-service/internal/repository"
	apperrors "github.com/spec-kit/pos-service/pkg/util"
)

// AuthService coordinates login, signup and profile flows.
type AuthService struct {
	accounts   repository.AccountRepository
	customers  repository.CustomerRepository
	tokens     *auth.TokenService
	hasher     auth.CredentialHasher
	override   auth.AdminOverride
	dispatcher events.Dispatcher
}

// AuthDependencies encapsulates repo requirements for the auth service.
type AuthDependencies struct {
	AccountRepo  repository.AccountRepository
	CustomerRepo repository.CustomerRepository
	Dispatcher   events.Dispatcher
}

// NewAuthService builds the service from the startup configuration.
func NewAuthService(cfg config.AuthConfig, deps AuthDependencies) *AuthService {
	return &AuthService{
		accounts:  deps.AccountRepo,
		customers: deps.CustomerRepo,
		tokens:    auth.NewTokenService(cfg.TokenSecret),
		hasher:    auth.NewHasher(cfg.PasswordScheme, cfg.BcryptCost),
		override: auth.AdminOverride{
			UserName: cfg.AdminUsername,
			Password: cfg.AdminPassword,
		},
		dispatcher: deps.Dispatcher,
	}
}

// LoginResult is the outcome of a successful login or signup.
type LoginResult struct {
	Token      string
	SubjectID  int64
	CustomerID int64
	UserName   string
	IsAdmin    bool
}

// SignupInput carries the fields required to open an account.
type SignupInput struct {
	UserName string
	Password string
	Name     string
	Phone    string
	Address  *string
}

// Login authenticates either the configured admin override or a stored
// account. Unknown usernames and wrong passwords produce the same error.
func (s *AuthService) Login(ctx context.Context, userName, password string) (*LoginResult, error) {
	if s.override.Check(userName, password) {
		token, err := s.tokens.Issue(0, 0, userName, true)
		if err != nil {
			return nil, err
		}
		return &LoginResult{Token: token, UserName: userName, IsAdmin: true}, nil
	}

	account, err := s.accounts.GetByUserName(ctx, userName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewUnauthorized("invalid username or password")
		}
		return nil, err
	}
	if !s.hasher.Verify(password, account.PasswordHash) {
		return nil, apperrors.NewUnauthorized("invalid username or password")
	}

	token, err := s.tokens.Issue(account.ID, account.CustomerID, account.UserName, false)
	if err != nil {
		return nil, err
	}
	return &LoginResult{
		Token:      token,
		SubjectID:  account.ID,
		CustomerID: account.CustomerID,
		UserName:   account.UserName,
		IsAdmin:    false,
	}, nil
}

// Signup creates a customer profile and its account, then issues a token.
func (s *AuthService) Signup(ctx context.Context, in SignupInput) (*LoginResult, *domain.Customer, error) {
	customer := &domain.Customer{
		Name:    in.Name,
		Phone:   in.Phone,
		Address: in.Address,
	}
	if err := s.customers.Create(ctx, customer); err != nil {
		return nil, nil, err
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, nil, err
	}
	account := &domain.Account{
		CustomerID:   customer.ID,
		UserName:     in.UserName,
		PasswordHash: hash,
	}
	if err := s.accounts.Create(ctx, account); err != nil {
		return nil, nil, err
	}

	token, err := s.tokens.Issue(account.ID, customer.ID, account.UserName, false)
	if err != nil {
		return nil, nil, err
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:         uuid.NewString(),
			Type:       events.EventAccountSignedUp,
			CustomerID: customer.ID,
			Timestamp:  time.Now(),
			Payload: events.AccountSignedUpPayload{
				AccountID: account.ID,
				UserName:  account.UserName,
			},
		})
	}

	return &LoginResult{
		Token:      token,
		SubjectID:  account.ID,
		CustomerID: customer.ID,
		UserName:   account.UserName,
		IsAdmin:    false,
	}, customer, nil
}

// Profile loads the account/customer join for the token's subject.
func (s *AuthService) Profile(ctx context.Context, accountID int64) (*domain.AccountProfile, error) {
	profile, err := s.accounts.GetProfile(ctx, accountID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("user", nil)
		}
		return nil, err
	}
	return profile, nil
}

// TokenService exposes the underlying token service for middleware usage.
func (s *AuthService) TokenService() *auth.TokenService {
	return s.tokens
}
