// Package service implements the application use cases on top of the store
// and auth layers.
package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/subtrackr/subtrackr-api/internal/domain"
	"github.com/subtrackr/subtrackr-api/internal/service/auth"
	"github.com/subtrackr/subtrackr-api/internal/store"
)

// RegistrationResult is the outcome of a successful registration: the
// persisted account and a freshly issued session token bound to it.
type RegistrationResult struct {
	User  *domain.User
	Token string
}

// UserService provides account provisioning operations.
type UserService interface {
	// Register atomically provisions a new account and issues a session
	// token for it. Inside a single unit of work it checks email
	// uniqueness, hashes the credential, and inserts the account; the
	// token is issued only after the unit of work commits.
	//
	// Error kinds surfaced to callers:
	//   - domain validation errors for malformed input (nothing is written),
	//   - store.ErrEmailExists when the email is taken, whether caught by
	//     the pre-check or by the unique constraint at insert time,
	//   - store.ErrTransactionFailed when the unit of work cannot begin or
	//     commit,
	//   - auth.ErrTokenGeneration when signing fails. Signing happens after
	//     commit, so in this one case the account remains durably created;
	//     the caller can obtain a token through login once that ships.
	Register(ctx context.Context, name, email, password string) (*RegistrationResult, error)

	// GetUser retrieves an account by its ID.
	GetUser(ctx context.Context, id string) (*domain.User, error)
}

// UserServiceImpl implements the UserService interface.
type UserServiceImpl struct {
	userStore  store.UserStore
	txRunner   store.TxRunner
	hasher     auth.PasswordHasher
	jwtService auth.JWTService
	logger     *slog.Logger
}

// NewUserService creates a new UserService.
func NewUserService(
	userStore store.UserStore,
	txRunner store.TxRunner,
	hasher auth.PasswordHasher,
	jwtService auth.JWTService,
	logger *slog.Logger,
) UserService {
	return &UserServiceImpl{
		userStore:  userStore,
		txRunner:   txRunner,
		hasher:     hasher,
		jwtService: jwtService,
		logger:     logger.With("component", "user_service"),
	}
}

// Register implements UserService.Register.
func (s *UserServiceImpl) Register(
	ctx context.Context,
	name, email, password string,
) (*RegistrationResult, error) {
	// Malformed input fails before any store mutation.
	user, err := domain.NewUser(name, email, password)
	if err != nil {
		s.logger.Debug("rejected invalid registration input", "error", err)
		return nil, err
	}

	err = s.txRunner.RunInTransaction(ctx, func(ctx context.Context, tx *sql.Tx) error {
		txStore := s.userStore.WithTx(tx)

		// Fast duplicate check. Correctness under concurrent registration
		// does not depend on it: the unique constraint on users.email is
		// what guarantees exactly one winner per address.
		_, lookupErr := txStore.GetByEmail(ctx, user.Email)
		if lookupErr == nil {
			return store.ErrEmailExists
		}
		if !errors.Is(lookupErr, store.ErrUserNotFound) {
			return fmt.Errorf("failed to check existing email: %w", lookupErr)
		}

		hash, hashErr := s.hasher.Hash(user.Password)
		if hashErr != nil {
			return hashErr
		}
		user.HashedPassword = hash
		user.Password = ""

		return txStore.Create(ctx, user)
	})
	if err != nil {
		if errors.Is(err, store.ErrEmailExists) {
			s.logger.Debug("attempted to register an existing email",
				"email", user.Email)
		} else {
			s.logger.Error("failed to register user",
				"error", err,
				"email", user.Email)
		}
		return nil, err
	}

	token, err := s.jwtService.GenerateToken(ctx, user.ID)
	if err != nil {
		// The account committed before signing; the request fails but the
		// record stays.
		s.logger.Error("account created but token issuance failed",
			"error", err,
			"user_id", user.ID)
		return nil, err
	}

	s.logger.Info("user registered successfully",
		"user_id", user.ID,
		"email", user.Email)

	return &RegistrationResult{User: user, Token: token}, nil
}

// GetUser implements UserService.GetUser.
func (s *UserServiceImpl) GetUser(ctx context.Context, id string) (*domain.User, error) {
	userID, err := parseUserID(id)
	if err != nil {
		return nil, err
	}

	user, err := s.userStore.GetByID(ctx, userID)
	if err != nil {
		if !errors.Is(err, store.ErrUserNotFound) {
			s.logger.Error("failed to retrieve user",
				"error", err,
				"user_id", id)
		}
		return nil, err
	}

	return user, nil
}
