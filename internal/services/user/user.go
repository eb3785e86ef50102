// Package user implements user account operations. Users live outside
// the entity graph and carry no cascade semantics.
package user

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/luminet-io/luminet/internal/store"
	"github.com/luminet-io/luminet/pkg/logger"
)

// Service handles user-related operations
type Service struct {
	st     store.Store
	logger *logger.Logger
}

// NewService creates a new user service
func NewService(st store.Store, logger *logger.Logger) *Service {
	return &Service{
		st:     st,
		logger: logger,
	}
}

func (s *Service) resolve(ctx context.Context, id int64, username string) (*store.User, error) {
	switch {
	case id != 0:
		return s.st.Users().Get(ctx, id)
	case username != "":
		return s.st.Users().GetByUsername(ctx, username)
	default:
		return nil, fmt.Errorf("user: %w", store.ErrMissingIdentifier)
	}
}

// Get returns the user identified by id or username.
func (s *Service) Get(ctx context.Context, id int64, username string) (*store.User, error) {
	return s.resolve(ctx, id, username)
}

// List returns every user.
func (s *Service) List(ctx context.Context, page store.Page) ([]*store.User, error) {
	return s.st.Users().List(ctx, page)
}

// Create creates a new user with a bcrypt-hashed password. A nil role
// defaults to OPERATOR.
func (s *Service) Create(ctx context.Context, username, password string, role *store.Role) (*store.User, error) {
	if username == "" || password == "" {
		return nil, fmt.Errorf("username and password are required: %w", store.ErrValidation)
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	u := &store.User{
		Username:   username,
		HashedPass: string(hashed),
		Role:       store.DefaultRole,
		Created:    time.Now().UTC(),
	}
	if role != nil {
		u.Role = *role
	}
	created, err := s.st.Users().Create(ctx, u)
	if err != nil {
		return nil, err
	}
	s.logger.Infof("Created user %q", created.Username)
	return created, nil
}

// UpdateParams are the optional fields of a user update. A non-nil
// Password is rehashed before storage.
type UpdateParams struct {
	Username *string
	Password *string
	Role     *store.Role
}

// Update applies a partial update to the user identified by id or
// username.
func (s *Service) Update(ctx context.Context, id int64, username string, p UpdateParams) (*store.User, error) {
	u, err := s.resolve(ctx, id, username)
	if err != nil {
		return nil, err
	}
	upd := store.UserUpdate{Username: p.Username, Role: p.Role}
	if p.Password != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*p.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		hp := string(hashed)
		upd.HashedPass = &hp
	}
	return s.st.Users().Update(ctx, u.ID, upd)
}

// Delete removes the user row.
func (s *Service) Delete(ctx context.Context, id int64, username string) error {
	u, err := s.resolve(ctx, id, username)
	if err != nil {
		return err
	}
	if err := s.st.Users().Delete(ctx, u.ID); err != nil {
		return err
	}
	s.logger.Infof("Deleted user %q", u.Username)
	return nil
}

// VerifyPassword checks a candidate password against the stored hash.
func (s *Service) VerifyPassword(ctx context.Context, username, password string) (bool, error) {
	u, err := s.st.Users().GetByUsername(ctx, username)
	if err != nil {
		return false, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.HashedPass), []byte(password)); err != nil {
		return false, nil
	}
	return true, nil
}
