package engine

import (
	"context"
	"fmt"

	lightingv1 "github.com/luminet-io/luminet/api/lighting/v1"
	"github.com/luminet-io/luminet/internal/services/user"
	"github.com/luminet-io/luminet/internal/store"
)

// GetUser returns a single user identified by id or username
func (s *Server) GetUser(ctx context.Context, req *lightingv1.GetUserRequest) (*lightingv1.GetUserResponse, error) {
	defer s.trackOperation()()

	u, err := s.engine.users.Get(ctx, req.Id, req.Username)
	if err != nil {
		return nil, s.rpcError("get user", err)
	}

	s.engine.IncrementRequestsProcessed("get user")
	return &lightingv1.GetUserResponse{User: assembleUser(u)}, nil
}

// ListUsers streams all users in batches
func (s *Server) ListUsers(req *lightingv1.ListUsersRequest, stream lightingv1.UserService_ListUsersServer) error {
	defer s.trackOperation()()

	users, err := s.engine.users.List(stream.Context(), store.Page{Limit: req.Limit, Offset: req.Offset})
	if err != nil {
		return s.rpcError("list users", err)
	}

	for lo := 0; lo < len(users); lo += userBatchSize {
		end := lo + userBatchSize
		if end > len(users) {
			end = len(users)
		}
		batch := make([]*lightingv1.User, 0, end-lo)
		for _, u := range users[lo:end] {
			batch = append(batch, assembleUser(u))
		}
		if err := stream.Send(&lightingv1.ListUsersResponse{Users: batch}); err != nil {
			return s.rpcError("list users", err)
		}
	}

	s.engine.IncrementRequestsProcessed("list users")
	return nil
}

// CreateUser creates a new user account with a hashed password
func (s *Server) CreateUser(ctx context.Context, req *lightingv1.CreateUserRequest) (*lightingv1.CreateUserResponse, error) {
	defer s.trackOperation()()

	u, err := s.engine.users.Create(ctx, req.Username, req.Password, roleParam(req.Role))
	if err != nil {
		return nil, s.rpcError("create user", err)
	}

	s.engine.IncrementRequestsProcessed("create user")
	return &lightingv1.CreateUserResponse{
		Message: fmt.Sprintf("User %s created successfully", u.Username),
		Success: true,
		User:    assembleUser(u),
	}, nil
}

// UpdateUser applies a partial update to a user identified by id
func (s *Server) UpdateUser(ctx context.Context, req *lightingv1.UpdateUserRequest) (*lightingv1.UpdateUserResponse, error) {
	defer s.trackOperation()()

	u, err := s.engine.users.Update(ctx, req.Id, "", user.UpdateParams{
		Username: req.Username,
		Password: req.Password,
		Role:     roleParam(req.Role),
	})
	if err != nil {
		return nil, s.rpcError("update user", err)
	}

	s.engine.IncrementRequestsProcessed("update user")
	return &lightingv1.UpdateUserResponse{
		Message: fmt.Sprintf("User %s updated successfully", u.Username),
		Success: true,
		User:    assembleUser(u),
	}, nil
}

// DeleteUser removes a user account
func (s *Server) DeleteUser(ctx context.Context, req *lightingv1.DeleteUserRequest) (*lightingv1.DeleteUserResponse, error) {
	defer s.trackOperation()()

	if err := s.engine.users.Delete(ctx, req.Id, req.Username); err != nil {
		return nil, s.rpcError("delete user", err)
	}

	s.engine.IncrementRequestsProcessed("delete user")
	return &lightingv1.DeleteUserResponse{
		Message: "User deleted successfully",
		Success: true,
	}, nil
}
