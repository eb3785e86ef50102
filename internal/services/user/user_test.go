package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luminet-io/luminet/internal/store"
	"github.com/luminet-io/luminet/internal/store/memory"
	"github.com/luminet-io/luminet/pkg/logger"
)

func TestCreateHashesPassword(t *testing.T) {
	ctx := context.Background()
	svc := NewService(memory.New(), logger.NewDiscard())

	u, err := svc.Create(ctx, "ada", "hunter2", nil)
	require.NoError(t, err)
	assert.Equal(t, store.RoleOperator, u.Role)
	assert.NotEmpty(t, u.HashedPass)
	assert.NotEqual(t, "hunter2", u.HashedPass)
	assert.False(t, u.Created.IsZero())

	ok, err := svc.VerifyPassword(ctx, "ada", "hunter2")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.VerifyPassword(ctx, "ada", "wrong")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCreateValidation(t *testing.T) {
	ctx := context.Background()
	svc := NewService(memory.New(), logger.NewDiscard())

	_, err := svc.Create(ctx, "", "hunter2", nil)
	assert.ErrorIs(t, err, store.ErrValidation)
	_, err = svc.Create(ctx, "ada", "", nil)
	assert.ErrorIs(t, err, store.ErrValidation)
}

func TestUpdateRehashesPassword(t *testing.T) {
	ctx := context.Background()
	svc := NewService(memory.New(), logger.NewDiscard())

	created, err := svc.Create(ctx, "ada", "hunter2", nil)
	require.NoError(t, err)

	next := "correcthorse"
	admin := store.RoleAdmin
	updated, err := svc.Update(ctx, created.ID, "", UpdateParams{Password: &next, Role: &admin})
	require.NoError(t, err)
	assert.Equal(t, store.RoleAdmin, updated.Role)
	assert.NotEqual(t, created.HashedPass, updated.HashedPass)

	ok, err := svc.VerifyPassword(ctx, "ada", "correcthorse")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestDeleteByUsername(t *testing.T) {
	ctx := context.Background()
	svc := NewService(memory.New(), logger.NewDiscard())

	_, err := svc.Create(ctx, "ada", "hunter2", nil)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, 0, "ada"))
	_, err = svc.Get(ctx, 0, "ada")
	assert.ErrorIs(t, err, store.ErrNotFound)

	err = svc.Delete(ctx, 0, "")
	assert.ErrorIs(t, err, store.ErrMissingIdentifier)
}
