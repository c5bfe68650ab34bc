package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuth_LoginAcceptsAnyNonEmptyUsername(t *testing.T) {
	store := newFakeStore()
	svc := NewAuthService(NewPreferencesService(store))
	ctx := context.Background()

	before := time.Now().UnixMilli()
	user, err := svc.Login(ctx, "ada", "ignored-password")
	after := time.Now().UnixMilli()

	require.NoError(t, err)
	assert.Equal(t, "ada", user.Username)
	assert.GreaterOrEqual(t, user.ID, before)
	assert.LessOrEqual(t, user.ID, after)

	persisted := svc.CurrentUser(ctx)
	require.NotNil(t, persisted)
	assert.Equal(t, user.Username, persisted.Username)
}

func TestAuth_LoginRejectsEmptyUsername(t *testing.T) {
	svc := NewAuthService(NewPreferencesService(newFakeStore()))
	ctx := context.Background()

	_, err := svc.Login(ctx, "", "password")
	assert.ErrorIs(t, err, ErrEmptyUsername)

	_, err = svc.Login(ctx, "   ", "password")
	assert.ErrorIs(t, err, ErrEmptyUsername)
}

func TestAuth_LogoutRemovesUser(t *testing.T) {
	store := newFakeStore()
	svc := NewAuthService(NewPreferencesService(store))
	ctx := context.Background()

	_, err := svc.Login(ctx, "ada", "")
	require.NoError(t, err)

	assert.True(t, svc.Logout(ctx))
	assert.Nil(t, svc.CurrentUser(ctx))
	_, present := store.values[KeyUser]
	assert.False(t, present)
}
