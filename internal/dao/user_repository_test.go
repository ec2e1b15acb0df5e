package dao

import (
	"context"
	"testing"

	"github.com/opennotes/notes-service/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestUserRepository_CreateAndLookup(t *testing.T) {
	d := newTestDao(t)
	repo := NewUserRepository(d)
	ctx := context.Background()

	created, err := repo.Create(ctx, &domain.User{
		Username:     "mluukkai",
		Name:         "Matti Luukkainen",
		PasswordHash: "$2a$10$fakehash",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	byName, err := repo.GetByUsername(ctx, "mluukkai")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byName.ID)

	byID, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "mluukkai", byID.Username)

	_, err = repo.GetByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestUserRepository_UniqueUsername(t *testing.T) {
	d := newTestDao(t)
	repo := NewUserRepository(d)
	ctx := context.Background()

	_, err := repo.Create(ctx, &domain.User{Username: "root", Name: "Superuser", PasswordHash: "h"})
	require.NoError(t, err)

	// 唯一索引挡住同名用户
	_, err = repo.Create(ctx, &domain.User{Username: "root", Name: "Other", PasswordHash: "h2"})
	assert.Error(t, err)
}
