package dao

import (
	"context"
	"testing"
	"time"

	"github.com/opennotes/notes-service/internal/domain"

	"github.com/gookit/goutil/dump"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newTestDao(t *testing.T) *Dao {
	t.Helper()
	db, err := NewDBEngineWithConfig(DatabaseConfig{
		Type:        "sqlite",
		Path:        ":memory:",
		AutoMigrate: true,
		// 内存库只能用单连接
		MaxIdleConns: 1,
		MaxOpenConns: 1,
	}, zap.NewNop())
	require.NoError(t, err)
	return New(db, zap.NewNop())
}

func TestNoteRepository_CreateAndGet(t *testing.T) {
	d := newTestDao(t)
	repo := NewNoteRepository(d)
	ctx := context.Background()

	// 准备测试数据
	note := &domain.Note{
		Content:   "HTML is easy",
		Important: true,
		OwnerID:   "owner-1",
	}

	created, err := repo.Create(ctx, note)
	require.NoError(t, err)

	dump.P(created)

	// 存储层负责分配 id 和时间戳
	assert.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())
	assert.Equal(t, note.Content, created.Content)
	assert.Equal(t, note.Important, created.Important)
	assert.Equal(t, note.OwnerID, created.OwnerID)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, created.Content, got.Content)
}

func TestNoteRepository_GetMissing(t *testing.T) {
	d := newTestDao(t)
	repo := NewNoteRepository(d)

	_, err := repo.GetByID(context.Background(), "no-such-id")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestNoteRepository_UpdateImportant(t *testing.T) {
	d := newTestDao(t)
	repo := NewNoteRepository(d)
	ctx := context.Background()

	created, err := repo.Create(ctx, &domain.Note{Content: "toggle me", OwnerID: "owner-1"})
	require.NoError(t, err)

	updated, err := repo.UpdateImportant(ctx, created.ID, true)
	require.NoError(t, err)
	assert.True(t, updated.Important)
	// 其他字段保持不变
	assert.Equal(t, created.Content, updated.Content)
	assert.Equal(t, created.OwnerID, updated.OwnerID)

	_, err = repo.UpdateImportant(ctx, "missing-id", true)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestNoteRepository_SoftDelete(t *testing.T) {
	d := newTestDao(t)
	repo := NewNoteRepository(d)
	ctx := context.Background()

	created, err := repo.Create(ctx, &domain.Note{Content: "deleted soon", OwnerID: "owner-1"})
	require.NoError(t, err)

	require.NoError(t, repo.UpdateDelete(ctx, created.ID))

	// 软删除后不可见
	_, err = repo.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	// 重复删除/删除不存在的 id 不报错
	assert.NoError(t, repo.UpdateDelete(ctx, created.ID))
	assert.NoError(t, repo.UpdateDelete(ctx, "never-existed"))
}

func TestNoteRepository_DeletePhysicalByTime(t *testing.T) {
	d := newTestDao(t)
	repo := NewNoteRepository(d)
	ctx := context.Background()

	created, err := repo.Create(ctx, &domain.Note{Content: "purge me", OwnerID: "owner-1"})
	require.NoError(t, err)
	require.NoError(t, repo.UpdateDelete(ctx, created.ID))

	// 截止时间在删除时间之前，不清理
	purged, err := repo.DeletePhysicalByTime(ctx, time.Now().Add(-time.Hour).Unix())
	require.NoError(t, err)
	assert.Equal(t, int64(0), purged)

	// 截止时间在删除时间之后，物理清除
	purged, err = repo.DeletePhysicalByTime(ctx, time.Now().Add(time.Hour).Unix())
	require.NoError(t, err)
	assert.Equal(t, int64(1), purged)
}

func TestNoteRepository_ListByOwner(t *testing.T) {
	d := newTestDao(t)
	repo := NewNoteRepository(d)
	ctx := context.Background()

	_, err := repo.Create(ctx, &domain.Note{Content: "a", OwnerID: "owner-1"})
	require.NoError(t, err)
	_, err = repo.Create(ctx, &domain.Note{Content: "b", OwnerID: "owner-2"})
	require.NoError(t, err)

	notes, err := repo.ListByOwner(ctx, "owner-1")
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, "a", notes[0].Content)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
