package service

import (
	"context"
	"strings"
	"testing"

	"github.com/opennotes/notes-service/internal/dao"
	"github.com/opennotes/notes-service/internal/dto"
	"github.com/opennotes/notes-service/pkg/code"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestNoteService(t *testing.T) NoteService {
	t.Helper()
	db, err := dao.NewDBEngineWithConfig(dao.DatabaseConfig{
		Type:         "sqlite",
		Path:         ":memory:",
		AutoMigrate:  true,
		MaxIdleConns: 1,
		MaxOpenConns: 1,
	}, zap.NewNop())
	require.NoError(t, err)

	d := dao.New(db, zap.NewNop())
	cfg := &ServiceConfig{
		App: AppServiceConfig{SoftDeleteRetentionTime: "7d"},
	}
	return NewNoteService(dao.NewNoteRepository(d), cfg, zap.NewNop())
}

func TestNoteService_CreateContentMissing(t *testing.T) {
	svc := newTestNoteService(t)
	ctx := context.Background()

	for _, content := range []string{"", "   ", "\t\n"} {
		_, cerr := svc.Create(ctx, "owner-1", &dto.NoteCreateRequest{Content: content})
		require.NotNil(t, cerr)
		assert.Equal(t, code.ErrorNoteContentMissing.Code(), cerr.Code())
	}
}

func TestNoteService_MalformedID(t *testing.T) {
	svc := newTestNoteService(t)
	ctx := context.Background()

	_, cerr := svc.Get(ctx, "abc123")
	require.NotNil(t, cerr)
	assert.Equal(t, code.ErrorMalformedID.Code(), cerr.Code())

	_, cerr = svc.UpdateImportance(ctx, "not-a-uuid", &dto.NoteUpdateRequest{})
	require.NotNil(t, cerr)
	assert.Equal(t, code.ErrorMalformedID.Code(), cerr.Code())

	cerr = svc.Delete(ctx, "!!")
	require.NotNil(t, cerr)
	assert.Equal(t, code.ErrorMalformedID.Code(), cerr.Code())
}

func TestNoteService_PurgeDeletedEmpty(t *testing.T) {
	svc := newTestNoteService(t)

	count, err := svc.PurgeDeleted(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

// 基于随机内容的性质检查
func TestNoteService_Properties(t *testing.T) {
	svc := newTestNoteService(t)
	ctx := context.Background()

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 30
	properties := gopter.NewProperties(parameters)

	notBlank := func(s string) bool { return strings.TrimSpace(s) != "" }

	seen := map[string]bool{}
	properties.Property("create assigns unique ids and preserves content", prop.ForAll(
		func(content string, important bool) bool {
			created, cerr := svc.Create(ctx, "owner-1", &dto.NoteCreateRequest{
				Content:   content,
				Important: &important,
			})
			if cerr != nil {
				return false
			}
			if seen[created.ID] {
				return false
			}
			seen[created.ID] = true

			got, cerr := svc.Get(ctx, created.ID)
			if cerr != nil {
				return false
			}
			return got.Content == content && got.Important == important && got.User == "owner-1"
		},
		gen.AlphaString().SuchThat(notBlank),
		gen.Bool(),
	))

	properties.Property("update flips only importance", prop.ForAll(
		func(content string, important bool) bool {
			created, cerr := svc.Create(ctx, "owner-1", &dto.NoteCreateRequest{Content: content})
			if cerr != nil {
				return false
			}
			updated, cerr := svc.UpdateImportance(ctx, created.ID, &dto.NoteUpdateRequest{Important: &important})
			if cerr != nil {
				return false
			}
			return updated.Important == important &&
				updated.Content == created.Content &&
				updated.User == created.User &&
				updated.ID == created.ID
		},
		gen.AlphaString().SuchThat(notBlank),
		gen.Bool(),
	))

	properties.Property("delete is idempotent", prop.ForAll(
		func(content string) bool {
			created, cerr := svc.Create(ctx, "owner-1", &dto.NoteCreateRequest{Content: content})
			if cerr != nil {
				return false
			}
			if cerr := svc.Delete(ctx, created.ID); cerr != nil {
				return false
			}
			// 第二次删除同样成功
			if cerr := svc.Delete(ctx, created.ID); cerr != nil {
				return false
			}
			_, cerr = svc.Get(ctx, created.ID)
			return cerr != nil && cerr.Code() == code.ErrorNotFound.Code()
		},
		gen.AlphaString().SuchThat(notBlank),
	))

	properties.TestingRun(t)
}
