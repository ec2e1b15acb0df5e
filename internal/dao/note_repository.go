package dao

import (
	"context"
	"time"

	"github.com/opennotes/notes-service/internal/domain"
	"github.com/opennotes/notes-service/internal/model"
	"github.com/opennotes/notes-service/pkg/timex"

	"github.com/google/uuid"
)

// noteRepository 实现 domain.NoteRepository 接口
type noteRepository struct {
	dao *Dao
}

// NewNoteRepository 创建 NoteRepository 实例
func NewNoteRepository(dao *Dao) domain.NoteRepository {
	return &noteRepository{dao: dao}
}

// toDomain 将数据库模型转换为领域模型
func (r *noteRepository) toDomain(m *model.Note) *domain.Note {
	if m == nil {
		return nil
	}
	return &domain.Note{
		ID:        m.ID,
		Content:   m.Content,
		Important: m.Important,
		OwnerID:   m.OwnerID,
		IsDeleted: m.IsDeleted == 1,
		CreatedAt: time.Time(m.CreatedAt),
		UpdatedAt: time.Time(m.UpdatedAt),
		DeletedAt: time.Time(m.DeletedAt),
	}
}

// toModel 将领域模型转换为数据库模型
func (r *noteRepository) toModel(note *domain.Note) *model.Note {
	if note == nil {
		return nil
	}
	isDeleted := int64(0)
	if note.IsDeleted {
		isDeleted = 1
	}
	return &model.Note{
		ID:        note.ID,
		Content:   note.Content,
		Important: note.Important,
		OwnerID:   note.OwnerID,
		IsDeleted: isDeleted,
		CreatedAt: timex.Time(note.CreatedAt),
		UpdatedAt: timex.Time(note.UpdatedAt),
		DeletedAt: timex.Time(note.DeletedAt),
	}
}

// GetByID 根据ID获取笔记（排除已删除）
func (r *noteRepository) GetByID(ctx context.Context, id string) (*domain.Note, error) {
	var m model.Note
	err := r.dao.DB().WithContext(ctx).
		Where("id = ? AND is_deleted = ?", id, 0).
		First(&m).Error
	if err != nil {
		return nil, err
	}
	return r.toDomain(&m), nil
}

// List 获取全部笔记（排除已删除）
func (r *noteRepository) List(ctx context.Context) ([]*domain.Note, error) {
	var ms []*model.Note
	err := r.dao.DB().WithContext(ctx).
		Where("is_deleted = ?", 0).
		Order("created_at").
		Find(&ms).Error
	if err != nil {
		return nil, err
	}
	notes := make([]*domain.Note, 0, len(ms))
	for _, m := range ms {
		notes = append(notes, r.toDomain(m))
	}
	return notes, nil
}

// ListByOwner 获取指定用户创建的笔记
func (r *noteRepository) ListByOwner(ctx context.Context, ownerID string) ([]*domain.Note, error) {
	var ms []*model.Note
	err := r.dao.DB().WithContext(ctx).
		Where("owner_id = ? AND is_deleted = ?", ownerID, 0).
		Order("created_at").
		Find(&ms).Error
	if err != nil {
		return nil, err
	}
	notes := make([]*domain.Note, 0, len(ms))
	for _, m := range ms {
		notes = append(notes, r.toDomain(m))
	}
	return notes, nil
}

// Create assigns the opaque id here: the store owns identifier
// generation, the id never changes afterwards.
// Create 在此分配不透明 ID：标识符由存储层生成，之后不再变化。
func (r *noteRepository) Create(ctx context.Context, note *domain.Note) (*domain.Note, error) {
	m := r.toModel(note)
	m.ID = uuid.NewString()
	m.CreatedAt = timex.Now()
	m.UpdatedAt = timex.Now()

	err := r.dao.DB().WithContext(ctx).Create(m).Error
	if err != nil {
		return nil, err
	}
	return r.toDomain(m), nil
}

// UpdateImportant 只重写 important 字段
func (r *noteRepository) UpdateImportant(ctx context.Context, id string, important bool) (*domain.Note, error) {
	var m model.Note
	err := r.dao.DB().WithContext(ctx).
		Where("id = ? AND is_deleted = ?", id, 0).
		First(&m).Error
	if err != nil {
		return nil, err
	}

	err = r.dao.DB().WithContext(ctx).
		Model(&model.Note{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"important":  important,
			"updated_at": timex.Now(),
		}).Error
	if err != nil {
		return nil, err
	}

	m.Important = important
	m.UpdatedAt = timex.Now()
	return r.toDomain(&m), nil
}

// UpdateDelete 标记笔记为删除状态，删除不存在的 id 不报错
func (r *noteRepository) UpdateDelete(ctx context.Context, id string) error {
	return r.dao.DB().WithContext(ctx).
		Model(&model.Note{}).
		Where("id = ? AND is_deleted = ?", id, 0).
		Updates(map[string]interface{}{
			"is_deleted": 1,
			"deleted_at": timex.Now(),
		}).Error
}

// DeletePhysicalByTime 物理删除在指定时间戳之前标记删除的笔记
func (r *noteRepository) DeletePhysicalByTime(ctx context.Context, before int64) (int64, error) {
	result := r.dao.DB().WithContext(ctx).
		Where("is_deleted = ? AND deleted_at < ?", 1, time.Unix(before, 0)).
		Delete(&model.Note{})
	return result.RowsAffected, result.Error
}

// Count 获取笔记数量（排除已删除）
func (r *noteRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.dao.DB().WithContext(ctx).
		Model(&model.Note{}).
		Where("is_deleted = ?", 0).
		Count(&count).Error
	return count, err
}

// 确保 noteRepository 实现了 NoteRepository 接口
var _ domain.NoteRepository = (*noteRepository)(nil)
