package service

import (
	"context"
	"strings"
	"time"

	"github.com/opennotes/notes-service/internal/domain"
	"github.com/opennotes/notes-service/internal/dto"
	"github.com/opennotes/notes-service/pkg/code"
	"github.com/opennotes/notes-service/pkg/logger"
	"github.com/opennotes/notes-service/pkg/util"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// NoteService 笔记服务接口 Note service interface
type NoteService interface {
	// List 返回全部未删除笔记
	List(ctx context.Context) ([]*dto.NoteDTO, *code.Code)
	// Get 按 ID 返回单条笔记
	Get(ctx context.Context, id string) (*dto.NoteDTO, *code.Code)
	// Create 创建笔记，归属 ownerID
	Create(ctx context.Context, ownerID string, params *dto.NoteCreateRequest) (*dto.NoteDTO, *code.Code)
	// UpdateImportance 更新笔记重要性标记
	UpdateImportance(ctx context.Context, id string, params *dto.NoteUpdateRequest) (*dto.NoteDTO, *code.Code)
	// Delete 删除笔记，不存在时同样视为成功
	Delete(ctx context.Context, id string) *code.Code
	// PurgeDeleted 物理清理超过保留期的软删除笔记
	PurgeDeleted(ctx context.Context) (int64, error)
}

type noteService struct {
	noteRepo domain.NoteRepository
	config   *ServiceConfig
	logger   *zap.Logger
}

// NewNoteService 创建笔记服务
func NewNoteService(noteRepo domain.NoteRepository, config *ServiceConfig, logger *zap.Logger) NoteService {
	return &noteService{
		noteRepo: noteRepo,
		config:   config,
		logger:   logger,
	}
}

func (s *noteService) List(ctx context.Context) ([]*dto.NoteDTO, *code.Code) {
	notes, err := s.noteRepo.List(ctx)
	if err != nil {
		s.logger.Error("note list query failed", zap.Error(err))
		return nil, code.ErrorDBQuery.WithData(err.Error())
	}
	// 空集合序列化为 [] 而不是 null
	out := make([]*dto.NoteDTO, 0, len(notes))
	for _, n := range notes {
		out = append(out, toNoteDTO(n))
	}
	return out, nil
}

func (s *noteService) Get(ctx context.Context, id string) (*dto.NoteDTO, *code.Code) {
	if err := uuid.Validate(id); err != nil {
		return nil, code.ErrorMalformedID
	}
	note, err := s.noteRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, code.ErrorNotFound
		}
		s.logger.Error("note query failed", zap.String(logger.FieldNoteID, id), zap.Error(err))
		return nil, code.ErrorDBQuery.WithData(err.Error())
	}
	return toNoteDTO(note), nil
}

func (s *noteService) Create(ctx context.Context, ownerID string, params *dto.NoteCreateRequest) (*dto.NoteDTO, *code.Code) {
	if strings.TrimSpace(params.Content) == "" {
		return nil, code.ErrorNoteContentMissing
	}
	important := false
	if params.Important != nil {
		important = *params.Important
	}
	note := &domain.Note{
		Content:   params.Content,
		Important: important,
		OwnerID:   ownerID,
	}
	created, err := s.noteRepo.Create(ctx, note)
	if err != nil {
		s.logger.Error("note create failed", zap.String(logger.FieldUID, ownerID), zap.Error(err))
		return nil, code.ErrorDBQuery.WithData(err.Error())
	}
	return toNoteDTO(created), nil
}

func (s *noteService) UpdateImportance(ctx context.Context, id string, params *dto.NoteUpdateRequest) (*dto.NoteDTO, *code.Code) {
	if err := uuid.Validate(id); err != nil {
		return nil, code.ErrorMalformedID
	}
	important := false
	if params.Important != nil {
		important = *params.Important
	}
	updated, err := s.noteRepo.UpdateImportant(ctx, id, important)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, code.ErrorNotFound
		}
		s.logger.Error("note update failed", zap.String(logger.FieldNoteID, id), zap.Error(err))
		return nil, code.ErrorDBQuery.WithData(err.Error())
	}
	return toNoteDTO(updated), nil
}

func (s *noteService) Delete(ctx context.Context, id string) *code.Code {
	if err := uuid.Validate(id); err != nil {
		return code.ErrorMalformedID
	}
	if err := s.noteRepo.UpdateDelete(ctx, id); err != nil {
		s.logger.Error("note delete failed", zap.String(logger.FieldNoteID, id), zap.Error(err))
		return code.ErrorDBQuery.WithData(err.Error())
	}
	return nil
}

func (s *noteService) PurgeDeleted(ctx context.Context) (int64, error) {
	retention, err := util.ParseDuration(s.config.App.SoftDeleteRetentionTime)
	if err != nil {
		return 0, errors.Wrap(err, "parse soft delete retention time")
	}
	before := time.Now().Add(-retention).Unix()
	return s.noteRepo.DeletePhysicalByTime(ctx, before)
}

// toNoteDTO 域模型转响应 DTO
func toNoteDTO(n *domain.Note) *dto.NoteDTO {
	d := &dto.NoteDTO{}
	_ = copier.Copy(d, n)
	d.User = n.OwnerID
	return d
}

var _ NoteService = (*noteService)(nil)
