package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/opennotes/notes-service/internal/domain"
	"github.com/opennotes/notes-service/internal/dto"
	"github.com/opennotes/notes-service/pkg/app"
	"github.com/opennotes/notes-service/pkg/code"
	"github.com/opennotes/notes-service/pkg/logger"
	"github.com/opennotes/notes-service/pkg/util"

	"github.com/jinzhu/copier"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// UserService 用户服务接口 User service interface
type UserService interface {
	// Register 注册新用户
	Register(ctx context.Context, params *dto.UserCreateRequest) (*dto.UserDTO, *code.Code)
	// Login 用户登录，返回令牌
	Login(ctx context.Context, params *dto.UserLoginRequest) (*dto.LoginDTO, *code.Code)
	// GetByID 按 ID 返回用户，供令牌校验
	GetByID(ctx context.Context, id string) (*domain.User, error)
}

type userService struct {
	userRepo     domain.UserRepository
	tokenManager app.TokenManager
	config       *ServiceConfig
	logger       *zap.Logger
}

// NewUserService 创建用户服务
func NewUserService(userRepo domain.UserRepository, tokenManager app.TokenManager, config *ServiceConfig, logger *zap.Logger) UserService {
	return &userService{
		userRepo:     userRepo,
		tokenManager: tokenManager,
		config:       config,
		logger:       logger,
	}
}

func (s *userService) Register(ctx context.Context, params *dto.UserCreateRequest) (*dto.UserDTO, *code.Code) {
	if !s.config.User.RegisterIsEnable {
		return nil, code.ErrorUserRegisterDisabled
	}

	username := strings.TrimSpace(params.Username)
	if len(username) < s.config.User.UsernameMinLength {
		return nil, code.ErrorInvalidParams.WithDetails(
			fmt.Sprintf("username must be at least %d characters", s.config.User.UsernameMinLength))
	}
	if len(params.Password) < s.config.User.PasswordMinLength {
		return nil, code.ErrorInvalidParams.WithDetails(
			fmt.Sprintf("password must be at least %d characters", s.config.User.PasswordMinLength))
	}

	if existing, err := s.userRepo.GetByUsername(ctx, username); err == nil && existing != nil {
		return nil, code.ErrorUserAlreadyExists
	} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("user lookup failed", zap.String(logger.FieldUsername, username), zap.Error(err))
		return nil, code.ErrorDBQuery.WithData(err.Error())
	}

	hash, err := util.GeneratePasswordHash(params.Password)
	if err != nil {
		s.logger.Error("password hash failed", zap.Error(err))
		return nil, code.ErrorUserRegister
	}
	user := &domain.User{
		Username:     username,
		Name:         params.Name,
		PasswordHash: hash,
	}
	created, err := s.userRepo.Create(ctx, user)
	if err != nil {
		// 并发注册同名用户时落到唯一索引上
		if isUniqueViolation(err) {
			return nil, code.ErrorUserAlreadyExists
		}
		s.logger.Error("user create failed", zap.String(logger.FieldUsername, username), zap.Error(err))
		return nil, code.ErrorUserRegister
	}
	d := &dto.UserDTO{}
	_ = copier.Copy(d, created)
	return d, nil
}

func (s *userService) Login(ctx context.Context, params *dto.UserLoginRequest) (*dto.LoginDTO, *code.Code) {
	user, err := s.userRepo.GetByUsername(ctx, params.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// 用户不存在与密码错误响应一致
			return nil, code.ErrorUserLoginFailed
		}
		s.logger.Error("user lookup failed", zap.String(logger.FieldUsername, params.Username), zap.Error(err))
		return nil, code.ErrorDBQuery.WithData(err.Error())
	}
	if !util.CheckPasswordHash(user.PasswordHash, params.Password) {
		return nil, code.ErrorUserLoginFailed
	}
	token, err := s.tokenManager.Generate(user.ID, user.Username)
	if err != nil {
		s.logger.Error("token generate failed", zap.String(logger.FieldUID, user.ID), zap.Error(err))
		return nil, code.ErrorTokenGenerate
	}
	return &dto.LoginDTO{
		Token:    token,
		Username: user.Username,
		Name:     user.Name,
	}, nil
}

func (s *userService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

// isUniqueViolation 判断是否唯一约束冲突
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint") || strings.Contains(msg, "Duplicate entry") || strings.Contains(msg, "duplicate key")
}

var _ UserService = (*userService)(nil)
