package service

import (
	"context"
	"testing"
	"time"

	"github.com/opennotes/notes-service/internal/dao"
	"github.com/opennotes/notes-service/internal/dto"
	"github.com/opennotes/notes-service/pkg/app"
	"github.com/opennotes/notes-service/pkg/code"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestUserService(t *testing.T) (UserService, app.TokenManager) {
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
	tm := app.NewTokenManager(app.TokenConfig{
		SecretKey: "test-secret",
		Expiry:    time.Hour,
	})
	cfg := &ServiceConfig{
		User: UserServiceConfig{RegisterIsEnable: true, UsernameMinLength: 3, PasswordMinLength: 3},
	}
	return NewUserService(dao.NewUserRepository(d), tm, cfg, zap.NewNop()), tm
}

func TestUserService_RegisterAndLogin(t *testing.T) {
	svc, tm := newTestUserService(t)
	ctx := context.Background()

	user, cerr := svc.Register(ctx, &dto.UserCreateRequest{
		Username: "mluukkai",
		Name:     "Matti Luukkainen",
		Password: "salainen",
	})
	require.Nil(t, cerr)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "mluukkai", user.Username)

	login, cerr := svc.Login(ctx, &dto.UserLoginRequest{Username: "mluukkai", Password: "salainen"})
	require.Nil(t, cerr)
	assert.Equal(t, "mluukkai", login.Username)
	assert.Equal(t, "Matti Luukkainen", login.Name)

	// 令牌能解析回同一个用户
	claims, err := tm.Parse(login.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UID)
	assert.Equal(t, "mluukkai", claims.Username)
}

func TestUserService_RegisterDuplicate(t *testing.T) {
	svc, _ := newTestUserService(t)
	ctx := context.Background()

	params := &dto.UserCreateRequest{Username: "root", Name: "Superuser", Password: "sekret"}
	_, cerr := svc.Register(ctx, params)
	require.Nil(t, cerr)

	_, cerr = svc.Register(ctx, params)
	require.NotNil(t, cerr)
	assert.Equal(t, code.ErrorUserAlreadyExists.Code(), cerr.Code())
}

func TestUserService_LoginFailures(t *testing.T) {
	svc, _ := newTestUserService(t)
	ctx := context.Background()

	_, cerr := svc.Register(ctx, &dto.UserCreateRequest{
		Username: "mluukkai",
		Name:     "Matti Luukkainen",
		Password: "salainen",
	})
	require.Nil(t, cerr)

	// 密码错误和用户不存在返回同一个错误码
	_, cerr = svc.Login(ctx, &dto.UserLoginRequest{Username: "mluukkai", Password: "wrong"})
	require.NotNil(t, cerr)
	assert.Equal(t, code.ErrorUserLoginFailed.Code(), cerr.Code())

	_, cerr = svc.Login(ctx, &dto.UserLoginRequest{Username: "nobody", Password: "salainen"})
	require.NotNil(t, cerr)
	assert.Equal(t, code.ErrorUserLoginFailed.Code(), cerr.Code())
}
