// Package code defines the failure kinds of the note lifecycle and their
// HTTP status mapping. It is the single source of truth for error
// translation: every controller path terminates in exactly one Code.
// Package code 定义笔记生命周期的失败类型及其 HTTP 状态码映射。
package code

import (
	"fmt"
	"net/http"
)

type Code struct {
	// 业务码
	code int
	// HTTP 状态码
	httpStatus int
	// 是否成功
	status bool
	// 错误消息
	msg string
	// 数据
	data     interface{}
	haveData bool
	// 错误详细信息
	details     []string
	haveDetails bool
}

var codes = map[int]string{}

// NewError registers a failure kind. Duplicate codes panic at init time.
// NewError 注册一个失败类型，重复的业务码在初始化时 panic。
func NewError(code int, httpStatus int, msg string) *Code {
	if _, ok := codes[code]; ok {
		panic(fmt.Sprintf("error code %d already exists, pick another one", code))
	}
	codes[code] = msg
	return &Code{code: code, httpStatus: httpStatus, status: false, msg: msg}
}

var sussCodes = map[int]string{}

// NewSuss registers a success kind.
// NewSuss 注册一个成功类型。
func NewSuss(code int, httpStatus int, msg string) *Code {
	if _, ok := sussCodes[code]; ok {
		panic(fmt.Sprintf("success code %d already exists, pick another one", code))
	}
	sussCodes[code] = msg
	return &Code{code: code, httpStatus: httpStatus, status: true, msg: msg}
}

// Clone 创建一个新的 Code 副本，避免修改注册的原对象
func (e *Code) Clone() *Code {
	return &Code{
		code:       e.code,
		httpStatus: e.httpStatus,
		status:     e.status,
		msg:        e.msg,
	}
}

func (e *Code) Error() string {
	return e.msg
}

func (e *Code) Code() int {
	return e.code
}

// StatusCode returns the HTTP status this kind translates to.
func (e *Code) StatusCode() int {
	return e.httpStatus
}

func (e *Code) Status() bool {
	return e.status
}

func (e *Code) Msg() string {
	return e.msg
}

func (e *Code) Data() interface{} {
	return e.data
}

func (e *Code) Details() []string {
	return e.details
}

func (e *Code) HaveData() bool {
	return e.haveData
}

func (e *Code) HaveDetails() bool {
	return e.haveDetails
}

// WithData attaches a response payload to a copy of the code.
func (e *Code) WithData(data interface{}) *Code {
	c := e.Clone()
	c.haveData = true
	c.data = data
	return c
}

// WithDetails attaches human-readable reasons to a copy of the code.
// The response body uses them in place of the registered message.
func (e *Code) WithDetails(details ...string) *Code {
	c := e.Clone()
	c.haveDetails = true
	c.details = append([]string{}, details...)
	return c
}

var (
	Success          = NewSuss(0, http.StatusOK, "success")
	SuccessCreated   = NewSuss(1, http.StatusCreated, "created")
	SuccessNoContent = NewSuss(2, http.StatusNoContent, "")
)

var (
	// ErrorInvalidParams 参数校验失败，响应体携带原因
	ErrorInvalidParams = NewError(10000001, http.StatusBadRequest, "invalid params")
	// ErrorMalformedID id 格式非法，与 NotFound 同为客户端错误但内部可区分
	ErrorMalformedID = NewError(10000002, http.StatusBadRequest, "malformatted id")
	// ErrorNotFound 资源不存在，响应体为空
	ErrorNotFound = NewError(10000003, http.StatusNotFound, "")
	// ErrorNotFoundAPI 未匹配到路由
	ErrorNotFoundAPI = NewError(10000004, http.StatusNotFound, "unknown endpoint")
	// ErrorServerInternal 兜底错误，不向调用方泄露内部细节
	ErrorServerInternal = NewError(10000005, http.StatusInternalServerError, "internal server error")
	// ErrorTooManyRequests 触发限流
	ErrorTooManyRequests = NewError(10000006, http.StatusTooManyRequests, "too many requests")
	// ErrorDBQuery 存储层查询失败
	ErrorDBQuery = NewError(10000007, http.StatusInternalServerError, "internal server error")

	// ErrorNotUserAuthToken 凭证缺失、非法、过期或指向不存在的用户，对外不可区分
	ErrorNotUserAuthToken = NewError(10001001, http.StatusUnauthorized, "token missing or invalid")
	// ErrorUserLoginFailed 用户名不存在或密码错误，对外不可区分
	ErrorUserLoginFailed = NewError(10001002, http.StatusUnauthorized, "invalid username or password")
	// ErrorUserAlreadyExists 用户名冲突
	ErrorUserAlreadyExists = NewError(10001003, http.StatusConflict, "username must be unique")
	// ErrorUserRegister 用户创建失败
	ErrorUserRegister = NewError(10001004, http.StatusInternalServerError, "internal server error")
	// ErrorUserRegisterDisabled 注册功能被关闭
	ErrorUserRegisterDisabled = NewError(10001006, http.StatusForbidden, "registration is disabled")
	// ErrorTokenGenerate 凭证签发失败
	ErrorTokenGenerate = NewError(10001005, http.StatusInternalServerError, "internal server error")

	// ErrorNoteContentMissing 笔记内容缺失或为空白
	ErrorNoteContentMissing = NewError(10002001, http.StatusBadRequest, "content missing")
)
