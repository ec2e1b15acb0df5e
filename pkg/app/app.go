package app

import (
	"strings"

	"github.com/opennotes/notes-service/pkg/code"

	"github.com/gin-gonic/gin"
)

// VersionInfo 服务版本信息
type VersionInfo struct {
	Version   string `json:"version"`
	GitTag    string `json:"gitTag"`
	BuildTime string `json:"buildTime"`
}

type Response struct {
	Ctx *gin.Context
}

// ErrRes error response body // 错误响应体
type ErrRes struct {
	Error string `json:"error"`
}

func NewResponse(ctx *gin.Context) *Response {
	return &Response{
		Ctx: ctx,
	}
}

// GetRequestIP gets the request IP
// GetRequestIP 获取ip
func GetRequestIP(c *gin.Context) string {
	reqIP := c.ClientIP()
	if reqIP == "::1" {
		reqIP = "127.0.0.1"
	}
	return reqIP
}

// ToResponse writes the outcome of one controller operation.
// Success kinds emit the payload as-is (or just a status when there is
// none); failure kinds emit {"error": reason}, or an empty body when the
// kind defines no message (NotFound).
// ToResponse 输出单次控制器操作的结果。成功类型原样输出数据，
// 失败类型输出 {"error": reason}，无消息的失败类型输出空响应体。
func (r *Response) ToResponse(codeObj *code.Code) {
	r.Ctx.Set("status_code", codeObj.StatusCode())

	if codeObj.Status() {
		if codeObj.HaveData() {
			r.Ctx.JSON(codeObj.StatusCode(), codeObj.Data())
		} else {
			r.Ctx.Status(codeObj.StatusCode())
		}
		return
	}

	msg := codeObj.Msg()
	if codeObj.HaveDetails() {
		msg = strings.Join(codeObj.Details(), "; ")
	}
	if msg == "" {
		r.Ctx.Status(codeObj.StatusCode())
		return
	}
	r.Ctx.JSON(codeObj.StatusCode(), ErrRes{Error: msg})
}
