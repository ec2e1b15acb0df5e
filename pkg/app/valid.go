package app

import (
	"strings"

	ut "github.com/go-playground/universal-translator"
	"github.com/gin-gonic/gin"
	val "github.com/go-playground/validator/v10"
)

type ValidError struct {
	Key     string
	Message string
}

type ValidErrors []*ValidError

func (v *ValidError) Error() string {
	return v.Message
}

func (v ValidErrors) Error() string {
	return strings.Join(v.Errors(), ",")
}

func (v ValidErrors) Errors() []string {
	var errs []string
	for _, err := range v {
		errs = append(errs, err.Error())
	}
	return errs
}

// BindAndValid binds request parameters and runs struct validation.
// Validation messages are translated with the translator the lang
// middleware put into the context.
// BindAndValid 绑定请求参数并执行结构体校验，
// 校验消息使用 lang 中间件写入上下文的翻译器进行翻译。
func BindAndValid(c *gin.Context, obj any) (bool, ValidErrors) {
	var errs ValidErrors

	if err := c.ShouldBind(obj); err != nil {
		verrs, ok := err.(val.ValidationErrors)
		if !ok {
			// 请求体解码失败
			errs = append(errs, &ValidError{
				Key:     "body",
				Message: "invalid request body",
			})
			return false, errs
		}

		trans, _ := c.Value("trans").(ut.Translator)
		for _, verr := range verrs {
			message := verr.Error()
			if trans != nil {
				message = verr.Translate(trans)
			}
			errs = append(errs, &ValidError{
				Key:     verr.Field(),
				Message: message,
			})
		}
		return false, errs
	}

	return true, nil
}
