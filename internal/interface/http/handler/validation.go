package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	apperrors "github.com/xiebiao/bookshelf/pkg/errors"
)

var registerOnce sync.Once

// RegisterValidation 配置gin的校验器
// 1. 校验错误中的字段名使用json tag(isbn而不是ISBN)
// 2. JSON请求体中出现未知字段时直接拒绝
// 3. 注册notblank:只含空白字符的值视为未填写
func RegisterValidation() {
	registerOnce.Do(func() {
		binding.EnableDecoderDisallowUnknownFields = true

		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			if err := v.RegisterValidation("notblank", notBlank); err != nil {
				panic(fmt.Sprintf("register notblank validation: %v", err))
			}
			v.RegisterTagNameFunc(func(fld reflect.StructField) string {
				name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
				if name == "-" {
					return ""
				}
				if name == "" {
					return fld.Name
				}
				return name
			})
		}
	})
}

// bindMessage 绑定/校验错误 → 面向用户的提示
// 只返回第一个错误,例如:"isbn is required"
func bindMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		switch fe.Tag() {
		case "required", "notblank":
			return fmt.Sprintf("%s is required", fe.Field())
		default:
			return fmt.Sprintf("%s is invalid", fe.Field())
		}
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return fmt.Sprintf("%s must be a %s", typeErr.Field, typeErr.Type.String())
	}

	if errors.Is(err, io.EOF) {
		return "request body is required"
	}

	// encoding/json没有导出未知字段错误类型,只能按文本识别
	if msg := err.Error(); strings.HasPrefix(msg, "json: unknown field ") {
		return strings.TrimPrefix(msg, "json: ")
	}

	return apperrors.ErrBindError.Message
}

// notBlank 字符串去掉首尾空白后不能为空
func notBlank(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.String {
		return true
	}
	return strings.TrimSpace(field.String()) != ""
}
