package ginx

import (
	"net/http"
	"reflect"

	"github.com/gin-gonic/gin"
	"github.com/jimyag/vstor/pkg/apierror"
)

// Validator 请求结构体可以实现 IsValid 做字段级校验
// 返回的 error 建议为 *apierror.Error，以便携带错误码和 HTTP 状态码
type Validator interface {
	IsValid() error
}

// Handle 适配有参数、有返回值和 error 的 handler
func Handle[TArgs any, TResp any](fn func(*gin.Context, *TArgs) (TResp, error)) gin.HandlerFunc {
	var argsType TArgs
	argsTypeValue := reflect.TypeOf(argsType)

	return func(ctx *gin.Context) {
		// 绑定参数
		argsValue := reflect.New(argsTypeValue)
		args := argsValue.Interface()

		if err := bindArgs(ctx, args); err != nil {
			renderError(ctx, http.StatusBadRequest,
				apierror.WrapError(apierror.ErrMissingParameter, err.Error(), err))
			return
		}

		// 校验参数（如果实现了 IsValid 方法）
		if validator, ok := args.(Validator); ok {
			if err := validator.IsValid(); err != nil {
				renderError(ctx, http.StatusBadRequest, err)
				return
			}
		}

		// 调用 handler
		result, err := fn(ctx, args.(*TArgs))
		if err != nil {
			renderError(ctx, http.StatusInternalServerError, err)
			return
		}

		renderResponse(ctx, result)
	}
}

// HandleNoArgs 适配无参数、有返回值和 error 的 handler
func HandleNoArgs[TResp any](fn func(*gin.Context) (TResp, error)) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		result, err := fn(ctx)
		if err != nil {
			setResponseFormat(ctx, "json")
			renderError(ctx, http.StatusInternalServerError, err)
			return
		}
		renderResponse(ctx, result)
	}
}
