package ginx

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jimyag/vstor/pkg/apierror"
)

// isXMLResponse 检查是否应该使用 XML 格式响应
func isXMLResponse(ctx *gin.Context) bool {
	format := getResponseFormat(ctx)
	if format == "xml" {
		return true
	}
	// 没有设置时检查 Accept header
	accept := ctx.GetHeader("Accept")
	return strings.Contains(accept, "application/xml") ||
		strings.Contains(accept, "text/xml")
}

// renderResponse 渲染响应
// 请求是 XML 则响应 XML，否则默认 JSON
func renderResponse(ctx *gin.Context, response any) {
	if response == nil {
		ctx.Status(http.StatusNoContent)
		return
	}

	if isXMLResponse(ctx) {
		ctx.XML(http.StatusOK, response)
		return
	}
	ctx.JSON(http.StatusOK, response)
}

// renderError 渲染错误响应
// *apierror.Error 按其 HTTPStatus 渲染为 ErrorResponse 信封
// 其他错误包装为 InternalError
func renderError(ctx *gin.Context, statusCode int, err error) {
	var apiErr *apierror.Error
	if !errors.As(err, &apiErr) {
		apiErr = apierror.NewErrorWithRaw(apierror.ErrInternalError.Code, err.Error(), err)
		apiErr.HTTPStatus = statusCode
	}
	if apiErr.HTTPStatus > 0 {
		statusCode = apiErr.HTTPStatus
	}

	errorResp := apierror.NewErrorResponse(RequestID(ctx), apiErr)
	if isXMLResponse(ctx) {
		ctx.XML(statusCode, errorResp)
		return
	}
	ctx.JSON(statusCode, errorResp)
}
