package ginx

import (
	"github.com/gin-gonic/gin"
)

// gin.Context 中存储值使用的 key
const (
	responseFormatKey = "ginx/responseFormat"
	requestIDKey      = "ginx/requestID"
)

// setResponseFormat 设置响应格式（"json" 或 "xml"）
func setResponseFormat(ctx *gin.Context, format string) {
	ctx.Set(responseFormatKey, format)
}

// getResponseFormat 获取响应格式，如果不存在则返回默认值 json
func getResponseFormat(ctx *gin.Context) string {
	format, exists := ctx.Get(responseFormatKey)
	if !exists {
		return "json"
	}
	if str, ok := format.(string); ok {
		return str
	}
	return "json"
}

// SetRequestID 设置当前请求的 Request ID，由中间件调用
func SetRequestID(ctx *gin.Context, requestID string) {
	ctx.Set(requestIDKey, requestID)
}

// RequestID 获取当前请求的 Request ID，没有则返回空字符串
func RequestID(ctx *gin.Context) string {
	id, exists := ctx.Get(requestIDKey)
	if !exists {
		return ""
	}
	if str, ok := id.(string); ok {
		return str
	}
	return ""
}
