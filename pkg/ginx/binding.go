package ginx

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// isXMLRequest 检查请求是否为 XML 格式
func isXMLRequest(ctx *gin.Context) bool {
	contentType := ctx.GetHeader("Content-Type")
	return strings.Contains(contentType, "application/xml") ||
		strings.Contains(contentType, "text/xml")
}

// bindArgs 绑定请求参数到 args 结构体
// 优先级：XML/JSON Body（根据 Content-Type）> URI 参数 > Query 参数 > Form 参数
func bindArgs(ctx *gin.Context, args interface{}) error {
	// 1. 尝试从 XML/JSON body 绑定
	// 不依赖 ContentLength，直接尝试绑定
	if isXMLRequest(ctx) {
		if err := ctx.ShouldBindXML(args); err == nil {
			_ = ctx.ShouldBindUri(args)
			_ = ctx.ShouldBindQuery(args)
			setResponseFormat(ctx, "xml")
			return nil
		}
	} else {
		if err := ctx.ShouldBindJSON(args); err == nil {
			_ = ctx.ShouldBindUri(args)
			_ = ctx.ShouldBindQuery(args)
			setResponseFormat(ctx, "json")
			return nil
		}
	}

	// 2. 尝试从 URI 参数绑定
	if err := ctx.ShouldBindUri(args); err == nil {
		_ = ctx.ShouldBindQuery(args)
		setResponseFormat(ctx, "json")
		return nil
	}

	// 3. 尝试从 Query 参数绑定
	if err := ctx.ShouldBindQuery(args); err == nil {
		setResponseFormat(ctx, "json")
		return nil
	}

	// 4. 尝试从 Form 绑定
	setResponseFormat(ctx, "json")
	return ctx.ShouldBind(args)
}
