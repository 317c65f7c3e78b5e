package apierror

import "net/http"

// vstor 存储节点错误码
// 错误分为三类：参数错误（400）、资源不存在（404）、内部错误（500）
// 模拟器内部没有 I/O，因此没有可重试的瞬时错误类别
var (
	// ErrMissingParameter 请求缺少必填参数，或必填参数为空值/零值
	ErrMissingParameter = &Error{
		Code:       "MissingParameter",
		Message:    "The request is missing a required parameter.",
		HTTPStatus: http.StatusBadRequest,
	}

	// ErrInvalidParameterValue 参数值不合法（例如未知的共享协议）
	ErrInvalidParameterValue = &Error{
		Code:       "InvalidParameterValue",
		Message:    "A value specified in a parameter is not valid.",
		HTTPStatus: http.StatusBadRequest,
	}

	// ErrPoolNotFound 指定的存储池不存在
	ErrPoolNotFound = &Error{
		Code:       "InvalidPool.NotFound",
		Message:    "The specified pool does not exist.",
		HTTPStatus: http.StatusNotFound,
	}

	// ErrReplicaNotFound 指定的副本不存在
	ErrReplicaNotFound = &Error{
		Code:       "InvalidReplica.NotFound",
		Message:    "The specified replica does not exist.",
		HTTPStatus: http.StatusNotFound,
	}

	// ErrNexusNotFound 指定的 nexus 不存在
	ErrNexusNotFound = &Error{
		Code:       "InvalidNexus.NotFound",
		Message:    "The specified nexus does not exist.",
		HTTPStatus: http.StatusNotFound,
	}

	// ErrInternalError 由于未知错误、异常或故障，请求处理失败
	ErrInternalError = &Error{
		Code:       "InternalError",
		Message:    "The request processing has failed because of an unknown error, exception, or failure.",
		HTTPStatus: http.StatusInternalServerError,
	}
)
