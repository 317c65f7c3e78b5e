// Package apierror 提供带错误码的错误类型，用于所有服务的统一错误处理
//
// 错误响应格式支持 XML 和 JSON 两种格式：
//
//	XML 格式：
//	<Response>
//	    <Errors>
//	        <Error>
//	            <Code>InvalidReplica.NotFound</Code>
//	            <Message>The replica 'aabbccdd' does not exist</Message>
//	        </Error>
//	    </Errors>
//	    <RequestID>req-487358943872</RequestID>
//	</Response>
//
//	JSON 格式：
//	{
//	    "errors": [
//	        {
//	            "code": "InvalidReplica.NotFound",
//	            "message": "The replica 'aabbccdd' does not exist"
//	        }
//	    ],
//	    "requestID": "req-487358943872"
//	}
//
// 预定义错误变量（可在代码中直接使用）：
//
//   - ErrMissingParameter: 缺少必填参数（400）
//   - ErrInvalidParameterValue: 参数值不合法（400）
//   - ErrPoolNotFound: 存储池不存在（404）
//   - ErrReplicaNotFound: 副本不存在（404）
//   - ErrNexusNotFound: nexus 不存在（404）
//   - ErrInternalError: 内部错误（500）
//
// 使用示例：
//
//	// 直接使用预定义的错误
//	errorResp := apierror.NewErrorResponse("request-id", apierror.ErrPoolNotFound)
//
//	// 或基于预定义错误生成带上下文的消息
//	err := apierror.WithMessagef(apierror.ErrPoolNotFound, "The pool '%s' does not exist", name)
//
//	// 判断错误类别
//	errors.Is(err, apierror.ErrPoolNotFound) // true
package apierror
