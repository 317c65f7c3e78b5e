// Package idgen 提供基于 Sonyflake 的递增 ID 生成器
//
// 生成的 ID 全局唯一且大致按时间递增，用于 API 层的 Request ID。
//
// 使用示例：
//
//	requestID, err := idgen.GenerateRequestID() // req-487358943872
package idgen
